package pathgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/skillpath/internal/profile"
)

const systemPrompt = `You are an experienced career mentor and curriculum designer.
You build practical, personalized learning paths that take a learner from
their current skills to their stated goals. You respond with a single JSON
object and nothing else.`

// promptFormat is the literal response contract included in every request.
// It mirrors CurriculumSchema so models without native structured output
// still see the expected shape.
const promptFormat = `{
    "title": "Personalized Learning Path Title",
    "description": "A comprehensive description of the learning journey",
    "estimatedDuration": "X months",
    "difficulty": "beginner/intermediate/advanced",
    "totalHours": 120,
    "modules": [
        {
            "title": "Module Name",
            "duration": "X weeks",
            "description": "Detailed module description",
            "skills": ["skill1", "skill2"],
            "learningObjectives": ["objective1", "objective2"],
            "resources": [
                {
                    "title": "Resource Name",
                    "type": "course/book/tutorial/project/video",
                    "provider": "Platform/Author",
                    "url": "https://example.com",
                    "difficulty": "beginner/intermediate/advanced",
                    "estimatedTime": "X hours",
                    "cost": "free/paid",
                    "description": "Why this resource is recommended"
                }
            ]
        }
    ],
    "milestones": [
        {
            "week": 2,
            "goal": "Complete the fundamentals",
            "skills": ["skill1"],
            "assessment": "Build a small project"
        }
    ],
    "careerOutcomes": ["job_title1", "job_title2"],
    "estimatedSalaryRange": "$50,000 - $80,000"
}`

// buildUserMessage renders the profile into the generation prompt.
// Output is deterministic for a given profile: map iteration is sorted
// and nothing time- or randomness-dependent is included.
func buildUserMessage(p *profile.Profile) string {
	var b strings.Builder

	b.WriteString("Create a detailed, practical learning path for someone with:\n\n")

	fmt.Fprintf(&b, "Current Skills: %s\n", strings.Join(p.CurrentSkills, ", "))

	if len(p.SkillLevels) > 0 {
		keys := make([]string, 0, len(p.SkillLevels))
		for k := range p.SkillLevels {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s: %s", k, p.SkillLevels[k]))
		}
		fmt.Fprintf(&b, "Skill Levels: %s\n", strings.Join(pairs, ", "))
	}

	fmt.Fprintf(&b, "Learning Goals: %s\n", strings.Join(p.Goals, ", "))
	fmt.Fprintf(&b, "Learning Style: %s\n", p.LearningStyle)
	fmt.Fprintf(&b, "Time Commitment: %s\n", p.TimeCommitment)
	fmt.Fprintf(&b, "Budget Preference: %s\n", p.BudgetPreference)

	b.WriteString("\nReturn ONLY valid JSON in this exact format:\n")
	b.WriteString(promptFormat)
	b.WriteString("\n\nFocus on:\n")
	b.WriteString("- Free and affordable resources\n")
	b.WriteString("- Hands-on projects\n")
	b.WriteString("- Industry-relevant skills\n")
	b.WriteString("- Progressive difficulty\n")
	b.WriteString("- Real-world applications\n")

	return b.String()
}
