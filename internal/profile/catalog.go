package profile

// Built-in catalogs of selectable labels. The CLI validates --skills and
// --goals flags against these and lists them in the catalog command.
// Unknown labels are still accepted after normalization so users are not
// boxed in, but known labels guarantee stable canonical keys.

// SkillCategories groups selectable skill labels by category.
var SkillCategories = map[string][]string{
	"Programming": {
		"Python", "JavaScript", "Java", "C++", "Go", "Rust",
		"PHP", "C#", "Swift", "Kotlin", "TypeScript",
	},
	"Data & AI": {
		"Data Analysis", "Machine Learning", "Deep Learning",
		"SQL", "Statistics", "Data Visualization", "Big Data", "NLP",
	},
	"Web Development": {
		"HTML/CSS", "React", "Vue.js", "Angular", "Node.js",
		"Django", "Flask", "WordPress", "REST APIs",
	},
	"Cloud & DevOps": {
		"AWS", "Google Cloud", "Azure", "Docker", "Kubernetes",
		"CI/CD", "Terraform", "Linux", "Git",
	},
	"Design & UX": {
		"UI/UX Design", "Graphic Design", "Product Design",
		"Figma", "Adobe Creative Suite", "Prototyping",
	},
	"Business & Marketing": {
		"Project Management", "Digital Marketing", "SEO",
		"Content Marketing", "Analytics", "Product Management",
	},
}

// GoalCategories groups selectable learning goals by category.
var GoalCategories = map[string][]string{
	"Career Transitions": {
		"Become Data Scientist", "Become Web Developer",
		"Become Software Engineer", "Become Cloud Architect",
		"Become Product Manager", "Become UX Designer",
	},
	"Skill Enhancement": {
		"Learn Machine Learning", "Master Cloud Computing",
		"Get Cloud Certified", "Learn Mobile Development",
		"Master DevOps", "Learn Cybersecurity",
	},
	"Business Goals": {
		"Start Freelancing", "Build a Startup",
		"Career Advancement", "Salary Increase",
		"Change Industries", "Remote Work Skills",
	},
}

// LearningStyles lists the supported learning style labels.
var LearningStyles = []string{
	"Hands-on Projects", "Theoretical Study", "Mixed Approach",
	"Video Tutorials", "Reading & Documentation", "Interactive Coding",
}

// TimeCommitments lists the supported time commitment labels.
var TimeCommitments = []string{
	"30 minutes daily", "1 hour daily", "2 hours daily",
	"3-4 hours daily", "Weekends only", "Flexible schedule",
}

// BudgetPreferences lists the supported budget preference labels.
var BudgetPreferences = []string{
	"Free resources only", "Under $50/month", "Under $100/month",
	"No budget constraints",
}

// KnownSkillKeys returns the set of canonical keys for all catalog skills.
func KnownSkillKeys() map[string]bool {
	keys := make(map[string]bool)
	for _, labels := range SkillCategories {
		for _, l := range labels {
			keys[NormalizeKey(l)] = true
		}
	}
	return keys
}

// KnownGoalKeys returns the set of canonical keys for all catalog goals.
func KnownGoalKeys() map[string]bool {
	keys := make(map[string]bool)
	for _, labels := range GoalCategories {
		for _, l := range labels {
			keys[NormalizeKey(l)] = true
		}
	}
	return keys
}
