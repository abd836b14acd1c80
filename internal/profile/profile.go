package profile

import (
	"fmt"
	"time"
)

// Level is a self-assessed proficiency level for a skill.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Valid reports whether l is one of the closed level values.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Profile is the canonical representation of a learner's skills, levels,
// goals, and preferences. It is immutable once submitted for generation.
type Profile struct {
	CurrentSkills    []string         `json:"currentSkills"`
	SkillLevels      map[string]Level `json:"skillLevels"`
	Goals            []string         `json:"goals"`
	LearningStyle    string           `json:"learningStyle"`
	TimeCommitment   string           `json:"timeCommitment"`
	BudgetPreference string           `json:"budgetPreference"`
	Created          time.Time        `json:"created"`
}

// ValidationError describes a profile that is not ready for generation.
// It is user-correctable and is always raised before any external call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s: %s", e.Field, e.Message)
}

// Validate checks the profile invariants: at least one skill, at least
// one goal, every skill-level key present in the skill set, and level
// values within the closed domain.
func (p *Profile) Validate() error {
	if len(p.CurrentSkills) == 0 {
		return &ValidationError{Field: "currentSkills", Message: "select at least one skill"}
	}
	if len(p.Goals) == 0 {
		return &ValidationError{Field: "goals", Message: "select at least one goal"}
	}

	skills := make(map[string]bool, len(p.CurrentSkills))
	for _, s := range p.CurrentSkills {
		skills[s] = true
	}
	for key, level := range p.SkillLevels {
		if !skills[key] {
			return &ValidationError{
				Field:   "skillLevels",
				Message: fmt.Sprintf("level given for %q, which is not in currentSkills", key),
			}
		}
		if !level.Valid() {
			return &ValidationError{
				Field:   "skillLevels",
				Message: fmt.Sprintf("unknown level %q for %q", level, key),
			}
		}
	}
	return nil
}
