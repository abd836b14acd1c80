package profile

import (
	"sort"
	"strings"
	"time"
)

// RawSelection holds display-formatted user selections before encoding.
// Labels may carry arbitrary casing, spaces, and slashes; levels are
// keyed by the same labels the skills were selected with.
type RawSelection struct {
	Skills           []string
	Levels           map[string]string
	Goals            []string
	LearningStyle    string
	TimeCommitment   string
	BudgetPreference string
}

// NormalizeKey maps a display label to its canonical key: lower-case,
// with each space and forward-slash replaced by a hyphen. Applying it to
// an already-canonical key returns the key unchanged.
func NormalizeKey(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	key = strings.ReplaceAll(key, "/", "-")
	key = strings.ReplaceAll(key, " ", "-")
	return key
}

// Encode normalizes a raw selection into a canonical Profile. Duplicate
// labels collapse to one key; skills and goals come out sorted so that
// identical selections always produce an identical Profile. Levels keyed
// by labels absent from the skill selection are dropped. The profile is
// not validated here; call Validate before generation.
func Encode(raw RawSelection, now time.Time) *Profile {
	skills := normalizeSet(raw.Skills)
	goals := normalizeSet(raw.Goals)

	inSkills := make(map[string]bool, len(skills))
	for _, s := range skills {
		inSkills[s] = true
	}

	levels := make(map[string]Level)
	for label, level := range raw.Levels {
		key := NormalizeKey(label)
		if !inSkills[key] {
			continue
		}
		levels[key] = Level(strings.ToLower(strings.TrimSpace(level)))
	}

	style := NormalizeKey(raw.LearningStyle)
	if style == "" {
		style = "mixed-approach"
	}
	commitment := NormalizeKey(raw.TimeCommitment)
	if commitment == "" {
		commitment = "1-hour-daily"
	}
	budget := NormalizeKey(raw.BudgetPreference)
	if budget == "" {
		budget = "free-resources-only"
	}

	return &Profile{
		CurrentSkills:    skills,
		SkillLevels:      levels,
		Goals:            goals,
		LearningStyle:    style,
		TimeCommitment:   commitment,
		BudgetPreference: budget,
		Created:          now,
	}
}

// normalizeSet maps labels to canonical keys, dropping empties and
// duplicates, and returns them sorted.
func normalizeSet(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		key := NormalizeKey(l)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
