package profile

import (
	"testing"
	"time"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"UI/UX Design", "ui-ux-design"},
		{"Python", "python"},
		{"HTML/CSS", "html-css"},
		{"Become Data Scientist", "become-data-scientist"},
		{"1 hour daily", "1-hour-daily"},
		{"  Machine Learning ", "machine-learning"},
	}

	for _, tt := range tests {
		if got := NormalizeKey(tt.label); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestNormalizeKeyIdempotent(t *testing.T) {
	labels := []string{"UI/UX Design", "Python", "3-4 hours daily", "Free resources only"}
	for _, l := range labels {
		once := NormalizeKey(l)
		twice := NormalizeKey(once)
		if once != twice {
			t.Errorf("NormalizeKey not idempotent for %q: %q != %q", l, once, twice)
		}
	}
}

func TestNormalizeKeyCasingInsensitive(t *testing.T) {
	if NormalizeKey("PYTHON") != NormalizeKey("python") {
		t.Error("expected identical keys regardless of casing")
	}
	if NormalizeKey("ui/ux design") != NormalizeKey("UI/UX Design") {
		t.Error("expected identical keys for formatting variants")
	}
}

func TestEncode(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := Encode(RawSelection{
		Skills:           []string{"Python", "UI/UX Design", "python"},
		Levels:           map[string]string{"Python": "Beginner", "UI/UX Design": "Advanced"},
		Goals:            []string{"Become Data Scientist"},
		LearningStyle:    "Mixed Approach",
		TimeCommitment:   "1 hour daily",
		BudgetPreference: "Free resources only",
	}, now)

	if len(p.CurrentSkills) != 2 {
		t.Fatalf("expected 2 skills after dedup, got %v", p.CurrentSkills)
	}
	if p.CurrentSkills[0] != "python" || p.CurrentSkills[1] != "ui-ux-design" {
		t.Errorf("expected sorted canonical skills, got %v", p.CurrentSkills)
	}
	if p.SkillLevels["python"] != LevelBeginner {
		t.Errorf("expected beginner level for python, got %q", p.SkillLevels["python"])
	}
	if p.SkillLevels["ui-ux-design"] != LevelAdvanced {
		t.Errorf("expected advanced level for ui-ux-design, got %q", p.SkillLevels["ui-ux-design"])
	}
	if p.Goals[0] != "become-data-scientist" {
		t.Errorf("unexpected goals: %v", p.Goals)
	}
	if p.LearningStyle != "mixed-approach" {
		t.Errorf("unexpected learning style: %q", p.LearningStyle)
	}
	if p.TimeCommitment != "1-hour-daily" {
		t.Errorf("unexpected time commitment: %q", p.TimeCommitment)
	}
	if p.BudgetPreference != "free-resources-only" {
		t.Errorf("unexpected budget preference: %q", p.BudgetPreference)
	}
	if !p.Created.Equal(now) {
		t.Errorf("unexpected created time: %v", p.Created)
	}
}

func TestEncodeDropsOrphanLevels(t *testing.T) {
	p := Encode(RawSelection{
		Skills: []string{"Python"},
		Levels: map[string]string{"Python": "beginner", "Java": "advanced"},
		Goals:  []string{"Salary Increase"},
	}, time.Now())

	if _, ok := p.SkillLevels["java"]; ok {
		t.Error("expected level for unselected skill to be dropped")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("encoded profile should validate, got %v", err)
	}
}

func TestEncodeDefaults(t *testing.T) {
	p := Encode(RawSelection{Skills: []string{"Go"}, Goals: []string{"Build a Startup"}}, time.Now())
	if p.LearningStyle != "mixed-approach" {
		t.Errorf("expected default learning style, got %q", p.LearningStyle)
	}
	if p.TimeCommitment != "1-hour-daily" {
		t.Errorf("expected default time commitment, got %q", p.TimeCommitment)
	}
	if p.BudgetPreference != "free-resources-only" {
		t.Errorf("expected default budget, got %q", p.BudgetPreference)
	}
}

func TestValidate(t *testing.T) {
	valid := &Profile{
		CurrentSkills: []string{"python"},
		SkillLevels:   map[string]Level{"python": LevelBeginner},
		Goals:         []string{"become-data-scientist"},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid profile, got %v", err)
	}

	tests := []struct {
		name    string
		profile Profile
		field   string
	}{
		{"no skills", Profile{Goals: []string{"g"}}, "currentSkills"},
		{"no goals", Profile{CurrentSkills: []string{"python"}}, "goals"},
		{
			"orphan level",
			Profile{
				CurrentSkills: []string{"python"},
				SkillLevels:   map[string]Level{"java": LevelBeginner},
				Goals:         []string{"g"},
			},
			"skillLevels",
		},
		{
			"bad level value",
			Profile{
				CurrentSkills: []string{"python"},
				SkillLevels:   map[string]Level{"python": "expert"},
				Goals:         []string{"g"},
			},
			"skillLevels",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, ve.Field)
			}
		})
	}
}

func TestCatalogKeysAreCanonical(t *testing.T) {
	for key := range KnownSkillKeys() {
		if NormalizeKey(key) != key {
			t.Errorf("catalog skill key %q is not canonical", key)
		}
	}
	for key := range KnownGoalKeys() {
		if NormalizeKey(key) != key {
			t.Errorf("catalog goal key %q is not canonical", key)
		}
	}
}
