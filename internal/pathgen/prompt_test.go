package pathgen

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/skillpath/internal/profile"
)

func testProfile() *profile.Profile {
	return &profile.Profile{
		CurrentSkills: []string{"python", "sql"},
		SkillLevels: map[string]profile.Level{
			"python": profile.LevelIntermediate,
			"sql":    profile.LevelBeginner,
		},
		Goals:            []string{"become-a-data-scientist"},
		LearningStyle:    "hands-on-projects",
		TimeCommitment:   "1-hour-daily",
		BudgetPreference: "free-resources-only",
		Created:          time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildUserMessageDeterministic(t *testing.T) {
	p := testProfile()
	first := buildUserMessage(p)
	for range 20 {
		if got := buildUserMessage(p); got != first {
			t.Fatal("buildUserMessage output differs across calls for the same profile")
		}
	}
}

func TestBuildUserMessageContainsProfileFacts(t *testing.T) {
	msg := buildUserMessage(testProfile())

	for _, want := range []string{
		"python", "sql",
		"intermediate", "beginner",
		"become-a-data-scientist",
		"hands-on-projects",
		"1-hour-daily",
		"free-resources-only",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildUserMessageContainsContractFieldNames(t *testing.T) {
	msg := buildUserMessage(testProfile())

	for _, field := range []string{`"modules"`, `"milestones"`, `"resources"`} {
		if !strings.Contains(msg, field) {
			t.Errorf("prompt missing literal field name %s", field)
		}
	}
}

func TestBuildUserMessageSortsSkillLevels(t *testing.T) {
	p := testProfile()
	msg := buildUserMessage(p)

	// python sorts before sql; the levels line must reflect that order.
	if !strings.Contains(msg, "python: intermediate, sql: beginner") {
		t.Errorf("skill levels not rendered in sorted order:\n%s", msg)
	}
}
