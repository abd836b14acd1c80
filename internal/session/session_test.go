package session

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/skillpath/internal/pathgen"
	"github.com/abhisek/skillpath/internal/profile"
)

func validProfile() *profile.Profile {
	return &profile.Profile{
		CurrentSkills:    []string{"python"},
		SkillLevels:      map[string]profile.Level{"python": profile.LevelBeginner},
		Goals:            []string{"become-a-data-scientist"},
		LearningStyle:    "mixed-approach",
		TimeCommitment:   "1-hour-daily",
		BudgetPreference: "free-resources-only",
		Created:          time.Now(),
	}
}

func curriculum() *pathgen.Curriculum {
	return &pathgen.Curriculum{
		Title:             "Test Path",
		Description:       "d",
		EstimatedDuration: "2 months",
		Difficulty:        pathgen.DifficultyBeginner,
		TotalHours:        40,
		Modules: []pathgen.Module{
			{Title: "M1", Skills: []string{"python"}},
			{Title: "M2", Skills: []string{"pandas"}},
		},
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := New("learner_1")
	if s.Status() != Empty {
		t.Fatalf("status = %v, want Empty", s.Status())
	}

	if err := s.BeginGeneration(validProfile()); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if s.Status() != Generating {
		t.Fatalf("status = %v, want Generating", s.Status())
	}

	if err := s.Attach(curriculum(), "ref-1"); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if s.Status() != Active {
		t.Fatalf("status = %v, want Active", s.Status())
	}
	if s.Tracker == nil || s.Tracker.Len() != 2 {
		t.Fatal("tracker not sized to the curriculum modules")
	}
	if s.Ref != "ref-1" {
		t.Errorf("ref = %q", s.Ref)
	}
}

func TestSessionRejectsInvalidProfile(t *testing.T) {
	s := New("learner_1")
	err := s.BeginGeneration(&profile.Profile{})
	var ve *profile.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error type = %T, want *profile.ValidationError", err)
	}
	if s.Status() != Empty {
		t.Errorf("status = %v, want Empty after rejected profile", s.Status())
	}
}

func TestSessionSingleActiveCurriculum(t *testing.T) {
	s := New("learner_1")
	if err := s.BeginGeneration(validProfile()); err != nil {
		t.Fatalf("begin: %v", err)
	}

	// Second generation while one is in flight.
	if err := s.BeginGeneration(validProfile()); !errors.Is(err, pathgen.ErrGenerationInFlight) {
		t.Errorf("error = %v, want ErrGenerationInFlight", err)
	}

	if err := s.Attach(curriculum(), "ref-1"); err != nil {
		t.Fatalf("attach: %v", err)
	}

	// Generating over an active curriculum requires Clear first.
	if err := s.BeginGeneration(validProfile()); !errors.Is(err, ErrAlreadyActive) {
		t.Errorf("error = %v, want ErrAlreadyActive", err)
	}

	s.Clear()
	if s.Status() != Empty || s.Curriculum != nil || s.Tracker != nil || s.Profile() != nil {
		t.Error("Clear did not wipe the session")
	}
	if err := s.BeginGeneration(validProfile()); err != nil {
		t.Errorf("begin after clear: %v", err)
	}
}

func TestSessionUnpersistedAttach(t *testing.T) {
	s := New("learner_1")
	if err := s.BeginGeneration(validProfile()); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := s.AttachUnpersisted(curriculum()); err != nil {
		t.Fatalf("attach unpersisted: %v", err)
	}
	if s.Status() != ActiveUnpersisted {
		t.Errorf("status = %v, want ActiveUnpersisted", s.Status())
	}
	if s.Ref != "" {
		t.Errorf("ref = %q, want empty for unpersisted path", s.Ref)
	}
	// The curriculum is still fully usable.
	if err := s.Tracker.SetProgress(0, 30); err != nil {
		t.Errorf("tracker on unpersisted session: %v", err)
	}
}

func TestSessionFailGenerationKeepsProfile(t *testing.T) {
	s := New("learner_1")
	p := validProfile()
	if err := s.BeginGeneration(p); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := s.FailGeneration(); err != nil {
		t.Fatalf("fail: %v", err)
	}
	if s.Status() != Empty {
		t.Errorf("status = %v, want Empty", s.Status())
	}
	if s.Profile() != p {
		t.Error("profile lost after failed generation; retry should not need re-entry")
	}
}
