package session

import (
	"errors"

	"github.com/abhisek/skillpath/internal/pathgen"
	"github.com/abhisek/skillpath/internal/profile"
)

// Status is the lifecycle state of a session.
type Status int

const (
	// Empty: no profile submitted, nothing generated.
	Empty Status = iota
	// Generating: a profile is locked in and generation is running.
	Generating
	// Active: a curriculum is attached and persisted.
	Active
	// ActiveUnpersisted: a curriculum is attached but the store was
	// unreachable when it was generated.
	ActiveUnpersisted
)

func (s Status) String() string {
	switch s {
	case Empty:
		return "empty"
	case Generating:
		return "generating"
	case Active:
		return "active"
	case ActiveUnpersisted:
		return "active (not saved)"
	}
	return "unknown"
}

var (
	ErrNoProfile       = errors.New("no profile submitted")
	ErrAlreadyActive   = errors.New("a curriculum is already attached; clear the session first")
	ErrNotGenerating   = errors.New("no generation in progress")
	ErrNothingAttached = errors.New("no curriculum attached")
)

// Session is the single-user working surface: one profile, at most one
// active curriculum, and its progress tracker. The profile becomes
// immutable once generation begins; "generate a new path" means Clear
// and start over.
type Session struct {
	UserID  string
	status  Status
	profile *profile.Profile

	Curriculum *pathgen.Curriculum
	Ref        string
	Tracker    *Tracker
}

// New creates an empty session for the user.
func New(userID string) *Session {
	return &Session{UserID: userID}
}

// Status returns the session lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Profile returns the submitted profile, or nil before submission.
func (s *Session) Profile() *profile.Profile {
	return s.profile
}

// BeginGeneration locks the profile in and moves to Generating.
// Fails when a curriculum is already attached or another generation is
// running.
func (s *Session) BeginGeneration(p *profile.Profile) error {
	if p == nil {
		return ErrNoProfile
	}
	switch s.status {
	case Active, ActiveUnpersisted:
		return ErrAlreadyActive
	case Generating:
		return pathgen.ErrGenerationInFlight
	}
	if err := p.Validate(); err != nil {
		return err
	}
	s.profile = p
	s.status = Generating
	return nil
}

// Attach installs a persisted curriculum and its store reference.
func (s *Session) Attach(c *pathgen.Curriculum, ref string) error {
	if s.status != Generating {
		return ErrNotGenerating
	}
	s.Curriculum = c
	s.Ref = ref
	s.Tracker = NewTracker(len(c.Modules))
	s.status = Active
	return nil
}

// AttachUnpersisted installs a curriculum that could not be saved.
// The session stays fully usable; progress just has nowhere to go.
func (s *Session) AttachUnpersisted(c *pathgen.Curriculum) error {
	if s.status != Generating {
		return ErrNotGenerating
	}
	s.Curriculum = c
	s.Ref = ""
	s.Tracker = NewTracker(len(c.Modules))
	s.status = ActiveUnpersisted
	return nil
}

// FailGeneration returns to Empty after a failed generation. The
// profile is kept so the user can retry without re-entering it.
func (s *Session) FailGeneration() error {
	if s.status != Generating {
		return ErrNotGenerating
	}
	s.status = Empty
	return nil
}

// Clear wipes the curriculum, tracker, reference, and profile.
func (s *Session) Clear() {
	s.profile = nil
	s.Curriculum = nil
	s.Ref = ""
	s.Tracker = nil
	s.status = Empty
}
