package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/skillpath/internal/pathgen"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// StoreFailure wraps a persistence error. Callers that hold the
// generated curriculum in memory degrade to unpersisted mode instead of
// discarding it.
type StoreFailure struct {
	Op  string
	Err error
}

func (e *StoreFailure) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreFailure) Unwrap() error { return e.Err }

// Status is the lifecycle state of a stored learning path.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// PathRecord is a stored learning path with its lifecycle metadata.
type PathRecord struct {
	Ref        string
	UserID     string
	Generated  time.Time
	Status     Status
	Progress   int
	Curriculum *pathgen.Curriculum
}

// PathRepo manages persisted learning paths.
type PathRepo interface {
	// Save stores a curriculum for the user and returns its reference.
	// The store assigns the reference and generation timestamp; new
	// paths start active with zero progress.
	Save(ctx context.Context, userID string, c *pathgen.Curriculum) (string, error)

	// Get returns the path with the given reference, or ErrNotFound.
	Get(ctx context.Context, ref string) (*PathRecord, error)

	// Latest returns the user's most recently generated path, or
	// ErrNotFound when the user has none.
	Latest(ctx context.Context, userID string) (*PathRecord, error)

	// List returns all of the user's paths, newest first.
	List(ctx context.Context, userID string) ([]*PathRecord, error)

	// SetProgress updates the whole-curriculum progress scalar.
	// Percent must be in [0, 100].
	SetProgress(ctx context.Context, ref string, percent int) error

	// Archive marks the path archived. Archived paths remain readable.
	Archive(ctx context.Context, ref string) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// UsageStat is an aggregated usage row, grouped by purpose or model.
type UsageStat struct {
	Purpose      string `json:"purpose,omitempty"`
	Model        string `json:"model,omitempty"`
	Requests     int    `json:"requests"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// PathEventData captures a per-module progress action.
type PathEventData struct {
	PathID      string
	Action      string // "module_progress" or "module_complete"
	ModuleIndex int
	Percent     int
}

// ModuleEvent is a stored per-module progress event.
type ModuleEvent struct {
	Sequence  int64
	Timestamp time.Time
	PathEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendPathEvent journals a per-module progress action.
	AppendPathEvent(ctx context.Context, data PathEventData) error

	// QueryLLMEvents returns LLM events matching opts, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns the LLM event with the given sequence number,
	// or ErrNotFound.
	GetLLMEvent(ctx context.Context, sequence int64) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]UsageStat, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]UsageStat, error)

	// ModuleEvents returns the progress journal for a path in append order.
	ModuleEvents(ctx context.Context, pathID string) ([]*ModuleEvent, error)
}
