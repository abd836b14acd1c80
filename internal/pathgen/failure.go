package pathgen

import (
	"errors"
	"fmt"
)

// ErrGenerationInFlight is returned when Generate is called while another
// generation is still running. The tool runs one generation at a time.
var ErrGenerationInFlight = errors.New("a path generation is already in progress")

// FailureKind classifies why a model response could not be turned into
// a Curriculum.
type FailureKind string

const (
	// MalformedJSON means no parseable JSON object was found.
	MalformedJSON FailureKind = "malformed_json"
	// SchemaViolation means the JSON parsed but violates the curriculum
	// contract. Field names the first offender.
	SchemaViolation FailureKind = "schema_violation"
)

// ParseFailure reports a model response that does not satisfy the
// curriculum contract. The response is never partially accepted.
type ParseFailure struct {
	Kind    FailureKind
	Field   string
	Message string
}

func (e *ParseFailure) Error() string {
	switch {
	case e.Kind == MalformedJSON:
		return fmt.Sprintf("malformed curriculum JSON: %s", e.Message)
	case e.Field != "":
		return fmt.Sprintf("curriculum schema violation at %s: %s", e.Field, e.Message)
	default:
		return fmt.Sprintf("curriculum schema violation: %s", e.Message)
	}
}

// GenerationFailure reports that the provider call itself failed.
// Timeout is set when the bounded generation deadline expired.
type GenerationFailure struct {
	Timeout bool
	Err     error
}

func (e *GenerationFailure) Error() string {
	if e.Timeout {
		return fmt.Sprintf("path generation timed out: %v", e.Err)
	}
	return fmt.Sprintf("path generation failed: %v", e.Err)
}

func (e *GenerationFailure) Unwrap() error { return e.Err }
