// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LearningPath is the predicate function for learningpath builders.
type LearningPath func(*sql.Selector)

// PathEvent is the predicate function for pathevent builders.
type PathEvent func(*sql.Selector)
