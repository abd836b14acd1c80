// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillpath/ent/learningpath"
)

// LearningPath is the model entity for the LearningPath schema.
type LearningPath struct {
	config `json:"-"`
	// ID of the ent.
	// Store-assigned document reference
	ID string `json:"id,omitempty"`
	// Owner of the path
	UserID string `json:"user_id,omitempty"`
	// Assigned at write time, monotonic per write
	Generated time.Time `json:"generated,omitempty"`
	// Status holds the value of the "status" field.
	Status learningpath.Status `json:"status,omitempty"`
	// Whole-curriculum completion percentage, 0-100
	Progress int `json:"progress,omitempty"`
	// The validated curriculum as JSON
	Data         map[string]interface{} `json:"data,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningPath) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningpath.FieldData:
			values[i] = new([]byte)
		case learningpath.FieldProgress:
			values[i] = new(sql.NullInt64)
		case learningpath.FieldID, learningpath.FieldUserID, learningpath.FieldStatus:
			values[i] = new(sql.NullString)
		case learningpath.FieldGenerated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningPath fields.
func (_m *LearningPath) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningpath.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case learningpath.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case learningpath.FieldGenerated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated", values[i])
			} else if value.Valid {
				_m.Generated = value.Time
			}
		case learningpath.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = learningpath.Status(value.String)
			}
		case learningpath.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = int(value.Int64)
			}
		case learningpath.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningPath.
// This includes values selected through modifiers, order, etc.
func (_m *LearningPath) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearningPath.
// Note that you need to call LearningPath.Unwrap() before calling this method if this LearningPath
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningPath) Update() *LearningPathUpdateOne {
	return NewLearningPathClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningPath entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningPath) Unwrap() *LearningPath {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningPath is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningPath) String() string {
	var builder strings.Builder
	builder.WriteString("LearningPath(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("generated=")
	builder.WriteString(_m.Generated.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteByte(')')
	return builder.String()
}

// LearningPaths is a parsable slice of LearningPath.
type LearningPaths []*LearningPath
