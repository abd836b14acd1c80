// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillpath/ent/pathevent"
)

// PathEvent is the model entity for the PathEvent schema.
type PathEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// LearningPath document reference
	PathID string `json:"path_id,omitempty"`
	// module_progress or module_complete
	Action string `json:"action,omitempty"`
	// Zero-based module position
	ModuleIndex int `json:"module_index,omitempty"`
	// Progress percentage for module_progress actions
	Percent      int `json:"percent,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PathEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pathevent.FieldID, pathevent.FieldSequence, pathevent.FieldModuleIndex, pathevent.FieldPercent:
			values[i] = new(sql.NullInt64)
		case pathevent.FieldPathID, pathevent.FieldAction:
			values[i] = new(sql.NullString)
		case pathevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PathEvent fields.
func (_m *PathEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pathevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pathevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case pathevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case pathevent.FieldPathID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path_id", values[i])
			} else if value.Valid {
				_m.PathID = value.String
			}
		case pathevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case pathevent.FieldModuleIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field module_index", values[i])
			} else if value.Valid {
				_m.ModuleIndex = int(value.Int64)
			}
		case pathevent.FieldPercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field percent", values[i])
			} else if value.Valid {
				_m.Percent = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PathEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PathEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PathEvent.
// Note that you need to call PathEvent.Unwrap() before calling this method if this PathEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PathEvent) Update() *PathEventUpdateOne {
	return NewPathEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PathEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PathEvent) Unwrap() *PathEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PathEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PathEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PathEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("path_id=")
	builder.WriteString(_m.PathID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("module_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModuleIndex))
	builder.WriteString(", ")
	builder.WriteString("percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.Percent))
	builder.WriteByte(')')
	return builder.String()
}

// PathEvents is a parsable slice of PathEvent.
type PathEvents []*PathEvent
