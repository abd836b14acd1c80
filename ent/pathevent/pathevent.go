// Code generated by ent, DO NOT EDIT.

package pathevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pathevent type in the database.
	Label = "path_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldPathID holds the string denoting the path_id field in the database.
	FieldPathID = "path_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldModuleIndex holds the string denoting the module_index field in the database.
	FieldModuleIndex = "module_index"
	// FieldPercent holds the string denoting the percent field in the database.
	FieldPercent = "percent"
	// Table holds the table name of the pathevent in the database.
	Table = "path_events"
)

// Columns holds all SQL columns for pathevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldPathID,
	FieldAction,
	FieldModuleIndex,
	FieldPercent,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	PathIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultModuleIndex holds the default value on creation for the "module_index" field.
	DefaultModuleIndex int
	// DefaultPercent holds the default value on creation for the "percent" field.
	DefaultPercent int
)

// OrderOption defines the ordering options for the PathEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByPathID orders the results by the path_id field.
func ByPathID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPathID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByModuleIndex orders the results by the module_index field.
func ByModuleIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleIndex, opts...).ToFunc()
}

// ByPercent orders the results by the percent field.
func ByPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPercent, opts...).ToFunc()
}
