// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearningPathsColumns holds the columns for the "learning_paths" table.
	LearningPathsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "generated", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "archived"}, Default: "active"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "data", Type: field.TypeJSON},
	}
	// LearningPathsTable holds the schema information for the "learning_paths" table.
	LearningPathsTable = &schema.Table{
		Name:       "learning_paths",
		Columns:    LearningPathsColumns,
		PrimaryKey: []*schema.Column{LearningPathsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningpath_user_id",
				Unique:  false,
				Columns: []*schema.Column{LearningPathsColumns[1]},
			},
			{
				Name:    "learningpath_generated",
				Unique:  false,
				Columns: []*schema.Column{LearningPathsColumns[2]},
			},
			{
				Name:    "learningpath_status",
				Unique:  false,
				Columns: []*schema.Column{LearningPathsColumns[3]},
			},
		},
	}
	// PathEventsColumns holds the columns for the "path_events" table.
	PathEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "path_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "module_index", Type: field.TypeInt, Default: 0},
		{Name: "percent", Type: field.TypeInt, Default: 0},
	}
	// PathEventsTable holds the schema information for the "path_events" table.
	PathEventsTable = &schema.Table{
		Name:       "path_events",
		Columns:    PathEventsColumns,
		PrimaryKey: []*schema.Column{PathEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pathevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[1]},
			},
			{
				Name:    "pathevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[2]},
			},
			{
				Name:    "pathevent_path_id",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[3]},
			},
			{
				Name:    "pathevent_action",
				Unique:  false,
				Columns: []*schema.Column{PathEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		LearningPathsTable,
		PathEventsTable,
	}
)

func init() {
}
