package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PathEvent journals per-module progress actions against a learning path.
// The runtime tracker is rebuilt by replaying these; the aggregate
// progress scalar on LearningPath is updated independently.
type PathEvent struct {
	ent.Schema
}

func (PathEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PathEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("path_id").
			NotEmpty().
			Comment("LearningPath document reference"),
		field.String("action").
			NotEmpty().
			Comment("module_progress or module_complete"),
		field.Int("module_index").
			Default(0).
			Comment("Zero-based module position"),
		field.Int("percent").
			Default(0).
			Comment("Progress percentage for module_progress actions"),
	}
}

func (PathEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("path_id"),
		index.Fields("action"),
	}
}
