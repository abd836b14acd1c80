package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// LearningPath is a persisted curriculum document. The store, not the
// caller, stamps the generation timestamp so that write ordering is
// established server-side.
type LearningPath struct {
	ent.Schema
}

func (LearningPath) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(func() string { return uuid.NewString() }).
			Unique().
			Immutable().
			Comment("Store-assigned document reference"),
		field.String("user_id").
			NotEmpty().
			Comment("Owner of the path"),
		field.Time("generated").
			Default(time.Now).
			Immutable().
			Comment("Assigned at write time, monotonic per write"),
		field.Enum("status").
			Values("active", "archived").
			Default("active"),
		field.Int("progress").
			Default(0).
			Comment("Whole-curriculum completion percentage, 0-100"),
		field.JSON("data", map[string]any{}).
			Comment("The validated curriculum as JSON"),
	}
}

func (LearningPath) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("generated"),
		index.Fields("status"),
	}
}
