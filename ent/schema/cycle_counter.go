package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CycleCounter tracks how many cycles have been completed per kind.
// The count feeds the adaptive-mode recommendation.
type CycleCounter struct {
	ent.Schema
}

func (CycleCounter) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind"),
		field.Int("cycles").
			Default(0),
		field.Time("last_cycle_at").
			Optional().
			Nillable(),
	}
}

func (CycleCounter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind").Unique(),
	}
}
