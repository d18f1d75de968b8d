package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt is one graded answer. The table is append-only; per-item
// aggregates live in ItemStat and are updated in the same transaction.
type Attempt struct {
	ent.Schema
}

func (Attempt) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			Comment("Item kind: noun, verb, number or family"),
		field.Int64("item_id").
			Comment("Stable item identifier within its kind"),
		field.JSON("answers", []string{}).
			Comment("Raw learner input, one entry per label"),
		field.Bool("correct").
			Comment("Whether every field matched after normalization"),
		field.Bool("revealed").
			Comment("Whether the solution was shown for this attempt"),
		field.Int("cycle_number").
			Default(0).
			Comment("Cycle the attempt belonged to"),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "item_id"),
		index.Fields("kind", "cycle_number"),
	}
}
