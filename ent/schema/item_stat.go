package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ItemStat is the per-item aggregate driving difficulty scoring and
// adaptive selection. One row per (kind, item_id).
type ItemStat struct {
	ent.Schema
}

func (ItemStat) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind"),
		field.Int64("item_id"),
		field.Int("attempts").
			Default(0),
		field.Int("correct").
			Default(0),
		field.Int("wrong").
			Default(0),
		field.Int("reveals").
			Default(0),
		field.Int("streak").
			Default(0).
			Comment("Consecutive correct answers, reset on a miss"),
		field.Time("last_seen").
			Optional().
			Nillable().
			Comment("When the item was last attempted"),
	}
}

func (ItemStat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "item_id").Unique(),
	}
}
