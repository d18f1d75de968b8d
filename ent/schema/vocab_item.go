package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VocabItem is an imported vocabulary entry: a noun with its article or
// a verb with its principal forms. Numbers and family cards are
// generated on the fly and never stored here.
type VocabItem struct {
	ent.Schema
}

func (VocabItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			Comment("Item kind: noun or verb"),
		field.String("translation").
			Comment("Slovenian prompt shown to the learner"),
		field.JSON("labels", []string{}).
			Comment("Input field labels, one per expected answer"),
		field.JSON("solution", []string{}).
			Comment("Expected German answers, parallel to labels"),
	}
}

func (VocabItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("kind", "translation").Unique(),
	}
}
