package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FamilyWord is a kinship noun used to generate declension cards.
// Each word expands into noun-form and possessive-phrase cards at
// cycle build time.
type FamilyWord struct {
	ent.Schema
}

func (FamilyWord) Fields() []ent.Field {
	return []ent.Field{
		field.String("lemma").
			Comment("German singular form, e.g. Mutter"),
		field.String("gender").
			Comment("Grammatical gender: m, f, n or pl for plural-only words"),
		field.String("plural").
			Default("").
			Comment("German plural form, empty for plural-only words"),
		field.String("sl_singular").
			Comment("Slovenian singular translation"),
		field.String("sl_plural").
			Default("").
			Comment("Slovenian plural translation"),
		field.String("level").
			Default("A1").
			Comment("Difficulty band: A1 core family, A2 extended"),
	}
}

func (FamilyWord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level"),
		index.Fields("lemma", "gender").Unique(),
	}
}
