// Code generated by ent, DO NOT EDIT.

package vocabitem

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wortiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldLTE(FieldID, id))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldEQ(FieldKind, v))
}

// Translation applies equality check predicate on the "translation" field. It's identical to TranslationEQ.
func Translation(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldEQ(FieldTranslation, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldContainsFold(FieldKind, v))
}

// TranslationEQ applies the EQ predicate on the "translation" field.
func TranslationEQ(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldEQ(FieldTranslation, v))
}

// TranslationNEQ applies the NEQ predicate on the "translation" field.
func TranslationNEQ(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldNEQ(FieldTranslation, v))
}

// TranslationIn applies the In predicate on the "translation" field.
func TranslationIn(vs ...string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldIn(FieldTranslation, vs...))
}

// TranslationNotIn applies the NotIn predicate on the "translation" field.
func TranslationNotIn(vs ...string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldNotIn(FieldTranslation, vs...))
}

// TranslationGT applies the GT predicate on the "translation" field.
func TranslationGT(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldGT(FieldTranslation, v))
}

// TranslationGTE applies the GTE predicate on the "translation" field.
func TranslationGTE(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldGTE(FieldTranslation, v))
}

// TranslationLT applies the LT predicate on the "translation" field.
func TranslationLT(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldLT(FieldTranslation, v))
}

// TranslationLTE applies the LTE predicate on the "translation" field.
func TranslationLTE(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldLTE(FieldTranslation, v))
}

// TranslationContains applies the Contains predicate on the "translation" field.
func TranslationContains(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldContains(FieldTranslation, v))
}

// TranslationHasPrefix applies the HasPrefix predicate on the "translation" field.
func TranslationHasPrefix(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldHasPrefix(FieldTranslation, v))
}

// TranslationHasSuffix applies the HasSuffix predicate on the "translation" field.
func TranslationHasSuffix(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldHasSuffix(FieldTranslation, v))
}

// TranslationEqualFold applies the EqualFold predicate on the "translation" field.
func TranslationEqualFold(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldEqualFold(FieldTranslation, v))
}

// TranslationContainsFold applies the ContainsFold predicate on the "translation" field.
func TranslationContainsFold(v string) predicate.VocabItem {
	return predicate.VocabItem(sql.FieldContainsFold(FieldTranslation, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VocabItem) predicate.VocabItem {
	return predicate.VocabItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VocabItem) predicate.VocabItem {
	return predicate.VocabItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VocabItem) predicate.VocabItem {
	return predicate.VocabItem(sql.NotPredicates(p))
}
