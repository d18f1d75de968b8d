// Code generated by ent, DO NOT EDIT.

package familyword

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wortiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldLTE(FieldID, id))
}

// Lemma applies equality check predicate on the "lemma" field. It's identical to LemmaEQ.
func Lemma(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEQ(FieldLemma, v))
}

// Gender applies equality check predicate on the "gender" field. It's identical to GenderEQ.
func Gender(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEQ(FieldGender, v))
}

// Plural applies equality check predicate on the "plural" field. It's identical to PluralEQ.
func Plural(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEQ(FieldPlural, v))
}

// SlSingular applies equality check predicate on the "sl_singular" field. It's identical to SlSingularEQ.
func SlSingular(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEQ(FieldSlSingular, v))
}

// SlPlural applies equality check predicate on the "sl_plural" field. It's identical to SlPluralEQ.
func SlPlural(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEQ(FieldSlPlural, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEQ(FieldLevel, v))
}

// LemmaEQ applies the EQ predicate on the "lemma" field.
func LemmaEQ(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEQ(FieldLemma, v))
}

// LemmaNEQ applies the NEQ predicate on the "lemma" field.
func LemmaNEQ(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldNEQ(FieldLemma, v))
}

// LemmaIn applies the In predicate on the "lemma" field.
func LemmaIn(vs ...string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldIn(FieldLemma, vs...))
}

// LemmaNotIn applies the NotIn predicate on the "lemma" field.
func LemmaNotIn(vs ...string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldNotIn(FieldLemma, vs...))
}

// LemmaGT applies the GT predicate on the "lemma" field.
func LemmaGT(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldGT(FieldLemma, v))
}

// LemmaGTE applies the GTE predicate on the "lemma" field.
func LemmaGTE(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldGTE(FieldLemma, v))
}

// LemmaLT applies the LT predicate on the "lemma" field.
func LemmaLT(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldLT(FieldLemma, v))
}

// LemmaLTE applies the LTE predicate on the "lemma" field.
func LemmaLTE(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldLTE(FieldLemma, v))
}

// LemmaContains applies the Contains predicate on the "lemma" field.
func LemmaContains(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldContains(FieldLemma, v))
}

// LemmaHasPrefix applies the HasPrefix predicate on the "lemma" field.
func LemmaHasPrefix(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldHasPrefix(FieldLemma, v))
}

// LemmaHasSuffix applies the HasSuffix predicate on the "lemma" field.
func LemmaHasSuffix(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldHasSuffix(FieldLemma, v))
}

// LemmaEqualFold applies the EqualFold predicate on the "lemma" field.
func LemmaEqualFold(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEqualFold(FieldLemma, v))
}

// LemmaContainsFold applies the ContainsFold predicate on the "lemma" field.
func LemmaContainsFold(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldContainsFold(FieldLemma, v))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldNotIn(FieldGender, vs...))
}

// GenderGT applies the GT predicate on the "gender" field.
func GenderGT(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldGT(FieldGender, v))
}

// GenderGTE applies the GTE predicate on the "gender" field.
func GenderGTE(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldGTE(FieldGender, v))
}

// GenderLT applies the LT predicate on the "gender" field.
func GenderLT(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldLT(FieldGender, v))
}

// GenderLTE applies the LTE predicate on the "gender" field.
func GenderLTE(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldLTE(FieldGender, v))
}

// GenderContains applies the Contains predicate on the "gender" field.
func GenderContains(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldContains(FieldGender, v))
}

// GenderHasPrefix applies the HasPrefix predicate on the "gender" field.
func GenderHasPrefix(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldHasPrefix(FieldGender, v))
}

// GenderHasSuffix applies the HasSuffix predicate on the "gender" field.
func GenderHasSuffix(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldHasSuffix(FieldGender, v))
}

// GenderEqualFold applies the EqualFold predicate on the "gender" field.
func GenderEqualFold(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEqualFold(FieldGender, v))
}

// GenderContainsFold applies the ContainsFold predicate on the "gender" field.
func GenderContainsFold(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldContainsFold(FieldGender, v))
}

// PluralEQ applies the EQ predicate on the "plural" field.
func PluralEQ(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEQ(FieldPlural, v))
}

// PluralNEQ applies the NEQ predicate on the "plural" field.
func PluralNEQ(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldNEQ(FieldPlural, v))
}

// PluralIn applies the In predicate on the "plural" field.
func PluralIn(vs ...string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldIn(FieldPlural, vs...))
}

// PluralNotIn applies the NotIn predicate on the "plural" field.
func PluralNotIn(vs ...string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldNotIn(FieldPlural, vs...))
}

// PluralGT applies the GT predicate on the "plural" field.
func PluralGT(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldGT(FieldPlural, v))
}

// PluralGTE applies the GTE predicate on the "plural" field.
func PluralGTE(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldGTE(FieldPlural, v))
}

// PluralLT applies the LT predicate on the "plural" field.
func PluralLT(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldLT(FieldPlural, v))
}

// PluralLTE applies the LTE predicate on the "plural" field.
func PluralLTE(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldLTE(FieldPlural, v))
}

// PluralContains applies the Contains predicate on the "plural" field.
func PluralContains(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldContains(FieldPlural, v))
}

// PluralHasPrefix applies the HasPrefix predicate on the "plural" field.
func PluralHasPrefix(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldHasPrefix(FieldPlural, v))
}

// PluralHasSuffix applies the HasSuffix predicate on the "plural" field.
func PluralHasSuffix(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldHasSuffix(FieldPlural, v))
}

// PluralEqualFold applies the EqualFold predicate on the "plural" field.
func PluralEqualFold(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEqualFold(FieldPlural, v))
}

// PluralContainsFold applies the ContainsFold predicate on the "plural" field.
func PluralContainsFold(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldContainsFold(FieldPlural, v))
}

// SlSingularEQ applies the EQ predicate on the "sl_singular" field.
func SlSingularEQ(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEQ(FieldSlSingular, v))
}

// SlSingularNEQ applies the NEQ predicate on the "sl_singular" field.
func SlSingularNEQ(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldNEQ(FieldSlSingular, v))
}

// SlSingularIn applies the In predicate on the "sl_singular" field.
func SlSingularIn(vs ...string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldIn(FieldSlSingular, vs...))
}

// SlSingularNotIn applies the NotIn predicate on the "sl_singular" field.
func SlSingularNotIn(vs ...string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldNotIn(FieldSlSingular, vs...))
}

// SlSingularGT applies the GT predicate on the "sl_singular" field.
func SlSingularGT(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldGT(FieldSlSingular, v))
}

// SlSingularGTE applies the GTE predicate on the "sl_singular" field.
func SlSingularGTE(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldGTE(FieldSlSingular, v))
}

// SlSingularLT applies the LT predicate on the "sl_singular" field.
func SlSingularLT(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldLT(FieldSlSingular, v))
}

// SlSingularLTE applies the LTE predicate on the "sl_singular" field.
func SlSingularLTE(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldLTE(FieldSlSingular, v))
}

// SlSingularContains applies the Contains predicate on the "sl_singular" field.
func SlSingularContains(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldContains(FieldSlSingular, v))
}

// SlSingularHasPrefix applies the HasPrefix predicate on the "sl_singular" field.
func SlSingularHasPrefix(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldHasPrefix(FieldSlSingular, v))
}

// SlSingularHasSuffix applies the HasSuffix predicate on the "sl_singular" field.
func SlSingularHasSuffix(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldHasSuffix(FieldSlSingular, v))
}

// SlSingularEqualFold applies the EqualFold predicate on the "sl_singular" field.
func SlSingularEqualFold(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEqualFold(FieldSlSingular, v))
}

// SlSingularContainsFold applies the ContainsFold predicate on the "sl_singular" field.
func SlSingularContainsFold(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldContainsFold(FieldSlSingular, v))
}

// SlPluralEQ applies the EQ predicate on the "sl_plural" field.
func SlPluralEQ(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEQ(FieldSlPlural, v))
}

// SlPluralNEQ applies the NEQ predicate on the "sl_plural" field.
func SlPluralNEQ(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldNEQ(FieldSlPlural, v))
}

// SlPluralIn applies the In predicate on the "sl_plural" field.
func SlPluralIn(vs ...string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldIn(FieldSlPlural, vs...))
}

// SlPluralNotIn applies the NotIn predicate on the "sl_plural" field.
func SlPluralNotIn(vs ...string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldNotIn(FieldSlPlural, vs...))
}

// SlPluralGT applies the GT predicate on the "sl_plural" field.
func SlPluralGT(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldGT(FieldSlPlural, v))
}

// SlPluralGTE applies the GTE predicate on the "sl_plural" field.
func SlPluralGTE(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldGTE(FieldSlPlural, v))
}

// SlPluralLT applies the LT predicate on the "sl_plural" field.
func SlPluralLT(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldLT(FieldSlPlural, v))
}

// SlPluralLTE applies the LTE predicate on the "sl_plural" field.
func SlPluralLTE(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldLTE(FieldSlPlural, v))
}

// SlPluralContains applies the Contains predicate on the "sl_plural" field.
func SlPluralContains(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldContains(FieldSlPlural, v))
}

// SlPluralHasPrefix applies the HasPrefix predicate on the "sl_plural" field.
func SlPluralHasPrefix(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldHasPrefix(FieldSlPlural, v))
}

// SlPluralHasSuffix applies the HasSuffix predicate on the "sl_plural" field.
func SlPluralHasSuffix(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldHasSuffix(FieldSlPlural, v))
}

// SlPluralEqualFold applies the EqualFold predicate on the "sl_plural" field.
func SlPluralEqualFold(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEqualFold(FieldSlPlural, v))
}

// SlPluralContainsFold applies the ContainsFold predicate on the "sl_plural" field.
func SlPluralContainsFold(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldContainsFold(FieldSlPlural, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.FamilyWord {
	return predicate.FamilyWord(sql.FieldContainsFold(FieldLevel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FamilyWord) predicate.FamilyWord {
	return predicate.FamilyWord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FamilyWord) predicate.FamilyWord {
	return predicate.FamilyWord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FamilyWord) predicate.FamilyWord {
	return predicate.FamilyWord(sql.NotPredicates(p))
}
