// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wortiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCreatedAt, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldKind, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldItemID, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCorrect, v))
}

// Revealed applies equality check predicate on the "revealed" field. It's identical to RevealedEQ.
func Revealed(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldRevealed, v))
}

// CycleNumber applies equality check predicate on the "cycle_number" field. It's identical to CycleNumberEQ.
func CycleNumber(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCycleNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldCreatedAt, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldKind, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldItemID, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCorrect, v))
}

// RevealedEQ applies the EQ predicate on the "revealed" field.
func RevealedEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldRevealed, v))
}

// RevealedNEQ applies the NEQ predicate on the "revealed" field.
func RevealedNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldRevealed, v))
}

// CycleNumberEQ applies the EQ predicate on the "cycle_number" field.
func CycleNumberEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCycleNumber, v))
}

// CycleNumberNEQ applies the NEQ predicate on the "cycle_number" field.
func CycleNumberNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCycleNumber, v))
}

// CycleNumberIn applies the In predicate on the "cycle_number" field.
func CycleNumberIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldCycleNumber, vs...))
}

// CycleNumberNotIn applies the NotIn predicate on the "cycle_number" field.
func CycleNumberNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldCycleNumber, vs...))
}

// CycleNumberGT applies the GT predicate on the "cycle_number" field.
func CycleNumberGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldCycleNumber, v))
}

// CycleNumberGTE applies the GTE predicate on the "cycle_number" field.
func CycleNumberGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldCycleNumber, v))
}

// CycleNumberLT applies the LT predicate on the "cycle_number" field.
func CycleNumberLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldCycleNumber, v))
}

// CycleNumberLTE applies the LTE predicate on the "cycle_number" field.
func CycleNumberLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldCycleNumber, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.NotPredicates(p))
}
