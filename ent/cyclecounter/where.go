// Code generated by ent, DO NOT EDIT.

package cyclecounter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wortiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldLTE(FieldID, id))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldEQ(FieldKind, v))
}

// Cycles applies equality check predicate on the "cycles" field. It's identical to CyclesEQ.
func Cycles(v int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldEQ(FieldCycles, v))
}

// LastCycleAt applies equality check predicate on the "last_cycle_at" field. It's identical to LastCycleAtEQ.
func LastCycleAt(v time.Time) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldEQ(FieldLastCycleAt, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldContainsFold(FieldKind, v))
}

// CyclesEQ applies the EQ predicate on the "cycles" field.
func CyclesEQ(v int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldEQ(FieldCycles, v))
}

// CyclesNEQ applies the NEQ predicate on the "cycles" field.
func CyclesNEQ(v int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldNEQ(FieldCycles, v))
}

// CyclesIn applies the In predicate on the "cycles" field.
func CyclesIn(vs ...int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldIn(FieldCycles, vs...))
}

// CyclesNotIn applies the NotIn predicate on the "cycles" field.
func CyclesNotIn(vs ...int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldNotIn(FieldCycles, vs...))
}

// CyclesGT applies the GT predicate on the "cycles" field.
func CyclesGT(v int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldGT(FieldCycles, v))
}

// CyclesGTE applies the GTE predicate on the "cycles" field.
func CyclesGTE(v int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldGTE(FieldCycles, v))
}

// CyclesLT applies the LT predicate on the "cycles" field.
func CyclesLT(v int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldLT(FieldCycles, v))
}

// CyclesLTE applies the LTE predicate on the "cycles" field.
func CyclesLTE(v int) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldLTE(FieldCycles, v))
}

// LastCycleAtEQ applies the EQ predicate on the "last_cycle_at" field.
func LastCycleAtEQ(v time.Time) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldEQ(FieldLastCycleAt, v))
}

// LastCycleAtNEQ applies the NEQ predicate on the "last_cycle_at" field.
func LastCycleAtNEQ(v time.Time) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldNEQ(FieldLastCycleAt, v))
}

// LastCycleAtIn applies the In predicate on the "last_cycle_at" field.
func LastCycleAtIn(vs ...time.Time) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldIn(FieldLastCycleAt, vs...))
}

// LastCycleAtNotIn applies the NotIn predicate on the "last_cycle_at" field.
func LastCycleAtNotIn(vs ...time.Time) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldNotIn(FieldLastCycleAt, vs...))
}

// LastCycleAtGT applies the GT predicate on the "last_cycle_at" field.
func LastCycleAtGT(v time.Time) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldGT(FieldLastCycleAt, v))
}

// LastCycleAtGTE applies the GTE predicate on the "last_cycle_at" field.
func LastCycleAtGTE(v time.Time) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldGTE(FieldLastCycleAt, v))
}

// LastCycleAtLT applies the LT predicate on the "last_cycle_at" field.
func LastCycleAtLT(v time.Time) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldLT(FieldLastCycleAt, v))
}

// LastCycleAtLTE applies the LTE predicate on the "last_cycle_at" field.
func LastCycleAtLTE(v time.Time) predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldLTE(FieldLastCycleAt, v))
}

// LastCycleAtIsNil applies the IsNil predicate on the "last_cycle_at" field.
func LastCycleAtIsNil() predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldIsNull(FieldLastCycleAt))
}

// LastCycleAtNotNil applies the NotNil predicate on the "last_cycle_at" field.
func LastCycleAtNotNil() predicate.CycleCounter {
	return predicate.CycleCounter(sql.FieldNotNull(FieldLastCycleAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CycleCounter) predicate.CycleCounter {
	return predicate.CycleCounter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CycleCounter) predicate.CycleCounter {
	return predicate.CycleCounter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CycleCounter) predicate.CycleCounter {
	return predicate.CycleCounter(sql.NotPredicates(p))
}
