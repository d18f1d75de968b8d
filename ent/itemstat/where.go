// Code generated by ent, DO NOT EDIT.

package itemstat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wortiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldID, id))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldKind, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldItemID, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldAttempts, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldCorrect, v))
}

// Wrong applies equality check predicate on the "wrong" field. It's identical to WrongEQ.
func Wrong(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldWrong, v))
}

// Reveals applies equality check predicate on the "reveals" field. It's identical to RevealsEQ.
func Reveals(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldReveals, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldStreak, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldLastSeen, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldContainsFold(FieldKind, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldItemID, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldAttempts, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldCorrect, v))
}

// WrongEQ applies the EQ predicate on the "wrong" field.
func WrongEQ(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldWrong, v))
}

// WrongNEQ applies the NEQ predicate on the "wrong" field.
func WrongNEQ(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldWrong, v))
}

// WrongIn applies the In predicate on the "wrong" field.
func WrongIn(vs ...int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldWrong, vs...))
}

// WrongNotIn applies the NotIn predicate on the "wrong" field.
func WrongNotIn(vs ...int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldWrong, vs...))
}

// WrongGT applies the GT predicate on the "wrong" field.
func WrongGT(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldWrong, v))
}

// WrongGTE applies the GTE predicate on the "wrong" field.
func WrongGTE(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldWrong, v))
}

// WrongLT applies the LT predicate on the "wrong" field.
func WrongLT(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldWrong, v))
}

// WrongLTE applies the LTE predicate on the "wrong" field.
func WrongLTE(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldWrong, v))
}

// RevealsEQ applies the EQ predicate on the "reveals" field.
func RevealsEQ(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldReveals, v))
}

// RevealsNEQ applies the NEQ predicate on the "reveals" field.
func RevealsNEQ(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldReveals, v))
}

// RevealsIn applies the In predicate on the "reveals" field.
func RevealsIn(vs ...int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldReveals, vs...))
}

// RevealsNotIn applies the NotIn predicate on the "reveals" field.
func RevealsNotIn(vs ...int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldReveals, vs...))
}

// RevealsGT applies the GT predicate on the "reveals" field.
func RevealsGT(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldReveals, v))
}

// RevealsGTE applies the GTE predicate on the "reveals" field.
func RevealsGTE(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldReveals, v))
}

// RevealsLT applies the LT predicate on the "reveals" field.
func RevealsLT(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldReveals, v))
}

// RevealsLTE applies the LTE predicate on the "reveals" field.
func RevealsLTE(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldReveals, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldStreak, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldLastSeen, v))
}

// LastSeenIsNil applies the IsNil predicate on the "last_seen" field.
func LastSeenIsNil() predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIsNull(FieldLastSeen))
}

// LastSeenNotNil applies the NotNil predicate on the "last_seen" field.
func LastSeenNotNil() predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotNull(FieldLastSeen))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ItemStat) predicate.ItemStat {
	return predicate.ItemStat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ItemStat) predicate.ItemStat {
	return predicate.ItemStat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ItemStat) predicate.ItemStat {
	return predicate.ItemStat(sql.NotPredicates(p))
}
