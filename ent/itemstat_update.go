// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/wortiz/ent/itemstat"
	"github.com/abhisek/wortiz/ent/predicate"
)

// ItemStatUpdate is the builder for updating ItemStat entities.
type ItemStatUpdate struct {
	config
	hooks    []Hook
	mutation *ItemStatMutation
}

// Where appends a list predicates to the ItemStatUpdate builder.
func (_u *ItemStatUpdate) Where(ps ...predicate.ItemStat) *ItemStatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ItemStatUpdate) SetKind(v string) *ItemStatUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ItemStatUpdate) SetNillableKind(v *string) *ItemStatUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ItemStatUpdate) SetItemID(v int64) *ItemStatUpdate {
	_u.mutation.ResetItemID()
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ItemStatUpdate) SetNillableItemID(v *int64) *ItemStatUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// AddItemID adds value to the "item_id" field.
func (_u *ItemStatUpdate) AddItemID(v int64) *ItemStatUpdate {
	_u.mutation.AddItemID(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ItemStatUpdate) SetAttempts(v int) *ItemStatUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ItemStatUpdate) SetNillableAttempts(v *int) *ItemStatUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ItemStatUpdate) AddAttempts(v int) *ItemStatUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ItemStatUpdate) SetCorrect(v int) *ItemStatUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ItemStatUpdate) SetNillableCorrect(v *int) *ItemStatUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *ItemStatUpdate) AddCorrect(v int) *ItemStatUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetWrong sets the "wrong" field.
func (_u *ItemStatUpdate) SetWrong(v int) *ItemStatUpdate {
	_u.mutation.ResetWrong()
	_u.mutation.SetWrong(v)
	return _u
}

// SetNillableWrong sets the "wrong" field if the given value is not nil.
func (_u *ItemStatUpdate) SetNillableWrong(v *int) *ItemStatUpdate {
	if v != nil {
		_u.SetWrong(*v)
	}
	return _u
}

// AddWrong adds value to the "wrong" field.
func (_u *ItemStatUpdate) AddWrong(v int) *ItemStatUpdate {
	_u.mutation.AddWrong(v)
	return _u
}

// SetReveals sets the "reveals" field.
func (_u *ItemStatUpdate) SetReveals(v int) *ItemStatUpdate {
	_u.mutation.ResetReveals()
	_u.mutation.SetReveals(v)
	return _u
}

// SetNillableReveals sets the "reveals" field if the given value is not nil.
func (_u *ItemStatUpdate) SetNillableReveals(v *int) *ItemStatUpdate {
	if v != nil {
		_u.SetReveals(*v)
	}
	return _u
}

// AddReveals adds value to the "reveals" field.
func (_u *ItemStatUpdate) AddReveals(v int) *ItemStatUpdate {
	_u.mutation.AddReveals(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ItemStatUpdate) SetStreak(v int) *ItemStatUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ItemStatUpdate) SetNillableStreak(v *int) *ItemStatUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ItemStatUpdate) AddStreak(v int) *ItemStatUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ItemStatUpdate) SetLastSeen(v time.Time) *ItemStatUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ItemStatUpdate) SetNillableLastSeen(v *time.Time) *ItemStatUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// ClearLastSeen clears the value of the "last_seen" field.
func (_u *ItemStatUpdate) ClearLastSeen() *ItemStatUpdate {
	_u.mutation.ClearLastSeen()
	return _u
}

// Mutation returns the ItemStatMutation object of the builder.
func (_u *ItemStatUpdate) Mutation() *ItemStatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemStatUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemStatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemStatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemStatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ItemStatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(itemstat.Table, itemstat.Columns, sqlgraph.NewFieldSpec(itemstat.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(itemstat.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(itemstat.FieldItemID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedItemID(); ok {
		_spec.AddField(itemstat.FieldItemID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(itemstat.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(itemstat.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(itemstat.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(itemstat.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Wrong(); ok {
		_spec.SetField(itemstat.FieldWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrong(); ok {
		_spec.AddField(itemstat.FieldWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reveals(); ok {
		_spec.SetField(itemstat.FieldReveals, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReveals(); ok {
		_spec.AddField(itemstat.FieldReveals, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(itemstat.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(itemstat.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(itemstat.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.LastSeenCleared() {
		_spec.ClearField(itemstat.FieldLastSeen, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemStatUpdateOne is the builder for updating a single ItemStat entity.
type ItemStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemStatMutation
}

// SetKind sets the "kind" field.
func (_u *ItemStatUpdateOne) SetKind(v string) *ItemStatUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ItemStatUpdateOne) SetNillableKind(v *string) *ItemStatUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ItemStatUpdateOne) SetItemID(v int64) *ItemStatUpdateOne {
	_u.mutation.ResetItemID()
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ItemStatUpdateOne) SetNillableItemID(v *int64) *ItemStatUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// AddItemID adds value to the "item_id" field.
func (_u *ItemStatUpdateOne) AddItemID(v int64) *ItemStatUpdateOne {
	_u.mutation.AddItemID(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ItemStatUpdateOne) SetAttempts(v int) *ItemStatUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ItemStatUpdateOne) SetNillableAttempts(v *int) *ItemStatUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ItemStatUpdateOne) AddAttempts(v int) *ItemStatUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ItemStatUpdateOne) SetCorrect(v int) *ItemStatUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ItemStatUpdateOne) SetNillableCorrect(v *int) *ItemStatUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *ItemStatUpdateOne) AddCorrect(v int) *ItemStatUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetWrong sets the "wrong" field.
func (_u *ItemStatUpdateOne) SetWrong(v int) *ItemStatUpdateOne {
	_u.mutation.ResetWrong()
	_u.mutation.SetWrong(v)
	return _u
}

// SetNillableWrong sets the "wrong" field if the given value is not nil.
func (_u *ItemStatUpdateOne) SetNillableWrong(v *int) *ItemStatUpdateOne {
	if v != nil {
		_u.SetWrong(*v)
	}
	return _u
}

// AddWrong adds value to the "wrong" field.
func (_u *ItemStatUpdateOne) AddWrong(v int) *ItemStatUpdateOne {
	_u.mutation.AddWrong(v)
	return _u
}

// SetReveals sets the "reveals" field.
func (_u *ItemStatUpdateOne) SetReveals(v int) *ItemStatUpdateOne {
	_u.mutation.ResetReveals()
	_u.mutation.SetReveals(v)
	return _u
}

// SetNillableReveals sets the "reveals" field if the given value is not nil.
func (_u *ItemStatUpdateOne) SetNillableReveals(v *int) *ItemStatUpdateOne {
	if v != nil {
		_u.SetReveals(*v)
	}
	return _u
}

// AddReveals adds value to the "reveals" field.
func (_u *ItemStatUpdateOne) AddReveals(v int) *ItemStatUpdateOne {
	_u.mutation.AddReveals(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ItemStatUpdateOne) SetStreak(v int) *ItemStatUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ItemStatUpdateOne) SetNillableStreak(v *int) *ItemStatUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ItemStatUpdateOne) AddStreak(v int) *ItemStatUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ItemStatUpdateOne) SetLastSeen(v time.Time) *ItemStatUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ItemStatUpdateOne) SetNillableLastSeen(v *time.Time) *ItemStatUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// ClearLastSeen clears the value of the "last_seen" field.
func (_u *ItemStatUpdateOne) ClearLastSeen() *ItemStatUpdateOne {
	_u.mutation.ClearLastSeen()
	return _u
}

// Mutation returns the ItemStatMutation object of the builder.
func (_u *ItemStatUpdateOne) Mutation() *ItemStatMutation {
	return _u.mutation
}

// Where appends a list predicates to the ItemStatUpdate builder.
func (_u *ItemStatUpdateOne) Where(ps ...predicate.ItemStat) *ItemStatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemStatUpdateOne) Select(field string, fields ...string) *ItemStatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ItemStat entity.
func (_u *ItemStatUpdateOne) Save(ctx context.Context) (*ItemStat, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemStatUpdateOne) SaveX(ctx context.Context) *ItemStat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemStatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemStatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ItemStatUpdateOne) sqlSave(ctx context.Context) (_node *ItemStat, err error) {
	_spec := sqlgraph.NewUpdateSpec(itemstat.Table, itemstat.Columns, sqlgraph.NewFieldSpec(itemstat.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ItemStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itemstat.FieldID)
		for _, f := range fields {
			if !itemstat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != itemstat.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(itemstat.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(itemstat.FieldItemID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedItemID(); ok {
		_spec.AddField(itemstat.FieldItemID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(itemstat.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(itemstat.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(itemstat.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(itemstat.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Wrong(); ok {
		_spec.SetField(itemstat.FieldWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrong(); ok {
		_spec.AddField(itemstat.FieldWrong, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reveals(); ok {
		_spec.SetField(itemstat.FieldReveals, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReveals(); ok {
		_spec.AddField(itemstat.FieldReveals, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(itemstat.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(itemstat.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(itemstat.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.LastSeenCleared() {
		_spec.ClearField(itemstat.FieldLastSeen, field.TypeTime)
	}
	_node = &ItemStat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
