// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/wortiz/ent/attempt"
	"github.com/abhisek/wortiz/ent/predicate"
)

// AttemptUpdate is the builder for updating Attempt entities.
type AttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptMutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdate) Where(ps ...predicate.Attempt) *AttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *AttemptUpdate) SetKind(v string) *AttemptUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableKind(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *AttemptUpdate) SetItemID(v int64) *AttemptUpdate {
	_u.mutation.ResetItemID()
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableItemID(v *int64) *AttemptUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// AddItemID adds value to the "item_id" field.
func (_u *AttemptUpdate) AddItemID(v int64) *AttemptUpdate {
	_u.mutation.AddItemID(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *AttemptUpdate) SetAnswers(v []string) *AttemptUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *AttemptUpdate) AppendAnswers(v []string) *AttemptUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptUpdate) SetCorrect(v bool) *AttemptUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCorrect(v *bool) *AttemptUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetRevealed sets the "revealed" field.
func (_u *AttemptUpdate) SetRevealed(v bool) *AttemptUpdate {
	_u.mutation.SetRevealed(v)
	return _u
}

// SetNillableRevealed sets the "revealed" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableRevealed(v *bool) *AttemptUpdate {
	if v != nil {
		_u.SetRevealed(*v)
	}
	return _u
}

// SetCycleNumber sets the "cycle_number" field.
func (_u *AttemptUpdate) SetCycleNumber(v int) *AttemptUpdate {
	_u.mutation.ResetCycleNumber()
	_u.mutation.SetCycleNumber(v)
	return _u
}

// SetNillableCycleNumber sets the "cycle_number" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCycleNumber(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetCycleNumber(*v)
	}
	return _u
}

// AddCycleNumber adds value to the "cycle_number" field.
func (_u *AttemptUpdate) AddCycleNumber(v int) *AttemptUpdate {
	_u.mutation.AddCycleNumber(v)
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdate) Mutation() *AttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(attempt.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(attempt.FieldItemID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedItemID(); ok {
		_spec.AddField(attempt.FieldItemID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(attempt.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attempt.FieldAnswers, value)
		})
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attempt.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Revealed(); ok {
		_spec.SetField(attempt.FieldRevealed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CycleNumber(); ok {
		_spec.SetField(attempt.FieldCycleNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCycleNumber(); ok {
		_spec.AddField(attempt.FieldCycleNumber, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptUpdateOne is the builder for updating a single Attempt entity.
type AttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptMutation
}

// SetKind sets the "kind" field.
func (_u *AttemptUpdateOne) SetKind(v string) *AttemptUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableKind(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *AttemptUpdateOne) SetItemID(v int64) *AttemptUpdateOne {
	_u.mutation.ResetItemID()
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableItemID(v *int64) *AttemptUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// AddItemID adds value to the "item_id" field.
func (_u *AttemptUpdateOne) AddItemID(v int64) *AttemptUpdateOne {
	_u.mutation.AddItemID(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *AttemptUpdateOne) SetAnswers(v []string) *AttemptUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *AttemptUpdateOne) AppendAnswers(v []string) *AttemptUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptUpdateOne) SetCorrect(v bool) *AttemptUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCorrect(v *bool) *AttemptUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetRevealed sets the "revealed" field.
func (_u *AttemptUpdateOne) SetRevealed(v bool) *AttemptUpdateOne {
	_u.mutation.SetRevealed(v)
	return _u
}

// SetNillableRevealed sets the "revealed" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableRevealed(v *bool) *AttemptUpdateOne {
	if v != nil {
		_u.SetRevealed(*v)
	}
	return _u
}

// SetCycleNumber sets the "cycle_number" field.
func (_u *AttemptUpdateOne) SetCycleNumber(v int) *AttemptUpdateOne {
	_u.mutation.ResetCycleNumber()
	_u.mutation.SetCycleNumber(v)
	return _u
}

// SetNillableCycleNumber sets the "cycle_number" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCycleNumber(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetCycleNumber(*v)
	}
	return _u
}

// AddCycleNumber adds value to the "cycle_number" field.
func (_u *AttemptUpdateOne) AddCycleNumber(v int) *AttemptUpdateOne {
	_u.mutation.AddCycleNumber(v)
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdateOne) Mutation() *AttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdateOne) Where(ps ...predicate.Attempt) *AttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptUpdateOne) Select(field string, fields ...string) *AttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attempt entity.
func (_u *AttemptUpdateOne) Save(ctx context.Context) (*Attempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdateOne) SaveX(ctx context.Context) *Attempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AttemptUpdateOne) sqlSave(ctx context.Context) (_node *Attempt, err error) {
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attempt.FieldID)
		for _, f := range fields {
			if !attempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attempt.FieldID {
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
		_spec.SetField(attempt.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(attempt.FieldItemID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedItemID(); ok {
		_spec.AddField(attempt.FieldItemID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(attempt.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attempt.FieldAnswers, value)
		})
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attempt.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Revealed(); ok {
		_spec.SetField(attempt.FieldRevealed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CycleNumber(); ok {
		_spec.SetField(attempt.FieldCycleNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCycleNumber(); ok {
		_spec.AddField(attempt.FieldCycleNumber, field.TypeInt, value)
	}
	_node = &Attempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
