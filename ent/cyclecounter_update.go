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
	"github.com/abhisek/wortiz/ent/cyclecounter"
	"github.com/abhisek/wortiz/ent/predicate"
)

// CycleCounterUpdate is the builder for updating CycleCounter entities.
type CycleCounterUpdate struct {
	config
	hooks    []Hook
	mutation *CycleCounterMutation
}

// Where appends a list predicates to the CycleCounterUpdate builder.
func (_u *CycleCounterUpdate) Where(ps ...predicate.CycleCounter) *CycleCounterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *CycleCounterUpdate) SetKind(v string) *CycleCounterUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CycleCounterUpdate) SetNillableKind(v *string) *CycleCounterUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCycles sets the "cycles" field.
func (_u *CycleCounterUpdate) SetCycles(v int) *CycleCounterUpdate {
	_u.mutation.ResetCycles()
	_u.mutation.SetCycles(v)
	return _u
}

// SetNillableCycles sets the "cycles" field if the given value is not nil.
func (_u *CycleCounterUpdate) SetNillableCycles(v *int) *CycleCounterUpdate {
	if v != nil {
		_u.SetCycles(*v)
	}
	return _u
}

// AddCycles adds value to the "cycles" field.
func (_u *CycleCounterUpdate) AddCycles(v int) *CycleCounterUpdate {
	_u.mutation.AddCycles(v)
	return _u
}

// SetLastCycleAt sets the "last_cycle_at" field.
func (_u *CycleCounterUpdate) SetLastCycleAt(v time.Time) *CycleCounterUpdate {
	_u.mutation.SetLastCycleAt(v)
	return _u
}

// SetNillableLastCycleAt sets the "last_cycle_at" field if the given value is not nil.
func (_u *CycleCounterUpdate) SetNillableLastCycleAt(v *time.Time) *CycleCounterUpdate {
	if v != nil {
		_u.SetLastCycleAt(*v)
	}
	return _u
}

// ClearLastCycleAt clears the value of the "last_cycle_at" field.
func (_u *CycleCounterUpdate) ClearLastCycleAt() *CycleCounterUpdate {
	_u.mutation.ClearLastCycleAt()
	return _u
}

// Mutation returns the CycleCounterMutation object of the builder.
func (_u *CycleCounterUpdate) Mutation() *CycleCounterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CycleCounterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CycleCounterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CycleCounterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CycleCounterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CycleCounterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(cyclecounter.Table, cyclecounter.Columns, sqlgraph.NewFieldSpec(cyclecounter.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(cyclecounter.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cycles(); ok {
		_spec.SetField(cyclecounter.FieldCycles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCycles(); ok {
		_spec.AddField(cyclecounter.FieldCycles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCycleAt(); ok {
		_spec.SetField(cyclecounter.FieldLastCycleAt, field.TypeTime, value)
	}
	if _u.mutation.LastCycleAtCleared() {
		_spec.ClearField(cyclecounter.FieldLastCycleAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cyclecounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CycleCounterUpdateOne is the builder for updating a single CycleCounter entity.
type CycleCounterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CycleCounterMutation
}

// SetKind sets the "kind" field.
func (_u *CycleCounterUpdateOne) SetKind(v string) *CycleCounterUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CycleCounterUpdateOne) SetNillableKind(v *string) *CycleCounterUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCycles sets the "cycles" field.
func (_u *CycleCounterUpdateOne) SetCycles(v int) *CycleCounterUpdateOne {
	_u.mutation.ResetCycles()
	_u.mutation.SetCycles(v)
	return _u
}

// SetNillableCycles sets the "cycles" field if the given value is not nil.
func (_u *CycleCounterUpdateOne) SetNillableCycles(v *int) *CycleCounterUpdateOne {
	if v != nil {
		_u.SetCycles(*v)
	}
	return _u
}

// AddCycles adds value to the "cycles" field.
func (_u *CycleCounterUpdateOne) AddCycles(v int) *CycleCounterUpdateOne {
	_u.mutation.AddCycles(v)
	return _u
}

// SetLastCycleAt sets the "last_cycle_at" field.
func (_u *CycleCounterUpdateOne) SetLastCycleAt(v time.Time) *CycleCounterUpdateOne {
	_u.mutation.SetLastCycleAt(v)
	return _u
}

// SetNillableLastCycleAt sets the "last_cycle_at" field if the given value is not nil.
func (_u *CycleCounterUpdateOne) SetNillableLastCycleAt(v *time.Time) *CycleCounterUpdateOne {
	if v != nil {
		_u.SetLastCycleAt(*v)
	}
	return _u
}

// ClearLastCycleAt clears the value of the "last_cycle_at" field.
func (_u *CycleCounterUpdateOne) ClearLastCycleAt() *CycleCounterUpdateOne {
	_u.mutation.ClearLastCycleAt()
	return _u
}

// Mutation returns the CycleCounterMutation object of the builder.
func (_u *CycleCounterUpdateOne) Mutation() *CycleCounterMutation {
	return _u.mutation
}

// Where appends a list predicates to the CycleCounterUpdate builder.
func (_u *CycleCounterUpdateOne) Where(ps ...predicate.CycleCounter) *CycleCounterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CycleCounterUpdateOne) Select(field string, fields ...string) *CycleCounterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CycleCounter entity.
func (_u *CycleCounterUpdateOne) Save(ctx context.Context) (*CycleCounter, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CycleCounterUpdateOne) SaveX(ctx context.Context) *CycleCounter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CycleCounterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CycleCounterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CycleCounterUpdateOne) sqlSave(ctx context.Context) (_node *CycleCounter, err error) {
	_spec := sqlgraph.NewUpdateSpec(cyclecounter.Table, cyclecounter.Columns, sqlgraph.NewFieldSpec(cyclecounter.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CycleCounter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cyclecounter.FieldID)
		for _, f := range fields {
			if !cyclecounter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cyclecounter.FieldID {
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
		_spec.SetField(cyclecounter.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cycles(); ok {
		_spec.SetField(cyclecounter.FieldCycles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCycles(); ok {
		_spec.AddField(cyclecounter.FieldCycles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCycleAt(); ok {
		_spec.SetField(cyclecounter.FieldLastCycleAt, field.TypeTime, value)
	}
	if _u.mutation.LastCycleAtCleared() {
		_spec.ClearField(cyclecounter.FieldLastCycleAt, field.TypeTime)
	}
	_node = &CycleCounter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cyclecounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
