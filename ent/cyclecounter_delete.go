// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/wortiz/ent/cyclecounter"
	"github.com/abhisek/wortiz/ent/predicate"
)

// CycleCounterDelete is the builder for deleting a CycleCounter entity.
type CycleCounterDelete struct {
	config
	hooks    []Hook
	mutation *CycleCounterMutation
}

// Where appends a list predicates to the CycleCounterDelete builder.
func (_d *CycleCounterDelete) Where(ps ...predicate.CycleCounter) *CycleCounterDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CycleCounterDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CycleCounterDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CycleCounterDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(cyclecounter.Table, sqlgraph.NewFieldSpec(cyclecounter.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CycleCounterDeleteOne is the builder for deleting a single CycleCounter entity.
type CycleCounterDeleteOne struct {
	_d *CycleCounterDelete
}

// Where appends a list predicates to the CycleCounterDelete builder.
func (_d *CycleCounterDeleteOne) Where(ps ...predicate.CycleCounter) *CycleCounterDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CycleCounterDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{cyclecounter.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CycleCounterDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
