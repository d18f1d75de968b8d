// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/wortiz/ent/cyclecounter"
)

// CycleCounterCreate is the builder for creating a CycleCounter entity.
type CycleCounterCreate struct {
	config
	mutation *CycleCounterMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *CycleCounterCreate) SetKind(v string) *CycleCounterCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetCycles sets the "cycles" field.
func (_c *CycleCounterCreate) SetCycles(v int) *CycleCounterCreate {
	_c.mutation.SetCycles(v)
	return _c
}

// SetNillableCycles sets the "cycles" field if the given value is not nil.
func (_c *CycleCounterCreate) SetNillableCycles(v *int) *CycleCounterCreate {
	if v != nil {
		_c.SetCycles(*v)
	}
	return _c
}

// SetLastCycleAt sets the "last_cycle_at" field.
func (_c *CycleCounterCreate) SetLastCycleAt(v time.Time) *CycleCounterCreate {
	_c.mutation.SetLastCycleAt(v)
	return _c
}

// SetNillableLastCycleAt sets the "last_cycle_at" field if the given value is not nil.
func (_c *CycleCounterCreate) SetNillableLastCycleAt(v *time.Time) *CycleCounterCreate {
	if v != nil {
		_c.SetLastCycleAt(*v)
	}
	return _c
}

// Mutation returns the CycleCounterMutation object of the builder.
func (_c *CycleCounterCreate) Mutation() *CycleCounterMutation {
	return _c.mutation
}

// Save creates the CycleCounter in the database.
func (_c *CycleCounterCreate) Save(ctx context.Context) (*CycleCounter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CycleCounterCreate) SaveX(ctx context.Context) *CycleCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CycleCounterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CycleCounterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CycleCounterCreate) defaults() {
	if _, ok := _c.mutation.Cycles(); !ok {
		v := cyclecounter.DefaultCycles
		_c.mutation.SetCycles(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CycleCounterCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "CycleCounter.kind"`)}
	}
	if _, ok := _c.mutation.Cycles(); !ok {
		return &ValidationError{Name: "cycles", err: errors.New(`ent: missing required field "CycleCounter.cycles"`)}
	}
	return nil
}

func (_c *CycleCounterCreate) sqlSave(ctx context.Context) (*CycleCounter, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CycleCounterCreate) createSpec() (*CycleCounter, *sqlgraph.CreateSpec) {
	var (
		_node = &CycleCounter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cyclecounter.Table, sqlgraph.NewFieldSpec(cyclecounter.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(cyclecounter.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Cycles(); ok {
		_spec.SetField(cyclecounter.FieldCycles, field.TypeInt, value)
		_node.Cycles = value
	}
	if value, ok := _c.mutation.LastCycleAt(); ok {
		_spec.SetField(cyclecounter.FieldLastCycleAt, field.TypeTime, value)
		_node.LastCycleAt = &value
	}
	return _node, _spec
}

// CycleCounterCreateBulk is the builder for creating many CycleCounter entities in bulk.
type CycleCounterCreateBulk struct {
	config
	err      error
	builders []*CycleCounterCreate
}

// Save creates the CycleCounter entities in the database.
func (_c *CycleCounterCreateBulk) Save(ctx context.Context) ([]*CycleCounter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CycleCounter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CycleCounterMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CycleCounterCreateBulk) SaveX(ctx context.Context) []*CycleCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CycleCounterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CycleCounterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
