// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/wortiz/ent/attempt"
)

// AttemptCreate is the builder for creating a Attempt entity.
type AttemptCreate struct {
	config
	mutation *AttemptMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttemptCreate) SetCreatedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCreatedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *AttemptCreate) SetKind(v string) *AttemptCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *AttemptCreate) SetItemID(v int64) *AttemptCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *AttemptCreate) SetAnswers(v []string) *AttemptCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AttemptCreate) SetCorrect(v bool) *AttemptCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetRevealed sets the "revealed" field.
func (_c *AttemptCreate) SetRevealed(v bool) *AttemptCreate {
	_c.mutation.SetRevealed(v)
	return _c
}

// SetCycleNumber sets the "cycle_number" field.
func (_c *AttemptCreate) SetCycleNumber(v int) *AttemptCreate {
	_c.mutation.SetCycleNumber(v)
	return _c
}

// SetNillableCycleNumber sets the "cycle_number" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCycleNumber(v *int) *AttemptCreate {
	if v != nil {
		_c.SetCycleNumber(*v)
	}
	return _c
}

// Mutation returns the AttemptMutation object of the builder.
func (_c *AttemptCreate) Mutation() *AttemptMutation {
	return _c.mutation
}

// Save creates the Attempt in the database.
func (_c *AttemptCreate) Save(ctx context.Context) (*Attempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptCreate) SaveX(ctx context.Context) *Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.CycleNumber(); !ok {
		v := attempt.DefaultCycleNumber
		_c.mutation.SetCycleNumber(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Attempt.created_at"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Attempt.kind"`)}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "Attempt.item_id"`)}
	}
	if _, ok := _c.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`ent: missing required field "Attempt.answers"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "Attempt.correct"`)}
	}
	if _, ok := _c.mutation.Revealed(); !ok {
		return &ValidationError{Name: "revealed", err: errors.New(`ent: missing required field "Attempt.revealed"`)}
	}
	if _, ok := _c.mutation.CycleNumber(); !ok {
		return &ValidationError{Name: "cycle_number", err: errors.New(`ent: missing required field "Attempt.cycle_number"`)}
	}
	return nil
}

func (_c *AttemptCreate) sqlSave(ctx context.Context) (*Attempt, error) {
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

func (_c *AttemptCreate) createSpec() (*Attempt, *sqlgraph.CreateSpec) {
	var (
		_node = &Attempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attempt.Table, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(attempt.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(attempt.FieldItemID, field.TypeInt64, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(attempt.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(attempt.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Revealed(); ok {
		_spec.SetField(attempt.FieldRevealed, field.TypeBool, value)
		_node.Revealed = value
	}
	if value, ok := _c.mutation.CycleNumber(); ok {
		_spec.SetField(attempt.FieldCycleNumber, field.TypeInt, value)
		_node.CycleNumber = value
	}
	return _node, _spec
}

// AttemptCreateBulk is the builder for creating many Attempt entities in bulk.
type AttemptCreateBulk struct {
	config
	err      error
	builders []*AttemptCreate
}

// Save creates the Attempt entities in the database.
func (_c *AttemptCreateBulk) Save(ctx context.Context) ([]*Attempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptMutation)
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
func (_c *AttemptCreateBulk) SaveX(ctx context.Context) []*Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
