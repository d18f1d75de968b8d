// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/wortiz/ent/itemstat"
)

// ItemStatCreate is the builder for creating a ItemStat entity.
type ItemStatCreate struct {
	config
	mutation *ItemStatMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *ItemStatCreate) SetKind(v string) *ItemStatCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *ItemStatCreate) SetItemID(v int64) *ItemStatCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *ItemStatCreate) SetAttempts(v int) *ItemStatCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *ItemStatCreate) SetNillableAttempts(v *int) *ItemStatCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ItemStatCreate) SetCorrect(v int) *ItemStatCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *ItemStatCreate) SetNillableCorrect(v *int) *ItemStatCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetWrong sets the "wrong" field.
func (_c *ItemStatCreate) SetWrong(v int) *ItemStatCreate {
	_c.mutation.SetWrong(v)
	return _c
}

// SetNillableWrong sets the "wrong" field if the given value is not nil.
func (_c *ItemStatCreate) SetNillableWrong(v *int) *ItemStatCreate {
	if v != nil {
		_c.SetWrong(*v)
	}
	return _c
}

// SetReveals sets the "reveals" field.
func (_c *ItemStatCreate) SetReveals(v int) *ItemStatCreate {
	_c.mutation.SetReveals(v)
	return _c
}

// SetNillableReveals sets the "reveals" field if the given value is not nil.
func (_c *ItemStatCreate) SetNillableReveals(v *int) *ItemStatCreate {
	if v != nil {
		_c.SetReveals(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *ItemStatCreate) SetStreak(v int) *ItemStatCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *ItemStatCreate) SetNillableStreak(v *int) *ItemStatCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *ItemStatCreate) SetLastSeen(v time.Time) *ItemStatCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *ItemStatCreate) SetNillableLastSeen(v *time.Time) *ItemStatCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// Mutation returns the ItemStatMutation object of the builder.
func (_c *ItemStatCreate) Mutation() *ItemStatMutation {
	return _c.mutation
}

// Save creates the ItemStat in the database.
func (_c *ItemStatCreate) Save(ctx context.Context) (*ItemStat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemStatCreate) SaveX(ctx context.Context) *ItemStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemStatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemStatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemStatCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := itemstat.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := itemstat.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.Wrong(); !ok {
		v := itemstat.DefaultWrong
		_c.mutation.SetWrong(v)
	}
	if _, ok := _c.mutation.Reveals(); !ok {
		v := itemstat.DefaultReveals
		_c.mutation.SetReveals(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := itemstat.DefaultStreak
		_c.mutation.SetStreak(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemStatCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ItemStat.kind"`)}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ItemStat.item_id"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "ItemStat.attempts"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ItemStat.correct"`)}
	}
	if _, ok := _c.mutation.Wrong(); !ok {
		return &ValidationError{Name: "wrong", err: errors.New(`ent: missing required field "ItemStat.wrong"`)}
	}
	if _, ok := _c.mutation.Reveals(); !ok {
		return &ValidationError{Name: "reveals", err: errors.New(`ent: missing required field "ItemStat.reveals"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "ItemStat.streak"`)}
	}
	return nil
}

func (_c *ItemStatCreate) sqlSave(ctx context.Context) (*ItemStat, error) {
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

func (_c *ItemStatCreate) createSpec() (*ItemStat, *sqlgraph.CreateSpec) {
	var (
		_node = &ItemStat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(itemstat.Table, sqlgraph.NewFieldSpec(itemstat.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(itemstat.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(itemstat.FieldItemID, field.TypeInt64, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(itemstat.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(itemstat.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Wrong(); ok {
		_spec.SetField(itemstat.FieldWrong, field.TypeInt, value)
		_node.Wrong = value
	}
	if value, ok := _c.mutation.Reveals(); ok {
		_spec.SetField(itemstat.FieldReveals, field.TypeInt, value)
		_node.Reveals = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(itemstat.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(itemstat.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = &value
	}
	return _node, _spec
}

// ItemStatCreateBulk is the builder for creating many ItemStat entities in bulk.
type ItemStatCreateBulk struct {
	config
	err      error
	builders []*ItemStatCreate
}

// Save creates the ItemStat entities in the database.
func (_c *ItemStatCreateBulk) Save(ctx context.Context) ([]*ItemStat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ItemStat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemStatMutation)
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
func (_c *ItemStatCreateBulk) SaveX(ctx context.Context) []*ItemStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemStatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemStatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
