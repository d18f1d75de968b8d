// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/wortiz/ent/vocabitem"
)

// VocabItemCreate is the builder for creating a VocabItem entity.
type VocabItemCreate struct {
	config
	mutation *VocabItemMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *VocabItemCreate) SetKind(v string) *VocabItemCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTranslation sets the "translation" field.
func (_c *VocabItemCreate) SetTranslation(v string) *VocabItemCreate {
	_c.mutation.SetTranslation(v)
	return _c
}

// SetLabels sets the "labels" field.
func (_c *VocabItemCreate) SetLabels(v []string) *VocabItemCreate {
	_c.mutation.SetLabels(v)
	return _c
}

// SetSolution sets the "solution" field.
func (_c *VocabItemCreate) SetSolution(v []string) *VocabItemCreate {
	_c.mutation.SetSolution(v)
	return _c
}

// Mutation returns the VocabItemMutation object of the builder.
func (_c *VocabItemCreate) Mutation() *VocabItemMutation {
	return _c.mutation
}

// Save creates the VocabItem in the database.
func (_c *VocabItemCreate) Save(ctx context.Context) (*VocabItem, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VocabItemCreate) SaveX(ctx context.Context) *VocabItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VocabItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VocabItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VocabItemCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "VocabItem.kind"`)}
	}
	if _, ok := _c.mutation.Translation(); !ok {
		return &ValidationError{Name: "translation", err: errors.New(`ent: missing required field "VocabItem.translation"`)}
	}
	if _, ok := _c.mutation.Labels(); !ok {
		return &ValidationError{Name: "labels", err: errors.New(`ent: missing required field "VocabItem.labels"`)}
	}
	if _, ok := _c.mutation.Solution(); !ok {
		return &ValidationError{Name: "solution", err: errors.New(`ent: missing required field "VocabItem.solution"`)}
	}
	return nil
}

func (_c *VocabItemCreate) sqlSave(ctx context.Context) (*VocabItem, error) {
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

func (_c *VocabItemCreate) createSpec() (*VocabItem, *sqlgraph.CreateSpec) {
	var (
		_node = &VocabItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vocabitem.Table, sqlgraph.NewFieldSpec(vocabitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(vocabitem.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Translation(); ok {
		_spec.SetField(vocabitem.FieldTranslation, field.TypeString, value)
		_node.Translation = value
	}
	if value, ok := _c.mutation.Labels(); ok {
		_spec.SetField(vocabitem.FieldLabels, field.TypeJSON, value)
		_node.Labels = value
	}
	if value, ok := _c.mutation.Solution(); ok {
		_spec.SetField(vocabitem.FieldSolution, field.TypeJSON, value)
		_node.Solution = value
	}
	return _node, _spec
}

// VocabItemCreateBulk is the builder for creating many VocabItem entities in bulk.
type VocabItemCreateBulk struct {
	config
	err      error
	builders []*VocabItemCreate
}

// Save creates the VocabItem entities in the database.
func (_c *VocabItemCreateBulk) Save(ctx context.Context) ([]*VocabItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VocabItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VocabItemMutation)
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
func (_c *VocabItemCreateBulk) SaveX(ctx context.Context) []*VocabItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VocabItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VocabItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
