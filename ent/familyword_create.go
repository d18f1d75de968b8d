// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/wortiz/ent/familyword"
)

// FamilyWordCreate is the builder for creating a FamilyWord entity.
type FamilyWordCreate struct {
	config
	mutation *FamilyWordMutation
	hooks    []Hook
}

// SetLemma sets the "lemma" field.
func (_c *FamilyWordCreate) SetLemma(v string) *FamilyWordCreate {
	_c.mutation.SetLemma(v)
	return _c
}

// SetGender sets the "gender" field.
func (_c *FamilyWordCreate) SetGender(v string) *FamilyWordCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetPlural sets the "plural" field.
func (_c *FamilyWordCreate) SetPlural(v string) *FamilyWordCreate {
	_c.mutation.SetPlural(v)
	return _c
}

// SetNillablePlural sets the "plural" field if the given value is not nil.
func (_c *FamilyWordCreate) SetNillablePlural(v *string) *FamilyWordCreate {
	if v != nil {
		_c.SetPlural(*v)
	}
	return _c
}

// SetSlSingular sets the "sl_singular" field.
func (_c *FamilyWordCreate) SetSlSingular(v string) *FamilyWordCreate {
	_c.mutation.SetSlSingular(v)
	return _c
}

// SetSlPlural sets the "sl_plural" field.
func (_c *FamilyWordCreate) SetSlPlural(v string) *FamilyWordCreate {
	_c.mutation.SetSlPlural(v)
	return _c
}

// SetNillableSlPlural sets the "sl_plural" field if the given value is not nil.
func (_c *FamilyWordCreate) SetNillableSlPlural(v *string) *FamilyWordCreate {
	if v != nil {
		_c.SetSlPlural(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *FamilyWordCreate) SetLevel(v string) *FamilyWordCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *FamilyWordCreate) SetNillableLevel(v *string) *FamilyWordCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// Mutation returns the FamilyWordMutation object of the builder.
func (_c *FamilyWordCreate) Mutation() *FamilyWordMutation {
	return _c.mutation
}

// Save creates the FamilyWord in the database.
func (_c *FamilyWordCreate) Save(ctx context.Context) (*FamilyWord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FamilyWordCreate) SaveX(ctx context.Context) *FamilyWord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FamilyWordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FamilyWordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FamilyWordCreate) defaults() {
	if _, ok := _c.mutation.Plural(); !ok {
		v := familyword.DefaultPlural
		_c.mutation.SetPlural(v)
	}
	if _, ok := _c.mutation.SlPlural(); !ok {
		v := familyword.DefaultSlPlural
		_c.mutation.SetSlPlural(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := familyword.DefaultLevel
		_c.mutation.SetLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FamilyWordCreate) check() error {
	if _, ok := _c.mutation.Lemma(); !ok {
		return &ValidationError{Name: "lemma", err: errors.New(`ent: missing required field "FamilyWord.lemma"`)}
	}
	if _, ok := _c.mutation.Gender(); !ok {
		return &ValidationError{Name: "gender", err: errors.New(`ent: missing required field "FamilyWord.gender"`)}
	}
	if _, ok := _c.mutation.Plural(); !ok {
		return &ValidationError{Name: "plural", err: errors.New(`ent: missing required field "FamilyWord.plural"`)}
	}
	if _, ok := _c.mutation.SlSingular(); !ok {
		return &ValidationError{Name: "sl_singular", err: errors.New(`ent: missing required field "FamilyWord.sl_singular"`)}
	}
	if _, ok := _c.mutation.SlPlural(); !ok {
		return &ValidationError{Name: "sl_plural", err: errors.New(`ent: missing required field "FamilyWord.sl_plural"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "FamilyWord.level"`)}
	}
	return nil
}

func (_c *FamilyWordCreate) sqlSave(ctx context.Context) (*FamilyWord, error) {
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

func (_c *FamilyWordCreate) createSpec() (*FamilyWord, *sqlgraph.CreateSpec) {
	var (
		_node = &FamilyWord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(familyword.Table, sqlgraph.NewFieldSpec(familyword.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Lemma(); ok {
		_spec.SetField(familyword.FieldLemma, field.TypeString, value)
		_node.Lemma = value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(familyword.FieldGender, field.TypeString, value)
		_node.Gender = value
	}
	if value, ok := _c.mutation.Plural(); ok {
		_spec.SetField(familyword.FieldPlural, field.TypeString, value)
		_node.Plural = value
	}
	if value, ok := _c.mutation.SlSingular(); ok {
		_spec.SetField(familyword.FieldSlSingular, field.TypeString, value)
		_node.SlSingular = value
	}
	if value, ok := _c.mutation.SlPlural(); ok {
		_spec.SetField(familyword.FieldSlPlural, field.TypeString, value)
		_node.SlPlural = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(familyword.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	return _node, _spec
}

// FamilyWordCreateBulk is the builder for creating many FamilyWord entities in bulk.
type FamilyWordCreateBulk struct {
	config
	err      error
	builders []*FamilyWordCreate
}

// Save creates the FamilyWord entities in the database.
func (_c *FamilyWordCreateBulk) Save(ctx context.Context) ([]*FamilyWord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FamilyWord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FamilyWordMutation)
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
func (_c *FamilyWordCreateBulk) SaveX(ctx context.Context) []*FamilyWord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FamilyWordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FamilyWordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
