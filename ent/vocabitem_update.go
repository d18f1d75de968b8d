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
	"github.com/abhisek/wortiz/ent/predicate"
	"github.com/abhisek/wortiz/ent/vocabitem"
)

// VocabItemUpdate is the builder for updating VocabItem entities.
type VocabItemUpdate struct {
	config
	hooks    []Hook
	mutation *VocabItemMutation
}

// Where appends a list predicates to the VocabItemUpdate builder.
func (_u *VocabItemUpdate) Where(ps ...predicate.VocabItem) *VocabItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *VocabItemUpdate) SetKind(v string) *VocabItemUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *VocabItemUpdate) SetNillableKind(v *string) *VocabItemUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTranslation sets the "translation" field.
func (_u *VocabItemUpdate) SetTranslation(v string) *VocabItemUpdate {
	_u.mutation.SetTranslation(v)
	return _u
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (_u *VocabItemUpdate) SetNillableTranslation(v *string) *VocabItemUpdate {
	if v != nil {
		_u.SetTranslation(*v)
	}
	return _u
}

// SetLabels sets the "labels" field.
func (_u *VocabItemUpdate) SetLabels(v []string) *VocabItemUpdate {
	_u.mutation.SetLabels(v)
	return _u
}

// AppendLabels appends value to the "labels" field.
func (_u *VocabItemUpdate) AppendLabels(v []string) *VocabItemUpdate {
	_u.mutation.AppendLabels(v)
	return _u
}

// SetSolution sets the "solution" field.
func (_u *VocabItemUpdate) SetSolution(v []string) *VocabItemUpdate {
	_u.mutation.SetSolution(v)
	return _u
}

// AppendSolution appends value to the "solution" field.
func (_u *VocabItemUpdate) AppendSolution(v []string) *VocabItemUpdate {
	_u.mutation.AppendSolution(v)
	return _u
}

// Mutation returns the VocabItemMutation object of the builder.
func (_u *VocabItemUpdate) Mutation() *VocabItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VocabItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VocabItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VocabItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VocabItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VocabItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(vocabitem.Table, vocabitem.Columns, sqlgraph.NewFieldSpec(vocabitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(vocabitem.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Translation(); ok {
		_spec.SetField(vocabitem.FieldTranslation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Labels(); ok {
		_spec.SetField(vocabitem.FieldLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLabels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vocabitem.FieldLabels, value)
		})
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(vocabitem.FieldSolution, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSolution(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vocabitem.FieldSolution, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VocabItemUpdateOne is the builder for updating a single VocabItem entity.
type VocabItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VocabItemMutation
}

// SetKind sets the "kind" field.
func (_u *VocabItemUpdateOne) SetKind(v string) *VocabItemUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *VocabItemUpdateOne) SetNillableKind(v *string) *VocabItemUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTranslation sets the "translation" field.
func (_u *VocabItemUpdateOne) SetTranslation(v string) *VocabItemUpdateOne {
	_u.mutation.SetTranslation(v)
	return _u
}

// SetNillableTranslation sets the "translation" field if the given value is not nil.
func (_u *VocabItemUpdateOne) SetNillableTranslation(v *string) *VocabItemUpdateOne {
	if v != nil {
		_u.SetTranslation(*v)
	}
	return _u
}

// SetLabels sets the "labels" field.
func (_u *VocabItemUpdateOne) SetLabels(v []string) *VocabItemUpdateOne {
	_u.mutation.SetLabels(v)
	return _u
}

// AppendLabels appends value to the "labels" field.
func (_u *VocabItemUpdateOne) AppendLabels(v []string) *VocabItemUpdateOne {
	_u.mutation.AppendLabels(v)
	return _u
}

// SetSolution sets the "solution" field.
func (_u *VocabItemUpdateOne) SetSolution(v []string) *VocabItemUpdateOne {
	_u.mutation.SetSolution(v)
	return _u
}

// AppendSolution appends value to the "solution" field.
func (_u *VocabItemUpdateOne) AppendSolution(v []string) *VocabItemUpdateOne {
	_u.mutation.AppendSolution(v)
	return _u
}

// Mutation returns the VocabItemMutation object of the builder.
func (_u *VocabItemUpdateOne) Mutation() *VocabItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the VocabItemUpdate builder.
func (_u *VocabItemUpdateOne) Where(ps ...predicate.VocabItem) *VocabItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VocabItemUpdateOne) Select(field string, fields ...string) *VocabItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VocabItem entity.
func (_u *VocabItemUpdateOne) Save(ctx context.Context) (*VocabItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VocabItemUpdateOne) SaveX(ctx context.Context) *VocabItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VocabItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VocabItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VocabItemUpdateOne) sqlSave(ctx context.Context) (_node *VocabItem, err error) {
	_spec := sqlgraph.NewUpdateSpec(vocabitem.Table, vocabitem.Columns, sqlgraph.NewFieldSpec(vocabitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VocabItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vocabitem.FieldID)
		for _, f := range fields {
			if !vocabitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vocabitem.FieldID {
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
		_spec.SetField(vocabitem.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Translation(); ok {
		_spec.SetField(vocabitem.FieldTranslation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Labels(); ok {
		_spec.SetField(vocabitem.FieldLabels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLabels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vocabitem.FieldLabels, value)
		})
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(vocabitem.FieldSolution, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSolution(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vocabitem.FieldSolution, value)
		})
	}
	_node = &VocabItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
