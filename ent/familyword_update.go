// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/wortiz/ent/familyword"
	"github.com/abhisek/wortiz/ent/predicate"
)

// FamilyWordUpdate is the builder for updating FamilyWord entities.
type FamilyWordUpdate struct {
	config
	hooks    []Hook
	mutation *FamilyWordMutation
}

// Where appends a list predicates to the FamilyWordUpdate builder.
func (_u *FamilyWordUpdate) Where(ps ...predicate.FamilyWord) *FamilyWordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLemma sets the "lemma" field.
func (_u *FamilyWordUpdate) SetLemma(v string) *FamilyWordUpdate {
	_u.mutation.SetLemma(v)
	return _u
}

// SetNillableLemma sets the "lemma" field if the given value is not nil.
func (_u *FamilyWordUpdate) SetNillableLemma(v *string) *FamilyWordUpdate {
	if v != nil {
		_u.SetLemma(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *FamilyWordUpdate) SetGender(v string) *FamilyWordUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *FamilyWordUpdate) SetNillableGender(v *string) *FamilyWordUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetPlural sets the "plural" field.
func (_u *FamilyWordUpdate) SetPlural(v string) *FamilyWordUpdate {
	_u.mutation.SetPlural(v)
	return _u
}

// SetNillablePlural sets the "plural" field if the given value is not nil.
func (_u *FamilyWordUpdate) SetNillablePlural(v *string) *FamilyWordUpdate {
	if v != nil {
		_u.SetPlural(*v)
	}
	return _u
}

// SetSlSingular sets the "sl_singular" field.
func (_u *FamilyWordUpdate) SetSlSingular(v string) *FamilyWordUpdate {
	_u.mutation.SetSlSingular(v)
	return _u
}

// SetNillableSlSingular sets the "sl_singular" field if the given value is not nil.
func (_u *FamilyWordUpdate) SetNillableSlSingular(v *string) *FamilyWordUpdate {
	if v != nil {
		_u.SetSlSingular(*v)
	}
	return _u
}

// SetSlPlural sets the "sl_plural" field.
func (_u *FamilyWordUpdate) SetSlPlural(v string) *FamilyWordUpdate {
	_u.mutation.SetSlPlural(v)
	return _u
}

// SetNillableSlPlural sets the "sl_plural" field if the given value is not nil.
func (_u *FamilyWordUpdate) SetNillableSlPlural(v *string) *FamilyWordUpdate {
	if v != nil {
		_u.SetSlPlural(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *FamilyWordUpdate) SetLevel(v string) *FamilyWordUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *FamilyWordUpdate) SetNillableLevel(v *string) *FamilyWordUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// Mutation returns the FamilyWordMutation object of the builder.
func (_u *FamilyWordUpdate) Mutation() *FamilyWordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FamilyWordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FamilyWordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FamilyWordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FamilyWordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FamilyWordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(familyword.Table, familyword.Columns, sqlgraph.NewFieldSpec(familyword.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Lemma(); ok {
		_spec.SetField(familyword.FieldLemma, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(familyword.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plural(); ok {
		_spec.SetField(familyword.FieldPlural, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlSingular(); ok {
		_spec.SetField(familyword.FieldSlSingular, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlPlural(); ok {
		_spec.SetField(familyword.FieldSlPlural, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(familyword.FieldLevel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{familyword.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FamilyWordUpdateOne is the builder for updating a single FamilyWord entity.
type FamilyWordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FamilyWordMutation
}

// SetLemma sets the "lemma" field.
func (_u *FamilyWordUpdateOne) SetLemma(v string) *FamilyWordUpdateOne {
	_u.mutation.SetLemma(v)
	return _u
}

// SetNillableLemma sets the "lemma" field if the given value is not nil.
func (_u *FamilyWordUpdateOne) SetNillableLemma(v *string) *FamilyWordUpdateOne {
	if v != nil {
		_u.SetLemma(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *FamilyWordUpdateOne) SetGender(v string) *FamilyWordUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *FamilyWordUpdateOne) SetNillableGender(v *string) *FamilyWordUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetPlural sets the "plural" field.
func (_u *FamilyWordUpdateOne) SetPlural(v string) *FamilyWordUpdateOne {
	_u.mutation.SetPlural(v)
	return _u
}

// SetNillablePlural sets the "plural" field if the given value is not nil.
func (_u *FamilyWordUpdateOne) SetNillablePlural(v *string) *FamilyWordUpdateOne {
	if v != nil {
		_u.SetPlural(*v)
	}
	return _u
}

// SetSlSingular sets the "sl_singular" field.
func (_u *FamilyWordUpdateOne) SetSlSingular(v string) *FamilyWordUpdateOne {
	_u.mutation.SetSlSingular(v)
	return _u
}

// SetNillableSlSingular sets the "sl_singular" field if the given value is not nil.
func (_u *FamilyWordUpdateOne) SetNillableSlSingular(v *string) *FamilyWordUpdateOne {
	if v != nil {
		_u.SetSlSingular(*v)
	}
	return _u
}

// SetSlPlural sets the "sl_plural" field.
func (_u *FamilyWordUpdateOne) SetSlPlural(v string) *FamilyWordUpdateOne {
	_u.mutation.SetSlPlural(v)
	return _u
}

// SetNillableSlPlural sets the "sl_plural" field if the given value is not nil.
func (_u *FamilyWordUpdateOne) SetNillableSlPlural(v *string) *FamilyWordUpdateOne {
	if v != nil {
		_u.SetSlPlural(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *FamilyWordUpdateOne) SetLevel(v string) *FamilyWordUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *FamilyWordUpdateOne) SetNillableLevel(v *string) *FamilyWordUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// Mutation returns the FamilyWordMutation object of the builder.
func (_u *FamilyWordUpdateOne) Mutation() *FamilyWordMutation {
	return _u.mutation
}

// Where appends a list predicates to the FamilyWordUpdate builder.
func (_u *FamilyWordUpdateOne) Where(ps ...predicate.FamilyWord) *FamilyWordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FamilyWordUpdateOne) Select(field string, fields ...string) *FamilyWordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FamilyWord entity.
func (_u *FamilyWordUpdateOne) Save(ctx context.Context) (*FamilyWord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FamilyWordUpdateOne) SaveX(ctx context.Context) *FamilyWord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FamilyWordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FamilyWordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FamilyWordUpdateOne) sqlSave(ctx context.Context) (_node *FamilyWord, err error) {
	_spec := sqlgraph.NewUpdateSpec(familyword.Table, familyword.Columns, sqlgraph.NewFieldSpec(familyword.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FamilyWord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, familyword.FieldID)
		for _, f := range fields {
			if !familyword.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != familyword.FieldID {
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
	if value, ok := _u.mutation.Lemma(); ok {
		_spec.SetField(familyword.FieldLemma, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(familyword.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plural(); ok {
		_spec.SetField(familyword.FieldPlural, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlSingular(); ok {
		_spec.SetField(familyword.FieldSlSingular, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlPlural(); ok {
		_spec.SetField(familyword.FieldSlPlural, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(familyword.FieldLevel, field.TypeString, value)
	}
	_node = &FamilyWord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{familyword.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
