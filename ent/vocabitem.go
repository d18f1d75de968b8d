// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wortiz/ent/vocabitem"
)

// VocabItem is the model entity for the VocabItem schema.
type VocabItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Item kind: noun or verb
	Kind string `json:"kind,omitempty"`
	// Slovenian prompt shown to the learner
	Translation string `json:"translation,omitempty"`
	// Input field labels, one per expected answer
	Labels []string `json:"labels,omitempty"`
	// Expected German answers, parallel to labels
	Solution     []string `json:"solution,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VocabItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vocabitem.FieldLabels, vocabitem.FieldSolution:
			values[i] = new([]byte)
		case vocabitem.FieldID:
			values[i] = new(sql.NullInt64)
		case vocabitem.FieldKind, vocabitem.FieldTranslation:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VocabItem fields.
func (_m *VocabItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vocabitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case vocabitem.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case vocabitem.FieldTranslation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field translation", values[i])
			} else if value.Valid {
				_m.Translation = value.String
			}
		case vocabitem.FieldLabels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field labels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Labels); err != nil {
					return fmt.Errorf("unmarshal field labels: %w", err)
				}
			}
		case vocabitem.FieldSolution:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field solution", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Solution); err != nil {
					return fmt.Errorf("unmarshal field solution: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VocabItem.
// This includes values selected through modifiers, order, etc.
func (_m *VocabItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VocabItem.
// Note that you need to call VocabItem.Unwrap() before calling this method if this VocabItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VocabItem) Update() *VocabItemUpdateOne {
	return NewVocabItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VocabItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VocabItem) Unwrap() *VocabItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VocabItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VocabItem) String() string {
	var builder strings.Builder
	builder.WriteString("VocabItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("translation=")
	builder.WriteString(_m.Translation)
	builder.WriteString(", ")
	builder.WriteString("labels=")
	builder.WriteString(fmt.Sprintf("%v", _m.Labels))
	builder.WriteString(", ")
	builder.WriteString("solution=")
	builder.WriteString(fmt.Sprintf("%v", _m.Solution))
	builder.WriteByte(')')
	return builder.String()
}

// VocabItems is a parsable slice of VocabItem.
type VocabItems []*VocabItem
