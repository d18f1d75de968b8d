// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wortiz/ent/familyword"
)

// FamilyWord is the model entity for the FamilyWord schema.
type FamilyWord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// German singular form, e.g. Mutter
	Lemma string `json:"lemma,omitempty"`
	// Grammatical gender: m, f, n or pl for plural-only words
	Gender string `json:"gender,omitempty"`
	// German plural form, empty for plural-only words
	Plural string `json:"plural,omitempty"`
	// Slovenian singular translation
	SlSingular string `json:"sl_singular,omitempty"`
	// Slovenian plural translation
	SlPlural string `json:"sl_plural,omitempty"`
	// Difficulty band: A1 core family, A2 extended
	Level        string `json:"level,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FamilyWord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case familyword.FieldID:
			values[i] = new(sql.NullInt64)
		case familyword.FieldLemma, familyword.FieldGender, familyword.FieldPlural, familyword.FieldSlSingular, familyword.FieldSlPlural, familyword.FieldLevel:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FamilyWord fields.
func (_m *FamilyWord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case familyword.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case familyword.FieldLemma:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lemma", values[i])
			} else if value.Valid {
				_m.Lemma = value.String
			}
		case familyword.FieldGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gender", values[i])
			} else if value.Valid {
				_m.Gender = value.String
			}
		case familyword.FieldPlural:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plural", values[i])
			} else if value.Valid {
				_m.Plural = value.String
			}
		case familyword.FieldSlSingular:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sl_singular", values[i])
			} else if value.Valid {
				_m.SlSingular = value.String
			}
		case familyword.FieldSlPlural:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sl_plural", values[i])
			} else if value.Valid {
				_m.SlPlural = value.String
			}
		case familyword.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FamilyWord.
// This includes values selected through modifiers, order, etc.
func (_m *FamilyWord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FamilyWord.
// Note that you need to call FamilyWord.Unwrap() before calling this method if this FamilyWord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FamilyWord) Update() *FamilyWordUpdateOne {
	return NewFamilyWordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FamilyWord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FamilyWord) Unwrap() *FamilyWord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FamilyWord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FamilyWord) String() string {
	var builder strings.Builder
	builder.WriteString("FamilyWord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("lemma=")
	builder.WriteString(_m.Lemma)
	builder.WriteString(", ")
	builder.WriteString("gender=")
	builder.WriteString(_m.Gender)
	builder.WriteString(", ")
	builder.WriteString("plural=")
	builder.WriteString(_m.Plural)
	builder.WriteString(", ")
	builder.WriteString("sl_singular=")
	builder.WriteString(_m.SlSingular)
	builder.WriteString(", ")
	builder.WriteString("sl_plural=")
	builder.WriteString(_m.SlPlural)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteByte(')')
	return builder.String()
}

// FamilyWords is a parsable slice of FamilyWord.
type FamilyWords []*FamilyWord
