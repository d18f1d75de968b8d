// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wortiz/ent/cyclecounter"
)

// CycleCounter is the model entity for the CycleCounter schema.
type CycleCounter struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// Cycles holds the value of the "cycles" field.
	Cycles int `json:"cycles,omitempty"`
	// LastCycleAt holds the value of the "last_cycle_at" field.
	LastCycleAt  *time.Time `json:"last_cycle_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CycleCounter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cyclecounter.FieldID, cyclecounter.FieldCycles:
			values[i] = new(sql.NullInt64)
		case cyclecounter.FieldKind:
			values[i] = new(sql.NullString)
		case cyclecounter.FieldLastCycleAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CycleCounter fields.
func (_m *CycleCounter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cyclecounter.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case cyclecounter.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case cyclecounter.FieldCycles:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cycles", values[i])
			} else if value.Valid {
				_m.Cycles = int(value.Int64)
			}
		case cyclecounter.FieldLastCycleAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_cycle_at", values[i])
			} else if value.Valid {
				_m.LastCycleAt = new(time.Time)
				*_m.LastCycleAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CycleCounter.
// This includes values selected through modifiers, order, etc.
func (_m *CycleCounter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CycleCounter.
// Note that you need to call CycleCounter.Unwrap() before calling this method if this CycleCounter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CycleCounter) Update() *CycleCounterUpdateOne {
	return NewCycleCounterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CycleCounter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CycleCounter) Unwrap() *CycleCounter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CycleCounter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CycleCounter) String() string {
	var builder strings.Builder
	builder.WriteString("CycleCounter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("cycles=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cycles))
	builder.WriteString(", ")
	if v := _m.LastCycleAt; v != nil {
		builder.WriteString("last_cycle_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CycleCounters is a parsable slice of CycleCounter.
type CycleCounters []*CycleCounter
