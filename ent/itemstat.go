// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wortiz/ent/itemstat"
)

// ItemStat is the model entity for the ItemStat schema.
type ItemStat struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID int64 `json:"item_id,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct int `json:"correct,omitempty"`
	// Wrong holds the value of the "wrong" field.
	Wrong int `json:"wrong,omitempty"`
	// Reveals holds the value of the "reveals" field.
	Reveals int `json:"reveals,omitempty"`
	// Consecutive correct answers, reset on a miss
	Streak int `json:"streak,omitempty"`
	// When the item was last attempted
	LastSeen     *time.Time `json:"last_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ItemStat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case itemstat.FieldID, itemstat.FieldItemID, itemstat.FieldAttempts, itemstat.FieldCorrect, itemstat.FieldWrong, itemstat.FieldReveals, itemstat.FieldStreak:
			values[i] = new(sql.NullInt64)
		case itemstat.FieldKind:
			values[i] = new(sql.NullString)
		case itemstat.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ItemStat fields.
func (_m *ItemStat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case itemstat.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case itemstat.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case itemstat.FieldItemID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.Int64
			}
		case itemstat.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case itemstat.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case itemstat.FieldWrong:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wrong", values[i])
			} else if value.Valid {
				_m.Wrong = int(value.Int64)
			}
		case itemstat.FieldReveals:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reveals", values[i])
			} else if value.Valid {
				_m.Reveals = int(value.Int64)
			}
		case itemstat.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		case itemstat.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = new(time.Time)
				*_m.LastSeen = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ItemStat.
// This includes values selected through modifiers, order, etc.
func (_m *ItemStat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ItemStat.
// Note that you need to call ItemStat.Unwrap() before calling this method if this ItemStat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ItemStat) Update() *ItemStatUpdateOne {
	return NewItemStatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ItemStat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ItemStat) Unwrap() *ItemStat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ItemStat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ItemStat) String() string {
	var builder strings.Builder
	builder.WriteString("ItemStat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemID))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("wrong=")
	builder.WriteString(fmt.Sprintf("%v", _m.Wrong))
	builder.WriteString(", ")
	builder.WriteString("reveals=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reveals))
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteString(", ")
	if v := _m.LastSeen; v != nil {
		builder.WriteString("last_seen=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ItemStats is a parsable slice of ItemStat.
type ItemStats []*ItemStat
