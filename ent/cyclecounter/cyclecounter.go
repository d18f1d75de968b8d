// Code generated by ent, DO NOT EDIT.

package cyclecounter

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the cyclecounter type in the database.
	Label = "cycle_counter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldCycles holds the string denoting the cycles field in the database.
	FieldCycles = "cycles"
	// FieldLastCycleAt holds the string denoting the last_cycle_at field in the database.
	FieldLastCycleAt = "last_cycle_at"
	// Table holds the table name of the cyclecounter in the database.
	Table = "cycle_counters"
)

// Columns holds all SQL columns for cyclecounter fields.
var Columns = []string{
	FieldID,
	FieldKind,
	FieldCycles,
	FieldLastCycleAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCycles holds the default value on creation for the "cycles" field.
	DefaultCycles int
)

// OrderOption defines the ordering options for the CycleCounter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByCycles orders the results by the cycles field.
func ByCycles(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCycles, opts...).ToFunc()
}

// ByLastCycleAt orders the results by the last_cycle_at field.
func ByLastCycleAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCycleAt, opts...).ToFunc()
}
