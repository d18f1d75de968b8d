// Code generated by ent, DO NOT EDIT.

package itemstat

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the itemstat type in the database.
	Label = "item_stat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldWrong holds the string denoting the wrong field in the database.
	FieldWrong = "wrong"
	// FieldReveals holds the string denoting the reveals field in the database.
	FieldReveals = "reveals"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// Table holds the table name of the itemstat in the database.
	Table = "item_stats"
)

// Columns holds all SQL columns for itemstat fields.
var Columns = []string{
	FieldID,
	FieldKind,
	FieldItemID,
	FieldAttempts,
	FieldCorrect,
	FieldWrong,
	FieldReveals,
	FieldStreak,
	FieldLastSeen,
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
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultCorrect holds the default value on creation for the "correct" field.
	DefaultCorrect int
	// DefaultWrong holds the default value on creation for the "wrong" field.
	DefaultWrong int
	// DefaultReveals holds the default value on creation for the "reveals" field.
	DefaultReveals int
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
)

// OrderOption defines the ordering options for the ItemStat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByWrong orders the results by the wrong field.
func ByWrong(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWrong, opts...).ToFunc()
}

// ByReveals orders the results by the reveals field.
func ByReveals(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReveals, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}
