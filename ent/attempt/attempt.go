// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attempt type in the database.
	Label = "attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldRevealed holds the string denoting the revealed field in the database.
	FieldRevealed = "revealed"
	// FieldCycleNumber holds the string denoting the cycle_number field in the database.
	FieldCycleNumber = "cycle_number"
	// Table holds the table name of the attempt in the database.
	Table = "attempts"
)

// Columns holds all SQL columns for attempt fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldKind,
	FieldItemID,
	FieldAnswers,
	FieldCorrect,
	FieldRevealed,
	FieldCycleNumber,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultCycleNumber holds the default value on creation for the "cycle_number" field.
	DefaultCycleNumber int
)

// OrderOption defines the ordering options for the Attempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByRevealed orders the results by the revealed field.
func ByRevealed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevealed, opts...).ToFunc()
}

// ByCycleNumber orders the results by the cycle_number field.
func ByCycleNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCycleNumber, opts...).ToFunc()
}
