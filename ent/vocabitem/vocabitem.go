// Code generated by ent, DO NOT EDIT.

package vocabitem

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the vocabitem type in the database.
	Label = "vocab_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldTranslation holds the string denoting the translation field in the database.
	FieldTranslation = "translation"
	// FieldLabels holds the string denoting the labels field in the database.
	FieldLabels = "labels"
	// FieldSolution holds the string denoting the solution field in the database.
	FieldSolution = "solution"
	// Table holds the table name of the vocabitem in the database.
	Table = "vocab_items"
)

// Columns holds all SQL columns for vocabitem fields.
var Columns = []string{
	FieldID,
	FieldKind,
	FieldTranslation,
	FieldLabels,
	FieldSolution,
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

// OrderOption defines the ordering options for the VocabItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByTranslation orders the results by the translation field.
func ByTranslation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranslation, opts...).ToFunc()
}
