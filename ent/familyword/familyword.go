// Code generated by ent, DO NOT EDIT.

package familyword

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the familyword type in the database.
	Label = "family_word"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLemma holds the string denoting the lemma field in the database.
	FieldLemma = "lemma"
	// FieldGender holds the string denoting the gender field in the database.
	FieldGender = "gender"
	// FieldPlural holds the string denoting the plural field in the database.
	FieldPlural = "plural"
	// FieldSlSingular holds the string denoting the sl_singular field in the database.
	FieldSlSingular = "sl_singular"
	// FieldSlPlural holds the string denoting the sl_plural field in the database.
	FieldSlPlural = "sl_plural"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// Table holds the table name of the familyword in the database.
	Table = "family_words"
)

// Columns holds all SQL columns for familyword fields.
var Columns = []string{
	FieldID,
	FieldLemma,
	FieldGender,
	FieldPlural,
	FieldSlSingular,
	FieldSlPlural,
	FieldLevel,
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
	// DefaultPlural holds the default value on creation for the "plural" field.
	DefaultPlural string
	// DefaultSlPlural holds the default value on creation for the "sl_plural" field.
	DefaultSlPlural string
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel string
)

// OrderOption defines the ordering options for the FamilyWord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLemma orders the results by the lemma field.
func ByLemma(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLemma, opts...).ToFunc()
}

// ByGender orders the results by the gender field.
func ByGender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGender, opts...).ToFunc()
}

// ByPlural orders the results by the plural field.
func ByPlural(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlural, opts...).ToFunc()
}

// BySlSingular orders the results by the sl_singular field.
func BySlSingular(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlSingular, opts...).ToFunc()
}

// BySlPlural orders the results by the sl_plural field.
func BySlPlural(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlPlural, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}
