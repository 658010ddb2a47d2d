// Code generated by ent, DO NOT EDIT.

package fieldmapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the fieldmapping type in the database.
	Label = "field_mapping"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldFieldName holds the string denoting the field_name field in the database.
	FieldFieldName = "field_name"
	// FieldValidationKind holds the string denoting the validation_kind field in the database.
	FieldValidationKind = "validation_kind"
	// FieldValidationPattern holds the string denoting the validation_pattern field in the database.
	FieldValidationPattern = "validation_pattern"
	// FieldValidationMessage holds the string denoting the validation_message field in the database.
	FieldValidationMessage = "validation_message"
	// FieldRequired holds the string denoting the required field in the database.
	FieldRequired = "required"
	// FieldCustomRules holds the string denoting the custom_rules field in the database.
	FieldCustomRules = "custom_rules"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProfile holds the string denoting the profile edge name in mutations.
	EdgeProfile = "profile"
	// Table holds the table name of the fieldmapping in the database.
	Table = "field_mappings"
	// ProfileTable is the table that holds the profile relation/edge.
	ProfileTable = "field_mappings"
	// ProfileInverseTable is the table name for the Profile entity.
	// It exists in this package in order to avoid circular dependency with the "profile" package.
	ProfileInverseTable = "profiles"
	// ProfileColumn is the table column denoting the profile relation/edge.
	ProfileColumn = "profile_id"
)

// Columns holds all SQL columns for fieldmapping fields.
var Columns = []string{
	FieldID,
	FieldProfileID,
	FieldFieldName,
	FieldValidationKind,
	FieldValidationPattern,
	FieldValidationMessage,
	FieldRequired,
	FieldCustomRules,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	FieldNameValidator func(string) error
	// DefaultRequired holds the default value on creation for the "required" field.
	DefaultRequired bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the FieldMapping queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByFieldName orders the results by the field_name field.
func ByFieldName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldName, opts...).ToFunc()
}

// ByValidationKind orders the results by the validation_kind field.
func ByValidationKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationKind, opts...).ToFunc()
}

// ByValidationPattern orders the results by the validation_pattern field.
func ByValidationPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationPattern, opts...).ToFunc()
}

// ByValidationMessage orders the results by the validation_message field.
func ByValidationMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationMessage, opts...).ToFunc()
}

// ByRequired orders the results by the required field.
func ByRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequired, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProfileField orders the results by profile field.
func ByProfileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProfileStep(), sql.OrderByField(field, opts...))
	}
}
func newProfileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProfileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
	)
}
