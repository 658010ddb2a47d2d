// Code generated by ent, DO NOT EDIT.

package subscriptiontier

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the subscriptiontier type in the database.
	Label = "subscription_tier"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldMonthlyExportLimit holds the string denoting the monthly_export_limit field in the database.
	FieldMonthlyExportLimit = "monthly_export_limit"
	// FieldFileSizeLimitMB holds the string denoting the file_size_limit_mb field in the database.
	FieldFileSizeLimitMB = "file_size_limit_mb"
	// FieldFeatures holds the string denoting the features field in the database.
	FieldFeatures = "features"
	// Table holds the table name of the subscriptiontier in the database.
	Table = "subscription_tiers"
)

// Columns holds all SQL columns for subscriptiontier fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldMonthlyExportLimit,
	FieldFileSizeLimitMB,
	FieldFeatures,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultMonthlyExportLimit holds the default value on creation for the "monthly_export_limit" field.
	DefaultMonthlyExportLimit int
	// DefaultFileSizeLimitMB holds the default value on creation for the "file_size_limit_mb" field.
	DefaultFileSizeLimitMB int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the SubscriptionTier queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByMonthlyExportLimit orders the results by the monthly_export_limit field.
func ByMonthlyExportLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyExportLimit, opts...).ToFunc()
}

// ByFileSizeLimitMB orders the results by the file_size_limit_mb field.
func ByFileSizeLimitMB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSizeLimitMB, opts...).ToFunc()
}
