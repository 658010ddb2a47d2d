// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/subscriptiontier"
)

// SubscriptionTier is the model entity for the SubscriptionTier schema.
type SubscriptionTier struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// MonthlyExportLimit holds the value of the "monthly_export_limit" field.
	MonthlyExportLimit int `json:"monthly_export_limit,omitempty"`
	// FileSizeLimitMB holds the value of the "file_size_limit_mb" field.
	FileSizeLimitMB int `json:"file_size_limit_mb,omitempty"`
	// Features holds the value of the "features" field.
	Features     []string `json:"features,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubscriptionTier) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subscriptiontier.FieldFeatures:
			values[i] = new([]byte)
		case subscriptiontier.FieldMonthlyExportLimit, subscriptiontier.FieldFileSizeLimitMB:
			values[i] = new(sql.NullInt64)
		case subscriptiontier.FieldName:
			values[i] = new(sql.NullString)
		case subscriptiontier.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubscriptionTier fields.
func (_m *SubscriptionTier) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subscriptiontier.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case subscriptiontier.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case subscriptiontier.FieldMonthlyExportLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_export_limit", values[i])
			} else if value.Valid {
				_m.MonthlyExportLimit = int(value.Int64)
			}
		case subscriptiontier.FieldFileSizeLimitMB:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size_limit_mb", values[i])
			} else if value.Valid {
				_m.FileSizeLimitMB = int(value.Int64)
			}
		case subscriptiontier.FieldFeatures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field features", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Features); err != nil {
					return fmt.Errorf("unmarshal field features: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubscriptionTier.
// This includes values selected through modifiers, order, etc.
func (_m *SubscriptionTier) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SubscriptionTier.
// Note that you need to call SubscriptionTier.Unwrap() before calling this method if this SubscriptionTier
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubscriptionTier) Update() *SubscriptionTierUpdateOne {
	return NewSubscriptionTierClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubscriptionTier entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubscriptionTier) Unwrap() *SubscriptionTier {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubscriptionTier is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubscriptionTier) String() string {
	var builder strings.Builder
	builder.WriteString("SubscriptionTier(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("monthly_export_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonthlyExportLimit))
	builder.WriteString(", ")
	builder.WriteString("file_size_limit_mb=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSizeLimitMB))
	builder.WriteString(", ")
	builder.WriteString("features=")
	builder.WriteString(fmt.Sprintf("%v", _m.Features))
	builder.WriteByte(')')
	return builder.String()
}

// SubscriptionTiers is a parsable slice of SubscriptionTier.
type SubscriptionTiers []*SubscriptionTier
