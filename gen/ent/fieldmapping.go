// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/fieldmapping"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/profile"
)

// FieldMapping is the model entity for the FieldMapping schema.
type FieldMapping struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// FieldName holds the value of the "field_name" field.
	FieldName string `json:"field_name,omitempty"`
	// ValidationKind holds the value of the "validation_kind" field.
	ValidationKind *string `json:"validation_kind,omitempty"`
	// ValidationPattern holds the value of the "validation_pattern" field.
	ValidationPattern *string `json:"validation_pattern,omitempty"`
	// ValidationMessage holds the value of the "validation_message" field.
	ValidationMessage *string `json:"validation_message,omitempty"`
	// Required holds the value of the "required" field.
	Required bool `json:"required,omitempty"`
	// CustomRules holds the value of the "custom_rules" field.
	CustomRules json.RawMessage `json:"custom_rules,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FieldMappingQuery when eager-loading is set.
	Edges        FieldMappingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FieldMappingEdges holds the relations/edges for other nodes in the graph.
type FieldMappingEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FieldMappingEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FieldMapping) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fieldmapping.FieldCustomRules:
			values[i] = new([]byte)
		case fieldmapping.FieldRequired:
			values[i] = new(sql.NullBool)
		case fieldmapping.FieldFieldName, fieldmapping.FieldValidationKind, fieldmapping.FieldValidationPattern, fieldmapping.FieldValidationMessage:
			values[i] = new(sql.NullString)
		case fieldmapping.FieldCreatedAt, fieldmapping.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case fieldmapping.FieldID, fieldmapping.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FieldMapping fields.
func (_m *FieldMapping) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fieldmapping.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case fieldmapping.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case fieldmapping.FieldFieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_name", values[i])
			} else if value.Valid {
				_m.FieldName = value.String
			}
		case fieldmapping.FieldValidationKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_kind", values[i])
			} else if value.Valid {
				_m.ValidationKind = new(string)
				*_m.ValidationKind = value.String
			}
		case fieldmapping.FieldValidationPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_pattern", values[i])
			} else if value.Valid {
				_m.ValidationPattern = new(string)
				*_m.ValidationPattern = value.String
			}
		case fieldmapping.FieldValidationMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_message", values[i])
			} else if value.Valid {
				_m.ValidationMessage = new(string)
				*_m.ValidationMessage = value.String
			}
		case fieldmapping.FieldRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field required", values[i])
			} else if value.Valid {
				_m.Required = value.Bool
			}
		case fieldmapping.FieldCustomRules:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field custom_rules", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CustomRules); err != nil {
					return fmt.Errorf("unmarshal field custom_rules: %w", err)
				}
			}
		case fieldmapping.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case fieldmapping.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FieldMapping.
// This includes values selected through modifiers, order, etc.
func (_m *FieldMapping) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the FieldMapping entity.
func (_m *FieldMapping) QueryProfile() *ProfileQuery {
	return NewFieldMappingClient(_m.config).QueryProfile(_m)
}

// Update returns a builder for updating this FieldMapping.
// Note that you need to call FieldMapping.Unwrap() before calling this method if this FieldMapping
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FieldMapping) Update() *FieldMappingUpdateOne {
	return NewFieldMappingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FieldMapping entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FieldMapping) Unwrap() *FieldMapping {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FieldMapping is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FieldMapping) String() string {
	var builder strings.Builder
	builder.WriteString("FieldMapping(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("field_name=")
	builder.WriteString(_m.FieldName)
	builder.WriteString(", ")
	if v := _m.ValidationKind; v != nil {
		builder.WriteString("validation_kind=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValidationPattern; v != nil {
		builder.WriteString("validation_pattern=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValidationMessage; v != nil {
		builder.WriteString("validation_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("required=")
	builder.WriteString(fmt.Sprintf("%v", _m.Required))
	builder.WriteString(", ")
	builder.WriteString("custom_rules=")
	builder.WriteString(fmt.Sprintf("%v", _m.CustomRules))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FieldMappings is a parsable slice of FieldMapping.
type FieldMappings []*FieldMapping
