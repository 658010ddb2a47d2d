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
	"github.com/seyi-ajadi/invoiceflow/gen/ent/exporthistory"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/profile"
)

// ExportHistory is the model entity for the ExportHistory schema.
type ExportHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// InvoiceIds holds the value of the "invoice_ids" field.
	InvoiceIds []uuid.UUID `json:"invoice_ids,omitempty"`
	// ExportType holds the value of the "export_type" field.
	ExportType string `json:"export_type,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize *int64 `json:"file_size,omitempty"`
	// FileURL holds the value of the "file_url" field.
	FileURL *string `json:"file_url,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExportHistoryQuery when eager-loading is set.
	Edges        ExportHistoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExportHistoryEdges holds the relations/edges for other nodes in the graph.
type ExportHistoryEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExportHistoryEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExportHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case exporthistory.FieldInvoiceIds:
			values[i] = new([]byte)
		case exporthistory.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case exporthistory.FieldExportType, exporthistory.FieldFileName, exporthistory.FieldFileURL, exporthistory.FieldStatus, exporthistory.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case exporthistory.FieldCreatedAt, exporthistory.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case exporthistory.FieldID, exporthistory.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExportHistory fields.
func (_m *ExportHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case exporthistory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case exporthistory.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case exporthistory.FieldInvoiceIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InvoiceIds); err != nil {
					return fmt.Errorf("unmarshal field invoice_ids: %w", err)
				}
			}
		case exporthistory.FieldExportType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field export_type", values[i])
			} else if value.Valid {
				_m.ExportType = value.String
			}
		case exporthistory.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case exporthistory.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = new(int64)
				*_m.FileSize = value.Int64
			}
		case exporthistory.FieldFileURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_url", values[i])
			} else if value.Valid {
				_m.FileURL = new(string)
				*_m.FileURL = value.String
			}
		case exporthistory.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case exporthistory.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case exporthistory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case exporthistory.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExportHistory.
// This includes values selected through modifiers, order, etc.
func (_m *ExportHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the ExportHistory entity.
func (_m *ExportHistory) QueryProfile() *ProfileQuery {
	return NewExportHistoryClient(_m.config).QueryProfile(_m)
}

// Update returns a builder for updating this ExportHistory.
// Note that you need to call ExportHistory.Unwrap() before calling this method if this ExportHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExportHistory) Update() *ExportHistoryUpdateOne {
	return NewExportHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExportHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExportHistory) Unwrap() *ExportHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExportHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExportHistory) String() string {
	var builder strings.Builder
	builder.WriteString("ExportHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("invoice_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.InvoiceIds))
	builder.WriteString(", ")
	builder.WriteString("export_type=")
	builder.WriteString(_m.ExportType)
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	if v := _m.FileSize; v != nil {
		builder.WriteString("file_size=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FileURL; v != nil {
		builder.WriteString("file_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExportHistories is a parsable slice of ExportHistory.
type ExportHistories []*ExportHistory
