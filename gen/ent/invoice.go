// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/invoice"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/profile"
)

// Invoice is the model entity for the Invoice schema.
type Invoice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// VendorName holds the value of the "vendor_name" field.
	VendorName *string `json:"vendor_name,omitempty"`
	// InvoiceNumber holds the value of the "invoice_number" field.
	InvoiceNumber *string `json:"invoice_number,omitempty"`
	// InvoiceDate holds the value of the "invoice_date" field.
	InvoiceDate *time.Time `json:"invoice_date,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate *time.Time `json:"due_date,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount *float64 `json:"total_amount,omitempty"`
	// TaxAmount holds the value of the "tax_amount" field.
	TaxAmount *float64 `json:"tax_amount,omitempty"`
	// Subtotal holds the value of the "subtotal" field.
	Subtotal *float64 `json:"subtotal,omitempty"`
	// DiscountAmount holds the value of the "discount_amount" field.
	DiscountAmount *float64 `json:"discount_amount,omitempty"`
	// AdditionalFees holds the value of the "additional_fees" field.
	AdditionalFees *float64 `json:"additional_fees,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// PaymentTerms holds the value of the "payment_terms" field.
	PaymentTerms *string `json:"payment_terms,omitempty"`
	// PurchaseOrderNumber holds the value of the "purchase_order_number" field.
	PurchaseOrderNumber *string `json:"purchase_order_number,omitempty"`
	// BillingAddress holds the value of the "billing_address" field.
	BillingAddress *string `json:"billing_address,omitempty"`
	// ShippingAddress holds the value of the "shipping_address" field.
	ShippingAddress *string `json:"shipping_address,omitempty"`
	// PaymentMethod holds the value of the "payment_method" field.
	PaymentMethod *string `json:"payment_method,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// FileURL holds the value of the "file_url" field.
	FileURL string `json:"file_url,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceQuery when eager-loading is set.
	Edges        InvoiceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceEdges holds the relations/edges for other nodes in the graph.
type InvoiceEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// Items holds the value of the items edge.
	Items []*InvoiceItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvoiceEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceEdges) ItemsOrErr() ([]*InvoiceItem, error) {
	if e.loadedTypes[1] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Invoice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoice.FieldTotalAmount, invoice.FieldTaxAmount, invoice.FieldSubtotal, invoice.FieldDiscountAmount, invoice.FieldAdditionalFees:
			values[i] = new(sql.NullFloat64)
		case invoice.FieldVendorName, invoice.FieldInvoiceNumber, invoice.FieldCurrency, invoice.FieldPaymentTerms, invoice.FieldPurchaseOrderNumber, invoice.FieldBillingAddress, invoice.FieldShippingAddress, invoice.FieldPaymentMethod, invoice.FieldNotes, invoice.FieldFileURL, invoice.FieldStatus:
			values[i] = new(sql.NullString)
		case invoice.FieldInvoiceDate, invoice.FieldDueDate, invoice.FieldCreatedAt, invoice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case invoice.FieldID, invoice.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Invoice fields.
func (_m *Invoice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case invoice.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case invoice.FieldVendorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_name", values[i])
			} else if value.Valid {
				_m.VendorName = new(string)
				*_m.VendorName = value.String
			}
		case invoice.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = new(string)
				*_m.InvoiceNumber = value.String
			}
		case invoice.FieldInvoiceDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_date", values[i])
			} else if value.Valid {
				_m.InvoiceDate = new(time.Time)
				*_m.InvoiceDate = value.Time
			}
		case invoice.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = new(time.Time)
				*_m.DueDate = value.Time
			}
		case invoice.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = new(float64)
				*_m.TotalAmount = value.Float64
			}
		case invoice.FieldTaxAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tax_amount", values[i])
			} else if value.Valid {
				_m.TaxAmount = new(float64)
				*_m.TaxAmount = value.Float64
			}
		case invoice.FieldSubtotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field subtotal", values[i])
			} else if value.Valid {
				_m.Subtotal = new(float64)
				*_m.Subtotal = value.Float64
			}
		case invoice.FieldDiscountAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field discount_amount", values[i])
			} else if value.Valid {
				_m.DiscountAmount = new(float64)
				*_m.DiscountAmount = value.Float64
			}
		case invoice.FieldAdditionalFees:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field additional_fees", values[i])
			} else if value.Valid {
				_m.AdditionalFees = new(float64)
				*_m.AdditionalFees = value.Float64
			}
		case invoice.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case invoice.FieldPaymentTerms:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_terms", values[i])
			} else if value.Valid {
				_m.PaymentTerms = new(string)
				*_m.PaymentTerms = value.String
			}
		case invoice.FieldPurchaseOrderNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field purchase_order_number", values[i])
			} else if value.Valid {
				_m.PurchaseOrderNumber = new(string)
				*_m.PurchaseOrderNumber = value.String
			}
		case invoice.FieldBillingAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field billing_address", values[i])
			} else if value.Valid {
				_m.BillingAddress = new(string)
				*_m.BillingAddress = value.String
			}
		case invoice.FieldShippingAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field shipping_address", values[i])
			} else if value.Valid {
				_m.ShippingAddress = new(string)
				*_m.ShippingAddress = value.String
			}
		case invoice.FieldPaymentMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_method", values[i])
			} else if value.Valid {
				_m.PaymentMethod = new(string)
				*_m.PaymentMethod = value.String
			}
		case invoice.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case invoice.FieldFileURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_url", values[i])
			} else if value.Valid {
				_m.FileURL = value.String
			}
		case invoice.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case invoice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case invoice.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Invoice.
// This includes values selected through modifiers, order, etc.
func (_m *Invoice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the Invoice entity.
func (_m *Invoice) QueryProfile() *ProfileQuery {
	return NewInvoiceClient(_m.config).QueryProfile(_m)
}

// QueryItems queries the "items" edge of the Invoice entity.
func (_m *Invoice) QueryItems() *InvoiceItemQuery {
	return NewInvoiceClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this Invoice.
// Note that you need to call Invoice.Unwrap() before calling this method if this Invoice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Invoice) Update() *InvoiceUpdateOne {
	return NewInvoiceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Invoice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Invoice) Unwrap() *Invoice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Invoice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Invoice) String() string {
	var builder strings.Builder
	builder.WriteString("Invoice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	if v := _m.VendorName; v != nil {
		builder.WriteString("vendor_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InvoiceNumber; v != nil {
		builder.WriteString("invoice_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InvoiceDate; v != nil {
		builder.WriteString("invoice_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DueDate; v != nil {
		builder.WriteString("due_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TotalAmount; v != nil {
		builder.WriteString("total_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TaxAmount; v != nil {
		builder.WriteString("tax_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Subtotal; v != nil {
		builder.WriteString("subtotal=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DiscountAmount; v != nil {
		builder.WriteString("discount_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AdditionalFees; v != nil {
		builder.WriteString("additional_fees=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	if v := _m.PaymentTerms; v != nil {
		builder.WriteString("payment_terms=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PurchaseOrderNumber; v != nil {
		builder.WriteString("purchase_order_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BillingAddress; v != nil {
		builder.WriteString("billing_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ShippingAddress; v != nil {
		builder.WriteString("shipping_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PaymentMethod; v != nil {
		builder.WriteString("payment_method=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("file_url=")
	builder.WriteString(_m.FileURL)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Invoices is a parsable slice of Invoice.
type Invoices []*Invoice
