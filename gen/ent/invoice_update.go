// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/invoice"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/invoiceitem"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/predicate"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/profile"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *InvoiceUpdate) SetProfileID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableProfileID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *InvoiceUpdate) SetVendorName(v string) *InvoiceUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVendorName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *InvoiceUpdate) ClearVendorName() *InvoiceUpdate {
	_u.mutation.ClearVendorName()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdate) SetInvoiceNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdate) ClearInvoiceNumber() *InvoiceUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdate) ClearInvoiceDate() *InvoiceUpdate {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdate) SetDueDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDueDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *InvoiceUpdate) ClearDueDate() *InvoiceUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *InvoiceUpdate) SetTotalAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotalAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *InvoiceUpdate) AddTotalAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *InvoiceUpdate) ClearTotalAmount() *InvoiceUpdate {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceUpdate) SetTaxAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTaxAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceUpdate) AddTaxAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *InvoiceUpdate) ClearTaxAmount() *InvoiceUpdate {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdate) SetSubtotal(v float64) *InvoiceUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSubtotal(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdate) AddSubtotal(v float64) *InvoiceUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *InvoiceUpdate) ClearSubtotal() *InvoiceUpdate {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetDiscountAmount sets the "discount_amount" field.
func (_u *InvoiceUpdate) SetDiscountAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetDiscountAmount()
	_u.mutation.SetDiscountAmount(v)
	return _u
}

// SetNillableDiscountAmount sets the "discount_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDiscountAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetDiscountAmount(*v)
	}
	return _u
}

// AddDiscountAmount adds value to the "discount_amount" field.
func (_u *InvoiceUpdate) AddDiscountAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddDiscountAmount(v)
	return _u
}

// ClearDiscountAmount clears the value of the "discount_amount" field.
func (_u *InvoiceUpdate) ClearDiscountAmount() *InvoiceUpdate {
	_u.mutation.ClearDiscountAmount()
	return _u
}

// SetAdditionalFees sets the "additional_fees" field.
func (_u *InvoiceUpdate) SetAdditionalFees(v float64) *InvoiceUpdate {
	_u.mutation.ResetAdditionalFees()
	_u.mutation.SetAdditionalFees(v)
	return _u
}

// SetNillableAdditionalFees sets the "additional_fees" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableAdditionalFees(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetAdditionalFees(*v)
	}
	return _u
}

// AddAdditionalFees adds value to the "additional_fees" field.
func (_u *InvoiceUpdate) AddAdditionalFees(v float64) *InvoiceUpdate {
	_u.mutation.AddAdditionalFees(v)
	return _u
}

// ClearAdditionalFees clears the value of the "additional_fees" field.
func (_u *InvoiceUpdate) ClearAdditionalFees() *InvoiceUpdate {
	_u.mutation.ClearAdditionalFees()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *InvoiceUpdate) SetCurrency(v string) *InvoiceUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCurrency(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetPaymentTerms sets the "payment_terms" field.
func (_u *InvoiceUpdate) SetPaymentTerms(v string) *InvoiceUpdate {
	_u.mutation.SetPaymentTerms(v)
	return _u
}

// SetNillablePaymentTerms sets the "payment_terms" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePaymentTerms(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetPaymentTerms(*v)
	}
	return _u
}

// ClearPaymentTerms clears the value of the "payment_terms" field.
func (_u *InvoiceUpdate) ClearPaymentTerms() *InvoiceUpdate {
	_u.mutation.ClearPaymentTerms()
	return _u
}

// SetPurchaseOrderNumber sets the "purchase_order_number" field.
func (_u *InvoiceUpdate) SetPurchaseOrderNumber(v string) *InvoiceUpdate {
	_u.mutation.SetPurchaseOrderNumber(v)
	return _u
}

// SetNillablePurchaseOrderNumber sets the "purchase_order_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePurchaseOrderNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetPurchaseOrderNumber(*v)
	}
	return _u
}

// ClearPurchaseOrderNumber clears the value of the "purchase_order_number" field.
func (_u *InvoiceUpdate) ClearPurchaseOrderNumber() *InvoiceUpdate {
	_u.mutation.ClearPurchaseOrderNumber()
	return _u
}

// SetBillingAddress sets the "billing_address" field.
func (_u *InvoiceUpdate) SetBillingAddress(v string) *InvoiceUpdate {
	_u.mutation.SetBillingAddress(v)
	return _u
}

// SetNillableBillingAddress sets the "billing_address" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableBillingAddress(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetBillingAddress(*v)
	}
	return _u
}

// ClearBillingAddress clears the value of the "billing_address" field.
func (_u *InvoiceUpdate) ClearBillingAddress() *InvoiceUpdate {
	_u.mutation.ClearBillingAddress()
	return _u
}

// SetShippingAddress sets the "shipping_address" field.
func (_u *InvoiceUpdate) SetShippingAddress(v string) *InvoiceUpdate {
	_u.mutation.SetShippingAddress(v)
	return _u
}

// SetNillableShippingAddress sets the "shipping_address" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableShippingAddress(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetShippingAddress(*v)
	}
	return _u
}

// ClearShippingAddress clears the value of the "shipping_address" field.
func (_u *InvoiceUpdate) ClearShippingAddress() *InvoiceUpdate {
	_u.mutation.ClearShippingAddress()
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *InvoiceUpdate) SetPaymentMethod(v string) *InvoiceUpdate {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePaymentMethod(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *InvoiceUpdate) ClearPaymentMethod() *InvoiceUpdate {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InvoiceUpdate) SetNotes(v string) *InvoiceUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableNotes(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InvoiceUpdate) ClearNotes() *InvoiceUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *InvoiceUpdate) SetFileURL(v string) *InvoiceUpdate {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFileURL(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdate) SetStatus(v string) *InvoiceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableStatus(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *InvoiceUpdate) SetProfile(v *Profile) *InvoiceUpdate {
	return _u.SetProfileID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_u *InvoiceUpdate) AddItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdate) AddItems(v ...*InvoiceItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *InvoiceUpdate) ClearProfile() *InvoiceUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearItems clears all "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdate) ClearItems() *InvoiceUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to InvoiceItem entities by IDs.
func (_u *InvoiceUpdate) RemoveItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to InvoiceItem entities.
func (_u *InvoiceUpdate) RemoveItems(v ...*InvoiceItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.Currency(); ok {
		if err := invoice.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Invoice.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.profile"`)
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(invoice.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(invoice.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(invoice.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(invoice.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(invoice.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DiscountAmount(); ok {
		_spec.SetField(invoice.FieldDiscountAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscountAmount(); ok {
		_spec.AddField(invoice.FieldDiscountAmount, field.TypeFloat64, value)
	}
	if _u.mutation.DiscountAmountCleared() {
		_spec.ClearField(invoice.FieldDiscountAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AdditionalFees(); ok {
		_spec.SetField(invoice.FieldAdditionalFees, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAdditionalFees(); ok {
		_spec.AddField(invoice.FieldAdditionalFees, field.TypeFloat64, value)
	}
	if _u.mutation.AdditionalFeesCleared() {
		_spec.ClearField(invoice.FieldAdditionalFees, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(invoice.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaymentTerms(); ok {
		_spec.SetField(invoice.FieldPaymentTerms, field.TypeString, value)
	}
	if _u.mutation.PaymentTermsCleared() {
		_spec.ClearField(invoice.FieldPaymentTerms, field.TypeString)
	}
	if value, ok := _u.mutation.PurchaseOrderNumber(); ok {
		_spec.SetField(invoice.FieldPurchaseOrderNumber, field.TypeString, value)
	}
	if _u.mutation.PurchaseOrderNumberCleared() {
		_spec.ClearField(invoice.FieldPurchaseOrderNumber, field.TypeString)
	}
	if value, ok := _u.mutation.BillingAddress(); ok {
		_spec.SetField(invoice.FieldBillingAddress, field.TypeString, value)
	}
	if _u.mutation.BillingAddressCleared() {
		_spec.ClearField(invoice.FieldBillingAddress, field.TypeString)
	}
	if value, ok := _u.mutation.ShippingAddress(); ok {
		_spec.SetField(invoice.FieldShippingAddress, field.TypeString, value)
	}
	if _u.mutation.ShippingAddressCleared() {
		_spec.ClearField(invoice.FieldShippingAddress, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(invoice.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(invoice.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(invoice.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(invoice.FieldFileURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ProfileTable,
			Columns: []string{invoice.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ProfileTable,
			Columns: []string{invoice.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *InvoiceUpdateOne) SetProfileID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableProfileID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *InvoiceUpdateOne) SetVendorName(v string) *InvoiceUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVendorName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *InvoiceUpdateOne) ClearVendorName() *InvoiceUpdateOne {
	_u.mutation.ClearVendorName()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdateOne) SetInvoiceNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdateOne) ClearInvoiceNumber() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdateOne) ClearInvoiceDate() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdateOne) SetDueDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDueDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *InvoiceUpdateOne) ClearDueDate() *InvoiceUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *InvoiceUpdateOne) SetTotalAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotalAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *InvoiceUpdateOne) AddTotalAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (_u *InvoiceUpdateOne) ClearTotalAmount() *InvoiceUpdateOne {
	_u.mutation.ClearTotalAmount()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceUpdateOne) SetTaxAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTaxAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceUpdateOne) AddTaxAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *InvoiceUpdateOne) ClearTaxAmount() *InvoiceUpdateOne {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdateOne) SetSubtotal(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSubtotal(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdateOne) AddSubtotal(v float64) *InvoiceUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *InvoiceUpdateOne) ClearSubtotal() *InvoiceUpdateOne {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetDiscountAmount sets the "discount_amount" field.
func (_u *InvoiceUpdateOne) SetDiscountAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetDiscountAmount()
	_u.mutation.SetDiscountAmount(v)
	return _u
}

// SetNillableDiscountAmount sets the "discount_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDiscountAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDiscountAmount(*v)
	}
	return _u
}

// AddDiscountAmount adds value to the "discount_amount" field.
func (_u *InvoiceUpdateOne) AddDiscountAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddDiscountAmount(v)
	return _u
}

// ClearDiscountAmount clears the value of the "discount_amount" field.
func (_u *InvoiceUpdateOne) ClearDiscountAmount() *InvoiceUpdateOne {
	_u.mutation.ClearDiscountAmount()
	return _u
}

// SetAdditionalFees sets the "additional_fees" field.
func (_u *InvoiceUpdateOne) SetAdditionalFees(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetAdditionalFees()
	_u.mutation.SetAdditionalFees(v)
	return _u
}

// SetNillableAdditionalFees sets the "additional_fees" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableAdditionalFees(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetAdditionalFees(*v)
	}
	return _u
}

// AddAdditionalFees adds value to the "additional_fees" field.
func (_u *InvoiceUpdateOne) AddAdditionalFees(v float64) *InvoiceUpdateOne {
	_u.mutation.AddAdditionalFees(v)
	return _u
}

// ClearAdditionalFees clears the value of the "additional_fees" field.
func (_u *InvoiceUpdateOne) ClearAdditionalFees() *InvoiceUpdateOne {
	_u.mutation.ClearAdditionalFees()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *InvoiceUpdateOne) SetCurrency(v string) *InvoiceUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCurrency(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetPaymentTerms sets the "payment_terms" field.
func (_u *InvoiceUpdateOne) SetPaymentTerms(v string) *InvoiceUpdateOne {
	_u.mutation.SetPaymentTerms(v)
	return _u
}

// SetNillablePaymentTerms sets the "payment_terms" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePaymentTerms(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPaymentTerms(*v)
	}
	return _u
}

// ClearPaymentTerms clears the value of the "payment_terms" field.
func (_u *InvoiceUpdateOne) ClearPaymentTerms() *InvoiceUpdateOne {
	_u.mutation.ClearPaymentTerms()
	return _u
}

// SetPurchaseOrderNumber sets the "purchase_order_number" field.
func (_u *InvoiceUpdateOne) SetPurchaseOrderNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetPurchaseOrderNumber(v)
	return _u
}

// SetNillablePurchaseOrderNumber sets the "purchase_order_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePurchaseOrderNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPurchaseOrderNumber(*v)
	}
	return _u
}

// ClearPurchaseOrderNumber clears the value of the "purchase_order_number" field.
func (_u *InvoiceUpdateOne) ClearPurchaseOrderNumber() *InvoiceUpdateOne {
	_u.mutation.ClearPurchaseOrderNumber()
	return _u
}

// SetBillingAddress sets the "billing_address" field.
func (_u *InvoiceUpdateOne) SetBillingAddress(v string) *InvoiceUpdateOne {
	_u.mutation.SetBillingAddress(v)
	return _u
}

// SetNillableBillingAddress sets the "billing_address" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableBillingAddress(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetBillingAddress(*v)
	}
	return _u
}

// ClearBillingAddress clears the value of the "billing_address" field.
func (_u *InvoiceUpdateOne) ClearBillingAddress() *InvoiceUpdateOne {
	_u.mutation.ClearBillingAddress()
	return _u
}

// SetShippingAddress sets the "shipping_address" field.
func (_u *InvoiceUpdateOne) SetShippingAddress(v string) *InvoiceUpdateOne {
	_u.mutation.SetShippingAddress(v)
	return _u
}

// SetNillableShippingAddress sets the "shipping_address" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableShippingAddress(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetShippingAddress(*v)
	}
	return _u
}

// ClearShippingAddress clears the value of the "shipping_address" field.
func (_u *InvoiceUpdateOne) ClearShippingAddress() *InvoiceUpdateOne {
	_u.mutation.ClearShippingAddress()
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *InvoiceUpdateOne) SetPaymentMethod(v string) *InvoiceUpdateOne {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePaymentMethod(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *InvoiceUpdateOne) ClearPaymentMethod() *InvoiceUpdateOne {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *InvoiceUpdateOne) SetNotes(v string) *InvoiceUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableNotes(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *InvoiceUpdateOne) ClearNotes() *InvoiceUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *InvoiceUpdateOne) SetFileURL(v string) *InvoiceUpdateOne {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFileURL(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdateOne) SetStatus(v string) *InvoiceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableStatus(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *InvoiceUpdateOne) SetProfile(v *Profile) *InvoiceUpdateOne {
	return _u.SetProfileID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_u *InvoiceUpdateOne) AddItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdateOne) AddItems(v ...*InvoiceItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *InvoiceUpdateOne) ClearProfile() *InvoiceUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearItems clears all "items" edges to the InvoiceItem entity.
func (_u *InvoiceUpdateOne) ClearItems() *InvoiceUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to InvoiceItem entities by IDs.
func (_u *InvoiceUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to InvoiceItem entities.
func (_u *InvoiceUpdateOne) RemoveItems(v ...*InvoiceItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.Currency(); ok {
		if err := invoice.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Invoice.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.profile"`)
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(invoice.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(invoice.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(invoice.FieldTotalAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TotalAmountCleared() {
		_spec.ClearField(invoice.FieldTotalAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(invoice.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(invoice.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DiscountAmount(); ok {
		_spec.SetField(invoice.FieldDiscountAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscountAmount(); ok {
		_spec.AddField(invoice.FieldDiscountAmount, field.TypeFloat64, value)
	}
	if _u.mutation.DiscountAmountCleared() {
		_spec.ClearField(invoice.FieldDiscountAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AdditionalFees(); ok {
		_spec.SetField(invoice.FieldAdditionalFees, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAdditionalFees(); ok {
		_spec.AddField(invoice.FieldAdditionalFees, field.TypeFloat64, value)
	}
	if _u.mutation.AdditionalFeesCleared() {
		_spec.ClearField(invoice.FieldAdditionalFees, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(invoice.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaymentTerms(); ok {
		_spec.SetField(invoice.FieldPaymentTerms, field.TypeString, value)
	}
	if _u.mutation.PaymentTermsCleared() {
		_spec.ClearField(invoice.FieldPaymentTerms, field.TypeString)
	}
	if value, ok := _u.mutation.PurchaseOrderNumber(); ok {
		_spec.SetField(invoice.FieldPurchaseOrderNumber, field.TypeString, value)
	}
	if _u.mutation.PurchaseOrderNumberCleared() {
		_spec.ClearField(invoice.FieldPurchaseOrderNumber, field.TypeString)
	}
	if value, ok := _u.mutation.BillingAddress(); ok {
		_spec.SetField(invoice.FieldBillingAddress, field.TypeString, value)
	}
	if _u.mutation.BillingAddressCleared() {
		_spec.ClearField(invoice.FieldBillingAddress, field.TypeString)
	}
	if value, ok := _u.mutation.ShippingAddress(); ok {
		_spec.SetField(invoice.FieldShippingAddress, field.TypeString, value)
	}
	if _u.mutation.ShippingAddressCleared() {
		_spec.ClearField(invoice.FieldShippingAddress, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(invoice.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(invoice.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(invoice.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(invoice.FieldFileURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ProfileTable,
			Columns: []string{invoice.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ProfileTable,
			Columns: []string{invoice.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
