// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/invoice"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/invoiceitem"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/profile"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *InvoiceCreate) SetProfileID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetVendorName sets the "vendor_name" field.
func (_c *InvoiceCreate) SetVendorName(v string) *InvoiceCreate {
	_c.mutation.SetVendorName(v)
	return _c
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableVendorName(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetVendorName(*v)
	}
	return _c
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *InvoiceCreate) SetInvoiceNumber(v string) *InvoiceCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableInvoiceNumber(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetInvoiceNumber(*v)
	}
	return _c
}

// SetInvoiceDate sets the "invoice_date" field.
func (_c *InvoiceCreate) SetInvoiceDate(v time.Time) *InvoiceCreate {
	_c.mutation.SetInvoiceDate(v)
	return _c
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableInvoiceDate(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetInvoiceDate(*v)
	}
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *InvoiceCreate) SetDueDate(v time.Time) *InvoiceCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableDueDate(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *InvoiceCreate) SetTotalAmount(v float64) *InvoiceCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableTotalAmount(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetTotalAmount(*v)
	}
	return _c
}

// SetTaxAmount sets the "tax_amount" field.
func (_c *InvoiceCreate) SetTaxAmount(v float64) *InvoiceCreate {
	_c.mutation.SetTaxAmount(v)
	return _c
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableTaxAmount(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetTaxAmount(*v)
	}
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *InvoiceCreate) SetSubtotal(v float64) *InvoiceCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableSubtotal(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetSubtotal(*v)
	}
	return _c
}

// SetDiscountAmount sets the "discount_amount" field.
func (_c *InvoiceCreate) SetDiscountAmount(v float64) *InvoiceCreate {
	_c.mutation.SetDiscountAmount(v)
	return _c
}

// SetNillableDiscountAmount sets the "discount_amount" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableDiscountAmount(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetDiscountAmount(*v)
	}
	return _c
}

// SetAdditionalFees sets the "additional_fees" field.
func (_c *InvoiceCreate) SetAdditionalFees(v float64) *InvoiceCreate {
	_c.mutation.SetAdditionalFees(v)
	return _c
}

// SetNillableAdditionalFees sets the "additional_fees" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableAdditionalFees(v *float64) *InvoiceCreate {
	if v != nil {
		_c.SetAdditionalFees(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *InvoiceCreate) SetCurrency(v string) *InvoiceCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCurrency(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetPaymentTerms sets the "payment_terms" field.
func (_c *InvoiceCreate) SetPaymentTerms(v string) *InvoiceCreate {
	_c.mutation.SetPaymentTerms(v)
	return _c
}

// SetNillablePaymentTerms sets the "payment_terms" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillablePaymentTerms(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetPaymentTerms(*v)
	}
	return _c
}

// SetPurchaseOrderNumber sets the "purchase_order_number" field.
func (_c *InvoiceCreate) SetPurchaseOrderNumber(v string) *InvoiceCreate {
	_c.mutation.SetPurchaseOrderNumber(v)
	return _c
}

// SetNillablePurchaseOrderNumber sets the "purchase_order_number" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillablePurchaseOrderNumber(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetPurchaseOrderNumber(*v)
	}
	return _c
}

// SetBillingAddress sets the "billing_address" field.
func (_c *InvoiceCreate) SetBillingAddress(v string) *InvoiceCreate {
	_c.mutation.SetBillingAddress(v)
	return _c
}

// SetNillableBillingAddress sets the "billing_address" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableBillingAddress(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetBillingAddress(*v)
	}
	return _c
}

// SetShippingAddress sets the "shipping_address" field.
func (_c *InvoiceCreate) SetShippingAddress(v string) *InvoiceCreate {
	_c.mutation.SetShippingAddress(v)
	return _c
}

// SetNillableShippingAddress sets the "shipping_address" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableShippingAddress(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetShippingAddress(*v)
	}
	return _c
}

// SetPaymentMethod sets the "payment_method" field.
func (_c *InvoiceCreate) SetPaymentMethod(v string) *InvoiceCreate {
	_c.mutation.SetPaymentMethod(v)
	return _c
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillablePaymentMethod(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetPaymentMethod(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *InvoiceCreate) SetNotes(v string) *InvoiceCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableNotes(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetFileURL sets the "file_url" field.
func (_c *InvoiceCreate) SetFileURL(v string) *InvoiceCreate {
	_c.mutation.SetFileURL(v)
	return _c
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableFileURL(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetFileURL(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InvoiceCreate) SetStatus(v string) *InvoiceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableStatus(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceCreate) SetCreatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCreatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InvoiceCreate) SetUpdatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableUpdatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceCreate) SetID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *InvoiceCreate) SetProfile(v *Profile) *InvoiceCreate {
	return _c.SetProfileID(v.ID)
}

// AddItemIDs adds the "items" edge to the InvoiceItem entity by IDs.
func (_c *InvoiceCreate) AddItemIDs(ids ...uuid.UUID) *InvoiceCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the InvoiceItem entity.
func (_c *InvoiceCreate) AddItems(v ...*InvoiceItem) *InvoiceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_c *InvoiceCreate) Mutation() *InvoiceMutation {
	return _c.mutation
}

// Save creates the Invoice in the database.
func (_c *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceCreate) defaults() {
	if _, ok := _c.mutation.Currency(); !ok {
		v := invoice.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.FileURL(); !ok {
		v := invoice.DefaultFileURL
		_c.mutation.SetFileURL(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := invoice.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "Invoice.profile_id"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Invoice.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := invoice.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Invoice.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileURL(); !ok {
		return &ValidationError{Name: "file_url", err: errors.New(`ent: missing required field "Invoice.file_url"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Invoice.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Invoice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Invoice.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "Invoice.profile"`)}
	}
	return nil
}

func (_c *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VendorName(); ok {
		_spec.SetField(invoice.FieldVendorName, field.TypeString, value)
		_node.VendorName = &value
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = &value
	}
	if value, ok := _c.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
		_node.InvoiceDate = &value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(invoice.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = &value
	}
	if value, ok := _c.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
		_node.TaxAmount = &value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
		_node.Subtotal = &value
	}
	if value, ok := _c.mutation.DiscountAmount(); ok {
		_spec.SetField(invoice.FieldDiscountAmount, field.TypeFloat64, value)
		_node.DiscountAmount = &value
	}
	if value, ok := _c.mutation.AdditionalFees(); ok {
		_spec.SetField(invoice.FieldAdditionalFees, field.TypeFloat64, value)
		_node.AdditionalFees = &value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(invoice.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.PaymentTerms(); ok {
		_spec.SetField(invoice.FieldPaymentTerms, field.TypeString, value)
		_node.PaymentTerms = &value
	}
	if value, ok := _c.mutation.PurchaseOrderNumber(); ok {
		_spec.SetField(invoice.FieldPurchaseOrderNumber, field.TypeString, value)
		_node.PurchaseOrderNumber = &value
	}
	if value, ok := _c.mutation.BillingAddress(); ok {
		_spec.SetField(invoice.FieldBillingAddress, field.TypeString, value)
		_node.BillingAddress = &value
	}
	if value, ok := _c.mutation.ShippingAddress(); ok {
		_spec.SetField(invoice.FieldShippingAddress, field.TypeString, value)
		_node.ShippingAddress = &value
	}
	if value, ok := _c.mutation.PaymentMethod(); ok {
		_spec.SetField(invoice.FieldPaymentMethod, field.TypeString, value)
		_node.PaymentMethod = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.FileURL(); ok {
		_spec.SetField(invoice.FieldFileURL, field.TypeString, value)
		_node.FileURL = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
}

// Save creates the Invoice entities in the database.
func (_c *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Invoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
