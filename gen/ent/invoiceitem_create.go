// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/invoice"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/invoiceitem"
)

// InvoiceItemCreate is the builder for creating a InvoiceItem entity.
type InvoiceItemCreate struct {
	config
	mutation *InvoiceItemMutation
	hooks    []Hook
}

// SetInvoiceID sets the "invoice_id" field.
func (_c *InvoiceItemCreate) SetInvoiceID(v uuid.UUID) *InvoiceItemCreate {
	_c.mutation.SetInvoiceID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *InvoiceItemCreate) SetDescription(v string) *InvoiceItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *InvoiceItemCreate) SetNillableDescription(v *string) *InvoiceItemCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *InvoiceItemCreate) SetQuantity(v float64) *InvoiceItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *InvoiceItemCreate) SetNillableQuantity(v *float64) *InvoiceItemCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *InvoiceItemCreate) SetUnitPrice(v float64) *InvoiceItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_c *InvoiceItemCreate) SetNillableUnitPrice(v *float64) *InvoiceItemCreate {
	if v != nil {
		_c.SetUnitPrice(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *InvoiceItemCreate) SetTotal(v float64) *InvoiceItemCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *InvoiceItemCreate) SetNillableTotal(v *float64) *InvoiceItemCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceItemCreate) SetID(v uuid.UUID) *InvoiceItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceItemCreate) SetNillableID(v *uuid.UUID) *InvoiceItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_c *InvoiceItemCreate) SetInvoice(v *Invoice) *InvoiceItemCreate {
	return _c.SetInvoiceID(v.ID)
}

// Mutation returns the InvoiceItemMutation object of the builder.
func (_c *InvoiceItemCreate) Mutation() *InvoiceItemMutation {
	return _c.mutation
}

// Save creates the InvoiceItem in the database.
func (_c *InvoiceItemCreate) Save(ctx context.Context) (*InvoiceItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceItemCreate) SaveX(ctx context.Context) *InvoiceItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceItemCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := invoiceitem.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoiceitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceItemCreate) check() error {
	if _, ok := _c.mutation.InvoiceID(); !ok {
		return &ValidationError{Name: "invoice_id", err: errors.New(`ent: missing required field "InvoiceItem.invoice_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "InvoiceItem.description"`)}
	}
	if len(_c.mutation.InvoiceIDs()) == 0 {
		return &ValidationError{Name: "invoice", err: errors.New(`ent: missing required edge "InvoiceItem.invoice"`)}
	}
	return nil
}

func (_c *InvoiceItemCreate) sqlSave(ctx context.Context) (*InvoiceItem, error) {
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

func (_c *InvoiceItemCreate) createSpec() (*InvoiceItem, *sqlgraph.CreateSpec) {
	var (
		_node = &InvoiceItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoiceitem.Table, sqlgraph.NewFieldSpec(invoiceitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(invoiceitem.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(invoiceitem.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = &value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(invoiceitem.FieldUnitPrice, field.TypeFloat64, value)
		_node.UnitPrice = &value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(invoiceitem.FieldTotal, field.TypeFloat64, value)
		_node.Total = &value
	}
	if nodes := _c.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoiceitem.InvoiceTable,
			Columns: []string{invoiceitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InvoiceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceItemCreateBulk is the builder for creating many InvoiceItem entities in bulk.
type InvoiceItemCreateBulk struct {
	config
	err      error
	builders []*InvoiceItemCreate
}

// Save creates the InvoiceItem entities in the database.
func (_c *InvoiceItemCreateBulk) Save(ctx context.Context) ([]*InvoiceItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvoiceItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceItemMutation)
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
func (_c *InvoiceItemCreateBulk) SaveX(ctx context.Context) []*InvoiceItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
