// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/subscriptiontier"
)

// SubscriptionTierCreate is the builder for creating a SubscriptionTier entity.
type SubscriptionTierCreate struct {
	config
	mutation *SubscriptionTierMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SubscriptionTierCreate) SetName(v string) *SubscriptionTierCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetMonthlyExportLimit sets the "monthly_export_limit" field.
func (_c *SubscriptionTierCreate) SetMonthlyExportLimit(v int) *SubscriptionTierCreate {
	_c.mutation.SetMonthlyExportLimit(v)
	return _c
}

// SetNillableMonthlyExportLimit sets the "monthly_export_limit" field if the given value is not nil.
func (_c *SubscriptionTierCreate) SetNillableMonthlyExportLimit(v *int) *SubscriptionTierCreate {
	if v != nil {
		_c.SetMonthlyExportLimit(*v)
	}
	return _c
}

// SetFileSizeLimitMB sets the "file_size_limit_mb" field.
func (_c *SubscriptionTierCreate) SetFileSizeLimitMB(v int) *SubscriptionTierCreate {
	_c.mutation.SetFileSizeLimitMB(v)
	return _c
}

// SetNillableFileSizeLimitMB sets the "file_size_limit_mb" field if the given value is not nil.
func (_c *SubscriptionTierCreate) SetNillableFileSizeLimitMB(v *int) *SubscriptionTierCreate {
	if v != nil {
		_c.SetFileSizeLimitMB(*v)
	}
	return _c
}

// SetFeatures sets the "features" field.
func (_c *SubscriptionTierCreate) SetFeatures(v []string) *SubscriptionTierCreate {
	_c.mutation.SetFeatures(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SubscriptionTierCreate) SetID(v uuid.UUID) *SubscriptionTierCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SubscriptionTierCreate) SetNillableID(v *uuid.UUID) *SubscriptionTierCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SubscriptionTierMutation object of the builder.
func (_c *SubscriptionTierCreate) Mutation() *SubscriptionTierMutation {
	return _c.mutation
}

// Save creates the SubscriptionTier in the database.
func (_c *SubscriptionTierCreate) Save(ctx context.Context) (*SubscriptionTier, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubscriptionTierCreate) SaveX(ctx context.Context) *SubscriptionTier {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubscriptionTierCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubscriptionTierCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubscriptionTierCreate) defaults() {
	if _, ok := _c.mutation.MonthlyExportLimit(); !ok {
		v := subscriptiontier.DefaultMonthlyExportLimit
		_c.mutation.SetMonthlyExportLimit(v)
	}
	if _, ok := _c.mutation.FileSizeLimitMB(); !ok {
		v := subscriptiontier.DefaultFileSizeLimitMB
		_c.mutation.SetFileSizeLimitMB(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := subscriptiontier.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubscriptionTierCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SubscriptionTier.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := subscriptiontier.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MonthlyExportLimit(); !ok {
		return &ValidationError{Name: "monthly_export_limit", err: errors.New(`ent: missing required field "SubscriptionTier.monthly_export_limit"`)}
	}
	if _, ok := _c.mutation.FileSizeLimitMB(); !ok {
		return &ValidationError{Name: "file_size_limit_mb", err: errors.New(`ent: missing required field "SubscriptionTier.file_size_limit_mb"`)}
	}
	return nil
}

func (_c *SubscriptionTierCreate) sqlSave(ctx context.Context) (*SubscriptionTier, error) {
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

func (_c *SubscriptionTierCreate) createSpec() (*SubscriptionTier, *sqlgraph.CreateSpec) {
	var (
		_node = &SubscriptionTier{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subscriptiontier.Table, sqlgraph.NewFieldSpec(subscriptiontier.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(subscriptiontier.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.MonthlyExportLimit(); ok {
		_spec.SetField(subscriptiontier.FieldMonthlyExportLimit, field.TypeInt, value)
		_node.MonthlyExportLimit = value
	}
	if value, ok := _c.mutation.FileSizeLimitMB(); ok {
		_spec.SetField(subscriptiontier.FieldFileSizeLimitMB, field.TypeInt, value)
		_node.FileSizeLimitMB = value
	}
	if value, ok := _c.mutation.Features(); ok {
		_spec.SetField(subscriptiontier.FieldFeatures, field.TypeJSON, value)
		_node.Features = value
	}
	return _node, _spec
}

// SubscriptionTierCreateBulk is the builder for creating many SubscriptionTier entities in bulk.
type SubscriptionTierCreateBulk struct {
	config
	err      error
	builders []*SubscriptionTierCreate
}

// Save creates the SubscriptionTier entities in the database.
func (_c *SubscriptionTierCreateBulk) Save(ctx context.Context) ([]*SubscriptionTier, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubscriptionTier, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubscriptionTierMutation)
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
func (_c *SubscriptionTierCreateBulk) SaveX(ctx context.Context) []*SubscriptionTier {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubscriptionTierCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubscriptionTierCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
