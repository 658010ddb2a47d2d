// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/fieldmapping"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/profile"
)

// FieldMappingCreate is the builder for creating a FieldMapping entity.
type FieldMappingCreate struct {
	config
	mutation *FieldMappingMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *FieldMappingCreate) SetProfileID(v uuid.UUID) *FieldMappingCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetFieldName sets the "field_name" field.
func (_c *FieldMappingCreate) SetFieldName(v string) *FieldMappingCreate {
	_c.mutation.SetFieldName(v)
	return _c
}

// SetValidationKind sets the "validation_kind" field.
func (_c *FieldMappingCreate) SetValidationKind(v string) *FieldMappingCreate {
	_c.mutation.SetValidationKind(v)
	return _c
}

// SetNillableValidationKind sets the "validation_kind" field if the given value is not nil.
func (_c *FieldMappingCreate) SetNillableValidationKind(v *string) *FieldMappingCreate {
	if v != nil {
		_c.SetValidationKind(*v)
	}
	return _c
}

// SetValidationPattern sets the "validation_pattern" field.
func (_c *FieldMappingCreate) SetValidationPattern(v string) *FieldMappingCreate {
	_c.mutation.SetValidationPattern(v)
	return _c
}

// SetNillableValidationPattern sets the "validation_pattern" field if the given value is not nil.
func (_c *FieldMappingCreate) SetNillableValidationPattern(v *string) *FieldMappingCreate {
	if v != nil {
		_c.SetValidationPattern(*v)
	}
	return _c
}

// SetValidationMessage sets the "validation_message" field.
func (_c *FieldMappingCreate) SetValidationMessage(v string) *FieldMappingCreate {
	_c.mutation.SetValidationMessage(v)
	return _c
}

// SetNillableValidationMessage sets the "validation_message" field if the given value is not nil.
func (_c *FieldMappingCreate) SetNillableValidationMessage(v *string) *FieldMappingCreate {
	if v != nil {
		_c.SetValidationMessage(*v)
	}
	return _c
}

// SetRequired sets the "required" field.
func (_c *FieldMappingCreate) SetRequired(v bool) *FieldMappingCreate {
	_c.mutation.SetRequired(v)
	return _c
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_c *FieldMappingCreate) SetNillableRequired(v *bool) *FieldMappingCreate {
	if v != nil {
		_c.SetRequired(*v)
	}
	return _c
}

// SetCustomRules sets the "custom_rules" field.
func (_c *FieldMappingCreate) SetCustomRules(v json.RawMessage) *FieldMappingCreate {
	_c.mutation.SetCustomRules(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FieldMappingCreate) SetCreatedAt(v time.Time) *FieldMappingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FieldMappingCreate) SetNillableCreatedAt(v *time.Time) *FieldMappingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FieldMappingCreate) SetUpdatedAt(v time.Time) *FieldMappingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FieldMappingCreate) SetNillableUpdatedAt(v *time.Time) *FieldMappingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FieldMappingCreate) SetID(v uuid.UUID) *FieldMappingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FieldMappingCreate) SetNillableID(v *uuid.UUID) *FieldMappingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *FieldMappingCreate) SetProfile(v *Profile) *FieldMappingCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the FieldMappingMutation object of the builder.
func (_c *FieldMappingCreate) Mutation() *FieldMappingMutation {
	return _c.mutation
}

// Save creates the FieldMapping in the database.
func (_c *FieldMappingCreate) Save(ctx context.Context) (*FieldMapping, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FieldMappingCreate) SaveX(ctx context.Context) *FieldMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldMappingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldMappingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FieldMappingCreate) defaults() {
	if _, ok := _c.mutation.Required(); !ok {
		v := fieldmapping.DefaultRequired
		_c.mutation.SetRequired(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fieldmapping.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := fieldmapping.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := fieldmapping.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FieldMappingCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "FieldMapping.profile_id"`)}
	}
	if _, ok := _c.mutation.FieldName(); !ok {
		return &ValidationError{Name: "field_name", err: errors.New(`ent: missing required field "FieldMapping.field_name"`)}
	}
	if v, ok := _c.mutation.FieldName(); ok {
		if err := fieldmapping.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "FieldMapping.field_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Required(); !ok {
		return &ValidationError{Name: "required", err: errors.New(`ent: missing required field "FieldMapping.required"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FieldMapping.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FieldMapping.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "FieldMapping.profile"`)}
	}
	return nil
}

func (_c *FieldMappingCreate) sqlSave(ctx context.Context) (*FieldMapping, error) {
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

func (_c *FieldMappingCreate) createSpec() (*FieldMapping, *sqlgraph.CreateSpec) {
	var (
		_node = &FieldMapping{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fieldmapping.Table, sqlgraph.NewFieldSpec(fieldmapping.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FieldName(); ok {
		_spec.SetField(fieldmapping.FieldFieldName, field.TypeString, value)
		_node.FieldName = value
	}
	if value, ok := _c.mutation.ValidationKind(); ok {
		_spec.SetField(fieldmapping.FieldValidationKind, field.TypeString, value)
		_node.ValidationKind = &value
	}
	if value, ok := _c.mutation.ValidationPattern(); ok {
		_spec.SetField(fieldmapping.FieldValidationPattern, field.TypeString, value)
		_node.ValidationPattern = &value
	}
	if value, ok := _c.mutation.ValidationMessage(); ok {
		_spec.SetField(fieldmapping.FieldValidationMessage, field.TypeString, value)
		_node.ValidationMessage = &value
	}
	if value, ok := _c.mutation.Required(); ok {
		_spec.SetField(fieldmapping.FieldRequired, field.TypeBool, value)
		_node.Required = value
	}
	if value, ok := _c.mutation.CustomRules(); ok {
		_spec.SetField(fieldmapping.FieldCustomRules, field.TypeJSON, value)
		_node.CustomRules = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fieldmapping.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(fieldmapping.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldmapping.ProfileTable,
			Columns: []string{fieldmapping.ProfileColumn},
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
	return _node, _spec
}

// FieldMappingCreateBulk is the builder for creating many FieldMapping entities in bulk.
type FieldMappingCreateBulk struct {
	config
	err      error
	builders []*FieldMappingCreate
}

// Save creates the FieldMapping entities in the database.
func (_c *FieldMappingCreateBulk) Save(ctx context.Context) ([]*FieldMapping, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FieldMapping, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FieldMappingMutation)
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
func (_c *FieldMappingCreateBulk) SaveX(ctx context.Context) []*FieldMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldMappingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldMappingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
