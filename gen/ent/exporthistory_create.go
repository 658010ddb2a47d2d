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
	"github.com/seyi-ajadi/invoiceflow/gen/ent/exporthistory"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/profile"
)

// ExportHistoryCreate is the builder for creating a ExportHistory entity.
type ExportHistoryCreate struct {
	config
	mutation *ExportHistoryMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *ExportHistoryCreate) SetProfileID(v uuid.UUID) *ExportHistoryCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetInvoiceIds sets the "invoice_ids" field.
func (_c *ExportHistoryCreate) SetInvoiceIds(v []uuid.UUID) *ExportHistoryCreate {
	_c.mutation.SetInvoiceIds(v)
	return _c
}

// SetExportType sets the "export_type" field.
func (_c *ExportHistoryCreate) SetExportType(v string) *ExportHistoryCreate {
	_c.mutation.SetExportType(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *ExportHistoryCreate) SetFileName(v string) *ExportHistoryCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *ExportHistoryCreate) SetFileSize(v int64) *ExportHistoryCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_c *ExportHistoryCreate) SetNillableFileSize(v *int64) *ExportHistoryCreate {
	if v != nil {
		_c.SetFileSize(*v)
	}
	return _c
}

// SetFileURL sets the "file_url" field.
func (_c *ExportHistoryCreate) SetFileURL(v string) *ExportHistoryCreate {
	_c.mutation.SetFileURL(v)
	return _c
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_c *ExportHistoryCreate) SetNillableFileURL(v *string) *ExportHistoryCreate {
	if v != nil {
		_c.SetFileURL(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExportHistoryCreate) SetStatus(v string) *ExportHistoryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExportHistoryCreate) SetNillableStatus(v *string) *ExportHistoryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExportHistoryCreate) SetErrorMessage(v string) *ExportHistoryCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExportHistoryCreate) SetNillableErrorMessage(v *string) *ExportHistoryCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExportHistoryCreate) SetCreatedAt(v time.Time) *ExportHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExportHistoryCreate) SetNillableCreatedAt(v *time.Time) *ExportHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExportHistoryCreate) SetUpdatedAt(v time.Time) *ExportHistoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExportHistoryCreate) SetNillableUpdatedAt(v *time.Time) *ExportHistoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExportHistoryCreate) SetID(v uuid.UUID) *ExportHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExportHistoryCreate) SetNillableID(v *uuid.UUID) *ExportHistoryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *ExportHistoryCreate) SetProfile(v *Profile) *ExportHistoryCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the ExportHistoryMutation object of the builder.
func (_c *ExportHistoryCreate) Mutation() *ExportHistoryMutation {
	return _c.mutation
}

// Save creates the ExportHistory in the database.
func (_c *ExportHistoryCreate) Save(ctx context.Context) (*ExportHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExportHistoryCreate) SaveX(ctx context.Context) *ExportHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExportHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExportHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExportHistoryCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := exporthistory.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := exporthistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := exporthistory.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := exporthistory.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExportHistoryCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "ExportHistory.profile_id"`)}
	}
	if _, ok := _c.mutation.InvoiceIds(); !ok {
		return &ValidationError{Name: "invoice_ids", err: errors.New(`ent: missing required field "ExportHistory.invoice_ids"`)}
	}
	if _, ok := _c.mutation.ExportType(); !ok {
		return &ValidationError{Name: "export_type", err: errors.New(`ent: missing required field "ExportHistory.export_type"`)}
	}
	if v, ok := _c.mutation.ExportType(); ok {
		if err := exporthistory.ExportTypeValidator(v); err != nil {
			return &ValidationError{Name: "export_type", err: fmt.Errorf(`ent: validator failed for field "ExportHistory.export_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "ExportHistory.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := exporthistory.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ExportHistory.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExportHistory.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := exporthistory.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExportHistory.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExportHistory.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExportHistory.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "ExportHistory.profile"`)}
	}
	return nil
}

func (_c *ExportHistoryCreate) sqlSave(ctx context.Context) (*ExportHistory, error) {
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

func (_c *ExportHistoryCreate) createSpec() (*ExportHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &ExportHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exporthistory.Table, sqlgraph.NewFieldSpec(exporthistory.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.InvoiceIds(); ok {
		_spec.SetField(exporthistory.FieldInvoiceIds, field.TypeJSON, value)
		_node.InvoiceIds = value
	}
	if value, ok := _c.mutation.ExportType(); ok {
		_spec.SetField(exporthistory.FieldExportType, field.TypeString, value)
		_node.ExportType = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(exporthistory.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(exporthistory.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = &value
	}
	if value, ok := _c.mutation.FileURL(); ok {
		_spec.SetField(exporthistory.FieldFileURL, field.TypeString, value)
		_node.FileURL = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(exporthistory.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(exporthistory.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(exporthistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(exporthistory.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   exporthistory.ProfileTable,
			Columns: []string{exporthistory.ProfileColumn},
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

// ExportHistoryCreateBulk is the builder for creating many ExportHistory entities in bulk.
type ExportHistoryCreateBulk struct {
	config
	err      error
	builders []*ExportHistoryCreate
}

// Save creates the ExportHistory entities in the database.
func (_c *ExportHistoryCreateBulk) Save(ctx context.Context) ([]*ExportHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExportHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExportHistoryMutation)
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
func (_c *ExportHistoryCreateBulk) SaveX(ctx context.Context) []*ExportHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExportHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExportHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
