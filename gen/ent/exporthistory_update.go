// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/exporthistory"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/predicate"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/profile"
)

// ExportHistoryUpdate is the builder for updating ExportHistory entities.
type ExportHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *ExportHistoryMutation
}

// Where appends a list predicates to the ExportHistoryUpdate builder.
func (_u *ExportHistoryUpdate) Where(ps ...predicate.ExportHistory) *ExportHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *ExportHistoryUpdate) SetProfileID(v uuid.UUID) *ExportHistoryUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ExportHistoryUpdate) SetNillableProfileID(v *uuid.UUID) *ExportHistoryUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetInvoiceIds sets the "invoice_ids" field.
func (_u *ExportHistoryUpdate) SetInvoiceIds(v []uuid.UUID) *ExportHistoryUpdate {
	_u.mutation.SetInvoiceIds(v)
	return _u
}

// AppendInvoiceIds appends value to the "invoice_ids" field.
func (_u *ExportHistoryUpdate) AppendInvoiceIds(v []uuid.UUID) *ExportHistoryUpdate {
	_u.mutation.AppendInvoiceIds(v)
	return _u
}

// SetExportType sets the "export_type" field.
func (_u *ExportHistoryUpdate) SetExportType(v string) *ExportHistoryUpdate {
	_u.mutation.SetExportType(v)
	return _u
}

// SetNillableExportType sets the "export_type" field if the given value is not nil.
func (_u *ExportHistoryUpdate) SetNillableExportType(v *string) *ExportHistoryUpdate {
	if v != nil {
		_u.SetExportType(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ExportHistoryUpdate) SetFileName(v string) *ExportHistoryUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ExportHistoryUpdate) SetNillableFileName(v *string) *ExportHistoryUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ExportHistoryUpdate) SetFileSize(v int64) *ExportHistoryUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ExportHistoryUpdate) SetNillableFileSize(v *int64) *ExportHistoryUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ExportHistoryUpdate) AddFileSize(v int64) *ExportHistoryUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// ClearFileSize clears the value of the "file_size" field.
func (_u *ExportHistoryUpdate) ClearFileSize() *ExportHistoryUpdate {
	_u.mutation.ClearFileSize()
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *ExportHistoryUpdate) SetFileURL(v string) *ExportHistoryUpdate {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *ExportHistoryUpdate) SetNillableFileURL(v *string) *ExportHistoryUpdate {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// ClearFileURL clears the value of the "file_url" field.
func (_u *ExportHistoryUpdate) ClearFileURL() *ExportHistoryUpdate {
	_u.mutation.ClearFileURL()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExportHistoryUpdate) SetStatus(v string) *ExportHistoryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExportHistoryUpdate) SetNillableStatus(v *string) *ExportHistoryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExportHistoryUpdate) SetErrorMessage(v string) *ExportHistoryUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExportHistoryUpdate) SetNillableErrorMessage(v *string) *ExportHistoryUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExportHistoryUpdate) ClearErrorMessage() *ExportHistoryUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExportHistoryUpdate) SetCreatedAt(v time.Time) *ExportHistoryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExportHistoryUpdate) SetNillableCreatedAt(v *time.Time) *ExportHistoryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExportHistoryUpdate) SetUpdatedAt(v time.Time) *ExportHistoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *ExportHistoryUpdate) SetProfile(v *Profile) *ExportHistoryUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the ExportHistoryMutation object of the builder.
func (_u *ExportHistoryUpdate) Mutation() *ExportHistoryMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *ExportHistoryUpdate) ClearProfile() *ExportHistoryUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExportHistoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExportHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExportHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExportHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExportHistoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := exporthistory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExportHistoryUpdate) check() error {
	if v, ok := _u.mutation.ExportType(); ok {
		if err := exporthistory.ExportTypeValidator(v); err != nil {
			return &ValidationError{Name: "export_type", err: fmt.Errorf(`ent: validator failed for field "ExportHistory.export_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := exporthistory.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ExportHistory.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := exporthistory.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExportHistory.status": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExportHistory.profile"`)
	}
	return nil
}

func (_u *ExportHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exporthistory.Table, exporthistory.Columns, sqlgraph.NewFieldSpec(exporthistory.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceIds(); ok {
		_spec.SetField(exporthistory.FieldInvoiceIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInvoiceIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, exporthistory.FieldInvoiceIds, value)
		})
	}
	if value, ok := _u.mutation.ExportType(); ok {
		_spec.SetField(exporthistory.FieldExportType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(exporthistory.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(exporthistory.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(exporthistory.FieldFileSize, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeCleared() {
		_spec.ClearField(exporthistory.FieldFileSize, field.TypeInt64)
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(exporthistory.FieldFileURL, field.TypeString, value)
	}
	if _u.mutation.FileURLCleared() {
		_spec.ClearField(exporthistory.FieldFileURL, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(exporthistory.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(exporthistory.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(exporthistory.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(exporthistory.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(exporthistory.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exporthistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExportHistoryUpdateOne is the builder for updating a single ExportHistory entity.
type ExportHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExportHistoryMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *ExportHistoryUpdateOne) SetProfileID(v uuid.UUID) *ExportHistoryUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ExportHistoryUpdateOne) SetNillableProfileID(v *uuid.UUID) *ExportHistoryUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetInvoiceIds sets the "invoice_ids" field.
func (_u *ExportHistoryUpdateOne) SetInvoiceIds(v []uuid.UUID) *ExportHistoryUpdateOne {
	_u.mutation.SetInvoiceIds(v)
	return _u
}

// AppendInvoiceIds appends value to the "invoice_ids" field.
func (_u *ExportHistoryUpdateOne) AppendInvoiceIds(v []uuid.UUID) *ExportHistoryUpdateOne {
	_u.mutation.AppendInvoiceIds(v)
	return _u
}

// SetExportType sets the "export_type" field.
func (_u *ExportHistoryUpdateOne) SetExportType(v string) *ExportHistoryUpdateOne {
	_u.mutation.SetExportType(v)
	return _u
}

// SetNillableExportType sets the "export_type" field if the given value is not nil.
func (_u *ExportHistoryUpdateOne) SetNillableExportType(v *string) *ExportHistoryUpdateOne {
	if v != nil {
		_u.SetExportType(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ExportHistoryUpdateOne) SetFileName(v string) *ExportHistoryUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ExportHistoryUpdateOne) SetNillableFileName(v *string) *ExportHistoryUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ExportHistoryUpdateOne) SetFileSize(v int64) *ExportHistoryUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ExportHistoryUpdateOne) SetNillableFileSize(v *int64) *ExportHistoryUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ExportHistoryUpdateOne) AddFileSize(v int64) *ExportHistoryUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// ClearFileSize clears the value of the "file_size" field.
func (_u *ExportHistoryUpdateOne) ClearFileSize() *ExportHistoryUpdateOne {
	_u.mutation.ClearFileSize()
	return _u
}

// SetFileURL sets the "file_url" field.
func (_u *ExportHistoryUpdateOne) SetFileURL(v string) *ExportHistoryUpdateOne {
	_u.mutation.SetFileURL(v)
	return _u
}

// SetNillableFileURL sets the "file_url" field if the given value is not nil.
func (_u *ExportHistoryUpdateOne) SetNillableFileURL(v *string) *ExportHistoryUpdateOne {
	if v != nil {
		_u.SetFileURL(*v)
	}
	return _u
}

// ClearFileURL clears the value of the "file_url" field.
func (_u *ExportHistoryUpdateOne) ClearFileURL() *ExportHistoryUpdateOne {
	_u.mutation.ClearFileURL()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExportHistoryUpdateOne) SetStatus(v string) *ExportHistoryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExportHistoryUpdateOne) SetNillableStatus(v *string) *ExportHistoryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExportHistoryUpdateOne) SetErrorMessage(v string) *ExportHistoryUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExportHistoryUpdateOne) SetNillableErrorMessage(v *string) *ExportHistoryUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExportHistoryUpdateOne) ClearErrorMessage() *ExportHistoryUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExportHistoryUpdateOne) SetCreatedAt(v time.Time) *ExportHistoryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExportHistoryUpdateOne) SetNillableCreatedAt(v *time.Time) *ExportHistoryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExportHistoryUpdateOne) SetUpdatedAt(v time.Time) *ExportHistoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *ExportHistoryUpdateOne) SetProfile(v *Profile) *ExportHistoryUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the ExportHistoryMutation object of the builder.
func (_u *ExportHistoryUpdateOne) Mutation() *ExportHistoryMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *ExportHistoryUpdateOne) ClearProfile() *ExportHistoryUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the ExportHistoryUpdate builder.
func (_u *ExportHistoryUpdateOne) Where(ps ...predicate.ExportHistory) *ExportHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExportHistoryUpdateOne) Select(field string, fields ...string) *ExportHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExportHistory entity.
func (_u *ExportHistoryUpdateOne) Save(ctx context.Context) (*ExportHistory, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExportHistoryUpdateOne) SaveX(ctx context.Context) *ExportHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExportHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExportHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExportHistoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := exporthistory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExportHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.ExportType(); ok {
		if err := exporthistory.ExportTypeValidator(v); err != nil {
			return &ValidationError{Name: "export_type", err: fmt.Errorf(`ent: validator failed for field "ExportHistory.export_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := exporthistory.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ExportHistory.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := exporthistory.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExportHistory.status": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExportHistory.profile"`)
	}
	return nil
}

func (_u *ExportHistoryUpdateOne) sqlSave(ctx context.Context) (_node *ExportHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exporthistory.Table, exporthistory.Columns, sqlgraph.NewFieldSpec(exporthistory.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExportHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exporthistory.FieldID)
		for _, f := range fields {
			if !exporthistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exporthistory.FieldID {
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
	if value, ok := _u.mutation.InvoiceIds(); ok {
		_spec.SetField(exporthistory.FieldInvoiceIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInvoiceIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, exporthistory.FieldInvoiceIds, value)
		})
	}
	if value, ok := _u.mutation.ExportType(); ok {
		_spec.SetField(exporthistory.FieldExportType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(exporthistory.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(exporthistory.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(exporthistory.FieldFileSize, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeCleared() {
		_spec.ClearField(exporthistory.FieldFileSize, field.TypeInt64)
	}
	if value, ok := _u.mutation.FileURL(); ok {
		_spec.SetField(exporthistory.FieldFileURL, field.TypeString, value)
	}
	if _u.mutation.FileURLCleared() {
		_spec.ClearField(exporthistory.FieldFileURL, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(exporthistory.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(exporthistory.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(exporthistory.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(exporthistory.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(exporthistory.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExportHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exporthistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
