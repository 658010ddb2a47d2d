// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/predicate"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/subscriptiontier"
)

// SubscriptionTierUpdate is the builder for updating SubscriptionTier entities.
type SubscriptionTierUpdate struct {
	config
	hooks    []Hook
	mutation *SubscriptionTierMutation
}

// Where appends a list predicates to the SubscriptionTierUpdate builder.
func (_u *SubscriptionTierUpdate) Where(ps ...predicate.SubscriptionTier) *SubscriptionTierUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SubscriptionTierUpdate) SetName(v string) *SubscriptionTierUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubscriptionTierUpdate) SetNillableName(v *string) *SubscriptionTierUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMonthlyExportLimit sets the "monthly_export_limit" field.
func (_u *SubscriptionTierUpdate) SetMonthlyExportLimit(v int) *SubscriptionTierUpdate {
	_u.mutation.ResetMonthlyExportLimit()
	_u.mutation.SetMonthlyExportLimit(v)
	return _u
}

// SetNillableMonthlyExportLimit sets the "monthly_export_limit" field if the given value is not nil.
func (_u *SubscriptionTierUpdate) SetNillableMonthlyExportLimit(v *int) *SubscriptionTierUpdate {
	if v != nil {
		_u.SetMonthlyExportLimit(*v)
	}
	return _u
}

// AddMonthlyExportLimit adds value to the "monthly_export_limit" field.
func (_u *SubscriptionTierUpdate) AddMonthlyExportLimit(v int) *SubscriptionTierUpdate {
	_u.mutation.AddMonthlyExportLimit(v)
	return _u
}

// SetFileSizeLimitMB sets the "file_size_limit_mb" field.
func (_u *SubscriptionTierUpdate) SetFileSizeLimitMB(v int) *SubscriptionTierUpdate {
	_u.mutation.ResetFileSizeLimitMB()
	_u.mutation.SetFileSizeLimitMB(v)
	return _u
}

// SetNillableFileSizeLimitMB sets the "file_size_limit_mb" field if the given value is not nil.
func (_u *SubscriptionTierUpdate) SetNillableFileSizeLimitMB(v *int) *SubscriptionTierUpdate {
	if v != nil {
		_u.SetFileSizeLimitMB(*v)
	}
	return _u
}

// AddFileSizeLimitMB adds value to the "file_size_limit_mb" field.
func (_u *SubscriptionTierUpdate) AddFileSizeLimitMB(v int) *SubscriptionTierUpdate {
	_u.mutation.AddFileSizeLimitMB(v)
	return _u
}

// SetFeatures sets the "features" field.
func (_u *SubscriptionTierUpdate) SetFeatures(v []string) *SubscriptionTierUpdate {
	_u.mutation.SetFeatures(v)
	return _u
}

// AppendFeatures appends value to the "features" field.
func (_u *SubscriptionTierUpdate) AppendFeatures(v []string) *SubscriptionTierUpdate {
	_u.mutation.AppendFeatures(v)
	return _u
}

// ClearFeatures clears the value of the "features" field.
func (_u *SubscriptionTierUpdate) ClearFeatures() *SubscriptionTierUpdate {
	_u.mutation.ClearFeatures()
	return _u
}

// Mutation returns the SubscriptionTierMutation object of the builder.
func (_u *SubscriptionTierUpdate) Mutation() *SubscriptionTierMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubscriptionTierUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubscriptionTierUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubscriptionTierUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubscriptionTierUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubscriptionTierUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subscriptiontier.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SubscriptionTierUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscriptiontier.Table, subscriptiontier.Columns, sqlgraph.NewFieldSpec(subscriptiontier.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subscriptiontier.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MonthlyExportLimit(); ok {
		_spec.SetField(subscriptiontier.FieldMonthlyExportLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonthlyExportLimit(); ok {
		_spec.AddField(subscriptiontier.FieldMonthlyExportLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FileSizeLimitMB(); ok {
		_spec.SetField(subscriptiontier.FieldFileSizeLimitMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSizeLimitMB(); ok {
		_spec.AddField(subscriptiontier.FieldFileSizeLimitMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Features(); ok {
		_spec.SetField(subscriptiontier.FieldFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subscriptiontier.FieldFeatures, value)
		})
	}
	if _u.mutation.FeaturesCleared() {
		_spec.ClearField(subscriptiontier.FieldFeatures, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subscriptiontier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubscriptionTierUpdateOne is the builder for updating a single SubscriptionTier entity.
type SubscriptionTierUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubscriptionTierMutation
}

// SetName sets the "name" field.
func (_u *SubscriptionTierUpdateOne) SetName(v string) *SubscriptionTierUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubscriptionTierUpdateOne) SetNillableName(v *string) *SubscriptionTierUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMonthlyExportLimit sets the "monthly_export_limit" field.
func (_u *SubscriptionTierUpdateOne) SetMonthlyExportLimit(v int) *SubscriptionTierUpdateOne {
	_u.mutation.ResetMonthlyExportLimit()
	_u.mutation.SetMonthlyExportLimit(v)
	return _u
}

// SetNillableMonthlyExportLimit sets the "monthly_export_limit" field if the given value is not nil.
func (_u *SubscriptionTierUpdateOne) SetNillableMonthlyExportLimit(v *int) *SubscriptionTierUpdateOne {
	if v != nil {
		_u.SetMonthlyExportLimit(*v)
	}
	return _u
}

// AddMonthlyExportLimit adds value to the "monthly_export_limit" field.
func (_u *SubscriptionTierUpdateOne) AddMonthlyExportLimit(v int) *SubscriptionTierUpdateOne {
	_u.mutation.AddMonthlyExportLimit(v)
	return _u
}

// SetFileSizeLimitMB sets the "file_size_limit_mb" field.
func (_u *SubscriptionTierUpdateOne) SetFileSizeLimitMB(v int) *SubscriptionTierUpdateOne {
	_u.mutation.ResetFileSizeLimitMB()
	_u.mutation.SetFileSizeLimitMB(v)
	return _u
}

// SetNillableFileSizeLimitMB sets the "file_size_limit_mb" field if the given value is not nil.
func (_u *SubscriptionTierUpdateOne) SetNillableFileSizeLimitMB(v *int) *SubscriptionTierUpdateOne {
	if v != nil {
		_u.SetFileSizeLimitMB(*v)
	}
	return _u
}

// AddFileSizeLimitMB adds value to the "file_size_limit_mb" field.
func (_u *SubscriptionTierUpdateOne) AddFileSizeLimitMB(v int) *SubscriptionTierUpdateOne {
	_u.mutation.AddFileSizeLimitMB(v)
	return _u
}

// SetFeatures sets the "features" field.
func (_u *SubscriptionTierUpdateOne) SetFeatures(v []string) *SubscriptionTierUpdateOne {
	_u.mutation.SetFeatures(v)
	return _u
}

// AppendFeatures appends value to the "features" field.
func (_u *SubscriptionTierUpdateOne) AppendFeatures(v []string) *SubscriptionTierUpdateOne {
	_u.mutation.AppendFeatures(v)
	return _u
}

// ClearFeatures clears the value of the "features" field.
func (_u *SubscriptionTierUpdateOne) ClearFeatures() *SubscriptionTierUpdateOne {
	_u.mutation.ClearFeatures()
	return _u
}

// Mutation returns the SubscriptionTierMutation object of the builder.
func (_u *SubscriptionTierUpdateOne) Mutation() *SubscriptionTierMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubscriptionTierUpdate builder.
func (_u *SubscriptionTierUpdateOne) Where(ps ...predicate.SubscriptionTier) *SubscriptionTierUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubscriptionTierUpdateOne) Select(field string, fields ...string) *SubscriptionTierUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubscriptionTier entity.
func (_u *SubscriptionTierUpdateOne) Save(ctx context.Context) (*SubscriptionTier, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubscriptionTierUpdateOne) SaveX(ctx context.Context) *SubscriptionTier {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubscriptionTierUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubscriptionTierUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubscriptionTierUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subscriptiontier.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SubscriptionTier.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SubscriptionTierUpdateOne) sqlSave(ctx context.Context) (_node *SubscriptionTier, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscriptiontier.Table, subscriptiontier.Columns, sqlgraph.NewFieldSpec(subscriptiontier.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubscriptionTier.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subscriptiontier.FieldID)
		for _, f := range fields {
			if !subscriptiontier.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subscriptiontier.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subscriptiontier.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MonthlyExportLimit(); ok {
		_spec.SetField(subscriptiontier.FieldMonthlyExportLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonthlyExportLimit(); ok {
		_spec.AddField(subscriptiontier.FieldMonthlyExportLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FileSizeLimitMB(); ok {
		_spec.SetField(subscriptiontier.FieldFileSizeLimitMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSizeLimitMB(); ok {
		_spec.AddField(subscriptiontier.FieldFileSizeLimitMB, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Features(); ok {
		_spec.SetField(subscriptiontier.FieldFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subscriptiontier.FieldFeatures, value)
		})
	}
	if _u.mutation.FeaturesCleared() {
		_spec.ClearField(subscriptiontier.FieldFeatures, field.TypeJSON)
	}
	_node = &SubscriptionTier{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subscriptiontier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
