// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/fieldmapping"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/predicate"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/profile"
)

// FieldMappingUpdate is the builder for updating FieldMapping entities.
type FieldMappingUpdate struct {
	config
	hooks    []Hook
	mutation *FieldMappingMutation
}

// Where appends a list predicates to the FieldMappingUpdate builder.
func (_u *FieldMappingUpdate) Where(ps ...predicate.FieldMapping) *FieldMappingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *FieldMappingUpdate) SetProfileID(v uuid.UUID) *FieldMappingUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *FieldMappingUpdate) SetNillableProfileID(v *uuid.UUID) *FieldMappingUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *FieldMappingUpdate) SetFieldName(v string) *FieldMappingUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *FieldMappingUpdate) SetNillableFieldName(v *string) *FieldMappingUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetValidationKind sets the "validation_kind" field.
func (_u *FieldMappingUpdate) SetValidationKind(v string) *FieldMappingUpdate {
	_u.mutation.SetValidationKind(v)
	return _u
}

// SetNillableValidationKind sets the "validation_kind" field if the given value is not nil.
func (_u *FieldMappingUpdate) SetNillableValidationKind(v *string) *FieldMappingUpdate {
	if v != nil {
		_u.SetValidationKind(*v)
	}
	return _u
}

// ClearValidationKind clears the value of the "validation_kind" field.
func (_u *FieldMappingUpdate) ClearValidationKind() *FieldMappingUpdate {
	_u.mutation.ClearValidationKind()
	return _u
}

// SetValidationPattern sets the "validation_pattern" field.
func (_u *FieldMappingUpdate) SetValidationPattern(v string) *FieldMappingUpdate {
	_u.mutation.SetValidationPattern(v)
	return _u
}

// SetNillableValidationPattern sets the "validation_pattern" field if the given value is not nil.
func (_u *FieldMappingUpdate) SetNillableValidationPattern(v *string) *FieldMappingUpdate {
	if v != nil {
		_u.SetValidationPattern(*v)
	}
	return _u
}

// ClearValidationPattern clears the value of the "validation_pattern" field.
func (_u *FieldMappingUpdate) ClearValidationPattern() *FieldMappingUpdate {
	_u.mutation.ClearValidationPattern()
	return _u
}

// SetValidationMessage sets the "validation_message" field.
func (_u *FieldMappingUpdate) SetValidationMessage(v string) *FieldMappingUpdate {
	_u.mutation.SetValidationMessage(v)
	return _u
}

// SetNillableValidationMessage sets the "validation_message" field if the given value is not nil.
func (_u *FieldMappingUpdate) SetNillableValidationMessage(v *string) *FieldMappingUpdate {
	if v != nil {
		_u.SetValidationMessage(*v)
	}
	return _u
}

// ClearValidationMessage clears the value of the "validation_message" field.
func (_u *FieldMappingUpdate) ClearValidationMessage() *FieldMappingUpdate {
	_u.mutation.ClearValidationMessage()
	return _u
}

// SetRequired sets the "required" field.
func (_u *FieldMappingUpdate) SetRequired(v bool) *FieldMappingUpdate {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *FieldMappingUpdate) SetNillableRequired(v *bool) *FieldMappingUpdate {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// SetCustomRules sets the "custom_rules" field.
func (_u *FieldMappingUpdate) SetCustomRules(v json.RawMessage) *FieldMappingUpdate {
	_u.mutation.SetCustomRules(v)
	return _u
}

// AppendCustomRules appends value to the "custom_rules" field.
func (_u *FieldMappingUpdate) AppendCustomRules(v json.RawMessage) *FieldMappingUpdate {
	_u.mutation.AppendCustomRules(v)
	return _u
}

// ClearCustomRules clears the value of the "custom_rules" field.
func (_u *FieldMappingUpdate) ClearCustomRules() *FieldMappingUpdate {
	_u.mutation.ClearCustomRules()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FieldMappingUpdate) SetCreatedAt(v time.Time) *FieldMappingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FieldMappingUpdate) SetNillableCreatedAt(v *time.Time) *FieldMappingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FieldMappingUpdate) SetUpdatedAt(v time.Time) *FieldMappingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *FieldMappingUpdate) SetProfile(v *Profile) *FieldMappingUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the FieldMappingMutation object of the builder.
func (_u *FieldMappingUpdate) Mutation() *FieldMappingMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *FieldMappingUpdate) ClearProfile() *FieldMappingUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FieldMappingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldMappingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FieldMappingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldMappingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FieldMappingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fieldmapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldMappingUpdate) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := fieldmapping.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "FieldMapping.field_name": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldMapping.profile"`)
	}
	return nil
}

func (_u *FieldMappingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldmapping.Table, fieldmapping.Columns, sqlgraph.NewFieldSpec(fieldmapping.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(fieldmapping.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidationKind(); ok {
		_spec.SetField(fieldmapping.FieldValidationKind, field.TypeString, value)
	}
	if _u.mutation.ValidationKindCleared() {
		_spec.ClearField(fieldmapping.FieldValidationKind, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationPattern(); ok {
		_spec.SetField(fieldmapping.FieldValidationPattern, field.TypeString, value)
	}
	if _u.mutation.ValidationPatternCleared() {
		_spec.ClearField(fieldmapping.FieldValidationPattern, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationMessage(); ok {
		_spec.SetField(fieldmapping.FieldValidationMessage, field.TypeString, value)
	}
	if _u.mutation.ValidationMessageCleared() {
		_spec.ClearField(fieldmapping.FieldValidationMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(fieldmapping.FieldRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CustomRules(); ok {
		_spec.SetField(fieldmapping.FieldCustomRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCustomRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fieldmapping.FieldCustomRules, value)
		})
	}
	if _u.mutation.CustomRulesCleared() {
		_spec.ClearField(fieldmapping.FieldCustomRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fieldmapping.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fieldmapping.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FieldMappingUpdateOne is the builder for updating a single FieldMapping entity.
type FieldMappingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FieldMappingMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *FieldMappingUpdateOne) SetProfileID(v uuid.UUID) *FieldMappingUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *FieldMappingUpdateOne) SetNillableProfileID(v *uuid.UUID) *FieldMappingUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *FieldMappingUpdateOne) SetFieldName(v string) *FieldMappingUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *FieldMappingUpdateOne) SetNillableFieldName(v *string) *FieldMappingUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetValidationKind sets the "validation_kind" field.
func (_u *FieldMappingUpdateOne) SetValidationKind(v string) *FieldMappingUpdateOne {
	_u.mutation.SetValidationKind(v)
	return _u
}

// SetNillableValidationKind sets the "validation_kind" field if the given value is not nil.
func (_u *FieldMappingUpdateOne) SetNillableValidationKind(v *string) *FieldMappingUpdateOne {
	if v != nil {
		_u.SetValidationKind(*v)
	}
	return _u
}

// ClearValidationKind clears the value of the "validation_kind" field.
func (_u *FieldMappingUpdateOne) ClearValidationKind() *FieldMappingUpdateOne {
	_u.mutation.ClearValidationKind()
	return _u
}

// SetValidationPattern sets the "validation_pattern" field.
func (_u *FieldMappingUpdateOne) SetValidationPattern(v string) *FieldMappingUpdateOne {
	_u.mutation.SetValidationPattern(v)
	return _u
}

// SetNillableValidationPattern sets the "validation_pattern" field if the given value is not nil.
func (_u *FieldMappingUpdateOne) SetNillableValidationPattern(v *string) *FieldMappingUpdateOne {
	if v != nil {
		_u.SetValidationPattern(*v)
	}
	return _u
}

// ClearValidationPattern clears the value of the "validation_pattern" field.
func (_u *FieldMappingUpdateOne) ClearValidationPattern() *FieldMappingUpdateOne {
	_u.mutation.ClearValidationPattern()
	return _u
}

// SetValidationMessage sets the "validation_message" field.
func (_u *FieldMappingUpdateOne) SetValidationMessage(v string) *FieldMappingUpdateOne {
	_u.mutation.SetValidationMessage(v)
	return _u
}

// SetNillableValidationMessage sets the "validation_message" field if the given value is not nil.
func (_u *FieldMappingUpdateOne) SetNillableValidationMessage(v *string) *FieldMappingUpdateOne {
	if v != nil {
		_u.SetValidationMessage(*v)
	}
	return _u
}

// ClearValidationMessage clears the value of the "validation_message" field.
func (_u *FieldMappingUpdateOne) ClearValidationMessage() *FieldMappingUpdateOne {
	_u.mutation.ClearValidationMessage()
	return _u
}

// SetRequired sets the "required" field.
func (_u *FieldMappingUpdateOne) SetRequired(v bool) *FieldMappingUpdateOne {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *FieldMappingUpdateOne) SetNillableRequired(v *bool) *FieldMappingUpdateOne {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// SetCustomRules sets the "custom_rules" field.
func (_u *FieldMappingUpdateOne) SetCustomRules(v json.RawMessage) *FieldMappingUpdateOne {
	_u.mutation.SetCustomRules(v)
	return _u
}

// AppendCustomRules appends value to the "custom_rules" field.
func (_u *FieldMappingUpdateOne) AppendCustomRules(v json.RawMessage) *FieldMappingUpdateOne {
	_u.mutation.AppendCustomRules(v)
	return _u
}

// ClearCustomRules clears the value of the "custom_rules" field.
func (_u *FieldMappingUpdateOne) ClearCustomRules() *FieldMappingUpdateOne {
	_u.mutation.ClearCustomRules()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FieldMappingUpdateOne) SetCreatedAt(v time.Time) *FieldMappingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FieldMappingUpdateOne) SetNillableCreatedAt(v *time.Time) *FieldMappingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FieldMappingUpdateOne) SetUpdatedAt(v time.Time) *FieldMappingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *FieldMappingUpdateOne) SetProfile(v *Profile) *FieldMappingUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the FieldMappingMutation object of the builder.
func (_u *FieldMappingUpdateOne) Mutation() *FieldMappingMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *FieldMappingUpdateOne) ClearProfile() *FieldMappingUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the FieldMappingUpdate builder.
func (_u *FieldMappingUpdateOne) Where(ps ...predicate.FieldMapping) *FieldMappingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FieldMappingUpdateOne) Select(field string, fields ...string) *FieldMappingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FieldMapping entity.
func (_u *FieldMappingUpdateOne) Save(ctx context.Context) (*FieldMapping, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldMappingUpdateOne) SaveX(ctx context.Context) *FieldMapping {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FieldMappingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldMappingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FieldMappingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fieldmapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldMappingUpdateOne) check() error {
	if v, ok := _u.mutation.FieldName(); ok {
		if err := fieldmapping.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "FieldMapping.field_name": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldMapping.profile"`)
	}
	return nil
}

func (_u *FieldMappingUpdateOne) sqlSave(ctx context.Context) (_node *FieldMapping, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldmapping.Table, fieldmapping.Columns, sqlgraph.NewFieldSpec(fieldmapping.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FieldMapping.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fieldmapping.FieldID)
		for _, f := range fields {
			if !fieldmapping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fieldmapping.FieldID {
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
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(fieldmapping.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidationKind(); ok {
		_spec.SetField(fieldmapping.FieldValidationKind, field.TypeString, value)
	}
	if _u.mutation.ValidationKindCleared() {
		_spec.ClearField(fieldmapping.FieldValidationKind, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationPattern(); ok {
		_spec.SetField(fieldmapping.FieldValidationPattern, field.TypeString, value)
	}
	if _u.mutation.ValidationPatternCleared() {
		_spec.ClearField(fieldmapping.FieldValidationPattern, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationMessage(); ok {
		_spec.SetField(fieldmapping.FieldValidationMessage, field.TypeString, value)
	}
	if _u.mutation.ValidationMessageCleared() {
		_spec.ClearField(fieldmapping.FieldValidationMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(fieldmapping.FieldRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CustomRules(); ok {
		_spec.SetField(fieldmapping.FieldCustomRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCustomRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fieldmapping.FieldCustomRules, value)
		})
	}
	if _u.mutation.CustomRulesCleared() {
		_spec.ClearField(fieldmapping.FieldCustomRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fieldmapping.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fieldmapping.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FieldMapping{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
