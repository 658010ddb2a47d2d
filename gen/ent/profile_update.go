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
	"github.com/seyi-ajadi/invoiceflow/gen/ent/exporthistory"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/fieldmapping"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/invoice"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/predicate"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/profile"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/subscription"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProfileUpdate) SetEmail(v string) *ProfileUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableEmail(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProfileUpdate) SetName(v string) *ProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSubscriptionTier sets the "subscription_tier" field.
func (_u *ProfileUpdate) SetSubscriptionTier(v string) *ProfileUpdate {
	_u.mutation.SetSubscriptionTier(v)
	return _u
}

// SetNillableSubscriptionTier sets the "subscription_tier" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableSubscriptionTier(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetSubscriptionTier(*v)
	}
	return _u
}

// SetDefaultCurrency sets the "default_currency" field.
func (_u *ProfileUpdate) SetDefaultCurrency(v string) *ProfileUpdate {
	_u.mutation.SetDefaultCurrency(v)
	return _u
}

// SetNillableDefaultCurrency sets the "default_currency" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableDefaultCurrency(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetDefaultCurrency(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProfileUpdate) SetCreatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableCreatedAt(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFieldMappingIDs adds the "field_mappings" edge to the FieldMapping entity by IDs.
func (_u *ProfileUpdate) AddFieldMappingIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.AddFieldMappingIDs(ids...)
	return _u
}

// AddFieldMappings adds the "field_mappings" edges to the FieldMapping entity.
func (_u *ProfileUpdate) AddFieldMappings(v ...*FieldMapping) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldMappingIDs(ids...)
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *ProfileUpdate) AddInvoiceIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *ProfileUpdate) AddInvoices(v ...*Invoice) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// AddExportIDs adds the "exports" edge to the ExportHistory entity by IDs.
func (_u *ProfileUpdate) AddExportIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.AddExportIDs(ids...)
	return _u
}

// AddExports adds the "exports" edges to the ExportHistory entity.
func (_u *ProfileUpdate) AddExports(v ...*ExportHistory) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExportIDs(ids...)
}

// AddSubscriptionIDs adds the "subscriptions" edge to the Subscription entity by IDs.
func (_u *ProfileUpdate) AddSubscriptionIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.AddSubscriptionIDs(ids...)
	return _u
}

// AddSubscriptions adds the "subscriptions" edges to the Subscription entity.
func (_u *ProfileUpdate) AddSubscriptions(v ...*Subscription) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubscriptionIDs(ids...)
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// ClearFieldMappings clears all "field_mappings" edges to the FieldMapping entity.
func (_u *ProfileUpdate) ClearFieldMappings() *ProfileUpdate {
	_u.mutation.ClearFieldMappings()
	return _u
}

// RemoveFieldMappingIDs removes the "field_mappings" edge to FieldMapping entities by IDs.
func (_u *ProfileUpdate) RemoveFieldMappingIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.RemoveFieldMappingIDs(ids...)
	return _u
}

// RemoveFieldMappings removes "field_mappings" edges to FieldMapping entities.
func (_u *ProfileUpdate) RemoveFieldMappings(v ...*FieldMapping) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldMappingIDs(ids...)
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *ProfileUpdate) ClearInvoices() *ProfileUpdate {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *ProfileUpdate) RemoveInvoiceIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *ProfileUpdate) RemoveInvoices(v ...*Invoice) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// ClearExports clears all "exports" edges to the ExportHistory entity.
func (_u *ProfileUpdate) ClearExports() *ProfileUpdate {
	_u.mutation.ClearExports()
	return _u
}

// RemoveExportIDs removes the "exports" edge to ExportHistory entities by IDs.
func (_u *ProfileUpdate) RemoveExportIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.RemoveExportIDs(ids...)
	return _u
}

// RemoveExports removes "exports" edges to ExportHistory entities.
func (_u *ProfileUpdate) RemoveExports(v ...*ExportHistory) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExportIDs(ids...)
}

// ClearSubscriptions clears all "subscriptions" edges to the Subscription entity.
func (_u *ProfileUpdate) ClearSubscriptions() *ProfileUpdate {
	_u.mutation.ClearSubscriptions()
	return _u
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to Subscription entities by IDs.
func (_u *ProfileUpdate) RemoveSubscriptionIDs(ids ...uuid.UUID) *ProfileUpdate {
	_u.mutation.RemoveSubscriptionIDs(ids...)
	return _u
}

// RemoveSubscriptions removes "subscriptions" edges to Subscription entities.
func (_u *ProfileUpdate) RemoveSubscriptions(v ...*Subscription) *ProfileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubscriptionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := profile.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Profile.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := profile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Profile.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubscriptionTier(); ok {
		if err := profile.SubscriptionTierValidator(v); err != nil {
			return &ValidationError{Name: "subscription_tier", err: fmt.Errorf(`ent: validator failed for field "Profile.subscription_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultCurrency(); ok {
		if err := profile.DefaultCurrencyValidator(v); err != nil {
			return &ValidationError{Name: "default_currency", err: fmt.Errorf(`ent: validator failed for field "Profile.default_currency": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubscriptionTier(); ok {
		_spec.SetField(profile.FieldSubscriptionTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultCurrency(); ok {
		_spec.SetField(profile.FieldDefaultCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(profile.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FieldMappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.FieldMappingsTable,
			Columns: []string{profile.FieldMappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldmapping.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldMappingsIDs(); len(nodes) > 0 && !_u.mutation.FieldMappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.FieldMappingsTable,
			Columns: []string{profile.FieldMappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldmapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldMappingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.FieldMappingsTable,
			Columns: []string{profile.FieldMappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldmapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.InvoicesTable,
			Columns: []string{profile.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.InvoicesTable,
			Columns: []string{profile.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.InvoicesTable,
			Columns: []string{profile.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ExportsTable,
			Columns: []string{profile.ExportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exporthistory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExportsIDs(); len(nodes) > 0 && !_u.mutation.ExportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ExportsTable,
			Columns: []string{profile.ExportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exporthistory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ExportsTable,
			Columns: []string{profile.ExportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exporthistory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubscriptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SubscriptionsTable,
			Columns: []string{profile.SubscriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubscriptionsIDs(); len(nodes) > 0 && !_u.mutation.SubscriptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SubscriptionsTable,
			Columns: []string{profile.SubscriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SubscriptionsTable,
			Columns: []string{profile.SubscriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetEmail sets the "email" field.
func (_u *ProfileUpdateOne) SetEmail(v string) *ProfileUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableEmail(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProfileUpdateOne) SetName(v string) *ProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSubscriptionTier sets the "subscription_tier" field.
func (_u *ProfileUpdateOne) SetSubscriptionTier(v string) *ProfileUpdateOne {
	_u.mutation.SetSubscriptionTier(v)
	return _u
}

// SetNillableSubscriptionTier sets the "subscription_tier" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableSubscriptionTier(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetSubscriptionTier(*v)
	}
	return _u
}

// SetDefaultCurrency sets the "default_currency" field.
func (_u *ProfileUpdateOne) SetDefaultCurrency(v string) *ProfileUpdateOne {
	_u.mutation.SetDefaultCurrency(v)
	return _u
}

// SetNillableDefaultCurrency sets the "default_currency" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableDefaultCurrency(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetDefaultCurrency(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProfileUpdateOne) SetCreatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableCreatedAt(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFieldMappingIDs adds the "field_mappings" edge to the FieldMapping entity by IDs.
func (_u *ProfileUpdateOne) AddFieldMappingIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.AddFieldMappingIDs(ids...)
	return _u
}

// AddFieldMappings adds the "field_mappings" edges to the FieldMapping entity.
func (_u *ProfileUpdateOne) AddFieldMappings(v ...*FieldMapping) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldMappingIDs(ids...)
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *ProfileUpdateOne) AddInvoiceIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *ProfileUpdateOne) AddInvoices(v ...*Invoice) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// AddExportIDs adds the "exports" edge to the ExportHistory entity by IDs.
func (_u *ProfileUpdateOne) AddExportIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.AddExportIDs(ids...)
	return _u
}

// AddExports adds the "exports" edges to the ExportHistory entity.
func (_u *ProfileUpdateOne) AddExports(v ...*ExportHistory) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExportIDs(ids...)
}

// AddSubscriptionIDs adds the "subscriptions" edge to the Subscription entity by IDs.
func (_u *ProfileUpdateOne) AddSubscriptionIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.AddSubscriptionIDs(ids...)
	return _u
}

// AddSubscriptions adds the "subscriptions" edges to the Subscription entity.
func (_u *ProfileUpdateOne) AddSubscriptions(v ...*Subscription) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubscriptionIDs(ids...)
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// ClearFieldMappings clears all "field_mappings" edges to the FieldMapping entity.
func (_u *ProfileUpdateOne) ClearFieldMappings() *ProfileUpdateOne {
	_u.mutation.ClearFieldMappings()
	return _u
}

// RemoveFieldMappingIDs removes the "field_mappings" edge to FieldMapping entities by IDs.
func (_u *ProfileUpdateOne) RemoveFieldMappingIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.RemoveFieldMappingIDs(ids...)
	return _u
}

// RemoveFieldMappings removes "field_mappings" edges to FieldMapping entities.
func (_u *ProfileUpdateOne) RemoveFieldMappings(v ...*FieldMapping) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldMappingIDs(ids...)
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *ProfileUpdateOne) ClearInvoices() *ProfileUpdateOne {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *ProfileUpdateOne) RemoveInvoiceIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *ProfileUpdateOne) RemoveInvoices(v ...*Invoice) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// ClearExports clears all "exports" edges to the ExportHistory entity.
func (_u *ProfileUpdateOne) ClearExports() *ProfileUpdateOne {
	_u.mutation.ClearExports()
	return _u
}

// RemoveExportIDs removes the "exports" edge to ExportHistory entities by IDs.
func (_u *ProfileUpdateOne) RemoveExportIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.RemoveExportIDs(ids...)
	return _u
}

// RemoveExports removes "exports" edges to ExportHistory entities.
func (_u *ProfileUpdateOne) RemoveExports(v ...*ExportHistory) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExportIDs(ids...)
}

// ClearSubscriptions clears all "subscriptions" edges to the Subscription entity.
func (_u *ProfileUpdateOne) ClearSubscriptions() *ProfileUpdateOne {
	_u.mutation.ClearSubscriptions()
	return _u
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to Subscription entities by IDs.
func (_u *ProfileUpdateOne) RemoveSubscriptionIDs(ids ...uuid.UUID) *ProfileUpdateOne {
	_u.mutation.RemoveSubscriptionIDs(ids...)
	return _u
}

// RemoveSubscriptions removes "subscriptions" edges to Subscription entities.
func (_u *ProfileUpdateOne) RemoveSubscriptions(v ...*Subscription) *ProfileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubscriptionIDs(ids...)
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := profile.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Profile.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := profile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Profile.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubscriptionTier(); ok {
		if err := profile.SubscriptionTierValidator(v); err != nil {
			return &ValidationError{Name: "subscription_tier", err: fmt.Errorf(`ent: validator failed for field "Profile.subscription_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultCurrency(); ok {
		if err := profile.DefaultCurrencyValidator(v); err != nil {
			return &ValidationError{Name: "default_currency", err: fmt.Errorf(`ent: validator failed for field "Profile.default_currency": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubscriptionTier(); ok {
		_spec.SetField(profile.FieldSubscriptionTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultCurrency(); ok {
		_spec.SetField(profile.FieldDefaultCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(profile.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FieldMappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.FieldMappingsTable,
			Columns: []string{profile.FieldMappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldmapping.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldMappingsIDs(); len(nodes) > 0 && !_u.mutation.FieldMappingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.FieldMappingsTable,
			Columns: []string{profile.FieldMappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldmapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldMappingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.FieldMappingsTable,
			Columns: []string{profile.FieldMappingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldmapping.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.InvoicesTable,
			Columns: []string{profile.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.InvoicesTable,
			Columns: []string{profile.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.InvoicesTable,
			Columns: []string{profile.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ExportsTable,
			Columns: []string{profile.ExportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exporthistory.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExportsIDs(); len(nodes) > 0 && !_u.mutation.ExportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ExportsTable,
			Columns: []string{profile.ExportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exporthistory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.ExportsTable,
			Columns: []string{profile.ExportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(exporthistory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubscriptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SubscriptionsTable,
			Columns: []string{profile.SubscriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubscriptionsIDs(); len(nodes) > 0 && !_u.mutation.SubscriptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SubscriptionsTable,
			Columns: []string{profile.SubscriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profile.SubscriptionsTable,
			Columns: []string{profile.SubscriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
