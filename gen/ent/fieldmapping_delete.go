// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/fieldmapping"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/predicate"
)

// FieldMappingDelete is the builder for deleting a FieldMapping entity.
type FieldMappingDelete struct {
	config
	hooks    []Hook
	mutation *FieldMappingMutation
}

// Where appends a list predicates to the FieldMappingDelete builder.
func (_d *FieldMappingDelete) Where(ps ...predicate.FieldMapping) *FieldMappingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FieldMappingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FieldMappingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FieldMappingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(fieldmapping.Table, sqlgraph.NewFieldSpec(fieldmapping.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// FieldMappingDeleteOne is the builder for deleting a single FieldMapping entity.
type FieldMappingDeleteOne struct {
	_d *FieldMappingDelete
}

// Where appends a list predicates to the FieldMappingDelete builder.
func (_d *FieldMappingDeleteOne) Where(ps ...predicate.FieldMapping) *FieldMappingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FieldMappingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{fieldmapping.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FieldMappingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
