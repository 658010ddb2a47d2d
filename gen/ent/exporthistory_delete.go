// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/exporthistory"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/predicate"
)

// ExportHistoryDelete is the builder for deleting a ExportHistory entity.
type ExportHistoryDelete struct {
	config
	hooks    []Hook
	mutation *ExportHistoryMutation
}

// Where appends a list predicates to the ExportHistoryDelete builder.
func (_d *ExportHistoryDelete) Where(ps ...predicate.ExportHistory) *ExportHistoryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExportHistoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExportHistoryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExportHistoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(exporthistory.Table, sqlgraph.NewFieldSpec(exporthistory.FieldID, field.TypeUUID))
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

// ExportHistoryDeleteOne is the builder for deleting a single ExportHistory entity.
type ExportHistoryDeleteOne struct {
	_d *ExportHistoryDelete
}

// Where appends a list predicates to the ExportHistoryDelete builder.
func (_d *ExportHistoryDeleteOne) Where(ps ...predicate.ExportHistory) *ExportHistoryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExportHistoryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{exporthistory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExportHistoryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
