// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/payloop/billing/ent/paymentcredentials"
	"github.com/payloop/billing/ent/predicate"
)

// PaymentCredentialsDelete is the builder for deleting a PaymentCredentials entity.
type PaymentCredentialsDelete struct {
	config
	hooks    []Hook
	mutation *PaymentCredentialsMutation
}

// Where appends a list predicates to the PaymentCredentialsDelete builder.
func (pcd *PaymentCredentialsDelete) Where(ps ...predicate.PaymentCredentials) *PaymentCredentialsDelete {
	pcd.mutation.Where(ps...)
	return pcd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (pcd *PaymentCredentialsDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, pcd.sqlExec, pcd.mutation, pcd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (pcd *PaymentCredentialsDelete) ExecX(ctx context.Context) int {
	n, err := pcd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (pcd *PaymentCredentialsDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(paymentcredentials.Table, sqlgraph.NewFieldSpec(paymentcredentials.FieldID, field.TypeUUID))
	if ps := pcd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, pcd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	pcd.mutation.done = true
	return affected, err
}

// PaymentCredentialsDeleteOne is the builder for deleting a single PaymentCredentials entity.
type PaymentCredentialsDeleteOne struct {
	pcd *PaymentCredentialsDelete
}

// Where appends a list predicates to the PaymentCredentialsDelete builder.
func (pcdo *PaymentCredentialsDeleteOne) Where(ps ...predicate.PaymentCredentials) *PaymentCredentialsDeleteOne {
	pcdo.pcd.mutation.Where(ps...)
	return pcdo
}

// Exec executes the deletion query.
func (pcdo *PaymentCredentialsDeleteOne) Exec(ctx context.Context) error {
	n, err := pcdo.pcd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{paymentcredentials.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (pcdo *PaymentCredentialsDeleteOne) ExecX(ctx context.Context) {
	if err := pcdo.Exec(ctx); err != nil {
		panic(err)
	}
}
