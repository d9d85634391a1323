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
	"github.com/payloop/billing/ent/invoice"
	"github.com/payloop/billing/ent/predicate"
	"github.com/payloop/billing/ent/user"
	"github.com/shopspring/decimal"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (iu *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	iu.mutation.Where(ps...)
	return iu
}

// SetUpdatedAt sets the "updated_at" field.
func (iu *InvoiceUpdate) SetUpdatedAt(t time.Time) *InvoiceUpdate {
	iu.mutation.SetUpdatedAt(t)
	return iu
}

// SetInvoiceNumber sets the "invoice_number" field.
func (iu *InvoiceUpdate) SetInvoiceNumber(s string) *InvoiceUpdate {
	iu.mutation.SetInvoiceNumber(s)
	return iu
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableInvoiceNumber(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetInvoiceNumber(*s)
	}
	return iu
}

// SetGatewayInvoiceID sets the "gateway_invoice_id" field.
func (iu *InvoiceUpdate) SetGatewayInvoiceID(s string) *InvoiceUpdate {
	iu.mutation.SetGatewayInvoiceID(s)
	return iu
}

// SetNillableGatewayInvoiceID sets the "gateway_invoice_id" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableGatewayInvoiceID(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetGatewayInvoiceID(*s)
	}
	return iu
}

// SetPaymentToken sets the "payment_token" field.
func (iu *InvoiceUpdate) SetPaymentToken(s string) *InvoiceUpdate {
	iu.mutation.SetPaymentToken(s)
	return iu
}

// SetNillablePaymentToken sets the "payment_token" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillablePaymentToken(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetPaymentToken(*s)
	}
	return iu
}

// SetCustomerName sets the "customer_name" field.
func (iu *InvoiceUpdate) SetCustomerName(s string) *InvoiceUpdate {
	iu.mutation.SetCustomerName(s)
	return iu
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableCustomerName(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetCustomerName(*s)
	}
	return iu
}

// SetCustomerEmail sets the "customer_email" field.
func (iu *InvoiceUpdate) SetCustomerEmail(s string) *InvoiceUpdate {
	iu.mutation.SetCustomerEmail(s)
	return iu
}

// SetNillableCustomerEmail sets the "customer_email" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableCustomerEmail(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetCustomerEmail(*s)
	}
	return iu
}

// SetDescription sets the "description" field.
func (iu *InvoiceUpdate) SetDescription(s string) *InvoiceUpdate {
	iu.mutation.SetDescription(s)
	return iu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableDescription(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetDescription(*s)
	}
	return iu
}

// ClearDescription clears the value of the "description" field.
func (iu *InvoiceUpdate) ClearDescription() *InvoiceUpdate {
	iu.mutation.ClearDescription()
	return iu
}

// SetSubtotal sets the "subtotal" field.
func (iu *InvoiceUpdate) SetSubtotal(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.ResetSubtotal()
	iu.mutation.SetSubtotal(d)
	return iu
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableSubtotal(d *decimal.Decimal) *InvoiceUpdate {
	if d != nil {
		iu.SetSubtotal(*d)
	}
	return iu
}

// AddSubtotal adds d to the "subtotal" field.
func (iu *InvoiceUpdate) AddSubtotal(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.AddSubtotal(d)
	return iu
}

// SetTaxRate sets the "tax_rate" field.
func (iu *InvoiceUpdate) SetTaxRate(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.ResetTaxRate()
	iu.mutation.SetTaxRate(d)
	return iu
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableTaxRate(d *decimal.Decimal) *InvoiceUpdate {
	if d != nil {
		iu.SetTaxRate(*d)
	}
	return iu
}

// AddTaxRate adds d to the "tax_rate" field.
func (iu *InvoiceUpdate) AddTaxRate(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.AddTaxRate(d)
	return iu
}

// SetTaxAmount sets the "tax_amount" field.
func (iu *InvoiceUpdate) SetTaxAmount(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.ResetTaxAmount()
	iu.mutation.SetTaxAmount(d)
	return iu
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableTaxAmount(d *decimal.Decimal) *InvoiceUpdate {
	if d != nil {
		iu.SetTaxAmount(*d)
	}
	return iu
}

// AddTaxAmount adds d to the "tax_amount" field.
func (iu *InvoiceUpdate) AddTaxAmount(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.AddTaxAmount(d)
	return iu
}

// SetTotal sets the "total" field.
func (iu *InvoiceUpdate) SetTotal(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.ResetTotal()
	iu.mutation.SetTotal(d)
	return iu
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableTotal(d *decimal.Decimal) *InvoiceUpdate {
	if d != nil {
		iu.SetTotal(*d)
	}
	return iu
}

// AddTotal adds d to the "total" field.
func (iu *InvoiceUpdate) AddTotal(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.AddTotal(d)
	return iu
}

// SetStatus sets the "status" field.
func (iu *InvoiceUpdate) SetStatus(i invoice.Status) *InvoiceUpdate {
	iu.mutation.SetStatus(i)
	return iu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableStatus(i *invoice.Status) *InvoiceUpdate {
	if i != nil {
		iu.SetStatus(*i)
	}
	return iu
}

// SetPaymentMethod sets the "payment_method" field.
func (iu *InvoiceUpdate) SetPaymentMethod(im invoice.PaymentMethod) *InvoiceUpdate {
	iu.mutation.SetPaymentMethod(im)
	return iu
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillablePaymentMethod(im *invoice.PaymentMethod) *InvoiceUpdate {
	if im != nil {
		iu.SetPaymentMethod(*im)
	}
	return iu
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (iu *InvoiceUpdate) ClearPaymentMethod() *InvoiceUpdate {
	iu.mutation.ClearPaymentMethod()
	return iu
}

// SetTransactionID sets the "transaction_id" field.
func (iu *InvoiceUpdate) SetTransactionID(s string) *InvoiceUpdate {
	iu.mutation.SetTransactionID(s)
	return iu
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableTransactionID(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetTransactionID(*s)
	}
	return iu
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (iu *InvoiceUpdate) ClearTransactionID() *InvoiceUpdate {
	iu.mutation.ClearTransactionID()
	return iu
}

// SetBeadPaymentID sets the "bead_payment_id" field.
func (iu *InvoiceUpdate) SetBeadPaymentID(s string) *InvoiceUpdate {
	iu.mutation.SetBeadPaymentID(s)
	return iu
}

// SetNillableBeadPaymentID sets the "bead_payment_id" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableBeadPaymentID(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetBeadPaymentID(*s)
	}
	return iu
}

// ClearBeadPaymentID clears the value of the "bead_payment_id" field.
func (iu *InvoiceUpdate) ClearBeadPaymentID() *InvoiceUpdate {
	iu.mutation.ClearBeadPaymentID()
	return iu
}

// SetPaymentDate sets the "payment_date" field.
func (iu *InvoiceUpdate) SetPaymentDate(t time.Time) *InvoiceUpdate {
	iu.mutation.SetPaymentDate(t)
	return iu
}

// SetNillablePaymentDate sets the "payment_date" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillablePaymentDate(t *time.Time) *InvoiceUpdate {
	if t != nil {
		iu.SetPaymentDate(*t)
	}
	return iu
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (iu *InvoiceUpdate) ClearPaymentDate() *InvoiceUpdate {
	iu.mutation.ClearPaymentDate()
	return iu
}

// SetDueDate sets the "due_date" field.
func (iu *InvoiceUpdate) SetDueDate(t time.Time) *InvoiceUpdate {
	iu.mutation.SetDueDate(t)
	return iu
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableDueDate(t *time.Time) *InvoiceUpdate {
	if t != nil {
		iu.SetDueDate(*t)
	}
	return iu
}

// ClearDueDate clears the value of the "due_date" field.
func (iu *InvoiceUpdate) ClearDueDate() *InvoiceUpdate {
	iu.mutation.ClearDueDate()
	return iu
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (iu *InvoiceUpdate) SetOwnerID(id uuid.UUID) *InvoiceUpdate {
	iu.mutation.SetOwnerID(id)
	return iu
}

// SetOwner sets the "owner" edge to the User entity.
func (iu *InvoiceUpdate) SetOwner(u *User) *InvoiceUpdate {
	return iu.SetOwnerID(u.ID)
}

// Mutation returns the InvoiceMutation object of the builder.
func (iu *InvoiceUpdate) Mutation() *InvoiceMutation {
	return iu.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (iu *InvoiceUpdate) ClearOwner() *InvoiceUpdate {
	iu.mutation.ClearOwner()
	return iu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iu *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	iu.defaults()
	return withHooks(ctx, iu.sqlSave, iu.mutation, iu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iu *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := iu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iu *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := iu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iu *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := iu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iu *InvoiceUpdate) defaults() {
	if _, ok := iu.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		iu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iu *InvoiceUpdate) check() error {
	if v, ok := iu.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := iu.mutation.GatewayInvoiceID(); ok {
		if err := invoice.GatewayInvoiceIDValidator(v); err != nil {
			return &ValidationError{Name: "gateway_invoice_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.gateway_invoice_id": %w`, err)}
		}
	}
	if v, ok := iu.mutation.PaymentToken(); ok {
		if err := invoice.PaymentTokenValidator(v); err != nil {
			return &ValidationError{Name: "payment_token", err: fmt.Errorf(`ent: validator failed for field "Invoice.payment_token": %w`, err)}
		}
	}
	if v, ok := iu.mutation.CustomerName(); ok {
		if err := invoice.CustomerNameValidator(v); err != nil {
			return &ValidationError{Name: "customer_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.customer_name": %w`, err)}
		}
	}
	if v, ok := iu.mutation.CustomerEmail(); ok {
		if err := invoice.CustomerEmailValidator(v); err != nil {
			return &ValidationError{Name: "customer_email", err: fmt.Errorf(`ent: validator failed for field "Invoice.customer_email": %w`, err)}
		}
	}
	if v, ok := iu.mutation.Description(); ok {
		if err := invoice.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Invoice.description": %w`, err)}
		}
	}
	if v, ok := iu.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if v, ok := iu.mutation.PaymentMethod(); ok {
		if err := invoice.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "Invoice.payment_method": %w`, err)}
		}
	}
	if v, ok := iu.mutation.TransactionID(); ok {
		if err := invoice.TransactionIDValidator(v); err != nil {
			return &ValidationError{Name: "transaction_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.transaction_id": %w`, err)}
		}
	}
	if v, ok := iu.mutation.BeadPaymentID(); ok {
		if err := invoice.BeadPaymentIDValidator(v); err != nil {
			return &ValidationError{Name: "bead_payment_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.bead_payment_id": %w`, err)}
		}
	}
	if iu.mutation.OwnerCleared() && len(iu.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.owner"`)
	}
	return nil
}

func (iu *InvoiceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := iu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := iu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iu.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := iu.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := iu.mutation.GatewayInvoiceID(); ok {
		_spec.SetField(invoice.FieldGatewayInvoiceID, field.TypeString, value)
	}
	if value, ok := iu.mutation.PaymentToken(); ok {
		_spec.SetField(invoice.FieldPaymentToken, field.TypeString, value)
	}
	if value, ok := iu.mutation.CustomerName(); ok {
		_spec.SetField(invoice.FieldCustomerName, field.TypeString, value)
	}
	if value, ok := iu.mutation.CustomerEmail(); ok {
		_spec.SetField(invoice.FieldCustomerEmail, field.TypeString, value)
	}
	if value, ok := iu.mutation.Description(); ok {
		_spec.SetField(invoice.FieldDescription, field.TypeString, value)
	}
	if iu.mutation.DescriptionCleared() {
		_spec.ClearField(invoice.FieldDescription, field.TypeString)
	}
	if value, ok := iu.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := iu.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := iu.mutation.TaxRate(); ok {
		_spec.SetField(invoice.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := iu.mutation.AddedTaxRate(); ok {
		_spec.AddField(invoice.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := iu.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := iu.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := iu.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := iu.mutation.AddedTotal(); ok {
		_spec.AddField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := iu.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := iu.mutation.PaymentMethod(); ok {
		_spec.SetField(invoice.FieldPaymentMethod, field.TypeEnum, value)
	}
	if iu.mutation.PaymentMethodCleared() {
		_spec.ClearField(invoice.FieldPaymentMethod, field.TypeEnum)
	}
	if value, ok := iu.mutation.TransactionID(); ok {
		_spec.SetField(invoice.FieldTransactionID, field.TypeString, value)
	}
	if iu.mutation.TransactionIDCleared() {
		_spec.ClearField(invoice.FieldTransactionID, field.TypeString)
	}
	if value, ok := iu.mutation.BeadPaymentID(); ok {
		_spec.SetField(invoice.FieldBeadPaymentID, field.TypeString, value)
	}
	if iu.mutation.BeadPaymentIDCleared() {
		_spec.ClearField(invoice.FieldBeadPaymentID, field.TypeString)
	}
	if value, ok := iu.mutation.PaymentDate(); ok {
		_spec.SetField(invoice.FieldPaymentDate, field.TypeTime, value)
	}
	if iu.mutation.PaymentDateCleared() {
		_spec.ClearField(invoice.FieldPaymentDate, field.TypeTime)
	}
	if value, ok := iu.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if iu.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if iu.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.OwnerTable,
			Columns: []string{invoice.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iu.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.OwnerTable,
			Columns: []string{invoice.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iu.mutation.done = true
	return n, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (iuo *InvoiceUpdateOne) SetUpdatedAt(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetUpdatedAt(t)
	return iuo
}

// SetInvoiceNumber sets the "invoice_number" field.
func (iuo *InvoiceUpdateOne) SetInvoiceNumber(s string) *InvoiceUpdateOne {
	iuo.mutation.SetInvoiceNumber(s)
	return iuo
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableInvoiceNumber(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetInvoiceNumber(*s)
	}
	return iuo
}

// SetGatewayInvoiceID sets the "gateway_invoice_id" field.
func (iuo *InvoiceUpdateOne) SetGatewayInvoiceID(s string) *InvoiceUpdateOne {
	iuo.mutation.SetGatewayInvoiceID(s)
	return iuo
}

// SetNillableGatewayInvoiceID sets the "gateway_invoice_id" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableGatewayInvoiceID(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetGatewayInvoiceID(*s)
	}
	return iuo
}

// SetPaymentToken sets the "payment_token" field.
func (iuo *InvoiceUpdateOne) SetPaymentToken(s string) *InvoiceUpdateOne {
	iuo.mutation.SetPaymentToken(s)
	return iuo
}

// SetNillablePaymentToken sets the "payment_token" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillablePaymentToken(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetPaymentToken(*s)
	}
	return iuo
}

// SetCustomerName sets the "customer_name" field.
func (iuo *InvoiceUpdateOne) SetCustomerName(s string) *InvoiceUpdateOne {
	iuo.mutation.SetCustomerName(s)
	return iuo
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableCustomerName(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetCustomerName(*s)
	}
	return iuo
}

// SetCustomerEmail sets the "customer_email" field.
func (iuo *InvoiceUpdateOne) SetCustomerEmail(s string) *InvoiceUpdateOne {
	iuo.mutation.SetCustomerEmail(s)
	return iuo
}

// SetNillableCustomerEmail sets the "customer_email" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableCustomerEmail(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetCustomerEmail(*s)
	}
	return iuo
}

// SetDescription sets the "description" field.
func (iuo *InvoiceUpdateOne) SetDescription(s string) *InvoiceUpdateOne {
	iuo.mutation.SetDescription(s)
	return iuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableDescription(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetDescription(*s)
	}
	return iuo
}

// ClearDescription clears the value of the "description" field.
func (iuo *InvoiceUpdateOne) ClearDescription() *InvoiceUpdateOne {
	iuo.mutation.ClearDescription()
	return iuo
}

// SetSubtotal sets the "subtotal" field.
func (iuo *InvoiceUpdateOne) SetSubtotal(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.ResetSubtotal()
	iuo.mutation.SetSubtotal(d)
	return iuo
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableSubtotal(d *decimal.Decimal) *InvoiceUpdateOne {
	if d != nil {
		iuo.SetSubtotal(*d)
	}
	return iuo
}

// AddSubtotal adds d to the "subtotal" field.
func (iuo *InvoiceUpdateOne) AddSubtotal(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.AddSubtotal(d)
	return iuo
}

// SetTaxRate sets the "tax_rate" field.
func (iuo *InvoiceUpdateOne) SetTaxRate(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.ResetTaxRate()
	iuo.mutation.SetTaxRate(d)
	return iuo
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableTaxRate(d *decimal.Decimal) *InvoiceUpdateOne {
	if d != nil {
		iuo.SetTaxRate(*d)
	}
	return iuo
}

// AddTaxRate adds d to the "tax_rate" field.
func (iuo *InvoiceUpdateOne) AddTaxRate(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.AddTaxRate(d)
	return iuo
}

// SetTaxAmount sets the "tax_amount" field.
func (iuo *InvoiceUpdateOne) SetTaxAmount(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.ResetTaxAmount()
	iuo.mutation.SetTaxAmount(d)
	return iuo
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableTaxAmount(d *decimal.Decimal) *InvoiceUpdateOne {
	if d != nil {
		iuo.SetTaxAmount(*d)
	}
	return iuo
}

// AddTaxAmount adds d to the "tax_amount" field.
func (iuo *InvoiceUpdateOne) AddTaxAmount(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.AddTaxAmount(d)
	return iuo
}

// SetTotal sets the "total" field.
func (iuo *InvoiceUpdateOne) SetTotal(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.ResetTotal()
	iuo.mutation.SetTotal(d)
	return iuo
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableTotal(d *decimal.Decimal) *InvoiceUpdateOne {
	if d != nil {
		iuo.SetTotal(*d)
	}
	return iuo
}

// AddTotal adds d to the "total" field.
func (iuo *InvoiceUpdateOne) AddTotal(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.AddTotal(d)
	return iuo
}

// SetStatus sets the "status" field.
func (iuo *InvoiceUpdateOne) SetStatus(i invoice.Status) *InvoiceUpdateOne {
	iuo.mutation.SetStatus(i)
	return iuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableStatus(i *invoice.Status) *InvoiceUpdateOne {
	if i != nil {
		iuo.SetStatus(*i)
	}
	return iuo
}

// SetPaymentMethod sets the "payment_method" field.
func (iuo *InvoiceUpdateOne) SetPaymentMethod(im invoice.PaymentMethod) *InvoiceUpdateOne {
	iuo.mutation.SetPaymentMethod(im)
	return iuo
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillablePaymentMethod(im *invoice.PaymentMethod) *InvoiceUpdateOne {
	if im != nil {
		iuo.SetPaymentMethod(*im)
	}
	return iuo
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (iuo *InvoiceUpdateOne) ClearPaymentMethod() *InvoiceUpdateOne {
	iuo.mutation.ClearPaymentMethod()
	return iuo
}

// SetTransactionID sets the "transaction_id" field.
func (iuo *InvoiceUpdateOne) SetTransactionID(s string) *InvoiceUpdateOne {
	iuo.mutation.SetTransactionID(s)
	return iuo
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableTransactionID(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetTransactionID(*s)
	}
	return iuo
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (iuo *InvoiceUpdateOne) ClearTransactionID() *InvoiceUpdateOne {
	iuo.mutation.ClearTransactionID()
	return iuo
}

// SetBeadPaymentID sets the "bead_payment_id" field.
func (iuo *InvoiceUpdateOne) SetBeadPaymentID(s string) *InvoiceUpdateOne {
	iuo.mutation.SetBeadPaymentID(s)
	return iuo
}

// SetNillableBeadPaymentID sets the "bead_payment_id" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableBeadPaymentID(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetBeadPaymentID(*s)
	}
	return iuo
}

// ClearBeadPaymentID clears the value of the "bead_payment_id" field.
func (iuo *InvoiceUpdateOne) ClearBeadPaymentID() *InvoiceUpdateOne {
	iuo.mutation.ClearBeadPaymentID()
	return iuo
}

// SetPaymentDate sets the "payment_date" field.
func (iuo *InvoiceUpdateOne) SetPaymentDate(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetPaymentDate(t)
	return iuo
}

// SetNillablePaymentDate sets the "payment_date" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillablePaymentDate(t *time.Time) *InvoiceUpdateOne {
	if t != nil {
		iuo.SetPaymentDate(*t)
	}
	return iuo
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (iuo *InvoiceUpdateOne) ClearPaymentDate() *InvoiceUpdateOne {
	iuo.mutation.ClearPaymentDate()
	return iuo
}

// SetDueDate sets the "due_date" field.
func (iuo *InvoiceUpdateOne) SetDueDate(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetDueDate(t)
	return iuo
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableDueDate(t *time.Time) *InvoiceUpdateOne {
	if t != nil {
		iuo.SetDueDate(*t)
	}
	return iuo
}

// ClearDueDate clears the value of the "due_date" field.
func (iuo *InvoiceUpdateOne) ClearDueDate() *InvoiceUpdateOne {
	iuo.mutation.ClearDueDate()
	return iuo
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (iuo *InvoiceUpdateOne) SetOwnerID(id uuid.UUID) *InvoiceUpdateOne {
	iuo.mutation.SetOwnerID(id)
	return iuo
}

// SetOwner sets the "owner" edge to the User entity.
func (iuo *InvoiceUpdateOne) SetOwner(u *User) *InvoiceUpdateOne {
	return iuo.SetOwnerID(u.ID)
}

// Mutation returns the InvoiceMutation object of the builder.
func (iuo *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return iuo.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (iuo *InvoiceUpdateOne) ClearOwner() *InvoiceUpdateOne {
	iuo.mutation.ClearOwner()
	return iuo
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (iuo *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	iuo.mutation.Where(ps...)
	return iuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iuo *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	iuo.fields = append([]string{field}, fields...)
	return iuo
}

// Save executes the query and returns the updated Invoice entity.
func (iuo *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	iuo.defaults()
	return withHooks(ctx, iuo.sqlSave, iuo.mutation, iuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iuo *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := iuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iuo *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := iuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iuo *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := iuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iuo *InvoiceUpdateOne) defaults() {
	if _, ok := iuo.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		iuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iuo *InvoiceUpdateOne) check() error {
	if v, ok := iuo.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.GatewayInvoiceID(); ok {
		if err := invoice.GatewayInvoiceIDValidator(v); err != nil {
			return &ValidationError{Name: "gateway_invoice_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.gateway_invoice_id": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.PaymentToken(); ok {
		if err := invoice.PaymentTokenValidator(v); err != nil {
			return &ValidationError{Name: "payment_token", err: fmt.Errorf(`ent: validator failed for field "Invoice.payment_token": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.CustomerName(); ok {
		if err := invoice.CustomerNameValidator(v); err != nil {
			return &ValidationError{Name: "customer_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.customer_name": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.CustomerEmail(); ok {
		if err := invoice.CustomerEmailValidator(v); err != nil {
			return &ValidationError{Name: "customer_email", err: fmt.Errorf(`ent: validator failed for field "Invoice.customer_email": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.Description(); ok {
		if err := invoice.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Invoice.description": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.PaymentMethod(); ok {
		if err := invoice.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "Invoice.payment_method": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.TransactionID(); ok {
		if err := invoice.TransactionIDValidator(v); err != nil {
			return &ValidationError{Name: "transaction_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.transaction_id": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.BeadPaymentID(); ok {
		if err := invoice.BeadPaymentIDValidator(v); err != nil {
			return &ValidationError{Name: "bead_payment_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.bead_payment_id": %w`, err)}
		}
	}
	if iuo.mutation.OwnerCleared() && len(iuo.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.owner"`)
	}
	return nil
}

func (iuo *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := iuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := iuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iuo.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := iuo.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := iuo.mutation.GatewayInvoiceID(); ok {
		_spec.SetField(invoice.FieldGatewayInvoiceID, field.TypeString, value)
	}
	if value, ok := iuo.mutation.PaymentToken(); ok {
		_spec.SetField(invoice.FieldPaymentToken, field.TypeString, value)
	}
	if value, ok := iuo.mutation.CustomerName(); ok {
		_spec.SetField(invoice.FieldCustomerName, field.TypeString, value)
	}
	if value, ok := iuo.mutation.CustomerEmail(); ok {
		_spec.SetField(invoice.FieldCustomerEmail, field.TypeString, value)
	}
	if value, ok := iuo.mutation.Description(); ok {
		_spec.SetField(invoice.FieldDescription, field.TypeString, value)
	}
	if iuo.mutation.DescriptionCleared() {
		_spec.ClearField(invoice.FieldDescription, field.TypeString)
	}
	if value, ok := iuo.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := iuo.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := iuo.mutation.TaxRate(); ok {
		_spec.SetField(invoice.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := iuo.mutation.AddedTaxRate(); ok {
		_spec.AddField(invoice.FieldTaxRate, field.TypeFloat64, value)
	}
	if value, ok := iuo.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := iuo.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := iuo.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := iuo.mutation.AddedTotal(); ok {
		_spec.AddField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := iuo.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := iuo.mutation.PaymentMethod(); ok {
		_spec.SetField(invoice.FieldPaymentMethod, field.TypeEnum, value)
	}
	if iuo.mutation.PaymentMethodCleared() {
		_spec.ClearField(invoice.FieldPaymentMethod, field.TypeEnum)
	}
	if value, ok := iuo.mutation.TransactionID(); ok {
		_spec.SetField(invoice.FieldTransactionID, field.TypeString, value)
	}
	if iuo.mutation.TransactionIDCleared() {
		_spec.ClearField(invoice.FieldTransactionID, field.TypeString)
	}
	if value, ok := iuo.mutation.BeadPaymentID(); ok {
		_spec.SetField(invoice.FieldBeadPaymentID, field.TypeString, value)
	}
	if iuo.mutation.BeadPaymentIDCleared() {
		_spec.ClearField(invoice.FieldBeadPaymentID, field.TypeString)
	}
	if value, ok := iuo.mutation.PaymentDate(); ok {
		_spec.SetField(invoice.FieldPaymentDate, field.TypeTime, value)
	}
	if iuo.mutation.PaymentDateCleared() {
		_spec.ClearField(invoice.FieldPaymentDate, field.TypeTime)
	}
	if value, ok := iuo.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if iuo.mutation.DueDateCleared() {
		_spec.ClearField(invoice.FieldDueDate, field.TypeTime)
	}
	if iuo.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.OwnerTable,
			Columns: []string{invoice.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iuo.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.OwnerTable,
			Columns: []string{invoice.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: iuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iuo.mutation.done = true
	return _node, nil
}
