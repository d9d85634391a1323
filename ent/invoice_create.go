// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/payloop/billing/ent/invoice"
	"github.com/payloop/billing/ent/user"
	"github.com/shopspring/decimal"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (ic *InvoiceCreate) SetCreatedAt(t time.Time) *InvoiceCreate {
	ic.mutation.SetCreatedAt(t)
	return ic
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableCreatedAt(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetCreatedAt(*t)
	}
	return ic
}

// SetUpdatedAt sets the "updated_at" field.
func (ic *InvoiceCreate) SetUpdatedAt(t time.Time) *InvoiceCreate {
	ic.mutation.SetUpdatedAt(t)
	return ic
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableUpdatedAt(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetUpdatedAt(*t)
	}
	return ic
}

// SetInvoiceNumber sets the "invoice_number" field.
func (ic *InvoiceCreate) SetInvoiceNumber(s string) *InvoiceCreate {
	ic.mutation.SetInvoiceNumber(s)
	return ic
}

// SetGatewayInvoiceID sets the "gateway_invoice_id" field.
func (ic *InvoiceCreate) SetGatewayInvoiceID(s string) *InvoiceCreate {
	ic.mutation.SetGatewayInvoiceID(s)
	return ic
}

// SetPaymentToken sets the "payment_token" field.
func (ic *InvoiceCreate) SetPaymentToken(s string) *InvoiceCreate {
	ic.mutation.SetPaymentToken(s)
	return ic
}

// SetCustomerName sets the "customer_name" field.
func (ic *InvoiceCreate) SetCustomerName(s string) *InvoiceCreate {
	ic.mutation.SetCustomerName(s)
	return ic
}

// SetCustomerEmail sets the "customer_email" field.
func (ic *InvoiceCreate) SetCustomerEmail(s string) *InvoiceCreate {
	ic.mutation.SetCustomerEmail(s)
	return ic
}

// SetDescription sets the "description" field.
func (ic *InvoiceCreate) SetDescription(s string) *InvoiceCreate {
	ic.mutation.SetDescription(s)
	return ic
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableDescription(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetDescription(*s)
	}
	return ic
}

// SetSubtotal sets the "subtotal" field.
func (ic *InvoiceCreate) SetSubtotal(d decimal.Decimal) *InvoiceCreate {
	ic.mutation.SetSubtotal(d)
	return ic
}

// SetTaxRate sets the "tax_rate" field.
func (ic *InvoiceCreate) SetTaxRate(d decimal.Decimal) *InvoiceCreate {
	ic.mutation.SetTaxRate(d)
	return ic
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableTaxRate(d *decimal.Decimal) *InvoiceCreate {
	if d != nil {
		ic.SetTaxRate(*d)
	}
	return ic
}

// SetTaxAmount sets the "tax_amount" field.
func (ic *InvoiceCreate) SetTaxAmount(d decimal.Decimal) *InvoiceCreate {
	ic.mutation.SetTaxAmount(d)
	return ic
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableTaxAmount(d *decimal.Decimal) *InvoiceCreate {
	if d != nil {
		ic.SetTaxAmount(*d)
	}
	return ic
}

// SetTotal sets the "total" field.
func (ic *InvoiceCreate) SetTotal(d decimal.Decimal) *InvoiceCreate {
	ic.mutation.SetTotal(d)
	return ic
}

// SetStatus sets the "status" field.
func (ic *InvoiceCreate) SetStatus(i invoice.Status) *InvoiceCreate {
	ic.mutation.SetStatus(i)
	return ic
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableStatus(i *invoice.Status) *InvoiceCreate {
	if i != nil {
		ic.SetStatus(*i)
	}
	return ic
}

// SetPaymentMethod sets the "payment_method" field.
func (ic *InvoiceCreate) SetPaymentMethod(im invoice.PaymentMethod) *InvoiceCreate {
	ic.mutation.SetPaymentMethod(im)
	return ic
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillablePaymentMethod(im *invoice.PaymentMethod) *InvoiceCreate {
	if im != nil {
		ic.SetPaymentMethod(*im)
	}
	return ic
}

// SetTransactionID sets the "transaction_id" field.
func (ic *InvoiceCreate) SetTransactionID(s string) *InvoiceCreate {
	ic.mutation.SetTransactionID(s)
	return ic
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableTransactionID(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetTransactionID(*s)
	}
	return ic
}

// SetBeadPaymentID sets the "bead_payment_id" field.
func (ic *InvoiceCreate) SetBeadPaymentID(s string) *InvoiceCreate {
	ic.mutation.SetBeadPaymentID(s)
	return ic
}

// SetNillableBeadPaymentID sets the "bead_payment_id" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableBeadPaymentID(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetBeadPaymentID(*s)
	}
	return ic
}

// SetPaymentDate sets the "payment_date" field.
func (ic *InvoiceCreate) SetPaymentDate(t time.Time) *InvoiceCreate {
	ic.mutation.SetPaymentDate(t)
	return ic
}

// SetNillablePaymentDate sets the "payment_date" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillablePaymentDate(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetPaymentDate(*t)
	}
	return ic
}

// SetDueDate sets the "due_date" field.
func (ic *InvoiceCreate) SetDueDate(t time.Time) *InvoiceCreate {
	ic.mutation.SetDueDate(t)
	return ic
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableDueDate(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetDueDate(*t)
	}
	return ic
}

// SetID sets the "id" field.
func (ic *InvoiceCreate) SetID(u uuid.UUID) *InvoiceCreate {
	ic.mutation.SetID(u)
	return ic
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableID(u *uuid.UUID) *InvoiceCreate {
	if u != nil {
		ic.SetID(*u)
	}
	return ic
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (ic *InvoiceCreate) SetOwnerID(id uuid.UUID) *InvoiceCreate {
	ic.mutation.SetOwnerID(id)
	return ic
}

// SetOwner sets the "owner" edge to the User entity.
func (ic *InvoiceCreate) SetOwner(u *User) *InvoiceCreate {
	return ic.SetOwnerID(u.ID)
}

// Mutation returns the InvoiceMutation object of the builder.
func (ic *InvoiceCreate) Mutation() *InvoiceMutation {
	return ic.mutation
}

// Save creates the Invoice in the database.
func (ic *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	ic.defaults()
	return withHooks(ctx, ic.sqlSave, ic.mutation, ic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ic *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := ic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ic *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := ic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ic *InvoiceCreate) ExecX(ctx context.Context) {
	if err := ic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ic *InvoiceCreate) defaults() {
	if _, ok := ic.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		ic.mutation.SetCreatedAt(v)
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		ic.mutation.SetUpdatedAt(v)
	}
	if _, ok := ic.mutation.TaxRate(); !ok {
		v := invoice.DefaultTaxRate()
		ic.mutation.SetTaxRate(v)
	}
	if _, ok := ic.mutation.TaxAmount(); !ok {
		v := invoice.DefaultTaxAmount()
		ic.mutation.SetTaxAmount(v)
	}
	if _, ok := ic.mutation.Status(); !ok {
		v := invoice.DefaultStatus
		ic.mutation.SetStatus(v)
	}
	if _, ok := ic.mutation.ID(); !ok {
		v := invoice.DefaultID()
		ic.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ic *InvoiceCreate) check() error {
	if _, ok := ic.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Invoice.created_at"`)}
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Invoice.updated_at"`)}
	}
	if _, ok := ic.mutation.InvoiceNumber(); !ok {
		return &ValidationError{Name: "invoice_number", err: errors.New(`ent: missing required field "Invoice.invoice_number"`)}
	}
	if v, ok := ic.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if _, ok := ic.mutation.GatewayInvoiceID(); !ok {
		return &ValidationError{Name: "gateway_invoice_id", err: errors.New(`ent: missing required field "Invoice.gateway_invoice_id"`)}
	}
	if v, ok := ic.mutation.GatewayInvoiceID(); ok {
		if err := invoice.GatewayInvoiceIDValidator(v); err != nil {
			return &ValidationError{Name: "gateway_invoice_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.gateway_invoice_id": %w`, err)}
		}
	}
	if _, ok := ic.mutation.PaymentToken(); !ok {
		return &ValidationError{Name: "payment_token", err: errors.New(`ent: missing required field "Invoice.payment_token"`)}
	}
	if v, ok := ic.mutation.PaymentToken(); ok {
		if err := invoice.PaymentTokenValidator(v); err != nil {
			return &ValidationError{Name: "payment_token", err: fmt.Errorf(`ent: validator failed for field "Invoice.payment_token": %w`, err)}
		}
	}
	if _, ok := ic.mutation.CustomerName(); !ok {
		return &ValidationError{Name: "customer_name", err: errors.New(`ent: missing required field "Invoice.customer_name"`)}
	}
	if v, ok := ic.mutation.CustomerName(); ok {
		if err := invoice.CustomerNameValidator(v); err != nil {
			return &ValidationError{Name: "customer_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.customer_name": %w`, err)}
		}
	}
	if _, ok := ic.mutation.CustomerEmail(); !ok {
		return &ValidationError{Name: "customer_email", err: errors.New(`ent: missing required field "Invoice.customer_email"`)}
	}
	if v, ok := ic.mutation.CustomerEmail(); ok {
		if err := invoice.CustomerEmailValidator(v); err != nil {
			return &ValidationError{Name: "customer_email", err: fmt.Errorf(`ent: validator failed for field "Invoice.customer_email": %w`, err)}
		}
	}
	if v, ok := ic.mutation.Description(); ok {
		if err := invoice.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Invoice.description": %w`, err)}
		}
	}
	if _, ok := ic.mutation.Subtotal(); !ok {
		return &ValidationError{Name: "subtotal", err: errors.New(`ent: missing required field "Invoice.subtotal"`)}
	}
	if _, ok := ic.mutation.TaxRate(); !ok {
		return &ValidationError{Name: "tax_rate", err: errors.New(`ent: missing required field "Invoice.tax_rate"`)}
	}
	if _, ok := ic.mutation.TaxAmount(); !ok {
		return &ValidationError{Name: "tax_amount", err: errors.New(`ent: missing required field "Invoice.tax_amount"`)}
	}
	if _, ok := ic.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "Invoice.total"`)}
	}
	if _, ok := ic.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Invoice.status"`)}
	}
	if v, ok := ic.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if v, ok := ic.mutation.PaymentMethod(); ok {
		if err := invoice.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`ent: validator failed for field "Invoice.payment_method": %w`, err)}
		}
	}
	if v, ok := ic.mutation.TransactionID(); ok {
		if err := invoice.TransactionIDValidator(v); err != nil {
			return &ValidationError{Name: "transaction_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.transaction_id": %w`, err)}
		}
	}
	if v, ok := ic.mutation.BeadPaymentID(); ok {
		if err := invoice.BeadPaymentIDValidator(v); err != nil {
			return &ValidationError{Name: "bead_payment_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.bead_payment_id": %w`, err)}
		}
	}
	if len(ic.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "Invoice.owner"`)}
	}
	return nil
}

func (ic *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := ic.check(); err != nil {
		return nil, err
	}
	_node, _spec := ic.createSpec()
	if err := sqlgraph.CreateNode(ctx, ic.driver, _spec); err != nil {
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
	ic.mutation.id = &_node.ID
	ic.mutation.done = true
	return _node, nil
}

func (ic *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: ic.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = ic.conflict
	if id, ok := ic.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ic.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ic.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := ic.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = value
	}
	if value, ok := ic.mutation.GatewayInvoiceID(); ok {
		_spec.SetField(invoice.FieldGatewayInvoiceID, field.TypeString, value)
		_node.GatewayInvoiceID = value
	}
	if value, ok := ic.mutation.PaymentToken(); ok {
		_spec.SetField(invoice.FieldPaymentToken, field.TypeString, value)
		_node.PaymentToken = value
	}
	if value, ok := ic.mutation.CustomerName(); ok {
		_spec.SetField(invoice.FieldCustomerName, field.TypeString, value)
		_node.CustomerName = value
	}
	if value, ok := ic.mutation.CustomerEmail(); ok {
		_spec.SetField(invoice.FieldCustomerEmail, field.TypeString, value)
		_node.CustomerEmail = value
	}
	if value, ok := ic.mutation.Description(); ok {
		_spec.SetField(invoice.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := ic.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
		_node.Subtotal = value
	}
	if value, ok := ic.mutation.TaxRate(); ok {
		_spec.SetField(invoice.FieldTaxRate, field.TypeFloat64, value)
		_node.TaxRate = value
	}
	if value, ok := ic.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
		_node.TaxAmount = value
	}
	if value, ok := ic.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeFloat64, value)
		_node.Total = value
	}
	if value, ok := ic.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := ic.mutation.PaymentMethod(); ok {
		_spec.SetField(invoice.FieldPaymentMethod, field.TypeEnum, value)
		_node.PaymentMethod = value
	}
	if value, ok := ic.mutation.TransactionID(); ok {
		_spec.SetField(invoice.FieldTransactionID, field.TypeString, value)
		_node.TransactionID = value
	}
	if value, ok := ic.mutation.BeadPaymentID(); ok {
		_spec.SetField(invoice.FieldBeadPaymentID, field.TypeString, value)
		_node.BeadPaymentID = value
	}
	if value, ok := ic.mutation.PaymentDate(); ok {
		_spec.SetField(invoice.FieldPaymentDate, field.TypeTime, value)
		_node.PaymentDate = &value
	}
	if value, ok := ic.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if nodes := ic.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_node.user_invoices = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Invoice.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvoiceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (ic *InvoiceCreate) OnConflict(opts ...sql.ConflictOption) *InvoiceUpsertOne {
	ic.conflict = opts
	return &InvoiceUpsertOne{
		create: ic,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ic *InvoiceCreate) OnConflictColumns(columns ...string) *InvoiceUpsertOne {
	ic.conflict = append(ic.conflict, sql.ConflictColumns(columns...))
	return &InvoiceUpsertOne{
		create: ic,
	}
}

type (
	// InvoiceUpsertOne is the builder for "upsert"-ing
	//  one Invoice node.
	InvoiceUpsertOne struct {
		create *InvoiceCreate
	}

	// InvoiceUpsert is the "OnConflict" setter.
	InvoiceUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *InvoiceUpsert) SetUpdatedAt(v time.Time) *InvoiceUpsert {
	u.Set(invoice.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateUpdatedAt() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldUpdatedAt)
	return u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (u *InvoiceUpsert) SetInvoiceNumber(v string) *InvoiceUpsert {
	u.Set(invoice.FieldInvoiceNumber, v)
	return u
}

// UpdateInvoiceNumber sets the "invoice_number" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateInvoiceNumber() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldInvoiceNumber)
	return u
}

// SetGatewayInvoiceID sets the "gateway_invoice_id" field.
func (u *InvoiceUpsert) SetGatewayInvoiceID(v string) *InvoiceUpsert {
	u.Set(invoice.FieldGatewayInvoiceID, v)
	return u
}

// UpdateGatewayInvoiceID sets the "gateway_invoice_id" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateGatewayInvoiceID() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldGatewayInvoiceID)
	return u
}

// SetPaymentToken sets the "payment_token" field.
func (u *InvoiceUpsert) SetPaymentToken(v string) *InvoiceUpsert {
	u.Set(invoice.FieldPaymentToken, v)
	return u
}

// UpdatePaymentToken sets the "payment_token" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdatePaymentToken() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldPaymentToken)
	return u
}

// SetCustomerName sets the "customer_name" field.
func (u *InvoiceUpsert) SetCustomerName(v string) *InvoiceUpsert {
	u.Set(invoice.FieldCustomerName, v)
	return u
}

// UpdateCustomerName sets the "customer_name" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateCustomerName() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldCustomerName)
	return u
}

// SetCustomerEmail sets the "customer_email" field.
func (u *InvoiceUpsert) SetCustomerEmail(v string) *InvoiceUpsert {
	u.Set(invoice.FieldCustomerEmail, v)
	return u
}

// UpdateCustomerEmail sets the "customer_email" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateCustomerEmail() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldCustomerEmail)
	return u
}

// SetDescription sets the "description" field.
func (u *InvoiceUpsert) SetDescription(v string) *InvoiceUpsert {
	u.Set(invoice.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateDescription() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *InvoiceUpsert) ClearDescription() *InvoiceUpsert {
	u.SetNull(invoice.FieldDescription)
	return u
}

// SetSubtotal sets the "subtotal" field.
func (u *InvoiceUpsert) SetSubtotal(v decimal.Decimal) *InvoiceUpsert {
	u.Set(invoice.FieldSubtotal, v)
	return u
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateSubtotal() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldSubtotal)
	return u
}

// AddSubtotal adds v to the "subtotal" field.
func (u *InvoiceUpsert) AddSubtotal(v decimal.Decimal) *InvoiceUpsert {
	u.Add(invoice.FieldSubtotal, v)
	return u
}

// SetTaxRate sets the "tax_rate" field.
func (u *InvoiceUpsert) SetTaxRate(v decimal.Decimal) *InvoiceUpsert {
	u.Set(invoice.FieldTaxRate, v)
	return u
}

// UpdateTaxRate sets the "tax_rate" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateTaxRate() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldTaxRate)
	return u
}

// AddTaxRate adds v to the "tax_rate" field.
func (u *InvoiceUpsert) AddTaxRate(v decimal.Decimal) *InvoiceUpsert {
	u.Add(invoice.FieldTaxRate, v)
	return u
}

// SetTaxAmount sets the "tax_amount" field.
func (u *InvoiceUpsert) SetTaxAmount(v decimal.Decimal) *InvoiceUpsert {
	u.Set(invoice.FieldTaxAmount, v)
	return u
}

// UpdateTaxAmount sets the "tax_amount" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateTaxAmount() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldTaxAmount)
	return u
}

// AddTaxAmount adds v to the "tax_amount" field.
func (u *InvoiceUpsert) AddTaxAmount(v decimal.Decimal) *InvoiceUpsert {
	u.Add(invoice.FieldTaxAmount, v)
	return u
}

// SetTotal sets the "total" field.
func (u *InvoiceUpsert) SetTotal(v decimal.Decimal) *InvoiceUpsert {
	u.Set(invoice.FieldTotal, v)
	return u
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateTotal() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldTotal)
	return u
}

// AddTotal adds v to the "total" field.
func (u *InvoiceUpsert) AddTotal(v decimal.Decimal) *InvoiceUpsert {
	u.Add(invoice.FieldTotal, v)
	return u
}

// SetStatus sets the "status" field.
func (u *InvoiceUpsert) SetStatus(v invoice.Status) *InvoiceUpsert {
	u.Set(invoice.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateStatus() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldStatus)
	return u
}

// SetPaymentMethod sets the "payment_method" field.
func (u *InvoiceUpsert) SetPaymentMethod(v invoice.PaymentMethod) *InvoiceUpsert {
	u.Set(invoice.FieldPaymentMethod, v)
	return u
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdatePaymentMethod() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldPaymentMethod)
	return u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (u *InvoiceUpsert) ClearPaymentMethod() *InvoiceUpsert {
	u.SetNull(invoice.FieldPaymentMethod)
	return u
}

// SetTransactionID sets the "transaction_id" field.
func (u *InvoiceUpsert) SetTransactionID(v string) *InvoiceUpsert {
	u.Set(invoice.FieldTransactionID, v)
	return u
}

// UpdateTransactionID sets the "transaction_id" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateTransactionID() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldTransactionID)
	return u
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (u *InvoiceUpsert) ClearTransactionID() *InvoiceUpsert {
	u.SetNull(invoice.FieldTransactionID)
	return u
}

// SetBeadPaymentID sets the "bead_payment_id" field.
func (u *InvoiceUpsert) SetBeadPaymentID(v string) *InvoiceUpsert {
	u.Set(invoice.FieldBeadPaymentID, v)
	return u
}

// UpdateBeadPaymentID sets the "bead_payment_id" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateBeadPaymentID() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldBeadPaymentID)
	return u
}

// ClearBeadPaymentID clears the value of the "bead_payment_id" field.
func (u *InvoiceUpsert) ClearBeadPaymentID() *InvoiceUpsert {
	u.SetNull(invoice.FieldBeadPaymentID)
	return u
}

// SetPaymentDate sets the "payment_date" field.
func (u *InvoiceUpsert) SetPaymentDate(v time.Time) *InvoiceUpsert {
	u.Set(invoice.FieldPaymentDate, v)
	return u
}

// UpdatePaymentDate sets the "payment_date" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdatePaymentDate() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldPaymentDate)
	return u
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (u *InvoiceUpsert) ClearPaymentDate() *InvoiceUpsert {
	u.SetNull(invoice.FieldPaymentDate)
	return u
}

// SetDueDate sets the "due_date" field.
func (u *InvoiceUpsert) SetDueDate(v time.Time) *InvoiceUpsert {
	u.Set(invoice.FieldDueDate, v)
	return u
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *InvoiceUpsert) UpdateDueDate() *InvoiceUpsert {
	u.SetExcluded(invoice.FieldDueDate)
	return u
}

// ClearDueDate clears the value of the "due_date" field.
func (u *InvoiceUpsert) ClearDueDate() *InvoiceUpsert {
	u.SetNull(invoice.FieldDueDate)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(invoice.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvoiceUpsertOne) UpdateNewValues() *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(invoice.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(invoice.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Invoice.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InvoiceUpsertOne) Ignore() *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvoiceUpsertOne) DoNothing() *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvoiceCreate.OnConflict
// documentation for more info.
func (u *InvoiceUpsertOne) Update(set func(*InvoiceUpsert)) *InvoiceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvoiceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InvoiceUpsertOne) SetUpdatedAt(v time.Time) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateUpdatedAt() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetInvoiceNumber sets the "invoice_number" field.
func (u *InvoiceUpsertOne) SetInvoiceNumber(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetInvoiceNumber(v)
	})
}

// UpdateInvoiceNumber sets the "invoice_number" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateInvoiceNumber() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateInvoiceNumber()
	})
}

// SetGatewayInvoiceID sets the "gateway_invoice_id" field.
func (u *InvoiceUpsertOne) SetGatewayInvoiceID(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetGatewayInvoiceID(v)
	})
}

// UpdateGatewayInvoiceID sets the "gateway_invoice_id" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateGatewayInvoiceID() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateGatewayInvoiceID()
	})
}

// SetPaymentToken sets the "payment_token" field.
func (u *InvoiceUpsertOne) SetPaymentToken(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetPaymentToken(v)
	})
}

// UpdatePaymentToken sets the "payment_token" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdatePaymentToken() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdatePaymentToken()
	})
}

// SetCustomerName sets the "customer_name" field.
func (u *InvoiceUpsertOne) SetCustomerName(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetCustomerName(v)
	})
}

// UpdateCustomerName sets the "customer_name" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateCustomerName() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateCustomerName()
	})
}

// SetCustomerEmail sets the "customer_email" field.
func (u *InvoiceUpsertOne) SetCustomerEmail(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetCustomerEmail(v)
	})
}

// UpdateCustomerEmail sets the "customer_email" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateCustomerEmail() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateCustomerEmail()
	})
}

// SetDescription sets the "description" field.
func (u *InvoiceUpsertOne) SetDescription(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateDescription() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *InvoiceUpsertOne) ClearDescription() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearDescription()
	})
}

// SetSubtotal sets the "subtotal" field.
func (u *InvoiceUpsertOne) SetSubtotal(v decimal.Decimal) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetSubtotal(v)
	})
}

// AddSubtotal adds v to the "subtotal" field.
func (u *InvoiceUpsertOne) AddSubtotal(v decimal.Decimal) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddSubtotal(v)
	})
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateSubtotal() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateSubtotal()
	})
}

// SetTaxRate sets the "tax_rate" field.
func (u *InvoiceUpsertOne) SetTaxRate(v decimal.Decimal) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTaxRate(v)
	})
}

// AddTaxRate adds v to the "tax_rate" field.
func (u *InvoiceUpsertOne) AddTaxRate(v decimal.Decimal) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddTaxRate(v)
	})
}

// UpdateTaxRate sets the "tax_rate" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateTaxRate() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTaxRate()
	})
}

// SetTaxAmount sets the "tax_amount" field.
func (u *InvoiceUpsertOne) SetTaxAmount(v decimal.Decimal) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTaxAmount(v)
	})
}

// AddTaxAmount adds v to the "tax_amount" field.
func (u *InvoiceUpsertOne) AddTaxAmount(v decimal.Decimal) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddTaxAmount(v)
	})
}

// UpdateTaxAmount sets the "tax_amount" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateTaxAmount() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTaxAmount()
	})
}

// SetTotal sets the "total" field.
func (u *InvoiceUpsertOne) SetTotal(v decimal.Decimal) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *InvoiceUpsertOne) AddTotal(v decimal.Decimal) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateTotal() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTotal()
	})
}

// SetStatus sets the "status" field.
func (u *InvoiceUpsertOne) SetStatus(v invoice.Status) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateStatus() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateStatus()
	})
}

// SetPaymentMethod sets the "payment_method" field.
func (u *InvoiceUpsertOne) SetPaymentMethod(v invoice.PaymentMethod) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetPaymentMethod(v)
	})
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdatePaymentMethod() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdatePaymentMethod()
	})
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (u *InvoiceUpsertOne) ClearPaymentMethod() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearPaymentMethod()
	})
}

// SetTransactionID sets the "transaction_id" field.
func (u *InvoiceUpsertOne) SetTransactionID(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTransactionID(v)
	})
}

// UpdateTransactionID sets the "transaction_id" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateTransactionID() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTransactionID()
	})
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (u *InvoiceUpsertOne) ClearTransactionID() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearTransactionID()
	})
}

// SetBeadPaymentID sets the "bead_payment_id" field.
func (u *InvoiceUpsertOne) SetBeadPaymentID(v string) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetBeadPaymentID(v)
	})
}

// UpdateBeadPaymentID sets the "bead_payment_id" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateBeadPaymentID() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateBeadPaymentID()
	})
}

// ClearBeadPaymentID clears the value of the "bead_payment_id" field.
func (u *InvoiceUpsertOne) ClearBeadPaymentID() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearBeadPaymentID()
	})
}

// SetPaymentDate sets the "payment_date" field.
func (u *InvoiceUpsertOne) SetPaymentDate(v time.Time) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetPaymentDate(v)
	})
}

// UpdatePaymentDate sets the "payment_date" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdatePaymentDate() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdatePaymentDate()
	})
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (u *InvoiceUpsertOne) ClearPaymentDate() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearPaymentDate()
	})
}

// SetDueDate sets the "due_date" field.
func (u *InvoiceUpsertOne) SetDueDate(v time.Time) *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *InvoiceUpsertOne) UpdateDueDate() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateDueDate()
	})
}

// ClearDueDate clears the value of the "due_date" field.
func (u *InvoiceUpsertOne) ClearDueDate() *InvoiceUpsertOne {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearDueDate()
	})
}

// Exec executes the query.
func (u *InvoiceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InvoiceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvoiceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InvoiceUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InvoiceUpsertOne.ID is not supported by MySQL driver. Use InvoiceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InvoiceUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
	conflict []sql.ConflictOption
}

// Save creates the Invoice entities in the database.
func (icb *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if icb.err != nil {
		return nil, icb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(icb.builders))
	nodes := make([]*Invoice, len(icb.builders))
	mutators := make([]Mutator, len(icb.builders))
	for i := range icb.builders {
		func(i int, root context.Context) {
			builder := icb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
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
					_, err = mutators[i+1].Mutate(root, icb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = icb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, icb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, icb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (icb *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := icb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (icb *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := icb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (icb *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := icb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Invoice.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvoiceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (icb *InvoiceCreateBulk) OnConflict(opts ...sql.ConflictOption) *InvoiceUpsertBulk {
	icb.conflict = opts
	return &InvoiceUpsertBulk{
		create: icb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (icb *InvoiceCreateBulk) OnConflictColumns(columns ...string) *InvoiceUpsertBulk {
	icb.conflict = append(icb.conflict, sql.ConflictColumns(columns...))
	return &InvoiceUpsertBulk{
		create: icb,
	}
}

// InvoiceUpsertBulk is the builder for "upsert"-ing
// a bulk of Invoice nodes.
type InvoiceUpsertBulk struct {
	create *InvoiceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(invoice.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvoiceUpsertBulk) UpdateNewValues() *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(invoice.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(invoice.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Invoice.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InvoiceUpsertBulk) Ignore() *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvoiceUpsertBulk) DoNothing() *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvoiceCreateBulk.OnConflict
// documentation for more info.
func (u *InvoiceUpsertBulk) Update(set func(*InvoiceUpsert)) *InvoiceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvoiceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InvoiceUpsertBulk) SetUpdatedAt(v time.Time) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateUpdatedAt() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetInvoiceNumber sets the "invoice_number" field.
func (u *InvoiceUpsertBulk) SetInvoiceNumber(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetInvoiceNumber(v)
	})
}

// UpdateInvoiceNumber sets the "invoice_number" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateInvoiceNumber() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateInvoiceNumber()
	})
}

// SetGatewayInvoiceID sets the "gateway_invoice_id" field.
func (u *InvoiceUpsertBulk) SetGatewayInvoiceID(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetGatewayInvoiceID(v)
	})
}

// UpdateGatewayInvoiceID sets the "gateway_invoice_id" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateGatewayInvoiceID() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateGatewayInvoiceID()
	})
}

// SetPaymentToken sets the "payment_token" field.
func (u *InvoiceUpsertBulk) SetPaymentToken(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetPaymentToken(v)
	})
}

// UpdatePaymentToken sets the "payment_token" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdatePaymentToken() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdatePaymentToken()
	})
}

// SetCustomerName sets the "customer_name" field.
func (u *InvoiceUpsertBulk) SetCustomerName(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetCustomerName(v)
	})
}

// UpdateCustomerName sets the "customer_name" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateCustomerName() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateCustomerName()
	})
}

// SetCustomerEmail sets the "customer_email" field.
func (u *InvoiceUpsertBulk) SetCustomerEmail(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetCustomerEmail(v)
	})
}

// UpdateCustomerEmail sets the "customer_email" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateCustomerEmail() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateCustomerEmail()
	})
}

// SetDescription sets the "description" field.
func (u *InvoiceUpsertBulk) SetDescription(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateDescription() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *InvoiceUpsertBulk) ClearDescription() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearDescription()
	})
}

// SetSubtotal sets the "subtotal" field.
func (u *InvoiceUpsertBulk) SetSubtotal(v decimal.Decimal) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetSubtotal(v)
	})
}

// AddSubtotal adds v to the "subtotal" field.
func (u *InvoiceUpsertBulk) AddSubtotal(v decimal.Decimal) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddSubtotal(v)
	})
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateSubtotal() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateSubtotal()
	})
}

// SetTaxRate sets the "tax_rate" field.
func (u *InvoiceUpsertBulk) SetTaxRate(v decimal.Decimal) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTaxRate(v)
	})
}

// AddTaxRate adds v to the "tax_rate" field.
func (u *InvoiceUpsertBulk) AddTaxRate(v decimal.Decimal) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddTaxRate(v)
	})
}

// UpdateTaxRate sets the "tax_rate" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateTaxRate() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTaxRate()
	})
}

// SetTaxAmount sets the "tax_amount" field.
func (u *InvoiceUpsertBulk) SetTaxAmount(v decimal.Decimal) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTaxAmount(v)
	})
}

// AddTaxAmount adds v to the "tax_amount" field.
func (u *InvoiceUpsertBulk) AddTaxAmount(v decimal.Decimal) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddTaxAmount(v)
	})
}

// UpdateTaxAmount sets the "tax_amount" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateTaxAmount() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTaxAmount()
	})
}

// SetTotal sets the "total" field.
func (u *InvoiceUpsertBulk) SetTotal(v decimal.Decimal) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *InvoiceUpsertBulk) AddTotal(v decimal.Decimal) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateTotal() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTotal()
	})
}

// SetStatus sets the "status" field.
func (u *InvoiceUpsertBulk) SetStatus(v invoice.Status) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateStatus() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateStatus()
	})
}

// SetPaymentMethod sets the "payment_method" field.
func (u *InvoiceUpsertBulk) SetPaymentMethod(v invoice.PaymentMethod) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetPaymentMethod(v)
	})
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdatePaymentMethod() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdatePaymentMethod()
	})
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (u *InvoiceUpsertBulk) ClearPaymentMethod() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearPaymentMethod()
	})
}

// SetTransactionID sets the "transaction_id" field.
func (u *InvoiceUpsertBulk) SetTransactionID(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetTransactionID(v)
	})
}

// UpdateTransactionID sets the "transaction_id" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateTransactionID() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateTransactionID()
	})
}

// ClearTransactionID clears the value of the "transaction_id" field.
func (u *InvoiceUpsertBulk) ClearTransactionID() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearTransactionID()
	})
}

// SetBeadPaymentID sets the "bead_payment_id" field.
func (u *InvoiceUpsertBulk) SetBeadPaymentID(v string) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetBeadPaymentID(v)
	})
}

// UpdateBeadPaymentID sets the "bead_payment_id" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateBeadPaymentID() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateBeadPaymentID()
	})
}

// ClearBeadPaymentID clears the value of the "bead_payment_id" field.
func (u *InvoiceUpsertBulk) ClearBeadPaymentID() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearBeadPaymentID()
	})
}

// SetPaymentDate sets the "payment_date" field.
func (u *InvoiceUpsertBulk) SetPaymentDate(v time.Time) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetPaymentDate(v)
	})
}

// UpdatePaymentDate sets the "payment_date" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdatePaymentDate() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdatePaymentDate()
	})
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (u *InvoiceUpsertBulk) ClearPaymentDate() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearPaymentDate()
	})
}

// SetDueDate sets the "due_date" field.
func (u *InvoiceUpsertBulk) SetDueDate(v time.Time) *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *InvoiceUpsertBulk) UpdateDueDate() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.UpdateDueDate()
	})
}

// ClearDueDate clears the value of the "due_date" field.
func (u *InvoiceUpsertBulk) ClearDueDate() *InvoiceUpsertBulk {
	return u.Update(func(s *InvoiceUpsert) {
		s.ClearDueDate()
	})
}

// Exec executes the query.
func (u *InvoiceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InvoiceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InvoiceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvoiceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
