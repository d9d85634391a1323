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
	"github.com/payloop/billing/ent/paymentcredentials"
	"github.com/payloop/billing/ent/user"
)

// PaymentCredentialsCreate is the builder for creating a PaymentCredentials entity.
type PaymentCredentialsCreate struct {
	config
	mutation *PaymentCredentialsMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (pcc *PaymentCredentialsCreate) SetCreatedAt(t time.Time) *PaymentCredentialsCreate {
	pcc.mutation.SetCreatedAt(t)
	return pcc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (pcc *PaymentCredentialsCreate) SetNillableCreatedAt(t *time.Time) *PaymentCredentialsCreate {
	if t != nil {
		pcc.SetCreatedAt(*t)
	}
	return pcc
}

// SetUpdatedAt sets the "updated_at" field.
func (pcc *PaymentCredentialsCreate) SetUpdatedAt(t time.Time) *PaymentCredentialsCreate {
	pcc.mutation.SetUpdatedAt(t)
	return pcc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (pcc *PaymentCredentialsCreate) SetNillableUpdatedAt(t *time.Time) *PaymentCredentialsCreate {
	if t != nil {
		pcc.SetUpdatedAt(*t)
	}
	return pcc
}

// SetCardPublicKey sets the "card_public_key" field.
func (pcc *PaymentCredentialsCreate) SetCardPublicKey(s string) *PaymentCredentialsCreate {
	pcc.mutation.SetCardPublicKey(s)
	return pcc
}

// SetNillableCardPublicKey sets the "card_public_key" field if the given value is not nil.
func (pcc *PaymentCredentialsCreate) SetNillableCardPublicKey(s *string) *PaymentCredentialsCreate {
	if s != nil {
		pcc.SetCardPublicKey(*s)
	}
	return pcc
}

// SetCardPrivateKey sets the "card_private_key" field.
func (pcc *PaymentCredentialsCreate) SetCardPrivateKey(b []byte) *PaymentCredentialsCreate {
	pcc.mutation.SetCardPrivateKey(b)
	return pcc
}

// SetCardWebhookSecret sets the "card_webhook_secret" field.
func (pcc *PaymentCredentialsCreate) SetCardWebhookSecret(b []byte) *PaymentCredentialsCreate {
	pcc.mutation.SetCardWebhookSecret(b)
	return pcc
}

// SetBeadMerchantID sets the "bead_merchant_id" field.
func (pcc *PaymentCredentialsCreate) SetBeadMerchantID(s string) *PaymentCredentialsCreate {
	pcc.mutation.SetBeadMerchantID(s)
	return pcc
}

// SetNillableBeadMerchantID sets the "bead_merchant_id" field if the given value is not nil.
func (pcc *PaymentCredentialsCreate) SetNillableBeadMerchantID(s *string) *PaymentCredentialsCreate {
	if s != nil {
		pcc.SetBeadMerchantID(*s)
	}
	return pcc
}

// SetBeadTerminalID sets the "bead_terminal_id" field.
func (pcc *PaymentCredentialsCreate) SetBeadTerminalID(s string) *PaymentCredentialsCreate {
	pcc.mutation.SetBeadTerminalID(s)
	return pcc
}

// SetNillableBeadTerminalID sets the "bead_terminal_id" field if the given value is not nil.
func (pcc *PaymentCredentialsCreate) SetNillableBeadTerminalID(s *string) *PaymentCredentialsCreate {
	if s != nil {
		pcc.SetBeadTerminalID(*s)
	}
	return pcc
}

// SetBeadUsername sets the "bead_username" field.
func (pcc *PaymentCredentialsCreate) SetBeadUsername(s string) *PaymentCredentialsCreate {
	pcc.mutation.SetBeadUsername(s)
	return pcc
}

// SetNillableBeadUsername sets the "bead_username" field if the given value is not nil.
func (pcc *PaymentCredentialsCreate) SetNillableBeadUsername(s *string) *PaymentCredentialsCreate {
	if s != nil {
		pcc.SetBeadUsername(*s)
	}
	return pcc
}

// SetBeadPassword sets the "bead_password" field.
func (pcc *PaymentCredentialsCreate) SetBeadPassword(b []byte) *PaymentCredentialsCreate {
	pcc.mutation.SetBeadPassword(b)
	return pcc
}

// SetID sets the "id" field.
func (pcc *PaymentCredentialsCreate) SetID(u uuid.UUID) *PaymentCredentialsCreate {
	pcc.mutation.SetID(u)
	return pcc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (pcc *PaymentCredentialsCreate) SetNillableID(u *uuid.UUID) *PaymentCredentialsCreate {
	if u != nil {
		pcc.SetID(*u)
	}
	return pcc
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (pcc *PaymentCredentialsCreate) SetOwnerID(id uuid.UUID) *PaymentCredentialsCreate {
	pcc.mutation.SetOwnerID(id)
	return pcc
}

// SetOwner sets the "owner" edge to the User entity.
func (pcc *PaymentCredentialsCreate) SetOwner(u *User) *PaymentCredentialsCreate {
	return pcc.SetOwnerID(u.ID)
}

// Mutation returns the PaymentCredentialsMutation object of the builder.
func (pcc *PaymentCredentialsCreate) Mutation() *PaymentCredentialsMutation {
	return pcc.mutation
}

// Save creates the PaymentCredentials in the database.
func (pcc *PaymentCredentialsCreate) Save(ctx context.Context) (*PaymentCredentials, error) {
	pcc.defaults()
	return withHooks(ctx, pcc.sqlSave, pcc.mutation, pcc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pcc *PaymentCredentialsCreate) SaveX(ctx context.Context) *PaymentCredentials {
	v, err := pcc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pcc *PaymentCredentialsCreate) Exec(ctx context.Context) error {
	_, err := pcc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcc *PaymentCredentialsCreate) ExecX(ctx context.Context) {
	if err := pcc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pcc *PaymentCredentialsCreate) defaults() {
	if _, ok := pcc.mutation.CreatedAt(); !ok {
		v := paymentcredentials.DefaultCreatedAt()
		pcc.mutation.SetCreatedAt(v)
	}
	if _, ok := pcc.mutation.UpdatedAt(); !ok {
		v := paymentcredentials.DefaultUpdatedAt()
		pcc.mutation.SetUpdatedAt(v)
	}
	if _, ok := pcc.mutation.ID(); !ok {
		v := paymentcredentials.DefaultID()
		pcc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pcc *PaymentCredentialsCreate) check() error {
	if _, ok := pcc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PaymentCredentials.created_at"`)}
	}
	if _, ok := pcc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PaymentCredentials.updated_at"`)}
	}
	if v, ok := pcc.mutation.CardPublicKey(); ok {
		if err := paymentcredentials.CardPublicKeyValidator(v); err != nil {
			return &ValidationError{Name: "card_public_key", err: fmt.Errorf(`ent: validator failed for field "PaymentCredentials.card_public_key": %w`, err)}
		}
	}
	if v, ok := pcc.mutation.BeadMerchantID(); ok {
		if err := paymentcredentials.BeadMerchantIDValidator(v); err != nil {
			return &ValidationError{Name: "bead_merchant_id", err: fmt.Errorf(`ent: validator failed for field "PaymentCredentials.bead_merchant_id": %w`, err)}
		}
	}
	if v, ok := pcc.mutation.BeadTerminalID(); ok {
		if err := paymentcredentials.BeadTerminalIDValidator(v); err != nil {
			return &ValidationError{Name: "bead_terminal_id", err: fmt.Errorf(`ent: validator failed for field "PaymentCredentials.bead_terminal_id": %w`, err)}
		}
	}
	if v, ok := pcc.mutation.BeadUsername(); ok {
		if err := paymentcredentials.BeadUsernameValidator(v); err != nil {
			return &ValidationError{Name: "bead_username", err: fmt.Errorf(`ent: validator failed for field "PaymentCredentials.bead_username": %w`, err)}
		}
	}
	if len(pcc.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "PaymentCredentials.owner"`)}
	}
	return nil
}

func (pcc *PaymentCredentialsCreate) sqlSave(ctx context.Context) (*PaymentCredentials, error) {
	if err := pcc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pcc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pcc.driver, _spec); err != nil {
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
	pcc.mutation.id = &_node.ID
	pcc.mutation.done = true
	return _node, nil
}

func (pcc *PaymentCredentialsCreate) createSpec() (*PaymentCredentials, *sqlgraph.CreateSpec) {
	var (
		_node = &PaymentCredentials{config: pcc.config}
		_spec = sqlgraph.NewCreateSpec(paymentcredentials.Table, sqlgraph.NewFieldSpec(paymentcredentials.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = pcc.conflict
	if id, ok := pcc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := pcc.mutation.CreatedAt(); ok {
		_spec.SetField(paymentcredentials.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := pcc.mutation.UpdatedAt(); ok {
		_spec.SetField(paymentcredentials.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := pcc.mutation.CardPublicKey(); ok {
		_spec.SetField(paymentcredentials.FieldCardPublicKey, field.TypeString, value)
		_node.CardPublicKey = value
	}
	if value, ok := pcc.mutation.CardPrivateKey(); ok {
		_spec.SetField(paymentcredentials.FieldCardPrivateKey, field.TypeBytes, value)
		_node.CardPrivateKey = value
	}
	if value, ok := pcc.mutation.CardWebhookSecret(); ok {
		_spec.SetField(paymentcredentials.FieldCardWebhookSecret, field.TypeBytes, value)
		_node.CardWebhookSecret = value
	}
	if value, ok := pcc.mutation.BeadMerchantID(); ok {
		_spec.SetField(paymentcredentials.FieldBeadMerchantID, field.TypeString, value)
		_node.BeadMerchantID = value
	}
	if value, ok := pcc.mutation.BeadTerminalID(); ok {
		_spec.SetField(paymentcredentials.FieldBeadTerminalID, field.TypeString, value)
		_node.BeadTerminalID = value
	}
	if value, ok := pcc.mutation.BeadUsername(); ok {
		_spec.SetField(paymentcredentials.FieldBeadUsername, field.TypeString, value)
		_node.BeadUsername = value
	}
	if value, ok := pcc.mutation.BeadPassword(); ok {
		_spec.SetField(paymentcredentials.FieldBeadPassword, field.TypeBytes, value)
		_node.BeadPassword = value
	}
	if nodes := pcc.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   paymentcredentials.OwnerTable,
			Columns: []string{paymentcredentials.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.user_payment_credentials = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PaymentCredentials.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentCredentialsUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (pcc *PaymentCredentialsCreate) OnConflict(opts ...sql.ConflictOption) *PaymentCredentialsUpsertOne {
	pcc.conflict = opts
	return &PaymentCredentialsUpsertOne{
		create: pcc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PaymentCredentials.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (pcc *PaymentCredentialsCreate) OnConflictColumns(columns ...string) *PaymentCredentialsUpsertOne {
	pcc.conflict = append(pcc.conflict, sql.ConflictColumns(columns...))
	return &PaymentCredentialsUpsertOne{
		create: pcc,
	}
}

type (
	// PaymentCredentialsUpsertOne is the builder for "upsert"-ing
	//  one PaymentCredentials node.
	PaymentCredentialsUpsertOne struct {
		create *PaymentCredentialsCreate
	}

	// PaymentCredentialsUpsert is the "OnConflict" setter.
	PaymentCredentialsUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentCredentialsUpsert) SetUpdatedAt(v time.Time) *PaymentCredentialsUpsert {
	u.Set(paymentcredentials.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentCredentialsUpsert) UpdateUpdatedAt() *PaymentCredentialsUpsert {
	u.SetExcluded(paymentcredentials.FieldUpdatedAt)
	return u
}

// SetCardPublicKey sets the "card_public_key" field.
func (u *PaymentCredentialsUpsert) SetCardPublicKey(v string) *PaymentCredentialsUpsert {
	u.Set(paymentcredentials.FieldCardPublicKey, v)
	return u
}

// UpdateCardPublicKey sets the "card_public_key" field to the value that was provided on create.
func (u *PaymentCredentialsUpsert) UpdateCardPublicKey() *PaymentCredentialsUpsert {
	u.SetExcluded(paymentcredentials.FieldCardPublicKey)
	return u
}

// ClearCardPublicKey clears the value of the "card_public_key" field.
func (u *PaymentCredentialsUpsert) ClearCardPublicKey() *PaymentCredentialsUpsert {
	u.SetNull(paymentcredentials.FieldCardPublicKey)
	return u
}

// SetCardPrivateKey sets the "card_private_key" field.
func (u *PaymentCredentialsUpsert) SetCardPrivateKey(v []byte) *PaymentCredentialsUpsert {
	u.Set(paymentcredentials.FieldCardPrivateKey, v)
	return u
}

// UpdateCardPrivateKey sets the "card_private_key" field to the value that was provided on create.
func (u *PaymentCredentialsUpsert) UpdateCardPrivateKey() *PaymentCredentialsUpsert {
	u.SetExcluded(paymentcredentials.FieldCardPrivateKey)
	return u
}

// ClearCardPrivateKey clears the value of the "card_private_key" field.
func (u *PaymentCredentialsUpsert) ClearCardPrivateKey() *PaymentCredentialsUpsert {
	u.SetNull(paymentcredentials.FieldCardPrivateKey)
	return u
}

// SetCardWebhookSecret sets the "card_webhook_secret" field.
func (u *PaymentCredentialsUpsert) SetCardWebhookSecret(v []byte) *PaymentCredentialsUpsert {
	u.Set(paymentcredentials.FieldCardWebhookSecret, v)
	return u
}

// UpdateCardWebhookSecret sets the "card_webhook_secret" field to the value that was provided on create.
func (u *PaymentCredentialsUpsert) UpdateCardWebhookSecret() *PaymentCredentialsUpsert {
	u.SetExcluded(paymentcredentials.FieldCardWebhookSecret)
	return u
}

// ClearCardWebhookSecret clears the value of the "card_webhook_secret" field.
func (u *PaymentCredentialsUpsert) ClearCardWebhookSecret() *PaymentCredentialsUpsert {
	u.SetNull(paymentcredentials.FieldCardWebhookSecret)
	return u
}

// SetBeadMerchantID sets the "bead_merchant_id" field.
func (u *PaymentCredentialsUpsert) SetBeadMerchantID(v string) *PaymentCredentialsUpsert {
	u.Set(paymentcredentials.FieldBeadMerchantID, v)
	return u
}

// UpdateBeadMerchantID sets the "bead_merchant_id" field to the value that was provided on create.
func (u *PaymentCredentialsUpsert) UpdateBeadMerchantID() *PaymentCredentialsUpsert {
	u.SetExcluded(paymentcredentials.FieldBeadMerchantID)
	return u
}

// ClearBeadMerchantID clears the value of the "bead_merchant_id" field.
func (u *PaymentCredentialsUpsert) ClearBeadMerchantID() *PaymentCredentialsUpsert {
	u.SetNull(paymentcredentials.FieldBeadMerchantID)
	return u
}

// SetBeadTerminalID sets the "bead_terminal_id" field.
func (u *PaymentCredentialsUpsert) SetBeadTerminalID(v string) *PaymentCredentialsUpsert {
	u.Set(paymentcredentials.FieldBeadTerminalID, v)
	return u
}

// UpdateBeadTerminalID sets the "bead_terminal_id" field to the value that was provided on create.
func (u *PaymentCredentialsUpsert) UpdateBeadTerminalID() *PaymentCredentialsUpsert {
	u.SetExcluded(paymentcredentials.FieldBeadTerminalID)
	return u
}

// ClearBeadTerminalID clears the value of the "bead_terminal_id" field.
func (u *PaymentCredentialsUpsert) ClearBeadTerminalID() *PaymentCredentialsUpsert {
	u.SetNull(paymentcredentials.FieldBeadTerminalID)
	return u
}

// SetBeadUsername sets the "bead_username" field.
func (u *PaymentCredentialsUpsert) SetBeadUsername(v string) *PaymentCredentialsUpsert {
	u.Set(paymentcredentials.FieldBeadUsername, v)
	return u
}

// UpdateBeadUsername sets the "bead_username" field to the value that was provided on create.
func (u *PaymentCredentialsUpsert) UpdateBeadUsername() *PaymentCredentialsUpsert {
	u.SetExcluded(paymentcredentials.FieldBeadUsername)
	return u
}

// ClearBeadUsername clears the value of the "bead_username" field.
func (u *PaymentCredentialsUpsert) ClearBeadUsername() *PaymentCredentialsUpsert {
	u.SetNull(paymentcredentials.FieldBeadUsername)
	return u
}

// SetBeadPassword sets the "bead_password" field.
func (u *PaymentCredentialsUpsert) SetBeadPassword(v []byte) *PaymentCredentialsUpsert {
	u.Set(paymentcredentials.FieldBeadPassword, v)
	return u
}

// UpdateBeadPassword sets the "bead_password" field to the value that was provided on create.
func (u *PaymentCredentialsUpsert) UpdateBeadPassword() *PaymentCredentialsUpsert {
	u.SetExcluded(paymentcredentials.FieldBeadPassword)
	return u
}

// ClearBeadPassword clears the value of the "bead_password" field.
func (u *PaymentCredentialsUpsert) ClearBeadPassword() *PaymentCredentialsUpsert {
	u.SetNull(paymentcredentials.FieldBeadPassword)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PaymentCredentials.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paymentcredentials.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentCredentialsUpsertOne) UpdateNewValues() *PaymentCredentialsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(paymentcredentials.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(paymentcredentials.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PaymentCredentials.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PaymentCredentialsUpsertOne) Ignore() *PaymentCredentialsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentCredentialsUpsertOne) DoNothing() *PaymentCredentialsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentCredentialsCreate.OnConflict
// documentation for more info.
func (u *PaymentCredentialsUpsertOne) Update(set func(*PaymentCredentialsUpsert)) *PaymentCredentialsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentCredentialsUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentCredentialsUpsertOne) SetUpdatedAt(v time.Time) *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentCredentialsUpsertOne) UpdateUpdatedAt() *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCardPublicKey sets the "card_public_key" field.
func (u *PaymentCredentialsUpsertOne) SetCardPublicKey(v string) *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.SetCardPublicKey(v)
	})
}

// UpdateCardPublicKey sets the "card_public_key" field to the value that was provided on create.
func (u *PaymentCredentialsUpsertOne) UpdateCardPublicKey() *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.UpdateCardPublicKey()
	})
}

// ClearCardPublicKey clears the value of the "card_public_key" field.
func (u *PaymentCredentialsUpsertOne) ClearCardPublicKey() *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.ClearCardPublicKey()
	})
}

// SetCardPrivateKey sets the "card_private_key" field.
func (u *PaymentCredentialsUpsertOne) SetCardPrivateKey(v []byte) *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.SetCardPrivateKey(v)
	})
}

// UpdateCardPrivateKey sets the "card_private_key" field to the value that was provided on create.
func (u *PaymentCredentialsUpsertOne) UpdateCardPrivateKey() *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.UpdateCardPrivateKey()
	})
}

// ClearCardPrivateKey clears the value of the "card_private_key" field.
func (u *PaymentCredentialsUpsertOne) ClearCardPrivateKey() *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.ClearCardPrivateKey()
	})
}

// SetCardWebhookSecret sets the "card_webhook_secret" field.
func (u *PaymentCredentialsUpsertOne) SetCardWebhookSecret(v []byte) *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.SetCardWebhookSecret(v)
	})
}

// UpdateCardWebhookSecret sets the "card_webhook_secret" field to the value that was provided on create.
func (u *PaymentCredentialsUpsertOne) UpdateCardWebhookSecret() *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.UpdateCardWebhookSecret()
	})
}

// ClearCardWebhookSecret clears the value of the "card_webhook_secret" field.
func (u *PaymentCredentialsUpsertOne) ClearCardWebhookSecret() *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.ClearCardWebhookSecret()
	})
}

// SetBeadMerchantID sets the "bead_merchant_id" field.
func (u *PaymentCredentialsUpsertOne) SetBeadMerchantID(v string) *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.SetBeadMerchantID(v)
	})
}

// UpdateBeadMerchantID sets the "bead_merchant_id" field to the value that was provided on create.
func (u *PaymentCredentialsUpsertOne) UpdateBeadMerchantID() *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.UpdateBeadMerchantID()
	})
}

// ClearBeadMerchantID clears the value of the "bead_merchant_id" field.
func (u *PaymentCredentialsUpsertOne) ClearBeadMerchantID() *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.ClearBeadMerchantID()
	})
}

// SetBeadTerminalID sets the "bead_terminal_id" field.
func (u *PaymentCredentialsUpsertOne) SetBeadTerminalID(v string) *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.SetBeadTerminalID(v)
	})
}

// UpdateBeadTerminalID sets the "bead_terminal_id" field to the value that was provided on create.
func (u *PaymentCredentialsUpsertOne) UpdateBeadTerminalID() *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.UpdateBeadTerminalID()
	})
}

// ClearBeadTerminalID clears the value of the "bead_terminal_id" field.
func (u *PaymentCredentialsUpsertOne) ClearBeadTerminalID() *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.ClearBeadTerminalID()
	})
}

// SetBeadUsername sets the "bead_username" field.
func (u *PaymentCredentialsUpsertOne) SetBeadUsername(v string) *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.SetBeadUsername(v)
	})
}

// UpdateBeadUsername sets the "bead_username" field to the value that was provided on create.
func (u *PaymentCredentialsUpsertOne) UpdateBeadUsername() *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.UpdateBeadUsername()
	})
}

// ClearBeadUsername clears the value of the "bead_username" field.
func (u *PaymentCredentialsUpsertOne) ClearBeadUsername() *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.ClearBeadUsername()
	})
}

// SetBeadPassword sets the "bead_password" field.
func (u *PaymentCredentialsUpsertOne) SetBeadPassword(v []byte) *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.SetBeadPassword(v)
	})
}

// UpdateBeadPassword sets the "bead_password" field to the value that was provided on create.
func (u *PaymentCredentialsUpsertOne) UpdateBeadPassword() *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.UpdateBeadPassword()
	})
}

// ClearBeadPassword clears the value of the "bead_password" field.
func (u *PaymentCredentialsUpsertOne) ClearBeadPassword() *PaymentCredentialsUpsertOne {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.ClearBeadPassword()
	})
}

// Exec executes the query.
func (u *PaymentCredentialsUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaymentCredentialsCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentCredentialsUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PaymentCredentialsUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PaymentCredentialsUpsertOne.ID is not supported by MySQL driver. Use PaymentCredentialsUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PaymentCredentialsUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PaymentCredentialsCreateBulk is the builder for creating many PaymentCredentials entities in bulk.
type PaymentCredentialsCreateBulk struct {
	config
	err      error
	builders []*PaymentCredentialsCreate
	conflict []sql.ConflictOption
}

// Save creates the PaymentCredentials entities in the database.
func (pccb *PaymentCredentialsCreateBulk) Save(ctx context.Context) ([]*PaymentCredentials, error) {
	if pccb.err != nil {
		return nil, pccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pccb.builders))
	nodes := make([]*PaymentCredentials, len(pccb.builders))
	mutators := make([]Mutator, len(pccb.builders))
	for i := range pccb.builders {
		func(i int, root context.Context) {
			builder := pccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaymentCredentialsMutation)
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
					_, err = mutators[i+1].Mutate(root, pccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = pccb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pccb *PaymentCredentialsCreateBulk) SaveX(ctx context.Context) []*PaymentCredentials {
	v, err := pccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pccb *PaymentCredentialsCreateBulk) Exec(ctx context.Context) error {
	_, err := pccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pccb *PaymentCredentialsCreateBulk) ExecX(ctx context.Context) {
	if err := pccb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PaymentCredentials.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentCredentialsUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (pccb *PaymentCredentialsCreateBulk) OnConflict(opts ...sql.ConflictOption) *PaymentCredentialsUpsertBulk {
	pccb.conflict = opts
	return &PaymentCredentialsUpsertBulk{
		create: pccb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PaymentCredentials.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (pccb *PaymentCredentialsCreateBulk) OnConflictColumns(columns ...string) *PaymentCredentialsUpsertBulk {
	pccb.conflict = append(pccb.conflict, sql.ConflictColumns(columns...))
	return &PaymentCredentialsUpsertBulk{
		create: pccb,
	}
}

// PaymentCredentialsUpsertBulk is the builder for "upsert"-ing
// a bulk of PaymentCredentials nodes.
type PaymentCredentialsUpsertBulk struct {
	create *PaymentCredentialsCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PaymentCredentials.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paymentcredentials.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentCredentialsUpsertBulk) UpdateNewValues() *PaymentCredentialsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(paymentcredentials.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(paymentcredentials.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PaymentCredentials.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PaymentCredentialsUpsertBulk) Ignore() *PaymentCredentialsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentCredentialsUpsertBulk) DoNothing() *PaymentCredentialsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentCredentialsCreateBulk.OnConflict
// documentation for more info.
func (u *PaymentCredentialsUpsertBulk) Update(set func(*PaymentCredentialsUpsert)) *PaymentCredentialsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentCredentialsUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentCredentialsUpsertBulk) SetUpdatedAt(v time.Time) *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentCredentialsUpsertBulk) UpdateUpdatedAt() *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCardPublicKey sets the "card_public_key" field.
func (u *PaymentCredentialsUpsertBulk) SetCardPublicKey(v string) *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.SetCardPublicKey(v)
	})
}

// UpdateCardPublicKey sets the "card_public_key" field to the value that was provided on create.
func (u *PaymentCredentialsUpsertBulk) UpdateCardPublicKey() *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.UpdateCardPublicKey()
	})
}

// ClearCardPublicKey clears the value of the "card_public_key" field.
func (u *PaymentCredentialsUpsertBulk) ClearCardPublicKey() *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.ClearCardPublicKey()
	})
}

// SetCardPrivateKey sets the "card_private_key" field.
func (u *PaymentCredentialsUpsertBulk) SetCardPrivateKey(v []byte) *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.SetCardPrivateKey(v)
	})
}

// UpdateCardPrivateKey sets the "card_private_key" field to the value that was provided on create.
func (u *PaymentCredentialsUpsertBulk) UpdateCardPrivateKey() *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.UpdateCardPrivateKey()
	})
}

// ClearCardPrivateKey clears the value of the "card_private_key" field.
func (u *PaymentCredentialsUpsertBulk) ClearCardPrivateKey() *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.ClearCardPrivateKey()
	})
}

// SetCardWebhookSecret sets the "card_webhook_secret" field.
func (u *PaymentCredentialsUpsertBulk) SetCardWebhookSecret(v []byte) *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.SetCardWebhookSecret(v)
	})
}

// UpdateCardWebhookSecret sets the "card_webhook_secret" field to the value that was provided on create.
func (u *PaymentCredentialsUpsertBulk) UpdateCardWebhookSecret() *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.UpdateCardWebhookSecret()
	})
}

// ClearCardWebhookSecret clears the value of the "card_webhook_secret" field.
func (u *PaymentCredentialsUpsertBulk) ClearCardWebhookSecret() *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.ClearCardWebhookSecret()
	})
}

// SetBeadMerchantID sets the "bead_merchant_id" field.
func (u *PaymentCredentialsUpsertBulk) SetBeadMerchantID(v string) *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.SetBeadMerchantID(v)
	})
}

// UpdateBeadMerchantID sets the "bead_merchant_id" field to the value that was provided on create.
func (u *PaymentCredentialsUpsertBulk) UpdateBeadMerchantID() *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.UpdateBeadMerchantID()
	})
}

// ClearBeadMerchantID clears the value of the "bead_merchant_id" field.
func (u *PaymentCredentialsUpsertBulk) ClearBeadMerchantID() *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.ClearBeadMerchantID()
	})
}

// SetBeadTerminalID sets the "bead_terminal_id" field.
func (u *PaymentCredentialsUpsertBulk) SetBeadTerminalID(v string) *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.SetBeadTerminalID(v)
	})
}

// UpdateBeadTerminalID sets the "bead_terminal_id" field to the value that was provided on create.
func (u *PaymentCredentialsUpsertBulk) UpdateBeadTerminalID() *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.UpdateBeadTerminalID()
	})
}

// ClearBeadTerminalID clears the value of the "bead_terminal_id" field.
func (u *PaymentCredentialsUpsertBulk) ClearBeadTerminalID() *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.ClearBeadTerminalID()
	})
}

// SetBeadUsername sets the "bead_username" field.
func (u *PaymentCredentialsUpsertBulk) SetBeadUsername(v string) *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.SetBeadUsername(v)
	})
}

// UpdateBeadUsername sets the "bead_username" field to the value that was provided on create.
func (u *PaymentCredentialsUpsertBulk) UpdateBeadUsername() *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.UpdateBeadUsername()
	})
}

// ClearBeadUsername clears the value of the "bead_username" field.
func (u *PaymentCredentialsUpsertBulk) ClearBeadUsername() *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.ClearBeadUsername()
	})
}

// SetBeadPassword sets the "bead_password" field.
func (u *PaymentCredentialsUpsertBulk) SetBeadPassword(v []byte) *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.SetBeadPassword(v)
	})
}

// UpdateBeadPassword sets the "bead_password" field to the value that was provided on create.
func (u *PaymentCredentialsUpsertBulk) UpdateBeadPassword() *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.UpdateBeadPassword()
	})
}

// ClearBeadPassword clears the value of the "bead_password" field.
func (u *PaymentCredentialsUpsertBulk) ClearBeadPassword() *PaymentCredentialsUpsertBulk {
	return u.Update(func(s *PaymentCredentialsUpsert) {
		s.ClearBeadPassword()
	})
}

// Exec executes the query.
func (u *PaymentCredentialsUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PaymentCredentialsCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaymentCredentialsCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentCredentialsUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
