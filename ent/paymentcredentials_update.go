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
	"github.com/payloop/billing/ent/paymentcredentials"
	"github.com/payloop/billing/ent/predicate"
	"github.com/payloop/billing/ent/user"
)

// PaymentCredentialsUpdate is the builder for updating PaymentCredentials entities.
type PaymentCredentialsUpdate struct {
	config
	hooks    []Hook
	mutation *PaymentCredentialsMutation
}

// Where appends a list predicates to the PaymentCredentialsUpdate builder.
func (pcu *PaymentCredentialsUpdate) Where(ps ...predicate.PaymentCredentials) *PaymentCredentialsUpdate {
	pcu.mutation.Where(ps...)
	return pcu
}

// SetUpdatedAt sets the "updated_at" field.
func (pcu *PaymentCredentialsUpdate) SetUpdatedAt(t time.Time) *PaymentCredentialsUpdate {
	pcu.mutation.SetUpdatedAt(t)
	return pcu
}

// SetCardPublicKey sets the "card_public_key" field.
func (pcu *PaymentCredentialsUpdate) SetCardPublicKey(s string) *PaymentCredentialsUpdate {
	pcu.mutation.SetCardPublicKey(s)
	return pcu
}

// SetNillableCardPublicKey sets the "card_public_key" field if the given value is not nil.
func (pcu *PaymentCredentialsUpdate) SetNillableCardPublicKey(s *string) *PaymentCredentialsUpdate {
	if s != nil {
		pcu.SetCardPublicKey(*s)
	}
	return pcu
}

// ClearCardPublicKey clears the value of the "card_public_key" field.
func (pcu *PaymentCredentialsUpdate) ClearCardPublicKey() *PaymentCredentialsUpdate {
	pcu.mutation.ClearCardPublicKey()
	return pcu
}

// SetCardPrivateKey sets the "card_private_key" field.
func (pcu *PaymentCredentialsUpdate) SetCardPrivateKey(b []byte) *PaymentCredentialsUpdate {
	pcu.mutation.SetCardPrivateKey(b)
	return pcu
}

// ClearCardPrivateKey clears the value of the "card_private_key" field.
func (pcu *PaymentCredentialsUpdate) ClearCardPrivateKey() *PaymentCredentialsUpdate {
	pcu.mutation.ClearCardPrivateKey()
	return pcu
}

// SetCardWebhookSecret sets the "card_webhook_secret" field.
func (pcu *PaymentCredentialsUpdate) SetCardWebhookSecret(b []byte) *PaymentCredentialsUpdate {
	pcu.mutation.SetCardWebhookSecret(b)
	return pcu
}

// ClearCardWebhookSecret clears the value of the "card_webhook_secret" field.
func (pcu *PaymentCredentialsUpdate) ClearCardWebhookSecret() *PaymentCredentialsUpdate {
	pcu.mutation.ClearCardWebhookSecret()
	return pcu
}

// SetBeadMerchantID sets the "bead_merchant_id" field.
func (pcu *PaymentCredentialsUpdate) SetBeadMerchantID(s string) *PaymentCredentialsUpdate {
	pcu.mutation.SetBeadMerchantID(s)
	return pcu
}

// SetNillableBeadMerchantID sets the "bead_merchant_id" field if the given value is not nil.
func (pcu *PaymentCredentialsUpdate) SetNillableBeadMerchantID(s *string) *PaymentCredentialsUpdate {
	if s != nil {
		pcu.SetBeadMerchantID(*s)
	}
	return pcu
}

// ClearBeadMerchantID clears the value of the "bead_merchant_id" field.
func (pcu *PaymentCredentialsUpdate) ClearBeadMerchantID() *PaymentCredentialsUpdate {
	pcu.mutation.ClearBeadMerchantID()
	return pcu
}

// SetBeadTerminalID sets the "bead_terminal_id" field.
func (pcu *PaymentCredentialsUpdate) SetBeadTerminalID(s string) *PaymentCredentialsUpdate {
	pcu.mutation.SetBeadTerminalID(s)
	return pcu
}

// SetNillableBeadTerminalID sets the "bead_terminal_id" field if the given value is not nil.
func (pcu *PaymentCredentialsUpdate) SetNillableBeadTerminalID(s *string) *PaymentCredentialsUpdate {
	if s != nil {
		pcu.SetBeadTerminalID(*s)
	}
	return pcu
}

// ClearBeadTerminalID clears the value of the "bead_terminal_id" field.
func (pcu *PaymentCredentialsUpdate) ClearBeadTerminalID() *PaymentCredentialsUpdate {
	pcu.mutation.ClearBeadTerminalID()
	return pcu
}

// SetBeadUsername sets the "bead_username" field.
func (pcu *PaymentCredentialsUpdate) SetBeadUsername(s string) *PaymentCredentialsUpdate {
	pcu.mutation.SetBeadUsername(s)
	return pcu
}

// SetNillableBeadUsername sets the "bead_username" field if the given value is not nil.
func (pcu *PaymentCredentialsUpdate) SetNillableBeadUsername(s *string) *PaymentCredentialsUpdate {
	if s != nil {
		pcu.SetBeadUsername(*s)
	}
	return pcu
}

// ClearBeadUsername clears the value of the "bead_username" field.
func (pcu *PaymentCredentialsUpdate) ClearBeadUsername() *PaymentCredentialsUpdate {
	pcu.mutation.ClearBeadUsername()
	return pcu
}

// SetBeadPassword sets the "bead_password" field.
func (pcu *PaymentCredentialsUpdate) SetBeadPassword(b []byte) *PaymentCredentialsUpdate {
	pcu.mutation.SetBeadPassword(b)
	return pcu
}

// ClearBeadPassword clears the value of the "bead_password" field.
func (pcu *PaymentCredentialsUpdate) ClearBeadPassword() *PaymentCredentialsUpdate {
	pcu.mutation.ClearBeadPassword()
	return pcu
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (pcu *PaymentCredentialsUpdate) SetOwnerID(id uuid.UUID) *PaymentCredentialsUpdate {
	pcu.mutation.SetOwnerID(id)
	return pcu
}

// SetOwner sets the "owner" edge to the User entity.
func (pcu *PaymentCredentialsUpdate) SetOwner(u *User) *PaymentCredentialsUpdate {
	return pcu.SetOwnerID(u.ID)
}

// Mutation returns the PaymentCredentialsMutation object of the builder.
func (pcu *PaymentCredentialsUpdate) Mutation() *PaymentCredentialsMutation {
	return pcu.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (pcu *PaymentCredentialsUpdate) ClearOwner() *PaymentCredentialsUpdate {
	pcu.mutation.ClearOwner()
	return pcu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pcu *PaymentCredentialsUpdate) Save(ctx context.Context) (int, error) {
	pcu.defaults()
	return withHooks(ctx, pcu.sqlSave, pcu.mutation, pcu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pcu *PaymentCredentialsUpdate) SaveX(ctx context.Context) int {
	affected, err := pcu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pcu *PaymentCredentialsUpdate) Exec(ctx context.Context) error {
	_, err := pcu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcu *PaymentCredentialsUpdate) ExecX(ctx context.Context) {
	if err := pcu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pcu *PaymentCredentialsUpdate) defaults() {
	if _, ok := pcu.mutation.UpdatedAt(); !ok {
		v := paymentcredentials.UpdateDefaultUpdatedAt()
		pcu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pcu *PaymentCredentialsUpdate) check() error {
	if v, ok := pcu.mutation.CardPublicKey(); ok {
		if err := paymentcredentials.CardPublicKeyValidator(v); err != nil {
			return &ValidationError{Name: "card_public_key", err: fmt.Errorf(`ent: validator failed for field "PaymentCredentials.card_public_key": %w`, err)}
		}
	}
	if v, ok := pcu.mutation.BeadMerchantID(); ok {
		if err := paymentcredentials.BeadMerchantIDValidator(v); err != nil {
			return &ValidationError{Name: "bead_merchant_id", err: fmt.Errorf(`ent: validator failed for field "PaymentCredentials.bead_merchant_id": %w`, err)}
		}
	}
	if v, ok := pcu.mutation.BeadTerminalID(); ok {
		if err := paymentcredentials.BeadTerminalIDValidator(v); err != nil {
			return &ValidationError{Name: "bead_terminal_id", err: fmt.Errorf(`ent: validator failed for field "PaymentCredentials.bead_terminal_id": %w`, err)}
		}
	}
	if v, ok := pcu.mutation.BeadUsername(); ok {
		if err := paymentcredentials.BeadUsernameValidator(v); err != nil {
			return &ValidationError{Name: "bead_username", err: fmt.Errorf(`ent: validator failed for field "PaymentCredentials.bead_username": %w`, err)}
		}
	}
	if pcu.mutation.OwnerCleared() && len(pcu.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PaymentCredentials.owner"`)
	}
	return nil
}

func (pcu *PaymentCredentialsUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pcu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentcredentials.Table, paymentcredentials.Columns, sqlgraph.NewFieldSpec(paymentcredentials.FieldID, field.TypeUUID))
	if ps := pcu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pcu.mutation.UpdatedAt(); ok {
		_spec.SetField(paymentcredentials.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := pcu.mutation.CardPublicKey(); ok {
		_spec.SetField(paymentcredentials.FieldCardPublicKey, field.TypeString, value)
	}
	if pcu.mutation.CardPublicKeyCleared() {
		_spec.ClearField(paymentcredentials.FieldCardPublicKey, field.TypeString)
	}
	if value, ok := pcu.mutation.CardPrivateKey(); ok {
		_spec.SetField(paymentcredentials.FieldCardPrivateKey, field.TypeBytes, value)
	}
	if pcu.mutation.CardPrivateKeyCleared() {
		_spec.ClearField(paymentcredentials.FieldCardPrivateKey, field.TypeBytes)
	}
	if value, ok := pcu.mutation.CardWebhookSecret(); ok {
		_spec.SetField(paymentcredentials.FieldCardWebhookSecret, field.TypeBytes, value)
	}
	if pcu.mutation.CardWebhookSecretCleared() {
		_spec.ClearField(paymentcredentials.FieldCardWebhookSecret, field.TypeBytes)
	}
	if value, ok := pcu.mutation.BeadMerchantID(); ok {
		_spec.SetField(paymentcredentials.FieldBeadMerchantID, field.TypeString, value)
	}
	if pcu.mutation.BeadMerchantIDCleared() {
		_spec.ClearField(paymentcredentials.FieldBeadMerchantID, field.TypeString)
	}
	if value, ok := pcu.mutation.BeadTerminalID(); ok {
		_spec.SetField(paymentcredentials.FieldBeadTerminalID, field.TypeString, value)
	}
	if pcu.mutation.BeadTerminalIDCleared() {
		_spec.ClearField(paymentcredentials.FieldBeadTerminalID, field.TypeString)
	}
	if value, ok := pcu.mutation.BeadUsername(); ok {
		_spec.SetField(paymentcredentials.FieldBeadUsername, field.TypeString, value)
	}
	if pcu.mutation.BeadUsernameCleared() {
		_spec.ClearField(paymentcredentials.FieldBeadUsername, field.TypeString)
	}
	if value, ok := pcu.mutation.BeadPassword(); ok {
		_spec.SetField(paymentcredentials.FieldBeadPassword, field.TypeBytes, value)
	}
	if pcu.mutation.BeadPasswordCleared() {
		_spec.ClearField(paymentcredentials.FieldBeadPassword, field.TypeBytes)
	}
	if pcu.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pcu.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pcu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentcredentials.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pcu.mutation.done = true
	return n, nil
}

// PaymentCredentialsUpdateOne is the builder for updating a single PaymentCredentials entity.
type PaymentCredentialsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaymentCredentialsMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (pcuo *PaymentCredentialsUpdateOne) SetUpdatedAt(t time.Time) *PaymentCredentialsUpdateOne {
	pcuo.mutation.SetUpdatedAt(t)
	return pcuo
}

// SetCardPublicKey sets the "card_public_key" field.
func (pcuo *PaymentCredentialsUpdateOne) SetCardPublicKey(s string) *PaymentCredentialsUpdateOne {
	pcuo.mutation.SetCardPublicKey(s)
	return pcuo
}

// SetNillableCardPublicKey sets the "card_public_key" field if the given value is not nil.
func (pcuo *PaymentCredentialsUpdateOne) SetNillableCardPublicKey(s *string) *PaymentCredentialsUpdateOne {
	if s != nil {
		pcuo.SetCardPublicKey(*s)
	}
	return pcuo
}

// ClearCardPublicKey clears the value of the "card_public_key" field.
func (pcuo *PaymentCredentialsUpdateOne) ClearCardPublicKey() *PaymentCredentialsUpdateOne {
	pcuo.mutation.ClearCardPublicKey()
	return pcuo
}

// SetCardPrivateKey sets the "card_private_key" field.
func (pcuo *PaymentCredentialsUpdateOne) SetCardPrivateKey(b []byte) *PaymentCredentialsUpdateOne {
	pcuo.mutation.SetCardPrivateKey(b)
	return pcuo
}

// ClearCardPrivateKey clears the value of the "card_private_key" field.
func (pcuo *PaymentCredentialsUpdateOne) ClearCardPrivateKey() *PaymentCredentialsUpdateOne {
	pcuo.mutation.ClearCardPrivateKey()
	return pcuo
}

// SetCardWebhookSecret sets the "card_webhook_secret" field.
func (pcuo *PaymentCredentialsUpdateOne) SetCardWebhookSecret(b []byte) *PaymentCredentialsUpdateOne {
	pcuo.mutation.SetCardWebhookSecret(b)
	return pcuo
}

// ClearCardWebhookSecret clears the value of the "card_webhook_secret" field.
func (pcuo *PaymentCredentialsUpdateOne) ClearCardWebhookSecret() *PaymentCredentialsUpdateOne {
	pcuo.mutation.ClearCardWebhookSecret()
	return pcuo
}

// SetBeadMerchantID sets the "bead_merchant_id" field.
func (pcuo *PaymentCredentialsUpdateOne) SetBeadMerchantID(s string) *PaymentCredentialsUpdateOne {
	pcuo.mutation.SetBeadMerchantID(s)
	return pcuo
}

// SetNillableBeadMerchantID sets the "bead_merchant_id" field if the given value is not nil.
func (pcuo *PaymentCredentialsUpdateOne) SetNillableBeadMerchantID(s *string) *PaymentCredentialsUpdateOne {
	if s != nil {
		pcuo.SetBeadMerchantID(*s)
	}
	return pcuo
}

// ClearBeadMerchantID clears the value of the "bead_merchant_id" field.
func (pcuo *PaymentCredentialsUpdateOne) ClearBeadMerchantID() *PaymentCredentialsUpdateOne {
	pcuo.mutation.ClearBeadMerchantID()
	return pcuo
}

// SetBeadTerminalID sets the "bead_terminal_id" field.
func (pcuo *PaymentCredentialsUpdateOne) SetBeadTerminalID(s string) *PaymentCredentialsUpdateOne {
	pcuo.mutation.SetBeadTerminalID(s)
	return pcuo
}

// SetNillableBeadTerminalID sets the "bead_terminal_id" field if the given value is not nil.
func (pcuo *PaymentCredentialsUpdateOne) SetNillableBeadTerminalID(s *string) *PaymentCredentialsUpdateOne {
	if s != nil {
		pcuo.SetBeadTerminalID(*s)
	}
	return pcuo
}

// ClearBeadTerminalID clears the value of the "bead_terminal_id" field.
func (pcuo *PaymentCredentialsUpdateOne) ClearBeadTerminalID() *PaymentCredentialsUpdateOne {
	pcuo.mutation.ClearBeadTerminalID()
	return pcuo
}

// SetBeadUsername sets the "bead_username" field.
func (pcuo *PaymentCredentialsUpdateOne) SetBeadUsername(s string) *PaymentCredentialsUpdateOne {
	pcuo.mutation.SetBeadUsername(s)
	return pcuo
}

// SetNillableBeadUsername sets the "bead_username" field if the given value is not nil.
func (pcuo *PaymentCredentialsUpdateOne) SetNillableBeadUsername(s *string) *PaymentCredentialsUpdateOne {
	if s != nil {
		pcuo.SetBeadUsername(*s)
	}
	return pcuo
}

// ClearBeadUsername clears the value of the "bead_username" field.
func (pcuo *PaymentCredentialsUpdateOne) ClearBeadUsername() *PaymentCredentialsUpdateOne {
	pcuo.mutation.ClearBeadUsername()
	return pcuo
}

// SetBeadPassword sets the "bead_password" field.
func (pcuo *PaymentCredentialsUpdateOne) SetBeadPassword(b []byte) *PaymentCredentialsUpdateOne {
	pcuo.mutation.SetBeadPassword(b)
	return pcuo
}

// ClearBeadPassword clears the value of the "bead_password" field.
func (pcuo *PaymentCredentialsUpdateOne) ClearBeadPassword() *PaymentCredentialsUpdateOne {
	pcuo.mutation.ClearBeadPassword()
	return pcuo
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (pcuo *PaymentCredentialsUpdateOne) SetOwnerID(id uuid.UUID) *PaymentCredentialsUpdateOne {
	pcuo.mutation.SetOwnerID(id)
	return pcuo
}

// SetOwner sets the "owner" edge to the User entity.
func (pcuo *PaymentCredentialsUpdateOne) SetOwner(u *User) *PaymentCredentialsUpdateOne {
	return pcuo.SetOwnerID(u.ID)
}

// Mutation returns the PaymentCredentialsMutation object of the builder.
func (pcuo *PaymentCredentialsUpdateOne) Mutation() *PaymentCredentialsMutation {
	return pcuo.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (pcuo *PaymentCredentialsUpdateOne) ClearOwner() *PaymentCredentialsUpdateOne {
	pcuo.mutation.ClearOwner()
	return pcuo
}

// Where appends a list predicates to the PaymentCredentialsUpdate builder.
func (pcuo *PaymentCredentialsUpdateOne) Where(ps ...predicate.PaymentCredentials) *PaymentCredentialsUpdateOne {
	pcuo.mutation.Where(ps...)
	return pcuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (pcuo *PaymentCredentialsUpdateOne) Select(field string, fields ...string) *PaymentCredentialsUpdateOne {
	pcuo.fields = append([]string{field}, fields...)
	return pcuo
}

// Save executes the query and returns the updated PaymentCredentials entity.
func (pcuo *PaymentCredentialsUpdateOne) Save(ctx context.Context) (*PaymentCredentials, error) {
	pcuo.defaults()
	return withHooks(ctx, pcuo.sqlSave, pcuo.mutation, pcuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pcuo *PaymentCredentialsUpdateOne) SaveX(ctx context.Context) *PaymentCredentials {
	node, err := pcuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (pcuo *PaymentCredentialsUpdateOne) Exec(ctx context.Context) error {
	_, err := pcuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcuo *PaymentCredentialsUpdateOne) ExecX(ctx context.Context) {
	if err := pcuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pcuo *PaymentCredentialsUpdateOne) defaults() {
	if _, ok := pcuo.mutation.UpdatedAt(); !ok {
		v := paymentcredentials.UpdateDefaultUpdatedAt()
		pcuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pcuo *PaymentCredentialsUpdateOne) check() error {
	if v, ok := pcuo.mutation.CardPublicKey(); ok {
		if err := paymentcredentials.CardPublicKeyValidator(v); err != nil {
			return &ValidationError{Name: "card_public_key", err: fmt.Errorf(`ent: validator failed for field "PaymentCredentials.card_public_key": %w`, err)}
		}
	}
	if v, ok := pcuo.mutation.BeadMerchantID(); ok {
		if err := paymentcredentials.BeadMerchantIDValidator(v); err != nil {
			return &ValidationError{Name: "bead_merchant_id", err: fmt.Errorf(`ent: validator failed for field "PaymentCredentials.bead_merchant_id": %w`, err)}
		}
	}
	if v, ok := pcuo.mutation.BeadTerminalID(); ok {
		if err := paymentcredentials.BeadTerminalIDValidator(v); err != nil {
			return &ValidationError{Name: "bead_terminal_id", err: fmt.Errorf(`ent: validator failed for field "PaymentCredentials.bead_terminal_id": %w`, err)}
		}
	}
	if v, ok := pcuo.mutation.BeadUsername(); ok {
		if err := paymentcredentials.BeadUsernameValidator(v); err != nil {
			return &ValidationError{Name: "bead_username", err: fmt.Errorf(`ent: validator failed for field "PaymentCredentials.bead_username": %w`, err)}
		}
	}
	if pcuo.mutation.OwnerCleared() && len(pcuo.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PaymentCredentials.owner"`)
	}
	return nil
}

func (pcuo *PaymentCredentialsUpdateOne) sqlSave(ctx context.Context) (_node *PaymentCredentials, err error) {
	if err := pcuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentcredentials.Table, paymentcredentials.Columns, sqlgraph.NewFieldSpec(paymentcredentials.FieldID, field.TypeUUID))
	id, ok := pcuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PaymentCredentials.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := pcuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paymentcredentials.FieldID)
		for _, f := range fields {
			if !paymentcredentials.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paymentcredentials.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := pcuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pcuo.mutation.UpdatedAt(); ok {
		_spec.SetField(paymentcredentials.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := pcuo.mutation.CardPublicKey(); ok {
		_spec.SetField(paymentcredentials.FieldCardPublicKey, field.TypeString, value)
	}
	if pcuo.mutation.CardPublicKeyCleared() {
		_spec.ClearField(paymentcredentials.FieldCardPublicKey, field.TypeString)
	}
	if value, ok := pcuo.mutation.CardPrivateKey(); ok {
		_spec.SetField(paymentcredentials.FieldCardPrivateKey, field.TypeBytes, value)
	}
	if pcuo.mutation.CardPrivateKeyCleared() {
		_spec.ClearField(paymentcredentials.FieldCardPrivateKey, field.TypeBytes)
	}
	if value, ok := pcuo.mutation.CardWebhookSecret(); ok {
		_spec.SetField(paymentcredentials.FieldCardWebhookSecret, field.TypeBytes, value)
	}
	if pcuo.mutation.CardWebhookSecretCleared() {
		_spec.ClearField(paymentcredentials.FieldCardWebhookSecret, field.TypeBytes)
	}
	if value, ok := pcuo.mutation.BeadMerchantID(); ok {
		_spec.SetField(paymentcredentials.FieldBeadMerchantID, field.TypeString, value)
	}
	if pcuo.mutation.BeadMerchantIDCleared() {
		_spec.ClearField(paymentcredentials.FieldBeadMerchantID, field.TypeString)
	}
	if value, ok := pcuo.mutation.BeadTerminalID(); ok {
		_spec.SetField(paymentcredentials.FieldBeadTerminalID, field.TypeString, value)
	}
	if pcuo.mutation.BeadTerminalIDCleared() {
		_spec.ClearField(paymentcredentials.FieldBeadTerminalID, field.TypeString)
	}
	if value, ok := pcuo.mutation.BeadUsername(); ok {
		_spec.SetField(paymentcredentials.FieldBeadUsername, field.TypeString, value)
	}
	if pcuo.mutation.BeadUsernameCleared() {
		_spec.ClearField(paymentcredentials.FieldBeadUsername, field.TypeString)
	}
	if value, ok := pcuo.mutation.BeadPassword(); ok {
		_spec.SetField(paymentcredentials.FieldBeadPassword, field.TypeBytes, value)
	}
	if pcuo.mutation.BeadPasswordCleared() {
		_spec.ClearField(paymentcredentials.FieldBeadPassword, field.TypeBytes)
	}
	if pcuo.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pcuo.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PaymentCredentials{config: pcuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, pcuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentcredentials.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	pcuo.mutation.done = true
	return _node, nil
}
