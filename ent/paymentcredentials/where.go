// Code generated by ent, DO NOT EDIT.

package paymentcredentials

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/payloop/billing/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldUpdatedAt, v))
}

// CardPublicKey applies equality check predicate on the "card_public_key" field. It's identical to CardPublicKeyEQ.
func CardPublicKey(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldCardPublicKey, v))
}

// CardPrivateKey applies equality check predicate on the "card_private_key" field. It's identical to CardPrivateKeyEQ.
func CardPrivateKey(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldCardPrivateKey, v))
}

// CardWebhookSecret applies equality check predicate on the "card_webhook_secret" field. It's identical to CardWebhookSecretEQ.
func CardWebhookSecret(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldCardWebhookSecret, v))
}

// BeadMerchantID applies equality check predicate on the "bead_merchant_id" field. It's identical to BeadMerchantIDEQ.
func BeadMerchantID(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldBeadMerchantID, v))
}

// BeadTerminalID applies equality check predicate on the "bead_terminal_id" field. It's identical to BeadTerminalIDEQ.
func BeadTerminalID(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldBeadTerminalID, v))
}

// BeadUsername applies equality check predicate on the "bead_username" field. It's identical to BeadUsernameEQ.
func BeadUsername(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldBeadUsername, v))
}

// BeadPassword applies equality check predicate on the "bead_password" field. It's identical to BeadPasswordEQ.
func BeadPassword(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldBeadPassword, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLTE(FieldUpdatedAt, v))
}

// CardPublicKeyEQ applies the EQ predicate on the "card_public_key" field.
func CardPublicKeyEQ(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldCardPublicKey, v))
}

// CardPublicKeyNEQ applies the NEQ predicate on the "card_public_key" field.
func CardPublicKeyNEQ(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNEQ(FieldCardPublicKey, v))
}

// CardPublicKeyIn applies the In predicate on the "card_public_key" field.
func CardPublicKeyIn(vs ...string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldIn(FieldCardPublicKey, vs...))
}

// CardPublicKeyNotIn applies the NotIn predicate on the "card_public_key" field.
func CardPublicKeyNotIn(vs ...string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNotIn(FieldCardPublicKey, vs...))
}

// CardPublicKeyGT applies the GT predicate on the "card_public_key" field.
func CardPublicKeyGT(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGT(FieldCardPublicKey, v))
}

// CardPublicKeyGTE applies the GTE predicate on the "card_public_key" field.
func CardPublicKeyGTE(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGTE(FieldCardPublicKey, v))
}

// CardPublicKeyLT applies the LT predicate on the "card_public_key" field.
func CardPublicKeyLT(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLT(FieldCardPublicKey, v))
}

// CardPublicKeyLTE applies the LTE predicate on the "card_public_key" field.
func CardPublicKeyLTE(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLTE(FieldCardPublicKey, v))
}

// CardPublicKeyContains applies the Contains predicate on the "card_public_key" field.
func CardPublicKeyContains(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldContains(FieldCardPublicKey, v))
}

// CardPublicKeyHasPrefix applies the HasPrefix predicate on the "card_public_key" field.
func CardPublicKeyHasPrefix(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldHasPrefix(FieldCardPublicKey, v))
}

// CardPublicKeyHasSuffix applies the HasSuffix predicate on the "card_public_key" field.
func CardPublicKeyHasSuffix(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldHasSuffix(FieldCardPublicKey, v))
}

// CardPublicKeyIsNil applies the IsNil predicate on the "card_public_key" field.
func CardPublicKeyIsNil() predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldIsNull(FieldCardPublicKey))
}

// CardPublicKeyNotNil applies the NotNil predicate on the "card_public_key" field.
func CardPublicKeyNotNil() predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNotNull(FieldCardPublicKey))
}

// CardPublicKeyEqualFold applies the EqualFold predicate on the "card_public_key" field.
func CardPublicKeyEqualFold(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEqualFold(FieldCardPublicKey, v))
}

// CardPublicKeyContainsFold applies the ContainsFold predicate on the "card_public_key" field.
func CardPublicKeyContainsFold(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldContainsFold(FieldCardPublicKey, v))
}

// CardPrivateKeyEQ applies the EQ predicate on the "card_private_key" field.
func CardPrivateKeyEQ(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldCardPrivateKey, v))
}

// CardPrivateKeyNEQ applies the NEQ predicate on the "card_private_key" field.
func CardPrivateKeyNEQ(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNEQ(FieldCardPrivateKey, v))
}

// CardPrivateKeyIn applies the In predicate on the "card_private_key" field.
func CardPrivateKeyIn(vs ...[]byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldIn(FieldCardPrivateKey, vs...))
}

// CardPrivateKeyNotIn applies the NotIn predicate on the "card_private_key" field.
func CardPrivateKeyNotIn(vs ...[]byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNotIn(FieldCardPrivateKey, vs...))
}

// CardPrivateKeyGT applies the GT predicate on the "card_private_key" field.
func CardPrivateKeyGT(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGT(FieldCardPrivateKey, v))
}

// CardPrivateKeyGTE applies the GTE predicate on the "card_private_key" field.
func CardPrivateKeyGTE(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGTE(FieldCardPrivateKey, v))
}

// CardPrivateKeyLT applies the LT predicate on the "card_private_key" field.
func CardPrivateKeyLT(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLT(FieldCardPrivateKey, v))
}

// CardPrivateKeyLTE applies the LTE predicate on the "card_private_key" field.
func CardPrivateKeyLTE(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLTE(FieldCardPrivateKey, v))
}

// CardPrivateKeyIsNil applies the IsNil predicate on the "card_private_key" field.
func CardPrivateKeyIsNil() predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldIsNull(FieldCardPrivateKey))
}

// CardPrivateKeyNotNil applies the NotNil predicate on the "card_private_key" field.
func CardPrivateKeyNotNil() predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNotNull(FieldCardPrivateKey))
}

// CardWebhookSecretEQ applies the EQ predicate on the "card_webhook_secret" field.
func CardWebhookSecretEQ(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldCardWebhookSecret, v))
}

// CardWebhookSecretNEQ applies the NEQ predicate on the "card_webhook_secret" field.
func CardWebhookSecretNEQ(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNEQ(FieldCardWebhookSecret, v))
}

// CardWebhookSecretIn applies the In predicate on the "card_webhook_secret" field.
func CardWebhookSecretIn(vs ...[]byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldIn(FieldCardWebhookSecret, vs...))
}

// CardWebhookSecretNotIn applies the NotIn predicate on the "card_webhook_secret" field.
func CardWebhookSecretNotIn(vs ...[]byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNotIn(FieldCardWebhookSecret, vs...))
}

// CardWebhookSecretGT applies the GT predicate on the "card_webhook_secret" field.
func CardWebhookSecretGT(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGT(FieldCardWebhookSecret, v))
}

// CardWebhookSecretGTE applies the GTE predicate on the "card_webhook_secret" field.
func CardWebhookSecretGTE(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGTE(FieldCardWebhookSecret, v))
}

// CardWebhookSecretLT applies the LT predicate on the "card_webhook_secret" field.
func CardWebhookSecretLT(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLT(FieldCardWebhookSecret, v))
}

// CardWebhookSecretLTE applies the LTE predicate on the "card_webhook_secret" field.
func CardWebhookSecretLTE(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLTE(FieldCardWebhookSecret, v))
}

// CardWebhookSecretIsNil applies the IsNil predicate on the "card_webhook_secret" field.
func CardWebhookSecretIsNil() predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldIsNull(FieldCardWebhookSecret))
}

// CardWebhookSecretNotNil applies the NotNil predicate on the "card_webhook_secret" field.
func CardWebhookSecretNotNil() predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNotNull(FieldCardWebhookSecret))
}

// BeadMerchantIDEQ applies the EQ predicate on the "bead_merchant_id" field.
func BeadMerchantIDEQ(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldBeadMerchantID, v))
}

// BeadMerchantIDNEQ applies the NEQ predicate on the "bead_merchant_id" field.
func BeadMerchantIDNEQ(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNEQ(FieldBeadMerchantID, v))
}

// BeadMerchantIDIn applies the In predicate on the "bead_merchant_id" field.
func BeadMerchantIDIn(vs ...string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldIn(FieldBeadMerchantID, vs...))
}

// BeadMerchantIDNotIn applies the NotIn predicate on the "bead_merchant_id" field.
func BeadMerchantIDNotIn(vs ...string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNotIn(FieldBeadMerchantID, vs...))
}

// BeadMerchantIDGT applies the GT predicate on the "bead_merchant_id" field.
func BeadMerchantIDGT(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGT(FieldBeadMerchantID, v))
}

// BeadMerchantIDGTE applies the GTE predicate on the "bead_merchant_id" field.
func BeadMerchantIDGTE(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGTE(FieldBeadMerchantID, v))
}

// BeadMerchantIDLT applies the LT predicate on the "bead_merchant_id" field.
func BeadMerchantIDLT(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLT(FieldBeadMerchantID, v))
}

// BeadMerchantIDLTE applies the LTE predicate on the "bead_merchant_id" field.
func BeadMerchantIDLTE(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLTE(FieldBeadMerchantID, v))
}

// BeadMerchantIDContains applies the Contains predicate on the "bead_merchant_id" field.
func BeadMerchantIDContains(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldContains(FieldBeadMerchantID, v))
}

// BeadMerchantIDHasPrefix applies the HasPrefix predicate on the "bead_merchant_id" field.
func BeadMerchantIDHasPrefix(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldHasPrefix(FieldBeadMerchantID, v))
}

// BeadMerchantIDHasSuffix applies the HasSuffix predicate on the "bead_merchant_id" field.
func BeadMerchantIDHasSuffix(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldHasSuffix(FieldBeadMerchantID, v))
}

// BeadMerchantIDIsNil applies the IsNil predicate on the "bead_merchant_id" field.
func BeadMerchantIDIsNil() predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldIsNull(FieldBeadMerchantID))
}

// BeadMerchantIDNotNil applies the NotNil predicate on the "bead_merchant_id" field.
func BeadMerchantIDNotNil() predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNotNull(FieldBeadMerchantID))
}

// BeadMerchantIDEqualFold applies the EqualFold predicate on the "bead_merchant_id" field.
func BeadMerchantIDEqualFold(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEqualFold(FieldBeadMerchantID, v))
}

// BeadMerchantIDContainsFold applies the ContainsFold predicate on the "bead_merchant_id" field.
func BeadMerchantIDContainsFold(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldContainsFold(FieldBeadMerchantID, v))
}

// BeadTerminalIDEQ applies the EQ predicate on the "bead_terminal_id" field.
func BeadTerminalIDEQ(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldBeadTerminalID, v))
}

// BeadTerminalIDNEQ applies the NEQ predicate on the "bead_terminal_id" field.
func BeadTerminalIDNEQ(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNEQ(FieldBeadTerminalID, v))
}

// BeadTerminalIDIn applies the In predicate on the "bead_terminal_id" field.
func BeadTerminalIDIn(vs ...string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldIn(FieldBeadTerminalID, vs...))
}

// BeadTerminalIDNotIn applies the NotIn predicate on the "bead_terminal_id" field.
func BeadTerminalIDNotIn(vs ...string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNotIn(FieldBeadTerminalID, vs...))
}

// BeadTerminalIDGT applies the GT predicate on the "bead_terminal_id" field.
func BeadTerminalIDGT(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGT(FieldBeadTerminalID, v))
}

// BeadTerminalIDGTE applies the GTE predicate on the "bead_terminal_id" field.
func BeadTerminalIDGTE(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGTE(FieldBeadTerminalID, v))
}

// BeadTerminalIDLT applies the LT predicate on the "bead_terminal_id" field.
func BeadTerminalIDLT(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLT(FieldBeadTerminalID, v))
}

// BeadTerminalIDLTE applies the LTE predicate on the "bead_terminal_id" field.
func BeadTerminalIDLTE(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLTE(FieldBeadTerminalID, v))
}

// BeadTerminalIDContains applies the Contains predicate on the "bead_terminal_id" field.
func BeadTerminalIDContains(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldContains(FieldBeadTerminalID, v))
}

// BeadTerminalIDHasPrefix applies the HasPrefix predicate on the "bead_terminal_id" field.
func BeadTerminalIDHasPrefix(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldHasPrefix(FieldBeadTerminalID, v))
}

// BeadTerminalIDHasSuffix applies the HasSuffix predicate on the "bead_terminal_id" field.
func BeadTerminalIDHasSuffix(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldHasSuffix(FieldBeadTerminalID, v))
}

// BeadTerminalIDIsNil applies the IsNil predicate on the "bead_terminal_id" field.
func BeadTerminalIDIsNil() predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldIsNull(FieldBeadTerminalID))
}

// BeadTerminalIDNotNil applies the NotNil predicate on the "bead_terminal_id" field.
func BeadTerminalIDNotNil() predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNotNull(FieldBeadTerminalID))
}

// BeadTerminalIDEqualFold applies the EqualFold predicate on the "bead_terminal_id" field.
func BeadTerminalIDEqualFold(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEqualFold(FieldBeadTerminalID, v))
}

// BeadTerminalIDContainsFold applies the ContainsFold predicate on the "bead_terminal_id" field.
func BeadTerminalIDContainsFold(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldContainsFold(FieldBeadTerminalID, v))
}

// BeadUsernameEQ applies the EQ predicate on the "bead_username" field.
func BeadUsernameEQ(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldBeadUsername, v))
}

// BeadUsernameNEQ applies the NEQ predicate on the "bead_username" field.
func BeadUsernameNEQ(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNEQ(FieldBeadUsername, v))
}

// BeadUsernameIn applies the In predicate on the "bead_username" field.
func BeadUsernameIn(vs ...string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldIn(FieldBeadUsername, vs...))
}

// BeadUsernameNotIn applies the NotIn predicate on the "bead_username" field.
func BeadUsernameNotIn(vs ...string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNotIn(FieldBeadUsername, vs...))
}

// BeadUsernameGT applies the GT predicate on the "bead_username" field.
func BeadUsernameGT(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGT(FieldBeadUsername, v))
}

// BeadUsernameGTE applies the GTE predicate on the "bead_username" field.
func BeadUsernameGTE(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGTE(FieldBeadUsername, v))
}

// BeadUsernameLT applies the LT predicate on the "bead_username" field.
func BeadUsernameLT(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLT(FieldBeadUsername, v))
}

// BeadUsernameLTE applies the LTE predicate on the "bead_username" field.
func BeadUsernameLTE(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLTE(FieldBeadUsername, v))
}

// BeadUsernameContains applies the Contains predicate on the "bead_username" field.
func BeadUsernameContains(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldContains(FieldBeadUsername, v))
}

// BeadUsernameHasPrefix applies the HasPrefix predicate on the "bead_username" field.
func BeadUsernameHasPrefix(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldHasPrefix(FieldBeadUsername, v))
}

// BeadUsernameHasSuffix applies the HasSuffix predicate on the "bead_username" field.
func BeadUsernameHasSuffix(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldHasSuffix(FieldBeadUsername, v))
}

// BeadUsernameIsNil applies the IsNil predicate on the "bead_username" field.
func BeadUsernameIsNil() predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldIsNull(FieldBeadUsername))
}

// BeadUsernameNotNil applies the NotNil predicate on the "bead_username" field.
func BeadUsernameNotNil() predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNotNull(FieldBeadUsername))
}

// BeadUsernameEqualFold applies the EqualFold predicate on the "bead_username" field.
func BeadUsernameEqualFold(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEqualFold(FieldBeadUsername, v))
}

// BeadUsernameContainsFold applies the ContainsFold predicate on the "bead_username" field.
func BeadUsernameContainsFold(v string) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldContainsFold(FieldBeadUsername, v))
}

// BeadPasswordEQ applies the EQ predicate on the "bead_password" field.
func BeadPasswordEQ(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldEQ(FieldBeadPassword, v))
}

// BeadPasswordNEQ applies the NEQ predicate on the "bead_password" field.
func BeadPasswordNEQ(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNEQ(FieldBeadPassword, v))
}

// BeadPasswordIn applies the In predicate on the "bead_password" field.
func BeadPasswordIn(vs ...[]byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldIn(FieldBeadPassword, vs...))
}

// BeadPasswordNotIn applies the NotIn predicate on the "bead_password" field.
func BeadPasswordNotIn(vs ...[]byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNotIn(FieldBeadPassword, vs...))
}

// BeadPasswordGT applies the GT predicate on the "bead_password" field.
func BeadPasswordGT(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGT(FieldBeadPassword, v))
}

// BeadPasswordGTE applies the GTE predicate on the "bead_password" field.
func BeadPasswordGTE(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldGTE(FieldBeadPassword, v))
}

// BeadPasswordLT applies the LT predicate on the "bead_password" field.
func BeadPasswordLT(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLT(FieldBeadPassword, v))
}

// BeadPasswordLTE applies the LTE predicate on the "bead_password" field.
func BeadPasswordLTE(v []byte) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldLTE(FieldBeadPassword, v))
}

// BeadPasswordIsNil applies the IsNil predicate on the "bead_password" field.
func BeadPasswordIsNil() predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldIsNull(FieldBeadPassword))
}

// BeadPasswordNotNil applies the NotNil predicate on the "bead_password" field.
func BeadPasswordNotNil() predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.FieldNotNull(FieldBeadPassword))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.PaymentCredentials {
	return predicate.PaymentCredentials(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PaymentCredentials) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PaymentCredentials) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PaymentCredentials) predicate.PaymentCredentials {
	return predicate.PaymentCredentials(sql.NotPredicates(p))
}
