// Code generated by ent, DO NOT EDIT.

package paymentcredentials

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the paymentcredentials type in the database.
	Label = "payment_credentials"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCardPublicKey holds the string denoting the card_public_key field in the database.
	FieldCardPublicKey = "card_public_key"
	// FieldCardPrivateKey holds the string denoting the card_private_key field in the database.
	FieldCardPrivateKey = "card_private_key"
	// FieldCardWebhookSecret holds the string denoting the card_webhook_secret field in the database.
	FieldCardWebhookSecret = "card_webhook_secret"
	// FieldBeadMerchantID holds the string denoting the bead_merchant_id field in the database.
	FieldBeadMerchantID = "bead_merchant_id"
	// FieldBeadTerminalID holds the string denoting the bead_terminal_id field in the database.
	FieldBeadTerminalID = "bead_terminal_id"
	// FieldBeadUsername holds the string denoting the bead_username field in the database.
	FieldBeadUsername = "bead_username"
	// FieldBeadPassword holds the string denoting the bead_password field in the database.
	FieldBeadPassword = "bead_password"
	// EdgeOwner holds the string denoting the owner edge name in mutations.
	EdgeOwner = "owner"
	// Table holds the table name of the paymentcredentials in the database.
	Table = "payment_credentials"
	// OwnerTable is the table that holds the owner relation/edge.
	OwnerTable = "payment_credentials"
	// OwnerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	OwnerInverseTable = "users"
	// OwnerColumn is the table column denoting the owner relation/edge.
	OwnerColumn = "user_payment_credentials"
)

// Columns holds all SQL columns for paymentcredentials fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCardPublicKey,
	FieldCardPrivateKey,
	FieldCardWebhookSecret,
	FieldBeadMerchantID,
	FieldBeadTerminalID,
	FieldBeadUsername,
	FieldBeadPassword,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "payment_credentials"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"user_payment_credentials",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// CardPublicKeyValidator is a validator for the "card_public_key" field. It is called by the builders before save.
	CardPublicKeyValidator func(string) error
	// BeadMerchantIDValidator is a validator for the "bead_merchant_id" field. It is called by the builders before save.
	BeadMerchantIDValidator func(string) error
	// BeadTerminalIDValidator is a validator for the "bead_terminal_id" field. It is called by the builders before save.
	BeadTerminalIDValidator func(string) error
	// BeadUsernameValidator is a validator for the "bead_username" field. It is called by the builders before save.
	BeadUsernameValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PaymentCredentials queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCardPublicKey orders the results by the card_public_key field.
func ByCardPublicKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardPublicKey, opts...).ToFunc()
}

// ByBeadMerchantID orders the results by the bead_merchant_id field.
func ByBeadMerchantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBeadMerchantID, opts...).ToFunc()
}

// ByBeadTerminalID orders the results by the bead_terminal_id field.
func ByBeadTerminalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBeadTerminalID, opts...).ToFunc()
}

// ByBeadUsername orders the results by the bead_username field.
func ByBeadUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBeadUsername, opts...).ToFunc()
}

// ByOwnerField orders the results by owner field.
func ByOwnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnerStep(), sql.OrderByField(field, opts...))
	}
}
func newOwnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, OwnerTable, OwnerColumn),
	)
}
