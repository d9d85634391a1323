// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/payloop/billing/ent/paymentcredentials"
	"github.com/payloop/billing/ent/user"
)

// PaymentCredentials is the model entity for the PaymentCredentials schema.
type PaymentCredentials struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CardPublicKey holds the value of the "card_public_key" field.
	CardPublicKey string `json:"card_public_key,omitempty"`
	// CardPrivateKey holds the value of the "card_private_key" field.
	CardPrivateKey []byte `json:"-"`
	// CardWebhookSecret holds the value of the "card_webhook_secret" field.
	CardWebhookSecret []byte `json:"-"`
	// BeadMerchantID holds the value of the "bead_merchant_id" field.
	BeadMerchantID string `json:"bead_merchant_id,omitempty"`
	// BeadTerminalID holds the value of the "bead_terminal_id" field.
	BeadTerminalID string `json:"bead_terminal_id,omitempty"`
	// BeadUsername holds the value of the "bead_username" field.
	BeadUsername string `json:"bead_username,omitempty"`
	// BeadPassword holds the value of the "bead_password" field.
	BeadPassword []byte `json:"-"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PaymentCredentialsQuery when eager-loading is set.
	Edges                    PaymentCredentialsEdges `json:"edges"`
	user_payment_credentials *uuid.UUID
	selectValues             sql.SelectValues
}

// PaymentCredentialsEdges holds the relations/edges for other nodes in the graph.
type PaymentCredentialsEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PaymentCredentialsEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PaymentCredentials) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paymentcredentials.FieldCardPrivateKey, paymentcredentials.FieldCardWebhookSecret, paymentcredentials.FieldBeadPassword:
			values[i] = new([]byte)
		case paymentcredentials.FieldCardPublicKey, paymentcredentials.FieldBeadMerchantID, paymentcredentials.FieldBeadTerminalID, paymentcredentials.FieldBeadUsername:
			values[i] = new(sql.NullString)
		case paymentcredentials.FieldCreatedAt, paymentcredentials.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case paymentcredentials.FieldID:
			values[i] = new(uuid.UUID)
		case paymentcredentials.ForeignKeys[0]: // user_payment_credentials
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PaymentCredentials fields.
func (pc *PaymentCredentials) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paymentcredentials.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				pc.ID = *value
			}
		case paymentcredentials.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				pc.CreatedAt = value.Time
			}
		case paymentcredentials.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				pc.UpdatedAt = value.Time
			}
		case paymentcredentials.FieldCardPublicKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_public_key", values[i])
			} else if value.Valid {
				pc.CardPublicKey = value.String
			}
		case paymentcredentials.FieldCardPrivateKey:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field card_private_key", values[i])
			} else if value != nil {
				pc.CardPrivateKey = *value
			}
		case paymentcredentials.FieldCardWebhookSecret:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field card_webhook_secret", values[i])
			} else if value != nil {
				pc.CardWebhookSecret = *value
			}
		case paymentcredentials.FieldBeadMerchantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bead_merchant_id", values[i])
			} else if value.Valid {
				pc.BeadMerchantID = value.String
			}
		case paymentcredentials.FieldBeadTerminalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bead_terminal_id", values[i])
			} else if value.Valid {
				pc.BeadTerminalID = value.String
			}
		case paymentcredentials.FieldBeadUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bead_username", values[i])
			} else if value.Valid {
				pc.BeadUsername = value.String
			}
		case paymentcredentials.FieldBeadPassword:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field bead_password", values[i])
			} else if value != nil {
				pc.BeadPassword = *value
			}
		case paymentcredentials.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field user_payment_credentials", values[i])
			} else if value.Valid {
				pc.user_payment_credentials = new(uuid.UUID)
				*pc.user_payment_credentials = *value.S.(*uuid.UUID)
			}
		default:
			pc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PaymentCredentials.
// This includes values selected through modifiers, order, etc.
func (pc *PaymentCredentials) Value(name string) (ent.Value, error) {
	return pc.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the PaymentCredentials entity.
func (pc *PaymentCredentials) QueryOwner() *UserQuery {
	return NewPaymentCredentialsClient(pc.config).QueryOwner(pc)
}

// Update returns a builder for updating this PaymentCredentials.
// Note that you need to call PaymentCredentials.Unwrap() before calling this method if this PaymentCredentials
// was returned from a transaction, and the transaction was committed or rolled back.
func (pc *PaymentCredentials) Update() *PaymentCredentialsUpdateOne {
	return NewPaymentCredentialsClient(pc.config).UpdateOne(pc)
}

// Unwrap unwraps the PaymentCredentials entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pc *PaymentCredentials) Unwrap() *PaymentCredentials {
	_tx, ok := pc.config.driver.(*txDriver)
	if !ok {
		panic("ent: PaymentCredentials is not a transactional entity")
	}
	pc.config.driver = _tx.drv
	return pc
}

// String implements the fmt.Stringer.
func (pc *PaymentCredentials) String() string {
	var builder strings.Builder
	builder.WriteString("PaymentCredentials(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pc.ID))
	builder.WriteString("created_at=")
	builder.WriteString(pc.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(pc.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("card_public_key=")
	builder.WriteString(pc.CardPublicKey)
	builder.WriteString(", ")
	builder.WriteString("card_private_key=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("card_webhook_secret=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("bead_merchant_id=")
	builder.WriteString(pc.BeadMerchantID)
	builder.WriteString(", ")
	builder.WriteString("bead_terminal_id=")
	builder.WriteString(pc.BeadTerminalID)
	builder.WriteString(", ")
	builder.WriteString("bead_username=")
	builder.WriteString(pc.BeadUsername)
	builder.WriteString(", ")
	builder.WriteString("bead_password=<sensitive>")
	builder.WriteByte(')')
	return builder.String()
}

// PaymentCredentialsSlice is a parsable slice of PaymentCredentials.
type PaymentCredentialsSlice []*PaymentCredentials
