package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// PaymentCredentials holds the schema definition for a merchant's per-rail
// payment credentials. Secret fields are stored AES-GCM encrypted and are only
// decrypted inside the gateway client for the duration of a single call.
type PaymentCredentials struct {
	ent.Schema
}

// Mixin of the PaymentCredentials.
func (PaymentCredentials) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the PaymentCredentials.
func (PaymentCredentials) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		// Card rail API key pair; the private key and webhook signing secret are encrypted
		field.String("card_public_key").
			MaxLen(255).
			Optional(),
		field.Bytes("card_private_key").
			Optional().
			Sensitive(),
		field.Bytes("card_webhook_secret").
			Optional().
			Sensitive(),
		// Crypto rail credential bundle; the password is encrypted
		field.String("bead_merchant_id").
			MaxLen(100).
			Optional(),
		field.String("bead_terminal_id").
			MaxLen(100).
			Optional(),
		field.String("bead_username").
			MaxLen(100).
			Optional(),
		field.Bytes("bead_password").
			Optional().
			Sensitive(),
	}
}

// Edges of the PaymentCredentials.
func (PaymentCredentials) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("payment_credentials").
			Unique().
			Required(),
	}
}
