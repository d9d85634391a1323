package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice holds the schema definition for the Invoice entity. It is the sole
// source of truth for payment status; status mutations go through the
// reconciliation engine or explicit operator actions.
type Invoice struct {
	ent.Schema
}

// Mixin of the Invoice.
func (Invoice) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Invoice.
func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("invoice_number").
			MaxLen(70).
			NotEmpty(),
		// Order reference on the card rail and payment reference on the crypto rail
		field.String("gateway_invoice_id").
			MaxLen(255).
			NotEmpty(),
		// Capability token for customer-facing payment links
		field.String("payment_token").
			MaxLen(70).
			Unique(),
		field.String("customer_name").
			MaxLen(255),
		field.String("customer_email").
			MaxLen(255),
		field.String("description").
			MaxLen(1000).
			Optional(),
		// Amounts
		field.Float("subtotal").GoType(decimal.Decimal{}),
		field.Float("tax_rate").
			GoType(decimal.Decimal{}).
			DefaultFunc(func() decimal.Decimal { return decimal.Zero }),
		field.Float("tax_amount").
			GoType(decimal.Decimal{}).
			DefaultFunc(func() decimal.Decimal { return decimal.Zero }),
		field.Float("total").GoType(decimal.Decimal{}),
		// Status & payment linkage
		field.Enum("status").
			Values("sent", "paid", "overdue", "refunded", "voided", "closed").
			Default("sent"),
		field.Enum("payment_method").
			Values("credit_card", "crypto").
			Optional(),
		field.String("transaction_id").
			MaxLen(100).
			Optional(),
		field.String("bead_payment_id").
			MaxLen(100).
			Optional(),
		// Set exactly once, at the first transition into paid
		field.Time("payment_date").
			Optional().
			Nillable(),
		field.Time("due_date").
			Optional().
			Nillable(),
	}
}

// Edges of the Invoice.
func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("invoices").
			Unique().
			Required(),
	}
}

// Indexes of the Invoice.
func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("gateway_invoice_id"),
		index.Fields("transaction_id"),
		index.Fields("bead_payment_id"),
	}
}
