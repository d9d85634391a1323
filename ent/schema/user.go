package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User holds the schema definition for the merchant User entity.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("first_name").
			MaxLen(80).
			NotEmpty(),
		field.String("last_name").
			MaxLen(80).
			NotEmpty(),
		field.String("email").
			MaxLen(255).
			Unique(),
		field.String("password").
			Sensitive(),
		field.String("scope").
			Default("merchant"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("invoices", Invoice.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("payment_credentials", PaymentCredentials.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
