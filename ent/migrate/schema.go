// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "invoice_number", Type: field.TypeString, Size: 70},
		{Name: "gateway_invoice_id", Type: field.TypeString, Size: 255},
		{Name: "payment_token", Type: field.TypeString, Unique: true, Size: 70},
		{Name: "customer_name", Type: field.TypeString, Size: 255},
		{Name: "customer_email", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "subtotal", Type: field.TypeFloat64},
		{Name: "tax_rate", Type: field.TypeFloat64},
		{Name: "tax_amount", Type: field.TypeFloat64},
		{Name: "total", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"sent", "paid", "overdue", "refunded", "voided", "closed"}, Default: "sent"},
		{Name: "payment_method", Type: field.TypeEnum, Nullable: true, Enums: []string{"credit_card", "crypto"}},
		{Name: "transaction_id", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "bead_payment_id", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "payment_date", Type: field.TypeTime, Nullable: true},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "user_invoices", Type: field.TypeUUID},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_users_invoices",
				Columns:    []*schema.Column{InvoicesColumns[19]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_gateway_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[4]},
			},
			{
				Name:    "invoice_transaction_id",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[15]},
			},
			{
				Name:    "invoice_bead_payment_id",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[16]},
			},
		},
	}
	// PaymentCredentialsColumns holds the columns for the "payment_credentials" table.
	PaymentCredentialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "card_public_key", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "card_private_key", Type: field.TypeBytes, Nullable: true},
		{Name: "card_webhook_secret", Type: field.TypeBytes, Nullable: true},
		{Name: "bead_merchant_id", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "bead_terminal_id", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "bead_username", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "bead_password", Type: field.TypeBytes, Nullable: true},
		{Name: "user_payment_credentials", Type: field.TypeUUID, Unique: true},
	}
	// PaymentCredentialsTable holds the schema information for the "payment_credentials" table.
	PaymentCredentialsTable = &schema.Table{
		Name:       "payment_credentials",
		Columns:    PaymentCredentialsColumns,
		PrimaryKey: []*schema.Column{PaymentCredentialsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "payment_credentials_users_payment_credentials",
				Columns:    []*schema.Column{PaymentCredentialsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "first_name", Type: field.TypeString, Size: 80},
		{Name: "last_name", Type: field.TypeString, Size: 80},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password", Type: field.TypeString},
		{Name: "scope", Type: field.TypeString, Default: "merchant"},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InvoicesTable,
		PaymentCredentialsTable,
		UsersTable,
	}
)

func init() {
	InvoicesTable.ForeignKeys[0].RefTable = UsersTable
	PaymentCredentialsTable.ForeignKeys[0].RefTable = UsersTable
}
