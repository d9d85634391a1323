// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/payloop/billing/ent/invoice"
	"github.com/payloop/billing/ent/paymentcredentials"
	"github.com/payloop/billing/ent/schema"
	"github.com/payloop/billing/ent/user"
	"github.com/shopspring/decimal"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	invoiceMixin := schema.Invoice{}.Mixin()
	invoiceMixinFields0 := invoiceMixin[0].Fields()
	_ = invoiceMixinFields0
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceMixinFields0[0].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceMixinFields0[1].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescInvoiceNumber is the schema descriptor for invoice_number field.
	invoiceDescInvoiceNumber := invoiceFields[1].Descriptor()
	// invoice.InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	invoice.InvoiceNumberValidator = func() func(string) error {
		validators := invoiceDescInvoiceNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(invoice_number string) error {
			for _, fn := range fns {
				if err := fn(invoice_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoiceDescGatewayInvoiceID is the schema descriptor for gateway_invoice_id field.
	invoiceDescGatewayInvoiceID := invoiceFields[2].Descriptor()
	// invoice.GatewayInvoiceIDValidator is a validator for the "gateway_invoice_id" field. It is called by the builders before save.
	invoice.GatewayInvoiceIDValidator = func() func(string) error {
		validators := invoiceDescGatewayInvoiceID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(gateway_invoice_id string) error {
			for _, fn := range fns {
				if err := fn(gateway_invoice_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoiceDescPaymentToken is the schema descriptor for payment_token field.
	invoiceDescPaymentToken := invoiceFields[3].Descriptor()
	// invoice.PaymentTokenValidator is a validator for the "payment_token" field. It is called by the builders before save.
	invoice.PaymentTokenValidator = invoiceDescPaymentToken.Validators[0].(func(string) error)
	// invoiceDescCustomerName is the schema descriptor for customer_name field.
	invoiceDescCustomerName := invoiceFields[4].Descriptor()
	// invoice.CustomerNameValidator is a validator for the "customer_name" field. It is called by the builders before save.
	invoice.CustomerNameValidator = invoiceDescCustomerName.Validators[0].(func(string) error)
	// invoiceDescCustomerEmail is the schema descriptor for customer_email field.
	invoiceDescCustomerEmail := invoiceFields[5].Descriptor()
	// invoice.CustomerEmailValidator is a validator for the "customer_email" field. It is called by the builders before save.
	invoice.CustomerEmailValidator = invoiceDescCustomerEmail.Validators[0].(func(string) error)
	// invoiceDescDescription is the schema descriptor for description field.
	invoiceDescDescription := invoiceFields[6].Descriptor()
	// invoice.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	invoice.DescriptionValidator = invoiceDescDescription.Validators[0].(func(string) error)
	// invoiceDescTaxRate is the schema descriptor for tax_rate field.
	invoiceDescTaxRate := invoiceFields[8].Descriptor()
	// invoice.DefaultTaxRate holds the default value on creation for the tax_rate field.
	invoice.DefaultTaxRate = invoiceDescTaxRate.Default.(func() decimal.Decimal)
	// invoiceDescTaxAmount is the schema descriptor for tax_amount field.
	invoiceDescTaxAmount := invoiceFields[9].Descriptor()
	// invoice.DefaultTaxAmount holds the default value on creation for the tax_amount field.
	invoice.DefaultTaxAmount = invoiceDescTaxAmount.Default.(func() decimal.Decimal)
	// invoiceDescTransactionID is the schema descriptor for transaction_id field.
	invoiceDescTransactionID := invoiceFields[13].Descriptor()
	// invoice.TransactionIDValidator is a validator for the "transaction_id" field. It is called by the builders before save.
	invoice.TransactionIDValidator = invoiceDescTransactionID.Validators[0].(func(string) error)
	// invoiceDescBeadPaymentID is the schema descriptor for bead_payment_id field.
	invoiceDescBeadPaymentID := invoiceFields[14].Descriptor()
	// invoice.BeadPaymentIDValidator is a validator for the "bead_payment_id" field. It is called by the builders before save.
	invoice.BeadPaymentIDValidator = invoiceDescBeadPaymentID.Validators[0].(func(string) error)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	paymentcredentialsMixin := schema.PaymentCredentials{}.Mixin()
	paymentcredentialsMixinFields0 := paymentcredentialsMixin[0].Fields()
	_ = paymentcredentialsMixinFields0
	paymentcredentialsFields := schema.PaymentCredentials{}.Fields()
	_ = paymentcredentialsFields
	// paymentcredentialsDescCreatedAt is the schema descriptor for created_at field.
	paymentcredentialsDescCreatedAt := paymentcredentialsMixinFields0[0].Descriptor()
	// paymentcredentials.DefaultCreatedAt holds the default value on creation for the created_at field.
	paymentcredentials.DefaultCreatedAt = paymentcredentialsDescCreatedAt.Default.(func() time.Time)
	// paymentcredentialsDescUpdatedAt is the schema descriptor for updated_at field.
	paymentcredentialsDescUpdatedAt := paymentcredentialsMixinFields0[1].Descriptor()
	// paymentcredentials.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	paymentcredentials.DefaultUpdatedAt = paymentcredentialsDescUpdatedAt.Default.(func() time.Time)
	// paymentcredentials.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	paymentcredentials.UpdateDefaultUpdatedAt = paymentcredentialsDescUpdatedAt.UpdateDefault.(func() time.Time)
	// paymentcredentialsDescCardPublicKey is the schema descriptor for card_public_key field.
	paymentcredentialsDescCardPublicKey := paymentcredentialsFields[1].Descriptor()
	// paymentcredentials.CardPublicKeyValidator is a validator for the "card_public_key" field. It is called by the builders before save.
	paymentcredentials.CardPublicKeyValidator = paymentcredentialsDescCardPublicKey.Validators[0].(func(string) error)
	// paymentcredentialsDescBeadMerchantID is the schema descriptor for bead_merchant_id field.
	paymentcredentialsDescBeadMerchantID := paymentcredentialsFields[4].Descriptor()
	// paymentcredentials.BeadMerchantIDValidator is a validator for the "bead_merchant_id" field. It is called by the builders before save.
	paymentcredentials.BeadMerchantIDValidator = paymentcredentialsDescBeadMerchantID.Validators[0].(func(string) error)
	// paymentcredentialsDescBeadTerminalID is the schema descriptor for bead_terminal_id field.
	paymentcredentialsDescBeadTerminalID := paymentcredentialsFields[5].Descriptor()
	// paymentcredentials.BeadTerminalIDValidator is a validator for the "bead_terminal_id" field. It is called by the builders before save.
	paymentcredentials.BeadTerminalIDValidator = paymentcredentialsDescBeadTerminalID.Validators[0].(func(string) error)
	// paymentcredentialsDescBeadUsername is the schema descriptor for bead_username field.
	paymentcredentialsDescBeadUsername := paymentcredentialsFields[6].Descriptor()
	// paymentcredentials.BeadUsernameValidator is a validator for the "bead_username" field. It is called by the builders before save.
	paymentcredentials.BeadUsernameValidator = paymentcredentialsDescBeadUsername.Validators[0].(func(string) error)
	// paymentcredentialsDescID is the schema descriptor for id field.
	paymentcredentialsDescID := paymentcredentialsFields[0].Descriptor()
	// paymentcredentials.DefaultID holds the default value on creation for the id field.
	paymentcredentials.DefaultID = paymentcredentialsDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[1].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = func() func(string) error {
		validators := userDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[2].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = func() func(string) error {
		validators := userDescLastName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(last_name string) error {
			for _, fn := range fns {
				if err := fn(last_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[3].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescScope is the schema descriptor for scope field.
	userDescScope := userFields[5].Descriptor()
	// user.DefaultScope holds the default value on creation for the scope field.
	user.DefaultScope = userDescScope.Default.(string)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
