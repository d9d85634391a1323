package test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"github.com/payloop/billing/ent"
	"github.com/payloop/billing/ent/invoice"
	db "github.com/payloop/billing/storage"
	cryptoUtils "github.com/payloop/billing/utils/crypto"
)

// SetupTestConfig seeds the configuration keys tests depend on. Must run
// before anything reads the cached config sections.
func SetupTestConfig() {
	viper.Set("SECRET", "0123456789abcdef0123456789abcdef")
	viper.Set("ENVIRONMENT", "test")
	viper.Set("WEBHOOK_AUDIT_LOG_CAP", 50)
}

// CreateTestUser creates a test user with default or custom values
func CreateTestUser(overrides map[string]interface{}) (*ent.User, error) {

	// Default payload
	payload := map[string]interface{}{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     "johndoe@test.com",
		"password":  "password",
		"scope":     "merchant",
	}

	// Apply overrides
	for key, value := range overrides {
		payload[key] = value
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload["password"].(string)), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	// Create user
	user, err := db.Client.User.
		Create().
		SetFirstName(payload["firstName"].(string)).
		SetLastName(payload["lastName"].(string)).
		SetEmail(strings.ToLower(payload["email"].(string))).
		SetPassword(string(hashed)).
		SetScope(payload["scope"].(string)).
		Save(context.Background())

	return user, err
}

// CreateTestInvoice creates a test invoice with default or custom values
func CreateTestInvoice(owner *ent.User, overrides map[string]interface{}) (*ent.Invoice, error) {

	// Default payload
	payload := map[string]interface{}{
		"invoiceNumber":    "INV-77",
		"gatewayInvoiceID": "INV-77-" + uuid.New().String()[:8],
		"paymentToken":     uuid.New().String(),
		"customerName":     "Alice Customer",
		"customerEmail":    "alice@test.com",
		"subtotal":         decimal.NewFromFloat(100.00),
		"taxRate":          decimal.NewFromFloat(5.00),
		"taxAmount":        decimal.NewFromFloat(5.00),
		"total":            decimal.NewFromFloat(105.00),
		"status":           "sent",
	}

	// Apply overrides
	for key, value := range overrides {
		payload[key] = value
	}

	create := db.Client.Invoice.
		Create().
		SetInvoiceNumber(payload["invoiceNumber"].(string)).
		SetGatewayInvoiceID(payload["gatewayInvoiceID"].(string)).
		SetPaymentToken(payload["paymentToken"].(string)).
		SetCustomerName(payload["customerName"].(string)).
		SetCustomerEmail(payload["customerEmail"].(string)).
		SetSubtotal(payload["subtotal"].(decimal.Decimal)).
		SetTaxRate(payload["taxRate"].(decimal.Decimal)).
		SetTaxAmount(payload["taxAmount"].(decimal.Decimal)).
		SetTotal(payload["total"].(decimal.Decimal)).
		SetStatus(invoiceStatus(payload["status"].(string))).
		SetOwner(owner)

	if beadPaymentID, ok := payload["beadPaymentID"].(string); ok {
		create = create.SetBeadPaymentID(beadPaymentID)
	}
	if dueDate, ok := payload["dueDate"].(time.Time); ok {
		create = create.SetDueDate(dueDate)
	}

	return create.Save(context.Background())
}

func invoiceStatus(s string) invoice.Status {
	return invoice.Status(s)
}

// CreateTestPaymentCredentials creates encrypted rail credentials for a merchant
func CreateTestPaymentCredentials(owner *ent.User, overrides map[string]interface{}) (*ent.PaymentCredentials, error) {

	// Default payload
	payload := map[string]interface{}{
		"cardPublicKey":     "pub_test_key",
		"cardSecurityKey":   "sec_test_key",
		"cardWebhookSecret": "whsec_test_secret",
		"beadMerchantID":    "merchant-1",
		"beadTerminalID":    "terminal-1",
		"beadUsername":      "bead-user",
		"beadPassword":      "bead-pass",
	}

	// Apply overrides
	for key, value := range overrides {
		payload[key] = value
	}

	encryptedKey, err := cryptoUtils.EncryptPlain([]byte(payload["cardSecurityKey"].(string)))
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt card security key: %w", err)
	}

	encryptedSecret, err := cryptoUtils.EncryptPlain([]byte(payload["cardWebhookSecret"].(string)))
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt webhook secret: %w", err)
	}

	encryptedPassword, err := cryptoUtils.EncryptPlain([]byte(payload["beadPassword"].(string)))
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt bead password: %w", err)
	}

	return db.Client.PaymentCredentials.
		Create().
		SetCardPublicKey(payload["cardPublicKey"].(string)).
		SetCardPrivateKey(encryptedKey).
		SetCardWebhookSecret(encryptedSecret).
		SetBeadMerchantID(payload["beadMerchantID"].(string)).
		SetBeadTerminalID(payload["beadTerminalID"].(string)).
		SetBeadUsername(payload["beadUsername"].(string)).
		SetBeadPassword(encryptedPassword).
		SetOwner(owner).
		Save(context.Background())
}
