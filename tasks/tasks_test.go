package tasks

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jarcoal/httpmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/payloop/billing/config"
	"github.com/payloop/billing/ent"
	"github.com/payloop/billing/ent/enttest"
	"github.com/payloop/billing/ent/invoice"
	"github.com/payloop/billing/services/gateway"
	db "github.com/payloop/billing/storage"
	"github.com/payloop/billing/utils/test"
)

func setupMerchant(t *testing.T) *ent.User {
	t.Helper()
	test.SetupTestConfig()

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	db.Client = client

	mr, err := miniredis.Run()
	assert.NoError(t, err)
	t.Cleanup(mr.Close)
	db.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	merchant, err := test.CreateTestUser(nil)
	assert.NoError(t, err)

	_, err = test.CreateTestPaymentCredentials(merchant, nil)
	assert.NoError(t, err)

	return merchant
}

func TestMarkOverdueInvoices(t *testing.T) {
	merchant := setupMerchant(t)
	ctx := context.Background()

	pastDue, err := test.CreateTestInvoice(merchant, map[string]interface{}{
		"gatewayInvoiceID": "INV-past",
		"dueDate":          time.Now().Add(-48 * time.Hour),
	})
	assert.NoError(t, err)

	notYetDue, err := test.CreateTestInvoice(merchant, map[string]interface{}{
		"gatewayInvoiceID": "INV-future",
		"dueDate":          time.Now().Add(48 * time.Hour),
	})
	assert.NoError(t, err)

	paid, err := test.CreateTestInvoice(merchant, map[string]interface{}{
		"gatewayInvoiceID": "INV-paid",
		"status":           "paid",
		"dueDate":          time.Now().Add(-48 * time.Hour),
	})
	assert.NoError(t, err)

	assert.NoError(t, MarkOverdueInvoices())

	after, err := db.Client.Invoice.Get(ctx, pastDue.ID)
	assert.NoError(t, err)
	assert.Equal(t, invoice.StatusOverdue, after.Status)

	after, err = db.Client.Invoice.Get(ctx, notYetDue.ID)
	assert.NoError(t, err)
	assert.Equal(t, invoice.StatusSent, after.Status)

	after, err = db.Client.Invoice.Get(ctx, paid.ID)
	assert.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, after.Status)
}

func TestReconcilePendingCryptoPayments(t *testing.T) {
	merchant := setupMerchant(t)
	ctx := context.Background()

	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	completed, err := test.CreateTestInvoice(merchant, map[string]interface{}{
		"gatewayInvoiceID": "INV-completed",
		"beadPaymentID":    "trk_done",
	})
	assert.NoError(t, err)

	pending, err := test.CreateTestInvoice(merchant, map[string]interface{}{
		"gatewayInvoiceID": "INV-pending",
		"beadPaymentID":    "trk_wait",
	})
	assert.NoError(t, err)

	noPayment, err := test.CreateTestInvoice(merchant, map[string]interface{}{
		"gatewayInvoiceID": "INV-none",
	})
	assert.NoError(t, err)

	baseURL := config.GatewayConfig().BeadAPIURL
	httpmock.RegisterResponder("POST", baseURL+"/api/auth",
		httpmock.NewStringResponder(200, `{"accessToken":"bead-token"}`))
	httpmock.RegisterResponder("GET", baseURL+"/api/payments/trk_done/status",
		func(r *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"statusCode":    gateway.CryptoStatusCompleted,
				"transactionId": "tx_999",
			})
		})
	httpmock.RegisterResponder("GET", baseURL+"/api/payments/trk_wait/status",
		func(r *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"statusCode": gateway.CryptoStatusProcessing,
			})
		})

	assert.NoError(t, ReconcilePendingCryptoPayments())

	after, err := db.Client.Invoice.Get(ctx, completed.ID)
	assert.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, after.Status)
	assert.Equal(t, "tx_999", after.TransactionID)
	assert.Equal(t, invoice.PaymentMethodCrypto, after.PaymentMethod)

	after, err = db.Client.Invoice.Get(ctx, pending.ID)
	assert.NoError(t, err)
	assert.Equal(t, invoice.StatusSent, after.Status)

	// Invoices without a tracking id are never polled
	after, err = db.Client.Invoice.Get(ctx, noPayment.ID)
	assert.NoError(t, err)
	assert.Equal(t, invoice.StatusSent, after.Status)
}
