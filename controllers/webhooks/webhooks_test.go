package webhooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/jarcoal/httpmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/payloop/billing/config"
	"github.com/payloop/billing/ent"
	"github.com/payloop/billing/ent/enttest"
	"github.com/payloop/billing/ent/invoice"
	"github.com/payloop/billing/services/audit"
	"github.com/payloop/billing/services/gateway"
	db "github.com/payloop/billing/storage"
	"github.com/payloop/billing/utils/test"
	"github.com/payloop/billing/utils/webhooksig"
)

const testWebhookSecret = "whsec_test_secret"

type testEnv struct {
	router   *gin.Engine
	auditLog *audit.Log
	merchant *ent.User
	invoice  *ent.Invoice
}

func setupEnv(t *testing.T) *testEnv {
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

	_, err = test.CreateTestPaymentCredentials(merchant, map[string]interface{}{
		"cardWebhookSecret": testWebhookSecret,
	})
	assert.NoError(t, err)

	inv, err := test.CreateTestInvoice(merchant, nil)
	assert.NoError(t, err)

	auditLog := audit.NewLog(db.RedisClient, "webhooks:audit", 50)
	ctrl := NewController(auditLog)

	router := gin.New()
	router.POST("/webhooks/card/:merchant_id", ctrl.CardWebhook)
	router.POST("/webhooks/crypto", ctrl.CryptoWebhook)

	return &testEnv{router: router, auditLog: auditLog, merchant: merchant, invoice: inv}
}

func signHeader(body []byte) string {
	return fmt.Sprintf("t=nonce-1,s=%s", webhooksig.Sign(body, "nonce-1", []byte(testWebhookSecret)))
}

func cardSaleBody(orderID string) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"event_id": "evt_1",
		"type":     "transaction.sale",
		"data": map[string]interface{}{
			"orderid":       orderID,
			"transactionid": "T1",
			"response_code": "100",
			"response":      "1",
			"responsetext":  "SUCCESS",
		},
	})
	return body
}

func TestCardWebhook(t *testing.T) {
	t.Run("happy path card payment", func(t *testing.T) {
		env := setupEnv(t)
		body := cardSaleBody(env.invoice.GatewayInvoiceID)

		res, err := test.PerformRawRequest(t, "POST",
			fmt.Sprintf("/webhooks/card/%s", env.merchant.ID),
			body, map[string]string{"Webhook-Signature": signHeader(body)}, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)

		paid, err := db.Client.Invoice.Get(context.Background(), env.invoice.ID)
		assert.NoError(t, err)
		assert.Equal(t, invoice.StatusPaid, paid.Status)
		assert.Equal(t, "T1", paid.TransactionID)
		assert.Equal(t, invoice.PaymentMethodCreditCard, paid.PaymentMethod)
		assert.NotNil(t, paid.PaymentDate)

		// Newest first: the outcome entry on top of the arrival entry
		entries, err := env.auditLog.ListRecent(context.Background(), nil)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, audit.StatusProcessed, entries[0].Status)
		assert.Equal(t, env.invoice.ID, *entries[0].InvoiceID)
		assert.Equal(t, audit.StatusReceived, entries[1].Status)
		assert.Nil(t, entries[1].InvoiceID)
	})

	t.Run("forged signature is rejected without touching the invoice", func(t *testing.T) {
		env := setupEnv(t)
		body := cardSaleBody(env.invoice.GatewayInvoiceID)
		forged := fmt.Sprintf("t=nonce-1,s=%s", webhooksig.Sign(body, "nonce-1", []byte("attacker-secret")))

		res, err := test.PerformRawRequest(t, "POST",
			fmt.Sprintf("/webhooks/card/%s", env.merchant.ID),
			body, map[string]string{"Webhook-Signature": forged}, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, res.Code)

		after, err := db.Client.Invoice.Get(context.Background(), env.invoice.ID)
		assert.NoError(t, err)
		assert.Equal(t, invoice.StatusSent, after.Status)

		// Even a rejected delivery leaves its arrival record
		entries, err := env.auditLog.ListRecent(context.Background(), nil)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, audit.StatusError, entries[0].Status)
		assert.Equal(t, audit.StatusReceived, entries[1].Status)
	})

	t.Run("missing signature header is rejected", func(t *testing.T) {
		env := setupEnv(t)
		body := cardSaleBody(env.invoice.GatewayInvoiceID)

		res, err := test.PerformRawRequest(t, "POST",
			fmt.Sprintf("/webhooks/card/%s", env.merchant.ID), body, nil, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("unknown invoice answers 200 with an embedded error", func(t *testing.T) {
		env := setupEnv(t)
		body := cardSaleBody("INV-does-not-exist")

		res, err := test.PerformRawRequest(t, "POST",
			fmt.Sprintf("/webhooks/card/%s", env.merchant.ID),
			body, map[string]string{"Webhook-Signature": signHeader(body)}, env.router)
		assert.NoError(t, err)

		// Durably logged but unresolvable events must not trigger upstream retries
		assert.Equal(t, http.StatusOK, res.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &response))
		assert.Equal(t, "error", response["status"])
		assert.Equal(t, "Invoice not found", response["message"])

		entries, err := env.auditLog.ListRecent(context.Background(), nil)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, audit.StatusError, entries[0].Status)
		assert.Nil(t, entries[0].InvoiceID)
		assert.Equal(t, audit.StatusReceived, entries[1].Status)
	})

	t.Run("duplicate delivery is a no-op", func(t *testing.T) {
		env := setupEnv(t)
		body := cardSaleBody(env.invoice.GatewayInvoiceID)
		headers := map[string]string{"Webhook-Signature": signHeader(body)}
		path := fmt.Sprintf("/webhooks/card/%s", env.merchant.ID)

		res, err := test.PerformRawRequest(t, "POST", path, body, headers, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)

		paid, err := db.Client.Invoice.Get(context.Background(), env.invoice.ID)
		assert.NoError(t, err)
		firstPaymentDate := *paid.PaymentDate

		// The processor redelivers the same event
		res, err = test.PerformRawRequest(t, "POST", path, body, headers, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)

		after, err := db.Client.Invoice.Get(context.Background(), env.invoice.ID)
		assert.NoError(t, err)
		assert.Equal(t, invoice.StatusPaid, after.Status)
		assert.Equal(t, firstPaymentDate.Unix(), after.PaymentDate.Unix())
	})

	t.Run("unknown event type answers 200", func(t *testing.T) {
		env := setupEnv(t)
		body, _ := json.Marshal(map[string]interface{}{
			"event_id": "evt_x",
			"type":     "transaction.settlement.batch",
		})

		res, err := test.PerformRawRequest(t, "POST",
			fmt.Sprintf("/webhooks/card/%s", env.merchant.ID),
			body, map[string]string{"Webhook-Signature": signHeader(body)}, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("declined sale leaves the invoice payable", func(t *testing.T) {
		env := setupEnv(t)
		body, _ := json.Marshal(map[string]interface{}{
			"event_id": "evt_2",
			"type":     "transaction.sale",
			"data": map[string]interface{}{
				"orderid":       env.invoice.GatewayInvoiceID,
				"transactionid": "T9",
				"response_code": "200",
				"response":      "2",
				"responsetext":  "DECLINE",
			},
		})

		res, err := test.PerformRawRequest(t, "POST",
			fmt.Sprintf("/webhooks/card/%s", env.merchant.ID),
			body, map[string]string{"Webhook-Signature": signHeader(body)}, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)

		after, err := db.Client.Invoice.Get(context.Background(), env.invoice.ID)
		assert.NoError(t, err)
		assert.Equal(t, invoice.StatusSent, after.Status)
		assert.Empty(t, after.TransactionID)
	})

	t.Run("refund webhook moves a paid invoice to refunded", func(t *testing.T) {
		env := setupEnv(t)

		err := db.Client.Invoice.UpdateOneID(env.invoice.ID).
			SetStatus(invoice.StatusPaid).
			SetTransactionID("T1").
			Exec(context.Background())
		assert.NoError(t, err)

		body, _ := json.Marshal(map[string]interface{}{
			"event_id": "evt_3",
			"type":     "transaction.refund",
			"data": map[string]interface{}{
				"orderid":       env.invoice.GatewayInvoiceID,
				"transactionid": "T1",
			},
		})

		res, err := test.PerformRawRequest(t, "POST",
			fmt.Sprintf("/webhooks/card/%s", env.merchant.ID),
			body, map[string]string{"Webhook-Signature": signHeader(body)}, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)

		after, err := db.Client.Invoice.Get(context.Background(), env.invoice.ID)
		assert.NoError(t, err)
		assert.Equal(t, invoice.StatusRefunded, after.Status)
	})

	t.Run("malformed body with a valid signature answers 400", func(t *testing.T) {
		env := setupEnv(t)
		body := []byte(`{"type": "transaction.sale", "data":`)

		res, err := test.PerformRawRequest(t, "POST",
			fmt.Sprintf("/webhooks/card/%s", env.merchant.ID),
			body, map[string]string{"Webhook-Signature": signHeader(body)}, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}

func TestCryptoWebhook(t *testing.T) {
	t.Run("completed payment is confirmed before applying", func(t *testing.T) {
		env := setupEnv(t)
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		err := db.Client.Invoice.UpdateOneID(env.invoice.ID).
			SetBeadPaymentID("trk_123").
			Exec(context.Background())
		assert.NoError(t, err)

		baseURL := config.GatewayConfig().BeadAPIURL
		httpmock.RegisterResponder("POST", baseURL+"/api/auth",
			httpmock.NewStringResponder(200, `{"accessToken":"bead-token"}`))
		httpmock.RegisterResponder("GET", baseURL+"/api/payments/trk_123/status",
			func(r *http.Request) (*http.Response, error) {
				return httpmock.NewJsonResponse(200, map[string]interface{}{
					"statusCode":    gateway.CryptoStatusCompleted,
					"transactionId": "tx_999",
				})
			})

		res, err := test.PerformRequest(t, "POST", "/webhooks/crypto",
			map[string]interface{}{"trackingId": "trk_123", "status": "completed"}, nil, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &response))
		assert.Equal(t, true, response["success"])

		after, err := db.Client.Invoice.Get(context.Background(), env.invoice.ID)
		assert.NoError(t, err)
		assert.Equal(t, invoice.StatusPaid, after.Status)
		assert.Equal(t, "tx_999", after.TransactionID)
		assert.Equal(t, invoice.PaymentMethodCrypto, after.PaymentMethod)
	})

	t.Run("webhook body alone never pays the invoice", func(t *testing.T) {
		env := setupEnv(t)
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		err := db.Client.Invoice.UpdateOneID(env.invoice.ID).
			SetBeadPaymentID("trk_123").
			Exec(context.Background())
		assert.NoError(t, err)

		baseURL := config.GatewayConfig().BeadAPIURL
		httpmock.RegisterResponder("POST", baseURL+"/api/auth",
			httpmock.NewStringResponder(200, `{"accessToken":"bead-token"}`))
		httpmock.RegisterResponder("GET", baseURL+"/api/payments/trk_123/status",
			func(r *http.Request) (*http.Response, error) {
				return httpmock.NewJsonResponse(200, map[string]interface{}{
					"statusCode": gateway.CryptoStatusProcessing,
				})
			})

		// The body claims completion; the provider says otherwise
		res, err := test.PerformRequest(t, "POST", "/webhooks/crypto",
			map[string]interface{}{"trackingId": "trk_123", "status": "completed"}, nil, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)

		after, err := db.Client.Invoice.Get(context.Background(), env.invoice.ID)
		assert.NoError(t, err)
		assert.Equal(t, invoice.StatusSent, after.Status)
	})

	t.Run("missing trackingId answers 400", func(t *testing.T) {
		env := setupEnv(t)

		res, err := test.PerformRequest(t, "POST", "/webhooks/crypto",
			map[string]interface{}{"status": "completed"}, nil, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("unknown tracking id answers 200 with an error flag", func(t *testing.T) {
		env := setupEnv(t)

		res, err := test.PerformRequest(t, "POST", "/webhooks/crypto",
			map[string]interface{}{"trackingId": "trk_unknown"}, nil, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &response))
		assert.Equal(t, false, response["success"])
	})
}
