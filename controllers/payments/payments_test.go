package payments

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
	"github.com/payloop/billing/services/gateway"
	db "github.com/payloop/billing/storage"
	u "github.com/payloop/billing/utils"
	"github.com/payloop/billing/utils/test"
)

type testEnv struct {
	router   *gin.Engine
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

	_, err = test.CreateTestPaymentCredentials(merchant, nil)
	assert.NoError(t, err)

	inv, err := test.CreateTestInvoice(merchant, nil)
	assert.NoError(t, err)

	ctrl := NewController()
	router := gin.New()
	router.GET("/pay/:payment_token", ctrl.GetInvoiceByToken)
	router.POST("/pay/:payment_token/card", ctrl.PayWithCard)
	router.POST("/pay/:payment_token/crypto", ctrl.CreateCryptoPayment)
	router.GET("/pay/:payment_token/crypto/verify", ctrl.VerifyCryptoPayment)

	return &testEnv{router: router, merchant: merchant, invoice: inv}
}

func cardPayload() map[string]interface{} {
	return map[string]interface{}{
		"payment_token": "tok_abc",
		"first_name":    "Alice",
		"last_name":     "Customer",
		"address1":      "1 Main St",
		"city":          "Springfield",
		"state":         "IL",
		"zip":           "62701",
	}
}

func TestGetInvoiceByToken(t *testing.T) {
	env := setupEnv(t)

	res, err := test.PerformRequest(t, "GET", fmt.Sprintf("/pay/%s", env.invoice.PaymentToken), nil, nil, env.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Code)

	var response struct {
		Status string `json:"status"`
		Data   struct {
			InvoiceNumber string `json:"invoiceNumber"`
			Status        string `json:"status"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &response))
	assert.Equal(t, "success", response.Status)
	assert.Equal(t, env.invoice.InvoiceNumber, response.Data.InvoiceNumber)
	assert.Equal(t, "sent", response.Data.Status)

	res, err = test.PerformRequest(t, "GET", "/pay/not-a-real-token", nil, nil, env.router)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestPayWithCard(t *testing.T) {
	t.Run("approved sale pays the invoice", func(t *testing.T) {
		env := setupEnv(t)
		httpmock.ActivateNonDefault(u.GetHTTPClient())
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("POST", config.GatewayConfig().CardAPIURL,
			httpmock.NewStringResponder(200,
				"response=1&transactionid=T1&authcode=A1&response_code=100&responsetext=SUCCESS"))

		res, err := test.PerformRequest(t, "POST",
			fmt.Sprintf("/pay/%s/card", env.invoice.PaymentToken), cardPayload(), nil, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)

		after, err := db.Client.Invoice.Get(context.Background(), env.invoice.ID)
		assert.NoError(t, err)
		assert.Equal(t, invoice.StatusPaid, after.Status)
		assert.Equal(t, "T1", after.TransactionID)
		assert.NotNil(t, after.PaymentDate)
	})

	t.Run("decline prompts a details check, not a retry", func(t *testing.T) {
		env := setupEnv(t)
		httpmock.ActivateNonDefault(u.GetHTTPClient())
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("POST", config.GatewayConfig().CardAPIURL,
			httpmock.NewStringResponder(200,
				"response=2&response_code=200&responsetext=DECLINE"))

		res, err := test.PerformRequest(t, "POST",
			fmt.Sprintf("/pay/%s/card", env.invoice.PaymentToken), cardPayload(), nil, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusPaymentRequired, res.Code)
		assert.Contains(t, res.Body.String(), "rejected")

		after, err := db.Client.Invoice.Get(context.Background(), env.invoice.ID)
		assert.NoError(t, err)
		assert.Equal(t, invoice.StatusSent, after.Status)
	})

	t.Run("transport failure prompts a retry", func(t *testing.T) {
		env := setupEnv(t)
		httpmock.ActivateNonDefault(u.GetHTTPClient())
		defer httpmock.DeactivateAndReset()

		httpmock.RegisterResponder("POST", config.GatewayConfig().CardAPIURL,
			httpmock.NewErrorResponder(fmt.Errorf("connection refused")))

		res, err := test.PerformRequest(t, "POST",
			fmt.Sprintf("/pay/%s/card", env.invoice.PaymentToken), cardPayload(), nil, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, res.Code)
		assert.Contains(t, res.Body.String(), "try again")
	})

	t.Run("paid invoice cannot be paid again", func(t *testing.T) {
		env := setupEnv(t)

		err := db.Client.Invoice.UpdateOneID(env.invoice.ID).
			SetStatus(invoice.StatusPaid).
			Exec(context.Background())
		assert.NoError(t, err)

		res, err := test.PerformRequest(t, "POST",
			fmt.Sprintf("/pay/%s/card", env.invoice.PaymentToken), cardPayload(), nil, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusConflict, res.Code)
	})

	t.Run("missing payment token fails validation", func(t *testing.T) {
		env := setupEnv(t)

		res, err := test.PerformRequest(t, "POST",
			fmt.Sprintf("/pay/%s/card", env.invoice.PaymentToken),
			map[string]interface{}{"first_name": "Alice"}, nil, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}

func TestCreateCryptoPayment(t *testing.T) {
	t.Run("creates a payment and records the tracking id", func(t *testing.T) {
		env := setupEnv(t)
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		baseURL := config.GatewayConfig().BeadAPIURL
		httpmock.RegisterResponder("POST", baseURL+"/api/auth",
			httpmock.NewStringResponder(200, `{"accessToken":"bead-token"}`))
		httpmock.RegisterResponder("POST", baseURL+"/api/payments/crypto",
			func(r *http.Request) (*http.Response, error) {
				return httpmock.NewJsonResponse(200, map[string]interface{}{
					"trackingId":  "trk_123",
					"paymentUrls": []string{"https://pay.beadpay.io/trk_123"},
				})
			})

		res, err := test.PerformRequest(t, "POST",
			fmt.Sprintf("/pay/%s/crypto", env.invoice.PaymentToken), nil, nil, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)
		assert.Contains(t, res.Body.String(), "trk_123")

		after, err := db.Client.Invoice.Get(context.Background(), env.invoice.ID)
		assert.NoError(t, err)
		assert.Equal(t, "trk_123", after.BeadPaymentID)
	})

	t.Run("existing tracking id re-queries status instead of creating a duplicate", func(t *testing.T) {
		env := setupEnv(t)
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		err := db.Client.Invoice.UpdateOneID(env.invoice.ID).
			SetBeadPaymentID("trk_existing").
			Exec(context.Background())
		assert.NoError(t, err)

		baseURL := config.GatewayConfig().BeadAPIURL
		httpmock.RegisterResponder("POST", baseURL+"/api/auth",
			httpmock.NewStringResponder(200, `{"accessToken":"bead-token"}`))
		httpmock.RegisterResponder("GET", baseURL+"/api/payments/trk_existing/status",
			func(r *http.Request) (*http.Response, error) {
				return httpmock.NewJsonResponse(200, map[string]interface{}{
					"statusCode": gateway.CryptoStatusProcessing,
				})
			})

		res, err := test.PerformRequest(t, "POST",
			fmt.Sprintf("/pay/%s/crypto", env.invoice.PaymentToken), nil, nil, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)
		assert.Contains(t, res.Body.String(), "trk_existing")

		// No second payment was created upstream
		info := httpmock.GetCallCountInfo()
		assert.Zero(t, info["POST "+baseURL+"/api/payments/crypto"])

		after, err := db.Client.Invoice.Get(context.Background(), env.invoice.ID)
		assert.NoError(t, err)
		assert.Equal(t, "trk_existing", after.BeadPaymentID)
	})

	t.Run("re-query of a completed payment settles the invoice", func(t *testing.T) {
		env := setupEnv(t)
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		err := db.Client.Invoice.UpdateOneID(env.invoice.ID).
			SetBeadPaymentID("trk_existing").
			Exec(context.Background())
		assert.NoError(t, err)

		baseURL := config.GatewayConfig().BeadAPIURL
		httpmock.RegisterResponder("POST", baseURL+"/api/auth",
			httpmock.NewStringResponder(200, `{"accessToken":"bead-token"}`))
		httpmock.RegisterResponder("GET", baseURL+"/api/payments/trk_existing/status",
			func(r *http.Request) (*http.Response, error) {
				return httpmock.NewJsonResponse(200, map[string]interface{}{
					"statusCode":    gateway.CryptoStatusCompleted,
					"transactionId": "tx_999",
				})
			})

		res, err := test.PerformRequest(t, "POST",
			fmt.Sprintf("/pay/%s/crypto", env.invoice.PaymentToken), nil, nil, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)

		after, err := db.Client.Invoice.Get(context.Background(), env.invoice.ID)
		assert.NoError(t, err)
		assert.Equal(t, invoice.StatusPaid, after.Status)
		assert.Equal(t, "tx_999", after.TransactionID)
	})
}

func TestVerifyCryptoPayment(t *testing.T) {
	t.Run("completed payment settles through the common transition path", func(t *testing.T) {
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

		res, err := test.PerformRequest(t, "GET",
			fmt.Sprintf("/pay/%s/crypto/verify", env.invoice.PaymentToken), nil, nil, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)

		after, err := db.Client.Invoice.Get(context.Background(), env.invoice.ID)
		assert.NoError(t, err)
		assert.Equal(t, invoice.StatusPaid, after.Status)
		assert.Equal(t, invoice.PaymentMethodCrypto, after.PaymentMethod)
	})

	t.Run("invoice without a crypto payment answers 400", func(t *testing.T) {
		env := setupEnv(t)

		res, err := test.PerformRequest(t, "GET",
			fmt.Sprintf("/pay/%s/crypto/verify", env.invoice.PaymentToken), nil, nil, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}
