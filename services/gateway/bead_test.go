package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/payloop/billing/config"
	"github.com/payloop/billing/types"
)

var testBeadCreds = &types.BeadCredentials{
	MerchantID: "merchant-1",
	TerminalID: "terminal-1",
	Username:   "bead-user",
	Password:   "bead-pass",
}

func mockBeadAuth(baseURL string) {
	httpmock.RegisterResponder("POST", baseURL+"/api/auth",
		func(r *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"accessToken": "bead-token",
			})
		},
	)
}

func TestBeadService(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	service := NewBeadService()
	baseURL := config.GatewayConfig().BeadAPIURL

	t.Run("Authenticate", func(t *testing.T) {
		httpmock.Reset()
		mockBeadAuth(baseURL)

		token, err := service.Authenticate(context.Background(), testBeadCreds)
		assert.NoError(t, err)
		assert.Equal(t, "bead-token", token)
	})

	t.Run("Authenticate rejected credentials", func(t *testing.T) {
		httpmock.Reset()
		httpmock.RegisterResponder("POST", baseURL+"/api/auth",
			httpmock.NewStringResponder(403, `{"message":"forbidden"}`),
		)

		_, err := service.Authenticate(context.Background(), testBeadCreds)
		assert.Error(t, err)

		var gatewayErr *types.GatewayError
		assert.True(t, errors.As(err, &gatewayErr))
		assert.Equal(t, types.GatewayErrorPermission, gatewayErr.Kind)
		assert.Contains(t, gatewayErr.Message, "terminal-1")
	})

	t.Run("CreatePayment", func(t *testing.T) {
		httpmock.Reset()
		mockBeadAuth(baseURL)
		httpmock.RegisterResponder("POST", baseURL+"/api/payments/crypto",
			func(r *http.Request) (*http.Response, error) {
				assert.Equal(t, "Bearer bead-token", r.Header.Get("Authorization"))

				rawBody, readErr := io.ReadAll(r.Body)
				assert.NoError(t, readErr)
				// The amount must reach the wire with fixed two-decimal
				// precision; a float64 rendering would drop the cents
				assert.Contains(t, string(rawBody), `"requestedAmount":105.00`)

				return httpmock.NewJsonResponse(200, map[string]interface{}{
					"trackingId":  "trk_123",
					"paymentUrls": []string{"https://pay.beadpay.io/trk_123"},
				})
			},
		)

		created, err := service.CreatePayment(
			context.Background(), testBeadCreds,
			decimal.RequireFromString("105.00"), "USD", "INV-77-abc", "Invoice INV-77",
		)
		assert.NoError(t, err)
		assert.Equal(t, "trk_123", created.TrackingID)
		assert.Equal(t, []string{"https://pay.beadpay.io/trk_123"}, created.PaymentURLs)
	})

	t.Run("CreatePayment denied for terminal", func(t *testing.T) {
		httpmock.Reset()
		mockBeadAuth(baseURL)
		httpmock.RegisterResponder("POST", baseURL+"/api/payments/crypto",
			httpmock.NewStringResponder(403, `{"message":"terminal not enabled"}`),
		)

		_, err := service.CreatePayment(
			context.Background(), testBeadCreds,
			decimal.NewFromFloat(105.00), "USD", "INV-77-abc", "Invoice INV-77",
		)
		assert.Error(t, err)

		var gatewayErr *types.GatewayError
		assert.True(t, errors.As(err, &gatewayErr))
		assert.Equal(t, types.GatewayErrorPermission, gatewayErr.Kind)
	})

	t.Run("CheckStatus completed", func(t *testing.T) {
		httpmock.Reset()
		mockBeadAuth(baseURL)
		httpmock.RegisterResponder("GET", baseURL+"/api/payments/trk_123/status",
			func(r *http.Request) (*http.Response, error) {
				return httpmock.NewJsonResponse(200, map[string]interface{}{
					"statusCode":    CryptoStatusCompleted,
					"transactionId": "tx_999",
				})
			},
		)

		status, err := service.CheckStatus(context.Background(), testBeadCreds, "trk_123")
		assert.NoError(t, err)
		assert.Equal(t, CryptoStatusCompleted, status.StatusCode)
		assert.Equal(t, "tx_999", status.TransactionID)
	})

	t.Run("CheckStatus pending", func(t *testing.T) {
		httpmock.Reset()
		mockBeadAuth(baseURL)
		httpmock.RegisterResponder("GET", baseURL+"/api/payments/trk_123/status",
			func(r *http.Request) (*http.Response, error) {
				return httpmock.NewJsonResponse(200, map[string]interface{}{
					"statusCode": CryptoStatusProcessing,
				})
			},
		)

		status, err := service.CheckStatus(context.Background(), testBeadCreds, "trk_123")
		assert.NoError(t, err)
		assert.Equal(t, CryptoStatusProcessing, status.StatusCode)
		assert.Empty(t, status.TransactionID)
	})

	t.Run("canceled context aborts the call", func(t *testing.T) {
		httpmock.Reset()
		mockBeadAuth(baseURL)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := service.Authenticate(ctx, testBeadCreds)
		assert.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)

		var gatewayErr *types.GatewayError
		assert.True(t, errors.As(err, &gatewayErr))
		assert.Equal(t, types.GatewayErrorTransport, gatewayErr.Kind)
	})

	t.Run("CheckStatus transport failure", func(t *testing.T) {
		httpmock.Reset()
		mockBeadAuth(baseURL)
		httpmock.RegisterResponder("GET", baseURL+"/api/payments/trk_123/status",
			httpmock.NewErrorResponder(errors.New("connection reset")),
		)

		_, err := service.CheckStatus(context.Background(), testBeadCreds, "trk_123")
		assert.Error(t, err)

		var gatewayErr *types.GatewayError
		assert.True(t, errors.As(err, &gatewayErr))
		assert.Equal(t, types.GatewayErrorTransport, gatewayErr.Kind)
	})
}
