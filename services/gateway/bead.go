package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	fastshot "github.com/opus-domini/fast-shot"
	"github.com/shopspring/decimal"

	"github.com/payloop/billing/config"
	"github.com/payloop/billing/types"
	u "github.com/payloop/billing/utils"
)

// Crypto payment status codes reported by the provider
const (
	CryptoStatusCreated    = "created"
	CryptoStatusProcessing = "processing"
	CryptoStatusCompleted  = "completed"
	CryptoStatusExpired    = "expired"
	CryptoStatusFailed     = "failed"
)

// BeadService wraps the Bead crypto payment provider API. Every call
// authenticates with the merchant's own credentials; tokens are short-lived
// and never cached across requests.
type BeadService struct{}

// NewBeadService creates a new instance of BeadService
func NewBeadService() *BeadService {
	return &BeadService{}
}

// Authenticate exchanges the merchant's terminal credentials for a bearer token
func (s *BeadService) Authenticate(ctx context.Context, creds *types.BeadCredentials) (string, error) {
	conf := config.GatewayConfig()

	payload := map[string]interface{}{
		"merchantId": creds.MerchantID,
		"terminalId": creds.TerminalID,
		"username":   creds.Username,
		"password":   creds.Password,
	}

	res, err := fastshot.NewClient(conf.BeadAPIURL).
		Config().SetTimeout(conf.BeadTimeout).
		Header().Add("Content-Type", "application/json").
		Build().POST("/api/auth").
		Context().Set(ctx).
		Body().AsJSON(payload).
		Send()
	if err != nil {
		return "", &types.GatewayError{Kind: types.GatewayErrorTransport, Err: err}
	}

	if res.RawResponse.StatusCode == http.StatusForbidden || res.RawResponse.StatusCode == http.StatusUnauthorized {
		return "", &types.GatewayError{
			Kind:    types.GatewayErrorPermission,
			Message: fmt.Sprintf("crypto provider rejected credentials for terminal %s", creds.TerminalID),
		}
	}

	data, err := u.ParseJSONResponse(res.RawResponse)
	if err != nil {
		return "", &types.GatewayError{Kind: types.GatewayErrorTransport, Err: err}
	}

	token, ok := data["accessToken"].(string)
	if !ok || token == "" {
		return "", &types.MalformedInputError{Reason: "crypto provider auth response missing accessToken"}
	}

	return token, nil
}

// CreatePayment registers a new crypto payment intent with the provider and
// returns its tracking id together with the hosted payment page URLs.
func (s *BeadService) CreatePayment(ctx context.Context, creds *types.BeadCredentials, amount decimal.Decimal, currency, reference, description string) (*types.CryptoPaymentCreated, error) {
	conf := config.GatewayConfig()

	token, err := s.Authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"merchantId":        creds.MerchantID,
		"terminalId":        creds.TerminalID,
		// Serialized from the decimal string, never through a float
		"requestedAmount":   json.Number(amount.StringFixed(2)),
		"requestedCurrency": currency,
		"reference":         reference,
		"description":       description,
	}

	res, err := fastshot.NewClient(conf.BeadAPIURL).
		Config().SetTimeout(conf.BeadTimeout).
		Auth().BearerToken(token).
		Header().Add("Content-Type", "application/json").
		Build().POST("/api/payments/crypto").
		Context().Set(ctx).
		Body().AsJSON(payload).
		Send()
	if err != nil {
		return nil, &types.GatewayError{Kind: types.GatewayErrorTransport, Err: err}
	}

	if res.RawResponse.StatusCode == http.StatusForbidden {
		return nil, &types.GatewayError{
			Kind:    types.GatewayErrorPermission,
			Message: fmt.Sprintf("crypto provider denied payment creation for terminal %s", creds.TerminalID),
		}
	}

	data, err := u.ParseJSONResponse(res.RawResponse)
	if err != nil {
		return nil, &types.GatewayError{Kind: types.GatewayErrorTransport, Err: err}
	}

	trackingID, ok := data["trackingId"].(string)
	if !ok || trackingID == "" {
		return nil, &types.MalformedInputError{Reason: "crypto provider payment response missing trackingId"}
	}

	created := &types.CryptoPaymentCreated{TrackingID: trackingID}
	if urls, ok := data["paymentUrls"].([]interface{}); ok {
		for _, entry := range urls {
			if s, ok := entry.(string); ok {
				created.PaymentURLs = append(created.PaymentURLs, s)
			}
		}
	}

	return created, nil
}

// CheckStatus fetches the authoritative state of a crypto payment. Callback
// bodies are never trusted on their own; reconciliation always confirms the
// status through this call first.
func (s *BeadService) CheckStatus(ctx context.Context, creds *types.BeadCredentials, trackingID string) (*types.CryptoPaymentStatus, error) {
	conf := config.GatewayConfig()

	token, err := s.Authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}

	res, err := fastshot.NewClient(conf.BeadAPIURL).
		Config().SetTimeout(conf.BeadTimeout).
		Auth().BearerToken(token).
		Build().GET(fmt.Sprintf("/api/payments/%s/status", trackingID)).
		Context().Set(ctx).
		Send()
	if err != nil {
		return nil, &types.GatewayError{Kind: types.GatewayErrorTransport, Err: err}
	}

	if res.RawResponse.StatusCode == http.StatusForbidden {
		return nil, &types.GatewayError{
			Kind:    types.GatewayErrorPermission,
			Message: fmt.Sprintf("crypto provider denied status lookup for terminal %s", creds.TerminalID),
		}
	}

	data, err := u.ParseJSONResponse(res.RawResponse)
	if err != nil {
		return nil, &types.GatewayError{Kind: types.GatewayErrorTransport, Err: err}
	}

	statusCode, ok := data["statusCode"].(string)
	if !ok || statusCode == "" {
		return nil, &types.MalformedInputError{Reason: "crypto provider status response missing statusCode"}
	}

	status := &types.CryptoPaymentStatus{StatusCode: statusCode}
	if txID, ok := data["transactionId"].(string); ok {
		status.TransactionID = txID
	}

	return status, nil
}
