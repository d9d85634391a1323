package gateway

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/payloop/billing/config"
	"github.com/payloop/billing/types"
	u "github.com/payloop/billing/utils"
	"github.com/payloop/billing/utils/logger"
)

// approvedResponse is the card processor's approval indicator
const approvedResponse = "1"

// CardService wraps the card processor's transaction API. Credentials are
// injected per call and never retained.
type CardService struct{}

// NewCardService creates a new instance of CardService
func NewCardService() *CardService {
	return &CardService{}
}

var (
	insecureClient     *http.Client
	insecureClientOnce sync.Once
)

// httpClient returns the pooled client, or a TLS-skipping one when the
// explicitly named local-dev override is set.
func (s *CardService) httpClient() *http.Client {
	conf := config.GatewayConfig()
	if !conf.CardInsecureSkipTLSVerify {
		return u.GetHTTPClient()
	}

	insecureClientOnce.Do(func() {
		logger.Warnf("CARD_INSECURE_SKIP_TLS_VERIFY is set; outbound card gateway calls skip certificate validation")
		insecureClient = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
			Timeout: conf.CardTimeout,
		}
	})
	return insecureClient
}

// SubmitSale submits a sale transaction for a tokenized card. A business
// decline and a transport failure return distinct error kinds: transport
// failures may be retried by the customer, declines are terminal for the
// attempt and carry the processor's reason text.
func (s *CardService) SubmitSale(ctx context.Context, creds *types.CardCredentials, req types.CardSaleRequest) (*types.CardSaleResult, error) {
	conf := config.GatewayConfig()

	form := url.Values{}
	form.Set("security_key", creds.SecurityKey)
	form.Set("type", "sale")
	form.Set("payment_token", req.PaymentToken)
	form.Set("amount", req.Amount.StringFixed(2))
	form.Set("tax", req.Tax.StringFixed(2))
	form.Set("orderid", req.OrderID)
	form.Set("customer_id", req.CustomerID)
	form.Set("currency", req.Currency)
	form.Set("first_name", req.FirstName)
	form.Set("last_name", req.LastName)
	form.Set("address1", req.Address1)
	form.Set("city", req.City)
	form.Set("state", req.State)
	form.Set("zip", req.Zip)

	ctx, cancel := context.WithTimeout(ctx, conf.CardTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, conf.CardAPIURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &types.GatewayError{Kind: types.GatewayErrorTransport, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := s.httpClient().Do(httpReq)
	if err != nil {
		return nil, &types.GatewayError{Kind: types.GatewayErrorTransport, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &types.GatewayError{Kind: types.GatewayErrorTransport, Err: err}
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, &types.MalformedInputError{Reason: "unparseable card gateway response"}
	}

	if values.Get("response") == "" {
		return nil, &types.MalformedInputError{Reason: "card gateway response missing response field"}
	}

	result := &types.CardSaleResult{
		TransactionID: values.Get("transactionid"),
		AuthCode:      values.Get("authcode"),
		ResponseCode:  values.Get("response_code"),
		ResponseText:  values.Get("responsetext"),
	}

	if values.Get("response") != approvedResponse {
		return result, &types.GatewayError{
			Kind:    types.GatewayErrorDeclined,
			Message: result.ResponseText,
		}
	}

	return result, nil
}
