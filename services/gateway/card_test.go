package gateway

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/payloop/billing/config"
	"github.com/payloop/billing/types"
	u "github.com/payloop/billing/utils"
)

var testCardCreds = &types.CardCredentials{
	PublicKey:   "pub_test_key",
	SecurityKey: "sec_test_key",
}

func testSaleRequest() types.CardSaleRequest {
	return types.CardSaleRequest{
		PaymentToken: "tok_abc",
		Amount:       decimal.NewFromFloat(105.00),
		Tax:          decimal.NewFromFloat(5.00),
		OrderID:      "INV-77-abc",
		CustomerID:   "alice@test.com",
		Currency:     "USD",
		FirstName:    "Alice",
		LastName:     "Customer",
	}
}

func TestSubmitSale(t *testing.T) {
	httpmock.ActivateNonDefault(u.GetHTTPClient())
	defer httpmock.DeactivateAndReset()

	service := NewCardService()
	apiURL := config.GatewayConfig().CardAPIURL

	t.Run("approval", func(t *testing.T) {
		httpmock.RegisterResponder("POST", apiURL,
			func(r *http.Request) (*http.Response, error) {
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "sale", r.PostForm.Get("type"))
				assert.Equal(t, "sec_test_key", r.PostForm.Get("security_key"))
				assert.Equal(t, "tok_abc", r.PostForm.Get("payment_token"))
				assert.Equal(t, "105.00", r.PostForm.Get("amount"))
				assert.Equal(t, "INV-77-abc", r.PostForm.Get("orderid"))

				return httpmock.NewStringResponse(200,
					"response=1&transactionid=T1&authcode=A1&response_code=100&responsetext=SUCCESS"), nil
			},
		)

		result, err := service.SubmitSale(context.Background(), testCardCreds, testSaleRequest())
		assert.NoError(t, err)
		assert.Equal(t, "T1", result.TransactionID)
		assert.Equal(t, "A1", result.AuthCode)
		assert.Equal(t, "100", result.ResponseCode)
	})

	t.Run("decline is distinct from transport failure", func(t *testing.T) {
		httpmock.RegisterResponder("POST", apiURL,
			httpmock.NewStringResponder(200,
				"response=2&transactionid=T2&response_code=200&responsetext=DECLINE"),
		)

		result, err := service.SubmitSale(context.Background(), testCardCreds, testSaleRequest())
		assert.Error(t, err)

		var gatewayErr *types.GatewayError
		assert.True(t, errors.As(err, &gatewayErr))
		assert.Equal(t, types.GatewayErrorDeclined, gatewayErr.Kind)
		assert.Equal(t, "DECLINE", gatewayErr.Message)

		// The parsed result still carries the processor's reason text
		assert.Equal(t, "DECLINE", result.ResponseText)
	})

	t.Run("transport failure", func(t *testing.T) {
		httpmock.RegisterResponder("POST", apiURL,
			httpmock.NewErrorResponder(errors.New("connection refused")),
		)

		_, err := service.SubmitSale(context.Background(), testCardCreds, testSaleRequest())
		assert.Error(t, err)

		var gatewayErr *types.GatewayError
		assert.True(t, errors.As(err, &gatewayErr))
		assert.Equal(t, types.GatewayErrorTransport, gatewayErr.Kind)
	})

	t.Run("response missing approval field", func(t *testing.T) {
		httpmock.RegisterResponder("POST", apiURL,
			httpmock.NewStringResponder(200, "responsetext=weird"),
		)

		_, err := service.SubmitSale(context.Background(), testCardCreds, testSaleRequest())
		assert.Error(t, err)

		var malformedErr *types.MalformedInputError
		assert.True(t, errors.As(err, &malformedErr))
	})
}
