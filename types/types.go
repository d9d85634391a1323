package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response is the reusable API response body shape
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorData is the reusable field-level validation error shape
type ErrorData struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CardWebhookPayload is the event envelope delivered by the card processor
type CardWebhookPayload struct {
	EventID string          `json:"event_id"`
	Type    string          `json:"type"`
	Data    CardWebhookData `json:"data"`
}

// CardWebhookData carries the transaction details of a card rail event
type CardWebhookData struct {
	OrderID       string `json:"orderid"`
	TransactionID string `json:"transactionid"`
	ResponseCode  string `json:"response_code"`
	Response      string `json:"response"`
	ResponseText  string `json:"responsetext"`
}

// CryptoWebhookPayload is the callback body delivered by the crypto provider
type CryptoWebhookPayload struct {
	TrackingID string `json:"trackingId"`
	Status     string `json:"status"`
}

// PayCardRequest is the customer-facing card payment payload
type PayCardRequest struct {
	PaymentToken string `json:"payment_token" binding:"required"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Address1     string `json:"address1"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
}

// CardCredentials holds a merchant's decrypted card processor credentials.
// Instances live only for the duration of a single outbound call.
type CardCredentials struct {
	PublicKey     string
	SecurityKey   string
	WebhookSecret []byte
}

// BeadCredentials holds a merchant's decrypted crypto provider credential bundle
type BeadCredentials struct {
	MerchantID string
	TerminalID string
	Username   string
	Password   string
}

// CardSaleRequest is the outbound sale submission to the card processor
type CardSaleRequest struct {
	PaymentToken string
	Amount       decimal.Decimal
	Tax          decimal.Decimal
	OrderID      string
	CustomerID   string
	Currency     string
	FirstName    string
	LastName     string
	Address1     string
	City         string
	State        string
	Zip          string
}

// CardSaleResult is the parsed approval response of a card sale
type CardSaleResult struct {
	TransactionID string
	AuthCode      string
	ResponseCode  string
	ResponseText  string
}

// CryptoPaymentCreated is the provider's response to a payment creation
type CryptoPaymentCreated struct {
	TrackingID  string   `json:"trackingId"`
	PaymentURLs []string `json:"paymentUrls"`
}

// CryptoPaymentStatus is the provider's response to a status check
type CryptoPaymentStatus struct {
	StatusCode    string `json:"statusCode"`
	TransactionID string `json:"transactionId"`
}

// NotifyResult reports which post-payment notifications were delivered
type NotifyResult struct {
	CustomerReceiptSent      bool `json:"customerReceiptSent"`
	MerchantNotificationSent bool `json:"merchantNotificationSent"`
}

// SendEmailPayload is the body of an email send request
type SendEmailPayload struct {
	FromAddress string
	ToAddress   string
	Subject     string
	Body        string
	HTMLBody    string
	DynamicData map[string]interface{}
}

// SendEmailResponse is the response from an email provider
type SendEmailResponse struct {
	Id       string `json:"id"`
	Response string `json:"response"`
}

// InvoiceStatusResponse is the customer-facing invoice status shape
type InvoiceStatusResponse struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	Status        string          `json:"status"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	PaymentDate   *time.Time      `json:"paymentDate,omitempty"`
}

// PaidEvent is the live broadcast published when an invoice becomes paid
type PaidEvent struct {
	InvoiceID     uuid.UUID       `json:"invoiceId"`
	MerchantID    uuid.UUID       `json:"merchantId"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	PaidAt        time.Time       `json:"paidAt"`
}
