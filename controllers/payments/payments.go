package payments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/payloop/billing/ent/invoice"
	"github.com/payloop/billing/services/gateway"
	"github.com/payloop/billing/services/notifications"
	"github.com/payloop/billing/services/reconciliation"
	"github.com/payloop/billing/storage"
	"github.com/payloop/billing/types"
	u "github.com/payloop/billing/utils"
	"github.com/payloop/billing/utils/logger"
)

// Controller handles customer-facing payment endpoints reached through an
// invoice's payment token
type Controller struct {
	cardService         *gateway.CardService
	beadService         *gateway.BeadService
	notificationService *notifications.NotificationService
}

// NewController creates a new instance of Controller with injected services
func NewController() *Controller {
	return &Controller{
		cardService:         gateway.NewCardService(),
		beadService:         gateway.NewBeadService(),
		notificationService: notifications.NewNotificationService(nil),
	}
}

// GetInvoiceByToken controller fetches the payable view of an invoice by its payment token
func (ctrl *Controller) GetInvoiceByToken(ctx *gin.Context) {
	inv, err := storage.Client.Invoice.
		Query().
		Where(invoice.PaymentTokenEQ(ctx.Param("payment_token"))).
		Only(ctx)
	if err != nil {
		u.APIResponse(ctx, http.StatusNotFound, "error", "Invoice not found", nil)
		return
	}

	u.APIResponse(ctx, http.StatusOK, "success", "OK", &types.InvoiceStatusResponse{
		InvoiceNumber: inv.InvoiceNumber,
		Status:        string(inv.Status),
		Total:         inv.Total,
		PaymentMethod: string(inv.PaymentMethod),
		PaymentDate:   inv.PaymentDate,
	})
}

// PayWithCard controller submits a tokenized card sale for an invoice.
// Transport failures and business declines produce distinct messages: the
// first invites a retry, the second asks the customer to check their details.
func (ctrl *Controller) PayWithCard(ctx *gin.Context) {
	var payload types.PayCardRequest
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error",
			"Failed to validate payload", u.GetErrorData(err))
		return
	}

	inv, err := storage.Client.Invoice.
		Query().
		Where(invoice.PaymentTokenEQ(ctx.Param("payment_token"))).
		WithOwner().
		Only(ctx)
	if err != nil {
		u.APIResponse(ctx, http.StatusNotFound, "error", "Invoice not found", nil)
		return
	}

	if inv.Status == invoice.StatusPaid {
		u.APIResponse(ctx, http.StatusConflict, "error", "Invoice has already been paid", nil)
		return
	}
	if inv.Status == invoice.StatusClosed || inv.Status == invoice.StatusVoided {
		u.APIResponse(ctx, http.StatusConflict, "error", "Invoice is no longer payable", nil)
		return
	}

	creds, err := gateway.LoadCardCredentials(ctx, storage.Client, inv.Edges.Owner.ID)
	if err != nil {
		logger.Errorf("Failed to load card credentials for invoice %s: %v", inv.ID, err)
		u.APIResponse(ctx, http.StatusInternalServerError, "error", "Card payments are not available for this invoice", nil)
		return
	}

	result, err := ctrl.cardService.SubmitSale(ctx, creds, types.CardSaleRequest{
		PaymentToken: payload.PaymentToken,
		Amount:       inv.Total,
		Tax:          inv.TaxAmount,
		OrderID:      inv.GatewayInvoiceID,
		CustomerID:   inv.CustomerEmail,
		Currency:     "USD",
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Address1:     payload.Address1,
		City:         payload.City,
		State:        payload.State,
		Zip:          payload.Zip,
	})
	if err != nil {
		var gatewayErr *types.GatewayError
		if errors.As(err, &gatewayErr) && gatewayErr.Kind == types.GatewayErrorDeclined {
			logger.WithFields(logger.Fields{
				"InvoiceID":    inv.ID,
				"ResponseText": result.ResponseText,
				"ResponseCode": result.ResponseCode,
			}).Infof("Card sale declined")
			u.APIResponse(ctx, http.StatusPaymentRequired, "error",
				"Payment was rejected, please check your card details", gin.H{
					"reason": result.ResponseText,
				})
			return
		}

		logger.WithFields(logger.Fields{
			"InvoiceID": inv.ID,
			"Error":     fmt.Sprintf("%v", err),
		}).Errorf("Card sale failed in transport")
		u.APIResponse(ctx, http.StatusBadGateway, "error",
			"Could not reach the payment processor, please try again", nil)
		return
	}

	transition, err := reconciliation.Apply(ctx, storage.Client, inv.ID, reconciliation.EventSaleSucceeded, reconciliation.PaymentRef{
		Method:        invoice.PaymentMethodCreditCard,
		TransactionID: result.TransactionID,
	})
	if err != nil {
		// The charge went through but the status write failed. Surface a
		// retryable error; the processor's webhook will also reconcile it.
		logger.WithFields(logger.Fields{
			"InvoiceID":     inv.ID,
			"TransactionID": result.TransactionID,
			"Error":         fmt.Sprintf("%v", err),
		}).Errorf("Failed to record approved card sale")
		u.APIResponse(ctx, http.StatusInternalServerError, "error",
			"Payment was approved but could not be recorded, please contact support", nil)
		return
	}

	ctrl.notifyIfNewlyPaid(inv.ID, transition)

	u.APIResponse(ctx, http.StatusOK, "success", "Payment approved", gin.H{
		"transactionId": result.TransactionID,
		"authCode":      result.AuthCode,
	})
}

// CreateCryptoPayment controller starts a crypto payment for an invoice. When
// the invoice already carries a tracking id, the existing payment's status is
// re-queried instead of creating a duplicate payment request.
func (ctrl *Controller) CreateCryptoPayment(ctx *gin.Context) {
	inv, err := storage.Client.Invoice.
		Query().
		Where(invoice.PaymentTokenEQ(ctx.Param("payment_token"))).
		WithOwner().
		Only(ctx)
	if err != nil {
		u.APIResponse(ctx, http.StatusNotFound, "error", "Invoice not found", nil)
		return
	}

	if inv.Status == invoice.StatusPaid {
		u.APIResponse(ctx, http.StatusConflict, "error", "Invoice has already been paid", nil)
		return
	}
	if inv.Status == invoice.StatusClosed || inv.Status == invoice.StatusVoided {
		u.APIResponse(ctx, http.StatusConflict, "error", "Invoice is no longer payable", nil)
		return
	}

	creds, err := gateway.LoadBeadCredentials(ctx, storage.Client, inv.Edges.Owner.ID)
	if err != nil {
		logger.Errorf("Failed to load crypto credentials for invoice %s: %v", inv.ID, err)
		u.APIResponse(ctx, http.StatusInternalServerError, "error", "Crypto payments are not available for this invoice", nil)
		return
	}

	if inv.BeadPaymentID != "" {
		status, err := ctrl.beadService.CheckStatus(ctx, creds, inv.BeadPaymentID)
		if err != nil {
			logger.Errorf("Failed to re-query existing crypto payment %s: %v", inv.BeadPaymentID, err)
			u.APIResponse(ctx, http.StatusBadGateway, "error",
				"Could not reach the payment provider, please try again", nil)
			return
		}

		if status.StatusCode == gateway.CryptoStatusCompleted {
			transition, err := reconciliation.Apply(ctx, storage.Client, inv.ID, reconciliation.EventCryptoCompleted, reconciliation.PaymentRef{
				Method:        invoice.PaymentMethodCrypto,
				TransactionID: status.TransactionID,
				TrackingID:    inv.BeadPaymentID,
			})
			if err != nil {
				u.APIResponse(ctx, http.StatusInternalServerError, "error",
					"Failed to record payment, please retry", nil)
				return
			}
			ctrl.notifyIfNewlyPaid(inv.ID, transition)
		}

		u.APIResponse(ctx, http.StatusOK, "success", "Existing payment found", gin.H{
			"trackingId": inv.BeadPaymentID,
			"statusCode": status.StatusCode,
		})
		return
	}

	created, err := ctrl.beadService.CreatePayment(
		ctx, creds, inv.Total, "USD", inv.GatewayInvoiceID,
		fmt.Sprintf("Invoice %s", inv.InvoiceNumber),
	)
	if err != nil {
		logger.WithFields(logger.Fields{
			"InvoiceID": inv.ID,
			"Error":     fmt.Sprintf("%v", err),
		}).Errorf("Failed to create crypto payment")
		u.APIResponse(ctx, http.StatusBadGateway, "error",
			"Could not create the crypto payment, please try again", nil)
		return
	}

	if err := storage.Client.Invoice.
		UpdateOneID(inv.ID).
		SetBeadPaymentID(created.TrackingID).
		Exec(ctx); err != nil {
		logger.Errorf("Failed to record tracking id %s on invoice %s: %v", created.TrackingID, inv.ID, err)
		u.APIResponse(ctx, http.StatusInternalServerError, "error",
			"Failed to record the payment request, please retry", nil)
		return
	}

	u.APIResponse(ctx, http.StatusOK, "success", "Crypto payment created", gin.H{
		"trackingId":  created.TrackingID,
		"paymentUrls": created.PaymentURLs,
	})
}

// VerifyCryptoPayment controller re-checks a pending crypto payment on
// customer demand. The confirmed status funnels through the same transition
// path as webhooks and the background poll.
func (ctrl *Controller) VerifyCryptoPayment(ctx *gin.Context) {
	inv, err := storage.Client.Invoice.
		Query().
		Where(invoice.PaymentTokenEQ(ctx.Param("payment_token"))).
		WithOwner().
		Only(ctx)
	if err != nil {
		u.APIResponse(ctx, http.StatusNotFound, "error", "Invoice not found", nil)
		return
	}

	if inv.BeadPaymentID == "" {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "No crypto payment exists for this invoice", nil)
		return
	}

	creds, err := gateway.LoadBeadCredentials(ctx, storage.Client, inv.Edges.Owner.ID)
	if err != nil {
		u.APIResponse(ctx, http.StatusInternalServerError, "error", "Crypto payments are not available for this invoice", nil)
		return
	}

	status, err := ctrl.beadService.CheckStatus(ctx, creds, inv.BeadPaymentID)
	if err != nil {
		logger.Errorf("Failed to verify crypto payment %s: %v", inv.BeadPaymentID, err)
		u.APIResponse(ctx, http.StatusBadGateway, "error",
			"Could not reach the payment provider, please try again", nil)
		return
	}

	if status.StatusCode == gateway.CryptoStatusCompleted {
		transition, err := reconciliation.Apply(ctx, storage.Client, inv.ID, reconciliation.EventCryptoCompleted, reconciliation.PaymentRef{
			Method:        invoice.PaymentMethodCrypto,
			TransactionID: status.TransactionID,
			TrackingID:    inv.BeadPaymentID,
		})
		if err != nil {
			u.APIResponse(ctx, http.StatusInternalServerError, "error",
				"Failed to record payment, please retry", nil)
			return
		}
		ctrl.notifyIfNewlyPaid(inv.ID, transition)
	}

	u.APIResponse(ctx, http.StatusOK, "success", "OK", gin.H{
		"trackingId": inv.BeadPaymentID,
		"statusCode": status.StatusCode,
	})
}

// notifyIfNewlyPaid fires post-payment notifications off the request path
func (ctrl *Controller) notifyIfNewlyPaid(invoiceID uuid.UUID, transition reconciliation.Transition) {
	if !transition.ShouldNotify || transition.IsNoOp {
		return
	}

	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		paidInv, err := storage.Client.Invoice.
			Query().
			Where(invoice.IDEQ(invoiceID)).
			WithOwner().
			Only(notifyCtx)
		if err != nil {
			logger.Errorf("Failed to load invoice %s for notifications: %v", invoiceID, err)
			return
		}

		ctrl.notificationService.NotifyPaid(notifyCtx, paidInv)
	}()
}
