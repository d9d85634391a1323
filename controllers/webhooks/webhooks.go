package webhooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/payloop/billing/ent/invoice"
	"github.com/payloop/billing/ent/user"
	"github.com/payloop/billing/services/audit"
	"github.com/payloop/billing/services/gateway"
	"github.com/payloop/billing/services/notifications"
	"github.com/payloop/billing/services/reconciliation"
	"github.com/payloop/billing/storage"
	"github.com/payloop/billing/types"
	u "github.com/payloop/billing/utils"
	"github.com/payloop/billing/utils/logger"
	"github.com/payloop/billing/utils/webhooksig"
)

// Card rail event types delivered by the processor
const (
	cardEventSale   = "transaction.sale"
	cardEventRefund = "transaction.refund"
	cardEventVoid   = "transaction.void"
)

// Controller handles inbound payment rail callbacks
type Controller struct {
	beadService         *gateway.BeadService
	notificationService *notifications.NotificationService
	auditLog            *audit.Log
}

// NewController creates a new instance of Controller with injected services
func NewController(auditLog *audit.Log) *Controller {
	return &Controller{
		beadService:         gateway.NewBeadService(),
		notificationService: notifications.NewNotificationService(nil),
		auditLog:            auditLog,
	}
}

// CardWebhook handles signed callbacks from the card processor. The raw body
// is verified against the merchant's webhook secret before any parsing, and
// every outcome, including rejections, leaves an audit entry.
func (ctrl *Controller) CardWebhook(ctx *gin.Context) {
	merchantID, err := uuid.Parse(ctx.Param("merchant_id"))
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Invalid merchant id", nil)
		return
	}

	rawBody, err := ctx.GetRawData()
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Failed to read request body", nil)
		return
	}

	entry := audit.Entry{
		Rail:       "card",
		MerchantID: &merchantID,
		Payload:    json.RawMessage(rawBody),
	}
	ctrl.recordReceived(ctx, entry)

	creds, err := gateway.LoadCardCredentials(ctx, storage.Client, merchantID)
	if err != nil || len(creds.WebhookSecret) == 0 {
		logger.WithFields(logger.Fields{
			"MerchantID": merchantID,
		}).Errorf("Card webhook rejected: no webhook secret on file: %v", err)
		entry.Status = audit.StatusError
		entry.Message = "no webhook secret configured for merchant"
		ctrl.auditLog.Record(ctx, entry)
		u.APIResponse(ctx, http.StatusUnauthorized, "error", "Unable to verify webhook signature", nil)
		return
	}

	if _, err := webhooksig.Verify(rawBody, ctx.GetHeader("Webhook-Signature"), creds.WebhookSecret); err != nil {
		logger.WithFields(logger.Fields{
			"MerchantID": merchantID,
			"Error":      fmt.Sprintf("%v", err),
		}).Errorf("Card webhook rejected: signature verification failed")
		entry.Status = audit.StatusError
		entry.Message = fmt.Sprintf("signature verification failed: %v", err)
		ctrl.auditLog.Record(ctx, entry)
		u.APIResponse(ctx, http.StatusUnauthorized, "error", "Invalid webhook signature", nil)
		return
	}

	var payload types.CardWebhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		entry.Status = audit.StatusError
		entry.Message = fmt.Sprintf("unparseable payload: %v", err)
		ctrl.auditLog.Record(ctx, entry)
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Failed to parse webhook payload", nil)
		return
	}

	entry.EventID = payload.EventID
	entry.EventType = payload.Type

	var event reconciliation.Event
	switch payload.Type {
	case cardEventSale:
		if payload.Data.Response == "1" {
			event = reconciliation.EventSaleSucceeded
		} else {
			event = reconciliation.EventSaleFailed
		}
	case cardEventRefund:
		event = reconciliation.EventRefunded
	case cardEventVoid:
		event = reconciliation.EventVoided
	default:
		// Unknown event types must never look like failures to the sender,
		// or it will retry them forever.
		logger.Infof("Ignoring unrecognized card webhook type %q for merchant %s", payload.Type, merchantID)
		entry.Status = audit.StatusProcessed
		entry.Message = fmt.Sprintf("ignored unrecognized event type %q", payload.Type)
		ctrl.auditLog.Record(ctx, entry)
		u.APIResponse(ctx, http.StatusOK, "success", "Event type not handled", nil)
		return
	}

	if payload.Data.OrderID == "" {
		entry.Status = audit.StatusError
		entry.Message = "payload missing orderid"
		ctrl.auditLog.Record(ctx, entry)
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Webhook payload missing order reference", nil)
		return
	}

	inv, err := storage.Client.Invoice.
		Query().
		Where(
			invoice.GatewayInvoiceIDEQ(payload.Data.OrderID),
			invoice.HasOwnerWith(user.IDEQ(merchantID)),
		).
		Only(ctx)
	if err != nil {
		// Durably logged but unresolvable. Answering with an error status
		// would only trigger retry storms for an event we can never apply.
		logger.WithFields(logger.Fields{
			"MerchantID": merchantID,
			"OrderID":    payload.Data.OrderID,
		}).Errorf("Card webhook could not be matched to an invoice")
		entry.Status = audit.StatusError
		entry.Message = (&types.ResolutionError{Reference: payload.Data.OrderID}).Error()
		ctrl.auditLog.Record(ctx, entry)
		u.APIResponse(ctx, http.StatusOK, "error", "Invoice not found", nil)
		return
	}

	entry.InvoiceID = &inv.ID

	transition, err := reconciliation.Apply(ctx, storage.Client, inv.ID, event, reconciliation.PaymentRef{
		Method:        invoice.PaymentMethodCreditCard,
		TransactionID: payload.Data.TransactionID,
	})
	if err != nil {
		logger.WithFields(logger.Fields{
			"InvoiceID": inv.ID,
			"Event":     event,
			"Error":     fmt.Sprintf("%v", err),
		}).Errorf("Failed to apply card webhook event")
		entry.Status = audit.StatusError
		entry.Message = fmt.Sprintf("apply failed: %v", err)
		ctrl.auditLog.Record(ctx, entry)
		u.APIResponse(ctx, http.StatusInternalServerError, "error", "Failed to process webhook, please retry", nil)
		return
	}

	ctrl.notifyIfNewlyPaid(inv.ID, transition)

	entry.Status = audit.StatusProcessed
	entry.Message = transitionMessage(transition)
	ctrl.auditLog.Record(ctx, entry)
	u.APIResponse(ctx, http.StatusOK, "success", "Webhook processed", nil)
}

// CryptoWebhook handles callbacks from the crypto provider. The body carries
// no signature, so it is treated as a hint only: the invoice is looked up by
// tracking id and the status is confirmed through an authenticated status
// check before any transition is applied.
func (ctrl *Controller) CryptoWebhook(ctx *gin.Context) {
	rawBody, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to read request body"})
		return
	}

	entry := audit.Entry{
		Rail:    "crypto",
		Payload: json.RawMessage(rawBody),
	}
	ctrl.recordReceived(ctx, entry)

	var payload types.CryptoWebhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil || payload.TrackingID == "" {
		entry.Status = audit.StatusError
		entry.Message = "payload missing trackingId"
		entry.EventType = "crypto.callback"
		ctrl.auditLog.Record(ctx, entry)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing trackingId"})
		return
	}

	entry.EventType = "crypto.callback"

	inv, err := storage.Client.Invoice.
		Query().
		Where(invoice.BeadPaymentIDEQ(payload.TrackingID)).
		WithOwner().
		Only(ctx)
	if err != nil {
		logger.WithFields(logger.Fields{
			"TrackingID": payload.TrackingID,
		}).Errorf("Crypto webhook could not be matched to an invoice")
		entry.Status = audit.StatusError
		entry.Message = (&types.ResolutionError{Reference: payload.TrackingID}).Error()
		ctrl.auditLog.Record(ctx, entry)
		ctx.JSON(http.StatusOK, gin.H{"success": false, "message": "Invoice not found"})
		return
	}

	owner := inv.Edges.Owner
	entry.InvoiceID = &inv.ID
	entry.MerchantID = &owner.ID

	status, err := ctrl.confirmCryptoStatus(ctx, owner.ID, payload.TrackingID)
	if err != nil {
		logger.WithFields(logger.Fields{
			"InvoiceID":  inv.ID,
			"TrackingID": payload.TrackingID,
			"Error":      fmt.Sprintf("%v", err),
		}).Errorf("Failed to confirm crypto payment status")
		entry.Status = audit.StatusError
		entry.Message = fmt.Sprintf("status confirmation failed: %v", err)
		ctrl.auditLog.Record(ctx, entry)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to confirm payment status, please retry"})
		return
	}

	if status.StatusCode != gateway.CryptoStatusCompleted {
		entry.Status = audit.StatusProcessed
		entry.Message = fmt.Sprintf("payment not completed, provider status %q", status.StatusCode)
		ctrl.auditLog.Record(ctx, entry)
		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Payment not yet completed",
			"payment": gin.H{"trackingId": payload.TrackingID, "statusCode": status.StatusCode},
			"invoice": gin.H{"id": inv.ID, "amount": inv.Total},
		})
		return
	}

	transition, err := reconciliation.Apply(ctx, storage.Client, inv.ID, reconciliation.EventCryptoCompleted, reconciliation.PaymentRef{
		Method:        invoice.PaymentMethodCrypto,
		TransactionID: status.TransactionID,
		TrackingID:    payload.TrackingID,
	})
	if err != nil {
		entry.Status = audit.StatusError
		entry.Message = fmt.Sprintf("apply failed: %v", err)
		ctrl.auditLog.Record(ctx, entry)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to process payment, please retry"})
		return
	}

	ctrl.notifyIfNewlyPaid(inv.ID, transition)

	entry.Status = audit.StatusProcessed
	entry.Message = transitionMessage(transition)
	ctrl.auditLog.Record(ctx, entry)
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment processed",
		"payment": gin.H{"trackingId": payload.TrackingID, "statusCode": status.StatusCode},
		"invoice": gin.H{"id": inv.ID, "amount": inv.Total},
	})
}

// recordReceived appends the arrival record before any verification or
// resolution has run. The log is append-only, so the outcome lands as a
// second entry once the handler finishes.
func (ctrl *Controller) recordReceived(ctx context.Context, entry audit.Entry) {
	entry.Status = audit.StatusReceived
	ctrl.auditLog.Record(ctx, entry)
}

// confirmCryptoStatus re-queries the provider with the merchant's own
// credentials. Unsigned callback bodies never drive a transition directly.
func (ctrl *Controller) confirmCryptoStatus(ctx context.Context, merchantID uuid.UUID, trackingID string) (*types.CryptoPaymentStatus, error) {
	creds, err := gateway.LoadBeadCredentials(ctx, storage.Client, merchantID)
	if err != nil {
		return nil, err
	}
	return ctrl.beadService.CheckStatus(ctx, creds, trackingID)
}

// notifyIfNewlyPaid fires post-payment notifications off the request path.
// The invoice is already durably paid; notification failures only log.
func (ctrl *Controller) notifyIfNewlyPaid(invoiceID uuid.UUID, transition reconciliation.Transition) {
	if !transition.ShouldNotify || transition.IsNoOp {
		return
	}

	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		inv, err := storage.Client.Invoice.
			Query().
			Where(invoice.IDEQ(invoiceID)).
			WithOwner().
			Only(notifyCtx)
		if err != nil {
			logger.Errorf("Failed to load invoice %s for notifications: %v", invoiceID, err)
			return
		}

		ctrl.notificationService.NotifyPaid(notifyCtx, inv)
	}()
}

func transitionMessage(transition reconciliation.Transition) string {
	if transition.IsNoOp {
		return fmt.Sprintf("no-op: %s", transition.Reason)
	}
	return fmt.Sprintf("invoice transitioned to %s", transition.NewStatus)
}
