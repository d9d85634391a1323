package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/payloop/billing/ent/invoice"
	"github.com/payloop/billing/ent/user"
	"github.com/payloop/billing/services/audit"
	"github.com/payloop/billing/storage"
	u "github.com/payloop/billing/utils"
	"github.com/payloop/billing/utils/logger"
)

// Controller is the default controller for merchant and operator endpoints
type Controller struct {
	auditLog *audit.Log
}

// NewController creates a new instance of Controller
func NewController(auditLog *audit.Log) *Controller {
	return &Controller{auditLog: auditLog}
}

// GetWebhookLogs controller fetches the recent webhook delivery trail.
// Merchants see only their own deliveries; admins see everything.
func (ctrl *Controller) GetWebhookLogs(ctx *gin.Context) {
	merchantID, err := uuid.Parse(ctx.GetString("user_id"))
	if err != nil {
		u.APIResponse(ctx, http.StatusUnauthorized, "error", "Invalid session", nil)
		return
	}

	var filter *uuid.UUID
	if ctx.GetString("scope") != "admin" {
		filter = &merchantID
	}

	entries, err := ctrl.auditLog.ListRecent(ctx, filter)
	if err != nil {
		logger.Errorf("Failed to fetch webhook logs: %v", err)
		u.APIResponse(ctx, http.StatusInternalServerError, "error", "Failed to fetch webhook logs", nil)
		return
	}

	u.APIResponse(ctx, http.StatusOK, "success", "OK", entries)
}

// ClearWebhookLogs controller drops the webhook delivery trail. Admin only,
// enforced by route middleware.
func (ctrl *Controller) ClearWebhookLogs(ctx *gin.Context) {
	if err := ctrl.auditLog.Clear(ctx); err != nil {
		logger.Errorf("Failed to clear webhook logs: %v", err)
		u.APIResponse(ctx, http.StatusInternalServerError, "error", "Failed to clear webhook logs", nil)
		return
	}

	u.APIResponse(ctx, http.StatusOK, "success", "Webhook logs cleared", nil)
}

// CloseInvoice controller moves one of the merchant's non-paid invoices to
// closed, ending its payment lifecycle. Paid invoices cannot be closed; they
// leave the lifecycle through refund or void.
func (ctrl *Controller) CloseInvoice(ctx *gin.Context) {
	merchantID, err := uuid.Parse(ctx.GetString("user_id"))
	if err != nil {
		u.APIResponse(ctx, http.StatusUnauthorized, "error", "Invalid session", nil)
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "Invalid invoice id", nil)
		return
	}

	inv, err := storage.Client.Invoice.
		Query().
		Where(
			invoice.IDEQ(invoiceID),
			invoice.HasOwnerWith(user.IDEQ(merchantID)),
		).
		Only(ctx)
	if err != nil {
		u.APIResponse(ctx, http.StatusNotFound, "error", "Invoice not found", nil)
		return
	}

	// Conditional on the status still being non-paid so a racing payment
	// event cannot be shadowed by the close.
	n, err := storage.Client.Invoice.
		Update().
		Where(
			invoice.IDEQ(inv.ID),
			invoice.StatusNEQ(invoice.StatusPaid),
		).
		SetStatus(invoice.StatusClosed).
		Save(ctx)
	if err != nil {
		logger.WithFields(logger.Fields{
			"InvoiceID": inv.ID,
			"Error":     fmt.Sprintf("%v", err),
		}).Errorf("Failed to close invoice")
		u.APIResponse(ctx, http.StatusInternalServerError, "error", "Failed to close invoice", nil)
		return
	}
	if n == 0 {
		u.APIResponse(ctx, http.StatusConflict, "error", "Paid invoices cannot be closed", nil)
		return
	}

	u.APIResponse(ctx, http.StatusOK, "success", "Invoice closed", nil)
}
