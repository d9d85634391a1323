// Package notifications delivers post-payment messages. Delivery is
// best-effort: a paid invoice stays paid even when every notification fails,
// so nothing here returns an error to the caller.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/payloop/billing/config"
	"github.com/payloop/billing/ent"
	"github.com/payloop/billing/services"
	"github.com/payloop/billing/storage"
	"github.com/payloop/billing/types"
	"github.com/payloop/billing/utils/logger"
)

// PaidEventChannel is the Redis channel paid invoice broadcasts are published on
const PaidEventChannel = "invoices:paid"

// EmailSender is the slice of the email service used by notifications
type EmailSender interface {
	SendEmail(ctx context.Context, payload types.SendEmailPayload) (types.SendEmailResponse, error)
}

// NotificationService sends customer receipts and merchant payment alerts
type NotificationService struct {
	emailService EmailSender
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(emailService EmailSender) *NotificationService {
	if emailService == nil {
		conf := config.NotificationConfig()
		emailService = services.NewEmailService(services.MailProvider(strings.ToUpper(conf.EmailProvider)))
	}
	return &NotificationService{emailService: emailService}
}

// NotifyPaid sends the customer receipt, the merchant alert and the live
// broadcast for a newly paid invoice. Each delivery is attempted independently
// so one failing channel never suppresses the others.
func (s *NotificationService) NotifyPaid(ctx context.Context, inv *ent.Invoice) types.NotifyResult {
	var result types.NotifyResult

	owner, err := inv.Edges.OwnerOrErr()
	if err != nil {
		owner, err = inv.QueryOwner().Only(ctx)
	}
	if err != nil {
		logger.WithFields(logger.Fields{
			"Error":     fmt.Sprintf("%v", err),
			"InvoiceID": inv.ID,
		}).Errorf("Failed to resolve invoice owner for payment notifications")
		return result
	}

	conf := config.NotificationConfig()
	paidAt := time.Now()
	if inv.PaymentDate != nil {
		paidAt = *inv.PaymentDate
	}

	receipt := types.SendEmailPayload{
		FromAddress: conf.EmailFromAddress,
		ToAddress:   inv.CustomerEmail,
		Subject:     fmt.Sprintf("Receipt for invoice %s", inv.InvoiceNumber),
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour payment of %s %s for invoice %s was received on %s.\n\nThank you.",
			inv.CustomerName, inv.Total.StringFixed(2), "USD", inv.InvoiceNumber,
			paidAt.Format("January 2, 2006"),
		),
	}
	if _, err := s.emailService.SendEmail(ctx, receipt); err != nil {
		logger.WithFields(logger.Fields{
			"Error":     fmt.Sprintf("%v", err),
			"InvoiceID": inv.ID,
			"Recipient": inv.CustomerEmail,
		}).Errorf("Failed to send customer receipt")
	} else {
		result.CustomerReceiptSent = true
	}

	alert := types.SendEmailPayload{
		FromAddress: conf.EmailFromAddress,
		ToAddress:   owner.Email,
		Subject:     fmt.Sprintf("Invoice %s has been paid", inv.InvoiceNumber),
		Body: fmt.Sprintf(
			"Invoice %s for %s (%s) was paid via %s on %s.",
			inv.InvoiceNumber, inv.CustomerName, inv.Total.StringFixed(2),
			inv.PaymentMethod, paidAt.Format("January 2, 2006 15:04 MST"),
		),
	}
	if _, err := s.emailService.SendEmail(ctx, alert); err != nil {
		logger.WithFields(logger.Fields{
			"Error":     fmt.Sprintf("%v", err),
			"InvoiceID": inv.ID,
			"Recipient": owner.Email,
		}).Errorf("Failed to send merchant payment alert")
	} else {
		result.MerchantNotificationSent = true
	}

	s.publishPaidEvent(ctx, inv, owner, paidAt)

	return result
}

// publishPaidEvent broadcasts the paid invoice to live dashboard subscribers
func (s *NotificationService) publishPaidEvent(ctx context.Context, inv *ent.Invoice, owner *ent.User, paidAt time.Time) {
	if storage.RedisClient == nil {
		return
	}

	event := types.PaidEvent{
		InvoiceID:     inv.ID,
		MerchantID:    owner.ID,
		InvoiceNumber: inv.InvoiceNumber,
		Total:         inv.Total,
		PaymentMethod: string(inv.PaymentMethod),
		PaidAt:        paidAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Errorf("Failed to serialize paid event for invoice %s: %v", inv.ID, err)
		return
	}

	if err := storage.RedisClient.Publish(ctx, PaidEventChannel, payload).Err(); err != nil {
		logger.WithFields(logger.Fields{
			"Error":     fmt.Sprintf("%v", err),
			"InvoiceID": inv.ID,
		}).Errorf("Failed to publish paid event")
	}
}
