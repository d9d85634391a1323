// Package tasks runs the background jobs: re-querying pending crypto payments
// and sweeping sent invoices past their due date.
package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"

	"github.com/payloop/billing/config"
	"github.com/payloop/billing/ent/invoice"
	"github.com/payloop/billing/services/gateway"
	"github.com/payloop/billing/services/notifications"
	"github.com/payloop/billing/services/reconciliation"
	"github.com/payloop/billing/storage"
	"github.com/payloop/billing/utils/logger"
)

// ReconcilePendingCryptoPayments re-queries the provider for every invoice
// that has a tracking id but has not reached a terminal status. It funnels
// confirmed completions through the same transition path as the webhook
// handler, so the poll and a late callback can race without double effects.
func ReconcilePendingCryptoPayments() error {
	ctx := context.Background()
	beadService := gateway.NewBeadService()
	notificationService := notifications.NewNotificationService(nil)

	pending, err := storage.Client.Invoice.
		Query().
		Where(
			invoice.BeadPaymentIDNotNil(),
			invoice.BeadPaymentIDNEQ(""),
			invoice.StatusIn(invoice.StatusSent, invoice.StatusOverdue),
		).
		WithOwner().
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch pending crypto payments: %w", err)
	}

	for _, inv := range pending {
		owner, err := inv.Edges.OwnerOrErr()
		if err != nil {
			logger.Errorf("Skipping crypto reconciliation for invoice %s: no owner: %v", inv.ID, err)
			continue
		}

		creds, err := gateway.LoadBeadCredentials(ctx, storage.Client, owner.ID)
		if err != nil {
			logger.Errorf("Skipping crypto reconciliation for invoice %s: %v", inv.ID, err)
			continue
		}

		status, err := beadService.CheckStatus(ctx, creds, inv.BeadPaymentID)
		if err != nil {
			logger.WithFields(logger.Fields{
				"InvoiceID":  inv.ID,
				"TrackingID": inv.BeadPaymentID,
				"Error":      fmt.Sprintf("%v", err),
			}).Errorf("Failed to poll crypto payment status")
			continue
		}

		if status.StatusCode != gateway.CryptoStatusCompleted {
			continue
		}

		transition, err := reconciliation.Apply(ctx, storage.Client, inv.ID, reconciliation.EventCryptoCompleted, reconciliation.PaymentRef{
			Method:        invoice.PaymentMethodCrypto,
			TransactionID: status.TransactionID,
			TrackingID:    inv.BeadPaymentID,
		})
		if err != nil {
			logger.Errorf("Failed to apply polled crypto completion for invoice %s: %v", inv.ID, err)
			continue
		}

		if transition.ShouldNotify && !transition.IsNoOp {
			notifyPaidInvoice(ctx, notificationService, inv.ID)
		}
	}

	return nil
}

// MarkOverdueInvoices moves sent invoices past their due date to overdue.
// Overdue invoices remain payable; the sweep only changes how they are
// presented.
func MarkOverdueInvoices() error {
	ctx := context.Background()

	n, err := storage.Client.Invoice.
		Update().
		Where(
			invoice.StatusEQ(invoice.StatusSent),
			invoice.DueDateNotNil(),
			invoice.DueDateLT(time.Now()),
		).
		SetStatus(invoice.StatusOverdue).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to sweep overdue invoices: %w", err)
	}

	if n > 0 {
		logger.Infof("Marked %d invoices overdue", n)
	}

	return nil
}

func notifyPaidInvoice(ctx context.Context, notificationService *notifications.NotificationService, invoiceID uuid.UUID) {
	inv, err := storage.Client.Invoice.
		Query().
		Where(invoice.IDEQ(invoiceID)).
		WithOwner().
		Only(ctx)
	if err != nil {
		logger.Errorf("Failed to load invoice %s for notifications: %v", invoiceID, err)
		return
	}

	notificationService.NotifyPaid(ctx, inv)
}

// StartCronJobs starts cron jobs
func StartCronJobs() {
	scheduler := gocron.NewScheduler(time.Local)
	conf := config.WebhookConfig()

	// Re-query pending crypto payments
	_, err := scheduler.Every(int(conf.CryptoPollInterval.Minutes())).Minutes().Do(ReconcilePendingCryptoPayments)
	if err != nil {
		logger.Errorf("StartCronJobs for ReconcilePendingCryptoPayments: %v", err)
	}

	// Sweep sent invoices past due date
	_, err = scheduler.Every(int(conf.OverdueSweepInterval.Minutes())).Minutes().Do(MarkOverdueInvoices)
	if err != nil {
		logger.Errorf("StartCronJobs for MarkOverdueInvoices: %v", err)
	}

	scheduler.StartAsync()
}
