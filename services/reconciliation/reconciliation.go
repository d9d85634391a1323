// Package reconciliation owns every invoice status transition driven by a
// payment event. Card webhooks, crypto webhooks, the manual verify endpoint
// and the background status poll all funnel through the same
// decision function, so duplicate deliveries and webhook/poll races collapse
// into no-ops instead of double effects.
package reconciliation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/payloop/billing/ent"
	"github.com/payloop/billing/ent/invoice"
	"github.com/payloop/billing/types"
	"github.com/payloop/billing/utils/logger"
)

// Event is a normalized payment event from either rail
type Event string

const (
	// EventSaleSucceeded is an approved card sale
	EventSaleSucceeded Event = "sale_succeeded"
	// EventSaleFailed is a declined or errored card sale; the invoice stays payable
	EventSaleFailed Event = "sale_failed"
	// EventRefunded is a processor-confirmed refund
	EventRefunded Event = "refunded"
	// EventVoided is a processor-confirmed void
	EventVoided Event = "voided"
	// EventCryptoCompleted is a provider-confirmed crypto settlement. It behaves
	// like EventSaleSucceeded whether it arrived via webhook or status poll.
	EventCryptoCompleted Event = "crypto_completed"
)

// PaymentRef carries the rail identifiers recorded on a paid transition
type PaymentRef struct {
	Method        invoice.PaymentMethod
	TransactionID string
	TrackingID    string
}

// Transition is the outcome of a reconciliation decision
type Transition struct {
	NewStatus    invoice.Status
	ShouldNotify bool
	IsNoOp       bool
	Reason       string
}

// maxApplyRetries bounds the optimistic-write loop under contention
const maxApplyRetries = 3

// Decide computes the next invoice status for a payment event. It is pure:
// same inputs, same transition, no side effects.
func Decide(current invoice.Status, event Event) Transition {
	switch event {
	case EventSaleSucceeded, EventCryptoCompleted:
		switch current {
		case invoice.StatusPaid:
			return Transition{IsNoOp: true, Reason: "duplicate payment event for paid invoice"}
		case invoice.StatusClosed, invoice.StatusRefunded, invoice.StatusVoided:
			return Transition{IsNoOp: true, Reason: fmt.Sprintf("payment event for %s invoice", current)}
		default:
			return Transition{NewStatus: invoice.StatusPaid, ShouldNotify: true}
		}

	case EventSaleFailed:
		// The invoice remains payable; failures are logged, never applied
		return Transition{IsNoOp: true, Reason: "sale failed"}

	case EventRefunded:
		switch current {
		case invoice.StatusClosed:
			return Transition{IsNoOp: true, Reason: "refund event for closed invoice"}
		case invoice.StatusRefunded:
			return Transition{IsNoOp: true, Reason: "duplicate refund event"}
		default:
			return Transition{NewStatus: invoice.StatusRefunded}
		}

	case EventVoided:
		switch current {
		case invoice.StatusClosed:
			return Transition{IsNoOp: true, Reason: "void event for closed invoice"}
		case invoice.StatusVoided:
			return Transition{IsNoOp: true, Reason: "duplicate void event"}
		default:
			return Transition{NewStatus: invoice.StatusVoided}
		}
	}

	return Transition{IsNoOp: true, Reason: fmt.Sprintf("unknown event %q", event)}
}

// Apply runs a single read-modify-write cycle for a payment event. The
// decision is always evaluated against a freshly read status, and the write is
// conditional on that status still holding, so two racing handlers for the
// same invoice serialize: one applies, the other re-reads and no-ops.
//
// A store failure returns types.PersistenceError so the HTTP boundary can
// answer with a retryable status; the event was not durably applied.
func Apply(ctx context.Context, client *ent.Client, invoiceID uuid.UUID, event Event, ref PaymentRef) (Transition, error) {
	for attempt := 0; attempt < maxApplyRetries; attempt++ {
		inv, err := client.Invoice.Get(ctx, invoiceID)
		if err != nil {
			return Transition{}, &types.PersistenceError{Err: fmt.Errorf("failed to read invoice %s: %w", invoiceID, err)}
		}

		transition := Decide(inv.Status, event)
		if transition.IsNoOp {
			if transition.Reason != "" && event != EventSaleFailed {
				logger.WithFields(logger.Fields{
					"InvoiceID": invoiceID,
					"Status":    inv.Status,
					"Event":     event,
				}).Infof("Reconciliation no-op: %s", transition.Reason)
			}
			return transition, nil
		}

		update := client.Invoice.
			Update().
			Where(
				invoice.IDEQ(invoiceID),
				invoice.StatusEQ(inv.Status),
			).
			SetStatus(transition.NewStatus)

		if transition.NewStatus == invoice.StatusPaid {
			if inv.PaymentDate == nil {
				update = update.SetPaymentDate(time.Now())
			}
			if ref.Method != "" {
				update = update.SetPaymentMethod(ref.Method)
			}
			if ref.TransactionID != "" {
				update = update.SetTransactionID(ref.TransactionID)
			}
			if ref.TrackingID != "" {
				update = update.SetBeadPaymentID(ref.TrackingID)
			}
		}

		n, err := update.Save(ctx)
		if err != nil {
			return Transition{}, &types.PersistenceError{Err: fmt.Errorf("failed to write invoice %s: %w", invoiceID, err)}
		}
		if n == 0 {
			// A concurrent writer changed the status between read and write;
			// re-read and decide again.
			continue
		}

		return transition, nil
	}

	return Transition{}, &types.PersistenceError{Err: fmt.Errorf("invoice %s: write contention not resolved after %d attempts", invoiceID, maxApplyRetries)}
}
