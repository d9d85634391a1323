package reconciliation

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/payloop/billing/ent"
	"github.com/payloop/billing/ent/enttest"
	"github.com/payloop/billing/ent/hook"
	"github.com/payloop/billing/ent/invoice"
	db "github.com/payloop/billing/storage"
	"github.com/payloop/billing/utils/test"
)

func TestDecide(t *testing.T) {
	cases := []struct {
		name         string
		current      invoice.Status
		event        Event
		wantStatus   invoice.Status
		wantNotify   bool
		wantNoOp     bool
	}{
		{"sale success pays a sent invoice", invoice.StatusSent, EventSaleSucceeded, invoice.StatusPaid, true, false},
		{"sale success pays an overdue invoice", invoice.StatusOverdue, EventSaleSucceeded, invoice.StatusPaid, true, false},
		{"duplicate sale success is a no-op", invoice.StatusPaid, EventSaleSucceeded, "", false, true},
		{"sale success against closed is a no-op", invoice.StatusClosed, EventSaleSucceeded, "", false, true},
		{"sale success against refunded is a no-op", invoice.StatusRefunded, EventSaleSucceeded, "", false, true},
		{"sale success against voided is a no-op", invoice.StatusVoided, EventSaleSucceeded, "", false, true},
		{"crypto completion pays a sent invoice", invoice.StatusSent, EventCryptoCompleted, invoice.StatusPaid, true, false},
		{"duplicate crypto completion is a no-op", invoice.StatusPaid, EventCryptoCompleted, "", false, true},
		{"sale failure never transitions", invoice.StatusSent, EventSaleFailed, "", false, true},
		{"refund moves paid to refunded", invoice.StatusPaid, EventRefunded, invoice.StatusRefunded, false, false},
		{"refund against closed is a no-op", invoice.StatusClosed, EventRefunded, "", false, true},
		{"duplicate refund is a no-op", invoice.StatusRefunded, EventRefunded, "", false, true},
		{"void moves sent to voided", invoice.StatusSent, EventVoided, invoice.StatusVoided, false, false},
		{"void against closed is a no-op", invoice.StatusClosed, EventVoided, "", false, true},
		{"duplicate void is a no-op", invoice.StatusVoided, EventVoided, "", false, true},
		{"unknown event is a no-op", invoice.StatusSent, Event("bogus"), "", false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decide(tc.current, tc.event)

			assert.Equal(t, tc.wantNoOp, got.IsNoOp)
			assert.Equal(t, tc.wantNotify, got.ShouldNotify)
			if !tc.wantNoOp {
				assert.Equal(t, tc.wantStatus, got.NewStatus)
			}
			if tc.wantNoOp {
				assert.NotEmpty(t, got.Reason)
			}
		})
	}
}

func setupInvoice(t *testing.T, client *ent.Client, status string) *ent.Invoice {
	t.Helper()
	db.Client = client
	test.SetupTestConfig()

	user, err := test.CreateTestUser(nil)
	assert.NoError(t, err)

	inv, err := test.CreateTestInvoice(user, map[string]interface{}{"status": status})
	assert.NoError(t, err)

	return inv
}

func TestApplyIdempotency(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	defer client.Close()

	inv := setupInvoice(t, client, "sent")
	ctx := context.Background()

	ref := PaymentRef{Method: invoice.PaymentMethodCreditCard, TransactionID: "T1"}

	first, err := Apply(ctx, client, inv.ID, EventSaleSucceeded, ref)
	assert.NoError(t, err)
	assert.False(t, first.IsNoOp)
	assert.True(t, first.ShouldNotify)
	assert.Equal(t, invoice.StatusPaid, first.NewStatus)

	paid, err := client.Invoice.Get(ctx, inv.ID)
	assert.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, paid.Status)
	assert.Equal(t, "T1", paid.TransactionID)
	assert.Equal(t, invoice.PaymentMethodCreditCard, paid.PaymentMethod)
	assert.NotNil(t, paid.PaymentDate)

	firstPaymentDate := *paid.PaymentDate

	// Replay the same success event several times
	for i := 0; i < 3; i++ {
		replay, err := Apply(ctx, client, inv.ID, EventSaleSucceeded, PaymentRef{Method: invoice.PaymentMethodCreditCard, TransactionID: "T2"})
		assert.NoError(t, err)
		assert.True(t, replay.IsNoOp)
		assert.False(t, replay.ShouldNotify)
	}

	after, err := client.Invoice.Get(ctx, inv.ID)
	assert.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, after.Status)
	assert.Equal(t, "T1", after.TransactionID, "replays must not overwrite the transaction id")
	assert.Equal(t, firstPaymentDate.Unix(), after.PaymentDate.Unix(), "payment_date is set exactly once")
}

func TestApplyTerminalStateGuard(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	defer client.Close()

	inv := setupInvoice(t, client, "closed")
	ctx := context.Background()

	for _, event := range []Event{EventRefunded, EventVoided, EventSaleSucceeded} {
		transition, err := Apply(ctx, client, inv.ID, event, PaymentRef{})
		assert.NoError(t, err)
		assert.True(t, transition.IsNoOp, "event %s against a closed invoice must be a no-op", event)
	}

	after, err := client.Invoice.Get(ctx, inv.ID)
	assert.NoError(t, err)
	assert.Equal(t, invoice.StatusClosed, after.Status)
}

func TestApplyRefundAndVoid(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	defer client.Close()

	inv := setupInvoice(t, client, "sent")
	ctx := context.Background()

	_, err := Apply(ctx, client, inv.ID, EventSaleSucceeded, PaymentRef{Method: invoice.PaymentMethodCreditCard, TransactionID: "T1"})
	assert.NoError(t, err)

	transition, err := Apply(ctx, client, inv.ID, EventRefunded, PaymentRef{})
	assert.NoError(t, err)
	assert.False(t, transition.IsNoOp)
	assert.Equal(t, invoice.StatusRefunded, transition.NewStatus)
	assert.False(t, transition.ShouldNotify)

	after, err := client.Invoice.Get(ctx, inv.ID)
	assert.NoError(t, err)
	assert.Equal(t, invoice.StatusRefunded, after.Status)
	// Refunds keep the original payment linkage for bookkeeping
	assert.Equal(t, "T1", after.TransactionID)
}

func TestApplySaleFailedLeavesInvoicePayable(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	defer client.Close()

	inv := setupInvoice(t, client, "sent")
	ctx := context.Background()

	transition, err := Apply(ctx, client, inv.ID, EventSaleFailed, PaymentRef{})
	assert.NoError(t, err)
	assert.True(t, transition.IsNoOp)

	after, err := client.Invoice.Get(ctx, inv.ID)
	assert.NoError(t, err)
	assert.Equal(t, invoice.StatusSent, after.Status)
	assert.Nil(t, after.PaymentDate)
}

func TestApplyRacingSuccessEvents(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	defer client.Close()

	inv := setupInvoice(t, client, "sent")
	ctx := context.Background()

	// Both handlers observed the invoice as sent before either wrote. Apply
	// re-reads and writes conditionally, so whichever lands second must
	// resolve to a no-op rather than a second paid transition.
	webhookRef := PaymentRef{Method: invoice.PaymentMethodCreditCard, TransactionID: "T-webhook"}
	pollRef := PaymentRef{Method: invoice.PaymentMethodCreditCard, TransactionID: "T-poll"}

	first, err := Apply(ctx, client, inv.ID, EventSaleSucceeded, webhookRef)
	assert.NoError(t, err)

	second, err := Apply(ctx, client, inv.ID, EventSaleSucceeded, pollRef)
	assert.NoError(t, err)

	applied := 0
	for _, transition := range []Transition{first, second} {
		if !transition.IsNoOp {
			applied++
			assert.True(t, transition.ShouldNotify)
		}
	}
	assert.Equal(t, 1, applied, "exactly one of two racing success events may apply")

	after, err := client.Invoice.Get(ctx, inv.ID)
	assert.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, after.Status)
	assert.Equal(t, "T-webhook", after.TransactionID)
}

func TestApplyForcedInterleaving(t *testing.T) {
	// A single-connection pool serializes the two conditional writes at the
	// database without serializing the reads, so the interleaving is
	// deterministic: both handlers observe sent, one write matches, the
	// other matches zero rows and must re-read.
	drv, err := entsql.Open("sqlite3", "file:racing?mode=memory&_fk=1")
	assert.NoError(t, err)
	drv.DB().SetMaxOpenConns(1)

	client := ent.NewClient(ent.Driver(drv))
	defer client.Close()
	assert.NoError(t, client.Schema.Create(context.Background()))

	inv := setupInvoice(t, client, "sent")

	// Hold every status write until both handlers have read the invoice,
	// so neither can decide a no-op up front.
	var barrier sync.WaitGroup
	barrier.Add(2)
	var writesIssued int32
	client.Invoice.Use(hook.On(func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if atomic.AddInt32(&writesIssued, 1) <= 2 {
				barrier.Done()
				barrier.Wait()
			}
			return next.Mutate(ctx, m)
		})
	}, ent.OpUpdate))

	type result struct {
		transition Transition
		err        error
	}
	results := make(chan result, 2)
	for _, txID := range []string{"T-webhook", "T-poll"} {
		go func(txID string) {
			transition, err := Apply(context.Background(), client, inv.ID, EventSaleSucceeded, PaymentRef{
				Method:        invoice.PaymentMethodCreditCard,
				TransactionID: txID,
			})
			results <- result{transition, err}
		}(txID)
	}

	applied := 0
	for i := 0; i < 2; i++ {
		res := <-results
		assert.NoError(t, res.err)
		if !res.transition.IsNoOp {
			applied++
			assert.True(t, res.transition.ShouldNotify)
		}
	}
	assert.Equal(t, 1, applied, "exactly one of two interleaved success events may apply")
	assert.Equal(t, int32(2), atomic.LoadInt32(&writesIssued), "both handlers must attempt the conditional write")

	after, err := client.Invoice.Get(context.Background(), inv.ID)
	assert.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, after.Status)
	assert.NotNil(t, after.PaymentDate)
}
