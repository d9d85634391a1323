package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/payloop/billing/ent"
	"github.com/payloop/billing/ent/enttest"
	"github.com/payloop/billing/ent/invoice"
	db "github.com/payloop/billing/storage"
	"github.com/payloop/billing/types"
	"github.com/payloop/billing/utils/test"
)

// mockEmailService records sends and fails on demand, avoiding real provider calls
type mockEmailService struct {
	sent    []types.SendEmailPayload
	failFor map[string]bool
}

func (m *mockEmailService) SendEmail(ctx context.Context, payload types.SendEmailPayload) (types.SendEmailResponse, error) {
	if m.failFor[payload.ToAddress] {
		return types.SendEmailResponse{}, fmt.Errorf("provider unavailable")
	}
	m.sent = append(m.sent, payload)
	return types.SendEmailResponse{Id: "mock-email-id"}, nil
}

func setupPaidInvoice(t *testing.T) *ent.Invoice {
	t.Helper()
	test.SetupTestConfig()

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	db.Client = client

	merchant, err := test.CreateTestUser(nil)
	assert.NoError(t, err)

	inv, err := test.CreateTestInvoice(merchant, map[string]interface{}{"status": "paid"})
	assert.NoError(t, err)

	paidAt := time.Now()
	err = client.Invoice.UpdateOneID(inv.ID).
		SetPaymentDate(paidAt).
		SetPaymentMethod(invoice.PaymentMethodCreditCard).
		Exec(context.Background())
	assert.NoError(t, err)

	inv, err = client.Invoice.Query().Where(invoice.IDEQ(inv.ID)).WithOwner().Only(context.Background())
	assert.NoError(t, err)

	return inv
}

func TestNotifyPaid(t *testing.T) {
	t.Run("sends receipt and merchant alert and broadcasts", func(t *testing.T) {
		inv := setupPaidInvoice(t)

		mr, err := miniredis.Run()
		assert.NoError(t, err)
		t.Cleanup(mr.Close)
		db.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

		sub := db.RedisClient.Subscribe(context.Background(), PaidEventChannel)
		t.Cleanup(func() { sub.Close() })
		_, err = sub.Receive(context.Background())
		assert.NoError(t, err)

		mock := &mockEmailService{}
		service := NewNotificationService(mock)

		result := service.NotifyPaid(context.Background(), inv)
		assert.True(t, result.CustomerReceiptSent)
		assert.True(t, result.MerchantNotificationSent)

		assert.Len(t, mock.sent, 2)
		assert.Equal(t, inv.CustomerEmail, mock.sent[0].ToAddress)
		assert.Contains(t, mock.sent[0].Subject, inv.InvoiceNumber)
		assert.Equal(t, inv.Edges.Owner.Email, mock.sent[1].ToAddress)

		select {
		case msg := <-sub.Channel():
			var event types.PaidEvent
			assert.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
			assert.Equal(t, inv.ID, event.InvoiceID)
			assert.Equal(t, "credit_card", event.PaymentMethod)
		case <-time.After(2 * time.Second):
			t.Fatal("expected a paid event broadcast")
		}
	})

	t.Run("one failing send does not suppress the other", func(t *testing.T) {
		inv := setupPaidInvoice(t)
		db.RedisClient = nil

		mock := &mockEmailService{failFor: map[string]bool{inv.CustomerEmail: true}}
		service := NewNotificationService(mock)

		result := service.NotifyPaid(context.Background(), inv)
		assert.False(t, result.CustomerReceiptSent)
		assert.True(t, result.MerchantNotificationSent)

		assert.Len(t, mock.sent, 1)
		assert.Equal(t, inv.Edges.Owner.Email, mock.sent[0].ToAddress)
	})

	t.Run("both sends failing still returns without error", func(t *testing.T) {
		inv := setupPaidInvoice(t)
		db.RedisClient = nil

		mock := &mockEmailService{failFor: map[string]bool{
			inv.CustomerEmail:        true,
			inv.Edges.Owner.Email:    true,
		}}
		service := NewNotificationService(mock)

		result := service.NotifyPaid(context.Background(), inv)
		assert.False(t, result.CustomerReceiptSent)
		assert.False(t, result.MerchantNotificationSent)
	})
}
