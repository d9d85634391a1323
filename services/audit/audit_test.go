package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupLog(t *testing.T, capacity int) (*Log, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	assert.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewLog(client, "webhooks:audit", capacity), mr
}

func TestRecordAndListRecent(t *testing.T) {
	log, _ := setupLog(t, 50)
	ctx := context.Background()

	invoiceID := uuid.New()
	merchantID := uuid.New()

	log.Record(ctx, Entry{
		EventID:    "evt_1",
		Rail:       "card",
		EventType:  "transaction.sale",
		InvoiceID:  &invoiceID,
		MerchantID: &merchantID,
		Status:     StatusProcessed,
		Payload:    json.RawMessage(`{"orderid":"INV-77"}`),
	})
	log.Record(ctx, Entry{
		EventID:   "evt_2",
		Rail:      "crypto",
		EventType: "crypto.callback",
		Status:    StatusError,
		Message:   "no invoice found",
	})

	entries, err := log.ListRecent(ctx, nil)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	// Newest first
	assert.Equal(t, "evt_2", entries[0].EventID)
	assert.Equal(t, "evt_1", entries[1].EventID)
	assert.Equal(t, StatusProcessed, entries[1].Status)
	assert.Equal(t, invoiceID, *entries[1].InvoiceID)
	assert.False(t, entries[0].ReceivedAt.IsZero())
}

func TestRecordGeneratesFallbackEventID(t *testing.T) {
	log, _ := setupLog(t, 50)
	ctx := context.Background()

	log.Record(ctx, Entry{Rail: "card", Status: StatusReceived})

	entries, err := log.ListRecent(ctx, nil)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].EventID)
}

func TestRecordEvictsBeyondCap(t *testing.T) {
	log, _ := setupLog(t, 5)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		log.Record(ctx, Entry{
			EventID: fmt.Sprintf("evt_%d", i),
			Rail:    "card",
			Status:  StatusProcessed,
		})
	}

	entries, err := log.ListRecent(ctx, nil)
	assert.NoError(t, err)
	assert.Len(t, entries, 5)

	// The oldest three were evicted
	assert.Equal(t, "evt_7", entries[0].EventID)
	assert.Equal(t, "evt_3", entries[4].EventID)
}

func TestListRecentFiltersByMerchant(t *testing.T) {
	log, _ := setupLog(t, 50)
	ctx := context.Background()

	merchantA := uuid.New()
	merchantB := uuid.New()

	log.Record(ctx, Entry{EventID: "evt_a", MerchantID: &merchantA, Rail: "card", Status: StatusProcessed})
	log.Record(ctx, Entry{EventID: "evt_b", MerchantID: &merchantB, Rail: "card", Status: StatusProcessed})
	log.Record(ctx, Entry{EventID: "evt_none", Rail: "crypto", Status: StatusError})

	entries, err := log.ListRecent(ctx, &merchantA)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "evt_a", entries[0].EventID)
}

func TestClear(t *testing.T) {
	log, _ := setupLog(t, 50)
	ctx := context.Background()

	log.Record(ctx, Entry{EventID: "evt_1", Rail: "card", Status: StatusProcessed})

	assert.NoError(t, log.Clear(ctx))

	entries, err := log.ListRecent(ctx, nil)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
