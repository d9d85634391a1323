// Package audit keeps a bounded trail of recent webhook deliveries in Redis.
// The list is capped, so the trail is a debugging window, not a permanent
// record.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/payloop/billing/utils/logger"
)

// Processing states recorded per webhook. Every delivery lands as received
// first; the handler appends a processed or error entry once it resolves.
const (
	StatusReceived  = "received"
	StatusProcessed = "processed"
	StatusError     = "error"
)

// Entry is one recorded webhook delivery
type Entry struct {
	EventID    string          `json:"eventId"`
	Rail       string          `json:"rail"`
	EventType  string          `json:"eventType"`
	InvoiceID  *uuid.UUID      `json:"invoiceId,omitempty"`
	MerchantID *uuid.UUID      `json:"merchantId,omitempty"`
	Status     string          `json:"status"`
	Message    string          `json:"message,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	ReceivedAt time.Time       `json:"receivedAt"`
}

// Log is a capped most-recent-first list of webhook deliveries
type Log struct {
	client *redis.Client
	key    string
	cap    int64
}

// NewLog creates a new instance of Log with the given capacity
func NewLog(client *redis.Client, key string, capacity int) *Log {
	return &Log{client: client, key: key, cap: int64(capacity)}
}

// Record appends a delivery to the head of the trail, evicting the oldest
// entries beyond capacity. Recording failures are logged and swallowed: the
// trail must never affect webhook processing.
func (l *Log) Record(ctx context.Context, entry Entry) {
	if l == nil || l.client == nil {
		return
	}

	if entry.EventID == "" {
		entry.EventID = uuid.New().String()
	}
	if entry.ReceivedAt.IsZero() {
		entry.ReceivedAt = time.Now()
	}

	serialized, err := json.Marshal(entry)
	if err != nil {
		logger.Errorf("Failed to serialize webhook audit entry %s: %v", entry.EventID, err)
		return
	}

	pipe := l.client.TxPipeline()
	pipe.LPush(ctx, l.key, serialized)
	pipe.LTrim(ctx, l.key, 0, l.cap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		logger.WithFields(logger.Fields{
			"Error":   fmt.Sprintf("%v", err),
			"EventID": entry.EventID,
		}).Errorf("Failed to record webhook audit entry")
	}
}

// ListRecent returns the trail newest first. A non-nil merchantID narrows the
// result to that merchant's deliveries.
func (l *Log) ListRecent(ctx context.Context, merchantID *uuid.UUID) ([]Entry, error) {
	raw, err := l.client.LRange(ctx, l.key, 0, l.cap-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read webhook audit trail: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			logger.Warnf("Skipping unreadable webhook audit entry: %v", err)
			continue
		}
		if merchantID != nil {
			if entry.MerchantID == nil || *entry.MerchantID != *merchantID {
				continue
			}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Clear drops the entire trail
func (l *Log) Clear(ctx context.Context) error {
	if err := l.client.Del(ctx, l.key).Err(); err != nil {
		return fmt.Errorf("failed to clear webhook audit trail: %w", err)
	}
	return nil
}
