package config

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

// WebhookConfiguration defines the inbound webhook handling settings
type WebhookConfiguration struct {
	// AuditLogCap is the number of recent webhook events retained for debugging.
	AuditLogCap int
	// CryptoPollInterval is how often pending crypto payments are re-queried.
	CryptoPollInterval time.Duration
	// OverdueSweepInterval is how often sent invoices past due date are swept.
	OverdueSweepInterval time.Duration
}

var (
	webhookConfigOnce sync.Once
	webhookConfig     *WebhookConfiguration
)

// WebhookConfig returns the webhook handling configurations
func WebhookConfig() *WebhookConfiguration {
	webhookConfigOnce.Do(func() {
		viper.SetDefault("WEBHOOK_AUDIT_LOG_CAP", 50)
		viper.SetDefault("CRYPTO_POLL_INTERVAL", 2)
		viper.SetDefault("OVERDUE_SWEEP_INTERVAL", 60)

		webhookConfig = &WebhookConfiguration{
			AuditLogCap:          viper.GetInt("WEBHOOK_AUDIT_LOG_CAP"),
			CryptoPollInterval:   time.Duration(viper.GetInt("CRYPTO_POLL_INTERVAL")) * time.Minute,
			OverdueSweepInterval: time.Duration(viper.GetInt("OVERDUE_SWEEP_INTERVAL")) * time.Minute,
		}
	})
	return webhookConfig
}
