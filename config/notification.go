package config

import (
	"sync"

	"github.com/spf13/viper"
)

// NotificationConfiguration defines the email service configurations
type NotificationConfiguration struct {
	EmailDomain      string
	EmailAPIKey      string
	EmailFromAddress string
	EmailProvider    string
}

var (
	notificationConfigOnce sync.Once
	notificationConfig     *NotificationConfiguration
)

// NotificationConfig sets the email configurations
func NotificationConfig() *NotificationConfiguration {
	notificationConfigOnce.Do(func() {
		viper.SetDefault("EMAIL_DOMAIN", "api.sendgrid.com")
		viper.SetDefault("EMAIL_FROM_ADDRESS", "Payloop <no-reply@payloop.dev>")
		viper.SetDefault("EMAIL_PROVIDER", "sendgrid")

		notificationConfig = &NotificationConfiguration{
			EmailDomain:      viper.GetString("EMAIL_DOMAIN"),
			EmailAPIKey:      viper.GetString("EMAIL_API_KEY"),
			EmailFromAddress: viper.GetString("EMAIL_FROM_ADDRESS"),
			EmailProvider:    viper.GetString("EMAIL_PROVIDER"),
		}
	})
	return notificationConfig
}
