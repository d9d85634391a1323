package config

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

// GatewayConfiguration defines the settings for the two payment rails
type GatewayConfiguration struct {
	// Card processor transaction API
	CardAPIURL  string
	CardTimeout time.Duration
	// CardInsecureSkipTLSVerify disables TLS certificate validation on outbound
	// card gateway calls. Local development only, never the default.
	CardInsecureSkipTLSVerify bool

	// Crypto settlement provider API
	BeadAPIURL  string
	BeadTimeout time.Duration
}

var (
	gatewayConfigOnce sync.Once
	gatewayConfig     *GatewayConfiguration
)

// GatewayConfig returns the payment gateway configurations
func GatewayConfig() *GatewayConfiguration {
	gatewayConfigOnce.Do(func() {
		viper.SetDefault("CARD_API_URL", "https://secure.networkmerchants.com/api/transact.php")
		viper.SetDefault("CARD_TIMEOUT", 30)
		viper.SetDefault("CARD_INSECURE_SKIP_TLS_VERIFY", false)
		viper.SetDefault("BEAD_API_URL", "https://api.beadpay.io")
		viper.SetDefault("BEAD_TIMEOUT", 30)

		gatewayConfig = &GatewayConfiguration{
			CardAPIURL:                viper.GetString("CARD_API_URL"),
			CardTimeout:               time.Duration(viper.GetInt("CARD_TIMEOUT")) * time.Second,
			CardInsecureSkipTLSVerify: viper.GetBool("CARD_INSECURE_SKIP_TLS_VERIFY"),
			BeadAPIURL:                viper.GetString("BEAD_API_URL"),
			BeadTimeout:               time.Duration(viper.GetInt("BEAD_TIMEOUT")) * time.Second,
		}
	})
	return gatewayConfig
}
