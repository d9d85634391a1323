// Package routers wires the HTTP surface: webhook callbacks from both payment
// rails, the customer payment-token endpoints and the merchant dashboard API.
package routers

import (
	"github.com/gin-gonic/gin"

	"github.com/payloop/billing/config"
	"github.com/payloop/billing/controllers"
	"github.com/payloop/billing/controllers/payments"
	"github.com/payloop/billing/controllers/webhooks"
	"github.com/payloop/billing/routers/middleware"
	"github.com/payloop/billing/services/audit"
	"github.com/payloop/billing/storage"
)

// WebhookAuditKey is the Redis key the webhook delivery trail lives under
const WebhookAuditKey = "webhooks:audit"

// Routes builds the gin engine with all routes and middleware mounted
func Routes() *gin.Engine {
	conf := config.ServerConfig()
	if !conf.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	auditLog := audit.NewLog(storage.RedisClient, WebhookAuditKey, config.WebhookConfig().AuditLogCap)

	webhookCtrl := webhooks.NewController(auditLog)
	paymentsCtrl := payments.NewController()
	ctrl := controllers.NewController(auditLog)

	v1 := router.Group("/v1")

	// Inbound rail callbacks. Authenticity is enforced inside the handlers:
	// signature verification for the card rail, a confirming status check
	// for the crypto rail.
	v1.POST("/webhooks/card/:merchant_id", webhookCtrl.CardWebhook)
	v1.POST("/webhooks/crypto", webhookCtrl.CryptoWebhook)

	// Customer payment pages, authorized by the invoice's payment token
	v1.GET("/pay/:payment_token", paymentsCtrl.GetInvoiceByToken)
	v1.POST("/pay/:payment_token/card", paymentsCtrl.PayWithCard)
	v1.POST("/pay/:payment_token/crypto", paymentsCtrl.CreateCryptoPayment)
	v1.GET("/pay/:payment_token/crypto/verify", paymentsCtrl.VerifyCryptoPayment)

	// Merchant dashboard API
	authorized := v1.Group("", middleware.JWTMiddleware)
	authorized.GET("/webhooks/logs", ctrl.GetWebhookLogs)
	authorized.DELETE("/webhooks/logs", middleware.OnlyAdminMiddleware, ctrl.ClearWebhookLogs)
	authorized.POST("/invoices/:id/close", ctrl.CloseInvoice)

	return router
}
