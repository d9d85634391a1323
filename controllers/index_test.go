package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/payloop/billing/ent"
	"github.com/payloop/billing/ent/enttest"
	"github.com/payloop/billing/ent/invoice"
	"github.com/payloop/billing/routers/middleware"
	"github.com/payloop/billing/services/audit"
	db "github.com/payloop/billing/storage"
	"github.com/payloop/billing/utils/test"
	tokenUtils "github.com/payloop/billing/utils/token"
)

type testEnv struct {
	router   *gin.Engine
	auditLog *audit.Log
	merchant *ent.User
	admin    *ent.User
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	test.SetupTestConfig()

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	db.Client = client

	mr, err := miniredis.Run()
	assert.NoError(t, err)
	t.Cleanup(mr.Close)
	db.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	merchant, err := test.CreateTestUser(nil)
	assert.NoError(t, err)

	admin, err := test.CreateTestUser(map[string]interface{}{
		"email": "admin@test.com",
		"scope": "admin",
	})
	assert.NoError(t, err)

	auditLog := audit.NewLog(db.RedisClient, "webhooks:audit", 50)
	ctrl := NewController(auditLog)

	router := gin.New()
	router.GET("/webhooks/logs", middleware.JWTMiddleware, ctrl.GetWebhookLogs)
	router.DELETE("/webhooks/logs", middleware.JWTMiddleware, middleware.OnlyAdminMiddleware, ctrl.ClearWebhookLogs)
	router.POST("/invoices/:id/close", middleware.JWTMiddleware, ctrl.CloseInvoice)

	return &testEnv{router: router, auditLog: auditLog, merchant: merchant, admin: admin}
}

func bearerHeaders(t *testing.T, user *ent.User) map[string]string {
	t.Helper()
	accessToken, err := tokenUtils.GenerateAccessJWT(user.ID.String(), user.Scope)
	assert.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + accessToken}
}

func TestGetWebhookLogs(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	otherMerchant, err := test.CreateTestUser(map[string]interface{}{"email": "other@test.com"})
	assert.NoError(t, err)

	env.auditLog.Record(ctx, audit.Entry{EventID: "evt_mine", Rail: "card", Status: audit.StatusProcessed, MerchantID: &env.merchant.ID})
	env.auditLog.Record(ctx, audit.Entry{EventID: "evt_other", Rail: "card", Status: audit.StatusProcessed, MerchantID: &otherMerchant.ID})

	t.Run("merchants see only their own deliveries", func(t *testing.T) {
		res, err := test.PerformRequest(t, "GET", "/webhooks/logs", nil, bearerHeaders(t, env.merchant), env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)

		var response struct {
			Data []audit.Entry `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &response))
		assert.Len(t, response.Data, 1)
		assert.Equal(t, "evt_mine", response.Data[0].EventID)
	})

	t.Run("admins see everything", func(t *testing.T) {
		res, err := test.PerformRequest(t, "GET", "/webhooks/logs", nil, bearerHeaders(t, env.admin), env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)

		var response struct {
			Data []audit.Entry `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(res.Body.Bytes(), &response))
		assert.Len(t, response.Data, 2)
	})

	t.Run("requires a token", func(t *testing.T) {
		res, err := test.PerformRequest(t, "GET", "/webhooks/logs", nil, nil, env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})
}

func TestClearWebhookLogs(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	env.auditLog.Record(ctx, audit.Entry{EventID: "evt_1", Rail: "card", Status: audit.StatusProcessed})

	t.Run("merchants may not clear", func(t *testing.T) {
		res, err := test.PerformRequest(t, "DELETE", "/webhooks/logs", nil, bearerHeaders(t, env.merchant), env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, res.Code)

		entries, err := env.auditLog.ListRecent(ctx, nil)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("admins clear the trail", func(t *testing.T) {
		res, err := test.PerformRequest(t, "DELETE", "/webhooks/logs", nil, bearerHeaders(t, env.admin), env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)

		entries, err := env.auditLog.ListRecent(ctx, nil)
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestCloseInvoice(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	t.Run("closes a sent invoice", func(t *testing.T) {
		inv, err := test.CreateTestInvoice(env.merchant, nil)
		assert.NoError(t, err)

		res, err := test.PerformRequest(t, "POST",
			fmt.Sprintf("/invoices/%s/close", inv.ID), nil, bearerHeaders(t, env.merchant), env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Code)

		after, err := db.Client.Invoice.Get(ctx, inv.ID)
		assert.NoError(t, err)
		assert.Equal(t, invoice.StatusClosed, after.Status)
	})

	t.Run("paid invoices cannot be closed", func(t *testing.T) {
		inv, err := test.CreateTestInvoice(env.merchant, map[string]interface{}{
			"status":           "paid",
			"gatewayInvoiceID": "INV-paid",
		})
		assert.NoError(t, err)

		res, err := test.PerformRequest(t, "POST",
			fmt.Sprintf("/invoices/%s/close", inv.ID), nil, bearerHeaders(t, env.merchant), env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusConflict, res.Code)

		after, err := db.Client.Invoice.Get(ctx, inv.ID)
		assert.NoError(t, err)
		assert.Equal(t, invoice.StatusPaid, after.Status)
	})

	t.Run("another merchant's invoice is not found", func(t *testing.T) {
		inv, err := test.CreateTestInvoice(env.merchant, map[string]interface{}{
			"gatewayInvoiceID": "INV-foreign",
		})
		assert.NoError(t, err)

		res, err := test.PerformRequest(t, "POST",
			fmt.Sprintf("/invoices/%s/close", inv.ID), nil, bearerHeaders(t, env.admin), env.router)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}
