package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	u "github.com/payloop/billing/utils"
	"github.com/payloop/billing/utils/token"
)

// JWTMiddleware validates the bearer token and stores the session identity on
// the request context as user_id and scope
func JWTMiddleware(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		u.APIResponse(ctx, http.StatusUnauthorized, "error", "Missing or invalid Authorization header", nil)
		ctx.Abort()
		return
	}

	claims, err := token.ValidateJWT(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		u.APIResponse(ctx, http.StatusUnauthorized, "error", "Invalid or expired token", nil)
		ctx.Abort()
		return
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		u.APIResponse(ctx, http.StatusUnauthorized, "error", "Invalid or expired token", nil)
		ctx.Abort()
		return
	}

	scope, _ := claims["scope"].(string)

	ctx.Set("user_id", userID)
	ctx.Set("scope", scope)
	ctx.Next()
}

// OnlyAdminMiddleware restricts a route to admin sessions. Must run after
// JWTMiddleware.
func OnlyAdminMiddleware(ctx *gin.Context) {
	if ctx.GetString("scope") != "admin" {
		u.APIResponse(ctx, http.StatusForbidden, "error", "Insufficient permissions", nil)
		ctx.Abort()
		return
	}
	ctx.Next()
}
