// Package token issues and validates the JWTs used for merchant sessions.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/payloop/billing/config"
)

// GenerateAccessJWT generates an access token with a short expiry for a user id and scope
func GenerateAccessJWT(userID, scope string) (string, error) {
	return generateJWT(userID, scope, config.AuthConfig().JwtAccessLifespan)
}

// GenerateRefreshJWT generates a refresh token with a long expiry for a user id and scope
func GenerateRefreshJWT(userID, scope string) (string, error) {
	return generateJWT(userID, scope, config.AuthConfig().JwtRefreshLifespan)
}

// GeneratePairJWT generates both access and refresh tokens
func GeneratePairJWT(userID, scope string) (string, string, error) {
	access, err := GenerateAccessJWT(userID, scope)
	if err != nil {
		return "", "", err
	}

	refresh, err := GenerateRefreshJWT(userID, scope)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func generateJWT(userID, scope string, lifespan time.Duration) (string, error) {
	conf := config.AuthConfig()

	claims := jwt.MapClaims{
		"sub":   userID,
		"scope": scope,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(lifespan).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(conf.Secret))
}

// ValidateJWT parses and verifies a token string, returning its claims
func ValidateJWT(tokenString string) (jwt.MapClaims, error) {
	conf := config.AuthConfig()

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(conf.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
