// Package webhooksig verifies the authenticity of inbound payment webhooks.
//
// The card processor signs each delivery with a `Webhook-Signature` header of
// the form `t=<nonce>,s=<hex hmac-sha256>`, where the signature covers
// `<nonce> + "." + <raw body>` under the merchant's webhook signing secret.
//
// The nonce carries no freshness guarantee: a validly signed payload replayed
// later still verifies. Duplicate and stale deliveries are absorbed downstream
// by the reconciliation engine's idempotent transitions.
package webhooksig

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrMissingSignature indicates the signature header was absent.
	ErrMissingSignature = errors.New("missing signature header")
	// ErrMalformedHeader indicates the header did not match `t=<nonce>,s=<signature>`.
	ErrMalformedHeader = errors.New("malformed signature header")
	// ErrSignatureMismatch indicates the signature did not verify against the body.
	ErrSignatureMismatch = errors.New("signature mismatch")
)

var headerPattern = regexp.MustCompile(`^t=([^,]+),s=([0-9a-fA-F]+)$`)

// Sign computes the hex-encoded HMAC-SHA256 signature for a nonce and body.
func Sign(rawBody []byte, nonce string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(nonce))
	mac.Write([]byte("."))
	mac.Write(rawBody)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks the signature header against the raw request body and returns
// the nonce on success. The comparison is constant-time.
func Verify(rawBody []byte, headerValue string, secret []byte) (string, error) {
	if headerValue == "" {
		return "", ErrMissingSignature
	}

	matches := headerPattern.FindStringSubmatch(headerValue)
	if matches == nil {
		return "", ErrMalformedHeader
	}
	nonce, signature := matches[1], strings.ToLower(matches[2])

	expected := Sign(rawBody, nonce, secret)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return "", ErrSignatureMismatch
	}

	return nonce, nil
}
