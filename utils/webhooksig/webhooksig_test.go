package webhooksig

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	testSecret = []byte("whsec_test_secret")
	testBody   = []byte(`{"event_id":"evt_1","type":"transaction.sale","data":{"orderid":"INV-77","response":"1"}}`)
)

func signedHeader(body []byte, nonce string, secret []byte) string {
	return fmt.Sprintf("t=%s,s=%s", nonce, Sign(body, nonce, secret))
}

func TestVerify(t *testing.T) {
	t.Run("accepts a correctly signed payload", func(t *testing.T) {
		header := signedHeader(testBody, "nonce-1", testSecret)

		nonce, err := Verify(testBody, header, testSecret)
		assert.NoError(t, err)
		assert.Equal(t, "nonce-1", nonce)
	})

	t.Run("accepts uppercase hex signatures", func(t *testing.T) {
		header := fmt.Sprintf("t=nonce-1,s=%s", strings.ToUpper(Sign(testBody, "nonce-1", testSecret)))

		_, err := Verify(testBody, header, testSecret)
		assert.NoError(t, err)
	})

	t.Run("rejects a tampered body", func(t *testing.T) {
		header := signedHeader(testBody, "nonce-1", testSecret)
		tampered := []byte(strings.Replace(string(testBody), `"response":"1"`, `"response":"0"`, 1))

		_, err := Verify(tampered, header, testSecret)
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	})

	t.Run("rejects a signature under the wrong secret", func(t *testing.T) {
		header := signedHeader(testBody, "nonce-1", []byte("some-other-secret"))

		_, err := Verify(testBody, header, testSecret)
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	})

	t.Run("rejects a swapped nonce", func(t *testing.T) {
		signature := Sign(testBody, "nonce-1", testSecret)
		header := fmt.Sprintf("t=nonce-2,s=%s", signature)

		_, err := Verify(testBody, header, testSecret)
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	})

	t.Run("rejects equal-length forgeries differing at the first and last byte", func(t *testing.T) {
		signature := Sign(testBody, "nonce-1", testSecret)

		flip := func(c byte) byte {
			if c == 'a' {
				return 'b'
			}
			return 'a'
		}

		forgedFirst := string(flip(signature[0])) + signature[1:]
		forgedLast := signature[:len(signature)-1] + string(flip(signature[len(signature)-1]))

		for _, forged := range []string{forgedFirst, forgedLast} {
			_, err := Verify(testBody, fmt.Sprintf("t=nonce-1,s=%s", forged), testSecret)
			assert.ErrorIs(t, err, ErrSignatureMismatch)
		}
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		_, err := Verify(testBody, "", testSecret)
		assert.ErrorIs(t, err, ErrMissingSignature)
	})

	t.Run("rejects malformed headers", func(t *testing.T) {
		for _, header := range []string{
			"t=nonce-1",
			"s=deadbeef",
			"t=nonce-1,s=",
			"t=nonce-1,s=not-hex!",
			"nonce-1.deadbeef",
			"t=,s=deadbeef",
		} {
			_, err := Verify(testBody, header, testSecret)
			assert.Error(t, err, "header %q should not verify", header)
		}
	})
}
