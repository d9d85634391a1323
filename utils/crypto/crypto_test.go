package crypto

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	viper.Set("SECRET", "0123456789abcdef0123456789abcdef")
}

func TestEncryptDecryptPlain(t *testing.T) {
	secret := []byte("sec_live_key_material")

	ciphertext, err := EncryptPlain(secret)
	assert.NoError(t, err)
	assert.NotEqual(t, secret, ciphertext)

	plaintext, err := DecryptPlain(ciphertext)
	assert.NoError(t, err)
	assert.Equal(t, secret, plaintext)
}

func TestEncryptPlainIsSalted(t *testing.T) {
	first, err := EncryptPlain([]byte("same input"))
	assert.NoError(t, err)

	second, err := EncryptPlain([]byte("same input"))
	assert.NoError(t, err)

	// Random nonces: identical plaintexts must not produce identical ciphertexts
	assert.NotEqual(t, first, second)
}

func TestDecryptPlainRejectsTamperedCiphertext(t *testing.T) {
	ciphertext, err := EncryptPlain([]byte("credential"))
	assert.NoError(t, err)

	ciphertext[len(ciphertext)-1] ^= 0xff

	_, err = DecryptPlain(ciphertext)
	assert.Error(t, err)
}

func TestCheckPasswordHash(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	assert.NoError(t, err)

	assert.True(t, CheckPasswordHash("password", string(hashed)))
	assert.False(t, CheckPasswordHash("wrong", string(hashed)))
}
