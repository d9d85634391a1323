package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/payloop/billing/config"
	"golang.org/x/crypto/bcrypt"
)

// CheckPasswordHash is a function to compare provided password with the hashed password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// EncryptPlain encrypts plaintext using AES encryption algorithm with Galois Counter Mode
func EncryptPlain(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher([]byte(config.AuthConfig().Secret))
	if err != nil {
		return nil, err
	}

	// Create GCM with 12 byte nonce
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	// Generate random nonce
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	// Encrypt and append nonce
	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)

	return ciphertext, nil
}

// DecryptPlain decrypts ciphertext using AES encryption algorithm with Galois Counter Mode
func DecryptPlain(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher([]byte(config.AuthConfig().Secret))
	if err != nil {
		return nil, err
	}

	// Create GCM with nonce
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	// Parse nonce from ciphertext
	nonce, ciphertext := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]

	// Decrypt and return plaintext
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}

// GenerateSecureSeed generates a cryptographically secure random seed
func GenerateSecureSeed() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
