package gateway

import (
	"context"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/payloop/billing/ent"
	"github.com/payloop/billing/ent/enttest"
	db "github.com/payloop/billing/storage"
	"github.com/payloop/billing/utils/test"
)

func setupCredentials(t *testing.T) *ent.User {
	t.Helper()
	test.SetupTestConfig()

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	db.Client = client

	merchant, err := test.CreateTestUser(nil)
	assert.NoError(t, err)

	_, err = test.CreateTestPaymentCredentials(merchant, nil)
	assert.NoError(t, err)

	return merchant
}

func TestLoadCardCredentials(t *testing.T) {
	merchant := setupCredentials(t)
	ctx := context.Background()

	creds, err := LoadCardCredentials(ctx, db.Client, merchant.ID)
	assert.NoError(t, err)
	assert.Equal(t, "pub_test_key", creds.PublicKey)
	assert.Equal(t, "sec_test_key", creds.SecurityKey)
	assert.Equal(t, []byte("whsec_test_secret"), creds.WebhookSecret)

	// The persisted rows hold only ciphertext
	stored, err := db.Client.PaymentCredentials.Query().Only(ctx)
	assert.NoError(t, err)
	assert.NotContains(t, string(stored.CardPrivateKey), "sec_test_key")
	assert.NotContains(t, string(stored.CardWebhookSecret), "whsec_test_secret")
}

func TestLoadBeadCredentials(t *testing.T) {
	merchant := setupCredentials(t)
	ctx := context.Background()

	creds, err := LoadBeadCredentials(ctx, db.Client, merchant.ID)
	assert.NoError(t, err)
	assert.Equal(t, "merchant-1", creds.MerchantID)
	assert.Equal(t, "terminal-1", creds.TerminalID)
	assert.Equal(t, "bead-user", creds.Username)
	assert.Equal(t, "bead-pass", creds.Password)

	stored, err := db.Client.PaymentCredentials.Query().Only(ctx)
	assert.NoError(t, err)
	assert.NotContains(t, string(stored.BeadPassword), "bead-pass")
}

func TestLoadCredentialsUnknownMerchant(t *testing.T) {
	setupCredentials(t)
	ctx := context.Background()

	_, err := LoadCardCredentials(ctx, db.Client, uuid.New())
	assert.Error(t, err)

	_, err = LoadBeadCredentials(ctx, db.Client, uuid.New())
	assert.Error(t, err)
}
