package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/payloop/billing/ent"
	"github.com/payloop/billing/ent/paymentcredentials"
	"github.com/payloop/billing/ent/user"
	"github.com/payloop/billing/types"
	cryptoUtils "github.com/payloop/billing/utils/crypto"
)

// LoadCardCredentials fetches and decrypts a merchant's card rail credentials.
// The decrypted material is scoped to the caller and must not outlive the
// outbound call it was loaded for.
func LoadCardCredentials(ctx context.Context, client *ent.Client, merchantID uuid.UUID) (*types.CardCredentials, error) {
	creds, err := client.PaymentCredentials.
		Query().
		Where(paymentcredentials.HasOwnerWith(user.IDEQ(merchantID))).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch card credentials for merchant %s: %w", merchantID, err)
	}

	if len(creds.CardPrivateKey) == 0 {
		return nil, fmt.Errorf("merchant %s has no card credentials configured", merchantID)
	}

	securityKey, err := cryptoUtils.DecryptPlain(creds.CardPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt card security key: %w", err)
	}

	var webhookSecret []byte
	if len(creds.CardWebhookSecret) > 0 {
		webhookSecret, err = cryptoUtils.DecryptPlain(creds.CardWebhookSecret)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt card webhook secret: %w", err)
		}
	}

	return &types.CardCredentials{
		PublicKey:     creds.CardPublicKey,
		SecurityKey:   string(securityKey),
		WebhookSecret: webhookSecret,
	}, nil
}

// LoadBeadCredentials fetches and decrypts a merchant's crypto rail credential bundle
func LoadBeadCredentials(ctx context.Context, client *ent.Client, merchantID uuid.UUID) (*types.BeadCredentials, error) {
	creds, err := client.PaymentCredentials.
		Query().
		Where(paymentcredentials.HasOwnerWith(user.IDEQ(merchantID))).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch crypto credentials for merchant %s: %w", merchantID, err)
	}

	if creds.BeadMerchantID == "" || len(creds.BeadPassword) == 0 {
		return nil, fmt.Errorf("merchant %s has no crypto credentials configured", merchantID)
	}

	password, err := cryptoUtils.DecryptPlain(creds.BeadPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt crypto credential: %w", err)
	}

	return &types.BeadCredentials{
		MerchantID: creds.BeadMerchantID,
		TerminalID: creds.BeadTerminalID,
		Username:   creds.BeadUsername,
		Password:   string(password),
	}, nil
}
