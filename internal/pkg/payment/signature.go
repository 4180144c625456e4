package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/domain/model"
)

// SignatureStrategy accepts a payment only when the provider signature over
// "<provider_order_id>|<payment_id>" matches the shop's key secret.
type SignatureStrategy struct {
	secret []byte
}

func NewSignatureStrategy(secret string) *SignatureStrategy {
	return &SignatureStrategy{secret: []byte(secret)}
}

func (s *SignatureStrategy) Name() string { return "signature" }

// Resolve verifies the signature in constant time.
func (s *SignatureStrategy) Resolve(c Confirmation) (model.PaymentOutcome, error) {
	expected := Sign(c.ProviderOrderID, c.PaymentID, s.secret)
	if !hmac.Equal([]byte(expected), []byte(c.Signature)) {
		return model.PaymentOutcome{}, domainErrors.ErrPaymentVerification
	}

	return model.PaymentOutcome{
		Paid: true,
		Result: model.PaymentResult{
			ID:                c.PaymentID,
			Status:            model.PaymentStatusCompleted,
			RazorpayOrderID:   c.ProviderOrderID,
			RazorpayPaymentID: c.PaymentID,
			RazorpaySignature: c.Signature,
		},
	}, nil
}

// Sign returns the lowercase hex HMAC-SHA256 the provider attaches to a payment.
func Sign(providerOrderID, paymentID string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(providerOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
