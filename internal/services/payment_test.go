package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayment(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyRazorpaySignature(t *testing.T) {
	const secret = "test_secret_key"

	t.Run("Signature valide", func(t *testing.T) {
		sig := signPayment("order_ABC123", "pay_XYZ789", secret)
		assert.True(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", sig, secret))
	})

	t.Run("Mauvais secret", func(t *testing.T) {
		sig := signPayment("order_ABC123", "pay_XYZ789", "autre_secret")
		assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", sig, secret))
	})

	t.Run("Signature forgée", func(t *testing.T) {
		assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", "deadbeef", secret))
	})

	t.Run("Payment id substitué", func(t *testing.T) {
		sig := signPayment("order_ABC123", "pay_XYZ789", secret)
		assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_AUTRE", sig, secret))
	})

	t.Run("Champs manquants", func(t *testing.T) {
		sig := signPayment("order_ABC123", "pay_XYZ789", secret)
		assert.False(t, VerifyRazorpaySignature("", "pay_XYZ789", sig, secret))
		assert.False(t, VerifyRazorpaySignature("order_ABC123", "", sig, secret))
		assert.False(t, VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", "", secret))
	})

	t.Run("Secret vide refusé", func(t *testing.T) {
		// Gateway non configurée : même une signature HMAC correctement
		// calculée avec le secret vide ne doit jamais passer
		sig := signPayment("order_FORGED", "pay_FORGED", "")
		assert.False(t, VerifyRazorpaySignature("order_FORGED", "pay_FORGED", sig, ""))
	})
}

func TestRupeesToPaise(t *testing.T) {
	assert.Equal(t, int64(9900), RupeesToPaise(99))
	assert.Equal(t, int64(12345), RupeesToPaise(123.45))
	assert.Equal(t, int64(114900), RupeesToPaise(1149))

	// Arrondi au paise le plus proche, pas de troncature flottante
	assert.Equal(t, int64(29), RupeesToPaise(0.29))
	assert.Equal(t, int64(19999), RupeesToPaise(199.99))
}
