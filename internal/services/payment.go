package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"os"
	"time"

	"anantha_back_end/internal/database"
	"anantha_back_end/internal/models"

	razorpay "github.com/razorpay/razorpay-go"
	"go.mongodb.org/mongo-driver/bson"
)

// GetRazorpaySettings lit les credentials gateway depuis le document singleton,
// avec repli sur les variables d'environnement
func GetRazorpaySettings(ctx context.Context) models.RazorpaySettings {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settings models.RazorpaySettings
	err := database.Settings().FindOne(ctx, bson.M{"_id": models.RazorpaySettingsID}).Decode(&settings)
	if err != nil || settings.KeyID == "" {
		settings.KeyID = os.Getenv("RAZORPAY_KEY_ID")
		settings.KeySecret = os.Getenv("RAZORPAY_KEY_SECRET")
	}
	return settings
}

// NewRazorpayClient construit un client avec les credentials actifs
func NewRazorpayClient(ctx context.Context) (*razorpay.Client, models.RazorpaySettings) {
	settings := GetRazorpaySettings(ctx)
	return razorpay.NewClient(settings.KeyID, settings.KeySecret), settings
}

// RupeesToPaise convertit un montant en roupies vers des paise entiers,
// arrondi au paise le plus proche (l'API Razorpay compte en paise)
func RupeesToPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// VerifyRazorpaySignature vérifie la signature HMAC-SHA256 renvoyée par la
// gateway après paiement : hex(hmac_sha256(order_id + "|" + payment_id, secret))
// Un secret vide signifie que la gateway n'est pas configurée : aucune
// signature ne peut être authentique dans ce cas, tout est refusé.
func VerifyRazorpaySignature(orderID, paymentID, signature, secret string) bool {
	if secret == "" {
		return false
	}
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
