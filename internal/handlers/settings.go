package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"anantha_back_end/internal/database"
	"anantha_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetPaymentSettings lit le document singleton des moyens de paiement (admin)
func GetPaymentSettings(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var settings models.PaymentSettings
	err := database.Settings().FindOne(ctx, bson.M{"_id": models.PaymentSettingsID}).Decode(&settings)
	if err != nil {
		// Défauts quand aucun réglage n'a encore été écrit
		settings = models.PaymentSettings{
			ID:             models.PaymentSettingsID,
			PaymentEnabled: true,
			CODEnabled:     true,
			OnlineEnabled:  true,
		}
	}
	c.JSON(http.StatusOK, settings)
}

// UpdatePaymentSettings modifie les toggles de paiement (admin).
// Accepte le body JSON ou la forme historique en query (?status=enabled|disabled).
func UpdatePaymentSettings(c *gin.Context) {
	update := bson.M{"updated_at": time.Now().UTC()}

	if status := c.Query("status"); status != "" {
		switch status {
		case "enabled":
			update["payment_enabled"] = true
		case "disabled":
			update["payment_enabled"] = false
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be 'enabled' or 'disabled'"})
			return
		}
	} else {
		var input struct {
			PaymentEnabled *bool `json:"payment_enabled"`
			CODEnabled     *bool `json:"cod_enabled"`
			OnlineEnabled  *bool `json:"online_enabled"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
			return
		}
		if input.PaymentEnabled != nil {
			update["payment_enabled"] = *input.PaymentEnabled
		}
		if input.CODEnabled != nil {
			update["cod_enabled"] = *input.CODEnabled
		}
		if input.OnlineEnabled != nil {
			update["online_enabled"] = *input.OnlineEnabled
		}
		if len(update) == 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := database.Settings().UpdateOne(ctx,
		bson.M{"_id": models.PaymentSettingsID},
		bson.M{"$set": update},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update payment settings"})
		return
	}

	log.Println("✅ Réglages paiement mis à jour")
	c.JSON(http.StatusOK, gin.H{"message": "Payment settings updated"})
}

// GetFreeDeliverySettings expose publiquement la règle globale de livraison
// gratuite affichée au checkout. Défauts du déploiement historique (activée,
// seuil ₹1000) tant qu'aucun réglage n'a été écrit ; les seuils par ville
// restent portés par la table des locations.
func GetFreeDeliverySettings(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var settings models.FreeDeliverySettings
	err := database.Settings().FindOne(ctx, bson.M{"_id": models.FreeDeliverySettingsID}).Decode(&settings)
	if err != nil {
		settings = models.FreeDeliverySettings{
			ID:        models.FreeDeliverySettingsID,
			Enabled:   true,
			Threshold: 1000,
		}
	}
	c.JSON(http.StatusOK, settings)
}

// GetRazorpaySettings lit les credentials gateway (admin)
func GetRazorpaySettings(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var settings models.RazorpaySettings
	err := database.Settings().FindOne(ctx, bson.M{"_id": models.RazorpaySettingsID}).Decode(&settings)
	if err != nil {
		settings = models.RazorpaySettings{ID: models.RazorpaySettingsID}
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateRazorpaySettings stocke les credentials gateway (admin).
// Accepte body JSON ou la forme historique en query (?key_id=&key_secret=).
func UpdateRazorpaySettings(c *gin.Context) {
	keyID := c.Query("key_id")
	keySecret := c.Query("key_secret")

	if keyID == "" && keySecret == "" {
		var input struct {
			KeyID     string `json:"key_id"`
			KeySecret string `json:"key_secret"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "key_id and key_secret are required"})
			return
		}
		keyID = input.KeyID
		keySecret = input.KeySecret
	}

	if keyID == "" || keySecret == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key_id and key_secret are required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := database.Settings().UpdateOne(ctx,
		bson.M{"_id": models.RazorpaySettingsID},
		bson.M{"$set": bson.M{"key_id": keyID, "key_secret": keySecret, "updated_at": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update Razorpay settings"})
		return
	}

	log.Println("✅ Credentials Razorpay mis à jour")
	c.JSON(http.StatusOK, gin.H{"message": "Razorpay settings updated"})
}
