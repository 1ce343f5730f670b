package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"anantha_back_end/internal/database"
	"anantha_back_end/internal/models"
	"anantha_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateRazorpayOrder crée une commande côté gateway. Le montant arrive en
// roupies et part en paise (x100), conformément à l'API Razorpay.
func CreateRazorpayOrder(c *gin.Context) {
	var input struct {
		Amount   float64 `json:"amount" binding:"required,gt=0"`
		Currency string  `json:"currency"`
		Receipt  string  `json:"receipt"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount (> 0) is required"})
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = "INR"
	}

	client, settings := services.NewRazorpayClient(c.Request.Context())
	if settings.KeyID == "" || settings.KeySecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Razorpay is not configured"})
		return
	}

	amountPaise := services.RupeesToPaise(input.Amount)
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  input.Receipt,
	}

	rzpOrder, err := client.Order.Create(data, nil)
	if err != nil {
		log.Println("❌ Erreur création commande Razorpay:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create Razorpay order"})
		return
	}

	orderID, _ := rzpOrder["id"].(string)
	log.Printf("💳 Commande Razorpay créée: %s (%d paise)", orderID, amountPaise)

	c.JSON(http.StatusOK, gin.H{
		"razorpay_order_id": orderID,
		"amount":            amountPaise,
		"currency":          currency,
		"key_id":            settings.KeyID,
	})
}

// VerifyRazorpayPayment vérifie la signature du callback de paiement et,
// quand l'order interne est lié, le marque payé et confirmé
func VerifyRazorpayPayment(c *gin.Context) {
	var input struct {
		RazorpayOrderID   string `json:"razorpay_order_id"`
		RazorpayPaymentID string `json:"razorpay_payment_id"`
		RazorpaySignature string `json:"razorpay_signature"`
		OrderID           string `json:"order_id"`
	}

	if err := c.ShouldBindJSON(&input); err != nil ||
		input.RazorpayOrderID == "" || input.RazorpayPaymentID == "" || input.RazorpaySignature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Missing required payment verification fields"})
		return
	}

	settings := services.GetRazorpaySettings(c.Request.Context())
	if settings.KeySecret == "" {
		// Sans secret, impossible d'authentifier le callback : refuser
		// plutôt que de valider une signature forgeable
		log.Println("❌ Vérification de paiement reçue alors que Razorpay n'est pas configuré")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Razorpay is not configured"})
		return
	}

	if !services.VerifyRazorpaySignature(input.RazorpayOrderID, input.RazorpayPaymentID, input.RazorpaySignature, settings.KeySecret) {
		log.Printf("❌ Signature Razorpay invalide pour %s", input.RazorpayOrderID)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment signature"})
		return
	}

	// Retrouver la commande interne : par id explicite ou par razorpay_order_id
	filter := bson.M{"razorpay_order_id": input.RazorpayOrderID}
	if input.OrderID != "" {
		filter = bson.M{"_id": input.OrderID}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	err := database.Orders().FindOne(ctx, filter).Decode(&order)
	if err != nil {
		// Signature valide mais pas de commande liée : on répond vérifié,
		// le front enchaîne sur complete-payment
		log.Printf("⚠️ Paiement vérifié sans commande liée: %s", input.RazorpayOrderID)
		c.JSON(http.StatusOK, gin.H{"verified": true, "message": "Payment verified"})
		return
	}

	update := bson.M{
		"payment_status":    models.PaymentCompleted,
		"razorpay_order_id": input.RazorpayOrderID,
		"updated_at":        time.Now().UTC(),
	}
	if order.OrderStatus == models.OrderPending {
		update["order_status"] = models.OrderConfirmed
	}

	if _, err := database.Orders().UpdateOne(ctx, bson.M{"_id": order.ID}, bson.M{"$set": update}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update order"})
		return
	}

	log.Printf("✅ Paiement Razorpay vérifié et commande confirmée: %s", order.ID)
	c.JSON(http.StatusOK, gin.H{
		"verified":      true,
		"message":       "Payment verified",
		"order_id":      order.ID,
		"tracking_code": order.TrackingCode,
	})
}
