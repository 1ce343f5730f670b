package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"anantha_back_end/internal/database"
	"anantha_back_end/internal/models"
	"anantha_back_end/internal/services"
	"anantha_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// isGatewayPayment : les paiements en ligne attendent le callback de la
// gateway avant confirmation, le COD confirme immédiatement
func isGatewayPayment(method string) bool {
	switch method {
	case "cod", "cash", "cash_on_delivery":
		return false
	}
	return true
}

// CreateOrder crée une commande. Les frais de livraison sont recalculés côté
// serveur à partir de la table des villes : la valeur stockée reflète la règle
// active au moment de la création et n'est jamais recalculée ensuite.
func CreateOrder(c *gin.Context) {
	var input struct {
		UserID           string             `json:"user_id"`
		CustomerName     string             `json:"customer_name" binding:"required"`
		Email            string             `json:"email" binding:"required,email"`
		Phone            string             `json:"phone" binding:"required"`
		DoorNo           string             `json:"doorNo"`
		Building         string             `json:"building"`
		Street           string             `json:"street"`
		City             string             `json:"city" binding:"required"`
		State            string             `json:"state" binding:"required"`
		Pincode          string             `json:"pincode"`
		Items            []models.OrderItem `json:"items" binding:"required,min=1"`
		Subtotal         float64            `json:"subtotal"`
		DeliveryCharge   float64            `json:"delivery_charge"`
		Total            float64            `json:"total"`
		PaymentMethod    string             `json:"payment_method" binding:"required"`
		PaymentSubMethod string             `json:"payment_sub_method"`
	}

	// Le front historique attend un 422 à la FastAPI sur payload incomplet
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Missing required order fields: " + err.Error()})
		return
	}

	// Sous-total recalculé depuis les lignes, la valeur client n'est qu'indicative
	subtotal := 0.0
	for _, item := range input.Items {
		if item.Quantity <= 0 || item.Price < 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid item price or quantity"})
			return
		}
		subtotal += item.Price * float64(item.Quantity)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	deliveryCharge, custom := services.ResolveDeliveryCharge(ctx, input.City, subtotal)
	total := subtotal + deliveryCharge

	orderStatus := models.OrderPending
	if !isGatewayPayment(input.PaymentMethod) {
		orderStatus = models.OrderConfirmed
	}

	now := time.Now().UTC()
	order := models.Order{
		ID:                uuid.New().String(),
		TrackingCode:      utils.GenerateTrackingCode(),
		UserID:            input.UserID,
		CustomerName:      input.CustomerName,
		Email:             input.Email,
		Phone:             input.Phone,
		DoorNo:            input.DoorNo,
		Building:          input.Building,
		Street:            input.Street,
		City:              input.City,
		State:             input.State,
		Pincode:           input.Pincode,
		Items:             input.Items,
		Subtotal:          subtotal,
		DeliveryCharge:    deliveryCharge,
		Total:             total,
		PaymentMethod:     input.PaymentMethod,
		PaymentSubMethod:  input.PaymentSubMethod,
		PaymentStatus:     models.PaymentPending,
		OrderStatus:       orderStatus,
		CustomCityRequest: custom,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := database.Orders().InsertOne(ctx, order); err != nil {
		log.Println("❌ Erreur insertion commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create order"})
		return
	}

	services.EnqueueEmail(c.Request.Context(), order.Email,
		"🛍️ Order Received - Anantha Lakshmi Foods",
		utils.GenerateOrderConfirmationHTML(order))

	if custom {
		log.Printf("⚠️ Custom city request: %q — suivi admin requis (commande %s)", order.City, order.ID)
	}
	log.Printf("✅ Commande créée: %s (suivi %s, ₹%.2f, %s)", order.ID, order.TrackingCode, order.Total, order.OrderStatus)

	c.JSON(http.StatusOK, gin.H{
		"order_id":            order.ID,
		"tracking_code":       order.TrackingCode,
		"message":             "Order placed successfully",
		"payment_status":      order.PaymentStatus,
		"order_status":        order.OrderStatus,
		"custom_city_request": order.CustomCityRequest,
		"delivery_charge":     order.DeliveryCharge,
		"total":               order.Total,
	})
}

// TrackOrder retrouve des commandes par id, code de suivi, téléphone ou email
func TrackOrder(c *gin.Context) {
	query := c.Param("query")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"_id": query},
		{"tracking_code": query},
		{"phone": query},
		{"email": query},
	}}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := database.Orders().Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not search orders"})
		return
	}

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode orders"})
		return
	}

	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No orders found", "orders": []models.Order{}, "total": 0})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
}

// GetOrders liste toutes les commandes (admin)
func GetOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := database.Orders().Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch orders"})
		return
	}

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// transitionOrder applique un changement de statut en validant la progression
// stricte, persiste, puis met l'e-mail client en file (best-effort)
func transitionOrder(c *gin.Context, orderID, newStatus, notes string) {
	if !models.IsValidOrderStatus(newStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	if err := database.Orders().FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if !models.CanTransition(order.OrderStatus, newStatus) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid status transition from '" + order.OrderStatus + "' to '" + newStatus + "'",
		})
		return
	}

	update := bson.M{"order_status": newStatus, "updated_at": time.Now().UTC()}
	if notes != "" {
		update["admin_notes"] = notes
	}

	if _, err := database.Orders().UpdateOne(ctx, bson.M{"_id": orderID}, bson.M{"$set": update}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update order"})
		return
	}

	order.OrderStatus = newStatus
	services.EnqueueEmail(c.Request.Context(), order.Email,
		utils.GetOrderStatusSubject(newStatus),
		utils.GenerateOrderStatusHTML(order, newStatus))

	log.Printf("✅ Commande %s: statut → %s", orderID, newStatus)
	c.JSON(http.StatusOK, gin.H{
		"message":       "Order status updated",
		"order_id":      orderID,
		"order_status":  newStatus,
		"tracking_code": order.TrackingCode,
	})
}

// UpdateOrderStatus change le statut d'une commande (admin)
func UpdateOrderStatus(c *gin.Context) {
	var input struct {
		OrderStatus string `json:"order_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_status is required"})
		return
	}
	transitionOrder(c, c.Param("id"), input.OrderStatus, "")
}

// AdminUpdateOrder change le statut avec notes internes (admin)
func AdminUpdateOrder(c *gin.Context) {
	var input struct {
		OrderStatus string `json:"order_status" binding:"required"`
		Notes       string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_status is required"})
		return
	}
	transitionOrder(c, c.Param("id"), input.OrderStatus, input.Notes)
}

// CancelOrder annule une commande non terminale
func CancelOrder(c *gin.Context) {
	transitionOrder(c, c.Param("id"), models.OrderCancelled, "")
}

// CompletePayment marque le paiement terminé et confirme la commande
// (callback de paiement ou validation manuelle)
func CompletePayment(c *gin.Context) {
	orderID := c.Param("id")

	var input struct {
		PaymentSubMethod string `json:"payment_sub_method"`
	}
	c.ShouldBindJSON(&input) // optionnel

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	if err := database.Orders().FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.PaymentStatus == models.PaymentCompleted {
		c.JSON(http.StatusOK, gin.H{
			"message":       "Payment already completed",
			"order_status":  order.OrderStatus,
			"tracking_code": order.TrackingCode,
		})
		return
	}

	if order.OrderStatus == models.OrderCancelled {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot complete payment for a cancelled order"})
		return
	}

	update := bson.M{
		"payment_status": models.PaymentCompleted,
		"updated_at":     time.Now().UTC(),
	}
	// La confirmation n'écrase pas un statut déjà plus avancé
	newStatus := order.OrderStatus
	if order.OrderStatus == models.OrderPending {
		newStatus = models.OrderConfirmed
		update["order_status"] = newStatus
	}
	if input.PaymentSubMethod != "" {
		update["payment_sub_method"] = input.PaymentSubMethod
	}

	if _, err := database.Orders().UpdateOne(ctx, bson.M{"_id": orderID}, bson.M{"$set": update}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not complete payment"})
		return
	}

	order.OrderStatus = newStatus
	services.EnqueueEmail(c.Request.Context(), order.Email,
		"✅ Payment Received - Anantha Lakshmi Foods",
		utils.GeneratePaymentCompletedHTML(order))

	log.Printf("💳 Paiement complété pour la commande %s (payment completion email en file)", orderID)
	c.JSON(http.StatusOK, gin.H{
		"message":        "Payment completed",
		"order_id":       orderID,
		"order_status":   newStatus,
		"payment_status": models.PaymentCompleted,
		"tracking_code":  order.TrackingCode,
	})
}
