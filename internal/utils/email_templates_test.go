package utils

import (
	"testing"

	"anantha_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGetOrderStatusSubject(t *testing.T) {
	assert.Contains(t, GetOrderStatusSubject(models.OrderConfirmed), "Order Confirmed")
	assert.Contains(t, GetOrderStatusSubject(models.OrderShipped), "Shipped")
	assert.Contains(t, GetOrderStatusSubject(models.OrderCancelled), "Cancelled")
	assert.Contains(t, GetOrderStatusSubject("autre"), "Order Update")

	for _, s := range []string{models.OrderConfirmed, models.OrderProcessing, models.OrderShipped, models.OrderDelivered, models.OrderCancelled} {
		assert.Contains(t, GetOrderStatusSubject(s), "Anantha Lakshmi Foods")
	}
}

func TestGenerateOrderConfirmationHTML(t *testing.T) {
	order := models.Order{
		CustomerName:   "Ravi Kumar",
		TrackingCode:   "AL-7G4K9MQ2",
		City:           "Guntur",
		State:          "Andhra Pradesh",
		Items:          []models.OrderItem{{Name: "Ground Nut Laddu", Weight: "1kg", Price: 550, Quantity: 2}},
		Subtotal:       1100,
		DeliveryCharge: 0,
		Total:          1100,
	}

	html := GenerateOrderConfirmationHTML(order)
	assert.Contains(t, html, "Ravi Kumar")
	assert.Contains(t, html, "AL-7G4K9MQ2")
	assert.Contains(t, html, "Ground Nut Laddu")
	assert.Contains(t, html, "FREE")
	assert.Contains(t, html, "₹1100.00")

	order.DeliveryCharge = 49
	order.Total = 1149
	html = GenerateOrderConfirmationHTML(order)
	assert.Contains(t, html, "₹49.00")
	assert.NotContains(t, html, "FREE")
}

func TestGenerateSuggestionEmails(t *testing.T) {
	s := models.CitySuggestion{City: "Kavali", State: "Andhra Pradesh", CustomerName: "Lakshmi"}

	approved := GenerateSuggestionApprovedHTML(s, 79, 1000)
	assert.Contains(t, approved, "Kavali")
	assert.Contains(t, approved, "Lakshmi")

	rejected := GenerateSuggestionRejectedHTML(s)
	assert.Contains(t, rejected, "Kavali")
}
