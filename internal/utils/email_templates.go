package utils

import (
	"fmt"

	"anantha_back_end/internal/models"
)

// GetOrderStatusSubject retourne le sujet d'email pour un statut de commande
func GetOrderStatusSubject(status string) string {
	switch status {
	case models.OrderConfirmed:
		return "✅ Order Confirmed - Anantha Lakshmi Foods"
	case models.OrderProcessing:
		return "👩‍🍳 Your Order is Being Prepared - Anantha Lakshmi Foods"
	case models.OrderShipped:
		return "📦 Your Order Has Been Shipped - Anantha Lakshmi Foods"
	case models.OrderDelivered:
		return "🎉 Your Order Has Been Delivered - Anantha Lakshmi Foods"
	case models.OrderCancelled:
		return "❌ Order Cancelled - Anantha Lakshmi Foods"
	default:
		return "📋 Order Update - Anantha Lakshmi Foods"
	}
}

func getOrderStatusMessage(status string) string {
	switch status {
	case models.OrderConfirmed:
		return "Your order has been confirmed. We will start preparing it shortly."
	case models.OrderProcessing:
		return "Good news! Our kitchen has started preparing your order."
	case models.OrderShipped:
		return "Your order has been shipped and is on its way to you."
	case models.OrderDelivered:
		return "Your order has been delivered. We hope you enjoy it!"
	case models.OrderCancelled:
		return "Your order has been cancelled. If you have any questions, please contact us."
	default:
		return "The status of your order has been updated."
	}
}

func getOrderStatusColor(status string) string {
	switch status {
	case models.OrderConfirmed:
		return "#10b981"
	case models.OrderProcessing:
		return "#f59e0b"
	case models.OrderShipped:
		return "#3b82f6"
	case models.OrderDelivered:
		return "#8b5cf6"
	case models.OrderCancelled:
		return "#ef4444"
	default:
		return "#6b7280"
	}
}

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande
func GenerateOrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 10px; border: 1px solid #ddd;">%s (%s)</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 10px; border: 1px solid #ddd;">₹%.2f</td>
				<td style="padding: 10px; border: 1px solid #ddd;">₹%.2f</td>
			</tr>`, item.Name, item.Weight, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	deliveryLine := fmt.Sprintf("₹%.2f", order.DeliveryCharge)
	if order.DeliveryCharge == 0 {
		deliveryLine = "FREE"
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Order Confirmation</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #fff8f0; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #b45309;">Thank you for your order, %s!</h2>
		<p>Your order has been placed successfully.</p>
		<p><strong>Order Tracking Code:</strong> %s</p>

		<h3>Order Details</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #fef3c7;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Item</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Qty</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Price</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right;">Subtotal:</td>
					<td style="padding: 10px;">₹%.2f</td>
				</tr>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right;">Delivery:</td>
					<td style="padding: 10px;">%s</td>
				</tr>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right; font-weight: bold;">Total:</td>
					<td style="padding: 10px; font-weight: bold;">₹%.2f</td>
				</tr>
			</tfoot>
		</table>

		<p>Delivery address: %s, %s, %s, %s, %s - %s</p>

		<p style="margin-top: 30px; color: #555;">
			Warm regards,<br>
			<strong>Anantha Lakshmi Foods</strong>
		</p>
	</div>
</body>
</html>`, order.CustomerName, order.TrackingCode, itemsHTML,
		order.Subtotal, deliveryLine, order.Total,
		order.DoorNo, order.Building, order.Street, order.City, order.State, order.Pincode)
}

// GenerateOrderStatusHTML génère le HTML de mise à jour de statut
func GenerateOrderStatusHTML(order models.Order, status string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Order Update</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f5f5f5; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 30px; border-radius: 10px;">
		<h2 style="color: #b45309;">Anantha Lakshmi Foods</h2>
		<div style="display: inline-block; padding: 10px 22px; background-color: %s; color: #ffffff; border-radius: 25px; font-weight: 600; text-transform: uppercase;">
			%s
		</div>
		<p style="margin-top: 20px;">%s</p>
		<div style="background-color: #f8f9fa; border-radius: 8px; padding: 20px; margin: 20px 0;">
			<p style="margin: 5px 0;"><strong>Tracking code:</strong> %s</p>
			<p style="margin: 5px 0;"><strong>Total:</strong> ₹%.2f</p>
		</div>
		<p style="color: #666; font-size: 13px;">This email was sent automatically, please do not reply.</p>
	</div>
</body>
</html>`, getOrderStatusColor(status), status, getOrderStatusMessage(status), order.TrackingCode, order.Total)
}

// GeneratePaymentCompletedHTML génère le HTML de confirmation de paiement
func GeneratePaymentCompletedHTML(order models.Order) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Payment Received</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f5f5f5; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 30px; border-radius: 10px;">
		<h2 style="color: #10b981;">✅ Payment Received</h2>
		<p>Hi %s, we have received your payment of <strong>₹%.2f</strong>.</p>
		<p>Your order <strong>%s</strong> is confirmed and will be prepared shortly.</p>
		<p style="margin-top: 30px; color: #555;">Warm regards,<br><strong>Anantha Lakshmi Foods</strong></p>
	</div>
</body>
</html>`, order.CustomerName, order.Total, order.TrackingCode)
}

// GenerateSuggestionApprovedHTML : email envoyé quand la ville suggérée devient livrable
func GenerateSuggestionApprovedHTML(s models.CitySuggestion, charge, threshold float64) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>City Approved</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f5f5f5; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 30px; border-radius: 10px;">
		<h2 style="color: #10b981;">🎉 Great news, %s!</h2>
		<p>We now deliver to <strong>%s, %s</strong>.</p>
		<p>Delivery charge: <strong>₹%.0f</strong> — FREE for orders above <strong>₹%.0f</strong>.</p>
		<p>Visit our store and place your first order today!</p>
		<p style="margin-top: 30px; color: #555;">Warm regards,<br><strong>Anantha Lakshmi Foods</strong></p>
	</div>
</body>
</html>`, s.CustomerName, s.City, s.State, charge, threshold)
}

// GenerateSuggestionRejectedHTML : email envoyé quand la suggestion est refusée
func GenerateSuggestionRejectedHTML(s models.CitySuggestion) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>City Request Update</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f5f5f5; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 30px; border-radius: 10px;">
		<h2 style="color: #b45309;">Delivery Request Update</h2>
		<p>Hi %s,</p>
		<p>Thank you for your interest in delivery to <strong>%s, %s</strong>. Unfortunately we are not able to serve this city at the moment.</p>
		<p>We keep expanding and will notify you when your city becomes available.</p>
		<p style="margin-top: 30px; color: #555;">Warm regards,<br><strong>Anantha Lakshmi Foods</strong></p>
	</div>
</body>
</html>`, s.CustomerName, s.City, s.State)
}

// GenerateOTPHTML génère l'email de code à usage unique admin
func GenerateOTPHTML(code string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Password Change OTP</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f5f5f5; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 30px; border-radius: 10px;">
		<h2 style="color: #b45309;">🔐 Password Change Request</h2>
		<p>Your one-time code to change the admin password:</p>
		<p style="font-size: 32px; font-weight: bold; letter-spacing: 6px; color: #111;">%s</p>
		<p style="color: #666;">This code expires in 10 minutes. If you did not request this, ignore this email.</p>
	</div>
</body>
</html>`, code)
}
