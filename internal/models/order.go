package models

import "time"

// Statuts de commande
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Statuts de paiement
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
)

// OrderItem est une ligne de commande
type OrderItem struct {
	ProductID   string  `bson:"product_id" json:"product_id"`
	Name        string  `bson:"name" json:"name"`
	Image       string  `bson:"image,omitempty" json:"image,omitempty"`
	Weight      string  `bson:"weight,omitempty" json:"weight,omitempty"`
	Price       float64 `bson:"price" json:"price"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
}

// Order est une commande client
type Order struct {
	ID                string      `bson:"_id" json:"id"`
	TrackingCode      string      `bson:"tracking_code" json:"tracking_code"`
	UserID            string      `bson:"user_id,omitempty" json:"user_id,omitempty"`
	CustomerName      string      `bson:"customer_name" json:"customer_name"`
	Email             string      `bson:"email" json:"email"`
	Phone             string      `bson:"phone" json:"phone"`
	DoorNo            string      `bson:"door_no,omitempty" json:"doorNo,omitempty"`
	Building          string      `bson:"building,omitempty" json:"building,omitempty"`
	Street            string      `bson:"street,omitempty" json:"street,omitempty"`
	City              string      `bson:"city" json:"city"`
	State             string      `bson:"state" json:"state"`
	Pincode           string      `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Items             []OrderItem `bson:"items" json:"items"`
	Subtotal          float64     `bson:"subtotal" json:"subtotal"`
	DeliveryCharge    float64     `bson:"delivery_charge" json:"delivery_charge"`
	Total             float64     `bson:"total" json:"total"`
	PaymentMethod     string      `bson:"payment_method" json:"payment_method"`
	PaymentSubMethod  string      `bson:"payment_sub_method,omitempty" json:"payment_sub_method,omitempty"`
	PaymentStatus     string      `bson:"payment_status" json:"payment_status"`
	OrderStatus       string      `bson:"order_status" json:"order_status"`
	CustomCityRequest bool        `bson:"custom_city_request" json:"custom_city_request"`
	AdminNotes        string      `bson:"admin_notes,omitempty" json:"admin_notes,omitempty"`
	RazorpayOrderID   string      `bson:"razorpay_order_id,omitempty" json:"razorpay_order_id,omitempty"`
	CreatedAt         time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time   `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// orderStatusRank ordonne la progression normale d'une commande.
// cancelled est hors rang : accessible depuis tout état non terminal.
var orderStatusRank = map[string]int{
	OrderPending:    0,
	OrderConfirmed:  1,
	OrderProcessing: 2,
	OrderShipped:    3,
	OrderDelivered:  4,
}

// IsValidOrderStatus vérifie qu'un statut est connu
func IsValidOrderStatus(status string) bool {
	if status == OrderCancelled {
		return true
	}
	_, ok := orderStatusRank[status]
	return ok
}

// CanTransition vérifie qu'un changement de statut avance strictement,
// sans jamais régresser. delivered et cancelled sont terminaux.
func CanTransition(from, to string) bool {
	if !IsValidOrderStatus(from) || !IsValidOrderStatus(to) {
		return false
	}
	if from == OrderCancelled || from == OrderDelivered {
		return false
	}
	if to == OrderCancelled {
		return true
	}
	return orderStatusRank[to] > orderStatusRank[from]
}
