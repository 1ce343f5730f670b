package models

import "time"

// Identifiants des documents singleton de la collection settings
const (
	PaymentSettingsID      = "payment_settings"
	RazorpaySettingsID     = "razorpay_settings"
	FreeDeliverySettingsID = "free_delivery_settings"
)

// PaymentSettings pilote les moyens de paiement proposés au checkout
type PaymentSettings struct {
	ID             string    `bson:"_id" json:"-"`
	PaymentEnabled bool      `bson:"payment_enabled" json:"payment_enabled"`
	CODEnabled     bool      `bson:"cod_enabled" json:"cod_enabled"`
	OnlineEnabled  bool      `bson:"online_enabled" json:"online_enabled"`
	UpdatedAt      time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// RazorpaySettings contient les credentials de la gateway
type RazorpaySettings struct {
	ID        string    `bson:"_id" json:"-"`
	KeyID     string    `bson:"key_id" json:"key_id"`
	KeySecret string    `bson:"key_secret" json:"key_secret"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// FreeDeliverySettings expose la règle globale de livraison gratuite au front
type FreeDeliverySettings struct {
	ID        string    `bson:"_id" json:"-"`
	Enabled   bool      `bson:"enabled" json:"enabled"`
	Threshold float64   `bson:"threshold" json:"threshold"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"-"`
}

// Report est un signalement de bug soumis par un client
type Report struct {
	ID               string    `bson:"_id" json:"id"`
	Email            string    `bson:"email" json:"email"`
	Mobile           string    `bson:"mobile" json:"mobile"`
	IssueDescription string    `bson:"issue_description" json:"issue_description"`
	Seen             bool      `bson:"seen" json:"seen"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

// NotificationDismissal mémorise, par admin et par catégorie, l'instant
// du dernier "tout marquer comme lu"
type NotificationDismissal struct {
	AdminID     string    `bson:"admin_id" json:"admin_id"`
	Type        string    `bson:"type" json:"type"`
	DismissedAt time.Time `bson:"dismissed_at" json:"dismissed_at"`
}

// EmailMessage est une entrée de l'outbox d'emails sortants
type EmailMessage struct {
	ID        string     `bson:"_id" json:"id"`
	To        string     `bson:"to" json:"to"`
	Subject   string     `bson:"subject" json:"subject"`
	HTML      string     `bson:"html" json:"-"`
	Status    string     `bson:"status" json:"status"` // pending | sent | failed
	Attempts  int        `bson:"attempts" json:"attempts"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	SentAt    *time.Time `bson:"sent_at,omitempty" json:"sent_at,omitempty"`
	LastError string     `bson:"last_error,omitempty" json:"-"`
}

// Statuts outbox
const (
	EmailPending = "pending"
	EmailSent    = "sent"
	EmailFailed  = "failed"
)

// AdminOTP est un code à usage unique pour le changement de mot de passe admin
type AdminOTP struct {
	ID        string    `bson:"_id" json:"-"`
	CodeHash  string    `bson:"code_hash" json:"-"`
	ExpiresAt time.Time `bson:"expires_at" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"-"`
}
