package models

import "time"

// Statuts d'une suggestion de ville
const (
	SuggestionPending  = "pending"
	SuggestionApproved = "approved"
	SuggestionRejected = "rejected"
)

// CitySuggestion est une demande client d'ajout de ville
type CitySuggestion struct {
	ID           string    `bson:"_id" json:"id"`
	City         string    `bson:"city" json:"city"`
	State        string    `bson:"state" json:"state"`
	CustomerName string    `bson:"customer_name" json:"customer_name"`
	Phone        string    `bson:"phone" json:"phone"`
	Email        string    `bson:"email" json:"email"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// IsTerminal indique si la suggestion ne peut plus changer d'état
func (s CitySuggestion) IsTerminal() bool {
	return s.Status == SuggestionApproved || s.Status == SuggestionRejected
}

// CanDelete : une suggestion en cours de traitement est protégée contre la suppression
func (s CitySuggestion) CanDelete() bool {
	return s.IsTerminal()
}
