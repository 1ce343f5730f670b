package models

import "time"

// Location représente une ville livrable avec sa règle de frais de livraison
type Location struct {
	ID                    string    `bson:"_id,omitempty" json:"id"`
	Name                  string    `bson:"name" json:"name"`
	State                 string    `bson:"state" json:"state"`
	Charge                float64   `bson:"charge" json:"charge"`
	FreeDeliveryThreshold float64   `bson:"free_delivery_threshold" json:"free_delivery_threshold"`
	Enabled               bool      `bson:"enabled" json:"enabled"`
	CreatedAt             time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// State représente un état (région) activable côté admin
type State struct {
	Name    string `bson:"name" json:"name"`
	Enabled bool   `bson:"enabled" json:"enabled"`
}
