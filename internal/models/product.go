package models

import "time"

// PriceOption est un palier poids/prix d'un produit
type PriceOption struct {
	Weight string  `bson:"weight" json:"weight"`
	Price  float64 `bson:"price" json:"price"`
}

// Product est un article du catalogue
type Product struct {
	ID             string        `bson:"_id" json:"id"`
	Name           string        `bson:"name" json:"name"`
	Category       string        `bson:"category" json:"category"`
	Description    string        `bson:"description" json:"description"`
	Image          string        `bson:"image" json:"image"`
	Prices         []PriceOption `bson:"prices" json:"prices"`
	IsBestSeller   bool          `bson:"is_best_seller" json:"isBestSeller"`
	IsNew          bool          `bson:"is_new" json:"isNew"`
	IsFestival     bool          `bson:"is_festival" json:"isFestival"`
	Tag            string        `bson:"tag,omitempty" json:"tag,omitempty"`
	InventoryCount int           `bson:"inventory_count" json:"inventory_count"`
	OutOfStock     bool          `bson:"out_of_stock" json:"out_of_stock"`
	CreatedAt      time.Time     `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
