package services

import (
	"context"
	"log"
	"regexp"
	"time"

	"anantha_back_end/internal/cache"
	"anantha_back_end/internal/database"
	"anantha_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCustomCityCharge : frais appliqués quand la ville n'est pas au catalogue
const DefaultCustomCityCharge = 99.0

// ComputeCharge applique la règle de frais pour une ville connue :
// 0 au-dessus du seuil de livraison gratuite, sinon le tarif fixe de la ville.
func ComputeCharge(loc *models.Location, subtotal float64) float64 {
	if subtotal >= loc.FreeDeliveryThreshold {
		return 0
	}
	return loc.Charge
}

// ResolveDeliveryCharge calcule les frais de livraison pour une ville et un
// sous-total donnés. Retourne (frais, custom) : custom vaut true quand la
// ville est inconnue ou désactivée et que le tarif par défaut s'applique,
// signalant un suivi admin (custom city request).
func ResolveDeliveryCharge(ctx context.Context, city string, subtotal float64) (float64, bool) {
	loc, err := FindLocationByName(ctx, city)
	if err != nil || loc == nil || !loc.Enabled {
		return DefaultCustomCityCharge, true
	}
	return ComputeCharge(loc, subtotal), false
}

// FindLocationByName cherche une ville par nom exact, puis sans tenir compte
// de la casse ("guntur" et "GUNTUR" résolvent vers "Guntur"). Passe par le
// cache Redis avant d'interroger MongoDB.
func FindLocationByName(ctx context.Context, city string) (*models.Location, error) {
	if loc := cache.GetLocationFromCache(city); loc != nil {
		return loc, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var loc models.Location
	err := database.Locations().FindOne(ctx, bson.M{"name": city}).Decode(&loc)
	if err == nil {
		cache.SetLocationCache(&loc)
		return &loc, nil
	}

	// Repli insensible à la casse, ancré pour éviter les correspondances partielles
	pattern := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(city) + "$", Options: "i"}
	err = database.Locations().FindOne(ctx, bson.M{"name": pattern}).Decode(&loc)
	if err != nil {
		return nil, err
	}

	log.Printf("🏙️ Ville résolue sans tenir compte de la casse: %q → %q", city, loc.Name)
	cache.SetLocationCache(&loc)
	return &loc, nil
}
