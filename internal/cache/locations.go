package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"anantha_back_end/internal/database"
	"anantha_back_end/internal/models"
)

const (
	LocationCacheTTL  = 10 * time.Minute
	LocationsListKey  = "locations:all"
	locationKeyPrefix = "location:"
)

// GetLocationFromCache récupère une ville depuis Redis (clé normalisée en minuscules)
func GetLocationFromCache(city string) *models.Location {
	ctx := context.Background()
	data, err := database.Redis.Get(ctx, locationKeyPrefix+strings.ToLower(city)).Result()
	if err != nil {
		return nil
	}

	var loc models.Location
	if json.Unmarshal([]byte(data), &loc) != nil {
		return nil
	}
	return &loc
}

// SetLocationCache met une ville en cache
func SetLocationCache(loc *models.Location) {
	ctx := context.Background()
	data, err := json.Marshal(loc)
	if err != nil {
		return
	}
	database.Redis.Set(ctx, locationKeyPrefix+strings.ToLower(loc.Name), data, LocationCacheTTL)
}

// GetLocationsListFromCache récupère la liste complète des villes
func GetLocationsListFromCache() []models.Location {
	ctx := context.Background()
	data, err := database.Redis.Get(ctx, LocationsListKey).Result()
	if err != nil {
		return nil
	}

	var locations []models.Location
	if json.Unmarshal([]byte(data), &locations) != nil {
		return nil
	}
	return locations
}

// SetLocationsListCache met la liste des villes en cache
func SetLocationsListCache(locations []models.Location) {
	ctx := context.Background()
	data, err := json.Marshal(locations)
	if err != nil {
		return
	}
	database.Redis.Set(ctx, LocationsListKey, data, LocationCacheTTL)
}

// InvalidateLocations purge le cache après une écriture admin
// (ajout/modification/suppression de ville ou approbation de suggestion)
func InvalidateLocations(cities ...string) {
	ctx := context.Background()
	keys := []string{LocationsListKey}
	for _, city := range cities {
		keys = append(keys, locationKeyPrefix+strings.ToLower(city))
	}
	database.Redis.Del(ctx, keys...)
}
