package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"anantha_back_end/internal/cache"
	"anantha_back_end/internal/database"
	"anantha_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetLocations liste toutes les villes livrables avec leurs règles de frais
func GetLocations(c *gin.Context) {
	if cached := cache.GetLocationsListFromCache(); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := database.Locations().Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("❌ Erreur MongoDB Find locations:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch locations"})
		return
	}

	locations := []models.Location{}
	if err := cursor.All(ctx, &locations); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode locations"})
		return
	}

	cache.SetLocationsListCache(locations)
	c.JSON(http.StatusOK, locations)
}

// CreateLocation ajoute une ville (admin)
func CreateLocation(c *gin.Context) {
	var input struct {
		Name                  string  `json:"name" binding:"required"`
		State                 string  `json:"state" binding:"required"`
		Charge                float64 `json:"charge"`
		FreeDeliveryThreshold float64 `json:"free_delivery_threshold"`
		Enabled               *bool   `json:"enabled"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and state are required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Unicité nom+état
	count, err := database.Locations().CountDocuments(ctx, bson.M{"name": input.Name, "state": input.State})
	if err == nil && count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "City already exists"})
		return
	}

	enabled := true
	if input.Enabled != nil {
		enabled = *input.Enabled
	}

	loc := models.Location{
		ID:                    uuid.New().String(),
		Name:                  input.Name,
		State:                 input.State,
		Charge:                input.Charge,
		FreeDeliveryThreshold: input.FreeDeliveryThreshold,
		Enabled:               enabled,
		CreatedAt:             time.Now().UTC(),
	}

	if _, err := database.Locations().InsertOne(ctx, loc); err != nil {
		log.Println("❌ Erreur insertion location:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create location"})
		return
	}

	cache.InvalidateLocations(loc.Name)
	log.Printf("✅ Ville ajoutée: %s, %s (₹%.0f, seuil ₹%.0f)", loc.Name, loc.State, loc.Charge, loc.FreeDeliveryThreshold)
	c.JSON(http.StatusOK, gin.H{"message": "Location created", "name": loc.Name})
}

// UpdateLocation modifie les règles d'une ville (admin)
func UpdateLocation(c *gin.Context) {
	name := c.Param("name")

	var input struct {
		Charge                *float64 `json:"charge"`
		FreeDeliveryThreshold *float64 `json:"free_delivery_threshold"`
		Enabled               *bool    `json:"enabled"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	update := bson.M{}
	if input.Charge != nil {
		update["charge"] = *input.Charge
	}
	if input.FreeDeliveryThreshold != nil {
		update["free_delivery_threshold"] = *input.FreeDeliveryThreshold
	}
	if input.Enabled != nil {
		update["enabled"] = *input.Enabled
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := database.Locations().UpdateOne(ctx, bson.M{"name": name}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update location"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}

	cache.InvalidateLocations(name)
	log.Printf("✅ Ville mise à jour: %s", name)
	c.JSON(http.StatusOK, gin.H{"message": "Location updated"})
}

// DeleteLocation supprime une ville (admin, usage restreint)
func DeleteLocation(c *gin.Context) {
	name := c.Param("name")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := database.Locations().DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete location"})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}

	cache.InvalidateLocations(name)
	log.Printf("🗑️ Ville supprimée: %s", name)
	c.JSON(http.StatusOK, gin.H{"message": "Location deleted"})
}

// GetStates liste les états activés (public)
func GetStates(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := database.States().Find(ctx, bson.M{"enabled": true}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch states"})
		return
	}

	states := []models.State{}
	if err := cursor.All(ctx, &states); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode states"})
		return
	}
	c.JSON(http.StatusOK, states)
}

// GetAdminStates liste tous les états, activés ou non (admin)
func GetAdminStates(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := database.States().Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch states"})
		return
	}

	states := []models.State{}
	if err := cursor.All(ctx, &states); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode states"})
		return
	}
	c.JSON(http.StatusOK, states)
}

// CreateState ajoute un état (admin)
func CreateState(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Enabled *bool  `json:"enabled"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State name is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := database.States().CountDocuments(ctx, bson.M{"name": input.Name})
	if err == nil && count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State already exists"})
		return
	}

	enabled := true
	if input.Enabled != nil {
		enabled = *input.Enabled
	}

	if _, err := database.States().InsertOne(ctx, models.State{Name: input.Name, Enabled: enabled}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create state"})
		return
	}

	log.Printf("✅ État ajouté: %s", input.Name)
	c.JSON(http.StatusOK, gin.H{"message": "State created", "name": input.Name})
}

// UpdateState active/désactive un état (admin)
func UpdateState(c *gin.Context) {
	name := c.Param("name")

	var input struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enabled is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := database.States().UpdateOne(ctx, bson.M{"name": name}, bson.M{"$set": bson.M{"enabled": *input.Enabled}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update state"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "State not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "State updated"})
}

// DeleteState supprime un état (admin)
func DeleteState(c *gin.Context) {
	name := c.Param("name")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := database.States().DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete state"})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "State not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "State deleted"})
}
