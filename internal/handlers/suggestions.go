package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"anantha_back_end/internal/cache"
	"anantha_back_end/internal/database"
	"anantha_back_end/internal/models"
	"anantha_back_end/internal/services"
	"anantha_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SuggestCity enregistre une demande client d'ajout de ville (public)
func SuggestCity(c *gin.Context) {
	var input struct {
		State        string `json:"state" binding:"required"`
		City         string `json:"city" binding:"required"`
		CustomerName string `json:"customer_name" binding:"required"`
		Phone        string `json:"phone" binding:"required"`
		Email        string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Missing required fields: state, city, customer_name, phone, email"})
		return
	}

	suggestion := models.CitySuggestion{
		ID:           uuid.New().String(),
		City:         input.City,
		State:        input.State,
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		Email:        input.Email,
		Status:       models.SuggestionPending,
		CreatedAt:    time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.Suggestions().InsertOne(ctx, suggestion); err != nil {
		log.Println("❌ Erreur insertion suggestion:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save suggestion"})
		return
	}

	log.Printf("🏙️ Suggestion de ville reçue: %s, %s (%s)", input.City, input.State, input.Email)
	c.JSON(http.StatusOK, gin.H{
		"suggestion_id": suggestion.ID,
		"message":       "City suggestion submitted. We will notify you once it is reviewed",
	})
}

// GetCitySuggestions liste les suggestions pour l'admin.
// Sans filtre : pending uniquement (les traitées sortent de la corbeille par défaut).
// ?status=approved|rejected|pending filtre, ?status=all renvoie tout.
func GetCitySuggestions(c *gin.Context) {
	status := c.Query("status")

	filter := bson.M{}
	switch status {
	case "", models.SuggestionPending:
		filter["status"] = models.SuggestionPending
	case "all":
		// pas de filtre
	case models.SuggestionApproved, models.SuggestionRejected:
		filter["status"] = status
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := database.Suggestions().Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch suggestions"})
		return
	}

	suggestions := []models.CitySuggestion{}
	if err := cursor.All(ctx, &suggestions); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode suggestions"})
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

// UpdateSuggestionStatus traite une suggestion : approved crée la ville dans
// le même mouvement (transaction), rejected est terminal. Un e-mail est mis
// en file dans les deux cas.
func UpdateSuggestionStatus(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Status                string  `json:"status" binding:"required"`
		DeliveryCharge        float64 `json:"delivery_charge"`
		FreeDeliveryThreshold float64 `json:"free_delivery_threshold"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if input.Status != models.SuggestionApproved && input.Status != models.SuggestionRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be 'approved' or 'rejected'"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var suggestion models.CitySuggestion
	if err := database.Suggestions().FindOne(ctx, bson.M{"_id": id}).Decode(&suggestion); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "City suggestion not found"})
		return
	}

	if suggestion.IsTerminal() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Suggestion has already been processed"})
		return
	}

	if input.Status == models.SuggestionRejected {
		_, err := database.Suggestions().UpdateOne(ctx, bson.M{"_id": id},
			bson.M{"$set": bson.M{"status": models.SuggestionRejected}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update suggestion"})
			return
		}

		services.EnqueueEmail(c.Request.Context(), suggestion.Email,
			"Delivery Request Update - Anantha Lakshmi Foods",
			utils.GenerateSuggestionRejectedHTML(suggestion))

		log.Printf("🚫 Suggestion rejetée: %s, %s", suggestion.City, suggestion.State)
		c.JSON(http.StatusOK, gin.H{"message": "Suggestion rejected"})
		return
	}

	// Approbation : le statut et la nouvelle ville s'écrivent dans une même
	// transaction pour ne jamais laisser une suggestion approuvée sans Location
	err := approveSuggestion(ctx, suggestion, input.DeliveryCharge, input.FreeDeliveryThreshold)
	if err != nil {
		log.Println("❌ Erreur approbation suggestion:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not approve suggestion"})
		return
	}

	cache.InvalidateLocations(suggestion.City)
	services.EnqueueEmail(c.Request.Context(), suggestion.Email,
		"🎉 We Now Deliver to Your City! - Anantha Lakshmi Foods",
		utils.GenerateSuggestionApprovedHTML(suggestion, input.DeliveryCharge, input.FreeDeliveryThreshold))

	log.Printf("✅ Suggestion approuvée: %s, %s (₹%.0f, seuil ₹%.0f)",
		suggestion.City, suggestion.State, input.DeliveryCharge, input.FreeDeliveryThreshold)
	c.JSON(http.StatusOK, gin.H{"message": "Suggestion approved and city added to delivery locations"})
}

func approveSuggestion(ctx context.Context, suggestion models.CitySuggestion, charge, threshold float64) error {
	session, err := database.MongoClient.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		// Même garde d'unicité que l'approbation directe : une ville déjà
		// desservie ne doit jamais être insérée une deuxième fois
		count, err := database.Locations().CountDocuments(sc,
			bson.M{"name": suggestion.City, "state": suggestion.State})
		if err != nil {
			return nil, err
		}

		if _, err := database.Suggestions().UpdateOne(sc, bson.M{"_id": suggestion.ID},
			bson.M{"$set": bson.M{"status": models.SuggestionApproved}}); err != nil {
			return nil, err
		}

		if count > 0 {
			log.Printf("⚠️ Ville %s, %s déjà desservie — suggestion approuvée sans nouvelle insertion",
				suggestion.City, suggestion.State)
			return nil, nil
		}

		loc := models.Location{
			ID:                    uuid.New().String(),
			Name:                  suggestion.City,
			State:                 suggestion.State,
			Charge:                charge,
			FreeDeliveryThreshold: threshold,
			Enabled:               true,
			CreatedAt:             time.Now().UTC(),
		}
		if _, err := database.Locations().InsertOne(sc, loc); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

// DeleteSuggestion supprime une suggestion traitée. Les suggestions pending
// sont protégées : les supprimer ferait disparaître une demande en cours.
func DeleteSuggestion(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var suggestion models.CitySuggestion
	if err := database.Suggestions().FindOne(ctx, bson.M{"_id": id}).Decode(&suggestion); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "City suggestion not found"})
		return
	}

	if !suggestion.CanDelete() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete a pending suggestion. Approve or reject it first"})
		return
	}

	if _, err := database.Suggestions().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete suggestion"})
		return
	}

	log.Printf("🗑️ Suggestion supprimée: %s (%s)", suggestion.City, suggestion.Status)
	c.JSON(http.StatusOK, gin.H{"message": "Suggestion deleted"})
}

// ApproveCity : raccourci admin qui crée une ville directement, sans passer
// par une suggestion. Si une suggestion pending correspond, elle est marquée
// approuvée au passage.
func ApproveCity(c *gin.Context) {
	var input struct {
		CityName              string  `json:"city_name" binding:"required"`
		StateName             string  `json:"state_name" binding:"required"`
		DeliveryCharge        float64 `json:"delivery_charge"`
		FreeDeliveryThreshold float64 `json:"free_delivery_threshold"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city_name and state_name are required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	count, err := database.Locations().CountDocuments(ctx, bson.M{"name": input.CityName})
	if err == nil && count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This city has already been approved"})
		return
	}

	loc := models.Location{
		ID:                    uuid.New().String(),
		Name:                  input.CityName,
		State:                 input.StateName,
		Charge:                input.DeliveryCharge,
		FreeDeliveryThreshold: input.FreeDeliveryThreshold,
		Enabled:               true,
		CreatedAt:             time.Now().UTC(),
	}

	if _, err := database.Locations().InsertOne(ctx, loc); err != nil {
		log.Println("❌ Erreur insertion location:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not approve city"})
		return
	}

	// Effet de bord : une suggestion pending pour cette ville devient approuvée
	res, err := database.Suggestions().UpdateMany(ctx,
		bson.M{"city": input.CityName, "status": models.SuggestionPending},
		bson.M{"$set": bson.M{"status": models.SuggestionApproved}})
	if err == nil && res.ModifiedCount > 0 {
		log.Printf("✅ %d suggestion(s) pending marquée(s) approuvée(s) pour %s", res.ModifiedCount, input.CityName)
	}

	cache.InvalidateLocations(input.CityName)
	log.Printf("✅ Ville approuvée directement: %s, %s (₹%.0f)", input.CityName, input.StateName, input.DeliveryCharge)
	c.JSON(http.StatusOK, gin.H{
		"message": "City approved and added to delivery locations",
		"city":    input.CityName,
	})
}

// GetPendingCities liste les villes hors catalogue apparues dans des commandes
// (custom_city_request), regroupées pour le suivi admin : chaque ville candidate
// avec son nombre de commandes et la date de la dernière demande
func GetPendingCities(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Orders().Aggregate(ctx, []bson.M{
		{"$match": bson.M{"custom_city_request": true}},
		{"$group": bson.M{
			"_id":            bson.M{"city": "$city", "state": "$state"},
			"order_count":    bson.M{"$sum": 1},
			"last_requested": bson.M{"$max": "$created_at"},
		}},
		{"$sort": bson.M{"last_requested": -1}},
	})
	if err != nil {
		log.Println("❌ Erreur agrégation pending cities:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch pending cities"})
		return
	}

	var rows []struct {
		Key struct {
			City  string `bson:"city"`
			State string `bson:"state"`
		} `bson:"_id"`
		OrderCount    int       `bson:"order_count"`
		LastRequested time.Time `bson:"last_requested"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode pending cities"})
		return
	}

	cities := []gin.H{}
	for _, row := range rows {
		cities = append(cities, gin.H{
			"city":           row.Key.City,
			"state":          row.Key.State,
			"order_count":    row.OrderCount,
			"last_requested": row.LastRequested,
		})
	}
	c.JSON(http.StatusOK, cities)
}
