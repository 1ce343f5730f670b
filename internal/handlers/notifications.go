package handlers

import (
	"log"
	"net/http"

	"anantha_back_end/internal/database"
	"anantha_back_end/internal/models"
	"anantha_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// GetNotificationsCount retourne le badge du tableau de bord admin : nombre
// d'éléments créés après le dernier "tout lu" de cet admin, par catégorie
func GetNotificationsCount(c *gin.Context) {
	adminID := c.GetString("user_id")
	ctx := c.Request.Context()

	bugReports, err := services.CountCreatedAfter(ctx, database.Reports(),
		services.GetDismissedAt(ctx, adminID, services.NotifyBugReports), nil)
	if err != nil {
		log.Println("❌ Erreur comptage bug reports:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count notifications"})
		return
	}

	suggestions, err := services.CountCreatedAfter(ctx, database.Suggestions(),
		services.GetDismissedAt(ctx, adminID, services.NotifyCitySuggestions),
		bson.M{"status": models.SuggestionPending})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count notifications"})
		return
	}

	newOrders, err := services.CountCreatedAfter(ctx, database.Orders(),
		services.GetDismissedAt(ctx, adminID, services.NotifyNewOrders), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bug_reports":      bugReports,
		"city_suggestions": suggestions,
		"new_orders":       newOrders,
		"total":            bugReports + suggestions + newOrders,
	})
}

// DismissAllNotifications enregistre l'instant "tout lu" pour une catégorie.
// Idempotent ; les enregistrements sous-jacents restent intacts.
func DismissAllNotifications(c *gin.Context) {
	adminID := c.GetString("user_id")

	var input struct {
		Type string `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !services.ValidNotificationType(input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "type must be one of: bug_reports, city_suggestions, new_orders",
		})
		return
	}

	if err := services.DismissAll(c.Request.Context(), adminID, input.Type); err != nil {
		log.Println("❌ Erreur dismissal notifications:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not dismiss notifications"})
		return
	}

	log.Printf("🔕 Notifications %q marquées lues pour %s", input.Type, adminID)
	c.JSON(http.StatusOK, gin.H{"message": "Notifications dismissed", "type": input.Type})
}
