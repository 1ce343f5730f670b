package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"anantha_back_end/internal/database"
	"anantha_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateReport reçoit un signalement de bug depuis le site (form-data)
func CreateReport(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	mobile := strings.TrimSpace(c.PostForm("mobile"))
	issue := strings.TrimSpace(c.PostForm("issue_description"))

	if issue == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": "issue_description is required",
		})
		return
	}

	report := models.Report{
		ID:               uuid.New().String(),
		Email:            email,
		Mobile:           mobile,
		IssueDescription: issue,
		Seen:             false,
		CreatedAt:        time.Now().UTC(),
	}

	if _, err := database.Reports().InsertOne(c.Request.Context(), report); err != nil {
		log.Println("❌ Erreur insertion bug report:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not submit report"})
		return
	}

	log.Println("🐛 Nouveau bug report reçu:", report.ID)
	c.JSON(http.StatusOK, gin.H{
		"report_id": report.ID,
		"message":   "Report submitted successfully",
	})
}

// GetReports liste les signalements pour l'admin, du plus récent au plus ancien
func GetReports(c *gin.Context) {
	ctx := c.Request.Context()

	cursor, err := database.Reports().Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch reports"})
		return
	}
	defer cursor.Close(ctx)

	reports := []models.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports, "total": len(reports)})
}
