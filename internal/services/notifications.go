package services

import (
	"context"
	"time"

	"anantha_back_end/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Catégories de notifications du tableau de bord admin
const (
	NotifyBugReports      = "bug_reports"
	NotifyCitySuggestions = "city_suggestions"
	NotifyNewOrders       = "new_orders"
)

// ValidNotificationType vérifie qu'une catégorie est connue
func ValidNotificationType(t string) bool {
	switch t {
	case NotifyBugReports, NotifyCitySuggestions, NotifyNewOrders:
		return true
	}
	return false
}

// GetDismissedAt retourne l'horodatage "tout lu" persisté pour un admin et
// une catégorie ; zéro si jamais dismissé.
func GetDismissedAt(ctx context.Context, adminID, notifType string) time.Time {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc struct {
		DismissedAt time.Time `bson:"dismissed_at"`
	}
	err := database.Dismissals().FindOne(ctx, bson.M{
		"admin_id": adminID,
		"type":     notifType,
	}).Decode(&doc)
	if err != nil {
		return time.Time{}
	}
	return doc.DismissedAt
}

// DismissAll enregistre (upsert, idempotent) l'instant de dismissal.
// Les enregistrements sous-jacents ne sont jamais touchés.
func DismissAll(ctx context.Context, adminID, notifType string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := database.Dismissals().UpdateOne(ctx,
		bson.M{"admin_id": adminID, "type": notifType},
		bson.M{"$set": bson.M{"dismissed_at": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	return err
}

// CountCreatedAfter compte les documents d'une collection créés après un instant donné
func CountCreatedAfter(ctx context.Context, coll *mongo.Collection, after time.Time, extra bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	for k, v := range extra {
		filter[k] = v
	}
	if !after.IsZero() {
		filter["created_at"] = bson.M{"$gt": after}
	}
	return coll.CountDocuments(ctx, filter)
}
