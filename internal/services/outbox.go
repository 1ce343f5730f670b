package services

import (
	"context"
	"log"
	"time"

	"anantha_back_end/internal/database"
	"anantha_back_end/internal/models"
	"anantha_back_end/internal/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	outboxPollInterval = 15 * time.Second
	outboxMaxAttempts  = 3
	outboxBatchSize    = 20
)

// EnqueueEmail ajoute un e-mail à l'outbox durable. L'échec d'insertion est
// loggé mais ne remonte jamais : un e-mail perdu ne doit pas annuler
// l'opération principale (création de commande, approbation, etc.).
func EnqueueEmail(ctx context.Context, to, subject, html string) {
	if to == "" {
		return
	}

	msg := models.EmailMessage{
		ID:        uuid.New().String(),
		To:        to,
		Subject:   subject,
		HTML:      html,
		Status:    models.EmailPending,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := database.EmailOutbox().InsertOne(ctx, msg); err != nil {
		log.Printf("⚠️ Échec insertion outbox pour %s: %v", to, err)
		return
	}
	log.Printf("📬 Email mis en file: %q → %s", subject, to)
}

// StartEmailNotifier lance la boucle d'envoi des e-mails en attente.
// À appeler une fois au démarrage du serveur ; s'arrête quand ctx est annulé.
func StartEmailNotifier(ctx context.Context) {
	go func() {
		log.Println("🚚 Notifier d'e-mails démarré")
		ticker := time.NewTicker(outboxPollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("🔌 Notifier d'e-mails arrêté")
				return
			case <-ticker.C:
				flushOutbox(ctx)
			}
		}
	}()
}

// flushOutbox envoie un lot d'e-mails en attente
func flushOutbox(ctx context.Context) {
	findCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(outboxBatchSize)

	cursor, err := database.EmailOutbox().Find(findCtx, bson.M{
		"status":   models.EmailPending,
		"attempts": bson.M{"$lt": outboxMaxAttempts},
	}, opts)
	if err != nil {
		log.Println("⚠️ Erreur lecture outbox:", err)
		return
	}

	var pending []models.EmailMessage
	if err := cursor.All(findCtx, &pending); err != nil {
		log.Println("⚠️ Erreur décodage outbox:", err)
		return
	}

	for _, msg := range pending {
		sendOutboxMessage(ctx, msg)
	}
}

func sendOutboxMessage(ctx context.Context, msg models.EmailMessage) {
	updCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := utils.SendEmail(msg.To, msg.Subject, msg.HTML)
	if err != nil {
		attempts := msg.Attempts + 1
		status := models.EmailPending
		if attempts >= outboxMaxAttempts {
			status = models.EmailFailed
		}

		log.Printf("❌ Échec envoi email à %s (tentative %d/%d): %v", msg.To, attempts, outboxMaxAttempts, err)
		database.EmailOutbox().UpdateOne(updCtx, bson.M{"_id": msg.ID}, bson.M{
			"$set": bson.M{"status": status, "last_error": err.Error()},
			"$inc": bson.M{"attempts": 1},
		})
		return
	}

	now := time.Now().UTC()
	database.EmailOutbox().UpdateOne(updCtx, bson.M{"_id": msg.ID}, bson.M{
		"$set": bson.M{"status": models.EmailSent, "sent_at": now},
		"$inc": bson.M{"attempts": 1},
	})
	log.Printf("📧 Email sent successfully: %q → %s", msg.Subject, msg.To)
}
