package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"anantha_back_end/internal/database"
	"anantha_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestGetPendingCities(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Regroupe les villes des commandes custom", func(mt *mtest.T) {
		database.MongoClient = mt.Client
		database.MongoDB = mt.Client.Database("anantha_test")

		now := primitive.NewDateTimeFromTime(time.Now().UTC())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "anantha_test.orders", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: bson.D{{Key: "city", Value: "Ponnur"}, {Key: "state", Value: "Andhra Pradesh"}}},
				{Key: "order_count", Value: 3},
				{Key: "last_requested", Value: now},
			},
			bson.D{
				{Key: "_id", Value: bson.D{{Key: "city", Value: "Jangaon"}, {Key: "state", Value: "Telangana"}}},
				{Key: "order_count", Value: 1},
				{Key: "last_requested", Value: now},
			}))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		GetPendingCities(c)

		require.Equal(t, 200, w.Code)

		var cities []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cities))
		require.Len(t, cities, 2)
		assert.Equal(t, "Ponnur", cities[0]["city"])
		assert.Equal(t, "Andhra Pradesh", cities[0]["state"])
		assert.Equal(t, float64(3), cities[0]["order_count"])
		assert.Equal(t, "Jangaon", cities[1]["city"])
	})

	mt.Run("Aucune commande custom", func(mt *mtest.T) {
		database.MongoClient = mt.Client
		database.MongoDB = mt.Client.Database("anantha_test")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "anantha_test.orders", mtest.FirstBatch))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		GetPendingCities(c)

		require.Equal(t, 200, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestApproveSuggestionExistingCity(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Ville déjà desservie: pas de doublon", func(mt *mtest.T) {
		database.MongoClient = mt.Client
		database.MongoDB = mt.Client.Database("anantha_test")

		// Comptage -> ville existante, mise à jour du statut, commit ;
		// une réponse de réserve couvre la fin de session
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "anantha_test.locations", mtest.FirstBatch,
				bson.D{{Key: "n", Value: 1}}),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)

		suggestion := models.CitySuggestion{
			ID:     "sugg-guntur-1",
			City:   "Guntur",
			State:  "Andhra Pradesh",
			Status: models.SuggestionPending,
		}

		err := approveSuggestion(context.Background(), suggestion, 49, 1000)
		require.NoError(t, err)

		// La commande insert ne doit jamais partir quand la ville existe
		sawUpdate := false
		for _, evt := range mt.GetAllStartedEvents() {
			assert.NotEqual(t, "insert", evt.CommandName)
			if evt.CommandName == "update" {
				sawUpdate = true
			}
		}
		assert.True(t, sawUpdate, "le statut de la suggestion doit être mis à jour")
	})
}
