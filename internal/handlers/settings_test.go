package handlers

import (
	"net/http/httptest"
	"testing"

	"anantha_back_end/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestGetFreeDeliverySettings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Défauts sans document settings", func(mt *mtest.T) {
		database.MongoClient = mt.Client
		database.MongoDB = mt.Client.Database("anantha_test")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "anantha_test.settings", mtest.FirstBatch))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		GetFreeDeliverySettings(c)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"enabled": true, "threshold": 1000}`, w.Body.String())
	})

	mt.Run("Document settings écrit", func(mt *mtest.T) {
		database.MongoClient = mt.Client
		database.MongoDB = mt.Client.Database("anantha_test")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "anantha_test.settings", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: "free_delivery_settings"},
				{Key: "enabled", Value: false},
				{Key: "threshold", Value: 1500.0},
			}))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		GetFreeDeliverySettings(c)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"enabled": false, "threshold": 1500}`, w.Body.String())
	})
}
