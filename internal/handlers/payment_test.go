package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"anantha_back_end/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestVerifyRazorpayPaymentUnconfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Gateway non configurée: callback refusé", func(mt *mtest.T) {
		database.MongoClient = mt.Client
		database.MongoDB = mt.Client.Database("anantha_test")

		// Pas de document settings et pas de variables d'environnement :
		// aucun secret disponible pour authentifier la signature
		mt.Setenv("RAZORPAY_KEY_ID", "")
		mt.Setenv("RAZORPAY_KEY_SECRET", "")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "anantha_test.settings", mtest.FirstBatch))

		body := `{"razorpay_order_id":"order_X","razorpay_payment_id":"pay_X","razorpay_signature":"deadbeef"}`
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/api/payments/razorpay/verify", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		VerifyRazorpayPayment(c)

		require.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error": "Razorpay is not configured"}`, w.Body.String())
	})
}
