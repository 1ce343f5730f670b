package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r)
	return r
}

func TestRegisterRoutes(t *testing.T) {
	r := newRouter()

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /api/products",
		"GET /api/locations",
		"GET /api/states",
		"GET /api/settings/free-delivery",
		"POST /api/suggest-city",
		"POST /api/orders",
		"GET /api/orders/track/:query",
		"POST /api/payment/create-razorpay-order",
		"POST /api/payment/verify-razorpay-payment",
		"POST /api/reports",
		"POST /api/auth/admin-login",
		"POST /api/admin/login",
		"GET /api/admin/city-suggestions",
		"POST /api/admin/approve-city",
		"GET /api/admin/pending-cities",
		"GET /api/admin/notifications/count",
		"GET /api/admin/payment-settings",
		"GET /uploads/:object",
	} {
		assert.True(t, registered[want], "route manquante: %s", want)
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	r := newRouter()

	for _, path := range []string{
		"/api/admin/city-suggestions",
		"/api/admin/pending-cities",
		"/api/admin/orders",
		"/api/admin/reports",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
