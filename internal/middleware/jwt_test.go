package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", AuthRequired(), RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	require.NoError(t, err)
	return signed
}

func adminClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"user_id": "admin",
		"email":   "admin@ananthalakshmi.com",
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
}

func request(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	r := newProtectedRouter()

	t.Run("Token valide", func(t *testing.T) {
		w := request(r, "Bearer "+signToken(t, adminClaims()))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"admin"`)
	})

	t.Run("Header absent", func(t *testing.T) {
		w := request(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Missing authentication token")
	})

	t.Run("Format invalide", func(t *testing.T) {
		w := request(r, "Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid authorization format")
	})

	t.Run("Token corrompu", func(t *testing.T) {
		w := request(r, "Bearer pas.un.jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Token expiré", func(t *testing.T) {
		claims := adminClaims()
		claims["exp"] = time.Now().Add(-time.Hour).Unix()
		w := request(r, "Bearer "+signToken(t, claims))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Mauvais secret de signature", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, adminClaims())
		signed, err := token.SignedString([]byte("mauvais_secret"))
		require.NoError(t, err)
		w := request(r, "Bearer "+signed)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	r := newProtectedRouter()

	t.Run("Rôle non admin refusé", func(t *testing.T) {
		claims := adminClaims()
		claims["role"] = "customer"
		w := request(r, "Bearer "+signToken(t, claims))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Admin access required")
	})

	t.Run("Rôle absent refusé", func(t *testing.T) {
		claims := adminClaims()
		delete(claims, "role")
		w := request(r, "Bearer "+signToken(t, claims))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
