package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"anantha_back_end/internal/database"

	"github.com/gin-gonic/gin"
)

const (
	// Limites par endpoint
	LoginMaxAttempts   = 5
	SuggestMaxRequests = 10

	// Durées de cooldown
	LoginCooldown   = 15 * time.Minute
	SuggestCooldown = 1 * time.Hour
)

// LoginRateLimit limite les tentatives de connexion admin par adresse IP
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		ip := c.ClientIP()
		key := "login_attempts:" + ip

		// Vérifier si l'IP est en cooldown
		cooldownKey := "login_cooldown:" + ip
		if database.Redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := database.Redis.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Too many failed attempts. Try again in %d minutes", int(ttl.Minutes())+1),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		// Vérifier le nombre de tentatives
		attempts, _ := database.Redis.Get(ctx, key).Int()
		if attempts >= LoginMaxAttempts {
			// Activer le cooldown
			database.Redis.Set(ctx, cooldownKey, "1", LoginCooldown)
			database.Redis.Del(ctx, key)

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Too many failed attempts. Blocked for %d minutes", int(LoginCooldown.Minutes())),
				"retry_after": int(LoginCooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()

		// Si login échoué (401), incrémenter les tentatives ; sinon remettre à zéro
		if c.Writer.Status() == http.StatusUnauthorized {
			database.Redis.Incr(ctx, key)
			database.Redis.Expire(ctx, key, LoginCooldown)
		} else if c.Writer.Status() == http.StatusOK {
			database.Redis.Del(ctx, key)
		}
	}
}

// SuggestRateLimit borne les soumissions publiques de suggestions de ville par IP
func SuggestRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		key := "suggest_count:" + c.ClientIP()

		count, _ := database.Redis.Get(ctx, key).Int()
		if count >= SuggestMaxRequests {
			ttl := database.Redis.TTL(ctx, key).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many city suggestions. Please try again later",
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		pipe := database.Redis.TxPipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, SuggestCooldown)
		pipe.Exec(ctx)

		c.Next()
	}
}
