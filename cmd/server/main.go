package main

import (
	"anantha_back_end/internal/config"
	"anantha_back_end/internal/database"
	"anantha_back_end/internal/routes"
	"anantha_back_end/internal/services"
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	// ✅ Le notifier d'emails tourne tant que le serveur vit
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	services.StartEmailNotifier(ctx)

	r := gin.Default()
	r.Use(corsConfig())

	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Anantha Lakshmi lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Serveur arrêté:", err)
	}
}

// corsConfig autorise le front configuré via ALLOWED_ORIGINS (toutes origines en dev)
func corsConfig() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
		log.Println("⚠️ ALLOWED_ORIGINS absent, toutes les origines acceptées")
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
	}

	return cors.New(cfg)
}
