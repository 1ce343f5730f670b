package routes

import (
	"anantha_back_end/internal/handlers"
	"anantha_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes branche l'ensemble des endpoints publics et admin
func RegisterRoutes(r *gin.Engine) {
	// Images produit stockées dans MinIO
	r.GET("/uploads/:object", handlers.ServeImage)

	api := r.Group("/api")

	// Catalogue
	api.GET("/products", handlers.GetProducts)
	api.GET("/products/:id", handlers.GetProductByID)

	// Villes et états desservis
	api.GET("/locations", handlers.GetLocations)
	api.GET("/states", handlers.GetStates)
	api.GET("/settings/free-delivery", handlers.GetFreeDeliverySettings)
	api.POST("/suggest-city", middleware.SuggestRateLimit(), handlers.SuggestCity)

	// Commandes
	api.POST("/orders", handlers.CreateOrder)
	api.GET("/orders/track/:query", handlers.TrackOrder)
	api.PUT("/orders/:id/cancel", handlers.CancelOrder)
	api.POST("/orders/:id/complete-payment", handlers.CompletePayment)

	// Paiement Razorpay
	api.POST("/payment/create-razorpay-order", handlers.CreateRazorpayOrder)
	api.POST("/payment/verify-razorpay-payment", handlers.VerifyRazorpayPayment)

	// Signalements de bugs (form-data)
	api.POST("/reports", handlers.CreateReport)

	// Authentification admin (l'alias /admin/login est celui du front historique)
	api.POST("/auth/admin-login", middleware.LoginRateLimit(), handlers.AdminLogin)
	api.POST("/admin/login", middleware.LoginRateLimit(), handlers.AdminLogin)

	// Alias public d'upload (le front historique poste ici)
	api.POST("/upload-image", handlers.UploadImage)

	// Transitions réservées à l'admin sur les commandes publiques
	ordersAdmin := api.Group("/orders", middleware.AuthRequired(), middleware.RequireAdmin)
	ordersAdmin.PUT("/:id/status", handlers.UpdateOrderStatus)
	ordersAdmin.PUT("/:id/admin-update", handlers.AdminUpdateOrder)

	// 🔐 Tout /api/admin/* passe par le JWT
	admin := api.Group("/admin", middleware.AuthRequired(), middleware.RequireAdmin)

	// Villes desservies
	admin.POST("/locations", handlers.CreateLocation)
	admin.PUT("/locations/:name", handlers.UpdateLocation)
	admin.DELETE("/locations/:name", handlers.DeleteLocation)

	// États
	admin.GET("/states", handlers.GetAdminStates)
	admin.POST("/states", handlers.CreateState)
	admin.PUT("/states/:name", handlers.UpdateState)
	admin.DELETE("/states/:name", handlers.DeleteState)

	// Suggestions de villes
	admin.GET("/city-suggestions", handlers.GetCitySuggestions)
	admin.PUT("/city-suggestions/:id/status", handlers.UpdateSuggestionStatus)
	admin.DELETE("/city-suggestions/:id", handlers.DeleteSuggestion)
	admin.POST("/approve-city", handlers.ApproveCity)
	admin.GET("/pending-cities", handlers.GetPendingCities)

	// Commandes
	admin.GET("/orders", handlers.GetOrders)

	// Catalogue
	admin.PUT("/products/:id/inventory", handlers.UpdateInventory)
	admin.GET("/products/:id/stock-status", handlers.GetStockStatus)
	admin.PUT("/products/:id/stock-status", handlers.UpdateStockStatus)
	admin.GET("/festival-products", handlers.GetFestivalProducts)
	admin.PUT("/products/:id/festival", handlers.UpdateFestivalFlag)

	// Réglages paiement
	admin.GET("/payment-settings", handlers.GetPaymentSettings)
	admin.PUT("/payment-settings", handlers.UpdatePaymentSettings)
	admin.GET("/razorpay-settings", handlers.GetRazorpaySettings)
	admin.PUT("/razorpay-settings", handlers.UpdateRazorpaySettings)

	// Notifications du tableau de bord
	admin.GET("/notifications/count", handlers.GetNotificationsCount)
	admin.POST("/notifications/dismiss-all", handlers.DismissAllNotifications)

	// Signalements
	admin.GET("/reports", handlers.GetReports)

	// Profil admin (changement de mot de passe par OTP)
	admin.POST("/profile/send-otp", handlers.SendAdminOTP)
	admin.POST("/profile/verify-otp-change-password", handlers.VerifyOTPChangePassword)

	// Upload d'images produit
	admin.POST("/upload-image", handlers.UploadImage)
}
