package handlers

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"os"
	"time"

	"anantha_back_end/internal/database"
	"anantha_back_end/internal/models"
	"anantha_back_end/internal/services"
	"anantha_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const adminOTPDocID = "admin_password_otp"

func adminEmail() string {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@ananthalakshmi.com"
	}
	return email
}

// checkAdminPassword valide le mot de passe admin. Ordre de priorité :
// hash env ADMIN_PASSWORD_HASH, hash stocké en base (changé via OTP),
// puis ADMIN_PASSWORD en clair pour le bootstrap local.
func checkAdminPassword(password string) bool {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" && utils.IsBcryptHash(hash) {
		return utils.VerifyPassword(password, hash)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc struct {
		PasswordHash string `bson:"password_hash"`
	}
	if err := database.Settings().FindOne(ctx, bson.M{"_id": "admin_password"}).Decode(&doc); err == nil && doc.PasswordHash != "" {
		return utils.VerifyPassword(password, doc.PasswordHash)
	}

	expected := os.Getenv("ADMIN_PASSWORD")
	if expected == "" {
		expected = "admin123"
	}
	return password == expected
}

// AdminLogin authentifie l'identité admin unique et délivre un JWT
func AdminLogin(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	if !checkAdminPassword(input.Password) {
		log.Println("❌ Tentative de connexion admin avec mot de passe invalide")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminJWT(adminEmail())
	if err != nil {
		log.Println("❌ Erreur génération JWT:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	log.Println("✅ Connexion admin réussie")
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    "admin",
			"email": adminEmail(),
			"role":  "admin",
		},
		"message": "Login successful",
	})
}

// SendAdminOTP envoie par e-mail un code à usage unique pour changer le mot de passe
func SendAdminOTP(c *gin.Context) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate OTP"})
		return
	}
	code := fmt.Sprintf("%06d", n.Int64())

	codeHash, err := utils.HashPassword(code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate OTP"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	_, err = database.AdminOTPs().UpdateOne(ctx,
		bson.M{"_id": adminOTPDocID},
		bson.M{"$set": bson.M{
			"code_hash":  codeHash,
			"expires_at": now.Add(10 * time.Minute),
			"created_at": now,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Println("❌ Erreur stockage OTP:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store OTP"})
		return
	}

	services.EnqueueEmail(c.Request.Context(), adminEmail(),
		"🔐 Admin Password Change OTP - Anantha Lakshmi Foods",
		utils.GenerateOTPHTML(code))

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent to admin email"})
}

// VerifyOTPChangePassword vérifie l'OTP et enregistre le nouveau hash de mot de passe
func VerifyOTPChangePassword(c *gin.Context) {
	var input struct {
		OTP         string `json:"otp" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=8"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "OTP and new password (min 8 characters) are required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var otp models.AdminOTP
	err := database.AdminOTPs().FindOne(ctx, bson.M{"_id": adminOTPDocID}).Decode(&otp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No OTP requested"})
		return
	}

	if time.Now().UTC().After(otp.ExpiresAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "OTP expired"})
		return
	}

	if !utils.VerifyPassword(input.OTP, otp.CodeHash) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP"})
		return
	}

	newHash, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password"})
		return
	}

	// Le hash devient la source de vérité via le document settings ;
	// ADMIN_PASSWORD_HASH dans l'env reste prioritaire au prochain redémarrage
	_, err = database.Settings().UpdateOne(ctx,
		bson.M{"_id": "admin_password"},
		bson.M{"$set": bson.M{"password_hash": newHash, "updated_at": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update password"})
		return
	}

	// OTP consommé
	database.AdminOTPs().DeleteOne(ctx, bson.M{"_id": adminOTPDocID})

	log.Println("✅ Mot de passe admin modifié via OTP")
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
