package handlers

import (
	"log"
	"net/http"

	"anantha_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

// UploadImage reçoit une image produit en multipart et la pousse vers MinIO
func UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		fileHeader, err = c.FormFile("file")
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	url, err := services.UploadProductImage(c.Request.Context(), fileHeader)
	if err != nil {
		log.Println("❌ Erreur upload image:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not upload image"})
		return
	}

	log.Println("🪣 Image uploadée:", url)
	c.JSON(http.StatusOK, gin.H{"url": url, "message": "Image uploaded successfully"})
}

// ServeImage sert une image produit stockée dans MinIO
func ServeImage(c *gin.Context) {
	object := c.Param("object")

	reader, contentType, err := services.FetchProductImage(c.Request.Context(), object)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	defer reader.Close()

	c.Header("Cache-Control", "public, max-age=86400")
	c.DataFromReader(http.StatusOK, -1, contentType, reader, nil)
}
