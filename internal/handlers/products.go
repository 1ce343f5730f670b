package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"anantha_back_end/internal/database"
	"anantha_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetProducts liste le catalogue, filtrable par catégorie
func GetProducts(c *gin.Context) {
	filter := bson.M{}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := database.Products().Find(ctx, filter, opts)
	if err != nil {
		log.Println("❌ Erreur MongoDB Find products:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch products"})
		return
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID récupère un produit
func GetProductByID(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product models.Product
	if err := database.Products().FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateInventory change le stock disponible d'un produit (admin)
func UpdateInventory(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		InventoryCount *int `json:"inventory_count" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || *input.InventoryCount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "inventory_count (>= 0) is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{"inventory_count": *input.InventoryCount}
	// Stock revenu à zéro = rupture automatique
	update["out_of_stock"] = *input.InventoryCount == 0

	res, err := database.Products().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update inventory"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	log.Printf("📦 Inventaire mis à jour: %s → %d", id, *input.InventoryCount)
	c.JSON(http.StatusOK, gin.H{"message": "Inventory updated", "inventory_count": *input.InventoryCount})
}

// GetStockStatus retourne l'état de stock d'un produit (admin)
func GetStockStatus(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product models.Product
	if err := database.Products().FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product_id":      product.ID,
		"name":            product.Name,
		"inventory_count": product.InventoryCount,
		"out_of_stock":    product.OutOfStock,
	})
}

// UpdateStockStatus force l'état rupture/en stock d'un produit (admin)
func UpdateStockStatus(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		OutOfStock *bool `json:"out_of_stock" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "out_of_stock is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := database.Products().UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"out_of_stock": *input.OutOfStock}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update stock status"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock status updated", "out_of_stock": *input.OutOfStock})
}

// GetFestivalProducts liste les produits mis en avant festival (admin)
func GetFestivalProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Products().Find(ctx, bson.M{"is_festival": true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch festival products"})
		return
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// UpdateFestivalFlag bascule la mise en avant festival d'un produit (admin)
func UpdateFestivalFlag(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		IsFestival *bool `json:"isFestival" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isFestival is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := database.Products().UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_festival": *input.IsFestival}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update product"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Festival flag updated"})
}
