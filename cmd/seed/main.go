package main

import (
	"context"
	"log"
	"time"

	"anantha_back_end/internal/config"
	"anantha_back_end/internal/database"
	"anantha_back_end/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Frais de livraison spécifiques ; les autres villes prennent le tarif par défaut
var cityCharges = map[string]struct {
	Charge    float64
	Threshold float64
}{
	"Guntur":      {49, 1000},
	"Tenali":      {49, 1000},
	"Mangalagiri": {49, 1000},
	"Vijayawada":  {79, 1000},
	"Hyderabad":   {149, 2000},
}

var apCities = []string{
	"Visakhapatnam", "Vijayawada", "Guntur", "Nellore", "Tirupati", "Kakinada",
	"Rajahmundry", "Anantapur", "Kurnool", "Kadapa", "Vizianagaram", "Eluru",
	"Ongole", "Nandyal", "Srikakulam", "Chittoor", "Machilipatnam", "Bhimavaram",
	"Hindupur", "Tenali", "Proddatur", "Adoni", "Narasaraopet", "Kavali",
	"Gudivada", "Chirala", "Madanapalle", "Chilakaluripet", "Dharmavaram",
	"Tadepalligudem", "Palakollu", "Puttur", "Bapatla", "Sattenapalle",
	"Markapur", "Vinukonda", "Guntakal", "Srikalahasti", "Repalle",
	"Amalapuram", "Bobbili", "Samalkot", "Tanuku", "Narasapuram",
	"Mangalagiri", "Ponnur", "Pedakakani", "Duggirala", "Macherla",
	"Amaravathi", "Piduguralla",
}

var telanganaCities = []string{
	"Hyderabad", "Secunderabad", "Warangal", "Nizamabad", "Karimnagar",
	"Khammam", "Ramagundam", "Mahbubnagar", "Nalgonda", "Adilabad",
	"Suryapet", "Miryalaguda", "Jagtial", "Mancherial", "Nirmal",
	"Kamareddy", "Siddipet", "Wanaparthy",
}

var products = []models.Product{
	{Name: "Immunity Dry Fruits Laddu", Category: "laddus-chikkis", Description: "Boost immunity with dry fruits",
		Prices: []models.PriceOption{{Weight: "¼ kg", Price: 399}, {Weight: "1kg", Price: 1499}},
		IsBestSeller: true, Tag: "Healthy Choice"},
	{Name: "Ragi Dry Fruits Laddu", Category: "laddus-chikkis", Description: "Healthy ragi with dry fruits",
		Prices: []models.PriceOption{{Weight: "¼ kg", Price: 299}, {Weight: "1kg", Price: 1199}},
		Tag: "Nutritious"},
	{Name: "Ground Nut Laddu", Category: "laddus-chikkis", Description: "Traditional groundnut laddu",
		Prices: []models.PriceOption{{Weight: "¼ kg", Price: 150}, {Weight: "½ kg", Price: 280}, {Weight: "1kg", Price: 550}},
		IsBestSeller: true, Tag: "Traditional"},
	{Name: "Palli Chikki", Category: "laddus-chikkis", Description: "Crunchy peanut chikki",
		Prices: []models.PriceOption{{Weight: "¼ kg", Price: 120}, {Weight: "½ kg", Price: 230}, {Weight: "1kg", Price: 450}},
		Tag: "Crunchy"},
	{Name: "Nuvvula Laddu", Category: "laddus-chikkis", Description: "Sesame seed laddu",
		Prices: []models.PriceOption{{Weight: "¼ kg", Price: 180}, {Weight: "½ kg", Price: 350}, {Weight: "1kg", Price: 680}},
		IsNew: true, Tag: "Nutritious"},
	{Name: "Tomato Pickle", Category: "pickles", Description: "Spicy tomato pickle",
		Prices: []models.PriceOption{{Weight: "¼ kg", Price: 100}, {Weight: "½ kg", Price: 190}, {Weight: "1kg", Price: 370}},
		Tag: "Tangy"},
	{Name: "Chilli Pickle", Category: "pickles", Description: "Hot chilli pickle",
		Prices: []models.PriceOption{{Weight: "¼ kg", Price: 130}, {Weight: "½ kg", Price: 250}, {Weight: "1kg", Price: 490}},
		Tag: "Hot"},
	{Name: "Garlic Pickle", Category: "pickles", Description: "Spicy garlic pickle",
		Prices: []models.PriceOption{{Weight: "¼ kg", Price: 125}, {Weight: "½ kg", Price: 240}, {Weight: "1kg", Price: 470}},
		IsNew: true, Tag: "Spicy"},
	{Name: "Amla Pickle", Category: "pickles", Description: "Healthy amla pickle",
		Prices: []models.PriceOption{{Weight: "¼ kg", Price: 135}, {Weight: "½ kg", Price: 260}, {Weight: "1kg", Price: 510}},
		Tag: "Healthy"},
	{Name: "Sambar Powder", Category: "powders", Description: "Authentic sambar powder",
		Prices: []models.PriceOption{{Weight: "100g", Price: 60}, {Weight: "250g", Price: 140}, {Weight: "500g", Price: 270}},
		IsBestSeller: true, Tag: "Authentic"},
	{Name: "Karam Podi", Category: "powders", Description: "Spicy gunpowder for idli and dosa",
		Prices: []models.PriceOption{{Weight: "100g", Price: 70}, {Weight: "250g", Price: 160}, {Weight: "500g", Price: 310}},
		Tag: "Spicy"},
	{Name: "Boondi Laddu", Category: "sweets", Description: "Classic boondi laddu",
		Prices: []models.PriceOption{{Weight: "¼ kg", Price: 160}, {Weight: "½ kg", Price: 310}, {Weight: "1kg", Price: 600}},
		IsBestSeller: true, Tag: "Classic", IsFestival: true},
	{Name: "Mysore Pak", Category: "sweets", Description: "Rich ghee mysore pak",
		Prices: []models.PriceOption{{Weight: "¼ kg", Price: 220}, {Weight: "½ kg", Price: 430}, {Weight: "1kg", Price: 850}},
		Tag: "Rich", IsFestival: true},
	{Name: "Chekkalu", Category: "snacks", Description: "Crispy rice crackers",
		Prices: []models.PriceOption{{Weight: "¼ kg", Price: 110}, {Weight: "½ kg", Price: 210}, {Weight: "1kg", Price: 400}},
		Tag: "Crispy"},
	{Name: "Murukulu", Category: "snacks", Description: "Traditional murukulu",
		Prices: []models.PriceOption{{Weight: "¼ kg", Price: 120}, {Weight: "½ kg", Price: 230}, {Weight: "1kg", Price: 440}},
		Tag: "Traditional"},
	{Name: "Kaju Masala", Category: "hot-items", Description: "Spiced roasted cashews",
		Prices: []models.PriceOption{{Weight: "100g", Price: 150}, {Weight: "250g", Price: 350}},
		IsNew: true, Tag: "Premium"},
	{Name: "Elaichi", Category: "spices", Description: "Premium green cardamom",
		Prices: []models.PriceOption{{Weight: "50g", Price: 170}, {Weight: "100g", Price: 320}},
		Tag: "Aromatic"},
}

func main() {
	config.Load()
	database.ConnectDatabases()
	defer database.CloseMongo()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	seedStates(ctx)
	seedCities(ctx, "Andhra Pradesh", apCities, 1000)
	seedCities(ctx, "Telangana", telanganaCities, 1500)
	seedProducts(ctx)

	log.Println("✅ Seed terminé")
}

func seedStates(ctx context.Context) {
	for _, name := range []string{"Andhra Pradesh", "Telangana"} {
		_, err := database.States().UpdateOne(ctx,
			bson.M{"name": name},
			bson.M{"$setOnInsert": bson.M{"name": name, "enabled": true}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			log.Println("❌ Erreur seed état", name, ":", err)
		}
	}
	log.Println("🏙️ États en place")
}

func seedCities(ctx context.Context, state string, cities []string, defaultThreshold float64) {
	added := 0
	for _, city := range cities {
		charge, threshold := 99.0, defaultThreshold
		if c, ok := cityCharges[city]; ok {
			charge, threshold = c.Charge, c.Threshold
		}

		// $setOnInsert pour ne jamais écraser un tarif ajusté depuis l'admin
		res, err := database.Locations().UpdateOne(ctx,
			bson.M{"name": city, "state": state},
			bson.M{"$setOnInsert": models.Location{
				ID:                    uuid.New().String(),
				Name:                  city,
				State:                 state,
				Charge:                charge,
				FreeDeliveryThreshold: threshold,
				Enabled:               true,
				CreatedAt:             time.Now().UTC(),
			}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			log.Println("❌ Erreur seed ville", city, ":", err)
			continue
		}
		if res.UpsertedCount > 0 {
			added++
		}
	}
	log.Printf("🏙️ %s : %d ville(s) ajoutée(s) sur %d", state, added, len(cities))
}

func seedProducts(ctx context.Context) {
	added := 0
	for _, p := range products {
		p.ID = uuid.New().String()
		p.CreatedAt = time.Now().UTC()

		res, err := database.Products().UpdateOne(ctx,
			bson.M{"name": p.Name, "category": p.Category},
			bson.M{"$setOnInsert": p},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			log.Println("❌ Erreur seed produit", p.Name, ":", err)
			continue
		}
		if res.UpsertedCount > 0 {
			added++
		}
	}
	log.Printf("📦 Catalogue : %d produit(s) ajouté(s) sur %d", added, len(products))
}
