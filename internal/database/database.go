package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// --- Variables Globales ---
var (
	MongoClient *mongo.Client
	MongoDB     *mongo.Database
	Redis       *redis.Client
	MinIO       *minio.Client
)

// --- Initialisation ---
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 1. Initialiser MongoDB
	connectMongo(ctx)

	// 2. Initialiser Redis
	connectRedis(ctx)

	// 3. Initialiser MinIO (optionnel — upload d'images produits)
	connectMinIO(ctx)

	log.Println("✅ Toutes les bases de données sont connectées")
}

// =============================================
// MONGODB
// =============================================
func connectMongo(ctx context.Context) {
	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		mongoURL = "mongodb://localhost:27017"
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "anantha_lakshmi_db"
	}

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(mongoURL).
		SetMaxPoolSize(20).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		log.Fatal("❌ Erreur connexion MongoDB:", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("❌ MongoDB injoignable:", err)
	}

	MongoClient = client
	MongoDB = client.Database(dbName)
	log.Println("✅ Connecté à MongoDB, base:", dbName)
}

// CloseMongo ferme la connexion MongoDB
func CloseMongo() {
	if MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := MongoClient.Disconnect(ctx); err != nil {
		log.Println("⚠️ Erreur fermeture MongoDB:", err)
		return
	}
	log.Println("🔌 Connexion MongoDB fermée")
}

// --- Helpers collections ---

func Products() *mongo.Collection    { return MongoDB.Collection("products") }
func Locations() *mongo.Collection   { return MongoDB.Collection("locations") }
func States() *mongo.Collection      { return MongoDB.Collection("states") }
func Orders() *mongo.Collection      { return MongoDB.Collection("orders") }
func Suggestions() *mongo.Collection { return MongoDB.Collection("city_suggestions") }
func Reports() *mongo.Collection     { return MongoDB.Collection("reports") }
func Settings() *mongo.Collection    { return MongoDB.Collection("settings") }
func Dismissals() *mongo.Collection  { return MongoDB.Collection("notification_dismissals") }
func EmailOutbox() *mongo.Collection { return MongoDB.Collection("email_outbox") }
func AdminOTPs() *mongo.Collection   { return MongoDB.Collection("admin_otps") }

// =============================================
// REDIS
// =============================================
func connectRedis(ctx context.Context) {
	addr := os.Getenv("REDIS_HOST")
	if addr == "" {
		addr = "localhost:6379"
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erreur connexion Redis:", err)
	}
	log.Println("✅ Connecté à Redis")
}

// =============================================
// MINIO
// =============================================
func connectMinIO(ctx context.Context) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		log.Println("⚠️ MinIO non configuré — upload d'images désactivé")
		return
	}

	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Fatal("❌ Erreur connexion MinIO:", err)
	}

	bucketName := os.Getenv("MINIO_BUCKET")
	if bucketName == "" {
		bucketName = "uploads"
	}

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		log.Fatal("❌ Erreur vérification bucket MinIO:", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			log.Fatal("❌ Erreur création bucket MinIO:", err)
		}
		log.Println("🪣 Bucket créé :", bucketName)
	} else {
		log.Println("🪣 Bucket MinIO déjà présent :", bucketName)
	}

	MinIO = client
	log.Println("✅ Connecté à MinIO :", endpoint)
}
