package database

import (
	"context"
	"log"
	"time"

	"hirafic/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(config.AppConfig.DatabaseURL).
		SetServerSelectionTimeout(10 * time.Second)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	log.Printf("Connected to MongoDB (database %q)", DatabaseName())
}

// DatabaseName returns the configured database name.
func DatabaseName() string {
	if name := config.AppConfig.DatabaseName; name != "" {
		return name
	}
	return "hirafic"
}

// Collection returns a handle to the named collection in the configured
// database. Repositories obtain their collections through this so the
// database name lives in one place.
func Collection(name string) *mongo.Collection {
	return MongoClient.Database(DatabaseName()).Collection(name)
}
