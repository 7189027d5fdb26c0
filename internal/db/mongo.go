package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB connection instance
var MongoClient *mongo.Client

// DatabaseName is the application database
const DatabaseName = "delizia"

// ConnectMongoDB initializes the database connection
func ConnectMongoDB(uri string) *mongo.Database {
	clientOptions := options.Client().ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}

	// Ping the database to verify connection
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatalf("MongoDB ping failed: %v", err)
	}

	fmt.Println("✅ Connected to MongoDB")
	MongoClient = client
	return client.Database(DatabaseName)
}

// GetCollection returns a collection from the application database
func GetCollection(collectionName string) *mongo.Collection {
	return MongoClient.Database(DatabaseName).Collection(collectionName)
}
