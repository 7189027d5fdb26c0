package services

import (
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	userCollection    *mongo.Collection
	menuCollection    *mongo.Collection
	reviewCollection  *mongo.Collection
	cartCollection    *mongo.Collection
	paymentCollection *mongo.Collection
)

// Init wires the service layer to its MongoDB collections
func Init(database *mongo.Database) {
	userCollection = database.Collection("users")
	menuCollection = database.Collection("menu")
	reviewCollection = database.Collection("reviews")
	cartCollection = database.Collection("carts")
	paymentCollection = database.Collection("payments")
}
