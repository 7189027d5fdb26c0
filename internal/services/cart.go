package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nizs/delizia-server/internal/models"
)

// ListCartItems returns the cart items stored under an email. The caller's
// identity is not checked against the email; see DESIGN.md.
func ListCartItems(ctx context.Context, email string) ([]models.CartItem, error) {
	cursor, err := cartCollection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddCartItem inserts one cart item
func AddCartItem(ctx context.Context, item models.CartItem) (*mongo.InsertOneResult, error) {
	return cartCollection.InsertOne(ctx, item)
}

// DeleteCartItem removes one cart item by id
func DeleteCartItem(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return cartCollection.DeleteOne(ctx, bson.M{"_id": objID})
}
