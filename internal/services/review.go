package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/nizs/delizia-server/internal/models"
)

// ListReviews returns every stored review
func ListReviews(ctx context.Context) ([]models.Review, error) {
	cursor, err := reviewCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
