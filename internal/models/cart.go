package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one menu item placed in a user's cart. Ownership is the email
// field only; queries filter on it but nothing enforces it at storage level.
type CartItem struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MenuID string             `bson:"menuId" json:"menuId"`
	Email  string             `bson:"email" json:"email"`
	Name   string             `bson:"name" json:"name"`
	Image  string             `bson:"image,omitempty" json:"image,omitempty"`
	Price  float64            `bson:"price" json:"price"`
}
