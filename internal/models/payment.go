package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed checkout. CartIDs holds the hex ids of the
// cart items this payment settled; immutable once written.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date          time.Time          `bson:"date,omitempty" json:"date,omitempty"`
	CartIDs       []string           `bson:"cartId" json:"cartId"`
	MenuItemIDs   []string           `bson:"menuItemIds,omitempty" json:"menuItemIds,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
}
