package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nizs/delizia-server/internal/db"
	"github.com/nizs/delizia-server/internal/models"
)

// MinorUnits converts a major-unit price to integer cents, rounding to the
// nearest cent so binary float noise (19.99*100 = 1998.99…) can't shave one.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreatePaymentIntent asks Stripe for a card-only USD intent over the given
// price and returns the client secret the frontend completes payment with.
// Stripe errors are not recovered here.
func CreatePaymentIntent(price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// InsertResult is the client-facing shape of a payment insert
type InsertResult struct {
	InsertedID interface{} `json:"insertedId"`
}

// DeleteResult is the client-facing shape of the cart prune
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// SettleResult pairs both halves of a settlement so the caller can confirm
// counts.
type SettleResult struct {
	PaymentResult InsertResult `json:"paymentResult"`
	DeleteResult  DeleteResult `json:"deleteResult"`
}

// Settle records a completed payment and prunes the cart items it paid for.
// Insert and delete run inside one multi-document transaction: a crash can
// no longer leave a payment without its cart prune or vice versa. Cart ids
// already settled by an earlier call simply match nothing and lower the
// delete count; that is not an error. Ownership of the cart ids and the
// price total are taken on trust from the caller.
func Settle(ctx context.Context, payment models.Payment) (*SettleResult, error) {
	ids := make([]primitive.ObjectID, 0, len(payment.CartIDs))
	for _, id := range payment.CartIDs {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("invalid cart id %q: %w", id, err)
		}
		ids = append(ids, objID)
	}

	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}

	session, err := db.MongoClient.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		insertResult, err := paymentCollection.InsertOne(sc, payment)
		if err != nil {
			return nil, err
		}

		deleteResult, err := cartCollection.DeleteMany(sc, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return nil, err
		}

		return &SettleResult{
			PaymentResult: InsertResult{InsertedID: insertResult.InsertedID},
			DeleteResult:  DeleteResult{DeletedCount: deleteResult.DeletedCount},
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*SettleResult), nil
}

// ListPayments returns the payments recorded under an email
func ListPayments(ctx context.Context, email string) ([]models.Payment, error) {
	cursor, err := paymentCollection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
