package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nizs/delizia-server/internal/models"
)

// ErrUserExists is returned by RegisterUser when the email is already stored.
var ErrUserExists = errors.New("user already exists")

// RegisterUser stores a new user keyed by email. Registration is idempotent:
// a second call with the same email performs no write and reports ErrUserExists.
func RegisterUser(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	err := userCollection.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	return userCollection.InsertOne(ctx, user)
}

// ListUsers returns every stored user
func ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := userCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserRole looks up the stored role for an email. A missing user or a user
// without a role both resolve to the empty role.
func UserRole(ctx context.Context, email string) (string, error) {
	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// IsAdmin reports whether the email's stored role is admin. "Not admin" is a
// valid answer here, not an error.
func IsAdmin(ctx context.Context, email string) (bool, error) {
	role, err := UserRole(ctx, email)
	if err != nil {
		return false, err
	}
	return role == models.RoleAdmin, nil
}

// PromoteToAdmin sets role to admin on the user with the given id. Never the
// other way around; this layer has no demotion.
func PromoteToAdmin(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"role": models.RoleAdmin}}
	return userCollection.UpdateOne(ctx, bson.M{"_id": objID}, update)
}

// DeleteUser removes the user with the given id
func DeleteUser(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return userCollection.DeleteOne(ctx, bson.M{"_id": objID})
}
