package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin is the only privileged role; every other user has no role at all.
const RoleAdmin = "admin"

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}
