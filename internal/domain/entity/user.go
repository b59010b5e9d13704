package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values stored on a user record. A freshly signed-in user has no role
// until an admin assigns one.
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
)

// User is created on first sign-in and mutated only to change its role.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Email    string             `bson:"email" json:"email"`
	PhotoURL string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
}
