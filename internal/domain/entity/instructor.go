package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Instructor is a catalog card shown on the public instructors page.
type Instructor struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email,omitempty" json:"email,omitempty"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}
