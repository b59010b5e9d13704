package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EnrolledClass is appended after a payment completes. Append-only.
type EnrolledClass struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClassID    string             `bson:"classId" json:"classId"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Email      string             `bson:"email" json:"email"`
	EnrolledAt time.Time          `bson:"enrolledAt,omitempty" json:"enrolledAt,omitempty"`
}
