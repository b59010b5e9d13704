package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SelectedClass is a pending-cart entry. It is deleted on removal or after a
// successful enrollment; the two operations are independent and non-atomic.
type SelectedClass struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClassID         string             `bson:"classId" json:"classId"`
	Name            string             `bson:"name,omitempty" json:"name,omitempty"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName  string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	InstructorEmail string             `bson:"instructorEmail,omitempty" json:"instructorEmail,omitempty"`
	AvailableSeats  int                `bson:"availableSeats,omitempty" json:"availableSeats,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	Email           string             `bson:"email" json:"email"`
}
