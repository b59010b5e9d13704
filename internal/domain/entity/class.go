package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Class moderation states.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

// Class is proposed by an instructor; status and feedback are set by admins,
// seats are decremented on enrollment. Neither seat non-negativity nor
// status transitions are validated anywhere.
type Class struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName  string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	InstructorEmail string             `bson:"instructorEmail" json:"instructorEmail"`
	AvailableSeats  int                `bson:"availableSeats" json:"availableSeats"`
	Price           float64            `bson:"price" json:"price"`
	Status          string             `bson:"status,omitempty" json:"status,omitempty"`
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}
