package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only audit record of a completed charge.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Amount        float64            `bson:"amount" json:"amount"`
	ClassID       string             `bson:"classId,omitempty" json:"classId,omitempty"`
	Date          time.Time          `bson:"date,omitempty" json:"date,omitempty"`
}
