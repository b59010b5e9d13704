package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/langcamp/language-camp-api/internal/domain/entity"
)

// PaymentRepository defines payments collection operations. Append-only
// audit records.
type PaymentRepository interface {
	Insert(ctx context.Context, p *entity.Payment) (*mongo.InsertOneResult, error)
}
