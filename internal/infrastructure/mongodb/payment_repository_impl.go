package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/langcamp/language-camp-api/internal/domain/entity"
	"github.com/langcamp/language-camp-api/internal/domain/repository"
)

type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(PaymentsCollection)}
}

func (r *PaymentRepository) Insert(ctx context.Context, p *entity.Payment) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, p)
}

var _ repository.PaymentRepository = (*PaymentRepository)(nil)
