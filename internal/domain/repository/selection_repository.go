package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/langcamp/language-camp-api/internal/domain/entity"
)

// SelectionRepository defines selected-classes (cart) collection operations.
type SelectionRepository interface {
	Insert(ctx context.Context, s *entity.SelectedClass) (*mongo.InsertOneResult, error)
	ByEmail(ctx context.Context, email string) ([]entity.SelectedClass, error)
	DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error)
	SetAvailableSeats(ctx context.Context, id string, seats int) (*mongo.UpdateResult, error)
}
