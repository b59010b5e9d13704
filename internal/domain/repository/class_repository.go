package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/langcamp/language-camp-api/internal/domain/entity"
)

// ClassRepository defines class collection operations.
type ClassRepository interface {
	Insert(ctx context.Context, cl *entity.Class) (*mongo.InsertOneResult, error)
	All(ctx context.Context) ([]entity.Class, error)
	ByStatus(ctx context.Context, status string) ([]entity.Class, error)
	ByInstructor(ctx context.Context, email string) ([]entity.Class, error)
	GetByID(ctx context.Context, id string) (*entity.Class, error)
	SetStatus(ctx context.Context, id, status string) (*mongo.UpdateResult, error)
	SetFeedback(ctx context.Context, id, feedback string) (*mongo.UpdateResult, error)
	SetAvailableSeats(ctx context.Context, id string, seats int) (*mongo.UpdateResult, error)
	// UpsertWrapped stores the whole payload under an "updatedClass" key
	// instead of merging top-level fields. Long-standing behavior of the
	// update endpoint, kept as-is; see DESIGN.md.
	UpsertWrapped(ctx context.Context, id string, cl *entity.Class) (*mongo.UpdateResult, error)
}
