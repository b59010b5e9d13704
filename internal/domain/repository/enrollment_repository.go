package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/langcamp/language-camp-api/internal/domain/entity"
)

// EnrollmentRepository defines enrolled-classes collection operations.
// The collection is append-only.
type EnrollmentRepository interface {
	Insert(ctx context.Context, e *entity.EnrolledClass) (*mongo.InsertOneResult, error)
	All(ctx context.Context) ([]entity.EnrolledClass, error)
	ByEmail(ctx context.Context, email string) ([]entity.EnrolledClass, error)
}
