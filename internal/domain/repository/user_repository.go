package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/langcamp/language-camp-api/internal/domain/entity"
)

// UserRepository defines user collection operations. Write operations expose
// the driver acknowledgment, which is what the API returns on the wire.
type UserRepository interface {
	Insert(ctx context.Context, u *entity.User) (*mongo.InsertOneResult, error)
	All(ctx context.Context) ([]entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
