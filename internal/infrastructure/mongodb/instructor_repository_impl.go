package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/langcamp/language-camp-api/internal/domain/entity"
	"github.com/langcamp/language-camp-api/internal/domain/repository"
)

type InstructorRepository struct {
	coll *mongo.Collection
}

func NewInstructorRepository(db *mongo.Database) *InstructorRepository {
	return &InstructorRepository{coll: db.Collection(InstructorsCollection)}
}

// All returns the collection unfiltered. The public page shows every row;
// filtering by role happens client-side today (see DESIGN.md).
func (r *InstructorRepository) All(ctx context.Context) ([]entity.Instructor, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	instructors := []entity.Instructor{}
	if err := cur.All(ctx, &instructors); err != nil {
		return nil, err
	}
	return instructors, nil
}

var _ repository.InstructorRepository = (*InstructorRepository)(nil)
