package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/langcamp/language-camp-api/internal/domain/entity"
	"github.com/langcamp/language-camp-api/internal/domain/repository"
)

type EnrollmentRepository struct {
	coll *mongo.Collection
}

func NewEnrollmentRepository(db *mongo.Database) *EnrollmentRepository {
	return &EnrollmentRepository{coll: db.Collection(EnrollmentsCollection)}
}

func (r *EnrollmentRepository) Insert(ctx context.Context, e *entity.EnrolledClass) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, e)
}

func (r *EnrollmentRepository) All(ctx context.Context) ([]entity.EnrolledClass, error) {
	return r.find(ctx, bson.M{})
}

func (r *EnrollmentRepository) ByEmail(ctx context.Context, email string) ([]entity.EnrolledClass, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *EnrollmentRepository) find(ctx context.Context, filter bson.M) ([]entity.EnrolledClass, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	enrollments := []entity.EnrolledClass{}
	if err := cur.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

var _ repository.EnrollmentRepository = (*EnrollmentRepository)(nil)
