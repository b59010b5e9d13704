package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/langcamp/language-camp-api/internal/domain/entity"
	"github.com/langcamp/language-camp-api/internal/domain/repository"
)

type SelectionRepository struct {
	coll *mongo.Collection
}

func NewSelectionRepository(db *mongo.Database) *SelectionRepository {
	return &SelectionRepository{coll: db.Collection(SelectionsCollection)}
}

func (r *SelectionRepository) Insert(ctx context.Context, s *entity.SelectedClass) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, s)
}

func (r *SelectionRepository) ByEmail(ctx context.Context, email string) ([]entity.SelectedClass, error) {
	cur, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	selections := []entity.SelectedClass{}
	if err := cur.All(ctx, &selections); err != nil {
		return nil, err
	}
	return selections, nil
}

func (r *SelectionRepository) DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	return r.coll.DeleteOne(ctx, filter)
}

func (r *SelectionRepository) SetAvailableSeats(ctx context.Context, id string, seats int) (*mongo.UpdateResult, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	return r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"availableSeats": seats}})
}

var _ repository.SelectionRepository = (*SelectionRepository)(nil)
