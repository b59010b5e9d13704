package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/langcamp/language-camp-api/internal/domain/entity"
	"github.com/langcamp/language-camp-api/internal/domain/repository"
)

type ClassRepository struct {
	coll *mongo.Collection
}

func NewClassRepository(db *mongo.Database) *ClassRepository {
	return &ClassRepository{coll: db.Collection(ClassesCollection)}
}

func (r *ClassRepository) Insert(ctx context.Context, cl *entity.Class) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, cl)
}

func (r *ClassRepository) All(ctx context.Context) ([]entity.Class, error) {
	return r.find(ctx, bson.M{})
}

func (r *ClassRepository) ByStatus(ctx context.Context, status string) ([]entity.Class, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *ClassRepository) ByInstructor(ctx context.Context, email string) ([]entity.Class, error) {
	return r.find(ctx, bson.M{"instructorEmail": email})
}

func (r *ClassRepository) find(ctx context.Context, filter bson.M) ([]entity.Class, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	classes := []entity.Class{}
	if err := cur.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *ClassRepository) GetByID(ctx context.Context, id string) (*entity.Class, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	cl := &entity.Class{}
	if err := r.coll.FindOne(ctx, filter).Decode(cl); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return cl, nil
}

func (r *ClassRepository) SetStatus(ctx context.Context, id, status string) (*mongo.UpdateResult, error) {
	return r.setField(ctx, id, "status", status)
}

func (r *ClassRepository) SetFeedback(ctx context.Context, id, feedback string) (*mongo.UpdateResult, error) {
	return r.setField(ctx, id, "feedback", feedback)
}

func (r *ClassRepository) SetAvailableSeats(ctx context.Context, id string, seats int) (*mongo.UpdateResult, error) {
	return r.setField(ctx, id, "availableSeats", seats)
}

func (r *ClassRepository) setField(ctx context.Context, id, field string, value any) (*mongo.UpdateResult, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	return r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{field: value}})
}

// UpsertWrapped nests the whole payload under "updatedClass" rather than
// merging fields into the document. Kept as-is; see DESIGN.md.
func (r *ClassRepository) UpsertWrapped(ctx context.Context, id string, cl *entity.Class) (*mongo.UpdateResult, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{"updatedClass": cl}}
	return r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
}

var _ repository.ClassRepository = (*ClassRepository)(nil)
