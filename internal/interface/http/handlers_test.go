package handlers

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/langcamp/language-camp-api/internal/domain/entity"
	"github.com/langcamp/language-camp-api/internal/domain/repository"
	"github.com/langcamp/language-camp-api/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func testJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("handler-test-secret", time.Hour)
}

func bearerFor(t *testing.T, jwtm *helpers.JWTManager, email string) string {
	t.Helper()
	token, _, err := jwtm.Issue(map[string]any{"email": email})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

// fakeUserRepo backs the user handler tests with a map keyed by email.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func newFakeUserRepo(users ...entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]entity.User{}}
	for _, u := range users {
		r.users[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Insert(ctx context.Context, u *entity.User) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.users[u.Email] = *u
	return &mongo.InsertOneResult{InsertedID: u.ID}, nil
}

func (r *fakeUserRepo) All(ctx context.Context) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

// fakeSelectionRepo backs the cart handler tests.
type fakeSelectionRepo struct {
	mu    sync.Mutex
	items map[string]entity.SelectedClass
}

func newFakeSelectionRepo() *fakeSelectionRepo {
	return &fakeSelectionRepo{items: map[string]entity.SelectedClass{}}
}

func (r *fakeSelectionRepo) Insert(ctx context.Context, s *entity.SelectedClass) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	r.items[s.ID.Hex()] = *s
	return &mongo.InsertOneResult{InsertedID: s.ID}, nil
}

func (r *fakeSelectionRepo) ByEmail(ctx context.Context, email string) ([]entity.SelectedClass, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.SelectedClass{}
	for _, s := range r.items {
		if s.Email == email {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSelectionRepo) DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return &mongo.DeleteResult{DeletedCount: 0}, nil
	}
	delete(r.items, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (r *fakeSelectionRepo) SetAvailableSeats(ctx context.Context, id string, seats int) (*mongo.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	s.AvailableSeats = seats
	r.items[id] = s
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

var _ repository.SelectionRepository = (*fakeSelectionRepo)(nil)
