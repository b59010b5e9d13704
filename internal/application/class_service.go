package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/langcamp/language-camp-api/internal/domain/entity"
	"github.com/langcamp/language-camp-api/internal/domain/repository"
	"github.com/langcamp/language-camp-api/pkg/helpers"
	"github.com/langcamp/language-camp-api/pkg/mailer"
)

// ClassService wraps the class repository with catalog search indexing and
// moderation notifications. ES and the publisher are optional; everything
// degrades to plain repository calls when they are nil.
type ClassService struct {
	Repo    repository.ClassRepository
	ES      *elasticsearch.Client
	ESIndex string
	Pub     *helpers.RabbitPublisher
	Logger  *logrus.Logger
}

func NewClassService(repo repository.ClassRepository, es *elasticsearch.Client, esIndex string, pub *helpers.RabbitPublisher, logger *logrus.Logger) *ClassService {
	return &ClassService{Repo: repo, ES: es, ESIndex: esIndex, Pub: pub, Logger: logger}
}

// Catalog lists approved classes only; pending and denied ones stay hidden.
func (s *ClassService) Catalog(ctx context.Context) ([]entity.Class, error) {
	return s.Repo.ByStatus(ctx, entity.StatusApproved)
}

// All returns every class regardless of status (admin moderation view).
func (s *ClassService) All(ctx context.Context) ([]entity.Class, error) {
	return s.Repo.All(ctx)
}

// Mine lists the classes proposed by one instructor.
func (s *ClassService) Mine(ctx context.Context, email string) ([]entity.Class, error) {
	return s.Repo.ByInstructor(ctx, email)
}

// UpsertWrapped forwards the legacy wrapped update; see ClassRepository.
func (s *ClassService) UpsertWrapped(ctx context.Context, id string, cl *entity.Class) (*mongo.UpdateResult, error) {
	return s.Repo.UpsertWrapped(ctx, id, cl)
}

// SetFeedback stores admin feedback on a class.
func (s *ClassService) SetFeedback(ctx context.Context, id, feedback string) (*mongo.UpdateResult, error) {
	return s.Repo.SetFeedback(ctx, id, feedback)
}

// SetAvailableSeats overwrites the seat count. Negative values are stored
// as given; nothing validates them.
func (s *ClassService) SetAvailableSeats(ctx context.Context, id string, seats int) (*mongo.UpdateResult, error) {
	return s.Repo.SetAvailableSeats(ctx, id, seats)
}

// Add inserts a proposed class and indexes it best-effort.
func (s *ClassService) Add(ctx context.Context, cl *entity.Class) (*mongo.InsertOneResult, error) {
	res, err := s.Repo.Insert(ctx, cl)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.indexClass(ctx, oid.Hex(), cl)
	}
	return res, nil
}

// UpdateStatus sets the status field, re-indexes, and enqueues a moderation
// notice for the instructor. The status value itself is not validated.
func (s *ClassService) UpdateStatus(ctx context.Context, id, status string) (*mongo.UpdateResult, error) {
	res, err := s.Repo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	cl, lookupErr := s.Repo.GetByID(ctx, id)
	if lookupErr != nil {
		if s.Logger != nil {
			s.Logger.WithError(lookupErr).WithField("class_id", id).Warn("status notification skipped")
		}
		return res, nil
	}
	s.indexClass(ctx, id, cl)
	s.notifyStatus(ctx, cl, status)
	return res, nil
}

func (s *ClassService) notifyStatus(ctx context.Context, cl *entity.Class, status string) {
	if s.Pub == nil || cl.InstructorEmail == "" {
		return
	}
	job := mailer.EmailJob{
		To:      cl.InstructorEmail,
		Subject: "Your class \"" + cl.Name + "\" was " + status,
		Text:    "The status of your class \"" + cl.Name + "\" is now: " + status + ".",
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("class_id", cl.ID.Hex()).Warn("failed to publish status email")
	}
}

func (s *ClassService) indexClass(ctx context.Context, id string, cl *entity.Class) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"name":            cl.Name,
		"instructorName":  cl.InstructorName,
		"instructorEmail": cl.InstructorEmail,
		"price":           cl.Price,
		"status":          cl.Status,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: id, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("class_id", id).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("class_id", id).Warn("es index response error")
	}
}

// Search multi-matches on class and instructor name, approved classes
// ranked like any other; returns raw source documents.
func (s *ClassService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "instructorName"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		src := h.Source
		if src == nil {
			src = map[string]any{}
		}
		src["_id"] = h.ID
		out = append(out, src)
	}
	return out, nil
}
