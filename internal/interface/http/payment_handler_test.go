package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/langcamp/language-camp-api/internal/application"
	"github.com/langcamp/language-camp-api/internal/domain/entity"
	"github.com/langcamp/language-camp-api/internal/domain/repository"
)

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments []entity.Payment
}

func (r *fakePaymentRepo) Insert(ctx context.Context, p *entity.Payment) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.payments = append(r.payments, *p)
	return &mongo.InsertOneResult{InsertedID: p.ID}, nil
}

var _ repository.PaymentRepository = (*fakePaymentRepo)(nil)

func paymentRouter(repo *fakePaymentRepo, svc *application.PaymentService) *gin.Engine {
	h := NewPaymentHandler(repo, svc, testLogger())
	r := gin.New()
	r.POST("/payments", h.Create)
	r.POST("/create-payment-intent", h.CreateIntent)
	return r
}

func TestCreatePaymentRecord(t *testing.T) {
	repo := &fakePaymentRepo{}
	r := paymentRouter(repo, application.NewPaymentService(""))

	req := httptest.NewRequest(http.MethodPost, "/payments",
		strings.NewReader(`{"email":"a@x.com","transactionId":"pi_123","amount":20,"classId":"c1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}
	var ack struct {
		InsertedID string `json:"InsertedID"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &ack); err != nil || ack.InsertedID == "" {
		t.Fatalf("insert ack missing id: %s", w.Body.String())
	}
	if len(repo.payments) != 1 || repo.payments[0].TransactionID != "pi_123" {
		t.Fatalf("payment not recorded: %+v", repo.payments)
	}
}

// Without a gateway key the intent route fails server-side rather than
// inventing a secret.
func TestCreateIntentGatewayUnconfigured(t *testing.T) {
	r := paymentRouter(&fakePaymentRepo{}, application.NewPaymentService(""))

	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price":20}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", w.Code)
	}
}
