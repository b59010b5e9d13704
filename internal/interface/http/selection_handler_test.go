package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/langcamp/language-camp-api/internal/domain/entity"
	"github.com/langcamp/language-camp-api/internal/interface/middleware"
	"github.com/langcamp/language-camp-api/pkg/helpers"
)

func selectionRouter(repo *fakeSelectionRepo, jwtm *helpers.JWTManager) *gin.Engine {
	h := NewSelectionHandler(repo, testLogger())
	r := gin.New()
	auth := middleware.Auth(jwtm)
	r.POST("/selectedClasses", auth, h.Create)
	r.GET("/selectedClasses", auth, h.List)
	r.DELETE("/selectedClasses/:id", auth, h.Delete)
	r.PATCH("/updateSelectedClasses/:id", auth, h.UpdateSeats)
	return r
}

func TestListSelectionsEmptyEmail(t *testing.T) {
	jwtm := testJWT()
	r := selectionRouter(newFakeSelectionRepo(), jwtm)

	req := httptest.NewRequest(http.MethodGet, "/selectedClasses", nil)
	req.Header.Set("Authorization", bearerFor(t, jwtm, "a@x.com"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Fatalf("body = %s, want []", got)
	}
}

func TestListSelectionsEmailMismatch(t *testing.T) {
	jwtm := testJWT()
	r := selectionRouter(newFakeSelectionRepo(), jwtm)

	req := httptest.NewRequest(http.MethodGet, "/selectedClasses?email=victim@x.com", nil)
	req.Header.Set("Authorization", bearerFor(t, jwtm, "attacker@x.com"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", w.Code)
	}
	var body struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !body.Error || body.Message != "Forbidden access" {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestSelectionCartRoundTrip(t *testing.T) {
	jwtm := testJWT()
	repo := newFakeSelectionRepo()
	r := selectionRouter(repo, jwtm)
	auth := bearerFor(t, jwtm, "a@x.com")

	// add to cart
	req := httptest.NewRequest(http.MethodPost, "/selectedClasses",
		strings.NewReader(`{"classId":"c1","name":"Spanish 101","email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", auth)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("create code = %d, body = %s", w.Code, w.Body.String())
	}
	var ack struct {
		InsertedID string `json:"InsertedID"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &ack); err != nil || ack.InsertedID == "" {
		t.Fatalf("insert ack missing id: %s", w.Body.String())
	}

	// list own cart
	req = httptest.NewRequest(http.MethodGet, "/selectedClasses?email=a@x.com", nil)
	req.Header.Set("Authorization", auth)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list code = %d", w.Code)
	}
	var items []entity.SelectedClass
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("bad list body: %v", err)
	}
	if len(items) != 1 || items[0].ClassID != "c1" {
		t.Fatalf("items = %+v", items)
	}

	// remove
	req = httptest.NewRequest(http.MethodDelete, "/selectedClasses/"+ack.InsertedID, nil)
	req.Header.Set("Authorization", auth)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete code = %d", w.Code)
	}
	var del struct {
		DeletedCount int `json:"DeletedCount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &del); err != nil || del.DeletedCount != 1 {
		t.Fatalf("delete ack = %s", w.Body.String())
	}

	// cart is empty again
	req = httptest.NewRequest(http.MethodGet, "/selectedClasses?email=a@x.com", nil)
	req.Header.Set("Authorization", auth)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	items = nil
	_ = json.Unmarshal(w.Body.Bytes(), &items)
	if len(items) != 0 {
		t.Fatalf("cart not empty after delete: %+v", items)
	}
}

func TestUpdateSelectionSeats(t *testing.T) {
	jwtm := testJWT()
	repo := newFakeSelectionRepo()
	r := selectionRouter(repo, jwtm)

	res, err := repo.Insert(context.Background(), &entity.SelectedClass{ClassID: "c1", Email: "a@x.com", AvailableSeats: 10})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	id := res.InsertedID.(primitive.ObjectID).Hex()

	req := httptest.NewRequest(http.MethodPatch, "/updateSelectedClasses/"+id,
		strings.NewReader(`{"availableSeats":9}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, jwtm, "a@x.com"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}
	items, _ := repo.ByEmail(req.Context(), "a@x.com")
	if len(items) != 1 || items[0].AvailableSeats != 9 {
		t.Fatalf("seats not updated: %+v", items)
	}
}

func TestSelectionRoutesRequireToken(t *testing.T) {
	r := selectionRouter(newFakeSelectionRepo(), testJWT())
	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/selectedClasses"},
		{http.MethodPost, "/selectedClasses"},
		{http.MethodDelete, "/selectedClasses/abc"},
	} {
		req := httptest.NewRequest(route.method, route.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s code = %d, want 401", route.method, route.path, w.Code)
		}
	}
}
