package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/langcamp/language-camp-api/internal/domain/entity"
	"github.com/langcamp/language-camp-api/internal/domain/repository"
	"github.com/langcamp/language-camp-api/internal/interface/middleware"
	"github.com/langcamp/language-camp-api/pkg/response"
	"github.com/langcamp/language-camp-api/pkg/validation"
)

type SelectionHandler struct {
	Repo   repository.SelectionRepository
	Logger *logrus.Logger
}

func NewSelectionHandler(repo repository.SelectionRepository, logger *logrus.Logger) *SelectionHandler {
	return &SelectionHandler{Repo: repo, Logger: logger}
}

// Create adds a class to the caller's cart.
func (h *SelectionHandler) Create(c *gin.Context) {
	var s entity.SelectedClass
	if err := c.ShouldBindJSON(&s); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	res, err := h.Repo.Insert(c.Request.Context(), &s)
	if err != nil {
		storeFail(c, h.Logger, "selections.insert", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// List returns the cart for the email in the query string. An empty email
// yields an empty list; a mismatch against the token email is rejected with
// the route's historical 401 shape.
func (h *SelectionHandler) List(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []entity.SelectedClass{})
		return
	}
	if email != middleware.TokenEmail(c) {
		response.Fail(c, http.StatusUnauthorized, "Forbidden access")
		return
	}
	selections, err := h.Repo.ByEmail(c.Request.Context(), email)
	if err != nil {
		storeFail(c, h.Logger, "selections.find", err)
		return
	}
	c.JSON(http.StatusOK, selections)
}

// Delete removes a cart entry by id.
func (h *SelectionHandler) Delete(c *gin.Context) {
	res, err := h.Repo.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeFail(c, h.Logger, "selections.delete", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type updateSelectionSeatsRequest struct {
	AvailableSeats int `json:"availableSeats"`
}

// UpdateSeats overwrites the seat count stored on a cart entry.
func (h *SelectionHandler) UpdateSeats(c *gin.Context) {
	var req updateSelectionSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	res, err := h.Repo.SetAvailableSeats(c.Request.Context(), c.Param("id"), req.AvailableSeats)
	if err != nil {
		storeFail(c, h.Logger, "selections.update", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
