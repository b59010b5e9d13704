package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/langcamp/language-camp-api/internal/application"
	"github.com/langcamp/language-camp-api/internal/domain/entity"
	"github.com/langcamp/language-camp-api/pkg/validation"
)

type ClassHandler struct {
	Svc    *application.ClassService
	Logger *logrus.Logger
}

func NewClassHandler(svc *application.ClassService, logger *logrus.Logger) *ClassHandler {
	return &ClassHandler{Svc: svc, Logger: logger}
}

// Catalog is the public class list; only approved classes appear.
func (h *ClassHandler) Catalog(c *gin.Context) {
	classes, err := h.Svc.Catalog(c.Request.Context())
	if err != nil {
		storeFail(c, h.Logger, "classes.find", err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// Search queries the catalog index by class or instructor name.
func (h *ClassHandler) Search(c *gin.Context) {
	hits, err := h.Svc.Search(c.Request.Context(), c.Query("q"), 0)
	if err != nil {
		storeFail(c, h.Logger, "classes.search", err)
		return
	}
	c.JSON(http.StatusOK, hits)
}

// All is the admin moderation view: every class, every status.
func (h *ClassHandler) All(c *gin.Context) {
	classes, err := h.Svc.All(c.Request.Context())
	if err != nil {
		storeFail(c, h.Logger, "classes.find", err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// Mine lists classes by the instructor email in the path.
func (h *ClassHandler) Mine(c *gin.Context) {
	classes, err := h.Svc.Mine(c.Request.Context(), c.Param("email"))
	if err != nil {
		storeFail(c, h.Logger, "classes.find", err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// Add inserts a proposed class; the client supplies the initial status.
func (h *ClassHandler) Add(c *gin.Context) {
	var cl entity.Class
	if err := c.ShouldBindJSON(&cl); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Add(c.Request.Context(), &cl)
	if err != nil {
		storeFail(c, h.Logger, "classes.insert", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Update stores the payload under the legacy "updatedClass" wrapper.
func (h *ClassHandler) Update(c *gin.Context) {
	var cl entity.Class
	if err := c.ShouldBindJSON(&cl); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	res, err := h.Svc.UpsertWrapped(c.Request.Context(), c.Param("id"), &cl)
	if err != nil {
		storeFail(c, h.Logger, "classes.update", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus sets the moderation status. The value is stored verbatim.
func (h *ClassHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	res, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		storeFail(c, h.Logger, "classes.update", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type sendFeedbackRequest struct {
	Feedback string `json:"feedback"`
}

// SendFeedback stores admin feedback on a class.
func (h *ClassHandler) SendFeedback(c *gin.Context) {
	var req sendFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	res, err := h.Svc.SetFeedback(c.Request.Context(), c.Param("id"), req.Feedback)
	if err != nil {
		storeFail(c, h.Logger, "classes.update", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type updateSeatsRequest struct {
	AvailableSeats int `json:"availableSeats"`
}

// UpdateSeats overwrites the available seat count on a class.
func (h *ClassHandler) UpdateSeats(c *gin.Context) {
	var req updateSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	res, err := h.Svc.SetAvailableSeats(c.Request.Context(), c.Param("id"), req.AvailableSeats)
	if err != nil {
		storeFail(c, h.Logger, "classes.update", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
