package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/langcamp/language-camp-api/internal/domain/entity"
	"github.com/langcamp/language-camp-api/internal/domain/repository"
	"github.com/langcamp/language-camp-api/pkg/validation"
)

type EnrollmentHandler struct {
	Repo   repository.EnrollmentRepository
	Logger *logrus.Logger
}

func NewEnrollmentHandler(repo repository.EnrollmentRepository, logger *logrus.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{Repo: repo, Logger: logger}
}

// Create appends an enrollment record after a completed payment. Removing
// the matching cart entry is a separate, non-atomic call.
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var e entity.EnrolledClass
	if err := c.ShouldBindJSON(&e); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	res, err := h.Repo.Insert(c.Request.Context(), &e)
	if err != nil {
		storeFail(c, h.Logger, "enrollments.insert", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// List returns every enrollment. Unprotected; flagged in DESIGN.md.
func (h *EnrollmentHandler) List(c *gin.Context) {
	enrollments, err := h.Repo.All(c.Request.Context())
	if err != nil {
		storeFail(c, h.Logger, "enrollments.find", err)
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

// ListByEmail returns one student's enrollments.
func (h *EnrollmentHandler) ListByEmail(c *gin.Context) {
	enrollments, err := h.Repo.ByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		storeFail(c, h.Logger, "enrollments.find", err)
		return
	}
	c.JSON(http.StatusOK, enrollments)
}
