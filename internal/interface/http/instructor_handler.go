package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/langcamp/language-camp-api/internal/domain/repository"
)

type InstructorHandler struct {
	Repo   repository.InstructorRepository
	Logger *logrus.Logger
}

func NewInstructorHandler(repo repository.InstructorRepository, logger *logrus.Logger) *InstructorHandler {
	return &InstructorHandler{Repo: repo, Logger: logger}
}

// List returns the public instructors page data.
func (h *InstructorHandler) List(c *gin.Context) {
	instructors, err := h.Repo.All(c.Request.Context())
	if err != nil {
		storeFail(c, h.Logger, "instructors.find", err)
		return
	}
	c.JSON(http.StatusOK, instructors)
}
