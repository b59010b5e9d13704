package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/langcamp/language-camp-api/internal/application"
	"github.com/langcamp/language-camp-api/internal/domain/entity"
	"github.com/langcamp/language-camp-api/internal/domain/repository"
	"github.com/langcamp/language-camp-api/internal/interface/middleware"
	"github.com/langcamp/language-camp-api/pkg/validation"
)

type UserHandler struct {
	Repo    repository.UserRepository
	Checker *application.RoleChecker
	Logger  *logrus.Logger
}

func NewUserHandler(repo repository.UserRepository, checker *application.RoleChecker, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Repo: repo, Checker: checker, Logger: logger}
}

// Create stores a user document on first sign-in.
func (h *UserHandler) Create(c *gin.Context) {
	var u entity.User
	if err := c.ShouldBindJSON(&u); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	res, err := h.Repo.Insert(c.Request.Context(), &u)
	if err != nil {
		storeFail(c, h.Logger, "users.insert", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// List returns every user, unfiltered. Flagged in DESIGN.md.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Repo.All(c.Request.Context())
	if err != nil {
		storeFail(c, h.Logger, "users.find", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// AdminFlag resolves the admin dashboard flag for the caller. A token email
// that does not match the path email yields the negative flag, not an error.
func (h *UserHandler) AdminFlag(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.TokenEmail(c) {
		c.JSON(http.StatusOK, gin.H{"isAdmin": false})
		return
	}
	ok, err := h.Checker.IsAdmin(c.Request.Context(), email)
	if err != nil {
		storeFail(c, h.Logger, "users.role", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": ok})
}

// InstructorFlag resolves the instructor dashboard flag for the caller.
func (h *UserHandler) InstructorFlag(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.TokenEmail(c) {
		c.JSON(http.StatusOK, gin.H{"isInstructor": false})
		return
	}
	ok, err := h.Checker.IsInstructor(c.Request.Context(), email)
	if err != nil {
		storeFail(c, h.Logger, "users.role", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isInstructor": ok})
}
