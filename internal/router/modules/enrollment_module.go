package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/langcamp/language-camp-api/internal/interface/http"
	"github.com/langcamp/language-camp-api/internal/interface/middleware"
	"github.com/langcamp/language-camp-api/pkg/helpers"
)

// EnrollmentModule wires the enrolled-classes routes.
// Public: GET /enrolledClasses (list-all, historically unprotected).
// Protected: POST /enrolledClasses, GET /enrolledClasses/:email.
type EnrollmentModule struct {
	Handler *handlers.EnrollmentHandler
	JWT     *helpers.JWTManager
}

func NewEnrollmentModule(h *handlers.EnrollmentHandler, jwt *helpers.JWTManager) *EnrollmentModule {
	return &EnrollmentModule{Handler: h, JWT: jwt}
}

func (m *EnrollmentModule) Register(rg *gin.RouterGroup) {
	auth := middleware.Auth(m.JWT)

	rg.POST("/enrolledClasses", auth, m.Handler.Create)
	rg.GET("/enrolledClasses", m.Handler.List)
	rg.GET("/enrolledClasses/:email", auth, m.Handler.ListByEmail)
}
