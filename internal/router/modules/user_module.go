package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/langcamp/language-camp-api/internal/interface/http"
	"github.com/langcamp/language-camp-api/internal/interface/middleware"
	"github.com/langcamp/language-camp-api/pkg/helpers"
)

// UserModule wires user storage and the role-dashboard checks.
// Public: POST /users, GET /users (unfiltered; see DESIGN.md).
// Protected: GET /users/admin/:email, GET /users/instructor/:email.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := middleware.Auth(m.JWT)

	rg.POST("/users", m.Handler.Create)
	rg.GET("/users", m.Handler.List)
	rg.GET("/users/admin/:email", auth, m.Handler.AdminFlag)
	rg.GET("/users/instructor/:email", auth, m.Handler.InstructorFlag)
}
