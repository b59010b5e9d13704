package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/langcamp/language-camp-api/internal/interface/http"
	"github.com/langcamp/language-camp-api/internal/interface/middleware"
	"github.com/langcamp/language-camp-api/pkg/helpers"
)

// ClassModule wires the catalog, instructor, and moderation routes.
// Public: GET /classes, GET /classes/search, PUT /sendFeedback/:id
// (historically unprotected; see DESIGN.md).
// Protected: GET /allClasses, POST /addAClass, GET /myClasses/:email,
// PUT /updateAClass/:id, PUT /updateStatus/:id,
// PATCH /updateAvailableSeats/:id.
type ClassModule struct {
	Handler *handlers.ClassHandler
	JWT     *helpers.JWTManager
}

func NewClassModule(h *handlers.ClassHandler, jwt *helpers.JWTManager) *ClassModule {
	return &ClassModule{Handler: h, JWT: jwt}
}

func (m *ClassModule) Register(rg *gin.RouterGroup) {
	auth := middleware.Auth(m.JWT)

	rg.GET("/classes", m.Handler.Catalog)
	rg.GET("/classes/search", m.Handler.Search)
	rg.GET("/allClasses", auth, m.Handler.All)
	rg.POST("/addAClass", auth, m.Handler.Add)
	rg.GET("/myClasses/:email", auth, m.Handler.Mine)
	rg.PUT("/updateAClass/:id", auth, m.Handler.Update)
	rg.PUT("/updateStatus/:id", auth, m.Handler.UpdateStatus)
	rg.PUT("/sendFeedback/:id", m.Handler.SendFeedback)
	rg.PATCH("/updateAvailableSeats/:id", auth, m.Handler.UpdateSeats)
}
