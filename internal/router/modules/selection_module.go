package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/langcamp/language-camp-api/internal/interface/http"
	"github.com/langcamp/language-camp-api/internal/interface/middleware"
	"github.com/langcamp/language-camp-api/pkg/helpers"
)

// SelectionModule wires the cart routes. All protected; the list route adds
// a self-match check inside the handler. /deleteSelectedClass/:id is the
// older alias of DELETE /selectedClasses/:id and both remain routable.
type SelectionModule struct {
	Handler *handlers.SelectionHandler
	JWT     *helpers.JWTManager
}

func NewSelectionModule(h *handlers.SelectionHandler, jwt *helpers.JWTManager) *SelectionModule {
	return &SelectionModule{Handler: h, JWT: jwt}
}

func (m *SelectionModule) Register(rg *gin.RouterGroup) {
	auth := middleware.Auth(m.JWT)

	rg.POST("/selectedClasses", auth, m.Handler.Create)
	rg.GET("/selectedClasses", auth, m.Handler.List)
	rg.DELETE("/selectedClasses/:id", auth, m.Handler.Delete)
	rg.DELETE("/deleteSelectedClass/:id", auth, m.Handler.Delete)
	rg.PATCH("/updateSelectedClasses/:id", auth, m.Handler.UpdateSeats)
}
