package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/langcamp/language-camp-api/internal/interface/http"
)

// InstructorModule wires the public instructors page.
type InstructorModule struct {
	Handler *handlers.InstructorHandler
}

func NewInstructorModule(h *handlers.InstructorHandler) *InstructorModule {
	return &InstructorModule{Handler: h}
}

func (m *InstructorModule) Register(rg *gin.RouterGroup) {
	rg.GET("/instructors", m.Handler.List)
}
