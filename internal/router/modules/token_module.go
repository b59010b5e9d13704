package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/langcamp/language-camp-api/internal/container"
	handlers "github.com/langcamp/language-camp-api/internal/interface/http"
	"github.com/langcamp/language-camp-api/internal/interface/middleware"
)

// TokenModule wires credential issuance.
// Public: POST /jwt (rate limited per IP).
type TokenModule struct {
	Handler *handlers.TokenHandler
}

func NewTokenModule(h *handlers.TokenHandler) *TokenModule {
	return &TokenModule{Handler: h}
}

func (m *TokenModule) Register(rg *gin.RouterGroup) {
	issueLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP())
	rg.POST("/jwt", issueLimiter, m.Handler.Issue)
}
