package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/langcamp/language-camp-api/internal/container"
	handlers "github.com/langcamp/language-camp-api/internal/interface/http"
	"github.com/langcamp/language-camp-api/internal/interface/middleware"
	"github.com/langcamp/language-camp-api/pkg/helpers"
)

// PaymentModule wires payment recording and Stripe intent creation.
// Public: POST /payments (historically unprotected; see DESIGN.md).
// Protected: POST /create-payment-intent (rate limited per caller).
type PaymentModule struct {
	Handler *handlers.PaymentHandler
	JWT     *helpers.JWTManager
}

func NewPaymentModule(h *handlers.PaymentHandler, jwt *helpers.JWTManager) *PaymentModule {
	return &PaymentModule{Handler: h, JWT: jwt}
}

func (m *PaymentModule) Register(rg *gin.RouterGroup) {
	auth := middleware.Auth(m.JWT)
	intentLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByEmail())

	rg.POST("/payments", m.Handler.Create)
	rg.POST("/create-payment-intent", auth, intentLimiter, m.Handler.CreateIntent)
}
