package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/langcamp/language-camp-api/internal/application"
	"github.com/langcamp/language-camp-api/internal/domain/entity"
	"github.com/langcamp/language-camp-api/internal/domain/repository"
	"github.com/langcamp/language-camp-api/pkg/validation"
)

type PaymentHandler struct {
	Repo   repository.PaymentRepository
	Svc    *application.PaymentService
	Logger *logrus.Logger
}

func NewPaymentHandler(repo repository.PaymentRepository, svc *application.PaymentService, logger *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{Repo: repo, Svc: svc, Logger: logger}
}

// Create appends a payment audit record.
func (h *PaymentHandler) Create(c *gin.Context) {
	var p entity.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	res, err := h.Repo.Insert(c.Request.Context(), &p)
	if err != nil {
		storeFail(c, h.Logger, "payments.insert", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type createIntentRequest struct {
	Price float64 `json:"price"`
}

// CreateIntent asks Stripe for a card payment intent over the given price
// and hands the client secret back to the frontend.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	secret, err := h.Svc.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		storeFail(c, h.Logger, "payments.intent", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
