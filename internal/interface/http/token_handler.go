package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/langcamp/language-camp-api/pkg/helpers"
	"github.com/langcamp/language-camp-api/pkg/validation"
)

type TokenHandler struct {
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewTokenHandler(jwt *helpers.JWTManager, logger *logrus.Logger) *TokenHandler {
	return &TokenHandler{JWT: jwt, Logger: logger}
}

// Issue signs whatever JSON object the client sends as the token claim set.
// The frontend sends the signed-in user's identity; nothing stops other
// payloads (see DESIGN.md hardening note).
func (h *TokenHandler) Issue(c *gin.Context) {
	payload := map[string]any{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	token, _, err := h.JWT.Issue(payload)
	if err != nil {
		storeFail(c, h.Logger, "jwt.issue", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
