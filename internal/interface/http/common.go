package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// storeFail logs the error and surfaces the framework-level 500. Store and
// gateway failures are not translated into API error bodies; this mirrors
// how the API has always behaved.
func storeFail(c *gin.Context, logger *logrus.Logger, op string, err error) {
	if logger != nil {
		logger.WithError(err).WithField("op", op).Error("store operation failed")
	}
	c.AbortWithStatus(http.StatusInternalServerError)
}

// badPayload reports a JSON decode failure the way the HTTP layer always
// has: 400 with the error body shape.
func badPayload(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid payload", "details": details})
}
