package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the rejection shape the API has always emitted:
// {"error": true, "message": "..."}. Success paths return the raw store
// result or matched documents with no envelope.
type ErrorBody struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// Fail writes the error body with the given status.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: true, Message: message})
}

// AbortFail writes the error body and stops the handler chain.
func AbortFail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: true, Message: message})
}
