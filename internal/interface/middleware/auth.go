package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/langcamp/language-camp-api/pkg/helpers"
	"github.com/langcamp/language-camp-api/pkg/response"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxClaimsKey = "claims"
	CtxEmailKey  = "userEmail"
)

const unauthorizedMessage = "You are not authorized"

// Auth is the gate in front of every protected route. It takes the bearer
// token as the second whitespace-separated field of the Authorization header
// (no scheme validation, matching the public API's historical behavior),
// verifies it, and exposes the decoded claims in the Gin context.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortFail(c, http.StatusUnauthorized, unauthorizedMessage)
			return
		}
		fields := strings.Fields(header)
		if len(fields) < 2 {
			response.AbortFail(c, http.StatusUnauthorized, unauthorizedMessage)
			return
		}
		claims, err := jwt.Verify(fields[1])
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, unauthorizedMessage)
			return
		}
		c.Set(CtxClaimsKey, claims)
		c.Set(CtxEmailKey, helpers.EmailClaim(claims))
		c.Next()
	}
}

// TokenEmail returns the email claim of the verified credential, or "" when
// the route was not guarded.
func TokenEmail(c *gin.Context) string {
	return c.GetString(CtxEmailKey)
}
