// README: Bearer-token auth middleware backed by infra.TokenVerifier.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripbrief/internal/infra"
)

const callerKey = "caller"

// Auth rejects requests without a valid "Authorization: Bearer <token>" header.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		caller, err := verifier.VerifyIDToken(c.Request.Context(), strings.TrimSpace(token))
		if err != nil || caller == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

// CallerUID returns the UID stored by Auth, or "" on unauthenticated routes.
func CallerUID(c *gin.Context) string {
	v, ok := c.Get(callerKey)
	if !ok {
		return ""
	}
	caller, _ := v.(*infra.Caller)
	if caller == nil {
		return ""
	}
	return caller.UID
}
