package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates an endpoint on the principal's role. It must run
// after AuthRequired. A valid credential with the wrong role is 403,
// never 401, so the UI does not force a logout for it.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		if principal.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "User is not a " + role,
			})
			return
		}
		c.Next()
	}
}
