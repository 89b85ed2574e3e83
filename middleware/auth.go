package middleware

import (
	"net/http"
	"strings"

	"hirafic/models"
	"hirafic/utils"

	"github.com/gin-gonic/gin"
)

// PrincipalKey is the gin context key holding the resolved principal.
const PrincipalKey = "principal"

// AuthRequired is the session gate. It resolves the bearer token to a
// live principal or rejects the request with 401. Validation consults
// only the token's self-contained claims (identity, role, expiry);
// there is no server-side session store. A 401 from any endpoint is the
// uniform force-logout signal for the UI.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		claims, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
				"code":  0,
			})
			return
		}

		c.Set(PrincipalKey, models.Principal{
			ID:       claims.UserID,
			Role:     claims.Role,
			Username: claims.Username,
		})
		c.Next()
	}
}

// GetPrincipal returns the principal resolved by AuthRequired.
func GetPrincipal(c *gin.Context) (models.Principal, bool) {
	val, exists := c.Get(PrincipalKey)
	if !exists {
		return models.Principal{}, false
	}
	principal, ok := val.(models.Principal)
	return principal, ok
}
