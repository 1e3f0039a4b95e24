package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coderr-backend/internal/shared"
	"coderr-backend/pkg/jwt"
)

// PrincipalKey is the gin context key the resolved principal is stored under.
const PrincipalKey = "principal"

// Auth validates the bearer token and stores the resolved Principal in the
// request context. Handlers read it back via GetPrincipal.
func Auth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user ID in token"})
			return
		}

		role := shared.Role(claims.Role)
		if !role.IsValid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid role in token"})
			return
		}

		c.Set(PrincipalKey, shared.Principal{
			UserID:   userID,
			Username: claims.Username,
			Role:     role,
			Staff:    claims.Staff,
		})

		c.Next()
	}
}

// GetPrincipal returns the principal stored by Auth.
func GetPrincipal(c *gin.Context) (shared.Principal, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return shared.Principal{}, false
	}
	p, ok := v.(shared.Principal)
	return p, ok
}
