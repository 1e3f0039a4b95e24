package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Staff rejects requests whose principal does not hold the administrative
// role. Must run after Auth.
func Staff() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok || !principal.IsStaff() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "not permitted",
			})
			return
		}
		c.Next()
	}
}
