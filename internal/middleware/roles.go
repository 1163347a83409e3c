package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAccountType bloqueia a rota para quem não tem um dos perfis
// exigidos. Roda depois do AuthMiddleware.
func RequireAccountType(types ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountType, _ := c.Get(ContextAccountType)

		for _, t := range types {
			if accountType == t {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden_account_type"})
	}
}
