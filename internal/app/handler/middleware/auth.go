package middleware

import (
	"net/http"
	"strings"

	"boatyard/internal/app/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware проверяет JWT и допустимые scope. Пустой ключ - API открыт.
func AuthMiddleware(jwtKey string, allowedScopes ...string) gin.HandlerFunc {
	key := []byte(jwtKey)
	return func(c *gin.Context) {
		if len(key) == 0 {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header"})
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			return
		}

		claims, err := utils.ParseJWT(key, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// сохраняем данные в контекст Gin
		c.Set("subject", claims.Subject)
		c.Set("scope", claims.Scope)

		if len(allowedScopes) > 0 {
			allowed := false
			for _, s := range allowedScopes {
				if s == claims.Scope {
					allowed = true
					break
				}
			}
			if !allowed {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied for scope: " + claims.Scope})
				return
			}
		}

		c.Next()
	}
}
