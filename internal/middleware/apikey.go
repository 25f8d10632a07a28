package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowhub/salon-scheduler/internal/config"
)

// APIKeyMiddleware protege a API pública de integração com uma chave
// compartilhada estática no header x-api-key.
func APIKeyMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.PublicAPIKey == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "api_key_not_configured"})
			return
		}

		provided := c.GetHeader("x-api-key")
		if provided == "" ||
			subtle.ConstantTimeCompare([]byte(provided), []byte(cfg.PublicAPIKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_api_key"})
			return
		}

		c.Next()
	}
}
