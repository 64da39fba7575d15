package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"aura-ugc-engine/internal/shared/response"
	"aura-ugc-engine/pkg/jwt"
)

// Auth guards the moderation surface. Requests must carry a Bearer token
// issued by the login endpoint; claims are stashed on the context so
// handlers can attribute decisions to a moderator.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("moderator_id", claims.ModeratorID)
		c.Set("moderator_email", claims.Email)
		c.Next()
	}
}
