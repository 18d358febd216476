package middleware

import (
	"strings"

	"taskpulse/services"
	"taskpulse/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a Bearer access token. On success the context
// carries user_id, username, token_id and token_expires. blacklist may be nil.
func AuthMiddleware(tokens *services.TokenService, blacklist *services.RedisTokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.TrackAuthAttempt("failure", "missing_token")
			utils.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		claims, err := tokens.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.TrackAuthAttempt("failure", "invalid_token")
			utils.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		if blacklist.IsBlacklisted(c.Request.Context(), claims.ID) {
			utils.TrackAuthAttempt("failure", "blacklisted_token")
			utils.Unauthorized(c, "Token has been invalidated")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("token_id", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("token_expires", claims.ExpiresAt.Time)
		}

		c.Next()
	}
}
