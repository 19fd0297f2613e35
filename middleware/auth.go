package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pet-care-server/config"
	"pet-care-server/services"
)

// SessionAuth resolves the session cookie against the session store and
// puts the session on the request context. Requests without a valid,
// unexpired session are rejected.
func SessionAuth(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(config.AppConfig.Session.CookieName)
		if err != nil || sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Not logged in",
				"message": "Please log in to access this resource",
			})
			c.Abort()
			return
		}

		session, err := sessions.Resolve(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Not logged in",
				"message": "Session is invalid or expired",
			})
			c.Abort()
			return
		}

		c.Set("session", session)
		c.Set("user_id", session.UserID)
		c.Set("user_type", string(session.UserType))

		c.Next()
	}
}
