package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ClinicaAdmin/session"
	"ClinicaAdmin/utils"
)

// SessionAuthMiddleware validates the console token and loads the stored
// session into the request context. The session is re-read from the store on
// every request so a logout elsewhere takes effect immediately.
func SessionAuthMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractSessionToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing session token"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session token"})
			c.Abort()
			return
		}

		sess, err := store.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			c.Abort()
			return
		}
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), sess))
		c.Next()
	}
}

// RoleAuthMiddleware restricts access to users with the specified role.
func RoleAuthMiddleware(requiredRoleID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := session.FromContext(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found in context"})
			c.Abort()
			return
		}

		if sess.User.RoleID != requiredRoleID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient privileges"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractSessionToken reads the console token from the Authorization header,
// falling back to the session cookie for browser clients.
func extractSessionToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(utils.SessionCookieName); err == nil {
		return cookie
	}
	return ""
}
