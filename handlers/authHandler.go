package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ClinicaAdmin/backend"
	"ClinicaAdmin/services"
	"ClinicaAdmin/session"
	"ClinicaAdmin/utils"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login authenticates against the clinical backend and returns the console
// session token along with the user info.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	sess, token, err := h.service.Login(c.Request.Context(), credentials.Username, credentials.Password)
	if err != nil {
		// Only a credential rejection from the backend becomes a 401; an
		// unreachable backend or other upstream failure keeps its own shape.
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 401 {
			c.JSON(401, gin.H{"error": "Invalid username or password"})
			return
		}
		respondBackendError(c, err)
		return
	}

	utils.SetSessionCookie(c, token)
	c.JSON(200, gin.H{
		"sessionToken": token,
		"user":         sess.User,
	})
}

// Logout removes the stored session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := session.FromContext(c.Request.Context())
	if ok {
		if err := h.service.Logout(c.Request.Context(), sess.ID); err != nil {
			c.JSON(500, gin.H{"error": "Failed to end session"})
			return
		}
	}
	utils.ClearSessionCookie(c)
	c.Status(200)
}

// LogoutAll revokes every active session. Admin-only; the caller is logged
// out along with everyone else.
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	if err := h.service.LogoutAll(c.Request.Context()); err != nil {
		c.JSON(500, gin.H{"error": "Failed to revoke sessions"})
		return
	}
	utils.ClearSessionCookie(c)
	c.JSON(200, gin.H{"message": "All sessions revoked"})
}
