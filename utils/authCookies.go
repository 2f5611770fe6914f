package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName carries the console session token for browser clients
// that do not manage the Authorization header themselves.
const SessionCookieName = "sessionToken"

func SetSessionCookie(c *gin.Context, token string) {
	setCookie(c, SessionCookieName, token, SessionTokenExpiry)
}

func setCookie(c *gin.Context, name, value string, expiry time.Duration) {
	secure := true
	if gin.Mode() == gin.DebugMode { // Toggle for local dev
		secure = false
	}
	c.SetCookie(name, value, int(expiry.Seconds()), "/", "", secure, true)
}

func ClearSessionCookie(c *gin.Context) {
	secure := true
	if gin.Mode() == gin.DebugMode { // Toggle for local dev
		secure = false
	}
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
