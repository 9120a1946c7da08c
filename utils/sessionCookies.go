package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName carries the opaque session id. The session itself
	// lives only in process memory, so the cookie outliving a restart is
	// harmless: the id simply no longer resolves.
	SessionCookieName = "sessionId"
	SessionExpiry     = 24 * time.Hour
)

// SetSessionCookie attaches the session id to the response as an HTTP-only
// cookie.
func SetSessionCookie(c *gin.Context, sessionID string) {
	secure := gin.Mode() != gin.DebugMode // toggle for local dev
	c.SetCookie(SessionCookieName, sessionID, int(SessionExpiry.Seconds()), "/", "", secure, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context) {
	secure := gin.Mode() != gin.DebugMode
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}

// SessionID reads the session id from the request cookie.
func SessionID(c *gin.Context) (string, error) {
	return c.Cookie(SessionCookieName)
}
