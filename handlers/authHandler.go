package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medcare/middlewares"
	"medcare/services"
	"medcare/session"
	"medcare/utils"
)

type AuthHandler struct {
	AuthService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{AuthService: authService}
}

// Login authenticates the credentials and opens a cookie-backed session.
// A failed lookup is a 401 with an inline message, recoverable by
// resubmission.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := utils.ValidateLogin(credentials.Email, credentials.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, sessionID, err := h.AuthService.Login(c.Request.Context(), credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	utils.SetSessionCookie(c, sessionID)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout destroys the session and clears the cookie. Logging out without a
// session is harmless.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := utils.SessionID(c); err == nil {
		h.AuthService.Logout(sessionID)
	}
	utils.ClearSessionCookie(c)
	c.Status(http.StatusOK)
}

// Me returns the identity bound to the current session.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := middlewares.CurrentUser(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
