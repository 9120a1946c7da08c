package controllers

import (
	"github.com/gin-gonic/gin"

	"medcare/handlers"
	"medcare/middlewares"
	"medcare/services"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler.
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{Handler: authHandler}
}

// RegisterRoutes initializes the authentication routes. Login is the only
// unauthenticated entry point; everything else requires a live session.
func (ac *AuthController) RegisterRoutes(router *gin.Engine, auth *services.AuthService) {
	router.POST("/api/auth/login", ac.Handler.Login)
	router.POST("/api/auth/logout", ac.Handler.Logout)

	authGroup := router.Group("/api/auth").Use(middlewares.SessionAuthMiddleware(auth))
	{
		authGroup.GET("/me", ac.Handler.Me)
	}
}
