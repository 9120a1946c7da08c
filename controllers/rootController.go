package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// rootHandler answers liveness probes on the root path.
func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "medcare", "status": "ok"})
}

// SetupRootRoute sets up the root route for the application.
func SetupRootRoute(router *gin.Engine) {
	router.GET("/", rootHandler)
}
