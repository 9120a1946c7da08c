package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medcare/datastore"
	"medcare/middlewares"
	"medcare/services"
)

type DashboardHandler struct {
	service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetStats returns the landing-page figures.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	middlewares.RespondJSON(c, h.service.Stats(), http.StatusOK)
}

// AdminHandler exposes operations restricted to the admin role.
type AdminHandler struct {
	store *datastore.Store
}

func NewAdminHandler(store *datastore.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// ResetData restores all collections to their seed values, the server-side
// equivalent of reloading the page.
func (h *AdminHandler) ResetData(c *gin.Context) {
	h.store.Reset()
	c.JSON(http.StatusOK, gin.H{"message": "Data reset to seed state"})
}
