package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medcare/middlewares"
	"medcare/models"
	"medcare/services"
	"medcare/utils"
)

type InventoryHandler struct {
	service *services.InventoryService
}

func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// GetAllItems lists inventory filtered by ?search=, ?category= and
// ?low_stock=true.
func (h *InventoryHandler) GetAllItems(c *gin.Context) {
	lowStockOnly := c.Query("low_stock") == "true"
	c.JSON(http.StatusOK, h.service.List(c.Query("search"), c.Query("category"), lowStockOnly))
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateInventoryItem(item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.service.Create(item))
}

// UpdateItem merges the supplied fields. Updating an unknown id is a silent
// no-op.
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	var upd models.InventoryItemUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.service.Update(c.Param("item_id"), upd)
	c.Status(http.StatusOK)
}

// GetSummary returns the recomputed stock aggregates.
func (h *InventoryHandler) GetSummary(c *gin.Context) {
	middlewares.RespondJSON(c, h.service.Summary(), http.StatusOK)
}
