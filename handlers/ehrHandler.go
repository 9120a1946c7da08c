package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medcare/middlewares"
	"medcare/models"
	"medcare/services"
	"medcare/utils"
)

type EHRHandler struct {
	service *services.EHRService
}

func NewEHRHandler(service *services.EHRService) *EHRHandler {
	return &EHRHandler{service: service}
}

// GetAllRecords lists EHR entries filtered by ?search=, ?type= and
// ?patient_id=.
func (h *EHRHandler) GetAllRecords(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Query("search"), c.Query("type"), c.Query("patient_id")))
}

// CreateRecord appends an entry to a patient's clinical history. There is no
// update or delete: history is append-only.
func (h *EHRHandler) CreateRecord(c *gin.Context) {
	var record models.EHRRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateEHRRecord(record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Create(record)
	if err != nil {
		if unknownPatient(c, err) {
			return
		}
		middlewares.HttpError(c, "Failed to create record", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
