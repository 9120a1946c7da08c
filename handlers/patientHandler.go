package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medcare/models"
	"medcare/services"
	"medcare/utils"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// GetAllPatients lists patients, optionally filtered by ?search= over name,
// email and phone.
func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Query("search")))
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	patient, err := h.service.GetByID(c.Param("patient_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidatePatient(patient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.service.Create(patient))
}

// UpdatePatient merges the supplied fields into the record. Updating an
// unknown id is a silent no-op.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var upd models.PatientUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.service.Update(c.Param("patient_id"), upd)
	c.Status(http.StatusOK)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	h.service.Delete(c.Param("patient_id"))
	c.Status(http.StatusNoContent)
}

// DeletePatientAndRelated removes the patient and all records referencing
// it. The plain delete deliberately leaves related records behind.
func (h *PatientHandler) DeletePatientAndRelated(c *gin.Context) {
	h.service.DeleteWithRelated(c.Param("patient_id"))
	c.Status(http.StatusNoContent)
}

// unknownPatient maps a reference failure to its HTTP shape.
func unknownPatient(c *gin.Context, err error) bool {
	if errors.Is(err, services.ErrUnknownPatient) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown patient"})
		return true
	}
	return false
}
