package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medcare/middlewares"
	"medcare/models"
	"medcare/services"
	"medcare/utils"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// GetAllAppointments lists appointments. ?date= returns the calendar view
// for a single day; otherwise ?search= and ?status= filter the listing.
func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		c.JSON(http.StatusOK, h.service.ForDate(date))
		return
	}
	c.JSON(http.StatusOK, h.service.List(c.Query("search"), c.Query("status")))
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateAppointment(appt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Book(appt)
	if err != nil {
		if unknownPatient(c, err) {
			return
		}
		middlewares.HttpError(c, "Failed to book appointment", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var upd models.AppointmentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.service.Update(c.Param("appointment_id"), upd)
	c.Status(http.StatusOK)
}

// UpdateAppointmentStatus is the status-only transition endpoint.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStatus(body.Status,
		models.AppointmentScheduled, models.AppointmentCompleted,
		models.AppointmentCancelled, models.AppointmentNoShow); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.service.UpdateStatus(c.Param("appointment_id"), body.Status)
	c.Status(http.StatusOK)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	h.service.Delete(c.Param("appointment_id"))
	c.Status(http.StatusNoContent)
}
