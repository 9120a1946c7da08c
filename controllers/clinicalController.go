package controllers

import (
	"github.com/gin-gonic/gin"

	"medcare/handlers"
	"medcare/middlewares"
	"medcare/models"
	"medcare/services"
)

// SetupClinicalRoutes registers the session-guarded clinical and
// operational routes: patients, appointments, EHR, inventory, billing and
// the dashboard.
func SetupClinicalRoutes(
	router *gin.Engine,
	auth *services.AuthService,
	patientHandler *handlers.PatientHandler,
	appointmentHandler *handlers.AppointmentHandler,
	ehrHandler *handlers.EHRHandler,
	inventoryHandler *handlers.InventoryHandler,
	billingHandler *handlers.BillingHandler,
	dashboardHandler *handlers.DashboardHandler,
	adminHandler *handlers.AdminHandler,
) {
	api := router.Group("/api").Use(middlewares.SessionAuthMiddleware(auth))
	{
		api.GET("/patients", patientHandler.GetAllPatients)
		api.POST("/patients", patientHandler.CreatePatient)
		api.GET("/patients/:patient_id", patientHandler.GetPatientByID)
		api.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
		api.DELETE("/patients/:patient_id", patientHandler.DeletePatient)
		api.DELETE("/patients/:patient_id/related", patientHandler.DeletePatientAndRelated)

		api.GET("/appointments", appointmentHandler.GetAllAppointments)
		api.POST("/appointments", appointmentHandler.CreateAppointment)
		api.PUT("/appointments/:appointment_id", appointmentHandler.UpdateAppointment)
		api.PATCH("/appointments/:appointment_id/status", appointmentHandler.UpdateAppointmentStatus)
		api.DELETE("/appointments/:appointment_id", appointmentHandler.DeleteAppointment)

		api.GET("/ehr", ehrHandler.GetAllRecords)
		api.POST("/ehr", ehrHandler.CreateRecord)

		api.GET("/inventory", inventoryHandler.GetAllItems)
		api.POST("/inventory", inventoryHandler.CreateItem)
		api.GET("/inventory/summary", inventoryHandler.GetSummary)
		api.PUT("/inventory/:item_id", inventoryHandler.UpdateItem)

		api.GET("/billing", billingHandler.GetAllBills)
		api.POST("/billing", billingHandler.CreateBill)
		api.GET("/billing/summary", billingHandler.GetSummary)
		api.GET("/billing/:bill_id", billingHandler.GetBillByID)
		api.PATCH("/billing/:bill_id/status", billingHandler.UpdateBillStatus)
		api.GET("/billing/:bill_id/invoice", billingHandler.GetInvoice)

		api.GET("/dashboard/stats", dashboardHandler.GetStats)
	}

	adminGroup := router.Group("/api/admin").Use(
		middlewares.SessionAuthMiddleware(auth),
		middlewares.RoleAuthMiddleware(models.RoleAdmin),
	)
	{
		adminGroup.POST("/reset", adminHandler.ResetData)
	}
}
