package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"medcare/middlewares"
	"medcare/models"
	"medcare/reports"
	"medcare/services"
	"medcare/utils"
)

type BillingHandler struct {
	service *services.BillingService
}

func NewBillingHandler(service *services.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

// GetAllBills lists bills filtered by ?search= and ?status=. Filtering by
// overdue also matches pending bills past their due date.
func (h *BillingHandler) GetAllBills(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Query("search"), c.Query("status")))
}

func (h *BillingHandler) GetBillByID(c *gin.Context) {
	bill, ok := h.service.GetByID(c.Param("bill_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		return
	}
	c.JSON(http.StatusOK, bill)
}

// CreateBill computes the totals server-side; any totals in the payload are
// ignored.
func (h *BillingHandler) CreateBill(c *gin.Context) {
	var bill models.Bill
	if err := c.ShouldBindJSON(&bill); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateBill(bill); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Create(bill)
	if err != nil {
		if unknownPatient(c, err) {
			return
		}
		middlewares.HttpError(c, "Failed to create bill", http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateBillStatus is the status-only transition endpoint.
func (h *BillingHandler) UpdateBillStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStatus(body.Status,
		models.BillPending, models.BillPaid, models.BillOverdue); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.service.UpdateStatus(c.Param("bill_id"), body.Status)
	c.Status(http.StatusOK)
}

// GetSummary returns the recomputed revenue aggregates.
func (h *BillingHandler) GetSummary(c *gin.Context) {
	middlewares.RespondJSON(c, h.service.Summary(), http.StatusOK)
}

// GetInvoice renders the bill as a downloadable PDF.
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	bill, ok := h.service.GetByID(c.Param("bill_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		return
	}

	pdf, err := reports.Invoice(bill)
	if err != nil {
		middlewares.HttpError(c, "Failed to render invoice", http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", bill.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
