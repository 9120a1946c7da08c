package reports

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"medcare/models"
)

func fontAvailable() bool {
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}

func sampleBill() models.Bill {
	return models.Bill{
		ID:          "1",
		PatientID:   "1",
		PatientName: "John Smith",
		Date:        "2024-01-20",
		Items: []models.BillItem{
			{Description: "Consultation Fee", Quantity: 1, UnitPrice: 150.00, Total: 150.00},
			{Description: "Blood Pressure Test", Quantity: 1, UnitPrice: 25.00, Total: 25.00},
		},
		Subtotal: 175.00,
		Tax:      17.50,
		Total:    192.50,
		Status:   models.BillPending,
		DueDate:  "2024-02-20",
	}
}

func TestInvoiceRendersPDF(t *testing.T) {
	if !fontAvailable() {
		t.Skip("no DejaVu TTF installed")
	}

	pdf, err := Invoice(sampleBill())
	assert.NoError(t, err)
	assert.NotEmpty(t, pdf)
	// Standard PDF magic bytes.
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestInvoiceFailsWithoutFont(t *testing.T) {
	if fontAvailable() {
		t.Skip("DejaVu TTF installed")
	}

	_, err := Invoice(sampleBill())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load font")
}
