// Package reports renders printable documents from billing data.
package reports

import (
	"fmt"

	"github.com/signintech/gopdf"

	"medcare/models"
)

// Common font locations across the deployment images.
var fontPaths = []string{
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// Invoice renders a bill as a PDF and returns the raw bytes.
func Invoice(b models.Bill) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, fmt.Errorf("failed to load font for PDF, ensure ttf-dejavu is installed: %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "MedCare Hospital — Invoice")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Invoice #%s", b.ID))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Patient: %s (ID %s)", b.PatientName, b.PatientID))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Date: %s    Due: %s    Status: %s", b.Date, b.DueDate, b.Status))
	pdf.Br(25)

	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Items:")
	pdf.Br(18)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return nil, err
	}
	for _, item := range b.Items {
		pdf.Cell(nil, fmt.Sprintf("%s — %d × $%.2f = $%.2f",
			item.Description, item.Quantity, item.UnitPrice, item.Total))
		pdf.Br(15)
	}
	pdf.Br(10)

	pdf.Cell(nil, fmt.Sprintf("Subtotal: $%.2f", b.Subtotal))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Tax (10%%): $%.2f", b.Tax))
	pdf.Br(15)
	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Total: $%.2f", b.Total))

	return pdf.GetBytesPdf(), nil
}
