package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"medcare/datastore"
	"medcare/models"
)

func billingAt(t time.Time) (*BillingService, *datastore.Store) {
	store := datastore.New()
	return NewBillingServiceAt(store, func() time.Time { return t }), store
}

func TestComputeTotalsAppliesTenPercentTax(t *testing.T) {
	bill := models.Bill{
		Items: []models.BillItem{
			{Description: "Consultation Fee", Quantity: 1, UnitPrice: 150.00},
			{Description: "Blood Pressure Test", Quantity: 1, UnitPrice: 25.00},
			{Description: "Prescription", Quantity: 1, UnitPrice: 30.00},
		},
	}

	ComputeTotals(&bill)

	assert.InDelta(t, 205.00, bill.Subtotal, 1e-9)
	assert.InDelta(t, 20.50, bill.Tax, 1e-9)
	assert.InDelta(t, 225.50, bill.Total, 1e-9)
	assert.InDelta(t, 150.00, bill.Items[0].Total, 1e-9)
}

func TestComputeTotalsMultipliesQuantity(t *testing.T) {
	bill := models.Bill{
		Items: []models.BillItem{{Description: "Gauze", Quantity: 3, UnitPrice: 4.50}},
	}

	ComputeTotals(&bill)

	assert.InDelta(t, 13.50, bill.Subtotal, 1e-9)
	assert.InDelta(t, 1.35, bill.Tax, 1e-9)
	assert.InDelta(t, 14.85, bill.Total, 1e-9)
}

func TestCreateSnapshotsPatientNameAndDefaults(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	svc, store := billingAt(now)

	created, err := svc.Create(models.Bill{
		PatientID: "1",
		Items:     []models.BillItem{{Description: "X-Ray", Quantity: 1, UnitPrice: 80}},
		DueDate:   "2024-03-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, "John Smith", created.PatientName)
	assert.Equal(t, models.BillPending, created.Status)
	assert.Equal(t, "2024-02-01", created.Date)

	// Totals are stored, not recomputed on read.
	stored, ok := store.BillByID(created.ID)
	assert.True(t, ok)
	assert.InDelta(t, 88.0, stored.Total, 1e-9)
}

func TestCreateUnknownPatientDoesNotMutate(t *testing.T) {
	svc, store := billingAt(time.Now())
	before := store.Bills()

	_, err := svc.Create(models.Bill{PatientID: "999", Items: []models.BillItem{{Quantity: 1, UnitPrice: 10}}})
	assert.ErrorIs(t, err, ErrUnknownPatient)
	assert.Equal(t, before, store.Bills())
}

func TestIsOverdueDerivedFromDueDateAndStatus(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	svc, _ := billingAt(now)

	pendingPast := models.Bill{Status: models.BillPending, DueDate: "2024-02-20"}
	pendingFuture := models.Bill{Status: models.BillPending, DueDate: "2024-04-01"}
	paidPast := models.Bill{Status: models.BillPaid, DueDate: "2024-02-20"}

	assert.True(t, svc.IsOverdue(pendingPast))
	assert.False(t, svc.IsOverdue(pendingFuture))
	assert.False(t, svc.IsOverdue(paidPast))

	assert.Equal(t, models.BillOverdue, svc.EffectiveStatus(pendingPast))
	assert.Equal(t, models.BillPending, svc.EffectiveStatus(pendingFuture))
	assert.Equal(t, models.BillPaid, svc.EffectiveStatus(paidPast))
}

func TestListOverdueFilterMatchesDerivedState(t *testing.T) {
	// The seed bill is pending with due date 2024-02-20; viewed from March
	// it displays as overdue though its stored status is still pending.
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	svc, store := billingAt(now)

	overdue := svc.List("", models.BillOverdue)
	assert.Len(t, overdue, 1)
	assert.Equal(t, "1", overdue[0].ID)
	assert.Equal(t, models.BillPending, overdue[0].Status)

	// The stored field is untouched by the derivation.
	stored, _ := store.BillByID("1")
	assert.Equal(t, models.BillPending, stored.Status)

	// Filtering by pending no longer matches it.
	assert.Empty(t, svc.List("", models.BillPending))
}

func TestListSearchMatchesPatientNameAndID(t *testing.T) {
	now := time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)
	svc, _ := billingAt(now)

	assert.Len(t, svc.List("john", ""), 1)
	assert.Len(t, svc.List("1", ""), 1)
	assert.Empty(t, svc.List("zzz", ""))
}

func TestSummaryGroupsByEffectiveStatus(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	svc, store := billingAt(now)

	paid, err := svc.Create(models.Bill{
		PatientID: "2",
		Items:     []models.BillItem{{Description: "Checkup", Quantity: 1, UnitPrice: 100}},
		DueDate:   "2024-04-01",
	})
	assert.NoError(t, err)
	store.UpdateBillStatus(paid.ID, models.BillPaid)

	_, err = svc.Create(models.Bill{
		PatientID: "2",
		Items:     []models.BillItem{{Description: "Labs", Quantity: 1, UnitPrice: 50}},
		DueDate:   "2024-04-01",
	})
	assert.NoError(t, err)

	summary := svc.Summary()
	assert.InDelta(t, 110.0, summary.PaidRevenue, 1e-9)    // 100 + 10% tax
	assert.InDelta(t, 55.0, summary.PendingAmount, 1e-9)   // 50 + 10% tax
	assert.InDelta(t, 225.50, summary.OverdueAmount, 1e-9) // seed bill past due
}
