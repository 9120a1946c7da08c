package services

import (
	"strings"
	"time"

	"medcare/datastore"
	"medcare/models"
)

// TaxRate is the flat rate applied to every bill at creation time.
const TaxRate = 0.10

// BillingSummary aggregates over all bills, recomputed on every call.
// Pending bills whose due date has passed count toward the overdue amount,
// not the pending one, matching the display-state derivation.
type BillingSummary struct {
	PaidRevenue   float64 `json:"paid_revenue"`
	PendingAmount float64 `json:"pending_amount"`
	OverdueAmount float64 `json:"overdue_amount"`
}

type BillingService struct {
	store *datastore.Store
	now   func() time.Time
}

func NewBillingService(store *datastore.Store) *BillingService {
	return &BillingService{store: store, now: time.Now}
}

// NewBillingServiceAt is NewBillingService with an injectable clock.
func NewBillingServiceAt(store *datastore.Store, now func() time.Time) *BillingService {
	return &BillingService{store: store, now: now}
}

// ComputeTotals fills in per-line totals, the subtotal, the 10% tax and the
// grand total. Called once when a bill is created; totals are never
// recomputed afterwards, even if the stored items were to change.
func ComputeTotals(b *models.Bill) {
	var subtotal float64
	for i := range b.Items {
		b.Items[i].Total = float64(b.Items[i].Quantity) * b.Items[i].UnitPrice
		subtotal += b.Items[i].Total
	}
	b.Subtotal = subtotal
	b.Tax = subtotal * TaxRate
	b.Total = subtotal + b.Tax
}

// IsOverdue reports the derived overdue display state: a pending bill whose
// due date lies in the past.
func (s *BillingService) IsOverdue(b models.Bill) bool {
	return models.EffectiveBillStatus(b, s.now()) == models.BillOverdue && b.Status == models.BillPending
}

// EffectiveStatus is the status shown to the user; see
// models.EffectiveBillStatus.
func (s *BillingService) EffectiveStatus(b models.Bill) string {
	return models.EffectiveBillStatus(b, s.now())
}

// List returns bills filtered by search term (patient name or bill id) and
// status. Filtering by "overdue" matches the effective status, so pending
// bills past their due date are included.
func (s *BillingService) List(search, status string) []models.Bill {
	term := strings.ToLower(search)
	bills := s.store.Bills()
	matched := make([]models.Bill, 0, len(bills))
	for _, b := range bills {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(b.PatientName), term) ||
			strings.Contains(strings.ToLower(b.ID), term)
		matchesStatus := status == "" || status == "all" || s.EffectiveStatus(b) == status
		if matchesSearch && matchesStatus {
			matched = append(matched, b)
		}
	}
	return matched
}

func (s *BillingService) GetByID(id string) (models.Bill, bool) {
	return s.store.BillByID(id)
}

// Create computes the totals, snapshots the patient name and stores the
// bill. Billing an unknown patient id does not mutate state.
func (s *BillingService) Create(b models.Bill) (models.Bill, error) {
	patient, ok := s.store.PatientByID(b.PatientID)
	if !ok {
		return models.Bill{}, ErrUnknownPatient
	}
	b.PatientName = patient.Name
	ComputeTotals(&b)
	if b.Status == "" {
		b.Status = models.BillPending
	}
	if b.Date == "" {
		b.Date = s.now().Format("2006-01-02")
	}
	return s.store.AddBill(b), nil
}

func (s *BillingService) UpdateStatus(id, status string) {
	s.store.UpdateBillStatus(id, status)
}

// Summary recomputes revenue aggregates grouped by effective status.
func (s *BillingService) Summary() BillingSummary {
	var summary BillingSummary
	for _, b := range s.store.Bills() {
		switch s.EffectiveStatus(b) {
		case models.BillPaid:
			summary.PaidRevenue += b.Total
		case models.BillPending:
			summary.PendingAmount += b.Total
		case models.BillOverdue:
			summary.OverdueAmount += b.Total
		}
	}
	return summary
}
