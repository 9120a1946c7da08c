package services

import (
	"time"

	"medcare/datastore"
	"medcare/models"
)

// DashboardStats is the landing-page summary. Every figure is a straight
// reduction over its collection, recomputed per request.
type DashboardStats struct {
	TotalPatients     int     `json:"total_patients"`
	TodayAppointments int     `json:"today_appointments"`
	TotalRevenue      float64 `json:"total_revenue"`
	PendingBills      int     `json:"pending_bills"`
	LowStockItems     int     `json:"low_stock_items"`
}

type DashboardService struct {
	store *datastore.Store
	now   func() time.Time
}

func NewDashboardService(store *datastore.Store) *DashboardService {
	return &DashboardService{store: store, now: time.Now}
}

// NewDashboardServiceAt is NewDashboardService with an injectable clock.
func NewDashboardServiceAt(store *datastore.Store, now func() time.Time) *DashboardService {
	return &DashboardService{store: store, now: now}
}

// Stats computes the dashboard figures.
func (s *DashboardService) Stats() DashboardStats {
	stats := DashboardStats{
		TotalPatients: len(s.store.Patients()),
	}

	now := s.now()
	today := now.Format("2006-01-02")
	for _, a := range s.store.Appointments() {
		if a.Date == today {
			stats.TodayAppointments++
		}
	}
	// Pending is counted by effective status, so a bill past its due date
	// moves out of the pending figure here exactly as it does in the
	// billing summary.
	for _, b := range s.store.Bills() {
		stats.TotalRevenue += b.Total
		if models.EffectiveBillStatus(b, now) == models.BillPending {
			stats.PendingBills++
		}
	}
	for _, item := range s.store.Inventory() {
		if item.LowStock() {
			stats.LowStockItems++
		}
	}
	return stats
}
