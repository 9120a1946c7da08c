package services

import (
	"strings"

	"medcare/datastore"
	"medcare/models"
)

// InventorySummary aggregates over the whole inventory, recomputed on every
// call.
type InventorySummary struct {
	TotalUnits    int     `json:"total_units"`
	LowStockCount int     `json:"low_stock_count"`
	TotalValue    float64 `json:"total_value"`
}

type InventoryService struct {
	store *datastore.Store
}

func NewInventoryService(store *datastore.Store) *InventoryService {
	return &InventoryService{store: store}
}

// List returns inventory items filtered by search term (name or supplier),
// category and an optional low-stock-only toggle. The low-stock predicate is
// the same quantity <= minStock comparison used by Summary.
func (s *InventoryService) List(search, category string, lowStockOnly bool) []models.InventoryItem {
	term := strings.ToLower(search)
	items := s.store.Inventory()
	matched := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(item.Name), term) ||
			strings.Contains(strings.ToLower(item.Supplier), term)
		matchesCategory := category == "" || category == "all" || item.Category == category
		matchesLowStock := !lowStockOnly || item.LowStock()
		if matchesSearch && matchesCategory && matchesLowStock {
			matched = append(matched, item)
		}
	}
	return matched
}

func (s *InventoryService) Create(item models.InventoryItem) models.InventoryItem {
	return s.store.AddInventoryItem(item)
}

func (s *InventoryService) Update(id string, upd models.InventoryItemUpdate) {
	s.store.UpdateInventoryItem(id, upd)
}

// Summary recomputes the stock aggregates: total units on hand, items at or
// below their minimum threshold, and the valuation of the whole inventory.
func (s *InventoryService) Summary() InventorySummary {
	var summary InventorySummary
	for _, item := range s.store.Inventory() {
		summary.TotalUnits += item.Quantity
		if item.LowStock() {
			summary.LowStockCount++
		}
		summary.TotalValue += float64(item.Quantity) * item.Cost
	}
	return summary
}
