package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medcare/datastore"
	"medcare/models"
)

func TestLowStockPredicateConsistentAcrossViews(t *testing.T) {
	store := datastore.New()
	svc := NewInventoryService(store)

	// No seed item starts low.
	assert.Empty(t, svc.List("", "", true))
	assert.Equal(t, 0, svc.Summary().LowStockCount)

	// Drop the thermometer to exactly its threshold: quantity <= minStock
	// flags it low in both the listing and the summary count.
	qty := 10
	store.UpdateInventoryItem("2", models.InventoryItemUpdate{Quantity: &qty})

	low := svc.List("", "", true)
	assert.Len(t, low, 1)
	assert.Equal(t, "2", low[0].ID)
	assert.True(t, low[0].LowStock())
	assert.Equal(t, 1, svc.Summary().LowStockCount)

	// One above the threshold clears the flag.
	qty = 11
	store.UpdateInventoryItem("2", models.InventoryItemUpdate{Quantity: &qty})
	assert.Empty(t, svc.List("", "", true))
	assert.Equal(t, 0, svc.Summary().LowStockCount)
}

func TestListFiltersBySearchAndCategory(t *testing.T) {
	svc := NewInventoryService(datastore.New())

	assert.Len(t, svc.List("paracetamol", "", false), 1)
	assert.Len(t, svc.List("pharmacorp", "", false), 1) // supplier match
	assert.Len(t, svc.List("", models.CategoryEquipment, false), 1)
	assert.Len(t, svc.List("", "all", false), 3)
	assert.Empty(t, svc.List("aspirin", "", false))
}

func TestSummaryAggregates(t *testing.T) {
	svc := NewInventoryService(datastore.New())

	summary := svc.Summary()
	assert.Equal(t, 150+25+500, summary.TotalUnits)
	// 150*0.15 + 25*45.00 + 500*12.50
	assert.InDelta(t, 22.5+1125.0+6250.0, summary.TotalValue, 1e-9)
}

func TestCreateAssignsID(t *testing.T) {
	svc := NewInventoryService(datastore.New())

	created := svc.Create(models.InventoryItem{
		Name:     "Syringes 5ml",
		Category: models.CategorySupplies,
		Quantity: 200,
		MinStock: 50,
	})
	assert.NotEmpty(t, created.ID)
	assert.Len(t, svc.List("syringes", "", false), 1)
}
