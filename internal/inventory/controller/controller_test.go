package controller

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cannahub/admin-console/internal/inventory/dto"
	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/notify"
	"github.com/cannahub/admin-console/pkg/logger"
)

type fakeGateway struct {
	items       []model.InventoryItem
	updateCalls int
}

func (f *fakeGateway) List(ctx context.Context, filters *dto.InventoryFilters) ([]model.InventoryItem, error) {
	out := make([]model.InventoryItem, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeGateway) Update(ctx context.Context, storeID, id string, input *dto.UpdateItemInput) (*model.InventoryItem, error) {
	f.updateCalls++
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].BatchNumber = input.BatchNumber
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func TestSnapshot_SummaryAggregates(t *testing.T) {
	gw := &fakeGateway{items: []model.InventoryItem{
		{ID: "i-1", QuantityOnHand: 12.5, QuantityReserved: 2, StockStatus: model.StockStatusInStock},
		{ID: "i-2", QuantityOnHand: 3, QuantityReserved: 1.5, StockStatus: model.StockStatusLowStock},
		{ID: "i-3", QuantityOnHand: 0, QuantityReserved: 0, StockStatus: model.StockStatusOutOfStock},
	}}
	ctrl := NewInventoryController(gw, notify.NewBus(time.Minute), logger.NewNop())
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	summary := ctrl.Snapshot().Summary
	if !summary.TotalOnHand.Equal(decimal.NewFromFloat(15.5)) {
		t.Fatalf("TotalOnHand = %s", summary.TotalOnHand)
	}
	if !summary.TotalReserved.Equal(decimal.NewFromFloat(3.5)) {
		t.Fatalf("TotalReserved = %s", summary.TotalReserved)
	}
	if summary.LowStockCount != 1 || summary.OutOfStock != 1 {
		t.Fatalf("counts = %+v", summary)
	}
}

func TestUpdateItem_InvalidGTINKeepsModalOpen(t *testing.T) {
	gw := &fakeGateway{items: []model.InventoryItem{{ID: "i-1", BatchNumber: "B-100"}}}
	bus := notify.NewBus(time.Minute)
	ctrl := NewInventoryController(gw, bus, logger.NewNop())
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	ctrl.OpenEditModal("i-1")

	err := ctrl.UpdateItem(context.Background(), "i-1", &dto.UpdateItemInput{
		BatchNumber: "B-101",
		GTIN:        "12345", // must be 14 digits
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if gw.updateCalls != 0 {
		t.Fatalf("invalid form must not reach the gateway")
	}
	if !ctrl.Snapshot().ModalOpen {
		t.Fatalf("modal must stay open on validation failure")
	}
}

func TestUpdateItem_SuccessClosesModalAndRefetches(t *testing.T) {
	gw := &fakeGateway{items: []model.InventoryItem{{ID: "i-1", BatchNumber: "B-100"}}}
	bus := notify.NewBus(time.Minute)
	ctrl := NewInventoryController(gw, bus, logger.NewNop())
	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	ctrl.OpenEditModal("i-1")

	if err := ctrl.UpdateItem(context.Background(), "i-1", &dto.UpdateItemInput{BatchNumber: "B-101"}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	state := ctrl.Snapshot()
	if state.ModalOpen {
		t.Fatalf("modal should close after a successful update")
	}
	if state.Items[0].BatchNumber != "B-101" {
		t.Fatalf("refetch should show the new batch number, got %q", state.Items[0].BatchNumber)
	}
	recent := bus.Recent()
	if len(recent) != 1 || recent[0].Level != notify.LevelSuccess {
		t.Fatalf("expected one success toast, got %v", recent)
	}
}
