package controller

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cannahub/admin-console/internal/inventory"
	"github.com/cannahub/admin-console/internal/inventory/dto"
	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/notify"
	"github.com/cannahub/admin-console/pkg/logger"
	"github.com/cannahub/admin-console/pkg/validate"
)

type inventoryController struct {
	gw     inventory.Gateway
	bus    *notify.Bus
	logger logger.ZapLogger

	mu        sync.Mutex
	items     []model.InventoryItem
	loading   bool
	modalOpen bool
	editingID string
	filters   dto.InventoryFilters
}

func NewInventoryController(gw inventory.Gateway, bus *notify.Bus, log logger.ZapLogger) inventory.Controller {
	return &inventoryController{
		gw:     gw,
		bus:    bus,
		logger: log,
	}
}

func (c *inventoryController) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	filters := c.filters
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	list, err := c.gw.List(ctx, &filters)
	if err != nil {
		c.logger.Error("failed to load inventory", zap.Error(err))
		c.bus.Error("inventory.load_failed", nil)
		return err
	}

	c.mu.Lock()
	c.items = list
	c.mu.Unlock()
	return nil
}

func (c *inventoryController) SetFilters(ctx context.Context, filters dto.InventoryFilters) error {
	c.mu.Lock()
	c.filters = filters
	c.mu.Unlock()
	return c.Load(ctx)
}

// UpdateItem is the single mutation path on this read-mostly page: the edit
// modal submits batch/lot/GTIN and quantity corrections.
func (c *inventoryController) UpdateItem(ctx context.Context, id string, input *dto.UpdateItemInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}

	c.mu.Lock()
	storeID := c.filters.StoreID
	c.mu.Unlock()

	if _, err := c.gw.Update(ctx, storeID, id, input); err != nil {
		c.logger.Error("failed to update inventory item", zap.String("item_id", id), zap.Error(err))
		c.bus.Error("inventory.update_failed", nil)
		return err
	}

	c.bus.Success("inventory.updated", nil)
	c.CloseEditModal()
	return c.Load(ctx)
}

func (c *inventoryController) OpenEditModal(id string) {
	c.mu.Lock()
	c.modalOpen = true
	c.editingID = id
	c.mu.Unlock()
}

func (c *inventoryController) CloseEditModal() {
	c.mu.Lock()
	c.modalOpen = false
	c.editingID = ""
	c.mu.Unlock()
}

func (c *inventoryController) Snapshot() dto.PageState {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]model.InventoryItem, len(c.items))
	copy(items, c.items)

	summary := dto.Summary{
		TotalOnHand:   decimal.Zero,
		TotalReserved: decimal.Zero,
	}
	for _, item := range items {
		summary.TotalOnHand = summary.TotalOnHand.Add(decimal.NewFromFloat(item.QuantityOnHand))
		summary.TotalReserved = summary.TotalReserved.Add(decimal.NewFromFloat(item.QuantityReserved))
		switch item.StockStatus {
		case model.StockStatusLowStock:
			summary.LowStockCount++
		case model.StockStatusOutOfStock:
			summary.OutOfStock++
		}
	}

	return dto.PageState{
		Items:     items,
		Summary:   summary,
		Loading:   c.loading,
		ModalOpen: c.modalOpen,
		EditingID: c.editingID,
		Filters:   c.filters,
	}
}
