package controller

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/notify"
	"github.com/cannahub/admin-console/internal/products"
	"github.com/cannahub/admin-console/internal/products/dto"
	"github.com/cannahub/admin-console/pkg/logger"
	"github.com/cannahub/admin-console/pkg/validate"
)

type productController struct {
	gw     products.Gateway
	bus    *notify.Bus
	logger logger.ZapLogger

	mu        sync.Mutex
	items     []model.Product
	loading   bool
	modalOpen bool
	editingID string
	filters   dto.ProductFilters
}

func NewProductController(gw products.Gateway, bus *notify.Bus, log logger.ZapLogger) products.Controller {
	return &productController{
		gw:     gw,
		bus:    bus,
		logger: log,
	}
}

func (c *productController) Load(ctx context.Context) error {
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
		c.logger.Error("failed to load products", zap.Error(err))
		c.bus.Error("products.load_failed", nil)
		return err
	}

	c.mu.Lock()
	c.items = list
	c.mu.Unlock()
	return nil
}

func (c *productController) SetFilters(ctx context.Context, filters dto.ProductFilters) error {
	c.mu.Lock()
	c.filters = filters
	c.mu.Unlock()
	return c.Load(ctx)
}

// Create validates the form locally, creates upstream, then refetches and
// closes the modal. Validation and upstream field errors both leave the
// modal open for inline display.
func (c *productController) Create(ctx context.Context, input *dto.CreateProductInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}

	c.mu.Lock()
	storeID := c.filters.StoreID
	c.mu.Unlock()

	if _, err := c.gw.Create(ctx, storeID, input); err != nil {
		c.logger.Error("failed to create product", zap.String("sku", input.SKU), zap.Error(err))
		c.bus.Error("products.create_failed", nil)
		return err
	}

	c.bus.Success("products.created", map[string]interface{}{"Name": input.Name})
	c.CloseModal()
	return c.Load(ctx)
}

func (c *productController) Update(ctx context.Context, id string, input *dto.UpdateProductInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}

	c.mu.Lock()
	storeID := c.filters.StoreID
	c.mu.Unlock()

	if _, err := c.gw.Update(ctx, storeID, id, input); err != nil {
		c.logger.Error("failed to update product", zap.String("product_id", id), zap.Error(err))
		c.bus.Error("products.update_failed", nil)
		return err
	}

	c.bus.Success("products.updated", map[string]interface{}{"Name": input.Name})
	c.CloseModal()
	return c.Load(ctx)
}

func (c *productController) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	storeID := c.filters.StoreID
	c.mu.Unlock()

	if err := c.gw.Delete(ctx, storeID, id); err != nil {
		c.logger.Error("failed to delete product", zap.String("product_id", id), zap.Error(err))
		c.bus.Error("products.delete_failed", nil)
		return err
	}

	c.bus.Success("products.deleted", nil)
	return c.Load(ctx)
}

func (c *productController) OpenModal(id string) {
	c.mu.Lock()
	c.modalOpen = true
	c.editingID = id
	c.mu.Unlock()
}

func (c *productController) CloseModal() {
	c.mu.Lock()
	c.modalOpen = false
	c.editingID = ""
	c.mu.Unlock()
}

func (c *productController) Snapshot() dto.PageState {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]model.Product, len(c.items))
	copy(items, c.items)
	return dto.PageState{
		Products:  items,
		Loading:   c.loading,
		ModalOpen: c.modalOpen,
		EditingID: c.editingID,
		Filters:   c.filters,
	}
}
