package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/notify"
	"github.com/cannahub/admin-console/internal/orders"
	"github.com/cannahub/admin-console/internal/orders/dto"
	"github.com/cannahub/admin-console/pkg/logger"
)

type orderController struct {
	gw     orders.Gateway
	bus    *notify.Bus
	logger logger.ZapLogger

	mu        sync.Mutex
	rows      []dto.OrderRow
	selected  *dto.OrderRow
	loading   bool
	loadError string
	filters   dto.OrderFilters
}

func NewOrderController(gw orders.Gateway, bus *notify.Bus, log logger.ZapLogger) orders.Controller {
	return &orderController{
		gw:     gw,
		bus:    bus,
		logger: log,
	}
}

// Load fetches the order list. A failure here blocks the page: the error is
// kept in state for the inline panel rather than pushed as a toast.
func (c *orderController) Load(ctx context.Context) error {
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
		c.logger.Error("failed to load orders", zap.Error(err))
		c.mu.Lock()
		c.loadError = err.Error()
		c.mu.Unlock()
		return err
	}

	rows := make([]dto.OrderRow, len(list))
	for i, o := range list {
		rows[i] = dto.OrderRow{Order: o, Actions: action.ForOrder(o.Status)}
	}

	c.mu.Lock()
	c.rows = rows
	c.loadError = ""
	if c.selected != nil {
		c.selected = findRow(rows, c.selected.ID)
	}
	c.mu.Unlock()
	return nil
}

func (c *orderController) SetFilters(ctx context.Context, filters dto.OrderFilters) error {
	c.mu.Lock()
	c.filters = filters
	c.mu.Unlock()
	return c.Load(ctx)
}

func (c *orderController) Select(ctx context.Context, id string) error {
	c.mu.Lock()
	storeID := c.filters.StoreID
	c.mu.Unlock()

	order, err := c.gw.Get(ctx, storeID, id)
	if err != nil {
		c.logger.Error("failed to load order detail", zap.String("order_id", id), zap.Error(err))
		c.bus.Error("orders.detail_load_failed", nil)
		return err
	}

	row := dto.OrderRow{Order: *order, Actions: action.ForOrder(order.Status)}
	c.mu.Lock()
	c.selected = &row
	c.mu.Unlock()
	return nil
}

func (c *orderController) ClearSelection() {
	c.mu.Lock()
	c.selected = nil
	c.mu.Unlock()
}

// Apply performs a status-transition action on one order. The action table
// gates the call; on success the list is refetched and the detail selection
// closed, on failure state is left exactly as it was.
func (c *orderController) Apply(ctx context.Context, id string, act action.Action) error {
	c.mu.Lock()
	row := findRow(c.rows, id)
	storeID := c.filters.StoreID
	c.mu.Unlock()

	if row == nil {
		c.bus.Error("orders.not_found", nil)
		return fmt.Errorf("order %s not in current list", id)
	}
	if !action.Allowed(row.Actions, act) {
		c.bus.Error("orders.action_not_allowed", map[string]interface{}{"Status": row.Status})
		return fmt.Errorf("action %q not allowed for order status %q", act, row.Status)
	}

	next, ok := action.OrderTransitions[act]
	if !ok {
		return fmt.Errorf("unknown order action %q", act)
	}

	if err := c.gw.UpdateStatus(ctx, storeID, id, next); err != nil {
		c.logger.Error("order status update failed",
			zap.String("order_id", id),
			zap.String("requested_status", next),
			zap.Error(err),
		)
		c.bus.Error("orders.update_failed", nil)
		return err
	}

	c.bus.Success("orders.status_updated", map[string]interface{}{"Status": next})
	c.ClearSelection()
	return c.Load(ctx)
}

func (c *orderController) Snapshot() dto.PageState {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]dto.OrderRow, len(c.rows))
	copy(rows, c.rows)

	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Total)
	}

	var selected *dto.OrderRow
	if c.selected != nil {
		s := *c.selected
		selected = &s
	}

	return dto.PageState{
		Orders:     rows,
		Selected:   selected,
		Loading:    c.loading,
		LoadError:  c.loadError,
		Filters:    c.filters,
		TotalValue: total,
	}
}

func findRow(rows []dto.OrderRow, id string) *dto.OrderRow {
	for i := range rows {
		if rows[i].ID == id {
			return &rows[i]
		}
	}
	return nil
}
