package controller

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/notify"
	"github.com/cannahub/admin-console/internal/stores"
	"github.com/cannahub/admin-console/internal/stores/dto"
	"github.com/cannahub/admin-console/pkg/logger"
	"github.com/cannahub/admin-console/pkg/validate"
)

type storeController struct {
	gw     stores.Gateway
	bus    *notify.Bus
	logger logger.ZapLogger

	mu        sync.Mutex
	rows      []dto.StoreRow
	loading   bool
	modalOpen bool
	editingID string
}

func NewStoreController(gw stores.Gateway, bus *notify.Bus, log logger.ZapLogger) stores.Controller {
	return &storeController{
		gw:     gw,
		bus:    bus,
		logger: log,
	}
}

func (c *storeController) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	list, err := c.gw.List(ctx)
	if err != nil {
		c.logger.Error("failed to load stores", zap.Error(err))
		c.bus.Error("stores.load_failed", nil)
		return err
	}

	rows := make([]dto.StoreRow, len(list))
	for i, s := range list {
		rows[i] = dto.StoreRow{Store: s, Actions: action.ForStore(s.Status)}
	}

	c.mu.Lock()
	c.rows = rows
	c.mu.Unlock()
	return nil
}

// Create submits the provisioning form. Field-level failures (local or
// upstream 422) are returned without touching modal state so the form stays
// open with inline errors.
func (c *storeController) Create(ctx context.Context, input *dto.CreateStoreInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}

	if _, err := c.gw.Create(ctx, input); err != nil {
		c.logger.Error("failed to create store", zap.String("name", input.Name), zap.Error(err))
		c.bus.Error("stores.create_failed", nil)
		return err
	}

	c.bus.Success("stores.created", map[string]interface{}{"Name": input.Name})
	c.CloseModal()
	return c.Load(ctx)
}

func (c *storeController) Update(ctx context.Context, id string, input *dto.UpdateStoreInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}

	row := c.findRow(id)
	if row == nil {
		c.bus.Error("stores.not_found", nil)
		return fmt.Errorf("store %s not in current list", id)
	}
	if !action.Allowed(row.Actions, action.StoreActionEdit) {
		c.bus.Error("stores.action_not_allowed", map[string]interface{}{"Status": row.Status})
		return fmt.Errorf("store %s is not editable in status %q", id, row.Status)
	}

	if _, err := c.gw.Update(ctx, id, input); err != nil {
		c.logger.Error("failed to update store", zap.String("store_id", id), zap.Error(err))
		c.bus.Error("stores.update_failed", nil)
		return err
	}

	c.bus.Success("stores.updated", map[string]interface{}{"Name": input.Name})
	c.CloseModal()
	return c.Load(ctx)
}

// Apply runs a lifecycle action (suspend, reactivate, close).
func (c *storeController) Apply(ctx context.Context, id string, act action.Action) error {
	row := c.findRow(id)
	if row == nil {
		c.bus.Error("stores.not_found", nil)
		return fmt.Errorf("store %s not in current list", id)
	}
	if !action.Allowed(row.Actions, act) {
		c.bus.Error("stores.action_not_allowed", map[string]interface{}{"Status": row.Status})
		return fmt.Errorf("action %q not allowed for store status %q", act, row.Status)
	}

	var err error
	switch act {
	case action.StoreActionSuspend:
		err = c.gw.Suspend(ctx, id)
	case action.StoreActionReactivate:
		err = c.gw.Reactivate(ctx, id)
	case action.StoreActionClose:
		err = c.gw.Close(ctx, id)
	default:
		return fmt.Errorf("unknown store action %q", act)
	}

	if err != nil {
		c.logger.Error("store action failed",
			zap.String("store_id", id),
			zap.String("action", string(act)),
			zap.Error(err),
		)
		c.bus.Error("stores.action_failed", nil)
		return err
	}

	c.bus.Success("stores.action_applied", map[string]interface{}{"Action": string(act)})
	return c.Load(ctx)
}

func (c *storeController) ToggleFeature(ctx context.Context, id, flag string, enabled bool) error {
	if err := c.gw.SetFeatureFlag(ctx, id, flag, enabled); err != nil {
		c.logger.Error("failed to toggle feature flag",
			zap.String("store_id", id),
			zap.String("flag", flag),
			zap.Error(err),
		)
		c.bus.Error("stores.feature_toggle_failed", nil)
		return err
	}

	c.bus.Success("stores.feature_toggled", map[string]interface{}{"Flag": flag})
	return c.Load(ctx)
}

func (c *storeController) OpenModal(id string) {
	c.mu.Lock()
	c.modalOpen = true
	c.editingID = id
	c.mu.Unlock()
}

func (c *storeController) CloseModal() {
	c.mu.Lock()
	c.modalOpen = false
	c.editingID = ""
	c.mu.Unlock()
}

func (c *storeController) Snapshot() dto.PageState {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]dto.StoreRow, len(c.rows))
	copy(rows, c.rows)
	return dto.PageState{
		Stores:    rows,
		Loading:   c.loading,
		ModalOpen: c.modalOpen,
		EditingID: c.editingID,
	}
}

func (c *storeController) findRow(id string) *dto.StoreRow {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.rows {
		if c.rows[i].ID == id {
			return &c.rows[i]
		}
	}
	return nil
}
