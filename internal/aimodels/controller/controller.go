package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/aimodels"
	"github.com/cannahub/admin-console/internal/aimodels/dto"
	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/notify"
	"github.com/cannahub/admin-console/internal/poll"
	"github.com/cannahub/admin-console/pkg/logger"
	"github.com/cannahub/admin-console/pkg/validate"
)

type aiController struct {
	gw     aimodels.Gateway
	bus    *notify.Bus
	logger logger.ZapLogger
	poller *poll.Poller

	mu        sync.Mutex
	activeTab string
	models    []dto.ModelRow
	stats     *model.RouterStats
	config    *model.PlatformConfig
	loading   bool
	polling   bool
}

// NewAIController builds the AI management page. The poller refreshes the
// models tab while a load is in progress; the other tabs fetch on selection.
func NewAIController(gw aimodels.Gateway, bus *notify.Bus, log logger.ZapLogger, pollInterval time.Duration) aimodels.Controller {
	c := &aiController{
		gw:        gw,
		bus:       bus,
		logger:    log,
		activeTab: aimodels.TabModels,
	}
	c.poller = poll.New(pollInterval, c.Load)
	return c
}

// Load fetches whatever the active tab shows.
func (c *aiController) Load(ctx context.Context) error {
	c.mu.Lock()
	tab := c.activeTab
	c.loading = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	switch tab {
	case aimodels.TabRouter:
		return c.loadRouter(ctx)
	case aimodels.TabConfiguration:
		return c.loadConfiguration(ctx)
	default:
		return c.loadModels(ctx)
	}
}

func (c *aiController) loadModels(ctx context.Context) error {
	list, err := c.gw.ListModels(ctx)
	if err != nil {
		c.logger.Error("failed to load models", zap.Error(err))
		c.bus.Error("aimodels.load_failed", nil)
		return err
	}

	rows := make([]dto.ModelRow, len(list))
	for i, m := range list {
		rows[i] = dto.ModelRow{AIModel: m, Actions: action.ForModel(m.Status)}
	}

	c.mu.Lock()
	c.models = rows
	c.mu.Unlock()
	return nil
}

func (c *aiController) loadRouter(ctx context.Context) error {
	stats, err := c.gw.RouterStats(ctx)
	if err != nil {
		c.logger.Error("failed to load router stats", zap.Error(err))
		c.bus.Error("aimodels.router_load_failed", nil)
		return err
	}

	c.mu.Lock()
	c.stats = stats
	c.mu.Unlock()
	return nil
}

func (c *aiController) loadConfiguration(ctx context.Context) error {
	cfg, err := c.gw.GetConfiguration(ctx)
	if err != nil {
		c.logger.Error("failed to load configuration", zap.Error(err))
		c.bus.Error("aimodels.config_load_failed", nil)
		return err
	}

	c.mu.Lock()
	c.config = cfg
	c.mu.Unlock()
	return nil
}

// SelectTab switches the active tab and fetches its data immediately.
func (c *aiController) SelectTab(ctx context.Context, tab string) error {
	switch tab {
	case aimodels.TabModels, aimodels.TabRouter, aimodels.TabConfiguration:
	default:
		return fmt.Errorf("unknown tab %q", tab)
	}

	c.mu.Lock()
	c.activeTab = tab
	c.mu.Unlock()
	return c.Load(ctx)
}

// Apply loads or unloads a model. The action table refuses load while a model
// is already loading and unload while it is not loaded.
func (c *aiController) Apply(ctx context.Context, name string, act action.Action) error {
	row := c.findRow(name)
	if row == nil {
		c.bus.Error("aimodels.not_found", nil)
		return fmt.Errorf("model %s not in current list", name)
	}
	if !action.Allowed(row.Actions, act) {
		c.bus.Error("aimodels.action_not_allowed", nil)
		return fmt.Errorf("action %q not allowed for model %s (status %q)", act, name, row.Status)
	}

	var err error
	switch act {
	case action.ModelActionLoad:
		err = c.gw.LoadModel(ctx, name)
	case action.ModelActionUnload:
		err = c.gw.UnloadModel(ctx, name)
	default:
		return fmt.Errorf("unknown model action %q", act)
	}

	if err != nil {
		c.logger.Error("model action failed",
			zap.String("model", name),
			zap.String("action", string(act)),
			zap.Error(err),
		)
		c.bus.Error("aimodels.action_failed", nil)
		return err
	}

	c.bus.Success("aimodels.action_applied", map[string]interface{}{
		"Name":   name,
		"Action": string(act),
	})
	return c.Load(ctx)
}

func (c *aiController) ToggleRouter(ctx context.Context, enabled bool) error {
	if err := c.gw.ToggleRouter(ctx, enabled); err != nil {
		c.logger.Error("router toggle failed", zap.Bool("enabled", enabled), zap.Error(err))
		c.bus.Error("aimodels.router_toggle_failed", nil)
		return err
	}

	c.bus.Success("aimodels.router_toggled", nil)
	return c.loadRouter(ctx)
}

func (c *aiController) SaveConfiguration(ctx context.Context, input *dto.ConfigurationInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}

	if err := c.gw.UpdateConfiguration(ctx, input); err != nil {
		c.logger.Error("configuration update failed", zap.Error(err))
		c.bus.Error("aimodels.config_save_failed", nil)
		return err
	}

	c.bus.Success("aimodels.config_saved", nil)
	return c.loadConfiguration(ctx)
}

func (c *aiController) StartPolling(ctx context.Context) {
	c.mu.Lock()
	c.polling = true
	c.mu.Unlock()
	c.poller.Start(ctx)
}

func (c *aiController) StopPolling() {
	c.poller.Stop()
	c.mu.Lock()
	c.polling = false
	c.mu.Unlock()
}

func (c *aiController) Snapshot() dto.PageState {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]dto.ModelRow, len(c.models))
	copy(rows, c.models)
	return dto.PageState{
		ActiveTab:   c.activeTab,
		Models:      rows,
		RouterStats: c.stats,
		Config:      c.config,
		Loading:     c.loading,
		Polling:     c.polling,
	}
}

func (c *aiController) findRow(name string) *dto.ModelRow {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.models {
		if c.models[i].Name == name {
			return &c.models[i]
		}
	}
	return nil
}
