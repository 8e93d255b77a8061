package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/broadcasts"
	"github.com/cannahub/admin-console/internal/broadcasts/dto"
	"github.com/cannahub/admin-console/internal/notify"
	"github.com/cannahub/admin-console/internal/poll"
	"github.com/cannahub/admin-console/pkg/logger"
	"github.com/cannahub/admin-console/pkg/validate"
)

type broadcastController struct {
	gw     broadcasts.Gateway
	bus    *notify.Bus
	logger logger.ZapLogger
	poller *poll.Poller

	mu         sync.Mutex
	rows       []dto.BroadcastRow
	loading    bool
	wizardOpen bool
	polling    bool
}

func NewBroadcastController(gw broadcasts.Gateway, bus *notify.Bus, log logger.ZapLogger, pollInterval time.Duration) broadcasts.Controller {
	c := &broadcastController{
		gw:     gw,
		bus:    bus,
		logger: log,
	}
	c.poller = poll.New(pollInterval, c.Load)
	return c
}

func (c *broadcastController) Load(ctx context.Context) error {
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
		c.logger.Error("failed to load broadcasts", zap.Error(err))
		c.bus.Error("broadcasts.load_failed", nil)
		return err
	}

	rows := make([]dto.BroadcastRow, len(list))
	for i, b := range list {
		rows[i] = dto.BroadcastRow{
			Broadcast: b,
			Actions:   action.ForBroadcast(b.Status),
			Progress:  b.ProgressPercent(),
		}
	}

	c.mu.Lock()
	c.rows = rows
	c.mu.Unlock()
	return nil
}

// Create runs the wizard submission: validate locally, create upstream, then
// refetch and close the wizard. A validation failure keeps the wizard open.
func (c *broadcastController) Create(ctx context.Context, input *dto.CreateBroadcastInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}

	if _, err := c.gw.Create(ctx, input); err != nil {
		c.logger.Error("failed to create broadcast", zap.Error(err))
		c.bus.Error("broadcasts.create_failed", nil)
		return err
	}

	c.bus.Success("broadcasts.created", nil)
	c.CloseWizard()
	return c.Load(ctx)
}

func (c *broadcastController) Update(ctx context.Context, id string, input *dto.UpdateBroadcastInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}

	row := c.findRow(id)
	if row == nil {
		c.bus.Error("broadcasts.not_found", nil)
		return fmt.Errorf("broadcast %s not in current list", id)
	}
	if !action.Allowed(row.Actions, action.BroadcastActionEdit) {
		c.bus.Error("broadcasts.action_not_allowed", map[string]interface{}{"Status": row.Status})
		return fmt.Errorf("broadcast %s is not editable in status %q", id, row.Status)
	}

	if _, err := c.gw.Update(ctx, id, input); err != nil {
		c.logger.Error("failed to update broadcast", zap.String("broadcast_id", id), zap.Error(err))
		c.bus.Error("broadcasts.update_failed", nil)
		return err
	}

	c.bus.Success("broadcasts.updated", nil)
	c.CloseWizard()
	return c.Load(ctx)
}

// Apply dispatches a lifecycle action (send_now, pause, resume, cancel,
// delete) to the matching upstream endpoint, gated by the action table.
func (c *broadcastController) Apply(ctx context.Context, id string, act action.Action) error {
	row := c.findRow(id)
	if row == nil {
		c.bus.Error("broadcasts.not_found", nil)
		return fmt.Errorf("broadcast %s not in current list", id)
	}
	if !action.Allowed(row.Actions, act) {
		c.bus.Error("broadcasts.action_not_allowed", map[string]interface{}{"Status": row.Status})
		return fmt.Errorf("action %q not allowed for broadcast status %q", act, row.Status)
	}

	var err error
	switch act {
	case action.BroadcastActionSendNow:
		err = c.gw.Execute(ctx, id)
	case action.BroadcastActionPause:
		err = c.gw.Pause(ctx, id)
	case action.BroadcastActionResume:
		err = c.gw.Resume(ctx, id)
	case action.BroadcastActionCancel:
		err = c.gw.Cancel(ctx, id)
	case action.BroadcastActionDelete:
		err = c.gw.Delete(ctx, id)
	default:
		return fmt.Errorf("unknown broadcast action %q", act)
	}

	if err != nil {
		c.logger.Error("broadcast action failed",
			zap.String("broadcast_id", id),
			zap.String("action", string(act)),
			zap.Error(err),
		)
		c.bus.Error("broadcasts.action_failed", nil)
		return err
	}

	c.bus.Success("broadcasts.action_applied", map[string]interface{}{"Action": string(act)})
	return c.Load(ctx)
}

func (c *broadcastController) OpenWizard() {
	c.mu.Lock()
	c.wizardOpen = true
	c.mu.Unlock()
}

func (c *broadcastController) CloseWizard() {
	c.mu.Lock()
	c.wizardOpen = false
	c.mu.Unlock()
}

func (c *broadcastController) StartPolling(ctx context.Context) {
	c.mu.Lock()
	c.polling = true
	c.mu.Unlock()
	c.poller.Start(ctx)
}

func (c *broadcastController) StopPolling() {
	c.poller.Stop()
	c.mu.Lock()
	c.polling = false
	c.mu.Unlock()
}

func (c *broadcastController) Snapshot() dto.PageState {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]dto.BroadcastRow, len(c.rows))
	copy(rows, c.rows)
	return dto.PageState{
		Broadcasts: rows,
		Loading:    c.loading,
		WizardOpen: c.wizardOpen,
		Polling:    c.polling,
	}
}

func (c *broadcastController) findRow(id string) *dto.BroadcastRow {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.rows {
		if c.rows[i].ID == id {
			return &c.rows[i]
		}
	}
	return nil
}
