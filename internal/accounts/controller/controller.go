package controller

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/cannahub/admin-console/internal/accounts"
	"github.com/cannahub/admin-console/internal/accounts/dto"
	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/notify"
	"github.com/cannahub/admin-console/pkg/logger"
)

type accountController struct {
	gw     accounts.Gateway
	bus    *notify.Bus
	logger logger.ZapLogger

	mu      sync.Mutex
	rows    []dto.AccountRow
	loading bool
}

func NewAccountController(gw accounts.Gateway, bus *notify.Bus, log logger.ZapLogger) accounts.Controller {
	return &accountController{
		gw:     gw,
		bus:    bus,
		logger: log,
	}
}

func (c *accountController) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	list, err := c.gw.ListPending(ctx)
	if err != nil {
		c.logger.Error("failed to load pending accounts", zap.Error(err))
		c.bus.Error("accounts.load_failed", nil)
		return err
	}

	rows := make([]dto.AccountRow, len(list))
	for i, a := range list {
		rows[i] = dto.AccountRow{PendingAccount: a, Actions: action.ForAccount(a.Status)}
	}

	c.mu.Lock()
	c.rows = rows
	c.mu.Unlock()
	return nil
}

// Review approves or rejects a pending account. Both outcomes are terminal;
// the action table only offers them while the account is still pending, so a
// second attempt on the same account is refused locally.
func (c *accountController) Review(ctx context.Context, id string, act action.Action, notes string) error {
	row := c.findRow(id)
	if row == nil {
		c.bus.Error("accounts.not_found", nil)
		return fmt.Errorf("account %s not in current list", id)
	}
	if !action.Allowed(row.Actions, act) {
		c.bus.Error("accounts.already_reviewed", nil)
		return fmt.Errorf("account %s already reviewed (status %q)", id, row.Status)
	}

	var err error
	switch act {
	case action.AccountActionApprove:
		err = c.gw.Approve(ctx, id, notes)
	case action.AccountActionReject:
		err = c.gw.Reject(ctx, id, notes)
	default:
		return fmt.Errorf("unknown account action %q", act)
	}

	if err != nil {
		c.logger.Error("account review failed",
			zap.String("account_id", id),
			zap.String("action", string(act)),
			zap.Error(err),
		)
		c.bus.Error("accounts.review_failed", nil)
		return err
	}

	c.bus.Success("accounts.reviewed", map[string]interface{}{"Action": string(act)})
	return c.Load(ctx)
}

func (c *accountController) Snapshot() dto.PageState {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]dto.AccountRow, len(c.rows))
	copy(rows, c.rows)
	return dto.PageState{Accounts: rows, Loading: c.loading}
}

func (c *accountController) findRow(id string) *dto.AccountRow {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.rows {
		if c.rows[i].ID == id {
			return &c.rows[i]
		}
	}
	return nil
}
