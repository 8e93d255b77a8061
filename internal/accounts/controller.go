package accounts

import (
	"context"

	"github.com/cannahub/admin-console/internal/accounts/dto"
	"github.com/cannahub/admin-console/internal/action"
)

type Controller interface {
	Load(ctx context.Context) error
	Review(ctx context.Context, id string, act action.Action, notes string) error
	Snapshot() dto.PageState
}
