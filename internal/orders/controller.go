package orders

import (
	"context"

	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/orders/dto"
)

type Controller interface {
	Load(ctx context.Context) error
	SetFilters(ctx context.Context, filters dto.OrderFilters) error
	Select(ctx context.Context, id string) error
	ClearSelection()
	Apply(ctx context.Context, id string, act action.Action) error
	Snapshot() dto.PageState
}
