package orders

import (
	"context"

	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/orders/dto"
)

type Gateway interface {
	List(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, error)
	Get(ctx context.Context, storeID, id string) (*model.Order, error)
	UpdateStatus(ctx context.Context, storeID, id, status string) error
}
