package inventory

import (
	"context"

	"github.com/cannahub/admin-console/internal/inventory/dto"
	"github.com/cannahub/admin-console/internal/model"
)

type Gateway interface {
	List(ctx context.Context, filters *dto.InventoryFilters) ([]model.InventoryItem, error)
	Update(ctx context.Context, storeID, id string, input *dto.UpdateItemInput) (*model.InventoryItem, error)
}
