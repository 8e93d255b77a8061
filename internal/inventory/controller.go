package inventory

import (
	"context"

	"github.com/cannahub/admin-console/internal/inventory/dto"
)

type Controller interface {
	Load(ctx context.Context) error
	SetFilters(ctx context.Context, filters dto.InventoryFilters) error
	UpdateItem(ctx context.Context, id string, input *dto.UpdateItemInput) error
	OpenEditModal(id string)
	CloseEditModal()
	Snapshot() dto.PageState
}
