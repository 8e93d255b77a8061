package stores

import (
	"context"

	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/stores/dto"
)

type Controller interface {
	Load(ctx context.Context) error
	Create(ctx context.Context, input *dto.CreateStoreInput) error
	Update(ctx context.Context, id string, input *dto.UpdateStoreInput) error
	Apply(ctx context.Context, id string, act action.Action) error
	ToggleFeature(ctx context.Context, id, flag string, enabled bool) error
	OpenModal(id string)
	CloseModal()
	Snapshot() dto.PageState
}
