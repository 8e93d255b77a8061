package stores

import (
	"context"

	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/stores/dto"
)

type Gateway interface {
	List(ctx context.Context) ([]model.Store, error)
	Create(ctx context.Context, input *dto.CreateStoreInput) (*model.Store, error)
	Update(ctx context.Context, id string, input *dto.UpdateStoreInput) (*model.Store, error)
	Suspend(ctx context.Context, id string) error
	Reactivate(ctx context.Context, id string) error
	Close(ctx context.Context, id string) error
	SetFeatureFlag(ctx context.Context, id, flag string, enabled bool) error
}
