package aimodels

import (
	"context"

	"github.com/cannahub/admin-console/internal/aimodels/dto"
	"github.com/cannahub/admin-console/internal/model"
)

type Gateway interface {
	ListModels(ctx context.Context) ([]model.AIModel, error)
	LoadModel(ctx context.Context, name string) error
	UnloadModel(ctx context.Context, name string) error

	RouterStats(ctx context.Context) (*model.RouterStats, error)
	ToggleRouter(ctx context.Context, enabled bool) error

	GetConfiguration(ctx context.Context) (*model.PlatformConfig, error)
	UpdateConfiguration(ctx context.Context, input *dto.ConfigurationInput) error
}
