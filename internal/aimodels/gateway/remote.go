package gateway

import (
	"context"

	"github.com/cannahub/admin-console/internal/aimodels"
	"github.com/cannahub/admin-console/internal/aimodels/dto"
	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/upstream"
	"github.com/cannahub/admin-console/pkg/logger"
)

const (
	modelsPath       = "/api/admin/models"
	modelLoadPath    = "/api/admin/model/load"
	modelUnloadPath  = "/api/admin/model/unload"
	routerStatsPath  = "/api/admin/router/stats"
	routerTogglePath = "/api/admin/router/toggle"
	configPath       = "/api/admin/configuration"
	configSavePath   = "/api/admin/configuration/update"
)

type remoteGateway struct {
	client *upstream.Client
	logger logger.ZapLogger
}

func NewRemoteGateway(client *upstream.Client, log logger.ZapLogger) aimodels.Gateway {
	return &remoteGateway{client: client, logger: log}
}

func (g *remoteGateway) ListModels(ctx context.Context) ([]model.AIModel, error) {
	var out struct {
		Models []model.AIModel `json:"models"`
	}
	if err := g.client.Get(ctx, modelsPath, &out); err != nil {
		return nil, err
	}
	return out.Models, nil
}

func (g *remoteGateway) LoadModel(ctx context.Context, name string) error {
	body := map[string]string{"model_name": name}
	return g.client.Post(ctx, modelLoadPath, body, nil)
}

func (g *remoteGateway) UnloadModel(ctx context.Context, name string) error {
	body := map[string]string{"model_name": name}
	return g.client.Post(ctx, modelUnloadPath, body, nil)
}

func (g *remoteGateway) RouterStats(ctx context.Context) (*model.RouterStats, error) {
	var stats model.RouterStats
	if err := g.client.Get(ctx, routerStatsPath, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (g *remoteGateway) ToggleRouter(ctx context.Context, enabled bool) error {
	body := map[string]bool{"enabled": enabled}
	return g.client.Post(ctx, routerTogglePath, body, nil)
}

func (g *remoteGateway) GetConfiguration(ctx context.Context) (*model.PlatformConfig, error) {
	var cfg model.PlatformConfig
	if err := g.client.Get(ctx, configPath, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (g *remoteGateway) UpdateConfiguration(ctx context.Context, input *dto.ConfigurationInput) error {
	return g.client.Post(ctx, configSavePath, input, nil)
}
