package gateway

import (
	"context"
	"fmt"

	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/stores/dto"
	"github.com/cannahub/admin-console/internal/upstream"
)

const basePath = "/api/stores"

type RemoteGateway struct {
	client *upstream.Client
}

func NewRemoteGateway(client *upstream.Client) *RemoteGateway {
	return &RemoteGateway{client: client}
}

func (g *RemoteGateway) List(ctx context.Context) ([]model.Store, error) {
	var stores []model.Store
	if err := g.client.Get(ctx, basePath, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

func (g *RemoteGateway) Create(ctx context.Context, input *dto.CreateStoreInput) (*model.Store, error) {
	var s model.Store
	if err := g.client.Post(ctx, basePath, input, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (g *RemoteGateway) Update(ctx context.Context, id string, input *dto.UpdateStoreInput) (*model.Store, error) {
	var s model.Store
	if err := g.client.Put(ctx, fmt.Sprintf("%s/%s", basePath, id), input, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (g *RemoteGateway) Suspend(ctx context.Context, id string) error {
	return g.client.Post(ctx, fmt.Sprintf("%s/%s/suspend", basePath, id), nil, nil)
}

func (g *RemoteGateway) Reactivate(ctx context.Context, id string) error {
	return g.client.Post(ctx, fmt.Sprintf("%s/%s/reactivate", basePath, id), nil, nil)
}

func (g *RemoteGateway) Close(ctx context.Context, id string) error {
	return g.client.Post(ctx, fmt.Sprintf("%s/%s/close", basePath, id), nil, nil)
}

func (g *RemoteGateway) SetFeatureFlag(ctx context.Context, id, flag string, enabled bool) error {
	body := map[string]interface{}{"flag": flag, "enabled": enabled}
	return g.client.Post(ctx, fmt.Sprintf("%s/%s/features", basePath, id), body, nil)
}
