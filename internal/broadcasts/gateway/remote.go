package gateway

import (
	"context"
	"fmt"

	"github.com/cannahub/admin-console/internal/broadcasts/dto"
	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/upstream"
)

const basePath = "/api/v1/communications/broadcasts"

type RemoteGateway struct {
	client *upstream.Client
}

func NewRemoteGateway(client *upstream.Client) *RemoteGateway {
	return &RemoteGateway{client: client}
}

func (g *RemoteGateway) List(ctx context.Context) ([]model.Broadcast, error) {
	var broadcasts []model.Broadcast
	if err := g.client.Get(ctx, basePath, &broadcasts); err != nil {
		return nil, err
	}
	return broadcasts, nil
}

func (g *RemoteGateway) Create(ctx context.Context, input *dto.CreateBroadcastInput) (*model.Broadcast, error) {
	var b model.Broadcast
	if err := g.client.Post(ctx, basePath, input, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (g *RemoteGateway) Update(ctx context.Context, id string, input *dto.UpdateBroadcastInput) (*model.Broadcast, error) {
	var b model.Broadcast
	if err := g.client.Put(ctx, fmt.Sprintf("%s/%s", basePath, id), input, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (g *RemoteGateway) Delete(ctx context.Context, id string) error {
	return g.client.Delete(ctx, fmt.Sprintf("%s/%s", basePath, id))
}

func (g *RemoteGateway) Execute(ctx context.Context, id string) error {
	return g.client.Post(ctx, fmt.Sprintf("%s/%s/execute", basePath, id), nil, nil)
}

func (g *RemoteGateway) Pause(ctx context.Context, id string) error {
	return g.client.Post(ctx, fmt.Sprintf("%s/%s/pause", basePath, id), nil, nil)
}

func (g *RemoteGateway) Resume(ctx context.Context, id string) error {
	return g.client.Post(ctx, fmt.Sprintf("%s/%s/resume", basePath, id), nil, nil)
}

func (g *RemoteGateway) Cancel(ctx context.Context, id string) error {
	return g.client.Post(ctx, fmt.Sprintf("%s/%s/cancel", basePath, id), nil, nil)
}
