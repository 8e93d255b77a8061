package gateway

import (
	"context"
	"fmt"

	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/upstream"
)

const basePath = "/api/admin/accounts"

type RemoteGateway struct {
	client *upstream.Client
}

func NewRemoteGateway(client *upstream.Client) *RemoteGateway {
	return &RemoteGateway{client: client}
}

func (g *RemoteGateway) ListPending(ctx context.Context) ([]model.PendingAccount, error) {
	var accounts []model.PendingAccount
	if err := g.client.Get(ctx, basePath+"/pending", &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (g *RemoteGateway) Approve(ctx context.Context, id, notes string) error {
	body := map[string]string{"notes": notes}
	return g.client.Post(ctx, fmt.Sprintf("%s/%s/approve", basePath, id), body, nil)
}

func (g *RemoteGateway) Reject(ctx context.Context, id, notes string) error {
	body := map[string]string{"notes": notes}
	return g.client.Post(ctx, fmt.Sprintf("%s/%s/reject", basePath, id), body, nil)
}
