package gateway

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/orders/dto"
	"github.com/cannahub/admin-console/internal/upstream"
)

type RemoteGateway struct {
	client *upstream.Client
}

func NewRemoteGateway(client *upstream.Client) *RemoteGateway {
	return &RemoteGateway{client: client}
}

func (g *RemoteGateway) List(ctx context.Context, f *dto.OrderFilters) ([]model.Order, error) {
	opts := []upstream.RequestOption{}
	if f.StoreID != "" {
		opts = append(opts, upstream.WithStoreID(f.StoreID))
	}
	if f.Status != "" {
		opts = append(opts, upstream.WithQuery("status", f.Status))
	}
	if f.StartDate != nil {
		opts = append(opts, upstream.WithQuery("start_date", f.StartDate.Format(time.RFC3339)))
	}
	if f.EndDate != nil {
		opts = append(opts, upstream.WithQuery("end_date", f.EndDate.Format(time.RFC3339)))
	}
	if f.Page > 0 {
		opts = append(opts, upstream.WithQuery("page", strconv.Itoa(f.Page)))
		if f.PageSize > 0 {
			opts = append(opts, upstream.WithQuery("page_size", strconv.Itoa(f.PageSize)))
		}
	}

	var orders []model.Order
	if err := g.client.Get(ctx, "/api/orders", &orders, opts...); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g *RemoteGateway) Get(ctx context.Context, storeID, id string) (*model.Order, error) {
	var order model.Order
	err := g.client.Get(ctx, fmt.Sprintf("/api/orders/%s", id), &order, upstream.WithStoreID(storeID))
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (g *RemoteGateway) UpdateStatus(ctx context.Context, storeID, id, status string) error {
	body := map[string]string{"status": status}
	path := fmt.Sprintf("/api/orders/%s/status", id)
	return g.client.Post(ctx, path, body, nil, upstream.WithStoreID(storeID))
}
