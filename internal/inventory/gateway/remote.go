package gateway

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cannahub/admin-console/internal/inventory/dto"
	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/upstream"
)

const basePath = "/api/inventory"

type RemoteGateway struct {
	client *upstream.Client
}

func NewRemoteGateway(client *upstream.Client) *RemoteGateway {
	return &RemoteGateway{client: client}
}

func (g *RemoteGateway) List(ctx context.Context, f *dto.InventoryFilters) ([]model.InventoryItem, error) {
	opts := []upstream.RequestOption{}
	if f.StoreID != "" {
		opts = append(opts, upstream.WithStoreID(f.StoreID))
	}
	if f.StockStatus != "" {
		opts = append(opts, upstream.WithQuery("stock_status", f.StockStatus))
	}
	if f.SearchQuery != "" {
		opts = append(opts, upstream.WithQuery("q", f.SearchQuery))
	}
	if f.Page > 0 {
		opts = append(opts, upstream.WithQuery("page", strconv.Itoa(f.Page)))
		if f.PageSize > 0 {
			opts = append(opts, upstream.WithQuery("page_size", strconv.Itoa(f.PageSize)))
		}
	}

	var items []model.InventoryItem
	if err := g.client.Get(ctx, basePath, &items, opts...); err != nil {
		return nil, err
	}
	return items, nil
}

func (g *RemoteGateway) Update(ctx context.Context, storeID, id string, input *dto.UpdateItemInput) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := g.client.Put(ctx, fmt.Sprintf("%s/%s", basePath, id), input, &item, upstream.WithStoreID(storeID))
	if err != nil {
		return nil, err
	}
	return &item, nil
}
