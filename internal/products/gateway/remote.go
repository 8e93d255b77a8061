package gateway

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/products/dto"
	"github.com/cannahub/admin-console/internal/upstream"
)

const basePath = "/api/products"

type RemoteGateway struct {
	client *upstream.Client
}

func NewRemoteGateway(client *upstream.Client) *RemoteGateway {
	return &RemoteGateway{client: client}
}

func (g *RemoteGateway) List(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	opts := []upstream.RequestOption{}
	if f.StoreID != "" {
		opts = append(opts, upstream.WithStoreID(f.StoreID))
	}
	if f.Category != "" {
		opts = append(opts, upstream.WithQuery("category", f.Category))
	}
	if f.StrainType != "" {
		opts = append(opts, upstream.WithQuery("strain_type", f.StrainType))
	}
	if f.IsActive != nil {
		opts = append(opts, upstream.WithQuery("is_active", strconv.FormatBool(*f.IsActive)))
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

	var products []model.Product
	if err := g.client.Get(ctx, basePath, &products, opts...); err != nil {
		return nil, err
	}
	return products, nil
}

func (g *RemoteGateway) Get(ctx context.Context, storeID, id string) (*model.Product, error) {
	var p model.Product
	err := g.client.Get(ctx, fmt.Sprintf("%s/%s", basePath, id), &p, upstream.WithStoreID(storeID))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (g *RemoteGateway) Create(ctx context.Context, storeID string, input *dto.CreateProductInput) (*model.Product, error) {
	var p model.Product
	if err := g.client.Post(ctx, basePath, input, &p, upstream.WithStoreID(storeID)); err != nil {
		return nil, err
	}
	return &p, nil
}

func (g *RemoteGateway) Update(ctx context.Context, storeID, id string, input *dto.UpdateProductInput) (*model.Product, error) {
	var p model.Product
	err := g.client.Put(ctx, fmt.Sprintf("%s/%s", basePath, id), input, &p, upstream.WithStoreID(storeID))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (g *RemoteGateway) Delete(ctx context.Context, storeID, id string) error {
	return g.client.Delete(ctx, fmt.Sprintf("%s/%s", basePath, id), upstream.WithStoreID(storeID))
}
