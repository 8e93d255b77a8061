package products

import (
	"context"

	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/products/dto"
)

type Gateway interface {
	List(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	Get(ctx context.Context, storeID, id string) (*model.Product, error)
	Create(ctx context.Context, storeID string, input *dto.CreateProductInput) (*model.Product, error)
	Update(ctx context.Context, storeID, id string, input *dto.UpdateProductInput) (*model.Product, error)
	Delete(ctx context.Context, storeID, id string) error
}
