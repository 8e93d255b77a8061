package products

import (
	"context"

	"github.com/cannahub/admin-console/internal/products/dto"
)

type Controller interface {
	Load(ctx context.Context) error
	SetFilters(ctx context.Context, filters dto.ProductFilters) error
	Create(ctx context.Context, input *dto.CreateProductInput) error
	Update(ctx context.Context, id string, input *dto.UpdateProductInput) error
	Delete(ctx context.Context, id string) error
	OpenModal(id string)
	CloseModal()
	Snapshot() dto.PageState
}
