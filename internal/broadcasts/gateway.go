package broadcasts

import (
	"context"

	"github.com/cannahub/admin-console/internal/broadcasts/dto"
	"github.com/cannahub/admin-console/internal/model"
)

type Gateway interface {
	List(ctx context.Context) ([]model.Broadcast, error)
	Create(ctx context.Context, input *dto.CreateBroadcastInput) (*model.Broadcast, error)
	Update(ctx context.Context, id string, input *dto.UpdateBroadcastInput) (*model.Broadcast, error)
	Delete(ctx context.Context, id string) error
	Execute(ctx context.Context, id string) error
	Pause(ctx context.Context, id string) error
	Resume(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
}
