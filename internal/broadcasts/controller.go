package broadcasts

import (
	"context"

	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/broadcasts/dto"
)

type Controller interface {
	Load(ctx context.Context) error
	Create(ctx context.Context, input *dto.CreateBroadcastInput) error
	Update(ctx context.Context, id string, input *dto.UpdateBroadcastInput) error
	Apply(ctx context.Context, id string, act action.Action) error
	OpenWizard()
	CloseWizard()
	Snapshot() dto.PageState

	// StartPolling keeps send progress fresh while any broadcast is
	// sending; StopPolling tears the timer down on page unmount.
	StartPolling(ctx context.Context)
	StopPolling()
}
