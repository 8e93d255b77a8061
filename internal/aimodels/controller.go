package aimodels

import (
	"context"

	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/aimodels/dto"
)

// Tabs of the AI management page. Selecting a tab fetches its data, the same
// way the dashboard refetches on tab change.
const (
	TabModels        = "models"
	TabRouter        = "router"
	TabConfiguration = "configuration"
)

type Controller interface {
	Load(ctx context.Context) error
	SelectTab(ctx context.Context, tab string) error
	Apply(ctx context.Context, name string, act action.Action) error
	ToggleRouter(ctx context.Context, enabled bool) error
	SaveConfiguration(ctx context.Context, input *dto.ConfigurationInput) error
	Snapshot() dto.PageState

	StartPolling(ctx context.Context)
	StopPolling()
}
