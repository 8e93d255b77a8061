package voice

import (
	"context"

	"github.com/cannahub/admin-console/internal/voice/dto"
)

type Controller interface {
	Load(ctx context.Context) error
	Create(ctx context.Context, input *dto.ProviderInput) error
	Update(ctx context.Context, id string, input *dto.ProviderInput) error
	Delete(ctx context.Context, id string) error
	TestSynthesis(ctx context.Context, input *dto.SynthesisInput) error
	OpenEditor(providerID string)
	CloseEditor()
	Snapshot() dto.PageState
}
