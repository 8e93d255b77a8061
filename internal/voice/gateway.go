package voice

import (
	"context"

	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/voice/dto"
)

type Gateway interface {
	List(ctx context.Context) ([]model.VoiceProvider, error)
	Create(ctx context.Context, input *dto.ProviderInput) (*model.VoiceProvider, error)
	Update(ctx context.Context, id string, input *dto.ProviderInput) (*model.VoiceProvider, error)
	Delete(ctx context.Context, id string) error
	Synthesize(ctx context.Context, input *dto.SynthesisInput) (*model.SynthesisResult, error)
}
