package gateway

import (
	"context"
	"fmt"

	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/upstream"
	"github.com/cannahub/admin-console/internal/voice"
	"github.com/cannahub/admin-console/internal/voice/dto"
	"github.com/cannahub/admin-console/pkg/logger"
)

const (
	providersPath  = "/api/voice-providers"
	providerPath   = "/api/voice-providers/%s"
	synthesizePath = "/api/voice-synthesis/test"
)

type remoteGateway struct {
	client *upstream.Client
	logger logger.ZapLogger
}

func NewRemoteGateway(client *upstream.Client, log logger.ZapLogger) voice.Gateway {
	return &remoteGateway{client: client, logger: log}
}

func (g *remoteGateway) List(ctx context.Context) ([]model.VoiceProvider, error) {
	var out struct {
		Providers []model.VoiceProvider `json:"providers"`
	}
	if err := g.client.Get(ctx, providersPath, &out); err != nil {
		return nil, err
	}
	return out.Providers, nil
}

func (g *remoteGateway) Create(ctx context.Context, input *dto.ProviderInput) (*model.VoiceProvider, error) {
	var created model.VoiceProvider
	if err := g.client.Post(ctx, providersPath, input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *remoteGateway) Update(ctx context.Context, id string, input *dto.ProviderInput) (*model.VoiceProvider, error) {
	var updated model.VoiceProvider
	if err := g.client.Put(ctx, fmt.Sprintf(providerPath, id), input, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *remoteGateway) Delete(ctx context.Context, id string) error {
	return g.client.Delete(ctx, fmt.Sprintf(providerPath, id))
}

func (g *remoteGateway) Synthesize(ctx context.Context, input *dto.SynthesisInput) (*model.SynthesisResult, error) {
	var result model.SynthesisResult
	if err := g.client.Post(ctx, synthesizePath, input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
