package controller

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/cannahub/admin-console/internal/model"
	"github.com/cannahub/admin-console/internal/notify"
	"github.com/cannahub/admin-console/internal/voice"
	"github.com/cannahub/admin-console/internal/voice/dto"
	"github.com/cannahub/admin-console/pkg/logger"
	"github.com/cannahub/admin-console/pkg/validate"
)

type voiceController struct {
	gw     voice.Gateway
	bus    *notify.Bus
	logger logger.ZapLogger

	mu         sync.Mutex
	providers  []model.VoiceProvider
	lastResult *model.SynthesisResult
	editorOpen bool
	editingID  string
	loading    bool
}

func NewVoiceController(gw voice.Gateway, bus *notify.Bus, log logger.ZapLogger) voice.Controller {
	return &voiceController{
		gw:     gw,
		bus:    bus,
		logger: log,
	}
}

func (c *voiceController) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	list, err := c.gw.List(ctx)
	if err != nil {
		c.logger.Error("failed to load voice providers", zap.Error(err))
		c.bus.Error("voice.load_failed", nil)
		return err
	}

	c.mu.Lock()
	c.providers = list
	c.mu.Unlock()
	return nil
}

func (c *voiceController) Create(ctx context.Context, input *dto.ProviderInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}

	if _, err := c.gw.Create(ctx, input); err != nil {
		c.logger.Error("voice provider create failed", zap.Error(err))
		c.bus.Error("voice.create_failed", nil)
		return err
	}

	c.bus.Success("voice.created", map[string]interface{}{"Name": input.Name})
	c.CloseEditor()
	return c.Load(ctx)
}

func (c *voiceController) Update(ctx context.Context, id string, input *dto.ProviderInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}

	if _, err := c.gw.Update(ctx, id, input); err != nil {
		c.logger.Error("voice provider update failed", zap.String("provider_id", id), zap.Error(err))
		c.bus.Error("voice.update_failed", nil)
		return err
	}

	c.bus.Success("voice.updated", map[string]interface{}{"Name": input.Name})
	c.CloseEditor()
	return c.Load(ctx)
}

func (c *voiceController) Delete(ctx context.Context, id string) error {
	if err := c.gw.Delete(ctx, id); err != nil {
		c.logger.Error("voice provider delete failed", zap.String("provider_id", id), zap.Error(err))
		c.bus.Error("voice.delete_failed", nil)
		return err
	}

	c.bus.Success("voice.deleted", nil)
	return c.Load(ctx)
}

// TestSynthesis runs a one-off synthesis against a provider and keeps the
// result around for the page to show. It never touches the provider list.
func (c *voiceController) TestSynthesis(ctx context.Context, input *dto.SynthesisInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}

	result, err := c.gw.Synthesize(ctx, input)
	if err != nil {
		c.logger.Error("voice synthesis test failed", zap.String("provider_id", input.ProviderID), zap.Error(err))
		c.bus.Error("voice.synthesis_failed", nil)
		return err
	}

	c.mu.Lock()
	c.lastResult = result
	c.mu.Unlock()

	c.bus.Success("voice.synthesis_ok", map[string]interface{}{"Voice": input.Voice})
	return nil
}

// OpenEditor opens the provider form; empty id means creating a new one.
func (c *voiceController) OpenEditor(providerID string) {
	c.mu.Lock()
	c.editorOpen = true
	c.editingID = providerID
	c.mu.Unlock()
}

func (c *voiceController) CloseEditor() {
	c.mu.Lock()
	c.editorOpen = false
	c.editingID = ""
	c.mu.Unlock()
}

func (c *voiceController) Snapshot() dto.PageState {
	c.mu.Lock()
	defer c.mu.Unlock()

	providers := make([]model.VoiceProvider, len(c.providers))
	copy(providers, c.providers)
	return dto.PageState{
		Providers:  providers,
		LastResult: c.lastResult,
		EditorOpen: c.editorOpen,
		EditingID:  c.editingID,
		Loading:    c.loading,
	}
}
