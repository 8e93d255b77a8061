package dto

import "github.com/cannahub/admin-console/internal/model"

type ProviderInput struct {
	Name         string   `json:"name" validate:"required,max=80" label:"Provider Name"`
	Kind         string   `json:"kind" validate:"required,oneof=elevenlabs azure polly local" label:"Provider Type"`
	APIBase      *string  `json:"api_base" validate:"omitempty,max=255" label:"API Base URL"`
	APIKey       string   `json:"api_key" validate:"omitempty,max=255" label:"API Key"`
	DefaultVoice string   `json:"default_voice" validate:"required,max=80" label:"Default Voice"`
	Voices       []string `json:"voices"`
	Enabled      bool     `json:"enabled"`
}

type SynthesisInput struct {
	ProviderID string `json:"provider_id" validate:"required" label:"Provider"`
	Voice      string `json:"voice" validate:"required,max=80" label:"Voice"`
	Text       string `json:"text" validate:"required,max=500" label:"Sample Text"`
}

type PageState struct {
	Providers  []model.VoiceProvider  `json:"providers"`
	LastResult *model.SynthesisResult `json:"last_result"`
	EditorOpen bool                   `json:"editor_open"`
	EditingID  string                 `json:"editing_id"`
	Loading    bool                   `json:"loading"`
}
