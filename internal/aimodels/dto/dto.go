package dto

import (
	"github.com/cannahub/admin-console/internal/action"
	"github.com/cannahub/admin-console/internal/model"
)

type ConfigurationInput struct {
	DefaultModel     string         `json:"default_model" validate:"required,max=120" label:"Default Model"`
	MaxTokens        int            `json:"max_tokens" validate:"gte=1,lte=128000" label:"Max Tokens"`
	Temperature      float64        `json:"temperature" validate:"gte=0,lte=2" label:"Temperature"`
	SystemPrompt     string         `json:"system_prompt" validate:"max=8000" label:"System Prompt"`
	ProviderSettings map[string]any `json:"provider_settings"`
}

type ModelRow struct {
	model.AIModel
	Actions []action.Action `json:"actions"`
}

type PageState struct {
	ActiveTab   string                `json:"active_tab"`
	Models      []ModelRow            `json:"models"`
	RouterStats *model.RouterStats    `json:"router_stats"`
	Config      *model.PlatformConfig `json:"config"`
	Loading     bool                  `json:"loading"`
	Polling     bool                  `json:"polling"`
}
