package model

import "time"

const (
	ModelStatusLoaded   = "loaded"
	ModelStatusLoading  = "loading"
	ModelStatusUnloaded = "unloaded"
)

// AIModel is an inference model file managed by the platform's model server.
type AIModel struct {
	Name      string     `json:"name"`
	Filename  string     `json:"filename"`
	Path      string     `json:"path"`
	SizeBytes int64      `json:"size_bytes"`
	Status    string     `json:"status"`
	LoadedAt  *time.Time `json:"loaded_at"`
}

// RouterStats mirrors GET /api/admin/router/stats.
type RouterStats struct {
	Enabled         bool             `json:"enabled"`
	TotalRequests   int64            `json:"total_requests"`
	FailedRequests  int64            `json:"failed_requests"`
	ProviderCounts  map[string]int64 `json:"provider_counts"`
	AvgLatencyMs    float64          `json:"avg_latency_ms"`
	ActiveProviders []string         `json:"active_providers"`
}

// PlatformConfig mirrors GET /api/admin/configuration. The console edits it
// as an opaque key/value document; validation happens upstream.
type PlatformConfig struct {
	DefaultModel     string         `json:"default_model"`
	MaxTokens        int            `json:"max_tokens"`
	Temperature      float64        `json:"temperature"`
	SystemPrompt     string         `json:"system_prompt"`
	ProviderSettings map[string]any `json:"provider_settings"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type VoiceProvider struct {
	BaseModel
	Name         string   `json:"name"`
	Kind         string   `json:"kind"` // elevenlabs, azure, polly, local
	APIBase      *string  `json:"api_base"`
	DefaultVoice string   `json:"default_voice"`
	Voices       []string `json:"voices"`
	Enabled      bool     `json:"enabled"`
}

// SynthesisResult is the outcome of a voice-synthesis test call.
type SynthesisResult struct {
	ProviderID string  `json:"provider_id"`
	Voice      string  `json:"voice"`
	AudioURL   *string `json:"audio_url"`
	DurationMs int64   `json:"duration_ms"`
}
