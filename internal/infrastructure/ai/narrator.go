package ai

import (
	"github.com/jhoicas/rfm-dashboard/internal/application/ports"
	"github.com/jhoicas/rfm-dashboard/pkg/config"
)

// NewNarrator elige el adaptador según AI_PROVIDER. Devuelve nil si no hay credenciales,
// lo que deshabilita la narrativa (HTTP 503).
func NewNarrator(cfg config.AIConfig) ports.InsightNarrator {
	if !cfg.Enabled() {
		return nil
	}
	if cfg.Provider == "gemini" {
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
	return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel)
}
