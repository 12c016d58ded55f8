// Package llm provides the model configuration and client used for text enrichment.
package llm

import (
	"fmt"
	"time"
)

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for short rewrites such as bullet points
	TierLite ModelTier = "lite"
	// TierStandard is for summaries and general generation
	TierStandard ModelTier = "standard"
	// TierAdvanced is for whole-document analysis
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider, currently the only one.
const ProviderGemini Provider = "gemini"

// DefaultTemperature favors varied phrasing over determinism.
const DefaultTemperature float32 = 0.7

// Defaults for a single enrichment call. Analysis of a full résumé is the
// longest completion the editor asks for.
const (
	DefaultTimeout         = 60 * time.Second
	DefaultMaxOutputTokens = 2048
)

// Config holds the model configuration for the application
type Config struct {
	Provider        Provider
	Models          map[ModelTier]string
	Temperature     float32
	MaxOutputTokens int32         // 0 leaves the provider default
	Timeout         time.Duration // 0 relies on the caller's context
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature:     DefaultTemperature,
		MaxOutputTokens: DefaultMaxOutputTokens,
		Timeout:         DefaultTimeout,
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider:        c.Provider,
		Models:          make(map[ModelTier]string, len(c.Models)+1),
		Temperature:     c.Temperature,
		MaxOutputTokens: c.MaxOutputTokens,
		Timeout:         c.Timeout,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}

// ParseTier converts a tier name from configuration.
func ParseTier(name string) (ModelTier, error) {
	switch tier := ModelTier(name); tier {
	case TierLite, TierStandard, TierAdvanced:
		return tier, nil
	case "":
		return TierStandard, nil
	}
	return "", fmt.Errorf("unknown model tier: %s", name)
}
