// Package narrative wraps the optional generative text provider. It restyles
// the rule engine's deterministic messages; it never decides the verdict.
// Any provider failure falls back to the deterministic result verbatim.
package narrative

import (
	"context"
	"time"
)

// Client defines the interface to a generative text provider.
type Client interface {
	// Generate sends a prompt and returns the provider's raw text response.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds configuration for the narrative provider.
//
// The sampling parameters affect lexical variety only; they never influence
// the deterministic severity, recommendation or percentage fields.
type Config struct {
	APIKey          string
	BaseURL         string
	Model           string
	Timeout         time.Duration
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
}

// Default provider settings.
const (
	DefaultBaseURL         = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel           = "gemma-3-27b-it"
	DefaultTimeout         = 15 * time.Second
	DefaultTemperature     = 0.85
	DefaultTopP            = 0.9
	DefaultTopK            = 30
	DefaultMaxOutputTokens = 500
)

// withDefaults fills in zero-valued fields.
func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.TopP == 0 {
		c.TopP = DefaultTopP
	}
	if c.TopK == 0 {
		c.TopK = DefaultTopK
	}
	if c.MaxOutputTokens == 0 {
		c.MaxOutputTokens = DefaultMaxOutputTokens
	}
	return c
}
