package main

import (
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/finguard/finguard/internal/narrative"
)

// createRewriter builds the narrative rewriter from configuration. A missing
// API key is not an error: the rewriter runs disabled and every result comes
// from the rule engine.
func createRewriter(logger *slog.Logger) (*narrative.Rewriter, error) {
	apiKey := viper.GetString("provider.api_key")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_AI_API_KEY")
	}
	if apiKey == "" {
		logger.Info("no narrative provider API key configured, running rule-engine only")
		return narrative.NewRewriter(nil, logger), nil
	}

	cfg := narrative.Config{
		APIKey:          apiKey,
		BaseURL:         viper.GetString("provider.base_url"),
		Model:           viper.GetString("provider.model"),
		Timeout:         viper.GetDuration("provider.timeout"),
		Temperature:     viper.GetFloat64("provider.temperature"),
		TopP:            viper.GetFloat64("provider.top_p"),
		TopK:            viper.GetInt("provider.top_k"),
		MaxOutputTokens: viper.GetInt("provider.max_output_tokens"),
	}

	client, err := narrative.NewGeminiClient(cfg)
	if err != nil {
		return nil, err
	}

	return narrative.NewRewriter(client, logger), nil
}
