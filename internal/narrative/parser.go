package narrative

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/finguard/finguard/internal/model"
)

// extractJSON pulls the first JSON object out of a provider response, which
// may be wrapped in markdown fences or surrounding prose.
func extractJSON(text string) ([]byte, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON object found in response")
	}
	return []byte(text[start : end+1]), nil
}

// verdictPayload is the JSON shape the provider is instructed to return for
// an intervention.
type verdictPayload struct {
	Severity       string  `json:"severity"`
	Message        string  `json:"message"`
	Recommendation string  `json:"recommendation"`
	Pattern        *string `json:"pattern"`
}

// parseVerdictPayload extracts and validates an intervention response. The
// provider's severity and recommendation must be valid enum values even
// though only its prose is ever adopted; anything else is discarded.
func parseVerdictPayload(text string) (*verdictPayload, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var payload verdictPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if !model.Severity(payload.Severity).IsValid() {
		return nil, fmt.Errorf("invalid severity %q in response", payload.Severity)
	}
	if !model.Recommendation(payload.Recommendation).IsValid() {
		return nil, fmt.Errorf("invalid recommendation %q in response", payload.Recommendation)
	}
	if strings.TrimSpace(payload.Message) == "" {
		return nil, fmt.Errorf("empty message in response")
	}

	// Models often render the literal string "null" for an absent pattern.
	if payload.Pattern != nil {
		trimmed := strings.TrimSpace(*payload.Pattern)
		if trimmed == "" || strings.EqualFold(trimmed, "null") || strings.EqualFold(trimmed, "none") {
			payload.Pattern = nil
		}
	}

	return &payload, nil
}

// insightsPayload is the JSON shape the provider is instructed to return for
// a period summary.
type insightsPayload struct {
	MonthEndForecast string   `json:"monthEndForecast"`
	SavingsAdvice    string   `json:"savingsAdvice"`
	SpendingHealth   string   `json:"spendingHealth"`
	Insights         []string `json:"insights"`
}

// parseInsightsPayload extracts and validates an insights response. Exactly
// three non-empty insight strings are required.
func parseInsightsPayload(text string) (*insightsPayload, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var payload insightsPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if len(payload.Insights) != model.InsightCount {
		return nil, fmt.Errorf("expected %d insights, got %d", model.InsightCount, len(payload.Insights))
	}
	for i, insight := range payload.Insights {
		if strings.TrimSpace(insight) == "" {
			return nil, fmt.Errorf("empty insight at index %d", i)
		}
	}
	if strings.TrimSpace(payload.MonthEndForecast) == "" {
		return nil, fmt.Errorf("empty month-end forecast in response")
	}
	if strings.TrimSpace(payload.SavingsAdvice) == "" {
		return nil, fmt.Errorf("empty savings advice in response")
	}
	if !model.SpendingHealth(payload.SpendingHealth).IsValid() {
		return nil, fmt.Errorf("invalid spending health %q in response", payload.SpendingHealth)
	}

	return &payload, nil
}
