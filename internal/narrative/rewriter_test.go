package narrative

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finguard/finguard/internal/advisor"
	"github.com/finguard/finguard/internal/model"
)

func baseVerdict() model.Verdict {
	return model.Verdict{
		Severity:       model.SeverityHigh,
		Message:        "You're at 85% of your budget.",
		Recommendation: model.RecommendCaution,
		BudgetAfter:    "92",
		Source:         model.SourceRuleEngine,
	}
}

func baseProposal() (model.ExpenseProposal, advisor.Facts) {
	proposal := model.ExpenseProposal{
		Amount:      2000,
		Category:    model.CategoryFood,
		Description: "dinner",
	}
	facts := advisor.Facts{
		MatchedItem:   "dinner",
		MatchedRange:  advisor.PriceRange{Min: 100, Max: 500},
		MonthlyBudget: 30000,
		PercentUsed:   85,
		AfterPurchase: 91.7,
		Remaining:     4500,
		PriceRatio:    4,
	}
	return proposal, facts
}

func baseInsights() (model.InsightsSnapshot, advisor.InsightFacts, model.InsightsResult) {
	snapshot := model.InsightsSnapshot{
		MonthlyIncome: 50000,
		MonthlyBudget: 30000,
		MonthTotal:    15000,
		SavingsGoal:   "emergency",
		SavingsTarget: 100000,
		DaysElapsed:   15,
		DaysInMonth:   30,
	}
	facts := advisor.InsightFacts{
		BudgetPct:      50.0,
		DailyAvg:       1000,
		ProjectedSpend: 30000,
		ProjectedSave:  20000,
		DaysLeft:       15,
	}
	result := model.InsightsResult{
		Insights:         []string{"one", "two", "three"},
		MonthEndForecast: "Projected: Rs.30,000 spending.",
		SavingsAdvice:    "Keep saving.",
		SpendingHealth:   model.HealthGood,
		Source:           model.SourceRuleEngine,
	}
	return snapshot, facts, result
}

func TestRewriteVerdictAdoptsProseOnly(t *testing.T) {
	client := &MockClient{
		GenerateFunc: func(_ context.Context, _ string) (string, error) {
			// The provider disagrees on severity; only its prose may survive.
			return `{"severity": "low", "message": "Whoa, Rs.2,000 for dinner is steep!", "recommendation": "proceed", "pattern": null}`, nil
		},
	}
	r := NewRewriter(client, nil)

	proposal, facts := baseProposal()
	verdict := r.RewriteVerdict(context.Background(), proposal, facts, baseVerdict())

	assert.Equal(t, model.SeverityHigh, verdict.Severity)
	assert.Equal(t, model.RecommendCaution, verdict.Recommendation)
	assert.Equal(t, "92", verdict.BudgetAfter)
	assert.Equal(t, "Whoa, Rs.2,000 for dinner is steep!", verdict.Message)
	assert.Equal(t, model.SourceNarrative, verdict.Source)
	assert.Nil(t, verdict.Pattern)
}

func TestRewriteVerdictFallsBackOnError(t *testing.T) {
	tests := []struct {
		name   string
		client *MockClient
	}{
		{
			name:   "provider timeout",
			client: &MockClient{}, // default GenerateFunc returns DeadlineExceeded
		},
		{
			name: "non-JSON response",
			client: &MockClient{
				GenerateFunc: func(_ context.Context, _ string) (string, error) {
					return "I think you should skip this purchase.", nil
				},
			},
		},
		{
			name: "invalid severity enum",
			client: &MockClient{
				GenerateFunc: func(_ context.Context, _ string) (string, error) {
					return `{"severity": "extreme", "message": "stop", "recommendation": "caution", "pattern": null}`, nil
				},
			},
		},
		{
			name: "empty message",
			client: &MockClient{
				GenerateFunc: func(_ context.Context, _ string) (string, error) {
					return `{"severity": "high", "message": "  ", "recommendation": "caution", "pattern": null}`, nil
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRewriter(tt.client, nil)
			proposal, facts := baseProposal()

			want := baseVerdict()
			got := r.RewriteVerdict(context.Background(), proposal, facts, want)

			assert.Equal(t, want, got)
			assert.Equal(t, model.SourceRuleEngine, got.Source)
		})
	}
}

func TestRewriteVerdictNilClientPassesThrough(t *testing.T) {
	r := NewRewriter(nil, nil)
	assert.False(t, r.Enabled())

	proposal, facts := baseProposal()
	want := baseVerdict()
	got := r.RewriteVerdict(context.Background(), proposal, facts, want)

	assert.Equal(t, want, got)
}

func TestRewriteVerdictPromptCarriesFacts(t *testing.T) {
	client := &MockClient{}
	r := NewRewriter(client, nil)

	proposal, facts := baseProposal()
	r.RewriteVerdict(context.Background(), proposal, facts, baseVerdict())

	require.Len(t, client.Prompts, 1)
	prompt := client.Prompts[0]
	assert.Contains(t, prompt, "dinner")
	assert.Contains(t, prompt, "Rs.2000 for food (dinner)")
	assert.Contains(t, prompt, "Monthly budget: Rs.30,000")
}

func TestRewriteInsightsAdoptsProseOnly(t *testing.T) {
	client := &MockClient{
		GenerateFunc: func(_ context.Context, _ string) (string, error) {
			return `{"insights": ["a", "b", "c"], "monthEndForecast": "fresh forecast", "savingsAdvice": "fresh advice", "spendingHealth": "poor"}`, nil
		},
	}
	r := NewRewriter(client, nil)

	snapshot, facts, result := baseInsights()
	got := r.RewriteInsights(context.Background(), snapshot, facts, result)

	assert.Equal(t, []string{"a", "b", "c"}, got.Insights)
	assert.Equal(t, "fresh forecast", got.MonthEndForecast)
	assert.Equal(t, "fresh advice", got.SavingsAdvice)
	// Health is deterministic; the provider's "poor" is ignored.
	assert.Equal(t, model.HealthGood, got.SpendingHealth)
	assert.Equal(t, model.SourceNarrative, got.Source)
}

func TestRewriteInsightsFallsBackOnBadPayload(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{
			name:     "too few insights",
			response: `{"insights": ["a", "b"], "monthEndForecast": "f", "savingsAdvice": "s", "spendingHealth": "good"}`,
		},
		{
			name:     "blank insight",
			response: `{"insights": ["a", " ", "c"], "monthEndForecast": "f", "savingsAdvice": "s", "spendingHealth": "good"}`,
		},
		{
			name:     "invalid health enum",
			response: `{"insights": ["a", "b", "c"], "monthEndForecast": "f", "savingsAdvice": "s", "spendingHealth": "great"}`,
		},
		{
			name:     "missing forecast",
			response: `{"insights": ["a", "b", "c"], "savingsAdvice": "s", "spendingHealth": "good"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &MockClient{
				GenerateFunc: func(_ context.Context, _ string) (string, error) {
					return tt.response, nil
				},
			}
			r := NewRewriter(client, nil)

			snapshot, facts, want := baseInsights()
			got := r.RewriteInsights(context.Background(), snapshot, facts, want)

			assert.Equal(t, want, got)
		})
	}
}
