package narrative

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/finguard/finguard/internal/advisor"
	"github.com/finguard/finguard/internal/model"
)

// Rewriter restyles deterministic results through the generative provider.
//
// The provider is called at most once per request, under the client's hard
// timeout, and is only ever trusted for prose: severity, recommendation,
// budgetAfter and spendingHealth always come from the rule engine. On any
// failure the deterministic result is returned verbatim.
type Rewriter struct {
	client Client
	logger *slog.Logger
	seed   func(n int) int
}

// NewRewriter creates a rewriter around the given provider client. A nil
// client disables rewriting entirely; results pass through unchanged with
// source = rule-engine.
func NewRewriter(client Client, logger *slog.Logger) *Rewriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Rewriter{
		client: client,
		logger: logger,
		seed:   rand.Intn,
	}
}

// Enabled reports whether a provider client is configured.
func (r *Rewriter) Enabled() bool {
	return r.client != nil
}

// RewriteVerdict asks the provider to restate the verdict. The returned
// verdict always carries the deterministic severity, recommendation and
// budgetAfter; only message and pattern may be replaced.
func (r *Rewriter) RewriteVerdict(ctx context.Context, proposal model.ExpenseProposal, facts advisor.Facts, verdict model.Verdict) model.Verdict {
	if r.client == nil {
		return verdict
	}

	prompt := buildVerdictPrompt(proposal, facts, r.seed(1000))

	text, err := r.client.Generate(ctx, prompt)
	if err != nil {
		r.logger.Warn("narrative provider call failed, using rule engine verdict", "error", err)
		return verdict
	}

	payload, err := parseVerdictPayload(text)
	if err != nil {
		r.logger.Warn("narrative provider returned invalid payload, using rule engine verdict", "error", err)
		return verdict
	}

	rewritten := verdict
	rewritten.Message = payload.Message
	rewritten.Pattern = payload.Pattern
	rewritten.Source = model.SourceNarrative

	r.logger.Debug("verdict rewritten by narrative provider",
		"severity", rewritten.Severity,
		"recommendation", rewritten.Recommendation)

	return rewritten
}

// RewriteInsights asks the provider to restate the period summary. The
// returned result always carries the deterministic spendingHealth; only the
// prose fields may be replaced.
func (r *Rewriter) RewriteInsights(ctx context.Context, snapshot model.InsightsSnapshot, facts advisor.InsightFacts, result model.InsightsResult) model.InsightsResult {
	if r.client == nil {
		return result
	}

	prompt := buildInsightsPrompt(snapshot, facts, r.seed(10000))

	text, err := r.client.Generate(ctx, prompt)
	if err != nil {
		r.logger.Warn("narrative provider call failed, using rule engine insights", "error", err)
		return result
	}

	payload, err := parseInsightsPayload(text)
	if err != nil {
		r.logger.Warn("narrative provider returned invalid payload, using rule engine insights", "error", err)
		return result
	}

	rewritten := result
	rewritten.Insights = payload.Insights
	rewritten.MonthEndForecast = payload.MonthEndForecast
	rewritten.SavingsAdvice = payload.SavingsAdvice
	rewritten.Source = model.SourceNarrative

	return rewritten
}
