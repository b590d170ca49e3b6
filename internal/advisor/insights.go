package advisor

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/finguard/finguard/internal/model"
)

// Spending health thresholds (percent of monthly budget used, strict).
const (
	healthExcellentBelow = 50
	healthGoodBelow      = 80
	healthFairBelow      = 100
)

// InsightFacts are the deterministic quantities behind an insights result.
type InsightFacts struct {
	BudgetPct       float64 // rounded to one decimal place
	DailyAvg        float64
	ProjectedSpend  float64
	ProjectedSave   float64
	BudgetRemaining float64
	DaysLeft        int
}

// Summarizer computes period insights from aggregated monthly totals.
// Pure function over its input, safe for concurrent use.
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer creates a summarizer.
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// Summarize produces the deterministic insights for one snapshot. Denominators
// that could be zero are clamped; a zero monthly budget is rejected upstream
// by request validation.
func (s *Summarizer) Summarize(snapshot model.InsightsSnapshot) (model.InsightsResult, InsightFacts) {
	facts := gatherInsightFacts(snapshot)

	health := model.HealthPoor
	switch {
	case facts.BudgetPct < healthExcellentBelow:
		health = model.HealthExcellent
	case facts.BudgetPct < healthGoodBelow:
		health = model.HealthGood
	case facts.BudgetPct < healthFairBelow:
		health = model.HealthFair
	}

	pace := fmt.Sprintf("Budget utilization: %s%% — tighten spending for the remaining %d days.",
		onePlace(facts.BudgetPct), facts.DaysLeft)
	if facts.BudgetPct < healthGoodBelow {
		pace = fmt.Sprintf("Budget utilization: %s%% — you're on track. Keep it up.", onePlace(facts.BudgetPct))
	}

	advice := "Reduce spending to start saving towards your goal."
	if facts.ProjectedSave > 0 {
		months := int(math.Ceil(snapshot.SavingsTarget / facts.ProjectedSave))
		advice = fmt.Sprintf("At Rs.%s/month, you'll reach your %s goal in %d months.",
			Rupees(facts.ProjectedSave), snapshot.SavingsGoal, months)
	}

	result := model.InsightsResult{
		Insights: []string{
			fmt.Sprintf("You've spent Rs.%s in %d days — averaging Rs.%s/day.",
				Rupees(snapshot.MonthTotal), snapshot.DaysElapsed, Rupees(facts.DailyAvg)),
			fmt.Sprintf("At this pace, month-end spending: Rs.%s, saving Rs.%s.",
				Rupees(facts.ProjectedSpend), Rupees(facts.ProjectedSave)),
			pace,
		},
		MonthEndForecast: fmt.Sprintf("Projected: Rs.%s spending, Rs.%s savings by month-end.",
			Rupees(facts.ProjectedSpend), Rupees(facts.ProjectedSave)),
		SavingsAdvice:  advice,
		SpendingHealth: health,
		Source:         model.SourceRuleEngine,
	}

	s.logger.Debug("period summarized",
		"budget_pct", facts.BudgetPct,
		"projected_spend", facts.ProjectedSpend,
		"projected_save", facts.ProjectedSave,
		"health", health)

	return result, facts
}

func gatherInsightFacts(snapshot model.InsightsSnapshot) InsightFacts {
	daysElapsed := snapshot.DaysElapsed
	if daysElapsed < 1 {
		daysElapsed = 1
	}

	// BudgetPct is rounded to one decimal before the health comparison so the
	// label always agrees with the percentage shown in the insight text.
	budgetPct := math.Round(snapshot.MonthTotal/snapshot.MonthlyBudget*100*10) / 10

	dailyAvg := math.Round(snapshot.MonthTotal / float64(daysElapsed))
	projectedSpend := math.Round(snapshot.MonthTotal / float64(daysElapsed) * float64(snapshot.DaysInMonth))
	projectedSave := math.Max(snapshot.MonthlyIncome-projectedSpend, 0)

	daysLeft := snapshot.DaysInMonth - snapshot.DaysElapsed
	if daysLeft < 1 {
		daysLeft = 1
	}

	return InsightFacts{
		BudgetPct:       budgetPct,
		DailyAvg:        dailyAvg,
		ProjectedSpend:  projectedSpend,
		ProjectedSave:   projectedSave,
		BudgetRemaining: math.Max(snapshot.MonthlyBudget-snapshot.MonthTotal, 0),
		DaysLeft:        daysLeft,
	}
}
