package advisor

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/finguard/finguard/internal/model"
)

// Budget utilization thresholds (percent of monthly budget after purchase).
const (
	thresholdCritical = 100
	thresholdHigh     = 85
	thresholdMedium   = 60
)

// Price ratio thresholds (proposed amount over the matched range's max).
const (
	ratioOverpriced = 3.0
	ratioAbsurd     = 5.0
	ratioPricey     = 1.5
)

// patternThreshold is how many recent same-category expenses constitute a
// repeated-category pattern.
const patternThreshold = 3

// Facts are the deterministic quantities the classifier derived from one
// proposal and snapshot. They feed both the rule-engine message and the
// narrative provider prompt.
type Facts struct {
	MatchedItem       string
	MatchedRange      PriceRange
	MonthlyBudget     float64
	PercentUsed       float64
	AfterPurchase     float64
	Remaining         float64
	TodaySpent        float64
	PriceRatio        float64
	SameCategoryCount int
	TotalLogged       int
}

// Classifier produces a Verdict for a proposed expense against a spending
// snapshot. It performs no I/O and is safe for concurrent use.
type Classifier struct {
	logger *slog.Logger
	clock  func() time.Time
}

// NewClassifier creates a classifier using the system clock.
func NewClassifier(logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		logger: logger,
		clock:  time.Now,
	}
}

// Classify evaluates one proposal against the snapshot and returns the
// deterministic verdict plus the facts behind it. It never fails; malformed
// input is rejected upstream by request validation.
func (c *Classifier) Classify(proposal model.ExpenseProposal, snapshot model.SpendingSnapshot) (model.Verdict, Facts) {
	facts := c.gatherFacts(proposal, snapshot)
	verdict := buildVerdict(proposal, facts)

	c.logger.Debug("expense classified",
		"category", proposal.Category,
		"amount", proposal.Amount,
		"severity", verdict.Severity,
		"recommendation", verdict.Recommendation,
		"budget_after", verdict.BudgetAfter,
		"price_ratio", facts.PriceRatio)

	return verdict, facts
}

func (c *Classifier) gatherFacts(proposal model.ExpenseProposal, snapshot model.SpendingSnapshot) Facts {
	percentUsed := snapshot.MonthlySpending / snapshot.MonthlyBudget * 100
	afterPurchase := percentUsed + proposal.Amount/snapshot.MonthlyBudget*100

	sameCategory := 0
	todaySpent := 0.0
	today := c.clock()
	for _, e := range snapshot.RecentExpenses {
		if e.Category == proposal.Category {
			sameCategory++
		}
		if sameCalendarDay(e.Date, today) {
			todaySpent += e.Amount
		}
	}

	rng, matched := MatchPriceRange(proposal.Description, proposal.Category)

	return Facts{
		MonthlyBudget:     snapshot.MonthlyBudget,
		PercentUsed:       percentUsed,
		AfterPurchase:     afterPurchase,
		Remaining:         snapshot.MonthlyBudget - snapshot.MonthlySpending,
		TodaySpent:        todaySpent,
		SameCategoryCount: sameCategory,
		TotalLogged:       len(snapshot.RecentExpenses),
		MatchedItem:       matched,
		MatchedRange:      rng,
		PriceRatio:        proposal.Amount / rng.Max,
	}
}

// buildVerdict applies the threshold table. The price sanity check takes
// precedence over the budget rules; a ratio below 1.5 means price is never
// mentioned in the message.
func buildVerdict(proposal model.ExpenseProposal, facts Facts) model.Verdict {
	var (
		severity       model.Severity
		recommendation model.Recommendation
		message        string
	)

	subject := proposal.Description
	if subject == "" {
		subject = string(proposal.Category)
	}

	switch {
	case facts.PriceRatio >= ratioOverpriced:
		severity = model.SeverityHigh
		recommendation = model.RecommendCaution
		if facts.PriceRatio >= ratioAbsurd {
			severity = model.SeverityCritical
			recommendation = model.RecommendStop
		}
		message = fmt.Sprintf("Rs.%s for %s? That's way above typical pricing for %s (Rs.%.0f-%.0f). Double-check this amount.",
			wholePercent(proposal.Amount), subject, facts.MatchedItem, facts.MatchedRange.Min, facts.MatchedRange.Max)

	case facts.PriceRatio >= ratioPricey:
		severity = model.SeverityMedium
		if facts.AfterPurchase > 80 {
			severity = model.SeverityHigh
		}
		recommendation = model.RecommendCaution
		message = fmt.Sprintf("Rs.%s is on the higher side for %s (typical: Rs.%.0f-%.0f). You have Rs.%s left in your budget — make sure this is worth it.",
			wholePercent(proposal.Amount), facts.MatchedItem, facts.MatchedRange.Min, facts.MatchedRange.Max, Rupees(facts.Remaining))

	case facts.AfterPurchase > thresholdCritical:
		severity = model.SeverityCritical
		recommendation = model.RecommendStop
		message = fmt.Sprintf("This purchase of Rs.%s will push you over your Rs.%s budget. You've already spent %s%%. I strongly recommend reconsidering.",
			wholePercent(proposal.Amount), Rupees(facts.MonthlyBudget), wholePercent(facts.PercentUsed))

	case facts.AfterPurchase > thresholdHigh:
		severity = model.SeverityHigh
		recommendation = model.RecommendCaution
		repeat := ""
		if facts.SameCategoryCount >= 2 {
			repeat = fmt.Sprintf(" You've made %d %s purchases recently.", facts.SameCategoryCount, proposal.Category)
		}
		message = fmt.Sprintf("You're at %s%% of your budget. This Rs.%s %s expense will bring you to %s%%.%s Consider if this is essential.",
			wholePercent(facts.PercentUsed), wholePercent(proposal.Amount), proposal.Category, wholePercent(facts.AfterPurchase), repeat)

	case facts.AfterPurchase > thresholdMedium || facts.SameCategoryCount >= patternThreshold:
		severity = model.SeverityMedium
		recommendation = model.RecommendCaution
		message = mediumMessage(proposal, facts)

	default:
		severity = model.SeverityLow
		recommendation = model.RecommendProceed
		message = fmt.Sprintf("You're well within your budget at %s%%. Rs.%s for %s is perfectly fine. You still have Rs.%s available. Go ahead!",
			wholePercent(facts.PercentUsed), wholePercent(proposal.Amount), proposal.Category, Rupees(facts.Remaining))
	}

	var pattern *string
	if facts.SameCategoryCount >= patternThreshold {
		p := fmt.Sprintf("Frequent %s spending detected", proposal.Category)
		pattern = &p
	}

	return model.Verdict{
		Severity:       severity,
		Message:        message,
		Recommendation: recommendation,
		Pattern:        pattern,
		BudgetAfter:    wholePercent(facts.AfterPurchase),
		Source:         model.SourceRuleEngine,
	}
}

// mediumMessage picks among the medium-severity variants: a high-spend day
// warning first, then a repeated-category callout, then the generic note.
func mediumMessage(proposal model.ExpenseProposal, facts Facts) string {
	switch {
	case facts.TodaySpent > facts.MonthlyBudget*0.1:
		return fmt.Sprintf("You've already spent Rs.%s today. Adding Rs.%s for %s makes today a high-spend day. Be mindful of the pattern.",
			wholePercent(facts.TodaySpent), wholePercent(proposal.Amount), proposal.Category)
	case facts.SameCategoryCount >= patternThreshold:
		return fmt.Sprintf("You've logged %d %s expenses recently. This is becoming a pattern. You have Rs.%s left, so you can afford it, but watch this category closely.",
			facts.SameCategoryCount, proposal.Category, Rupees(facts.Remaining))
	default:
		return fmt.Sprintf("Your budget is at %s%% with Rs.%s remaining. This Rs.%s purchase is reasonable. Stay consistent.",
			wholePercent(facts.PercentUsed), Rupees(facts.Remaining), wholePercent(proposal.Amount))
	}
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
