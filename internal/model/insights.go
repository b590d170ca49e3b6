package model

// SpendingHealth is a qualitative label for how the month is going.
type SpendingHealth string

// Spending health labels, best to worst.
const (
	HealthExcellent SpendingHealth = "excellent"
	HealthGood      SpendingHealth = "good"
	HealthFair      SpendingHealth = "fair"
	HealthPoor      SpendingHealth = "poor"
)

// IsValid reports whether h is one of the known health labels.
func (h SpendingHealth) IsValid() bool {
	switch h {
	case HealthExcellent, HealthGood, HealthFair, HealthPoor:
		return true
	default:
		return false
	}
}

// InsightsSnapshot aggregates one user's period for the insights summarizer.
// Invariant: 1 <= DaysElapsed <= DaysInMonth, enforced by request validation.
type InsightsSnapshot struct {
	CategoryBreakdown map[Category]float64
	SavingsGoal       string
	MonthlyIncome     float64
	MonthlyBudget     float64
	MonthTotal        float64
	SavingsTarget     float64
	DaysElapsed       int
	DaysInMonth       int
	TransactionCount  int
}

// InsightCount is the exact number of narrative insights a result carries.
const InsightCount = 3

// InsightsResult is the outcome of summarizing one period.
type InsightsResult struct {
	MonthEndForecast string         `json:"monthEndForecast"`
	SavingsAdvice    string         `json:"savingsAdvice"`
	SpendingHealth   SpendingHealth `json:"spendingHealth"`
	Source           Source         `json:"source"`
	Insights         []string       `json:"insights"`
}
