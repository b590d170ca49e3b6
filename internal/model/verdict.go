package model

// Severity is an ordered classification of how concerning an expense is.
type Severity string

// Severity levels, ordered low < medium < high < critical.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank returns the severity's position in the ordering, with low as 0.
// Unknown severities rank below low.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 0
	case SeverityMedium:
		return 1
	case SeverityHigh:
		return 2
	case SeverityCritical:
		return 3
	default:
		return -1
	}
}

// IsValid reports whether s is one of the known severity levels.
func (s Severity) IsValid() bool {
	return s.Rank() >= 0
}

// Recommendation is the suggested user action derived from severity.
type Recommendation string

// Recommendation values.
const (
	RecommendProceed Recommendation = "proceed"
	RecommendCaution Recommendation = "caution"
	RecommendStop    Recommendation = "stop"
)

// IsValid reports whether r is one of the known recommendations.
func (r Recommendation) IsValid() bool {
	switch r {
	case RecommendProceed, RecommendCaution, RecommendStop:
		return true
	default:
		return false
	}
}

// Source identifies which pipeline produced a result's prose.
type Source string

// Source values.
const (
	SourceRuleEngine Source = "rule-engine"
	SourceNarrative  Source = "narrative-provider"
)

// Verdict is the outcome of classifying one proposed expense.
//
// Severity and Recommendation are always consistent with the rule engine's
// threshold table: low pairs with proceed, critical with stop, and the middle
// severities with caution. BudgetAfter is the projected percentage of budget
// consumed after the purchase, formatted as a whole-number string.
type Verdict struct {
	Pattern        *string        `json:"pattern"`
	Severity       Severity       `json:"severity"`
	Message        string         `json:"message"`
	Recommendation Recommendation `json:"recommendation"`
	BudgetAfter    string         `json:"budgetAfter"`
	Source         Source         `json:"source"`
}
