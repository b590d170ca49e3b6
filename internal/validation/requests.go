package validation

import (
	"fmt"
	"time"

	"github.com/finguard/finguard/internal/model"
)

// RecentExpense is one historical expense as supplied on the wire. Dates
// arrive as strings so an unparsable timestamp surfaces as a field error
// rather than a JSON decode failure.
type RecentExpense struct {
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
}

// ClassifyRequest is the wire form of the Classify-Expense operation.
type ClassifyRequest struct {
	Category        string          `json:"category"`
	Description     string          `json:"description,omitempty"`
	RecentExpenses  []RecentExpense `json:"recentExpenses"`
	Amount          float64         `json:"amount"`
	MonthlyBudget   float64         `json:"monthlyBudget"`
	MonthlySpending float64         `json:"monthlySpending"`
}

// Validate checks every field and returns a *ValidationError naming each
// failure, or nil when the request is well-formed.
func (r *ClassifyRequest) Validate() error {
	var c collector

	if r.Amount <= 0 {
		c.add("amount", "must be a positive number")
	}
	if !model.Category(r.Category).IsValid() {
		c.add("category", "must be one of the known categories, got %q", r.Category)
	}
	if r.MonthlyBudget <= 0 {
		c.add("monthlyBudget", "must be a positive number")
	}
	if r.MonthlySpending < 0 {
		c.add("monthlySpending", "must not be negative")
	}

	for i, e := range r.RecentExpenses {
		if e.Amount <= 0 {
			c.add(fmt.Sprintf("recentExpenses[%d].amount", i), "must be a positive number")
		}
		if _, err := time.Parse(time.RFC3339, e.Date); err != nil {
			c.add(fmt.Sprintf("recentExpenses[%d].date", i), "must be an RFC 3339 timestamp, got %q", e.Date)
		}
	}

	return c.err()
}

// Proposal converts the validated request into the classifier's input types.
// Call only after Validate has passed; unparsable dates are zero here.
func (r *ClassifyRequest) Proposal(now time.Time) (model.ExpenseProposal, model.SpendingSnapshot) {
	recents := make([]model.Expense, 0, len(r.RecentExpenses))
	for _, e := range r.RecentExpenses {
		date, _ := time.Parse(time.RFC3339, e.Date)
		recents = append(recents, model.Expense{
			Amount:      e.Amount,
			Category:    model.Category(e.Category),
			Description: e.Description,
			Date:        date,
		})
	}

	proposal := model.ExpenseProposal{
		Amount:      r.Amount,
		Category:    model.Category(r.Category),
		Description: r.Description,
		Timestamp:   now,
	}
	snapshot := model.SpendingSnapshot{
		MonthlyBudget:   r.MonthlyBudget,
		MonthlySpending: r.MonthlySpending,
		RecentExpenses:  recents,
	}
	return proposal, snapshot
}

// InsightsRequest is the wire form of the Summarize-Period operation.
type InsightsRequest struct {
	CategoryBreakdown map[string]float64 `json:"categoryBreakdown,omitempty"`
	SavingsGoal       string             `json:"savingsGoal"`
	MonthlyIncome     float64            `json:"monthlyIncome"`
	MonthlyBudget     float64            `json:"monthlyBudget"`
	MonthTotal        float64            `json:"monthTotal"`
	SavingsTarget     float64            `json:"savingsTarget"`
	DaysElapsed       int                `json:"daysElapsed"`
	DaysInMonth       int                `json:"daysInMonth"`
	TransactionCount  int                `json:"transactionCount"`
}

// Validate checks every field and returns a *ValidationError naming each
// failure, or nil when the request is well-formed.
func (r *InsightsRequest) Validate() error {
	var c collector

	if r.MonthlyIncome <= 0 {
		c.add("monthlyIncome", "must be a positive number")
	}
	if r.MonthlyBudget <= 0 {
		c.add("monthlyBudget", "must be a positive number")
	}
	if r.MonthTotal < 0 {
		c.add("monthTotal", "must not be negative")
	}
	for cat, amount := range r.CategoryBreakdown {
		if !model.Category(cat).IsValid() {
			c.add(fmt.Sprintf("categoryBreakdown.%s", cat), "unknown category")
		}
		if amount < 0 {
			c.add(fmt.Sprintf("categoryBreakdown.%s", cat), "must not be negative")
		}
	}
	if r.DaysElapsed <= 0 {
		c.add("daysElapsed", "must be a positive number")
	}
	if r.DaysInMonth <= 0 {
		c.add("daysInMonth", "must be a positive number")
	}
	if r.DaysElapsed > 0 && r.DaysInMonth > 0 && r.DaysElapsed > r.DaysInMonth {
		c.add("daysElapsed", "must not exceed daysInMonth")
	}
	if r.SavingsTarget <= 0 {
		c.add("savingsTarget", "must be a positive number")
	}
	if r.TransactionCount < 0 {
		c.add("transactionCount", "must not be negative")
	}

	return c.err()
}

// Snapshot converts the validated request into the summarizer's input type.
func (r *InsightsRequest) Snapshot() model.InsightsSnapshot {
	breakdown := make(map[model.Category]float64, len(r.CategoryBreakdown))
	for cat, amount := range r.CategoryBreakdown {
		breakdown[model.Category(cat)] = amount
	}

	return model.InsightsSnapshot{
		MonthlyIncome:     r.MonthlyIncome,
		MonthlyBudget:     r.MonthlyBudget,
		MonthTotal:        r.MonthTotal,
		CategoryBreakdown: breakdown,
		DaysElapsed:       r.DaysElapsed,
		DaysInMonth:       r.DaysInMonth,
		SavingsGoal:       r.SavingsGoal,
		SavingsTarget:     r.SavingsTarget,
		TransactionCount:  r.TransactionCount,
	}
}
