package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finguard/finguard/internal/model"
)

func fieldPaths(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	paths := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		paths = append(paths, f.Path)
	}
	return paths
}

func TestClassifyRequestValidate(t *testing.T) {
	valid := ClassifyRequest{
		Amount:          500,
		Category:        "food",
		Description:     "lunch",
		MonthlyBudget:   30000,
		MonthlySpending: 12000,
		RecentExpenses: []RecentExpense{
			{Category: "food", Amount: 200, Date: "2026-08-14T12:00:00Z"},
		},
	}

	t.Run("valid request passes", func(t *testing.T) {
		r := valid
		assert.NoError(t, r.Validate())
	})

	tests := []struct {
		name      string
		mutate    func(*ClassifyRequest)
		wantPaths []string
	}{
		{
			name:      "zero amount",
			mutate:    func(r *ClassifyRequest) { r.Amount = 0 },
			wantPaths: []string{"amount"},
		},
		{
			name:      "negative amount",
			mutate:    func(r *ClassifyRequest) { r.Amount = -10 },
			wantPaths: []string{"amount"},
		},
		{
			name:      "unknown category",
			mutate:    func(r *ClassifyRequest) { r.Category = "gambling" },
			wantPaths: []string{"category"},
		},
		{
			name:      "zero budget",
			mutate:    func(r *ClassifyRequest) { r.MonthlyBudget = 0 },
			wantPaths: []string{"monthlyBudget"},
		},
		{
			name:      "negative spending",
			mutate:    func(r *ClassifyRequest) { r.MonthlySpending = -1 },
			wantPaths: []string{"monthlySpending"},
		},
		{
			name: "bad recent expense",
			mutate: func(r *ClassifyRequest) {
				r.RecentExpenses = append(r.RecentExpenses,
					RecentExpense{Category: "food", Amount: 0, Date: "yesterday"})
			},
			wantPaths: []string{"recentExpenses[1].amount", "recentExpenses[1].date"},
		},
		{
			name: "multiple failures reported together",
			mutate: func(r *ClassifyRequest) {
				r.Amount = 0
				r.Category = ""
				r.MonthlyBudget = -5
			},
			wantPaths: []string{"amount", "category", "monthlyBudget"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			r.RecentExpenses = append([]RecentExpense(nil), valid.RecentExpenses...)
			tt.mutate(&r)

			err := r.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.wantPaths, fieldPaths(t, err))
		})
	}
}

func TestClassifyRequestProposal(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	r := ClassifyRequest{
		Amount:          500,
		Category:        "food",
		Description:     "lunch",
		MonthlyBudget:   30000,
		MonthlySpending: 12000,
		RecentExpenses: []RecentExpense{
			{Category: "food", Description: "chai", Amount: 20, Date: "2026-08-14T08:30:00Z"},
		},
	}
	require.NoError(t, r.Validate())

	proposal, snapshot := r.Proposal(now)

	assert.Equal(t, now, proposal.Timestamp)
	assert.Equal(t, model.CategoryFood, proposal.Category)
	assert.InDelta(t, 500, proposal.Amount, 0.001)
	assert.InDelta(t, 30000, snapshot.MonthlyBudget, 0.001)
	require.Len(t, snapshot.RecentExpenses, 1)
	assert.Equal(t, time.Date(2026, 8, 14, 8, 30, 0, 0, time.UTC), snapshot.RecentExpenses[0].Date)
	assert.Equal(t, "chai", snapshot.RecentExpenses[0].Description)
}

func TestInsightsRequestValidate(t *testing.T) {
	valid := InsightsRequest{
		MonthlyIncome:    50000,
		MonthlyBudget:    30000,
		MonthTotal:       15000,
		SavingsGoal:      "emergency",
		SavingsTarget:    100000,
		DaysElapsed:      15,
		DaysInMonth:      31,
		TransactionCount: 12,
		CategoryBreakdown: map[string]float64{
			"food":      9000,
			"transport": 6000,
		},
	}

	t.Run("valid request passes", func(t *testing.T) {
		r := valid
		assert.NoError(t, r.Validate())
	})

	tests := []struct {
		name      string
		mutate    func(*InsightsRequest)
		wantPaths []string
	}{
		{
			name:      "zero income",
			mutate:    func(r *InsightsRequest) { r.MonthlyIncome = 0 },
			wantPaths: []string{"monthlyIncome"},
		},
		{
			name:      "negative month total",
			mutate:    func(r *InsightsRequest) { r.MonthTotal = -1 },
			wantPaths: []string{"monthTotal"},
		},
		{
			name: "unknown breakdown category",
			mutate: func(r *InsightsRequest) {
				r.CategoryBreakdown = map[string]float64{"crypto": 5000}
			},
			wantPaths: []string{"categoryBreakdown.crypto"},
		},
		{
			name: "negative breakdown amount",
			mutate: func(r *InsightsRequest) {
				r.CategoryBreakdown = map[string]float64{"food": -1}
			},
			wantPaths: []string{"categoryBreakdown.food"},
		},
		{
			name:      "days elapsed beyond month length",
			mutate:    func(r *InsightsRequest) { r.DaysElapsed = 32 },
			wantPaths: []string{"daysElapsed"},
		},
		{
			name:      "zero days in month",
			mutate:    func(r *InsightsRequest) { r.DaysInMonth = 0 },
			wantPaths: []string{"daysInMonth"},
		},
		{
			name:      "zero savings target",
			mutate:    func(r *InsightsRequest) { r.SavingsTarget = 0 },
			wantPaths: []string{"savingsTarget"},
		},
		{
			name:      "negative transaction count",
			mutate:    func(r *InsightsRequest) { r.TransactionCount = -1 },
			wantPaths: []string{"transactionCount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)

			err := r.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.wantPaths, fieldPaths(t, err))
		})
	}
}

func TestInsightsRequestSnapshot(t *testing.T) {
	r := InsightsRequest{
		MonthlyIncome:     50000,
		MonthlyBudget:     30000,
		MonthTotal:        15000,
		SavingsGoal:       "vacation",
		SavingsTarget:     100000,
		DaysElapsed:       15,
		DaysInMonth:       30,
		TransactionCount:  8,
		CategoryBreakdown: map[string]float64{"food": 9000},
	}

	snapshot := r.Snapshot()

	assert.Equal(t, "vacation", snapshot.SavingsGoal)
	assert.Equal(t, 15, snapshot.DaysElapsed)
	assert.Equal(t, map[model.Category]float64{model.CategoryFood: 9000}, snapshot.CategoryBreakdown)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Path: "amount", Message: "must be a positive number"},
		{Path: "category", Message: `must be one of the known categories, got "x"`},
	}}
	assert.Equal(t,
		`validation error: amount: must be a positive number; category: must be one of the known categories, got "x"`,
		err.Error())
}
