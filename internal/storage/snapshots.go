package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/finguard/finguard/internal/model"
)

// SpendingSnapshot assembles the classifier's input for a user: the monthly
// budget from their profile, month-to-date spending, and the recent expense
// window.
func (s *Store) SpendingSnapshot(ctx context.Context, userID string, now time.Time) (model.SpendingSnapshot, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return model.SpendingSnapshot{}, err
	}

	agg, err := s.MonthAggregates(ctx, userID, now)
	if err != nil {
		return model.SpendingSnapshot{}, err
	}

	recents, err := s.RecentExpenses(ctx, userID, model.RecentExpenseWindow)
	if err != nil {
		return model.SpendingSnapshot{}, err
	}

	return model.SpendingSnapshot{
		MonthlyBudget:   profile.MonthlyBudget,
		MonthlySpending: agg.Total,
		RecentExpenses:  recents,
	}, nil
}

// InsightsSnapshot assembles the summarizer's input for a user from their
// profile and the current month's aggregates.
func (s *Store) InsightsSnapshot(ctx context.Context, userID string, now time.Time) (model.InsightsSnapshot, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return model.InsightsSnapshot{}, err
	}

	agg, err := s.MonthAggregates(ctx, userID, now)
	if err != nil {
		return model.InsightsSnapshot{}, err
	}

	daysInMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, 1, -1).Day()

	snapshot := model.InsightsSnapshot{
		MonthlyIncome:     profile.MonthlyIncome,
		MonthlyBudget:     profile.MonthlyBudget,
		MonthTotal:        agg.Total,
		CategoryBreakdown: agg.ByCategory,
		DaysElapsed:       now.Day(),
		DaysInMonth:       daysInMonth,
		SavingsGoal:       string(profile.SavingsGoal),
		SavingsTarget:     profile.SavingsTarget,
		TransactionCount:  agg.Count,
	}

	if snapshot.DaysElapsed > snapshot.DaysInMonth {
		return model.InsightsSnapshot{}, fmt.Errorf("days elapsed %d exceeds days in month %d", snapshot.DaysElapsed, snapshot.DaysInMonth)
	}

	return snapshot, nil
}
