package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/finguard/finguard/internal/common"
	"github.com/finguard/finguard/internal/model"
)

// SaveProfile inserts or updates a user's profile.
func (s *Store) SaveProfile(ctx context.Context, profile *model.Profile) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("%w: profile", ErrNilParameter)
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, monthly_income, monthly_budget, weekly_limit, savings_goal, savings_target)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			monthly_income = excluded.monthly_income,
			monthly_budget = excluded.monthly_budget,
			weekly_limit = excluded.weekly_limit,
			savings_goal = excluded.savings_goal,
			savings_target = excluded.savings_target,
			updated_at = CURRENT_TIMESTAMP`,
		profile.UserID, profile.MonthlyIncome, profile.MonthlyBudget,
		profile.WeeklyLimit, string(profile.SavingsGoal), profile.SavingsTarget)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// GetProfile retrieves a user's profile. Returns common.ErrNotFound when the
// user has not completed onboarding.
func (s *Store) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	var profile model.Profile
	var goal string
	err := s.db.QueryRowContext(ctx, `
		SELECT user_id, monthly_income, monthly_budget, weekly_limit, savings_goal, savings_target, created_at, updated_at
		FROM profiles WHERE user_id = ?`, userID).Scan(
		&profile.UserID, &profile.MonthlyIncome, &profile.MonthlyBudget,
		&profile.WeeklyLimit, &goal, &profile.SavingsTarget,
		&profile.CreatedAt, &profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile for user %s: %w", userID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile.SavingsGoal = model.SavingsGoal(goal)
	return &profile, nil
}
