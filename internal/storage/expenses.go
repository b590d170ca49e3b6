package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finguard/finguard/internal/model"
)

// SaveExpense persists one expense. A missing ID is generated and a missing
// date defaults to now.
func (s *Store) SaveExpense(ctx context.Context, expense *model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if expense != nil && expense.Date.IsZero() {
		expense.Date = time.Now().UTC()
	}
	if err := validateExpense(expense); err != nil {
		return err
	}
	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, user_id, amount, category, description, date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.UserID, expense.Amount,
		string(expense.Category), expense.Description, expense.Date.UTC())
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	return nil
}

// RecentExpenses returns the user's most recent expenses, newest first,
// bounded by limit.
func (s *Store) RecentExpenses(ctx context.Context, userID string, limit int) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = model.RecentExpenseWindow
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, amount, category, description, date, created_at
		FROM expenses
		WHERE user_id = ?
		ORDER BY date DESC, created_at DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		var category string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &category, &e.Description, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Category = model.Category(category)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// MonthAggregates summarizes one user's spending within a calendar month.
type MonthAggregates struct {
	ByCategory map[model.Category]float64
	Total      float64
	Count      int
}

// MonthAggregates returns the month-to-date total, per-category breakdown and
// transaction count for the month containing ref.
func (s *Store) MonthAggregates(ctx context.Context, userID string, ref time.Time) (*MonthAggregates, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, 0)

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COALESCE(SUM(amount), 0), COUNT(*)
		FROM expenses
		WHERE user_id = ? AND date >= ? AND date < ?
		GROUP BY category`, userID, start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to query month aggregates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	agg := &MonthAggregates{ByCategory: make(map[model.Category]float64)}
	for rows.Next() {
		var category string
		var sum float64
		var count int
		if err := rows.Scan(&category, &sum, &count); err != nil {
			return nil, fmt.Errorf("failed to scan aggregate: %w", err)
		}
		agg.ByCategory[model.Category(category)] = sum
		agg.Total += sum
		agg.Count += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate aggregates: %w", err)
	}

	return agg, nil
}
