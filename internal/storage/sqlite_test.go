package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finguard/finguard/internal/common"
	"github.com/finguard/finguard/internal/model"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func testProfile(userID string) *model.Profile {
	return &model.Profile{
		UserID:        userID,
		MonthlyIncome: 50000,
		MonthlyBudget: 30000,
		WeeklyLimit:   8000,
		SavingsGoal:   model.GoalEmergency,
		SavingsTarget: 100000,
	}
}

func TestMigrate(t *testing.T) {
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))

	var version int
	require.NoError(t, store.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
	assert.Equal(t, ExpectedSchemaVersion, version)

	// Running migrations again must be a no-op.
	require.NoError(t, store.Migrate(ctx))
}

func TestProfileRoundTrip(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	profile := testProfile("user-1")
	require.NoError(t, store.SaveProfile(ctx, profile))

	got, err := store.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.InDelta(t, 30000, got.MonthlyBudget, 0.001)
	assert.Equal(t, model.GoalEmergency, got.SavingsGoal)
	assert.False(t, got.CreatedAt.IsZero())

	// Saving again updates in place.
	profile.MonthlyBudget = 25000
	require.NoError(t, store.SaveProfile(ctx, profile))

	got, err = store.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.InDelta(t, 25000, got.MonthlyBudget, 0.001)
}

func TestGetProfileNotFound(t *testing.T) {
	store := createTestStore(t)

	_, err := store.GetProfile(context.Background(), "nobody")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSaveExpenseDefaults(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	expense := &model.Expense{
		UserID:   "user-1",
		Category: model.CategoryFood,
		Amount:   250,
	}
	require.NoError(t, store.SaveExpense(ctx, expense))

	assert.NotEmpty(t, expense.ID)
	assert.False(t, expense.Date.IsZero())

	got, err := store.RecentExpenses(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, expense.ID, got[0].ID)
	assert.Equal(t, model.CategoryFood, got[0].Category)
}

func TestSaveExpenseRejectsInvalid(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.SaveExpense(ctx, nil), ErrNilParameter)

	tests := []struct {
		name    string
		expense *model.Expense
	}{
		{name: "missing user", expense: &model.Expense{Category: model.CategoryFood, Amount: 100}},
		{name: "zero amount", expense: &model.Expense{UserID: "u", Category: model.CategoryFood}},
		{name: "unknown category", expense: &model.Expense{UserID: "u", Category: "misc", Amount: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.SaveExpense(ctx, tt.expense)
			assert.ErrorIs(t, err, ErrInvalidExpense)
		})
	}
}

func TestRecentExpensesOrderAndLimit(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveExpense(ctx, &model.Expense{
			UserID:   "user-1",
			Category: model.CategoryFood,
			Amount:   float64(100 + i),
			Date:     base.AddDate(0, 0, i),
		}))
	}

	got, err := store.RecentExpenses(ctx, "user-1", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Newest first.
	assert.InDelta(t, 104, got[0].Amount, 0.001)
	assert.InDelta(t, 102, got[2].Amount, 0.001)

	// A non-positive limit falls back to the default window.
	got, err = store.RecentExpenses(ctx, "user-1", 0)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestMonthAggregates(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	expenses := []model.Expense{
		{UserID: "user-1", Category: model.CategoryFood, Amount: 500, Date: now.AddDate(0, 0, -1)},
		{UserID: "user-1", Category: model.CategoryFood, Amount: 300, Date: now.AddDate(0, 0, -2)},
		{UserID: "user-1", Category: model.CategoryTransport, Amount: 200, Date: now.AddDate(0, 0, -3)},
		// Previous month, excluded.
		{UserID: "user-1", Category: model.CategoryFood, Amount: 9999, Date: now.AddDate(0, -1, 0)},
		// Different user, excluded.
		{UserID: "user-2", Category: model.CategoryFood, Amount: 700, Date: now.AddDate(0, 0, -1)},
	}
	for i := range expenses {
		require.NoError(t, store.SaveExpense(ctx, &expenses[i]))
	}

	agg, err := store.MonthAggregates(ctx, "user-1", now)
	require.NoError(t, err)
	assert.InDelta(t, 1000, agg.Total, 0.001)
	assert.Equal(t, 3, agg.Count)
	assert.InDelta(t, 800, agg.ByCategory[model.CategoryFood], 0.001)
	assert.InDelta(t, 200, agg.ByCategory[model.CategoryTransport], 0.001)
}

func TestSpendingSnapshot(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveProfile(ctx, testProfile("user-1")))
	require.NoError(t, store.SaveExpense(ctx, &model.Expense{
		UserID: "user-1", Category: model.CategoryFood, Amount: 1200, Date: now.AddDate(0, 0, -1),
	}))

	snapshot, err := store.SpendingSnapshot(ctx, "user-1", now)
	require.NoError(t, err)
	assert.InDelta(t, 30000, snapshot.MonthlyBudget, 0.001)
	assert.InDelta(t, 1200, snapshot.MonthlySpending, 0.001)
	require.Len(t, snapshot.RecentExpenses, 1)
}

func TestSpendingSnapshotMissingProfile(t *testing.T) {
	store := createTestStore(t)

	_, err := store.SpendingSnapshot(context.Background(), "nobody", time.Now())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestInsightsSnapshot(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveProfile(ctx, testProfile("user-1")))
	for _, e := range []model.Expense{
		{UserID: "user-1", Category: model.CategoryFood, Amount: 800, Date: now.AddDate(0, 0, -2)},
		{UserID: "user-1", Category: model.CategoryShopping, Amount: 2000, Date: now.AddDate(0, 0, -5)},
	} {
		expense := e
		require.NoError(t, store.SaveExpense(ctx, &expense))
	}

	snapshot, err := store.InsightsSnapshot(ctx, "user-1", now)
	require.NoError(t, err)
	assert.InDelta(t, 50000, snapshot.MonthlyIncome, 0.001)
	assert.InDelta(t, 2800, snapshot.MonthTotal, 0.001)
	assert.Equal(t, 15, snapshot.DaysElapsed)
	assert.Equal(t, 31, snapshot.DaysInMonth)
	assert.Equal(t, 2, snapshot.TransactionCount)
	assert.Equal(t, "emergency", snapshot.SavingsGoal)
	assert.InDelta(t, 2000, snapshot.CategoryBreakdown[model.CategoryShopping], 0.001)
}

func TestValidateContext(t *testing.T) {
	store := createTestStore(t)

	//nolint:staticcheck // explicitly testing nil context handling
	_, err := store.RecentExpenses(nil, "user-1", 5)
	assert.ErrorIs(t, err, ErrNilContext)
}
