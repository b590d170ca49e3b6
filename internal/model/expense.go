package model

import "time"

// Expense represents a single logged expense. The advisor only reads the
// Amount, Category and Date fields; the rest exists for persistence.
type Expense struct {
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	ID          string    `json:"id,omitempty"`
	UserID      string    `json:"userId,omitempty"`
	Category    Category  `json:"category"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
}

// ExpenseProposal is a purchase the user is about to commit. It exists only
// for the duration of one classification call and is never persisted.
type ExpenseProposal struct {
	Timestamp   time.Time
	Category    Category
	Description string
	Amount      float64
}

// SpendingSnapshot is the caller-supplied view of the user's month so far.
// The advisor treats it as read-only.
type SpendingSnapshot struct {
	RecentExpenses  []Expense
	MonthlyBudget   float64
	MonthlySpending float64
}

// RecentExpenseWindow bounds how many historical expenses a snapshot carries.
const RecentExpenseWindow = 20
