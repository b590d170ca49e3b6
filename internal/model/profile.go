package model

import (
	"errors"
	"fmt"
	"time"
)

// Bounds applied when a profile is created or updated.
const (
	MinMonthlyIncome = 5000
	MaxMonthlyIncome = 500000
	MinMonthlyBudget = 2000
	MinSavingsTarget = 10000
	MaxSavingsTarget = 5000000
)

// ErrInvalidProfile indicates a profile failed its bounds checks.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile holds a user's budgeting configuration.
type Profile struct {
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	UserID        string      `json:"userId"`
	SavingsGoal   SavingsGoal `json:"savingsGoal"`
	MonthlyIncome float64     `json:"monthlyIncome"`
	MonthlyBudget float64     `json:"monthlyBudget"`
	WeeklyLimit   float64     `json:"weeklyLimit"`
	SavingsTarget float64     `json:"savingsTarget"`
}

// Validate checks the profile against the questionnaire bounds.
func (p *Profile) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("%w: missing user ID", ErrInvalidProfile)
	}
	if p.MonthlyIncome < MinMonthlyIncome || p.MonthlyIncome > MaxMonthlyIncome {
		return fmt.Errorf("%w: monthly income must be between %d and %d", ErrInvalidProfile, MinMonthlyIncome, MaxMonthlyIncome)
	}
	if p.MonthlyBudget < MinMonthlyBudget {
		return fmt.Errorf("%w: monthly budget must be at least %d", ErrInvalidProfile, MinMonthlyBudget)
	}
	if p.MonthlyBudget > p.MonthlyIncome {
		return fmt.Errorf("%w: monthly budget cannot exceed monthly income", ErrInvalidProfile)
	}
	if p.WeeklyLimit <= 0 {
		return fmt.Errorf("%w: weekly limit must be positive", ErrInvalidProfile)
	}
	if !p.SavingsGoal.IsValid() {
		return fmt.Errorf("%w: unknown savings goal %q", ErrInvalidProfile, p.SavingsGoal)
	}
	if p.SavingsTarget < MinSavingsTarget || p.SavingsTarget > MaxSavingsTarget {
		return fmt.Errorf("%w: savings target must be between %d and %d", ErrInvalidProfile, MinSavingsTarget, MaxSavingsTarget)
	}
	return nil
}
