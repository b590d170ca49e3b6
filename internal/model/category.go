// Package model defines the domain types shared across the finguard engine.
package model

// Category identifies the spending category of an expense.
type Category string

// The fixed set of expense categories.
const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryEntertainment Category = "entertainment"
	CategoryUtilities     Category = "utilities"
	CategoryOther         Category = "other"
)

// Categories lists every valid category in a fixed order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryOther,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// SavingsGoal labels what the user is saving towards.
type SavingsGoal string

// Savings goal options mirrored from the onboarding questionnaire.
const (
	GoalEmergency  SavingsGoal = "emergency"
	GoalVacation   SavingsGoal = "vacation"
	GoalEducation  SavingsGoal = "education"
	GoalHome       SavingsGoal = "home"
	GoalInvestment SavingsGoal = "investment"
	GoalOther      SavingsGoal = "other"
)

// SavingsGoals lists every valid savings goal.
var SavingsGoals = []SavingsGoal{
	GoalEmergency,
	GoalVacation,
	GoalEducation,
	GoalHome,
	GoalInvestment,
	GoalOther,
}

// IsValid reports whether g is one of the known savings goals.
func (g SavingsGoal) IsValid() bool {
	for _, known := range SavingsGoals {
		if g == known {
			return true
		}
	}
	return false
}
