package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finguard/finguard/internal/model"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Log and review expenses",
	}

	cmd.AddCommand(expenseAddCmd(), expenseListCmd())

	return cmd
}

func expenseAddCmd() *cobra.Command {
	var (
		userID      string
		amount      float64
		category    string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cat := model.Category(category)
			if !cat.IsValid() {
				return fmt.Errorf("--category must be one of the known categories, got %q", category)
			}

			expense := &model.Expense{
				UserID:      userID,
				Category:    cat,
				Description: description,
				Amount:      amount,
			}
			if date != "" {
				parsed, err := time.Parse(time.RFC3339, date)
				if err != nil {
					return fmt.Errorf("--date must be RFC 3339 (e.g. 2026-08-31T12:00:00Z): %w", err)
				}
				expense.Date = parsed
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveExpense(ctx, expense); err != nil {
				return err
			}

			return printJSON(expense)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user ID the expense belongs to")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount in rupees")
	cmd.Flags().StringVar(&category, "category", "", "expense category")
	cmd.Flags().StringVar(&description, "description", "", "what the expense was for")
	cmd.Flags().StringVar(&date, "date", "", "when the expense happened (RFC 3339, defaults to now)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func expenseListCmd() *cobra.Command {
	var (
		userID string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show a user's most recent expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expenses, err := store.RecentExpenses(ctx, userID, limit)
			if err != nil {
				return err
			}

			return printJSON(expenses)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user ID to list")
	cmd.Flags().IntVar(&limit, "limit", model.RecentExpenseWindow, "maximum number of expenses to return")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
