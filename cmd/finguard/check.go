package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/finguard/finguard/internal/advisor"
	"github.com/finguard/finguard/internal/model"
)

func checkCmd() *cobra.Command {
	var (
		amount      float64
		category    string
		description string
		budget      float64
		spending    float64
		userID      string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Classify a proposed expense before you commit it",
		Long: `Run the intervention engine for one proposed purchase. Supply the budget
context with --budget/--spending, or --user to read it from the local store.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := slog.Default()

			if amount <= 0 {
				return fmt.Errorf("--amount must be a positive number")
			}
			cat := model.Category(category)
			if !cat.IsValid() {
				return fmt.Errorf("--category must be one of the known categories, got %q", category)
			}

			var snapshot model.SpendingSnapshot
			switch {
			case userID != "":
				store, err := openStore(ctx)
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()

				snapshot, err = store.SpendingSnapshot(ctx, userID, time.Now())
				if err != nil {
					return err
				}
			case budget > 0:
				snapshot = model.SpendingSnapshot{
					MonthlyBudget:   budget,
					MonthlySpending: spending,
				}
			default:
				return fmt.Errorf("either --user or a positive --budget is required")
			}

			rewriter, err := createRewriter(logger)
			if err != nil {
				return err
			}

			proposal := model.ExpenseProposal{
				Amount:      amount,
				Category:    cat,
				Description: description,
				Timestamp:   time.Now(),
			}

			classifier := advisor.NewClassifier(logger)
			verdict, facts := classifier.Classify(proposal, snapshot)
			verdict = rewriter.RewriteVerdict(ctx, proposal, facts, verdict)

			return printJSON(verdict)
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "proposed amount in rupees")
	cmd.Flags().StringVar(&category, "category", "", "expense category (food, transport, shopping, entertainment, utilities, other)")
	cmd.Flags().StringVar(&description, "description", "", "what the expense is for")
	cmd.Flags().Float64Var(&budget, "budget", 0, "monthly budget in rupees")
	cmd.Flags().Float64Var(&spending, "spending", 0, "spending so far this month")
	cmd.Flags().StringVar(&userID, "user", "", "read the budget context from this user's store")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
