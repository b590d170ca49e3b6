package main

import (
	"github.com/spf13/cobra"

	"github.com/finguard/finguard/internal/model"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage budgeting profiles",
	}

	cmd.AddCommand(profileSetCmd(), profileShowCmd())

	return cmd
}

func profileSetCmd() *cobra.Command {
	var (
		userID string
		income float64
		budget float64
		weekly float64
		goal   string
		target float64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update a user's budgeting profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			profile := &model.Profile{
				UserID:        userID,
				MonthlyIncome: income,
				MonthlyBudget: budget,
				WeeklyLimit:   weekly,
				SavingsGoal:   model.SavingsGoal(goal),
				SavingsTarget: target,
			}
			if err := profile.Validate(); err != nil {
				return err
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveProfile(ctx, profile); err != nil {
				return err
			}
			saved, err := store.GetProfile(ctx, userID)
			if err != nil {
				return err
			}

			return printJSON(saved)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user ID")
	cmd.Flags().Float64Var(&income, "income", 0, "monthly income in rupees")
	cmd.Flags().Float64Var(&budget, "budget", 0, "monthly budget in rupees")
	cmd.Flags().Float64Var(&weekly, "weekly-limit", 0, "weekly spending limit in rupees")
	cmd.Flags().StringVar(&goal, "goal", string(model.GoalEmergency), "savings goal")
	cmd.Flags().Float64Var(&target, "target", 0, "savings target in rupees")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("income")
	_ = cmd.MarkFlagRequired("budget")
	_ = cmd.MarkFlagRequired("weekly-limit")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func profileShowCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a user's budgeting profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			profile, err := store.GetProfile(ctx, userID)
			if err != nil {
				return err
			}

			return printJSON(profile)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
