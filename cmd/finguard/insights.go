package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/finguard/finguard/internal/advisor"
)

func insightsCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Summarize this month's spending for a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := slog.Default()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			snapshot, err := store.InsightsSnapshot(ctx, userID, time.Now())
			if err != nil {
				return err
			}

			rewriter, err := createRewriter(logger)
			if err != nil {
				return err
			}

			summarizer := advisor.NewSummarizer(logger)
			result, facts := summarizer.Summarize(snapshot)
			result = rewriter.RewriteInsights(ctx, snapshot, facts, result)

			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user ID to summarize")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
