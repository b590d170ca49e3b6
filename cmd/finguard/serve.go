package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/finguard/finguard/internal/advisor"
	"github.com/finguard/finguard/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve the intervention and insights endpoints over HTTP, backed by the
local expense store. The narrative provider is used when an API key is
configured; otherwise every response comes from the rule engine.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := slog.Default()

	rewriter, err := createRewriter(logger)
	if err != nil {
		return err
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	srv, err := server.New(server.Config{
		Addr: viper.GetString("server.addr"),
	}, server.Deps{
		Classifier: advisor.NewClassifier(logger),
		Summarizer: advisor.NewSummarizer(logger),
		Rewriter:   rewriter,
		Store:      store,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}
