package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/deskops/internal/cli"
	"github.com/alexanderramin/deskops/internal/config"
	"github.com/alexanderramin/deskops/internal/service"
	"github.com/alexanderramin/deskops/internal/store"
	"github.com/alexanderramin/deskops/internal/suggest"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := store.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	app := &cli.App{
		Pipeline: service.NewPipelineService(),
		Export:   service.NewExportService(),
		Drafts:   store.NewDraftStore(database),
		Config:   cfg,
	}

	// Piped stdin is a valid ingest source for every command.
	app.StdinIsPipe = !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())

	// Wire the suggestion collaborator only when a key is configured.
	if cfg.AnthropicAPIKey != "" {
		var observer suggest.Observer = suggest.NoopObserver{}
		if cfg.LogCalls {
			observer = suggest.NewLogObserver(os.Stderr)
		}
		client := suggest.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.LLMModel, cfg.LLMBatchSize, observer)
		app.Suggest = service.NewSuggestService(client, cfg.ClauseCatalog)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
