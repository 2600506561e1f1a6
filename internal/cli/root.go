package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/deskops/internal/config"
	"github.com/alexanderramin/deskops/internal/service"
	"github.com/alexanderramin/deskops/internal/store"
)

// App holds references to the services used by CLI commands.
type App struct {
	Pipeline service.PipelineService
	Export   service.ExportService
	// Suggest is nil when no API key is configured.
	Suggest service.SuggestService
	Drafts  *store.DraftStore
	Config  config.Config

	// StdinIsPipe is set by main when stdin is not a terminal, so commands
	// can ingest piped text directly.
	StdinIsPipe bool
}

// NewRootCmd creates the top-level "deskops" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "deskops",
		Short:         "Service-desk incident ingestion and daily reporting",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newReportCmd(app),
		newExportCmd(app),
		newSuggestCmd(app),
		newDraftCmd(app),
		newWatchCmd(app),
	)

	return root
}

// loadInput resolves the text blob a command operates on: an explicit file
// path first, then piped stdin, then the configured input file, then the
// persisted draft.
func loadInput(cmd *cobra.Command, app *App, path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return string(data), nil
	}

	if app.StdinIsPipe {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	if app.Config.InputPath != "" {
		data, err := os.ReadFile(app.Config.InputPath)
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return string(data), nil
	}

	text, err := app.Drafts.Get(cmd.Context(), store.KeyDraftText)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("no input: pass a file, set input_path in config, or save a draft")
	}
	return text, nil
}
