package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/deskops/internal/service"
	"github.com/alexanderramin/deskops/internal/store"
)

func newDraftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Manage the persisted edit buffer",
	}
	cmd.AddCommand(
		newDraftSetCmd(app),
		newDraftShowCmd(app),
		newDraftConvertCmd(app),
	)
	return cmd
}

func newDraftSetCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "set [file]",
		Short: "Save text as the current draft (reads stdin without a file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("reading draft: %w", err)
			}

			ctx := cmd.Context()
			if err := app.Drafts.Set(ctx, store.KeyDraftText, string(data)); err != nil {
				return err
			}
			if err := app.Drafts.Set(ctx, store.KeyDraftFormat, format); err != nil {
				return err
			}
			fmt.Printf("Draft saved (%d bytes, %s)\n", len(data), format)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", service.FormatTabular, "Draft format flag: tabular or json")
	return cmd
}

func newDraftShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := app.Drafts.Get(cmd.Context(), store.KeyDraftText)
			if err != nil {
				return err
			}
			fmt.Print(text)
			return nil
		},
	}
}

func newDraftConvertCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <tabular|json>",
		Short: "Convert the draft to the other format",
		Long: "Convert the persisted draft between its tabular and JSON forms. " +
			"If the conversion fails the draft is left untouched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			to := args[0]

			text, err := app.Drafts.Get(ctx, store.KeyDraftText)
			if err != nil {
				return err
			}
			from, err := app.Drafts.Get(ctx, store.KeyDraftFormat)
			if err != nil {
				return err
			}
			if from == "" {
				from = service.FormatTabular
			}

			converted, err := app.Export.Convert(text, from, to)
			if err != nil {
				// Non-fatal: report and keep the draft as it was.
				fmt.Fprintf(cmd.ErrOrStderr(), "Conversion failed, draft unchanged: %v\n", err)
				return nil
			}

			if err := app.Drafts.Set(ctx, store.KeyDraftText, converted); err != nil {
				return err
			}
			if err := app.Drafts.Set(ctx, store.KeyDraftFormat, to); err != nil {
				return err
			}
			fmt.Printf("Draft converted to %s\n", to)
			return nil
		},
	}
}
