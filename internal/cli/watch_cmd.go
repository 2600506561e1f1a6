package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/deskops/internal/cli/formatter"
	"github.com/alexanderramin/deskops/internal/watch"
)

func newWatchCmd(app *App) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-run the pipeline whenever the input file changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				input = args[0]
			}
			if input == "" {
				input = app.Config.InputPath
			}
			if input == "" {
				return fmt.Errorf("no input file: pass a path or set input_path in config")
			}

			run := func(text string) {
				result, err := app.Pipeline.Run(text, nil)
				if err != nil {
					// A bad intermediate save keeps the previous output.
					fmt.Fprintf(cmd.ErrOrStderr(), "pipeline: %v\n", err)
					return
				}
				fmt.Print(formatter.FormatDataset(result.Dataset))
			}

			// Initial pass before the first change event.
			text, err := loadInput(cmd, app, input)
			if err != nil {
				return err
			}
			run(text)

			w, err := watch.New(input, run)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watching %s\n", input)
			if err := w.Start(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	return cmd
}
