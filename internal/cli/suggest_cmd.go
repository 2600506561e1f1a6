package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/deskops/internal/cli/formatter"
)

func newSuggestCmd(app *App) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "suggest [file]",
		Short: "Ask the classification service for compliance-clause suggestions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Suggest == nil {
				return fmt.Errorf("suggestions unavailable: set anthropic_api_key in config or ANTHROPIC_API_KEY")
			}

			if len(args) == 1 {
				input = args[0]
			}
			text, err := loadInput(cmd, app, input)
			if err != nil {
				return err
			}

			result, err := app.Pipeline.Run(text, nil)
			if err != nil {
				return err
			}

			suggestions, err := app.Suggest.Suggest(cmd.Context(), result.Dataset)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatSuggestions(suggestions))
			return nil
		},
	}

	return cmd
}
