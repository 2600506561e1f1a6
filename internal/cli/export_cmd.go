package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/deskops/internal/service"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		input  string
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Re-serialize the dataset as tabular text or JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			var data []byte
			switch format {
			case service.FormatTabular:
				data = []byte(app.Export.ToTabular(result.Table))
			case service.FormatJSON:
				data, err = app.Export.ToJSON(result.Table)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", format, service.FormatTabular, service.FormatJSON)
			}

			if out == "" {
				fmt.Print(string(data))
				return nil
			}
			if err := app.Export.WriteFile(out, data); err != nil {
				return err
			}
			fmt.Printf("Wrote %d records to %s\n", len(result.Table.Rows), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", service.FormatTabular, "Export format: tabular or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")

	return cmd
}
