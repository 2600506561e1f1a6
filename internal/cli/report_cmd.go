package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/deskops/internal/cli/formatter"
	"github.com/alexanderramin/deskops/internal/domain"
	"github.com/alexanderramin/deskops/internal/sortfilter"
)

func newReportCmd(app *App) *cobra.Command {
	var (
		input    string
		flat     bool
		sortKey  string
		desc     bool
		status   string
		priority string
		query    string
	)

	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Run the pipeline and show the per-day dashboard",
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

			if !flat {
				fmt.Print(formatter.FormatDataset(result.Dataset))
				return nil
			}

			ds := result.Dataset
			tickets := make([]domain.Ticket, 0,
				len(ds.Main)+len(ds.Pending)+len(ds.Preventive)+len(ds.Collaboration))
			tickets = append(tickets, ds.Main...)
			tickets = append(tickets, ds.Pending...)
			tickets = append(tickets, ds.Preventive...)
			tickets = append(tickets, ds.Collaboration...)

			tickets = sortfilter.Apply(tickets, sortfilter.Filter{
				Status:   status,
				Priority: priority,
				Query:    query,
			})

			if sortKey != "" {
				sorter := sortfilter.NewSorter()
				sorter.SortBy(tickets, sortKey)
				if desc {
					sorter.SortBy(tickets, sortKey)
				}
			}

			fmt.Print(formatter.FormatFlat(tickets, ds.ExcludedRows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&flat, "flat", false, "List tickets across all days instead of the dashboard")
	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort the flat list by a field key (e.g. ticketNumber, assignee, durationHours)")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")
	cmd.Flags().StringVar(&status, "status", "", "Only tickets with this status")
	cmd.Flags().StringVar(&priority, "priority", "", "Only tickets with this priority")
	cmd.Flags().StringVar(&query, "query", "", "Free-text match across ticket fields")

	return cmd
}
