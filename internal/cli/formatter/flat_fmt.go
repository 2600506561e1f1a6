package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/deskops/internal/domain"
)

// FormatFlat renders tickets as a single table across all days, the view
// used for sorted and filtered listings.
func FormatFlat(tickets []domain.Ticket, excluded int) string {
	var b strings.Builder

	if len(tickets) == 0 {
		b.WriteString(StyleDim.Render("No matching tickets.") + "\n")
	} else {
		headers := []string{"#", "Created", "Subject", "Assignee", "Category", "Status", "Priority", "Hours"}
		rows := make([][]string, 0, len(tickets))
		for _, t := range tickets {
			assignee := t.Assignee
			if t.Collab != "" {
				assignee = t.Assignee + " + " + t.Collab
			}
			rows = append(rows, []string{
				t.TicketNumber,
				t.CreatedOn,
				t.Item,
				assignee,
				t.Category,
				StatusStyle(t.Status).Render(t.Status),
				t.Priority,
				fmt.Sprintf("%.2f", t.DurationHours),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	if excluded > 0 {
		fmt.Fprintf(&b, "%s\n", StyleYellow.Render(
			fmt.Sprintf("%d row(s) excluded: date not recognized", excluded)))
	}

	return b.String()
}
