package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/deskops/internal/domain"
)

// FormatDataset renders the per-day dashboard: one section per bucket in the
// dataset's descending date order, with category counts, ticket rows, and the
// technician rollup. A trailing line reports rows excluded for unparsable
// dates when there are any.
func FormatDataset(ds *domain.Dataset) string {
	var b strings.Builder

	if len(ds.Buckets) == 0 {
		b.WriteString(StyleDim.Render("No dated records.") + "\n")
	}

	for _, bucket := range ds.Buckets {
		b.WriteString(FormatBucket(bucket))
		b.WriteString("\n")
	}

	if ds.ExcludedRows > 0 {
		fmt.Fprintf(&b, "%s\n", StyleYellow.Render(
			fmt.Sprintf("%d row(s) excluded: date not recognized", ds.ExcludedRows)))
	}

	return b.String()
}

// FormatBucket renders one day's section.
func FormatBucket(bucket *domain.DailyBucket) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n",
		StyleHeader.Render(bucket.Formatted),
		StyleDim.Render(fmt.Sprintf("(%d tickets)", bucket.TicketCount())))

	sections := []struct {
		label   string
		tickets []domain.Ticket
	}{
		{"Tickets", bucket.Main},
		{"Pending", bucket.Pending},
		{"Preventive maintenance", bucket.Preventive},
		{"Collaboration", bucket.Collaboration},
	}

	for _, sec := range sections {
		if len(sec.tickets) == 0 {
			continue
		}
		b.WriteString(StyleBold.Render(sec.label) + "\n")
		b.WriteString(ticketTable(sec.tickets))
	}

	if len(bucket.Technicians) > 0 {
		b.WriteString(StyleBold.Render("Technicians") + "\n")
		b.WriteString(technicianTable(bucket.Technicians))
	}

	for _, p := range bucket.Upcoming {
		fmt.Fprintf(&b, "%s %s", StylePurple.Render("upcoming:"), p.Name)
		if p.Owner != "" {
			fmt.Fprintf(&b, " (%s)", p.Owner)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func ticketTable(tickets []domain.Ticket) string {
	headers := []string{"#", "Subject", "Assignee", "Status", "Priority", "Risk"}
	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		assignee := t.Assignee
		if t.Collab != "" {
			assignee = t.Assignee + " + " + t.Collab
		}
		rows = append(rows, []string{
			t.TicketNumber,
			t.Item,
			assignee,
			StatusStyle(t.Status).Render(t.Status),
			t.Priority,
			RiskStyle(t.RiskLevel).Render(strconv.Itoa(t.RiskLevel)),
		})
	}
	return RenderTable(headers, rows)
}

func technicianTable(metrics []domain.TechnicianMetric) string {
	headers := []string{"Technician", "Closed", "In progress", "Open", "On hold", "Total", "Hours"}
	rows := make([][]string, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, []string{
			m.Name,
			strconv.Itoa(m.Closed),
			strconv.Itoa(m.InProgress),
			strconv.Itoa(m.Open),
			strconv.Itoa(m.OnHold),
			strconv.Itoa(m.TotalTickets),
			m.TotalWorkHours,
		})
	}
	return RenderTable(headers, rows)
}
