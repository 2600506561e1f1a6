package suggest

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/deskops/internal/domain"
)

const systemPromptTemplate = `You map service-desk tickets to compliance clause labels.

You are given a catalog of recognized clause labels and a batch of tickets.
For each ticket, pick the catalog clause that best fits its subject and
category, or skip the ticket if none fits.

Respond with a JSON array only, no prose. Each element:
{"ticket_id": "...", "suggested_clause": "...", "reason": "...", "confidence": 0.0}

Rules:
- suggested_clause must be copied verbatim from the catalog.
- reason is one short sentence.
- confidence is between 0 and 1.
- Omit tickets you cannot map with confidence above 0.2.`

// buildPrompts renders the system and user prompts for one batch.
func buildPrompts(tickets []domain.Ticket, catalog []string) (string, string) {
	var b strings.Builder

	b.WriteString("Catalog:\n")
	for _, clause := range catalog {
		fmt.Fprintf(&b, "- %s\n", clause)
	}

	b.WriteString("\nTickets:\n")
	for _, t := range tickets {
		current := t.Clause
		if current == "" {
			current = "(none)"
		}
		fmt.Fprintf(&b, "id=%s | subject=%s | category=%s | current_clause=%s\n",
			t.TicketNumber, t.Item, t.Category, current)
	}

	return systemPromptTemplate, b.String()
}
