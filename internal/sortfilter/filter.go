package sortfilter

import (
	"strings"

	"github.com/alexanderramin/deskops/internal/domain"
)

// queryFields is the fixed set of fields the free-text predicate searches.
var queryFields = []string{"ticketNumber", "item", "assignee", "category", "clause"}

// Filter is a conjunction of independent predicates. Empty fields match
// everything, so the zero Filter passes every ticket.
type Filter struct {
	Status   string
	Priority string
	Query    string
}

// Matches reports whether the ticket satisfies every non-empty predicate.
func (f Filter) Matches(t domain.Ticket) bool {
	if f.Status != "" && !strings.EqualFold(t.Status, f.Status) {
		return false
	}
	if f.Priority != "" && !strings.EqualFold(t.Priority, f.Priority) {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		found := false
		for _, key := range queryFields {
			if strings.Contains(strings.ToLower(t.Field(key)), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Apply returns the tickets matching the filter, preserving input order.
func Apply(tickets []domain.Ticket, f Filter) []domain.Ticket {
	var out []domain.Ticket
	for _, t := range tickets {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
