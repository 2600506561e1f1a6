package sortfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/deskops/internal/domain"
)

func numbers(tickets []domain.Ticket) []string {
	out := make([]string, len(tickets))
	for i, t := range tickets {
		out[i] = t.TicketNumber
	}
	return out
}

func TestSortBy_NaturalOrder(t *testing.T) {
	tickets := []domain.Ticket{
		{TicketNumber: "10"},
		{TicketNumber: "2"},
		{TicketNumber: "1"},
	}

	s := NewSorter()
	s.SortBy(tickets, "ticketNumber")

	assert.Equal(t, []string{"1", "2", "10"}, numbers(tickets))
}

func TestSortBy_ToggleAndReset(t *testing.T) {
	tickets := []domain.Ticket{
		{TicketNumber: "1", Assignee: "Zoe"},
		{TicketNumber: "2", Assignee: "Ana"},
		{TicketNumber: "3", Assignee: "Mia"},
	}

	s := NewSorter()

	s.SortBy(tickets, "ticketNumber")
	assert.False(t, s.Descending())
	assert.Equal(t, []string{"1", "2", "3"}, numbers(tickets))

	// Same key again toggles to descending.
	s.SortBy(tickets, "ticketNumber")
	assert.True(t, s.Descending())
	assert.Equal(t, []string{"3", "2", "1"}, numbers(tickets))

	// A different key resets to ascending.
	s.SortBy(tickets, "assignee")
	assert.False(t, s.Descending())
	assert.Equal(t, []string{"2", "3", "1"}, numbers(tickets))
}

func TestSortBy_NumericFields(t *testing.T) {
	tickets := []domain.Ticket{
		{TicketNumber: "a", DurationHours: 10},
		{TicketNumber: "b", DurationHours: 2},
		{TicketNumber: "c", DurationHours: 0}, // unparsable source coerces to 0
	}

	s := NewSorter()
	s.SortBy(tickets, "durationHours")

	assert.Equal(t, []string{"c", "b", "a"}, numbers(tickets))
}

func TestSortBy_Stable(t *testing.T) {
	tickets := []domain.Ticket{
		{TicketNumber: "1", Status: "Open"},
		{TicketNumber: "2", Status: "Open"},
		{TicketNumber: "3", Status: "Open"},
	}

	s := NewSorter()
	s.SortBy(tickets, "status")

	// Equal keys keep their input order.
	assert.Equal(t, []string{"1", "2", "3"}, numbers(tickets))
}

func TestSortBy_CaseInsensitive(t *testing.T) {
	tickets := []domain.Ticket{
		{TicketNumber: "1", Assignee: "bob"},
		{TicketNumber: "2", Assignee: "Alice"},
	}

	s := NewSorter()
	s.SortBy(tickets, "assignee")

	assert.Equal(t, []string{"2", "1"}, numbers(tickets))
}

func TestResort_KeepsDirection(t *testing.T) {
	tickets := []domain.Ticket{
		{TicketNumber: "2"},
		{TicketNumber: "10"},
	}

	s := NewSorter()
	s.SortBy(tickets, "ticketNumber")
	s.SortBy(tickets, "ticketNumber") // descending

	shuffled := []domain.Ticket{{TicketNumber: "2"}, {TicketNumber: "10"}}
	s.Resort(shuffled)
	assert.Equal(t, []string{"10", "2"}, numbers(shuffled))
	assert.True(t, s.Descending())
}
