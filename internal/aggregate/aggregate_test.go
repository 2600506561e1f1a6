package aggregate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/deskops/internal/codec"
	"github.com/alexanderramin/deskops/internal/domain"
)

// row is a shorthand for building raw records in tests.
func row(kv ...string) codec.Row {
	r := make(codec.Row, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		r[kv[i]] = kv[i+1]
	}
	return r
}

func table(rows ...codec.Row) *codec.Table {
	return &codec.Table{
		Headers: []string{"ticketNumber", "createdOn", "assignee", "item", "status", "priority", "clause"},
		Rows:    rows,
	}
}

func TestRun_CollaborationScenario(t *testing.T) {
	ds := Run(table(
		row("ticketNumber", "2032", "createdOn", "2025-07-04", "assignee", "A", "status", "Closed"),
		row("ticketNumber", "2032", "createdOn", "2025-07-04", "assignee", "B", "status", "Closed"),
	), nil)

	require.Len(t, ds.Buckets, 1)
	bucket := ds.Buckets[0]

	require.Len(t, bucket.Collaboration, 1)
	assert.Equal(t, "A", bucket.Collaboration[0].Assignee)
	assert.Equal(t, "B", bucket.Collaboration[0].Collab)

	// The promoted number leaves the main and pending lists entirely.
	for _, tk := range bucket.Main {
		assert.NotEqual(t, "2032", tk.TicketNumber)
	}
	for _, tk := range bucket.Pending {
		assert.NotEqual(t, "2032", tk.TicketNumber)
	}
}

func TestRun_SameAssigneeDuplicateDropped(t *testing.T) {
	ds := Run(table(
		row("ticketNumber", "7", "createdOn", "2025-07-04", "assignee", "A", "status", "Closed"),
		row("ticketNumber", "7", "createdOn", "2025-07-04", "assignee", "A", "status", "Closed"),
	), nil)

	require.Len(t, ds.Buckets, 1)
	assert.Len(t, ds.Buckets[0].Main, 1)
	assert.Empty(t, ds.Buckets[0].Collaboration)
}

func TestRun_SameTicketDifferentDaysNotLinked(t *testing.T) {
	ds := Run(table(
		row("ticketNumber", "7", "createdOn", "2025-07-04", "assignee", "A", "status", "Closed"),
		row("ticketNumber", "7", "createdOn", "2025-07-05", "assignee", "B", "status", "Closed"),
	), nil)

	require.Len(t, ds.Buckets, 2)
	assert.Empty(t, ds.Collaboration)
	assert.Len(t, ds.Main, 2)
}

func TestRun_Classification(t *testing.T) {
	ds := Run(table(
		row("ticketNumber", "1", "createdOn", "2025-07-04", "assignee", "A", "status", "In Progress"),
		row("ticketNumber", "2", "createdOn", "2025-07-04", "assignee", "A", "status", "Closed", "item", "Monthly PM round"),
		row("ticketNumber", "3", "createdOn", "2025-07-04", "assignee", "A", "status", "Closed"),
	), nil)

	require.Len(t, ds.Buckets, 1)
	bucket := ds.Buckets[0]
	assert.Len(t, bucket.Pending, 1)
	assert.Len(t, bucket.Main, 2)
}

func TestRun_PendingBeatsPreventive(t *testing.T) {
	// A scheduled PM ticket is pending, not preventive: the status check
	// runs first.
	ds := Run(&codec.Table{
		Headers: []string{"ticketNumber", "createdOn", "assignee", "status", "category"},
		Rows: []codec.Row{
			row("ticketNumber", "1", "createdOn", "2025-07-04", "assignee", "A",
				"status", "Scheduled", "category", "Preventive Maintenance"),
		},
	}, nil)

	bucket := ds.Buckets[0]
	assert.Len(t, bucket.Pending, 1)
	assert.Empty(t, bucket.Preventive)
}

func TestRun_UnparsableDatesExcluded(t *testing.T) {
	ds := Run(table(
		row("ticketNumber", "1", "createdOn", "N/A", "assignee", "A", "status", "Closed"),
		row("ticketNumber", "2", "createdOn", "2025-07-04", "assignee", "A", "status", "Closed"),
		row("ticketNumber", "3", "createdOn", "", "assignee", "A", "status", "Closed"),
	), nil)

	assert.Equal(t, 2, ds.ExcludedRows)
	require.Len(t, ds.Buckets, 1)
	assert.Equal(t, 1, ds.Buckets[0].TicketCount())
}

func TestRun_BucketsDescendingByDate(t *testing.T) {
	ds := Run(table(
		row("ticketNumber", "1", "createdOn", "2025-07-03", "assignee", "A", "status", "Closed"),
		row("ticketNumber", "2", "createdOn", "2025-07-05", "assignee", "A", "status", "Closed"),
		row("ticketNumber", "3", "createdOn", "2025-07-04", "assignee", "A", "status", "Closed"),
	), nil)

	require.Len(t, ds.Buckets, 3)
	assert.Equal(t, "2025-07-05", ds.Buckets[0].DateKey)
	assert.Equal(t, "2025-07-04", ds.Buckets[1].DateKey)
	assert.Equal(t, "2025-07-03", ds.Buckets[2].DateKey)
}

func TestRun_Idempotent(t *testing.T) {
	in := table(
		row("ticketNumber", "1", "createdOn", "2025-07-03", "assignee", "A", "status", "Closed"),
		row("ticketNumber", "2", "createdOn", "2025-07-04", "assignee", "B", "status", "Open"),
		row("ticketNumber", "2", "createdOn", "2025-07-04", "assignee", "C", "status", "Open"),
		row("ticketNumber", "3", "createdOn", "garbage", "assignee", "A", "status", "Closed"),
	)

	first := Run(in, nil)
	second := Run(in, nil)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("aggregation not idempotent (-first +second):\n%s", diff)
	}
}

func TestRun_ClassificationDisjointness(t *testing.T) {
	ds := Run(table(
		row("ticketNumber", "1", "createdOn", "2025-07-04", "assignee", "A", "status", "Open"),
		row("ticketNumber", "2", "createdOn", "2025-07-04", "assignee", "B", "status", "Closed"),
		row("ticketNumber", "2", "createdOn", "2025-07-04", "assignee", "C", "status", "Closed"),
		row("ticketNumber", "3", "createdOn", "2025-07-04", "assignee", "A", "status", "Closed", "item", "preventive check"),
	), nil)

	bucket := ds.Buckets[0]
	seen := make(map[string]int)
	for _, list := range [][]domain.Ticket{bucket.Main, bucket.Pending, bucket.Preventive, bucket.Collaboration} {
		for _, tk := range list {
			seen[tk.TicketNumber]++
		}
	}
	for number, count := range seen {
		assert.Equal(t, 1, count, "ticket %s appears in %d lists", number, count)
	}

	for _, tk := range bucket.Collaboration {
		assert.NotEqual(t, tk.Assignee, tk.Collab)
	}
}

func TestRun_UpcomingProjectsAttached(t *testing.T) {
	ds := Run(table(
		row("ticketNumber", "1", "createdOn", "2025-07-04", "assignee", "A", "status", "Closed"),
	), []domain.UpcomingProject{
		{DateKey: "2025-07-04", Name: "Switch refresh", Owner: "A"},
		{DateKey: "2025-09-01", Name: "No matching day"},
	})

	require.Len(t, ds.Buckets, 1)
	require.Len(t, ds.Buckets[0].Upcoming, 1)
	assert.Equal(t, "Switch refresh", ds.Buckets[0].Upcoming[0].Name)
}

func TestRun_EmptyTable(t *testing.T) {
	ds := Run(&codec.Table{}, nil)
	assert.Empty(t, ds.Buckets)
	assert.Zero(t, ds.ExcludedRows)
}
