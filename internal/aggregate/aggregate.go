// Package aggregate runs the classification and rollup pass over the decoded
// service-desk export. Each pass is a pure function of its input: there is no
// incremental state, and re-running on unchanged input reproduces identical
// output.
package aggregate

import (
	"sort"

	"github.com/alexanderramin/deskops/internal/codec"
	"github.com/alexanderramin/deskops/internal/domain"
	"github.com/alexanderramin/deskops/internal/normalize"
)

// seenEntry records the first observation of a ticket number within a day.
type seenEntry struct {
	assignee string
	category domain.Category
}

// Run buckets the table's rows by normalized day, classifies each ticket,
// links same-day reassignments into collaboration entries, and computes
// per-technician rollups. Rows whose date cannot be normalized are excluded
// from every bucket and every global list; the exclusion count is reported so
// callers can surface "N rows produced, M excluded". Upcoming projects are
// attached to their day's bucket unmodified.
func Run(table *codec.Table, upcoming []domain.UpcomingProject) *domain.Dataset {
	ds := &domain.Dataset{}
	buckets := make(map[string]*domain.DailyBucket)

	// firstSeen records, per day, which assignee a ticket number was first
	// observed under. A later record for the same number either promotes
	// the pair into a collaboration entry (different assignee) or is
	// dropped (same assignee).
	firstSeen := make(map[string]map[string]seenEntry)

	for _, row := range table.Rows {
		rawDate := domain.CoalesceStr(row["createdOn"], row["createdTime"], row["created"], row["createdAt"])
		date := normalize.ParseDate(rawDate)
		if date == nil {
			ds.ExcludedRows++
			continue
		}

		bucket, ok := buckets[date.DateKey]
		if !ok {
			bucket = &domain.DailyBucket{
				DateKey:   date.DateKey,
				Formatted: date.Formatted,
				Year:      date.Year,
			}
			buckets[date.DateKey] = bucket
			firstSeen[date.DateKey] = make(map[string]seenEntry)
		}

		ticket := projectTicket(row)
		category := classify(ticket, row)

		seen := firstSeen[date.DateKey]
		entry, dup := seen[ticket.TicketNumber]
		if !dup {
			seen[ticket.TicketNumber] = seenEntry{assignee: ticket.Assignee, category: category}
			appendTicket(bucket, category, ticket)
			continue
		}
		if entry.assignee == ticket.Assignee {
			// Same ticket, same technician: a no-op duplicate.
			continue
		}

		// A second assignee on the same day makes this a collaboration.
		// The original entry leaves its classified list so the ticket
		// number lives in exactly one category.
		removeTicket(bucket, entry.category, ticket.TicketNumber)
		collab := ticket
		collab.Assignee = entry.assignee
		collab.Collab = ticket.Assignee
		appendTicket(bucket, domain.CategoryCollaboration, collab)
	}

	for _, p := range upcoming {
		if bucket, ok := buckets[p.DateKey]; ok {
			bucket.Upcoming = append(bucket.Upcoming, p)
		}
	}

	for _, bucket := range buckets {
		bucket.Technicians = technicianMetrics(bucket)
		ds.Buckets = append(ds.Buckets, bucket)
	}

	// Descending date order is part of the output contract.
	sort.Slice(ds.Buckets, func(i, j int) bool {
		return ds.Buckets[i].DateKey > ds.Buckets[j].DateKey
	})

	// Global category lists follow the bucket order so the output is a pure
	// function of the input.
	for _, bucket := range ds.Buckets {
		ds.Main = append(ds.Main, bucket.Main...)
		ds.Pending = append(ds.Pending, bucket.Pending...)
		ds.Collaboration = append(ds.Collaboration, bucket.Collaboration...)
		ds.Preventive = append(ds.Preventive, bucket.Preventive...)
	}

	return ds
}

func appendTicket(bucket *domain.DailyBucket, category domain.Category, t domain.Ticket) {
	switch category {
	case domain.CategoryPending:
		bucket.Pending = append(bucket.Pending, t)
	case domain.CategoryPreventive:
		bucket.Preventive = append(bucket.Preventive, t)
	case domain.CategoryCollaboration:
		bucket.Collaboration = append(bucket.Collaboration, t)
	default:
		bucket.Main = append(bucket.Main, t)
	}
}

// removeTicket drops the first ticket with the given number from the named
// category list. A number already promoted to collaboration is not present,
// which makes the removal a no-op.
func removeTicket(bucket *domain.DailyBucket, category domain.Category, ticketNumber string) {
	var list *[]domain.Ticket
	switch category {
	case domain.CategoryPending:
		list = &bucket.Pending
	case domain.CategoryPreventive:
		list = &bucket.Preventive
	default:
		list = &bucket.Main
	}
	for i, t := range *list {
		if t.TicketNumber == ticketNumber {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return
		}
	}
}
