// Package sortfilter provides the ordering and predicate logic applied to
// classified ticket collections. The natural-order comparator here is the
// same ordering the aggregation layer respects when tie-breaking.
package sortfilter

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/alexanderramin/deskops/internal/domain"
)

// numericKeys are compared as numbers directly, with non-numeric values
// coerced to zero, instead of going through the collator.
var numericKeys = map[string]bool{
	"ageHours":      true,
	"durationHours": true,
}

// Sorter sorts ticket collections by a field key. Requesting the same key
// again toggles the direction; a different key resets to ascending. The
// zero value is not usable; construct with NewSorter.
type Sorter struct {
	collator *collate.Collator
	key      string
	desc     bool
}

// NewSorter returns a Sorter using a locale-aware collator with numeric
// ordering, so "2" sorts before "10".
func NewSorter() *Sorter {
	return &Sorter{
		collator: collate.New(language.English, collate.Numeric, collate.IgnoreCase),
	}
}

// Key returns the current sort key, or "" before the first sort.
func (s *Sorter) Key() string { return s.key }

// Descending reports the current sort direction.
func (s *Sorter) Descending() bool { return s.desc }

// SortBy stable-sorts tickets in place by the given field key, applying the
// toggle/reset direction rules.
func (s *Sorter) SortBy(tickets []domain.Ticket, key string) {
	if key == s.key {
		s.desc = !s.desc
	} else {
		s.key = key
		s.desc = false
	}
	s.apply(tickets)
}

// Resort re-applies the current key and direction without toggling.
func (s *Sorter) Resort(tickets []domain.Ticket) {
	if s.key == "" {
		return
	}
	s.apply(tickets)
}

func (s *Sorter) apply(tickets []domain.Ticket) {
	key := s.key
	numeric := numericKeys[key]

	compare := func(a, b domain.Ticket) int {
		if numeric {
			av, bv := numericValue(a, key), numericValue(b, key)
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
		return s.collator.CompareString(a.Field(key), b.Field(key))
	}

	sort.SliceStable(tickets, func(i, j int) bool {
		c := compare(tickets[i], tickets[j])
		if s.desc {
			return c > 0
		}
		return c < 0
	})
}

func numericValue(t domain.Ticket, key string) float64 {
	switch key {
	case "ageHours":
		return t.AgeHours
	case "durationHours":
		return t.DurationHours
	}
	return 0
}

// Compare exposes the natural-order comparison used for sorting, for callers
// that need the same semantics over plain strings.
func (s *Sorter) Compare(a, b string) int {
	return s.collator.CompareString(a, b)
}
