// Package normalize turns loosely-typed date-ish values from the service-desk
// export into canonical day identifiers. The input encodings are ambiguous
// (epoch numbers, ISO text, locale-dependent slash formats), so normalization
// runs an explicit ranked rule list; each rule is independently testable.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date is the canonical form of one normalized date value. It is derived,
// immutable, and never stored apart from its source record.
type Date struct {
	DateKey   string // sortable YYYY-MM-DD token
	Formatted string // DD/MM/YYYY display token
	Year      int
}

// rule attempts one interpretation of the raw value. A nil result means the
// rule does not apply and the next one runs.
type rule func(string) *time.Time

// rules is evaluated in priority order. Earlier rules win.
var rules = []rule{
	parseEpoch,
	parseISO,
	parseCalendarText,
	parseNumericGroups,
}

// ParseDate normalizes a raw date value, or returns nil if no rule produces a
// valid calendar date. It is pure and total: it never panics and never
// returns an error, because a record with an unparsable date is excluded
// from aggregation rather than failing the pass.
func ParseDate(raw string) *Date {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, r := range rules {
		if t := r(raw); t != nil {
			return fromTime(*t)
		}
	}
	return nil
}

func fromTime(t time.Time) *Date {
	return &Date{
		DateKey:   t.Format("2006-01-02"),
		Formatted: t.Format("02/01/2006"),
		Year:      t.Year(),
	}
}

var epochPattern = regexp.MustCompile(`^\d{10,13}$`)

// parseEpoch interprets a bare 10-13 digit number as a Unix epoch. Values of
// at least 10,000,000,000 are milliseconds, smaller ones seconds.
func parseEpoch(raw string) *time.Time {
	if !epochPattern.MatchString(raw) {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	var t time.Time
	if n >= 10_000_000_000 {
		t = time.UnixMilli(n).UTC()
	} else {
		t = time.Unix(n, 0).UTC()
	}
	return &t
}

var isoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseISO handles text beginning with a 4-digit year followed by -MM-DD,
// with an optional time suffix separated by either T or a space.
func parseISO(raw string) *time.Time {
	if !isoPattern.MatchString(raw) {
		return nil
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	// The date part is well-formed even when the time suffix is not.
	if t, err := time.Parse("2006-01-02", raw[:10]); err == nil {
		return &t
	}
	return nil
}

var calendarLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"Jan 2, 2006 15:04:05",
}

// parseCalendarText handles month-name calendar formats. Purely numeric
// slash and dash forms fall through to the group-extraction rule so that
// day/month disambiguation happens in exactly one place.
func parseCalendarText(raw string) *time.Time {
	for _, layout := range calendarLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

var digitGroups = regexp.MustCompile(`\d+`)

// parseNumericGroups extracts the first three numeric groups found anywhere
// in the text. A first group above 1000 is read as year/month/day. Otherwise
// a third group above 1000 is the year, and a first group above 12 must be
// the day rather than the month.
func parseNumericGroups(raw string) *time.Time {
	groups := digitGroups.FindAllString(raw, 3)
	if len(groups) < 3 {
		return nil
	}

	nums := make([]int, 3)
	for i, g := range groups {
		n, err := strconv.Atoi(g)
		if err != nil {
			return nil
		}
		nums[i] = n
	}

	var year, month, day int
	switch {
	case nums[0] > 1000:
		year, month, day = nums[0], nums[1], nums[2]
	case nums[2] > 1000:
		year = nums[2]
		if nums[0] > 12 {
			day, month = nums[0], nums[1]
		} else {
			month, day = nums[0], nums[1]
		}
	default:
		return nil
	}

	return makeDate(year, month, day)
}

// makeDate builds a time.Time and rejects values time.Date would silently
// roll over, such as month 13 or February 30.
func makeDate(year, month, day int) *time.Time {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return nil
	}
	return &t
}
