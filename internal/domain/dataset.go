package domain

// Dataset is the output of one full aggregation pass. It is a pure function
// of the input rows: re-running on unchanged input yields identical contents.
type Dataset struct {
	// Buckets is ordered by descending DateKey. The order is part of the
	// output contract, not an artifact.
	Buckets []*DailyBucket

	// Global per-category lists across all days, in input order.
	Main          []Ticket
	Pending       []Ticket
	Collaboration []Ticket
	Preventive    []Ticket

	// ExcludedRows counts records dropped because their date could not be
	// normalized. They remain visible in the flat historical view but take
	// no part in bucketing.
	ExcludedRows int
}

// Bucket returns the bucket for the given date key, or nil.
func (d *Dataset) Bucket(dateKey string) *DailyBucket {
	for _, b := range d.Buckets {
		if b.DateKey == dateKey {
			return b
		}
	}
	return nil
}
