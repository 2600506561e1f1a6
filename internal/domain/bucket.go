package domain

// DailyBucket holds everything aggregated for one calendar day. The four
// ticket lists are disjoint: a ticket number appears in exactly one of them.
type DailyBucket struct {
	DateKey   string // sortable YYYY-MM-DD key
	Formatted string // DD/MM/YYYY display form
	Year      int

	Main          []Ticket
	Pending       []Ticket
	Collaboration []Ticket
	Preventive    []Ticket

	// Technicians is recomputed from the four lists on every pass.
	Technicians []TechnicianMetric

	// Upcoming is passed through from the caller unmodified.
	Upcoming []UpcomingProject
}

// TicketCount returns the total number of tickets across the bucket's four
// category lists.
func (b *DailyBucket) TicketCount() int {
	return len(b.Main) + len(b.Pending) + len(b.Collaboration) + len(b.Preventive)
}

// TechnicianMetric is a per-technician-per-day rollup. It is a derived value
// object: never mutated in place, always rebuilt from the bucket's tickets.
type TechnicianMetric struct {
	Name string

	Closed     int
	InProgress int
	Open       int
	OnHold     int
	Scheduled  int
	Other      int

	TotalTickets   int
	TotalWorkHours string // summed logged hours, formatted with two decimals
}

// UpcomingProject is an entry the surrounding application attaches to a day.
// The pipeline never interprets it.
type UpcomingProject struct {
	DateKey string
	Name    string
	Owner   string
	Status  string
}
