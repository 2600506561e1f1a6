package domain

// Ticket is one classified service-desk record, shaped for reporting.
// Columns the pipeline does not interpret are carried in Extra so nothing
// from the source export is lost.
type Ticket struct {
	TicketNumber string
	Item         string
	Category     string
	Priority     string
	Status       string

	Assignee string
	// Collab is the second assignee when this ticket was reassigned to
	// another technician on the same day. Empty for ordinary tickets.
	Collab string

	CreatedOn string
	AgeHours  float64

	Clause string

	// Risk scoring: likelihood x impact.
	RiskLikelihood int
	RiskImpact     int
	RiskLevel      int

	DurationHours float64

	// Extra holds source columns outside the fixed projection, keyed by
	// their normalized header names.
	Extra map[string]string
}

// Field returns the value of a projected field by its normalized key,
// falling back to the Extra mapping for pass-through columns.
func (t Ticket) Field(key string) string {
	switch key {
	case "ticketNumber":
		return t.TicketNumber
	case "item":
		return t.Item
	case "category":
		return t.Category
	case "priority":
		return t.Priority
	case "status":
		return t.Status
	case "assignee":
		return t.Assignee
	case "collab":
		return t.Collab
	case "createdOn":
		return t.CreatedOn
	case "clause":
		return t.Clause
	}
	return t.Extra[key]
}
