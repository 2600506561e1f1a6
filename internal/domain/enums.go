package domain

// Category is the lifecycle bucket a ticket lands in. A ticket belongs to
// exactly one category within a day.
type Category string

const (
	CategoryMain          Category = "main"
	CategoryPending       Category = "pending"
	CategoryCollaboration Category = "collaboration"
	CategoryPreventive    Category = "preventive_maintenance"
)

// PendingStatuses is the canonical set of status values that classify a
// ticket as pending, matched after lower-casing.
var PendingStatuses = map[string]bool{
	"in progress": true,
	"open":        true,
	"on hold":     true,
	"scheduled":   true,
}

// PreventiveMarkers are the substrings that mark a category or tag value as
// preventive maintenance, matched after lower-casing. The pending check runs
// first; these only apply to records that are not already pending.
var PreventiveMarkers = []string{"pm", "preventive", "maintenance"}

// FallbackCategory is used when a record carries neither a category nor a
// tags value.
const FallbackCategory = "General"

// FallbackAssignee is the technician name used for metric rollups when a
// ticket has no assignee.
const FallbackAssignee = "Unassigned"
