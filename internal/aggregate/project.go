package aggregate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/deskops/internal/codec"
	"github.com/alexanderramin/deskops/internal/domain"
)

// projectedKeys are the normalized header names the fixed projection
// consumes. Everything else in a row is carried through in Ticket.Extra.
var projectedKeys = map[string]bool{
	"ticketNumber": true, "ticketId": true, "number": true, "id": true,
	"item": true, "subject": true, "title": true, "description": true,
	"category": true, "tags": true,
	"priority": true,
	"status":   true, "stage": true,
	"assignee": true, "technician": true, "assignedTo": true,
	"createdOn": true, "createdTime": true, "created": true, "createdAt": true,
	"clause": true, "complianceClause": true, "standardClause": true,
	"ticketAgeHours": true, "ageHours": true,
	"timeSpent": true, "duration": true, "workHours": true, "hoursLogged": true,
	"riskLikelihood": true, "riskImpact": true,
}

// projectTicket builds the common Ticket projection from one raw row.
// Optional fields coalesce across the header aliases seen in real exports;
// category falls back to tags and then to the literal "General". Numeric
// sub-fields degrade to zero rather than failing the pass.
func projectTicket(row codec.Row) domain.Ticket {
	t := domain.Ticket{
		TicketNumber: domain.CoalesceStr(row["ticketNumber"], row["ticketId"], row["number"], row["id"]),
		Item:         domain.CoalesceStr(row["item"], row["subject"], row["title"], row["description"]),
		Category:     domain.CoalesceStr(row["category"], row["tags"], domain.FallbackCategory),
		Priority:     row["priority"],
		Status:       domain.CoalesceStr(row["status"], row["stage"]),
		Assignee:     domain.CoalesceStr(row["assignee"], row["technician"], row["assignedTo"]),
		CreatedOn:    domain.CoalesceStr(row["createdOn"], row["createdTime"], row["created"], row["createdAt"]),
		Clause:       domain.CoalesceStr(row["clause"], row["complianceClause"], row["standardClause"]),
	}

	t.AgeHours = parseLeadingFloat(domain.CoalesceStr(row["ticketAgeHours"], row["ageHours"]))
	t.DurationHours = parseLeadingFloat(domain.CoalesceStr(row["timeSpent"], row["duration"], row["workHours"], row["hoursLogged"]))

	t.RiskLikelihood = int(parseLeadingFloat(row["riskLikelihood"]))
	t.RiskImpact = int(parseLeadingFloat(row["riskImpact"]))
	t.RiskLevel = t.RiskLikelihood * t.RiskImpact

	for key, val := range row {
		if projectedKeys[key] || val == "" {
			continue
		}
		if t.Extra == nil {
			t.Extra = make(map[string]string)
		}
		t.Extra[key] = val
	}

	return t
}

// classify assigns a ticket to its lifecycle category. The order is fixed:
// the pending status check runs first, then the preventive-maintenance
// marker match on category and tags, then main.
func classify(t domain.Ticket, row codec.Row) domain.Category {
	if domain.PendingStatuses[strings.ToLower(t.Status)] {
		return domain.CategoryPending
	}
	haystack := strings.ToLower(t.Category + " " + row["tags"])
	for _, marker := range domain.PreventiveMarkers {
		if strings.Contains(haystack, marker) {
			return domain.CategoryPreventive
		}
	}
	return domain.CategoryMain
}

var leadingNumber = regexp.MustCompile(`^[-+]?\d*\.?\d+`)

// parseLeadingFloat reads the leading numeric portion of a free-text value,
// so "2.5 hrs" yields 2.5. Anything without a leading number yields 0.
func parseLeadingFloat(raw string) float64 {
	raw = strings.TrimSpace(raw)
	m := leadingNumber.FindString(raw)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}
