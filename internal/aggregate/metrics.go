package aggregate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/deskops/internal/domain"
)

// technicianMetrics folds the union of a bucket's four ticket lists into
// per-technician rollups. Metrics are rebuilt from scratch on every pass;
// the invariant TotalTickets == sum of the per-status counts holds by
// construction.
func technicianMetrics(bucket *domain.DailyBucket) []domain.TechnicianMetric {
	type acc struct {
		metric domain.TechnicianMetric
		hours  float64
	}
	byName := make(map[string]*acc)
	var order []string

	fold := func(tickets []domain.Ticket) {
		for _, t := range tickets {
			name := domain.CoalesceStr(t.Assignee, domain.FallbackAssignee)
			a, ok := byName[name]
			if !ok {
				a = &acc{metric: domain.TechnicianMetric{Name: name}}
				byName[name] = a
				order = append(order, name)
			}

			switch strings.ToLower(t.Status) {
			case "closed":
				a.metric.Closed++
			case "in progress":
				a.metric.InProgress++
			case "open":
				a.metric.Open++
			case "on hold":
				a.metric.OnHold++
			case "scheduled":
				a.metric.Scheduled++
			default:
				a.metric.Other++
			}
			a.metric.TotalTickets++
			a.hours += t.DurationHours
		}
	}

	fold(bucket.Main)
	fold(bucket.Pending)
	fold(bucket.Preventive)
	fold(bucket.Collaboration)

	sort.Strings(order)

	metrics := make([]domain.TechnicianMetric, 0, len(order))
	for _, name := range order {
		a := byName[name]
		a.metric.TotalWorkHours = fmt.Sprintf("%.2f", a.hours)
		metrics = append(metrics, a.metric)
	}
	return metrics
}
