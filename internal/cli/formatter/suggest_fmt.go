package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/deskops/internal/suggest"
)

// FormatSuggestions renders advisory clause proposals. Confidence drives the
// color so low-confidence rows stand out as needing review.
func FormatSuggestions(suggestions []suggest.Suggestion) string {
	if len(suggestions) == 0 {
		return StyleDim.Render("No suggestions.") + "\n"
	}

	headers := []string{"#", "Suggested clause", "Confidence", "Reason"}
	rows := make([][]string, 0, len(suggestions))
	for _, s := range suggestions {
		conf := fmt.Sprintf("%.0f%%", s.Confidence*100)
		style := StyleGreen
		switch {
		case s.Confidence < 0.4:
			style = StyleRed
		case s.Confidence < 0.7:
			style = StyleYellow
		}
		rows = append(rows, []string{
			s.TicketID,
			s.SuggestedClause,
			style.Render(conf),
			s.Reason,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString(StyleDim.Render("Suggestions are advisory; apply them manually if they fit.") + "\n")
	return b.String()
}
