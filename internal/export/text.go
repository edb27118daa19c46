package export

import (
	"fmt"
	"strings"

	"educagenda/internal/agenda"
)

// Text builds the plain-text fallback used when document sharing is not
// available: one bullet line per event under a day header.
func Text(dayLabel string, events []agenda.Event) string {
	if len(events) == 0 {
		return fmt.Sprintf("Agenda de hoje (%s)\nSem agendamentos para hoje.", dayLabel)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Agenda de hoje (%s)\n", dayLabel)
	for _, ev := range events {
		fmt.Fprintf(&b, "• %s - %s", ev.Timestamp.Format("15:04"), ev.Title)
		if ev.Location != nil {
			fmt.Fprintf(&b, " — %s", *ev.Location)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
