// Package speech turns the daily agenda into narration text and tracks
// the speaking state. Actual voice synthesis is the client's job; the
// server only prepares the sentences and the start/stop control.
package speech

import (
	"fmt"
	"strings"
	"sync"

	"educagenda/internal/agenda"
)

// Narrate flattens today's events into one sentence per event, the same
// phrasing the app reads aloud.
func Narrate(events []agenda.Event) string {
	if len(events) == 0 {
		return "Você não possui eventos para hoje."
	}

	parts := make([]string, 0, len(events))
	for i, ev := range events {
		s := fmt.Sprintf("Evento %d: %s, às %s", i+1, ev.Title, ev.Timestamp.Format("15:04"))
		if ev.Location != nil {
			s += fmt.Sprintf(", no local %s", *ev.Location)
		}
		parts = append(parts, s+".")
	}
	return strings.Join(parts, " ")
}

// Narrator is the start/stop control around a narration in progress.
type Narrator struct {
	mu       sync.Mutex
	speaking bool
	text     string
}

// Start replaces any narration in progress with text.
func (n *Narrator) Start(text string) {
	n.mu.Lock()
	n.speaking = true
	n.text = text
	n.mu.Unlock()
}

func (n *Narrator) Stop() {
	n.mu.Lock()
	n.speaking = false
	n.text = ""
	n.mu.Unlock()
}

// Speaking returns the current state and the text being spoken.
func (n *Narrator) Speaking() (bool, string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.speaking, n.text
}
