package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"educagenda/internal/agenda"
	"educagenda/internal/export"
	"educagenda/internal/speech"
)

type DashboardHandler struct {
	Svc      *agenda.Service
	Narrator *speech.Narrator
	Loc      *time.Location
}

func (h *DashboardHandler) location() *time.Location {
	if h.Loc != nil {
		return h.Loc
	}
	return time.Local
}

func (h *DashboardHandler) today(r *http.Request) ([]agenda.Event, time.Time, error) {
	now := time.Now().In(h.location())
	rows, err := h.Svc.ListDay(r.Context(), now, ownerFilter(r))
	return rows, now, err
}

// Today lists the current day's events, the dashboard view.
func (h *DashboardHandler) Today(w http.ResponseWriter, r *http.Request) {
	rows, now, err := h.today(r)
	if err != nil {
		writeEventErr(w, err)
		return
	}

	out := make([]eventDTO, 0, len(rows))
	for _, ev := range rows {
		out = append(out, toDTO(ev))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"day":       now.Format("2006-01-02"),
		"day_label": export.DayLabelPTBR(now),
		"events":    out,
	})
}

// Export renders today's agenda as a shareable document.
// GET /agenda/export?format=html|text|ics (default html; text is the
// degraded share-sheet fallback).
func (h *DashboardHandler) Export(w http.ResponseWriter, r *http.Request) {
	rows, now, err := h.today(r)
	if err != nil {
		writeEventErr(w, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(export.Text(export.DayLabelPTBR(now), rows)))
	case "ics":
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="agenda.ics"`)
		_, _ = w.Write([]byte(export.ICS(rows, now)))
	default:
		doc, err := export.HTML(export.DayLabelPTBR(now), rows, now)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(doc))
	}
}

// Narrate builds the sentence-per-event reading of today's agenda and
// marks the narrator as speaking.
func (h *DashboardHandler) Narrate(w http.ResponseWriter, r *http.Request) {
	rows, _, err := h.today(r)
	if err != nil {
		writeEventErr(w, err)
		return
	}

	text := speech.Narrate(rows)
	h.Narrator.Start(text)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"speaking": true,
		"text":     text,
	})
}

func (h *DashboardHandler) StopNarration(w http.ResponseWriter, r *http.Request) {
	h.Narrator.Stop()
	w.WriteHeader(http.StatusNoContent)
}

func (h *DashboardHandler) NarrationStatus(w http.ResponseWriter, r *http.Request) {
	speaking, text := h.Narrator.Speaking()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"speaking": speaking,
		"text":     text,
	})
}
