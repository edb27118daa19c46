package handler

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"educagenda/internal/agenda"

	"github.com/go-chi/chi/v5"
)

type EventReadHandler struct {
	Svc *agenda.Service
	Loc *time.Location
}

func (h *EventReadHandler) location() *time.Location {
	if h.Loc != nil {
		return h.Loc
	}
	return time.Local
}

// parseWhen accepts either a bare calendar day or a full RFC3339 instant.
func parseWhen(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.ParseInLocation("2006-01-02", raw, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func ownerFilter(r *http.Request) *uint64 {
	raw := strings.TrimSpace(r.URL.Query().Get("owner"))
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// List serves the range query behind every calendar view:
// GET /events?start=2024-05-01&end=2024-05-31[&owner=ID]
func (h *EventReadHandler) List(w http.ResponseWriter, r *http.Request) {
	loc := h.location()

	start, err := parseWhen(r.URL.Query().Get("start"), loc)
	if err != nil {
		http.Error(w, "invalid start", http.StatusBadRequest)
		return
	}
	end, err := parseWhen(r.URL.Query().Get("end"), loc)
	if err != nil {
		http.Error(w, "invalid end", http.StatusBadRequest)
		return
	}
	// a bare day as range end means the whole day
	if strings.TrimSpace(r.URL.Query().Get("end")) == end.Format("2006-01-02") {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}

	rows, err := h.Svc.ListRange(r.Context(), start, end, ownerFilter(r))
	if err != nil {
		writeEventErr(w, err)
		return
	}

	out := make([]eventDTO, 0, len(rows))
	for _, ev := range rows {
		out = append(out, toDTO(ev))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (h *EventReadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ev, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeEventErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toDTO(ev))
}

// Month serves the monthly calendar: one query for the whole month,
// grouped by local calendar day, plus the marked-day list.
// GET /agenda/month?anchor=2024-05
func (h *EventReadHandler) Month(w http.ResponseWriter, r *http.Request) {
	loc := h.location()

	anchor := time.Now().In(loc)
	if raw := strings.TrimSpace(r.URL.Query().Get("anchor")); raw != "" {
		t, err := time.ParseInLocation("2006-01", raw, loc)
		if err != nil {
			http.Error(w, "invalid anchor (YYYY-MM)", http.StatusBadRequest)
			return
		}
		anchor = t
	}

	rows, err := h.Svc.ListMonth(r.Context(), anchor, ownerFilter(r))
	if err != nil {
		writeEventErr(w, err)
		return
	}

	grouped := agenda.GroupByDay(rows, loc)
	days := make(map[string][]eventDTO, len(grouped))
	marked := make([]string, 0, len(grouped))
	for key, evs := range grouped {
		out := make([]eventDTO, 0, len(evs))
		for _, ev := range evs {
			out = append(out, toDTO(ev))
		}
		days[key] = out
		marked = append(marked, key)
	}
	sort.Strings(marked)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"month":  anchor.Format("2006-01"),
		"days":   days,
		"marked": marked,
	})
}
