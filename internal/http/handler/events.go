package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"educagenda/internal/agenda"
	"educagenda/internal/auth"

	"github.com/go-chi/chi/v5"
)

type EventHandler struct {
	Svc *agenda.Service
}

type eventReq struct {
	Title       string `json:"title"`
	Date        string `json:"date"` // "2006-01-02"
	Time        string `json:"time"` // "15:04"
	Location    string `json:"location"`
	LeadMinutes string `json:"lead_minutes"` // free text, normalized server-side
	Category    string `json:"category"`

	// AssignOwner ties the event to the authenticated user. Off by
	// default: listings stay system-wide, as the app behaves today.
	AssignOwner bool `json:"assign_owner"`
}

type eventDTO struct {
	ID          string          `json:"id"`
	Owner       *uint64         `json:"owner"`
	Title       string          `json:"title"`
	Timestamp   time.Time       `json:"timestamp"`
	Location    *string         `json:"location"`
	LeadMinutes int             `json:"lead_minutes"`
	Category    agenda.Category `json:"category"`
}

func toDTO(ev agenda.Event) eventDTO {
	return eventDTO{
		ID:          ev.ID,
		Owner:       ev.Owner,
		Title:       ev.Title,
		Timestamp:   ev.Timestamp,
		Location:    ev.Location,
		LeadMinutes: ev.LeadMinutes,
		Category:    ev.Category,
	}
}

func (h *EventHandler) draftFrom(r *http.Request, req eventReq) agenda.Draft {
	d := agenda.Draft{
		Title:       req.Title,
		Date:        req.Date,
		TimeOfDay:   req.Time,
		Location:    req.Location,
		LeadMinutes: req.LeadMinutes,
		Category:    req.Category,
	}
	if req.AssignOwner {
		if uid, ok := auth.UserIDFromContext(r.Context()); ok {
			d.Owner = &uid
		}
	}
	return d
}

// writeEventErr maps service errors: validation stops before any write
// and answers 400; everything else surfaces the raw message.
func writeEventErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, agenda.ErrEmptyTitle),
		errors.Is(err, agenda.ErrBadDate),
		errors.Is(err, agenda.ErrBadTime),
		errors.Is(err, agenda.ErrInvalidRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, agenda.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req eventReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	ev, err := h.Svc.Create(r.Context(), h.draftFrom(r, req))
	if err != nil {
		writeEventErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toDTO(ev))
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req eventReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	ev, err := h.Svc.Update(r.Context(), id, h.draftFrom(r, req))
	if err != nil {
		writeEventErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toDTO(ev))
}

// Delete requires the caller to restate intent with ?confirm=true, the
// server-side form of the app's destructive-action dialog. Without it
// the row is left untouched.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if r.URL.Query().Get("confirm") != "true" {
		http.Error(w, "confirmation required", http.StatusBadRequest)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeEventErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
