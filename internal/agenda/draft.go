package agenda

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrEmptyTitle = errors.New("title required")
var ErrBadDate = errors.New("invalid date")
var ErrBadTime = errors.New("invalid time")

// Draft carries the raw form fields of the create/edit screens before
// normalization. Date and TimeOfDay are picked separately and combined
// into one timestamp; LeadMinutes arrives as free text.
type Draft struct {
	Title       string
	Date        string // "2006-01-02"
	TimeOfDay   string // "15:04"
	Location    string
	LeadMinutes string
	Category    string
	Owner       *uint64
}

// Normalize validates the draft and produces the stored field values.
// Title must be non-empty after trimming. Lead time defaults to 10 when
// empty or unparseable and is clamped to zero when negative. An unknown
// category falls back to Personal.
func (d Draft) Normalize(loc *time.Location) (Event, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return Event{}, ErrEmptyTitle
	}

	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(d.Date), loc)
	if err != nil {
		return Event{}, ErrBadDate
	}
	clock, err := time.Parse("15:04", strings.TrimSpace(d.TimeOfDay))
	if err != nil {
		return Event{}, ErrBadTime
	}

	ts := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)

	var location *string
	if l := strings.TrimSpace(d.Location); l != "" {
		location = &l
	}

	cat := Category(strings.TrimSpace(d.Category))
	if !ValidCategory(cat) {
		cat = CategoryPersonal
	}

	return Event{
		Owner:       d.Owner,
		Title:       title,
		Timestamp:   ts,
		Location:    location,
		LeadMinutes: normalizeLead(d.LeadMinutes),
		Category:    cat,
	}, nil
}

func normalizeLead(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLeadMinutes
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultLeadMinutes
	}
	if n < 0 {
		return 0
	}
	return n
}
