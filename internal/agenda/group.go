package agenda

import "time"

// DayKey formats t as the canonical calendar-day key in the given location.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// GroupByDay maps events onto their local calendar day, preserving the
// order of the input within each day. Grouping an already grouped then
// flattened list yields the same mapping.
func GroupByDay(events []Event, loc *time.Location) map[string][]Event {
	out := make(map[string][]Event, len(events))
	for _, ev := range events {
		key := DayKey(ev.Timestamp, loc)
		out[key] = append(out[key], ev)
	}
	return out
}
