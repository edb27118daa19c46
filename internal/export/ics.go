package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"educagenda/internal/agenda"
)

const icsProductID = "-//EducAgenda//Agenda//PT-BR"

// eventDuration is the slot length written to the calendar; the source
// data model only stores a start instant.
const eventDuration = time.Hour

// ICS serializes the events as an iCalendar feed, one VEVENT per entry
// with a display alarm at the event's lead time.
func ICS(events []agenda.Event, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetCalscale("GREGORIAN")

	for _, ev := range events {
		ve := cal.AddEvent(fmt.Sprintf("%s@educagenda", ev.ID))
		ve.SetDtStampTime(now.UTC())
		ve.SetStartAt(ev.Timestamp)
		ve.SetEndAt(ev.Timestamp.Add(eventDuration))
		ve.SetSummary(ev.Title)
		ve.SetDescription(string(ev.Category))
		if ev.Location != nil {
			ve.SetLocation(*ev.Location)
		}

		alarm := ve.AddAlarm()
		alarm.SetAction(ics.ActionDisplay)
		alarm.SetTrigger(fmt.Sprintf("-PT%dM", ev.LeadMinutes))
	}

	return cal.Serialize()
}
