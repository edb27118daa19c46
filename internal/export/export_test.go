package export

import (
	"strings"
	"testing"
	"time"

	"educagenda/internal/agenda"
)

func sampleEvents() []agenda.Event {
	loc := "Clínica X"
	return []agenda.Event{
		{
			ID:          "ev-1",
			Title:       "Consulta",
			Timestamp:   time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC),
			Location:    &loc,
			LeadMinutes: 15,
			Category:    agenda.CategoryHealth,
		},
		{
			ID:          "ev-2",
			Title:       "Aula de inglês",
			Timestamp:   time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC),
			LeadMinutes: 10,
			Category:    agenda.CategoryEducation,
		},
	}
}

func TestHTMLRendersRows(t *testing.T) {
	now := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	doc, err := HTML("sexta-feira, 10 de maio de 2024", sampleEvents(), now)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"EducAgenda",
		"sexta-feira, 10 de maio de 2024",
		"<td>14:30</td>",
		"<td>Consulta</td>",
		"<td>Health</td>",
		"<td>Clínica X</td>",
		"<td>15 min</td>",
		"<td>—</td>", // missing location
		"Gerado em 10/05/2024 08:00",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestHTMLEmptyDay(t *testing.T) {
	doc, err := HTML("sábado, 11 de maio de 2024", nil, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(doc, "Sem agendamentos para hoje.") {
		t.Error("empty agenda should render the placeholder row")
	}
}

func TestText(t *testing.T) {
	got := Text("sexta-feira, 10 de maio de 2024", sampleEvents())

	want := "Agenda de hoje (sexta-feira, 10 de maio de 2024)\n" +
		"• 14:30 - Consulta — Clínica X\n" +
		"• 18:00 - Aula de inglês"
	if got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestTextEmpty(t *testing.T) {
	got := Text("sábado, 11 de maio de 2024", nil)
	if !strings.Contains(got, "Sem agendamentos para hoje.") {
		t.Errorf("text = %q", got)
	}
}

func TestICS(t *testing.T) {
	now := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	out := ICS(sampleEvents(), now)

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"PRODID:" + icsProductID,
		"UID:ev-1@educagenda",
		"SUMMARY:Consulta",
		"LOCATION:Clínica X",
		"BEGIN:VALARM",
		"TRIGGER:-PT15M",
		"TRIGGER:-PT10M",
		"END:VCALENDAR",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ICS output missing %q", want)
		}
	}

	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("VEVENT count = %d, want 2", got)
	}
}

func TestDayLabelPTBR(t *testing.T) {
	got := DayLabelPTBR(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	if got != "sexta-feira, 10 de maio de 2024" {
		t.Errorf("label = %q", got)
	}
}
