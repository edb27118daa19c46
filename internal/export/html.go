// Package export renders an event list into shareable documents: a
// printable HTML page, a plain-text summary for messaging fallback and
// an iCalendar feed.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"educagenda/internal/agenda"
)

var agendaTmpl = template.Must(template.New("agenda").Parse(`<html lang="pt-br">
  <head>
    <meta charset="utf-8" />
    <style>
      * { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; }
      h1 { margin: 0 0 4px 0; font-size: 22px; }
      h2 { margin: 0 0 16px 0; font-size: 14px; color:#555; font-weight: 500; }
      table { width: 100%; border-collapse: collapse; }
      th, td { padding: 10px; border-bottom: 1px solid #eee; font-size: 12px; text-align:left; }
      th { background:#f7f7f7; font-weight:700; }
      .footer { margin-top: 18px; font-size: 11px; color:#888; }
    </style>
  </head>
  <body>
    <h1>EducAgenda</h1>
    <h2>Agendamentos de hoje — {{.Day}}</h2>

    <table>
      <thead>
        <tr>
          <th>Hora</th>
          <th>Título</th>
          <th>Categoria</th>
          <th>Local</th>
          <th>Lembrete</th>
        </tr>
      </thead>
      <tbody>
        {{- if .Rows}}
        {{- range .Rows}}
        <tr>
          <td>{{.Time}}</td>
          <td>{{.Title}}</td>
          <td>{{.Category}}</td>
          <td>{{.Location}}</td>
          <td>{{.Lead}} min</td>
        </tr>
        {{- end}}
        {{- else}}
        <tr><td colspan="5">Sem agendamentos para hoje.</td></tr>
        {{- end}}
      </tbody>
    </table>

    <div class="footer">Gerado em {{.GeneratedAt}}</div>
  </body>
</html>
`))

type htmlRow struct {
	Time     string
	Title    string
	Category agenda.Category
	Location string
	Lead     int
}

// HTML renders the printable daily agenda document. dayLabel is the
// human heading for the day ("sexta-feira, 10 de maio de 2024").
func HTML(dayLabel string, events []agenda.Event, now time.Time) (string, error) {
	rows := make([]htmlRow, 0, len(events))
	for _, ev := range events {
		loc := "—"
		if ev.Location != nil {
			loc = *ev.Location
		}
		rows = append(rows, htmlRow{
			Time:     ev.Timestamp.Format("15:04"),
			Title:    ev.Title,
			Category: ev.Category,
			Location: loc,
			Lead:     ev.LeadMinutes,
		})
	}

	var buf bytes.Buffer
	err := agendaTmpl.Execute(&buf, map[string]any{
		"Day":         dayLabel,
		"Rows":        rows,
		"GeneratedAt": now.Format("02/01/2006 15:04"),
	})
	if err != nil {
		return "", fmt.Errorf("render agenda: %w", err)
	}
	return buf.String(), nil
}
