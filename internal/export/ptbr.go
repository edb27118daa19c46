package export

import (
	"fmt"
	"time"
)

var weekdaysPTBR = [...]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

var monthsPTBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// DayLabelPTBR renders t as the day heading the app shows, e.g.
// "sexta-feira, 10 de maio de 2024".
func DayLabelPTBR(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		weekdaysPTBR[t.Weekday()], t.Day(), monthsPTBR[t.Month()-1], t.Year())
}
