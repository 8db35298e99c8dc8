package schedule

import (
	"math"
	"time"

	"github.com/BruksfildServices01/barber-crm/internal/timezone"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, timezone.Location())
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthWindow devolve o primeiro e o último dia do mês de ref,
// ambos inclusivos, no formato 2006-01-02.
func MonthWindow(ref time.Time) (start, end string) {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, timezone.Location())
	last := first.AddDate(0, 1, -1)
	return FormatDate(first), FormatDate(last)
}

// PrevMonth devolve um instante dentro do mês anterior ao de ref.
// time.Date normaliza a virada de ano em janeiro.
func PrevMonth(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, timezone.Location()).
		AddDate(0, -1, 0)
}

// PercentChange arredonda ((current-last)/last)*100. Com last == 0 o
// resultado é 0: escolha de política para evitar divisão por zero,
// não um limite matemático.
func PercentChange(current, last int64) int {
	if last == 0 {
		return 0
	}
	return int(math.Round(float64(current-last) / float64(last) * 100))
}
