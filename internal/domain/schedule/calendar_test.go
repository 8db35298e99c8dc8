package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-crm/internal/timezone"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-07-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.July, d.Month())
	assert.Equal(t, 15, d.Day())

	_, err = ParseDate("15/07/2024")
	assert.Error(t, err)

	_, err = ParseDate("2024-7-15")
	assert.Error(t, err)
}

func TestMonthWindow(t *testing.T) {
	ref := time.Date(2024, time.July, 15, 10, 0, 0, 0, timezone.Location())
	start, end := MonthWindow(ref)
	assert.Equal(t, "2024-07-01", start)
	assert.Equal(t, "2024-07-31", end)

	// Fevereiro bissexto
	ref = time.Date(2024, time.February, 10, 0, 0, 0, 0, timezone.Location())
	start, end = MonthWindow(ref)
	assert.Equal(t, "2024-02-01", start)
	assert.Equal(t, "2024-02-29", end)
}

func TestPrevMonthJanuaryRollsToDecember(t *testing.T) {
	ref := time.Date(2024, time.January, 15, 0, 0, 0, 0, timezone.Location())
	start, end := MonthWindow(PrevMonth(ref))
	assert.Equal(t, "2023-12-01", start)
	assert.Equal(t, "2023-12-31", end)
}

func TestPrevMonthFromMonthEnd(t *testing.T) {
	// 31 de março: partir do dia 1 evita cair em "31 de fevereiro".
	ref := time.Date(2024, time.March, 31, 0, 0, 0, 0, timezone.Location())
	start, end := MonthWindow(PrevMonth(ref))
	assert.Equal(t, "2024-02-01", start)
	assert.Equal(t, "2024-02-29", end)
}

func TestPercentChange(t *testing.T) {
	cases := []struct {
		current int64
		last    int64
		want    int
	}{
		{5, 0, 0},
		{0, 0, 0},
		{15, 10, 50},
		{5, 10, -50},
		{10, 10, 0},
		{1, 3, -67},
		{0, 4, -100},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, PercentChange(tc.current, tc.last),
			"PercentChange(%d, %d)", tc.current, tc.last)
	}
}
