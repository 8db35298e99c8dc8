package schedule

import (
	"time"

	"github.com/BruksfildServices01/barber-crm/internal/timezone"
)

// Clock é a referência de "agora" usada para partir a agenda em
// passado / hoje / futuro. Injetável para manter os usecases
// determinísticos em teste.
type Clock interface {
	Now() time.Time
	// Today no formato 2006-01-02, no locale fixo da aplicação.
	Today() string
}

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return timezone.Now()
}

func (systemClock) Today() string {
	return timezone.Now().Format(DateLayout)
}

type fixedClock struct {
	now time.Time
}

// NewFixedClock congela o relógio em um instante; usado em testes.
func NewFixedClock(now time.Time) Clock {
	return fixedClock{now: now.In(timezone.Location())}
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func (c fixedClock) Today() string {
	return c.now.Format(DateLayout)
}
