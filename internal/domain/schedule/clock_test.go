package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	clock := NewFixedClock(time.Date(2024, time.July, 15, 14, 30, 0, 0, time.UTC))

	assert.Equal(t, "2024-07-15", clock.Today())
	assert.Equal(t, clock.Now(), clock.Now())
}
