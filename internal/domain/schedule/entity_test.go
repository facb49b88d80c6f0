package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalWeekday(t *testing.T) {
	// 2026-03-02 is a Monday.
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	for i, want := range []int{1, 2, 3, 4, 5, 6, 7} {
		date := monday.AddDate(0, 0, i)
		assert.Equal(t, want, CanonicalWeekday(date), "%s", date.Weekday())
	}
}
