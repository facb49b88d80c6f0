package punch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "janedoe", CanonicalName("Jane Doe"))
	assert.Equal(t, "janedoe", CanonicalName("  jane\tDOE \n"))
	assert.Equal(t, "o'brienmary", CanonicalName("O'Brien Mary"))
	assert.Equal(t, "", CanonicalName("   "))
}

func TestMatchesBothNameOrders(t *testing.T) {
	keys := NameKeys("Jane", "Doe")

	assert.True(t, Matches("Jane Doe", keys))
	assert.True(t, Matches("Doe Jane", keys))
	assert.True(t, Matches("JANEDOE", keys))
	assert.True(t, Matches(" doe  jane ", keys))

	assert.False(t, Matches("Jane D", keys))
	assert.False(t, Matches("Jan Doe", keys))
	assert.False(t, Matches("", keys))
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	assert.Zero(t, s.Count)
	assert.Nil(t, s.Entry)
	assert.Nil(t, s.Exit)
}

func TestSummarizeSinglePunchNoonRule(t *testing.T) {
	morning := time.Date(2026, 3, 4, 8, 55, 0, 0, time.UTC)
	s := Summarize([]time.Time{morning})

	assert.Equal(t, 1, s.Count)
	require.NotNil(t, s.Entry)
	assert.Equal(t, morning, *s.Entry)
	assert.Nil(t, s.Exit)

	afternoon := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	s = Summarize([]time.Time{afternoon})

	require.NotNil(t, s.Exit)
	assert.Equal(t, afternoon, *s.Exit)
	assert.Nil(t, s.Entry)
}

func TestSummarizeMultiplePunches(t *testing.T) {
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	// Order must not matter; only min and max survive.
	s := Summarize([]time.Time{at(12, 30), at(8, 58), at(17, 4), at(13, 10)})

	assert.Equal(t, 4, s.Count)
	require.NotNil(t, s.Entry)
	require.NotNil(t, s.Exit)
	assert.Equal(t, at(8, 58), *s.Entry)
	assert.Equal(t, at(17, 4), *s.Exit)
}
