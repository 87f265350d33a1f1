package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayRange(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	at := time.Date(2026, 3, 9, 18, 45, 12, 999, loc)

	start, end := DayRange(at)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, loc), end)

	// any instant of the day maps into [start, end)
	assert.False(t, at.Before(start))
	assert.True(t, at.Before(end))

	// midnight itself belongs to its own day
	s2, e2 := DayRange(start)
	assert.Equal(t, start, s2)
	assert.Equal(t, end, e2)
}

func TestValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59", "12:05"}
	for _, s := range valid {
		assert.True(t, ValidTimeOfDay(s), s)
	}
	invalid := []string{"", "9:30", "24:00", "12:60", "ab:cd", "12-30", "012:3", "12:345"}
	for _, s := range invalid {
		assert.False(t, ValidTimeOfDay(s), s)
	}
}

func TestTimeOfDayStringOrderIsChronological(t *testing.T) {
	assert.True(t, "09:00" < "10:00")
	assert.True(t, "09:59" < "10:00")
	assert.True(t, "10:00" < "10:01")
	assert.False(t, "23:59" < "00:00")
}

func TestParseDateYMD(t *testing.T) {
	d, err := ParseDateYMD("2026-03-09")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 9, d.Day())

	_, err = ParseDateYMD("09-03-2026")
	assert.Error(t, err)
	_, err = ParseDateYMD("2026-13-01")
	assert.Error(t, err)
	_, err = ParseDateYMD("")
	assert.Error(t, err)

	d, err = ParseDateYMD("  2026-03-09 ")
	require.NoError(t, err)
	assert.Equal(t, 9, d.Day())
}
