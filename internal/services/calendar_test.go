package services

import (
	"testing"
	"time"

	"github.com/mindgarden/mindgarden-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCalendarShape(t *testing.T) {
	// March 2026 starts on a Sunday and has 31 days.
	now := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)

	cal := BuildCalendar(nil, now)
	assert.Equal(t, 2026, cal.Year)
	assert.Equal(t, time.March, cal.Month)
	require.Len(t, cal.Days, 31, "no leading blanks when the month starts on Sunday")
	assert.Equal(t, 1, cal.Days[0].Day)
	assert.Equal(t, 31, cal.Days[30].Day)
}

func TestBuildCalendarLeadingBlanks(t *testing.T) {
	// April 2026 starts on a Wednesday: three blank cells, then 30 days.
	now := time.Date(2026, time.April, 5, 9, 0, 0, 0, time.UTC)

	cal := BuildCalendar(nil, now)
	require.Len(t, cal.Days, 3+30)
	for i := 0; i < 3; i++ {
		assert.True(t, cal.Days[i].Blank)
		assert.Zero(t, cal.Days[i].Day)
	}
	assert.Equal(t, 1, cal.Days[3].Day)
}

func TestBuildCalendarLatestEntryWins(t *testing.T) {
	now := time.Date(2026, time.March, 20, 18, 0, 0, 0, time.UTC)

	morning := models.MoodEntry{Mood: models.MoodSad, CreatedAt: time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)}
	evening := models.MoodEntry{Mood: models.MoodHappy, CreatedAt: time.Date(2026, time.March, 12, 17, 0, 0, 0, time.UTC)}

	cal := BuildCalendar([]models.MoodEntry{morning, evening}, now)

	// March 2026 starts on Sunday, so day N is at index N-1.
	cell := cal.Days[11]
	require.Equal(t, 12, cell.Day)
	assert.Equal(t, models.MoodHappy, cell.Mood, "the 17:00 entry is the representative mood")
	assert.Equal(t, 1, cell.ExtraMood, "the 09:00 entry shows as +1 more")
}

func TestBuildCalendarEmptyDays(t *testing.T) {
	now := time.Date(2026, time.March, 20, 18, 0, 0, 0, time.UTC)
	entry := models.MoodEntry{Mood: models.MoodExcited, CreatedAt: time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)}

	cal := BuildCalendar([]models.MoodEntry{entry}, now)

	assert.Equal(t, models.MoodExcited, cal.Days[4].Mood)
	assert.Zero(t, cal.Days[4].ExtraMood)

	// A day with no entries has no mood and no overflow.
	assert.Empty(t, cal.Days[5].Mood)
	assert.Zero(t, cal.Days[5].ExtraMood)
}

func TestBuildCalendarIsToday(t *testing.T) {
	now := time.Date(2026, time.March, 20, 23, 59, 59, 0, time.UTC)

	cal := BuildCalendar(nil, now)
	for _, cell := range cal.Days {
		if cell.Day == 20 {
			assert.True(t, cell.IsToday)
		} else {
			assert.False(t, cell.IsToday)
		}
	}
}

func TestSameDate(t *testing.T) {
	a := time.Date(2026, time.March, 20, 0, 0, 1, 0, time.UTC)
	b := time.Date(2026, time.March, 20, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, time.March, 21, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(a, b), "time-of-day is irrelevant")
	assert.False(t, SameDate(b, c))
}
