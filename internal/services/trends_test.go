package services

import (
	"testing"
	"time"

	"github.com/mindgarden/mindgarden-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moodAt(label models.MoodLabel, createdAt time.Time) models.MoodEntry {
	return models.MoodEntry{Mood: label, CreatedAt: createdAt}
}

func TestFilterWindowBoundaries(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	justInside := moodAt(models.MoodHappy, now.Add(-WeeklyWindow).Add(time.Second))
	exactly := moodAt(models.MoodHappy, now.Add(-WeeklyWindow))
	justOutside := moodAt(models.MoodHappy, now.Add(-WeeklyWindow).Add(-time.Second))

	weekly := FilterWindow([]models.MoodEntry{justInside, exactly, justOutside}, now, WeeklyWindow)
	assert.Len(t, weekly, 2, "now-7d+1s and now-7d are in, now-7d-1s is out")

	monthly := FilterWindow([]models.MoodEntry{justOutside}, now, MonthlyWindow)
	assert.Len(t, monthly, 1, "an 8-day-old entry is still in the monthly bucket")
}

func TestAggregateStatsPercentages(t *testing.T) {
	now := time.Now()
	entries := []models.MoodEntry{
		moodAt(models.MoodHappy, now),
		moodAt(models.MoodHappy, now),
		moodAt(models.MoodHappy, now),
		moodAt(models.MoodHappy, now),
		moodAt(models.MoodSad, now),
	}

	stats := AggregateStats(entries)
	require.Equal(t, 5, stats.Total)
	require.Len(t, stats.Moods, 2)

	assert.Equal(t, models.MoodHappy, stats.Moods[0].Mood)
	assert.Equal(t, 4, stats.Moods[0].Count)
	assert.Equal(t, 80.0, stats.Moods[0].Percentage)

	assert.Equal(t, models.MoodSad, stats.Moods[1].Mood)
	assert.Equal(t, 1, stats.Moods[1].Count)
	assert.Equal(t, 20.0, stats.Moods[1].Percentage)
}

func TestAggregateStatsRounding(t *testing.T) {
	now := time.Now()
	entries := []models.MoodEntry{
		moodAt(models.MoodHappy, now),
		moodAt(models.MoodSad, now),
		moodAt(models.MoodAnxious, now),
	}

	stats := AggregateStats(entries)
	for _, s := range stats.Moods {
		assert.Equal(t, 33.3, s.Percentage)
	}
}

func TestAggregateStatsNormalizesCasing(t *testing.T) {
	now := time.Now()
	entries := []models.MoodEntry{
		moodAt(models.MoodLabel("Happy"), now),
		moodAt(models.MoodLabel("happy"), now),
		moodAt(models.MoodLabel("HAPPY"), now),
	}

	stats := AggregateStats(entries)
	require.Len(t, stats.Moods, 1)
	assert.Equal(t, models.MoodHappy, stats.Moods[0].Mood)
	assert.Equal(t, 3, stats.Moods[0].Count)
	assert.Equal(t, 100.0, stats.Moods[0].Percentage)
}

func TestAggregateStatsEmptyBucket(t *testing.T) {
	stats := AggregateStats(nil)
	assert.Equal(t, 0, stats.Total)
	assert.Empty(t, stats.Moods)
}

func TestComputeTrends(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	entries := []models.MoodEntry{
		moodAt(models.MoodHappy, now.Add(-time.Hour)),          // weekly + monthly
		moodAt(models.MoodSad, now.Add(-10*24*time.Hour)),      // monthly only
		moodAt(models.MoodAnxious, now.Add(-40*24*time.Hour)),  // neither
		moodAt(models.MoodNeutral, now.Add(-6*24*time.Hour)),   // weekly + monthly
	}

	trends := ComputeTrends(entries, now)
	assert.Equal(t, 4, trends.TotalEntries)
	assert.Equal(t, 2, trends.Weekly.Total)
	assert.Equal(t, 3, trends.Monthly.Total)
}
