package services

import (
	"math"
	"sort"
	"time"

	"github.com/mindgarden/mindgarden-backend/internal/models"
)

const (
	// WeeklyWindow is the trailing window for the weekly bucket.
	WeeklyWindow = 7 * 24 * time.Hour
	// MonthlyWindow is the trailing window for the monthly bucket.
	MonthlyWindow = 30 * 24 * time.Hour
)

// MoodStat is the frequency and share of one mood within a bucket.
type MoodStat struct {
	Mood       models.MoodLabel `json:"mood"`
	Count      int              `json:"count"`
	Percentage float64          `json:"percentage"`
}

// BucketStats summarizes one time-windowed subset of mood entries.
type BucketStats struct {
	Total int        `json:"total"`
	Moods []MoodStat `json:"moods"`
}

// FilterWindow returns entries whose createdAt falls within the trailing
// window ending at now. Membership is inclusive at exactly now-window.
func FilterWindow(entries []models.MoodEntry, now time.Time, window time.Duration) []models.MoodEntry {
	cutoff := now.Add(-window)
	out := make([]models.MoodEntry, 0, len(entries))
	for _, e := range entries {
		if !e.CreatedAt.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// AggregateStats groups a bucket by mood label and computes counts and
// percentages (count/total*100, rounded to one decimal). An empty bucket
// yields Total 0 and no mood rows rather than a divide-by-zero.
func AggregateStats(entries []models.MoodEntry) BucketStats {
	stats := BucketStats{Total: len(entries), Moods: []MoodStat{}}
	if len(entries) == 0 {
		return stats
	}

	counts := make(map[models.MoodLabel]int)
	for _, e := range entries {
		counts[models.NormalizeMood(string(e.Mood))]++
	}

	for mood, count := range counts {
		pct := math.Round(float64(count)/float64(len(entries))*1000) / 10
		stats.Moods = append(stats.Moods, MoodStat{Mood: mood, Count: count, Percentage: pct})
	}

	// Stable output: most frequent first, ties broken alphabetically.
	sort.Slice(stats.Moods, func(i, j int) bool {
		if stats.Moods[i].Count != stats.Moods[j].Count {
			return stats.Moods[i].Count > stats.Moods[j].Count
		}
		return stats.Moods[i].Mood < stats.Moods[j].Mood
	})

	return stats
}

// MoodTrends is the full aggregation returned by the trends endpoint.
type MoodTrends struct {
	TotalEntries int         `json:"total_entries"`
	Weekly       BucketStats `json:"weekly"`
	Monthly      BucketStats `json:"monthly"`
}

// ComputeTrends buckets the entries into trailing weekly and monthly windows
// from now and aggregates each.
func ComputeTrends(entries []models.MoodEntry, now time.Time) MoodTrends {
	return MoodTrends{
		TotalEntries: len(entries),
		Weekly:       AggregateStats(FilterWindow(entries, now, WeeklyWindow)),
		Monthly:      AggregateStats(FilterWindow(entries, now, MonthlyWindow)),
	}
}
