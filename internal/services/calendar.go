package services

import (
	"time"

	"github.com/mindgarden/mindgarden-backend/internal/models"
)

// CalendarDay is one cell of the month grid. Blank cells (leading offset
// days before the 1st) have Day 0.
type CalendarDay struct {
	Day       int              `json:"day"`
	Blank     bool             `json:"blank,omitempty"`
	Mood      models.MoodLabel `json:"mood,omitempty"`
	ExtraMood int              `json:"extra_moods,omitempty"`
	IsToday   bool             `json:"is_today,omitempty"`
}

// MoodCalendar is the month grid for the calendar view.
type MoodCalendar struct {
	Year  int           `json:"year"`
	Month time.Month    `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// SameDate reports calendar-date equality in a's location, independent of
// time-of-day.
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// BuildCalendar renders the month containing now as a grid of day cells:
// leading blanks for the first week's offset, then one cell per day. A day
// with multiple entries shows the one with the latest createdAt as its
// representative mood and the rest as an overflow count.
func BuildCalendar(entries []models.MoodEntry, now time.Time) MoodCalendar {
	year, month, _ := now.Date()
	loc := now.Location()

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()
	offset := int(firstDay.Weekday())

	cal := MoodCalendar{
		Year:  year,
		Month: month,
		Days:  make([]CalendarDay, 0, offset+daysInMonth),
	}

	for i := 0; i < offset; i++ {
		cal.Days = append(cal.Days, CalendarDay{Blank: true})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, loc)
		cell := CalendarDay{Day: day, IsToday: SameDate(date, now)}

		var latest *models.MoodEntry
		count := 0
		for i := range entries {
			if !SameDate(date, entries[i].CreatedAt) {
				continue
			}
			count++
			if latest == nil || entries[i].CreatedAt.After(latest.CreatedAt) {
				latest = &entries[i]
			}
		}
		if latest != nil {
			cell.Mood = models.NormalizeMood(string(latest.Mood))
			cell.ExtraMood = count - 1
		}

		cal.Days = append(cal.Days, cell)
	}

	return cal
}
