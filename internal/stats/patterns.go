package stats

import (
	"time"

	"tamvonku/travel-stats/internal/dataset"
)

// MonthCount is the number of check-ins falling in a calendar month.
type MonthCount struct {
	Month time.Month
	Count int
}

// WeekdayCount is the number of check-ins falling on a weekday.
type WeekdayCount struct {
	Weekday time.Weekday
	Count   int
}

// CheckInsByMonth counts check-ins per calendar month, in calendar order with
// empty months omitted. Returns nil when the table has no date column.
func CheckInsByMonth(table dataset.Table) []MonthCount {
	if !table.Schema.HasDate() {
		return nil
	}

	counts := make(map[time.Month]int)
	for _, stay := range table.Stays {
		if date := table.Schema.DateValue(stay); !date.IsZero() {
			counts[date.Month()]++
		}
	}

	var result []MonthCount
	for m := time.January; m <= time.December; m++ {
		if counts[m] > 0 {
			result = append(result, MonthCount{Month: m, Count: counts[m]})
		}
	}
	return result
}

// CheckInsByWeekday counts check-ins per day of week, Monday first, with
// empty days omitted. Returns nil when the table has no date column.
func CheckInsByWeekday(table dataset.Table) []WeekdayCount {
	if !table.Schema.HasDate() {
		return nil
	}

	counts := make(map[time.Weekday]int)
	for _, stay := range table.Stays {
		if date := table.Schema.DateValue(stay); !date.IsZero() {
			counts[date.Weekday()]++
		}
	}

	weekdays := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	var result []WeekdayCount
	for _, d := range weekdays {
		if counts[d] > 0 {
			result = append(result, WeekdayCount{Weekday: d, Count: counts[d]})
		}
	}
	return result
}
