// Package analytics contains the catch analytics aggregation use cases.
package analytics

import "time"

// DaysPerWeek is the fixed length of every weekly histogram.
const DaysPerWeek = 7

// dayNames holds the output day labels, Monday-first.
var dayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekBounds returns the boundaries of the calendar week containing now:
// the most recent Monday at 00:00:00 local time and the following Sunday at
// 23:59:59.999999999. A record created exactly at the next Monday midnight
// falls outside the range.
func WeekBounds(now time.Time) (start, end time.Time) {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 6 days past the week start
	}
	start = time.Date(now.Year(), now.Month(), now.Day()-(weekday-1), 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 0, DaysPerWeek).Add(-time.Nanosecond)
	return start, end
}

// SundayFirstIndex returns the Sunday-first bucket index (0=Sunday..6=Saturday)
// for a timestamp. This matches the grouping key the store's day-of-week
// function would produce.
func SundayFirstIndex(t time.Time) int {
	return int(t.Weekday())
}

// RotateToMondayFirst projects a Sunday-first quantity accumulator into the
// Monday-first output order. The offset is a direct index remap:
// mondayFirst[i] holds the bucket for weekday (i+1) mod 7, so index 0 is
// Monday and index 6 is Sunday.
func RotateToMondayFirst(sundayFirst [DaysPerWeek]int) [DaysPerWeek]int {
	var mondayFirst [DaysPerWeek]int
	for i := 0; i < DaysPerWeek; i++ {
		mondayFirst[i] = sundayFirst[(i+1)%DaysPerWeek]
	}
	return mondayFirst
}

// DayName returns the output label for a Monday-first index.
func DayName(mondayFirstIndex int) string {
	return dayNames[mondayFirstIndex]
}
