// internal/calendar/calendar.go
package calendar

import (
	"fmt"
	"time"

	"github.com/unclebandit/contentcal-backend/internal/model"
)

// Months are zero-based throughout this package (0 = January, 11 = December),
// matching the month index the UI sends.

const (
	DirectionPrev = "prev"
	DirectionNext = "next"
)

// Date is a plain calendar date used to inject "today" into grid building.
// Month is zero-based like everywhere else in this package.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Before compares dates lexicographically by (year, month, day).
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// Today converts a clock reading into a Date. Callers pass the result down
// so the builder itself never touches the system clock.
func Today(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()) - 1, Day: t.Day()}
}

// FirstWeekday returns the weekday of the 1st of the month, 0 = Sunday.
func FirstWeekday(month, year int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// DaysInMonth returns the day count of the month, Gregorian leap rules
// included. Day 0 of the following month normalizes to the last day of
// this one.
func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildGrid produces the cells of a 7-column month grid: FirstWeekday
// padding cells followed by one cell per day, ascending. Trailing padding is
// left to the caller.
func BuildGrid(month, year int, today Date) ([]model.CalendarCell, error) {
	if month < 0 || month > 11 {
		return nil, fmt.Errorf("month out of range: %d", month)
	}

	first := FirstWeekday(month, year)
	days := DaysInMonth(month, year)

	cells := make([]model.CalendarCell, 0, first+days)
	for i := 0; i < first; i++ {
		cells = append(cells, model.CalendarCell{Empty: true})
	}
	for d := 1; d <= days; d++ {
		cell := model.CalendarCell{
			Day:     d,
			IsToday: today.Year == year && today.Month == month && today.Day == d,
			IsPast:  (Date{Year: year, Month: month, Day: d}).Before(today),
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

// ShiftMonth returns the adjacent (month, year) pair, wrapping across the
// year boundary in both directions.
func ShiftMonth(month, year int, direction string) (int, int, error) {
	if month < 0 || month > 11 {
		return 0, 0, fmt.Errorf("month out of range: %d", month)
	}
	switch direction {
	case DirectionNext:
		if month == 11 {
			return 0, year + 1, nil
		}
		return month + 1, year, nil
	case DirectionPrev:
		if month == 0 {
			return 11, year - 1, nil
		}
		return month - 1, year, nil
	default:
		return 0, 0, fmt.Errorf("unknown direction: %q", direction)
	}
}
