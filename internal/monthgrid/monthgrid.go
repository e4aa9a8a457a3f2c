// Package monthgrid lays out the dashboard's monthly meal calendar.
package monthgrid

import (
	"fmt"
	"time"

	"dietSurvivalWeb/internal/types/calendar"
	"dietSurvivalWeb/internal/types/meal"
)

var Weekdays = []string{"일", "월", "화", "수", "목", "금", "토"}

// Dot is one meal indicator under a date.
type Dot struct {
	Type   meal.MealType `json:"type"`
	HasLog bool          `json:"hasLog"`
	Class  string        `json:"class"`
}

type Day struct {
	Date    string `json:"date"`
	Number  int    `json:"number"`
	IsToday bool   `json:"isToday"`
	HasLogs bool   `json:"hasLogs"`
	Dots    []Dot  `json:"dots"`
}

type Grid struct {
	Year     int      `json:"year"`
	Month    int      `json:"month"`
	Title    string   `json:"title"`
	Weekdays []string `json:"weekdays"`
	// Offset is the number of blank cells before day 1 (0 = Sunday).
	Offset int   `json:"offset"`
	Days   []Day `json:"days"`
	Prev   Month `json:"prev"`
	Next   Month `json:"next"`
}

type Month struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Shift moves m by delta months, carrying across year boundaries.
func (m Month) Shift(delta int) Month {
	t := time.Date(m.Year, time.Month(m.Month)+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: int(t.Month())}
}

// Valid reports whether m names a real calendar month.
func (m Month) Valid() bool {
	return m.Month >= 1 && m.Month <= 12 && m.Year > 0
}

// Build lays out every day of m. cal may be nil, in which case no day has
// indicators. today is compared by calendar date only.
func Build(m Month, cal *calendar.MonthlyCalendar, today time.Time) Grid {
	first := time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC)
	daysIn := first.AddDate(0, 1, -1).Day()
	todayKey := today.Format(time.DateOnly)

	g := Grid{
		Year:     m.Year,
		Month:    m.Month,
		Title:    fmt.Sprintf("%d년 %d월", m.Year, m.Month),
		Weekdays: Weekdays,
		Offset:   int(first.Weekday()),
		Days:     make([]Day, 0, daysIn),
		Prev:     m.Shift(-1),
		Next:     m.Shift(1),
	}

	for n := 1; n <= daysIn; n++ {
		key := first.AddDate(0, 0, n-1).Format(time.DateOnly)
		d := Day{Date: key, Number: n, IsToday: key == todayKey, Dots: []Dot{}}
		if cal != nil {
			if dm, ok := cal.Days[key]; ok {
				for _, slot := range dm.Meals {
					d.Dots = append(d.Dots, dot(slot))
					if slot.HasLog {
						d.HasLogs = true
					}
				}
			}
		}
		g.Days = append(g.Days, d)
	}
	return g
}

func dot(s calendar.MealSlot) Dot {
	class := "bg-gray-200"
	if s.HasLog {
		class = "meal-" + string(s.Type)
	}
	return Dot{Type: s.Type, HasLog: s.HasLog, Class: class}
}

// LongDate formats an ISO date as "2025년 1월 15일"; unparseable input is
// returned unchanged.
func LongDate(iso string) string {
	t, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}
