package monthgrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dietSurvivalWeb/internal/types/calendar"
	"dietSurvivalWeb/internal/types/meal"
)

func TestBuild_January2025(t *testing.T) {
	cal := &calendar.MonthlyCalendar{
		Year:  2025,
		Month: 1,
		Days: map[string]calendar.DayMeals{
			"2025-01-15": {Meals: []calendar.MealSlot{
				{Type: meal.Breakfast, HasLog: true},
				{Type: meal.Lunch, HasLog: true},
				{Type: meal.Dinner, HasLog: false},
				{Type: meal.Snack, HasLog: true},
			}},
			"2025-01-20": {Meals: []calendar.MealSlot{
				{Type: meal.Dinner, HasLog: false},
			}},
		},
	}
	today := time.Date(2025, 1, 16, 9, 30, 0, 0, time.UTC)

	g := Build(Month{Year: 2025, Month: 1}, cal, today)

	assert.Equal(t, "2025년 1월", g.Title)
	assert.Equal(t, []string{"일", "월", "화", "수", "목", "금", "토"}, g.Weekdays)
	// 2025-01-01 was a Wednesday.
	assert.Equal(t, 3, g.Offset)
	require.Len(t, g.Days, 31)

	d15 := g.Days[14]
	assert.Equal(t, "2025-01-15", d15.Date)
	assert.True(t, d15.HasLogs)
	require.Len(t, d15.Dots, 4)
	assert.Equal(t, "meal-breakfast", d15.Dots[0].Class)
	assert.Equal(t, "bg-gray-200", d15.Dots[2].Class)

	assert.True(t, g.Days[15].IsToday)
	assert.False(t, d15.IsToday)

	assert.False(t, g.Days[19].HasLogs)
	assert.Len(t, g.Days[19].Dots, 1)
	assert.Empty(t, g.Days[0].Dots)
}

func TestBuild_NilCalendar(t *testing.T) {
	g := Build(Month{Year: 2024, Month: 2}, nil, time.Now())

	assert.Len(t, g.Days, 29)
	for _, d := range g.Days {
		assert.False(t, d.HasLogs)
	}
}

func TestMonth_Shift(t *testing.T) {
	assert.Equal(t, Month{Year: 2024, Month: 12}, Month{Year: 2025, Month: 1}.Shift(-1))
	assert.Equal(t, Month{Year: 2026, Month: 1}, Month{Year: 2025, Month: 12}.Shift(1))
	assert.Equal(t, Month{Year: 2025, Month: 6}, Month{Year: 2025, Month: 5}.Shift(1))

	g := Build(Month{Year: 2025, Month: 1}, nil, time.Now())
	assert.Equal(t, Month{Year: 2024, Month: 12}, g.Prev)
	assert.Equal(t, Month{Year: 2025, Month: 2}, g.Next)
}

func TestMonth_Valid(t *testing.T) {
	assert.True(t, Month{Year: 2025, Month: 12}.Valid())
	assert.False(t, Month{Year: 2025, Month: 13}.Valid())
	assert.False(t, Month{Year: 2025, Month: 0}.Valid())
}

func TestLongDate(t *testing.T) {
	assert.Equal(t, "2025년 1월 15일", LongDate("2025-01-15"))
	assert.Equal(t, "bogus", LongDate("bogus"))
}
