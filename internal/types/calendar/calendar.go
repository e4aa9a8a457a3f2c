package calendar

import "dietSurvivalWeb/internal/types/meal"

type MealSlot struct {
	Type   meal.MealType `json:"type"`
	HasLog bool          `json:"hasLog"`
}

type DayMeals struct {
	Meals []MealSlot `json:"meals"`
}

// MonthlyCalendar keys days by ISO date (YYYY-MM-DD).
type MonthlyCalendar struct {
	Year  int                 `json:"year"`
	Month int                 `json:"month"`
	Days  map[string]DayMeals `json:"days"`
}
