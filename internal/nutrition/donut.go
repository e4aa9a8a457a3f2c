// Package nutrition computes the macro breakdown shown in the daily report.
package nutrition

import (
	"dietSurvivalWeb/internal/percent"
	"dietSurvivalWeb/internal/types/meal"
)

const (
	kcalPerGramCarbs   = 4
	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
)

type Slice struct {
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Grams      float64 `json:"grams"`
	Kcal       float64 `json:"kcal"`
	Percentage int     `json:"percentage"`
}

type Donut struct {
	TotalCalories float64 `json:"totalCalories"`
	Slices        []Slice `json:"slices"`
}

// NewDonut splits a day's macros into calorie shares of totalCalories.
// Shares are all zero when totalCalories is not positive.
func NewDonut(carbs, protein, fat, totalCalories float64) Donut {
	return Donut{
		TotalCalories: totalCalories,
		Slices: []Slice{
			slice("탄수화물", "#3b82f6", carbs, carbs*kcalPerGramCarbs, totalCalories),
			slice("단백질", "#ef4444", protein, protein*kcalPerGramProtein, totalCalories),
			slice("지방", "#f59e0b", fat, fat*kcalPerGramFat, totalCalories),
		},
	}
}

// ForDay builds the donut from a daily report's totals.
func ForDay(d meal.DailyNutrition) Donut {
	return NewDonut(d.TotalCarbs, d.TotalProtein, d.TotalFat, d.TotalCalories)
}

func slice(name, color string, grams, kcal, total float64) Slice {
	s := Slice{Name: name, Color: color, Grams: grams, Kcal: kcal}
	s.Percentage = percent.Of(kcal, total)
	return s
}
