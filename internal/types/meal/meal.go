package meal

import "strings"

type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// Slots lists meal types in display order.
var Slots = []MealType{Breakfast, Lunch, Dinner, Snack}

func (t MealType) Label() string {
	switch t {
	case Breakfast:
		return "아침"
	case Lunch:
		return "점심"
	case Dinner:
		return "저녁"
	case Snack:
		return "간식"
	default:
		return string(t)
	}
}

func (t MealType) Icon() string {
	switch t {
	case Breakfast:
		return "🌅"
	case Lunch:
		return "🌞"
	case Dinner:
		return "🌙"
	case Snack:
		return "🍿"
	default:
		return "🍽️"
	}
}

// NutriScore grades a meal from A (best) to E (worst).
type NutriScore string

const (
	ScoreA NutriScore = "A"
	ScoreB NutriScore = "B"
	ScoreC NutriScore = "C"
	ScoreD NutriScore = "D"
	ScoreE NutriScore = "E"
)

var Scores = []NutriScore{ScoreA, ScoreB, ScoreC, ScoreD, ScoreE}

// CSSClass maps a score to its badge style; unknown scores render as C.
func (s NutriScore) CSSClass() string {
	switch s {
	case ScoreA, ScoreB, ScoreC, ScoreD, ScoreE:
		return "nutri-score-" + strings.ToLower(string(s))
	default:
		return "nutri-score-c"
	}
}

type MealLog struct {
	ID         string     `json:"id"`
	Date       string     `json:"date"`
	MealType   MealType   `json:"mealType"`
	FoodName   string     `json:"foodName"`
	Calories   float64    `json:"calories"`
	Carbs      float64    `json:"carbs"`
	Protein    float64    `json:"protein"`
	Fat        float64    `json:"fat"`
	NutriScore NutriScore `json:"nutriScore"`
	ImageURL   string     `json:"imageUrl,omitempty"`
}

// CreateMealLogRequest is a MealLog without its server-assigned id.
type CreateMealLogRequest struct {
	Date       string     `json:"date"`
	MealType   MealType   `json:"mealType"`
	FoodName   string     `json:"foodName"`
	Calories   float64    `json:"calories"`
	Carbs      float64    `json:"carbs"`
	Protein    float64    `json:"protein"`
	Fat        float64    `json:"fat"`
	NutriScore NutriScore `json:"nutriScore"`
	ImageURL   string     `json:"imageUrl,omitempty"`
}

// Analysis holds the meal fields inferred from an image. Zero values mean
// the analyzer did not infer that field.
type Analysis struct {
	FoodName   string     `json:"foodName,omitempty"`
	Calories   float64    `json:"calories,omitempty"`
	Carbs      float64    `json:"carbs,omitempty"`
	Protein    float64    `json:"protein,omitempty"`
	Fat        float64    `json:"fat,omitempty"`
	NutriScore NutriScore `json:"nutriScore,omitempty"`
	ImageURL   string     `json:"imageUrl,omitempty"`
}

type DailyNutrition struct {
	Date          string    `json:"date"`
	TotalCalories float64   `json:"totalCalories"`
	TotalCarbs    float64   `json:"totalCarbs"`
	TotalProtein  float64   `json:"totalProtein"`
	TotalFat      float64   `json:"totalFat"`
	Meals         []MealLog `json:"meals"`
}
