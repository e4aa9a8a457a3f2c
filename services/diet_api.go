package services

import (
	"context"
	"io"

	"dietSurvivalWeb/internal/types/badge"
	"dietSurvivalWeb/internal/types/calendar"
	"dietSurvivalWeb/internal/types/challenge"
	"dietSurvivalWeb/internal/types/coach"
	"dietSurvivalWeb/internal/types/meal"
)

// DietAPI is the remote API as the page loaders use it. *client.Client
// implements it.
type DietAPI interface {
	GetMonthlyLogs(ctx context.Context, year, month int) (*calendar.MonthlyCalendar, error)
	GetDailyReport(ctx context.Context, date string) (*meal.DailyNutrition, error)
	AnalyzeImage(ctx context.Context, filename string, image io.Reader) (*meal.Analysis, error)
	CreateMealLog(ctx context.Context, req meal.CreateMealLogRequest) (*meal.MealLog, error)
	GetRecommendedChallenges(ctx context.Context) ([]challenge.Challenge, error)
	GetMyChallenges(ctx context.Context) ([]challenge.Challenge, error)
	GetChallengeDetails(ctx context.Context, id string) (*challenge.Challenge, error)
	GetCoachingTip(ctx context.Context) (*coach.Tip, error)
	GetUserBadges(ctx context.Context, username string) ([]badge.Badge, error)
}
