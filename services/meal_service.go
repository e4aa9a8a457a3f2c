package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"dietSurvivalWeb/client"
	"dietSurvivalWeb/internal/fallback"
	"dietSurvivalWeb/internal/types/meal"
)

type MealService struct {
	api DietAPI
	now func() time.Time
}

func NewMealService(api DietAPI) *MealService {
	return &MealService{api: api, now: time.Now}
}

type AnalysisResult struct {
	Analysis *meal.Analysis `json:"analysis"`
	Fallback bool           `json:"fallback"`
}

// Analyze asks the API to read a meal photo. On failure the sample
// analysis is returned so the form still gets prefilled.
func (s *MealService) Analyze(ctx context.Context, filename string, image io.Reader) *AnalysisResult {
	a, err := s.api.AnalyzeImage(ctx, filename, image)
	if err != nil {
		log.Printf("Meal: image analysis failed: %v", err)
		recordFallback("analysis")
		return &AnalysisResult{Analysis: fallback.Analysis(), Fallback: true}
	}
	return &AnalysisResult{Analysis: a}
}

// Today is the date new meal logs are recorded under.
func (s *MealService) Today() string {
	return s.now().Format(time.DateOnly)
}

// Create submits a meal log once. Failures are logged and returned; there
// is no retry.
func (s *MealService) Create(ctx context.Context, req meal.CreateMealLogRequest) (*meal.MealLog, error) {
	created, err := s.api.CreateMealLog(ctx, req)
	if err != nil {
		if client.IsAPIError(err) {
			log.Printf("Meal: meal log rejected by API: %v", err)
		} else {
			log.Printf("Meal: failed to create meal log: %v", err)
		}
		return nil, fmt.Errorf("failed to create meal log: %w", err)
	}
	log.Printf("Meal: logged %s (%s)", created.FoodName, created.MealType)
	return created, nil
}
