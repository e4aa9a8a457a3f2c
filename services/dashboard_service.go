package services

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"dietSurvivalWeb/internal/fallback"
	"dietSurvivalWeb/internal/monthgrid"
	"dietSurvivalWeb/internal/nutrition"
	"dietSurvivalWeb/internal/types/calendar"
	"dietSurvivalWeb/internal/types/coach"
	"dietSurvivalWeb/internal/types/meal"
)

type DashboardService struct {
	api DietAPI
	now func() time.Time
}

func NewDashboardService(api DietAPI) *DashboardService {
	return &DashboardService{api: api, now: time.Now}
}

type CalendarView struct {
	Grid     monthgrid.Grid            `json:"grid"`
	Calendar *calendar.MonthlyCalendar `json:"calendar"`
	Fallback bool                      `json:"fallback"`
}

type CoachTipView struct {
	Tip           *coach.Tip  `json:"tip"`
	Style         coach.Style `json:"style"`
	PriorityLabel string      `json:"priorityLabel"`
	Fallback      bool        `json:"fallback"`
}

type DashboardView struct {
	Calendar CalendarView `json:"calendar"`
	CoachTip CoachTipView `json:"coachTip"`
}

// CurrentMonth is the month containing now.
func (s *DashboardService) CurrentMonth() monthgrid.Month {
	now := s.now()
	return monthgrid.Month{Year: now.Year(), Month: int(now.Month())}
}

// Load fetches the calendar and the coach tip side by side. Neither can
// fail; each falls back to sample data on its own.
func (s *DashboardService) Load(ctx context.Context, m monthgrid.Month) *DashboardView {
	view := &DashboardView{}

	var g errgroup.Group
	g.Go(func() error {
		view.Calendar = s.LoadCalendar(ctx, m)
		return nil
	})
	g.Go(func() error {
		view.CoachTip = s.LoadCoachTip(ctx)
		return nil
	})
	_ = g.Wait()

	return view
}

func (s *DashboardService) LoadCalendar(ctx context.Context, m monthgrid.Month) CalendarView {
	view := CalendarView{}

	cal, err := s.api.GetMonthlyLogs(ctx, m.Year, m.Month)
	if err != nil {
		log.Printf("Dashboard: failed to load calendar for %d-%02d: %v", m.Year, m.Month, err)
		recordFallback("calendar")
		cal = fallback.Calendar(m.Year, m.Month)
		view.Fallback = true
	}

	view.Calendar = cal
	view.Grid = monthgrid.Build(m, cal, s.now())
	return view
}

func (s *DashboardService) LoadCoachTip(ctx context.Context) CoachTipView {
	view := CoachTipView{}

	tip, err := s.api.GetCoachingTip(ctx)
	if err != nil {
		log.Printf("Dashboard: failed to load coaching tip: %v", err)
		recordFallback("coach_tip")
		tip = fallback.CoachTip(s.now())
		view.Fallback = true
	}

	view.Tip = tip
	view.Style = tip.Type.Style()
	view.PriorityLabel = tip.Priority.Label()
	return view
}

type MealRow struct {
	Log        meal.MealLog `json:"log"`
	TypeLabel  string       `json:"typeLabel"`
	Icon       string       `json:"icon"`
	ScoreClass string       `json:"scoreClass"`
}

type DailyReportView struct {
	Title    string               `json:"title"`
	Report   *meal.DailyNutrition `json:"report"`
	Donut    nutrition.Donut      `json:"donut"`
	Meals    []MealRow            `json:"meals"`
	Fallback bool                 `json:"fallback"`
}

// LoadDailyReport expects date as YYYY-MM-DD.
func (s *DashboardService) LoadDailyReport(ctx context.Context, date string) *DailyReportView {
	view := &DailyReportView{Title: monthgrid.LongDate(date) + " 식사 기록"}

	report, err := s.api.GetDailyReport(ctx, date)
	if err != nil {
		log.Printf("Dashboard: failed to load daily report for %s: %v", date, err)
		recordFallback("daily_report")
		report = fallback.DailyReport(date)
		view.Fallback = true
	}

	view.Report = report
	view.Donut = nutrition.ForDay(*report)
	view.Meals = make([]MealRow, 0, len(report.Meals))
	for _, m := range report.Meals {
		view.Meals = append(view.Meals, MealRow{
			Log:        m,
			TypeLabel:  m.MealType.Label(),
			Icon:       m.MealType.Icon(),
			ScoreClass: m.NutriScore.CSSClass(),
		})
	}
	return view
}
