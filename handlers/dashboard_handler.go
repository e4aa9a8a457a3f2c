package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"dietSurvivalWeb/internal/monthgrid"
	"dietSurvivalWeb/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	renderer         *Renderer
}

func NewDashboardHandler(dashboardService *services.DashboardService, renderer *Renderer) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		renderer:         renderer,
	}
}

type DashboardPage struct {
	*services.DashboardView
	TipHidden bool `json:"tipHidden"`
}

// Dashboard shows the month given by ?year&month, the current month when
// either is missing or out of range. ?tip=hidden collapses the coach tip.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	m := h.monthFromQuery(r)
	view := h.dashboardService.Load(ctx, m)

	h.renderer.Render(w, r, http.StatusOK, "dashboard", Page{
		Title: "대시보드",
		Data: DashboardPage{
			DashboardView: view,
			TipHidden:     r.URL.Query().Get("tip") == "hidden",
		},
	})
}

func (h *DashboardHandler) monthFromQuery(r *http.Request) monthgrid.Month {
	q := r.URL.Query()
	year, yerr := strconv.Atoi(q.Get("year"))
	month, merr := strconv.Atoi(q.Get("month"))
	m := monthgrid.Month{Year: year, Month: month}
	if yerr != nil || merr != nil || !m.Valid() {
		return h.dashboardService.CurrentMonth()
	}
	return m
}

// DailyReport shows one day's meals and macro breakdown.
func (h *DashboardHandler) DailyReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	date := r.URL.Query().Get("date")
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		h.renderer.Error(w, r, http.StatusBadRequest, "Query parameter 'date' must be YYYY-MM-DD")
		return
	}

	view := h.dashboardService.LoadDailyReport(ctx, date)
	h.renderer.Render(w, r, http.StatusOK, "daily", Page{Title: view.Title, Data: view})
}
