package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"dietSurvivalWeb/internal/types/meal"
	"dietSurvivalWeb/internal/validation"
	"dietSurvivalWeb/services"
)

const maxUploadBytes = 10 << 20

type LogHandler struct {
	mealService *services.MealService
	renderer    *Renderer
}

func NewLogHandler(mealService *services.MealService, renderer *Renderer) *LogHandler {
	return &LogHandler{
		mealService: mealService,
		renderer:    renderer,
	}
}

type LogPage struct {
	Form     validation.MealForm      `json:"form"`
	Errors   validation.Errors        `json:"errors,omitempty"`
	Analysis *services.AnalysisResult `json:"analysis,omitempty"`
	Created  *meal.MealLog            `json:"created,omitempty"`
	ImageURL string                   `json:"imageUrl,omitempty"`

	MealTypes []meal.MealType   `json:"-"`
	Scores    []meal.NutriScore `json:"-"`
}

func newLogPage(form validation.MealForm) LogPage {
	return LogPage{Form: form, MealTypes: meal.Slots, Scores: meal.Scores}
}

func (h *LogHandler) render(w http.ResponseWriter, r *http.Request, code int, page LogPage) {
	h.renderer.Render(w, r, code, "log", Page{Title: "식사 로그", Data: page})
}

func (h *LogHandler) Form(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, newLogPage(validation.DefaultMealForm()))
}

// Analyze reads an uploaded meal photo and prefills the form with whatever
// the analysis returned.
func (h *LogHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.renderer.Error(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.renderer.Error(w, r, http.StatusBadRequest, "Form field 'image' is required")
		return
	}
	defer file.Close()

	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		h.renderer.Error(w, r, http.StatusBadRequest, "Only image uploads are supported")
		return
	}

	form := validation.DefaultMealForm()
	if r.PostFormValue("mealType") != "" {
		form = validation.MealFormFromValues(r.PostForm)
	}

	res := h.mealService.Analyze(ctx, header.Filename, file)

	page := newLogPage(form.Prefill(*res.Analysis))
	page.Analysis = res
	page.ImageURL = res.Analysis.ImageURL
	h.render(w, r, http.StatusOK, page)
}

// Create validates the form and submits it once. An upstream failure
// re-renders the submitted form without a banner.
func (h *LogHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := r.ParseForm(); err != nil {
		h.renderer.Error(w, r, http.StatusBadRequest, "Invalid form body")
		return
	}

	form := validation.MealFormFromValues(r.PostForm)
	page := newLogPage(form)
	page.ImageURL = r.PostFormValue("imageUrl")

	if errs := validation.Check(form); errs != nil {
		page.Errors = errs
		h.render(w, r, http.StatusUnprocessableEntity, page)
		return
	}

	created, err := h.mealService.Create(ctx, form.Request(h.mealService.Today(), page.ImageURL))
	if err != nil {
		h.render(w, r, http.StatusOK, page)
		return
	}

	page = newLogPage(validation.DefaultMealForm())
	page.Created = created
	h.render(w, r, http.StatusCreated, page)
}
