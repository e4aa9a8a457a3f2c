package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"

	"dietSurvivalWeb/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"dashboard",
	"daily",
	"log",
	"challenges",
	"board",
	"profile",
	"login",
	"kakao_callback",
	"admin",
	"error",
}

var funcMap = template.FuncMap{
	"num": func(p *float64) string {
		if p == nil {
			return ""
		}
		return strconv.FormatFloat(*p, 'f', -1, 64)
	},
	"kcal": func(v float64) string {
		return strconv.FormatFloat(v, 'f', 0, 64)
	},
	"number": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
	"add": func(a, b int) int {
		return a + b
	},
	"blanks": func(n int) []struct{} {
		return make([]struct{}, n)
	},
	// replaced per request in Render
	"csrfField": func() template.HTML { return "" },
}

// Page is what the layout template receives.
type Page struct {
	Title string
	Nav   Navigation
	// RefreshURL, when set, makes the page redirect after RefreshSeconds.
	RefreshURL     string
	RefreshSeconds int
	Data           any
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		parsed, err := template.New("layout").Funcs(funcMap).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse page template %s: %w", name, err)
		}
		pages[name] = parsed
	}
	return &Renderer{pages: pages}, nil
}

// Render writes page as HTML, or page.Data as JSON when the client asks
// for it.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, code int, name string, page Page) {
	if middleware.WantsJSON(r) {
		respondWithJSON(w, code, page.Data)
		return
	}

	tmpl, ok := rd.pages[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	u, _ := middleware.GetSessionUser(r.Context())
	page.Nav = NewNavigation(r.URL.Path, u)

	tmpl, err := tmpl.Clone()
	if err != nil {
		log.Printf("Render: failed to clone %s: %v", name, err)
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}
	tmpl.Funcs(template.FuncMap{
		"csrfField": func() template.HTML { return csrf.TemplateField(r) },
	})

	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "layout", page); err != nil {
		log.Printf("Render: failed to render %s: %v", name, err)
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}

	if page.RefreshURL != "" {
		w.Header().Set("Refresh", fmt.Sprintf("%d; url=%s", page.RefreshSeconds, page.RefreshURL))
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	w.Write(output.Bytes())
}

// Error answers with {"error": ...} for JSON clients and the error page
// otherwise.
func (rd *Renderer) Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	if middleware.WantsJSON(r) {
		respondWithError(w, code, message)
		return
	}
	rd.Render(w, r, code, "error", Page{Title: http.StatusText(code), Data: message})
}
