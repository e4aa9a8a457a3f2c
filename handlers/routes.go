package handlers

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"dietSurvivalWeb/middleware"
)

//go:embed static
var staticFS embed.FS

// Pinger is implemented by session stores that can report their health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Routes struct {
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Log       *LogHandler
	Challenge *ChallengeHandler
	Profile   *ProfileHandler
	Admin     *AdminHandler

	// Session resolves the auth cookie; see middleware.SessionMiddleware.
	Session func(http.Handler) http.Handler
	// CSRF guards the form posts of the page routes when set.
	CSRF func(http.Handler) http.Handler
	// Metrics is served at /metrics and is expected to carry its own auth.
	Metrics http.Handler
	// DB is pinged by /health when set.
	DB Pinger
}

func RegisterRoutes(r *mux.Router, rt Routes) {
	if rt.Metrics != nil {
		r.Handle("/metrics", rt.Metrics).Methods("GET")
	}
	r.HandleFunc("/health", healthHandler(rt.DB)).Methods("GET")

	assets, _ := fs.Sub(staticFS, "static")
	r.PathPrefix("/assets/").Handler(http.StripPrefix("/assets/", http.FileServer(http.FS(assets))))

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/login", rt.Auth.APILogin).Methods("POST")
	api.HandleFunc("/auth/kakao/callback", rt.Auth.APIKakaoCallback).Methods("POST")

	pages := r.PathPrefix("/").Subrouter()
	pages.Use(rt.Session)
	if rt.CSRF != nil {
		pages.Use(rt.CSRF)
	}

	pages.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	}).Methods("GET")

	pages.HandleFunc("/login", rt.Auth.LoginForm).Methods("GET")
	pages.HandleFunc("/login", rt.Auth.Login).Methods("POST")
	pages.HandleFunc("/logout", rt.Auth.Logout).Methods("POST")
	pages.HandleFunc("/auth/kakao", rt.Auth.KakaoStart).Methods("GET")
	pages.HandleFunc("/auth/kakao/callback", rt.Auth.KakaoCallback).Methods("GET")

	pages.HandleFunc("/dashboard", rt.Dashboard.Dashboard).Methods("GET")
	pages.HandleFunc("/dashboard/daily", rt.Dashboard.DailyReport).Methods("GET")

	pages.HandleFunc("/log", rt.Log.Form).Methods("GET")
	pages.HandleFunc("/log", rt.Log.Create).Methods("POST")
	pages.HandleFunc("/log/analyze", rt.Log.Analyze).Methods("POST")

	pages.HandleFunc("/challenges", rt.Challenge.List).Methods("GET")
	pages.HandleFunc("/challenges/{id}", rt.Challenge.Board).Methods("GET")
	pages.HandleFunc("/challenges/{id}/qr", rt.Challenge.ShareQR).Methods("GET")

	pages.HandleFunc("/profile", rt.Profile.Me).Methods("GET")
	pages.HandleFunc("/profile/{username}", rt.Profile.Show).Methods("GET")

	pages.Handle("/admin", middleware.RequireAdmin(http.HandlerFunc(rt.Admin.Dashboard))).Methods("GET")
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "unhealthy",
					"error":  "database connection failed",
				})
				return
			}
		}
		respondWithJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": "diet-survival-web",
		})
	}
}
