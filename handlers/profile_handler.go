package handlers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"

	"dietSurvivalWeb/middleware"
	"dietSurvivalWeb/services"
)

type ProfileHandler struct {
	profileService *services.ProfileService
	renderer       *Renderer
}

func NewProfileHandler(profileService *services.ProfileService, renderer *Renderer) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		renderer:       renderer,
	}
}

// Me redirects to the signed-in user's profile.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetSessionUser(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/profile/"+url.PathEscape(u.Username()), http.StatusSeeOther)
}

func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	username := mux.Vars(r)["username"]
	view := h.profileService.Load(ctx, username)

	h.renderer.Render(w, r, http.StatusOK, "profile", Page{Title: username + " 프로필", Data: view})
}
