package handlers

import (
	"net/http"

	"dietSurvivalWeb/middleware"
)

type AdminHandler struct {
	renderer *Renderer
}

func NewAdminHandler(renderer *Renderer) *AdminHandler {
	return &AdminHandler{renderer: renderer}
}

// Dashboard is only reachable through middleware.RequireAdmin.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	u, _ := middleware.GetSessionUser(r.Context())
	h.renderer.Render(w, r, http.StatusOK, "admin", Page{Title: "관리자 대시보드", Data: u})
}
