package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"dietSurvivalWeb/internal/survival"
	"dietSurvivalWeb/services"
)

type ChallengeHandler struct {
	challengeService *services.ChallengeService
	renderer         *Renderer
}

func NewChallengeHandler(challengeService *services.ChallengeService, renderer *Renderer) *ChallengeHandler {
	return &ChallengeHandler{
		challengeService: challengeService,
		renderer:         renderer,
	}
}

type ChallengesPage struct {
	*services.ChallengeListsView
	Tab string `json:"tab"`
	// Cards is the list the selected tab shows.
	Cards []survival.Card `json:"-"`
}

// List shows ?tab=recommended (default) or ?tab=my.
func (h *ChallengeHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	view := h.challengeService.LoadLists(ctx)

	page := ChallengesPage{ChallengeListsView: view, Tab: "recommended", Cards: view.Recommended}
	if r.URL.Query().Get("tab") == "my" {
		page.Tab = "my"
		page.Cards = view.My
	}

	h.renderer.Render(w, r, http.StatusOK, "challenges", Page{Title: "챌린지", Data: page})
}

type BoardPage struct {
	*services.BoardView
	Tab string `json:"tab"`
	// Listed is the participant list the selected tab shows.
	Listed []survival.ParticipantCard `json:"-"`
}

// Board shows a challenge's survival board, ?tab=survived (default) or
// ?tab=eliminated.
func (h *ChallengeHandler) Board(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := mux.Vars(r)["id"]
	view := h.challengeService.LoadBoard(ctx, id)

	page := BoardPage{BoardView: view, Tab: "survived", Listed: view.Survived}
	if r.URL.Query().Get("tab") == "eliminated" {
		page.Tab = "eliminated"
		page.Listed = view.Eliminated
	}

	h.renderer.Render(w, r, http.StatusOK, "board", Page{Title: view.Challenge.Name, Data: page})
}

// ShareQR returns a PNG QR code linking to the challenge's board.
func (h *ChallengeHandler) ShareQR(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	png, err := h.challengeService.ShareQR(baseURL(r), id, size)
	if err != nil {
		log.Printf("Challenge QR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// baseURL is the scheme and host the request reached us on.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
