package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/skip2/go-qrcode"
	"golang.org/x/sync/errgroup"

	"dietSurvivalWeb/internal/fallback"
	"dietSurvivalWeb/internal/survival"
	"dietSurvivalWeb/internal/types/challenge"
)

type ChallengeService struct {
	api DietAPI
	now func() time.Time
}

func NewChallengeService(api DietAPI) *ChallengeService {
	return &ChallengeService{api: api, now: time.Now}
}

type ChallengeListsView struct {
	Recommended []survival.Card `json:"recommended"`
	My          []survival.Card `json:"my"`
	Fallback    bool            `json:"fallback"`
}

// LoadLists fetches both lists concurrently. If either call fails both
// lists are replaced by sample data.
func (s *ChallengeService) LoadLists(ctx context.Context) *ChallengeListsView {
	var recommended, my []challenge.Challenge

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recommended, err = s.api.GetRecommendedChallenges(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		my, err = s.api.GetMyChallenges(gctx)
		return err
	})

	view := &ChallengeListsView{}
	if err := g.Wait(); err != nil {
		log.Printf("Challenge: failed to load challenges: %v", err)
		recordFallback("challenges")
		recommended, my = fallback.Challenges(), fallback.MyChallenges()
		view.Fallback = true
	}

	now := s.now()
	view.Recommended = survival.NewCards(recommended, now, false)
	view.My = survival.NewCards(my, now, true)
	return view
}

type BoardView struct {
	*survival.Board
	Fallback bool `json:"fallback"`
}

// LoadBoard fetches a challenge and computes its survival board. A fetch
// failure or unreadable dates both fall back to the sample challenge.
func (s *ChallengeService) LoadBoard(ctx context.Context, id string) *BoardView {
	now := s.now()

	c, err := s.api.GetChallengeDetails(ctx, id)
	if err == nil {
		board, boardErr := survival.Compute(*c, now)
		if boardErr == nil {
			return &BoardView{Board: board}
		}
		err = boardErr
	}

	log.Printf("Challenge: failed to load challenge %s: %v", id, err)
	recordFallback("survival_board")
	// The sample challenge's dates are fixed and valid.
	board, _ := survival.Compute(*fallback.SurvivalChallenge(id), now)
	return &BoardView{Board: board, Fallback: true}
}

// ShareQR renders a PNG QR code pointing at the challenge's board.
func (s *ChallengeService) ShareQR(baseURL, id string, size int) ([]byte, error) {
	if size <= 0 || size > 1024 {
		size = 256
	}
	png, err := qrcode.Encode(baseURL+"/challenges/"+id, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR png: %w", err)
	}
	return png, nil
}
