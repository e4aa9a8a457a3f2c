package services

import (
	"context"
	"log"

	"dietSurvivalWeb/internal/badges"
	"dietSurvivalWeb/internal/fallback"
)

type ProfileService struct {
	api DietAPI
}

func NewProfileService(api DietAPI) *ProfileService {
	return &ProfileService{api: api}
}

type ProfileView struct {
	Username string            `json:"username"`
	Badges   badges.Collection `json:"badges"`
	Fallback bool              `json:"fallback"`
}

func (s *ProfileService) Load(ctx context.Context, username string) *ProfileView {
	view := &ProfileView{Username: username}

	bs, err := s.api.GetUserBadges(ctx, username)
	if err != nil {
		log.Printf("Profile: failed to load badges for %s: %v", username, err)
		recordFallback("badges")
		bs = fallback.Badges()
		view.Fallback = true
	}

	view.Badges = badges.Partition(bs)
	return view
}
