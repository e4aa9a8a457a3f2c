// Package badges groups a user's badges for the profile page.
package badges

import (
	"dietSurvivalWeb/internal/monthgrid"
	"dietSurvivalWeb/internal/percent"
	"dietSurvivalWeb/internal/types/badge"
)

// Icon names the icon drawn for a badge, "trophy" when unknown.
func Icon(name string) string {
	switch name {
	case "첫 걸음":
		return "star"
	case "7일 연속":
		return "calendar"
	case "칼로리 킹":
		return "crown"
	case "30일 마라톤":
		return "target"
	case "영양 마스터":
		return "zap"
	case "소셜 스타":
		return "award"
	default:
		return "trophy"
	}
}

type Item struct {
	Badge         badge.Badge `json:"badge"`
	Icon          string      `json:"icon"`
	AcquiredLabel string      `json:"acquiredLabel,omitempty"`
}

type Collection struct {
	Acquired   []Item `json:"acquired"`
	Unacquired []Item `json:"unacquired"`
	// Rate is the acquired share in percent, 0 for an empty collection.
	Rate int `json:"rate"`
}

// Partition splits badges by acquisition, preserving order.
func Partition(bs []badge.Badge) Collection {
	c := Collection{Acquired: []Item{}, Unacquired: []Item{}}
	for _, b := range bs {
		item := Item{Badge: b, Icon: Icon(b.Name)}
		if b.IsAcquired {
			if b.AcquiredDate != "" {
				item.AcquiredLabel = monthgrid.LongDate(b.AcquiredDate) + " 획득"
			}
			c.Acquired = append(c.Acquired, item)
		} else {
			c.Unacquired = append(c.Unacquired, item)
		}
	}
	c.Rate = percent.Of(float64(len(c.Acquired)), float64(len(bs)))
	return c
}
