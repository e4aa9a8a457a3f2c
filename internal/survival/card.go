package survival

import (
	"time"

	"dietSurvivalWeb/internal/types/challenge"
)

// Card is a challenge as listed on the challenges page.
type Card struct {
	Challenge        challenge.Challenge `json:"challenge"`
	TargetTypeLabel  string              `json:"targetTypeLabel"`
	TargetLabel      string              `json:"targetLabel"`
	StatusLabel      string              `json:"statusLabel"`
	PeriodLabel      string              `json:"periodLabel"`
	ParticipantCount int                 `json:"participantCount"`
	DaysLeft         int                 `json:"daysLeft"`
	// DaysLeftLabel is empty for inactive challenges.
	DaysLeftLabel string `json:"daysLeftLabel,omitempty"`
	ActionLabel   string `json:"actionLabel"`
}

// NewCards builds list cards. mine switches the call to action from
// "참여하기" to "자세히 보기". Challenges with unreadable dates keep their
// raw date strings in the period label.
func NewCards(cs []challenge.Challenge, now time.Time, mine bool) []Card {
	action := "참여하기"
	if mine {
		action = "자세히 보기"
	}

	cards := make([]Card, 0, len(cs))
	for _, c := range cs {
		card := Card{
			Challenge:        c,
			TargetTypeLabel:  c.TargetType.Label(),
			TargetLabel:      TargetLabel(c),
			StatusLabel:      "종료",
			PeriodLabel:      c.StartDate + " - " + c.EndDate,
			ParticipantCount: len(c.Participants),
			ActionLabel:      action,
		}
		if c.IsActive {
			card.StatusLabel = "진행 중"
		}

		start, errStart := ParseDate(c.StartDate)
		end, errEnd := ParseDate(c.EndDate)
		if errStart == nil && errEnd == nil {
			card.PeriodLabel = MonthDay(start) + " - " + MonthDay(end)
		}
		if errEnd == nil {
			card.DaysLeft = ceilDays(end.Sub(now))
			if c.IsActive {
				card.DaysLeftLabel = DaysLeftLabel(card.DaysLeft)
			}
		}
		cards = append(cards, card)
	}
	return cards
}
