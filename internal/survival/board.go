// Package survival turns a challenge into the numbers and labels of its
// survival board and challenge cards.
package survival

import (
	"fmt"
	"math"
	"sort"
	"time"

	"dietSurvivalWeb/internal/percent"
	"dietSurvivalWeb/internal/types/challenge"
)

const day = 24 * time.Hour

type ParticipantCard struct {
	Participant challenge.Participant `json:"participant"`
	Initial     string                `json:"initial"`
	IsLeader    bool                  `json:"isLeader"`
	Eliminated  bool                  `json:"eliminated"`
	// StatusLabel is "생존" or "탈락".
	StatusLabel string `json:"statusLabel"`
	// Detail is "N일 연속" for survivors and "M월 d일 탈락" for the rest.
	Detail string `json:"detail"`
}

// Cell is one numbered seat on the participant grid.
type Cell struct {
	Number   int    `json:"number"`
	Nickname string `json:"nickname"`
	Picture  string `json:"picture,omitempty"`
	Initial  string `json:"initial"`
	Survived bool   `json:"survived"`
}

type Board struct {
	Challenge challenge.Challenge `json:"challenge"`

	Survived   []ParticipantCard `json:"survived"`
	Eliminated []ParticipantCard `json:"eliminated"`
	Leader     *ParticipantCard  `json:"leader,omitempty"`
	Cells      []Cell            `json:"cells"`

	PeriodLabel      string `json:"periodLabel"`
	TargetLabel      string `json:"targetLabel"`
	ParticipantCount int    `json:"participantCount"`
	DaysLeft         int    `json:"daysLeft"`
	RemainingHeading string `json:"remainingHeading"`
	RemainingLabel   string `json:"remainingLabel"`

	TotalDays      int `json:"totalDays"`
	DaysPassed     int `json:"daysPassed"`
	PeriodProgress int `json:"periodProgress"`

	SurvivedCount   int `json:"survivedCount"`
	EliminatedCount int `json:"eliminatedCount"`
	SurvivalRate    int `json:"survivalRate"`
}

// Compute builds the board for c as seen at now. It fails only when the
// challenge dates cannot be parsed.
func Compute(c challenge.Challenge, now time.Time) (*Board, error) {
	start, err := ParseDate(c.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := ParseDate(c.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}

	b := &Board{
		Challenge:        c,
		Survived:         []ParticipantCard{},
		Eliminated:       []ParticipantCard{},
		Cells:            make([]Cell, 0, len(c.Participants)),
		PeriodLabel:      MonthDay(start) + " - " + MonthDay(end),
		TargetLabel:      TargetLabel(c),
		ParticipantCount: len(c.Participants),
	}

	var survivors []challenge.Participant
	for i, p := range c.Participants {
		b.Cells = append(b.Cells, Cell{
			Number:   i + 1,
			Nickname: p.User.Nickname,
			Picture:  p.User.ProfilePicture,
			Initial:  p.User.Initial(),
			Survived: p.Status == challenge.Survived,
		})
		switch p.Status {
		case challenge.Survived:
			survivors = append(survivors, p)
		case challenge.Eliminated:
			b.Eliminated = append(b.Eliminated, participantCard(p, true, false))
		}
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].CurrentStreak > survivors[j].CurrentStreak
	})
	for i, p := range survivors {
		b.Survived = append(b.Survived, participantCard(p, false, i == 0))
	}
	if len(b.Survived) > 0 {
		b.Leader = &b.Survived[0]
	}

	b.SurvivedCount = len(b.Survived)
	b.EliminatedCount = len(b.Eliminated)
	b.SurvivalRate = percent.Of(float64(b.SurvivedCount), float64(len(c.Participants)))

	b.DaysLeft = ceilDays(end.Sub(now))
	if c.IsActive {
		b.RemainingHeading = "남은 기간"
		b.RemainingLabel = DaysLeftLabel(b.DaysLeft)
	} else {
		b.RemainingHeading = "완료"
		b.RemainingLabel = "완료"
	}

	b.TotalDays = max(1, ceilDays(end.Sub(start))+1)
	b.DaysPassed = min(b.TotalDays, max(0, ceilDays(now.Sub(start))+1))
	b.PeriodProgress = percent.Of(float64(b.DaysPassed), float64(b.TotalDays))

	return b, nil
}

func participantCard(p challenge.Participant, eliminated, leader bool) ParticipantCard {
	card := ParticipantCard{
		Participant: p,
		Initial:     p.User.Initial(),
		IsLeader:    leader,
		Eliminated:  eliminated,
		StatusLabel: "생존",
		Detail:      fmt.Sprintf("%d일 연속", p.CurrentStreak),
	}
	if eliminated {
		card.StatusLabel = "탈락"
		card.Detail = ""
		if t, err := ParseDate(p.EliminationDate); err == nil {
			card.Detail = MonthDay(t) + " 탈락"
		}
	}
	return card
}

// ParseDate reads an ISO date, or a full RFC 3339 timestamp, as UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// MonthDay formats t as "1월 15일".
func MonthDay(t time.Time) string {
	return fmt.Sprintf("%d월 %d일", int(t.Month()), t.Day())
}

// DaysLeftLabel renders a remaining-day count, "종료" once it reaches zero.
func DaysLeftLabel(daysLeft int) string {
	if daysLeft > 0 {
		return fmt.Sprintf("%d일", daysLeft)
	}
	return "종료"
}

func TargetLabel(c challenge.Challenge) string {
	return formatNumber(c.TargetValue) + c.TargetType.Unit()
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(float64(d) / float64(day)))
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
