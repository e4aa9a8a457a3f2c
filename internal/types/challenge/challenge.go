package challenge

import "dietSurvivalWeb/internal/types/user"

type TargetType string

const (
	TargetCalorie TargetType = "calorie"
	TargetMacro   TargetType = "macro"
	TargetWeight  TargetType = "weight"
)

func (t TargetType) Label() string {
	switch t {
	case TargetCalorie:
		return "칼로리"
	case TargetMacro:
		return "영양소"
	case TargetWeight:
		return "체중"
	default:
		return string(t)
	}
}

func (t TargetType) Unit() string {
	switch t {
	case TargetCalorie:
		return "kcal"
	case TargetMacro:
		return "g"
	case TargetWeight:
		return "kg"
	default:
		return ""
	}
}

type ParticipantStatus string

const (
	Survived   ParticipantStatus = "survived"
	Eliminated ParticipantStatus = "eliminated"
)

type Participant struct {
	ID              string            `json:"id"`
	User            user.User         `json:"user"`
	Status          ParticipantStatus `json:"status"`
	EliminationDate string            `json:"eliminationDate,omitempty"`
	CurrentStreak   int               `json:"currentStreak"`
}

// Challenge dates are ISO dates (YYYY-MM-DD), read as UTC midnight.
type Challenge struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	TargetType   TargetType    `json:"targetType"`
	TargetValue  float64       `json:"targetValue"`
	IsActive     bool          `json:"isActive"`
	Participants []Participant `json:"participants"`
}
