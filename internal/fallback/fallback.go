// Package fallback holds the sample data pages render when the API is
// unavailable. Every constructor returns a fresh value, so callers may
// modify the result.
package fallback

import (
	"time"

	"dietSurvivalWeb/internal/types/badge"
	"dietSurvivalWeb/internal/types/calendar"
	"dietSurvivalWeb/internal/types/challenge"
	"dietSurvivalWeb/internal/types/coach"
	"dietSurvivalWeb/internal/types/meal"
	"dietSurvivalWeb/internal/types/user"
)

const placeholderAvatar = "/api/placeholder/40/40"

// Calendar is stamped with the requested month, but its two sample days
// are always in January 2025.
func Calendar(year, month int) *calendar.MonthlyCalendar {
	return &calendar.MonthlyCalendar{
		Year:  year,
		Month: month,
		Days: map[string]calendar.DayMeals{
			"2025-01-15": {Meals: []calendar.MealSlot{
				{Type: meal.Breakfast, HasLog: true},
				{Type: meal.Lunch, HasLog: true},
				{Type: meal.Dinner, HasLog: false},
				{Type: meal.Snack, HasLog: true},
			}},
			"2025-01-16": {Meals: []calendar.MealSlot{
				{Type: meal.Breakfast, HasLog: true},
				{Type: meal.Lunch, HasLog: true},
				{Type: meal.Dinner, HasLog: true},
				{Type: meal.Snack, HasLog: false},
			}},
		},
	}
}

func DailyReport(date string) *meal.DailyNutrition {
	const img = "/api/placeholder/200/150"
	return &meal.DailyNutrition{
		Date:          date,
		TotalCalories: 1650,
		TotalCarbs:    180,
		TotalProtein:  85,
		TotalFat:      65,
		Meals: []meal.MealLog{
			{ID: "1", Date: date, MealType: meal.Breakfast, FoodName: "현미밥과 된장국", Calories: 450, Carbs: 65, Protein: 15, Fat: 8, NutriScore: meal.ScoreB, ImageURL: img},
			{ID: "2", Date: date, MealType: meal.Lunch, FoodName: "닭가슴살 샐러드", Calories: 320, Carbs: 25, Protein: 35, Fat: 12, NutriScore: meal.ScoreA, ImageURL: img},
			{ID: "3", Date: date, MealType: meal.Dinner, FoodName: "연어 스테이크", Calories: 580, Carbs: 45, Protein: 28, Fat: 32, NutriScore: meal.ScoreB, ImageURL: img},
			{ID: "4", Date: date, MealType: meal.Snack, FoodName: "견과류 믹스", Calories: 300, Carbs: 45, Protein: 7, Fat: 13, NutriScore: meal.ScoreC, ImageURL: img},
		},
	}
}

func Analysis() *meal.Analysis {
	return &meal.Analysis{
		FoodName:   "닭가슴살 샐러드",
		Calories:   350,
		Carbs:      25,
		Protein:    30,
		Fat:        15,
		NutriScore: meal.ScoreA,
	}
}

func CoachTip(now time.Time) *coach.Tip {
	return &coach.Tip{
		ID:        "1",
		Message:   "최근 탄수화물 섭취가 많았어요. 내일은 밥 양을 절반으로 줄이고 단백질을 늘려보세요. 생존 확률을 높일 수 있습니다!",
		Type:      coach.Suggestion,
		Priority:  coach.High,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
}

// Challenges is the sample "recommended" list; "my" challenges fall back
// to its first entry.
func Challenges() []challenge.Challenge {
	return []challenge.Challenge{
		{
			ID:           "1",
			Name:         "7일 칼로리 챌린지",
			Description:  "7일 동안 매일 1800kcal 이하로 식사하기",
			StartDate:    "2025-01-15",
			EndDate:      "2025-01-21",
			TargetType:   challenge.TargetCalorie,
			TargetValue:  1800,
			IsActive:     true,
			Participants: []challenge.Participant{},
		},
		{
			ID:           "2",
			Name:         "단백질 마스터 챌린지",
			Description:  "14일 동안 매일 단백질 100g 이상 섭취하기",
			StartDate:    "2025-01-10",
			EndDate:      "2025-01-24",
			TargetType:   challenge.TargetMacro,
			TargetValue:  100,
			IsActive:     true,
			Participants: []challenge.Participant{},
		},
		{
			ID:           "3",
			Name:         "30일 체중 감량 챌린지",
			Description:  "30일 동안 5kg 감량하기",
			StartDate:    "2025-01-01",
			EndDate:      "2025-01-30",
			TargetType:   challenge.TargetWeight,
			TargetValue:  5,
			IsActive:     false,
			Participants: []challenge.Participant{},
		},
	}
}

func MyChallenges() []challenge.Challenge {
	return Challenges()[:1]
}

// SurvivalChallenge carries the requested id so links on the board stay
// consistent.
func SurvivalChallenge(id string) *challenge.Challenge {
	return &challenge.Challenge{
		ID:          id,
		Name:        "7일 칼로리 챌린지",
		Description: "7일 동안 매일 1800kcal 이하로 식사하기",
		StartDate:   "2025-01-15",
		EndDate:     "2025-01-21",
		TargetType:  challenge.TargetCalorie,
		TargetValue: 1800,
		IsActive:    true,
		Participants: []challenge.Participant{
			sampleParticipant("1", "다이어트왕", challenge.Survived, 5, ""),
			sampleParticipant("2", "헬스마니아", challenge.Survived, 3, ""),
			sampleParticipant("3", "운동좋아", challenge.Eliminated, 2, "2025-01-18"),
			sampleParticipant("4", "칼로리마스터", challenge.Survived, 7, ""),
			sampleParticipant("5", "다이어트초보", challenge.Eliminated, 1, "2025-01-17"),
		},
	}
}

func sampleParticipant(id, nickname string, status challenge.ParticipantStatus, streak int, eliminated string) challenge.Participant {
	return challenge.Participant{
		ID: id,
		User: user.User{
			ID:             id,
			Username:       "user" + id,
			Email:          "user" + id + "@example.com",
			Nickname:       nickname,
			ProfilePicture: placeholderAvatar,
		},
		Status:          status,
		EliminationDate: eliminated,
		CurrentStreak:   streak,
	}
}

func Badges() []badge.Badge {
	const icon = "/api/placeholder/80/80"
	return []badge.Badge{
		{ID: "1", Name: "첫 걸음", Description: "첫 번째 식사 로그를 기록했습니다", IconURL: icon, IsAcquired: true, AcquiredDate: "2025-01-10"},
		{ID: "2", Name: "7일 연속", Description: "7일 연속으로 식사를 기록했습니다", IconURL: icon, IsAcquired: true, AcquiredDate: "2025-01-17"},
		{ID: "3", Name: "챌린지 마스터", Description: "첫 번째 챌린지를 완주했습니다", IconURL: icon, IsAcquired: true, AcquiredDate: "2025-01-21"},
		{ID: "4", Name: "칼로리 킹", Description: "칼로리 챌린지에서 1위를 달성했습니다", IconURL: icon},
		{ID: "5", Name: "30일 마라톤", Description: "30일 연속으로 식사를 기록했습니다", IconURL: icon},
		{ID: "6", Name: "영양 마스터", Description: "모든 영양소 챌린지를 완주했습니다", IconURL: icon},
		{ID: "7", Name: "소셜 스타", Description: "10명 이상의 챌린지에 참여했습니다", IconURL: icon},
		{ID: "8", Name: "완벽주의자", Description: "100% 정확도로 7일 연속 기록했습니다", IconURL: icon},
	}
}
