package survival

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dietSurvivalWeb/internal/types/challenge"
	"dietSurvivalWeb/internal/types/user"
)

func participant(id, nickname string, status challenge.ParticipantStatus, streak int, eliminated string) challenge.Participant {
	return challenge.Participant{
		ID:              id,
		User:            user.User{ID: id, Username: "user" + id, Nickname: nickname},
		Status:          status,
		CurrentStreak:   streak,
		EliminationDate: eliminated,
	}
}

func sevenDayChallenge() challenge.Challenge {
	return challenge.Challenge{
		ID:          "42",
		Name:        "7일 칼로리 챌린지",
		StartDate:   "2025-01-15",
		EndDate:     "2025-01-21",
		TargetType:  challenge.TargetCalorie,
		TargetValue: 1800,
		IsActive:    true,
		Participants: []challenge.Participant{
			participant("1", "다이어트왕", challenge.Survived, 5, ""),
			participant("2", "헬스마니아", challenge.Survived, 3, ""),
			participant("3", "운동좋아", challenge.Eliminated, 2, "2025-01-18"),
			participant("4", "칼로리마스터", challenge.Survived, 7, ""),
			participant("5", "다이어트초보", challenge.Eliminated, 1, "2025-01-17"),
		},
	}
}

func TestCompute_MidChallenge(t *testing.T) {
	now := time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC)

	b, err := Compute(sevenDayChallenge(), now)
	require.NoError(t, err)

	assert.Equal(t, 3, b.DaysLeft)
	assert.Equal(t, "3일", b.RemainingLabel)
	assert.Equal(t, "남은 기간", b.RemainingHeading)
	assert.Equal(t, 7, b.TotalDays)
	assert.Equal(t, 4, b.DaysPassed)
	assert.Equal(t, 57, b.PeriodProgress)

	assert.Equal(t, 3, b.SurvivedCount)
	assert.Equal(t, 2, b.EliminatedCount)
	assert.Equal(t, 60, b.SurvivalRate)

	assert.Equal(t, "1월 15일 - 1월 21일", b.PeriodLabel)
	assert.Equal(t, "1800kcal", b.TargetLabel)
	assert.Equal(t, 5, b.ParticipantCount)
}

func TestCompute_SurvivorsSortedByStreak(t *testing.T) {
	now := time.Date(2025, 1, 18, 12, 0, 0, 0, time.UTC)

	b, err := Compute(sevenDayChallenge(), now)
	require.NoError(t, err)

	var ids []string
	for _, c := range b.Survived {
		ids = append(ids, c.Participant.ID)
	}
	assert.Equal(t, []string{"4", "1", "2"}, ids)

	require.NotNil(t, b.Leader)
	assert.Equal(t, "4", b.Leader.Participant.ID)
	assert.True(t, b.Survived[0].IsLeader)
	assert.False(t, b.Survived[1].IsLeader)
	assert.Equal(t, "7일 연속", b.Survived[0].Detail)
	assert.Equal(t, "생존", b.Survived[0].StatusLabel)
}

func TestCompute_StableSortKeepsInputOrderOnTies(t *testing.T) {
	c := sevenDayChallenge()
	c.Participants = []challenge.Participant{
		participant("a", "가", challenge.Survived, 2, ""),
		participant("b", "나", challenge.Survived, 4, ""),
		participant("c", "다", challenge.Survived, 2, ""),
		participant("d", "라", challenge.Survived, 4, ""),
	}

	b, err := Compute(c, time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var ids []string
	for _, card := range b.Survived {
		ids = append(ids, card.Participant.ID)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)
}

func TestCompute_EliminatedCards(t *testing.T) {
	b, err := Compute(sevenDayChallenge(), time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, b.Eliminated, 2)
	assert.Equal(t, "3", b.Eliminated[0].Participant.ID)
	assert.Equal(t, "1월 18일 탈락", b.Eliminated[0].Detail)
	assert.Equal(t, "탈락", b.Eliminated[0].StatusLabel)
	assert.False(t, b.Eliminated[0].IsLeader)
	assert.Equal(t, "1월 17일 탈락", b.Eliminated[1].Detail)
}

func TestCompute_CellsNumberedInOriginalOrder(t *testing.T) {
	b, err := Compute(sevenDayChallenge(), time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, b.Cells, 5)
	for i, cell := range b.Cells {
		assert.Equal(t, i+1, cell.Number)
	}
	assert.Equal(t, "다이어트왕", b.Cells[0].Nickname)
	assert.Equal(t, "다", b.Cells[0].Initial)
	assert.True(t, b.Cells[0].Survived)
	assert.False(t, b.Cells[2].Survived)
}

func TestCompute_PeriodClamps(t *testing.T) {
	c := sevenDayChallenge()

	before, err := Compute(c, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, before.DaysPassed)
	assert.Equal(t, 0, before.PeriodProgress)

	after, err := Compute(c, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 7, after.DaysPassed)
	assert.Equal(t, 100, after.PeriodProgress)
	assert.Equal(t, "종료", after.RemainingLabel)
}

func TestCompute_InactiveShowsCompleted(t *testing.T) {
	c := sevenDayChallenge()
	c.IsActive = false

	b, err := Compute(c, time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "완료", b.RemainingHeading)
	assert.Equal(t, "완료", b.RemainingLabel)
}

func TestCompute_NoParticipants(t *testing.T) {
	c := sevenDayChallenge()
	c.Participants = nil

	b, err := Compute(c, time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, b.SurvivalRate)
	assert.Nil(t, b.Leader)
	assert.Empty(t, b.Survived)
	assert.Empty(t, b.Cells)
}

func TestCompute_EndBeforeStartStillHasOneDay(t *testing.T) {
	c := sevenDayChallenge()
	c.StartDate, c.EndDate = "2025-01-21", "2025-01-15"

	b, err := Compute(c, time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, b.TotalDays)
}

func TestCompute_InvalidDate(t *testing.T) {
	c := sevenDayChallenge()
	c.EndDate = "next week"

	_, err := Compute(c, time.Now())
	assert.Error(t, err)
}

func TestNewCards(t *testing.T) {
	now := time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC)
	macro := challenge.Challenge{
		ID: "2", StartDate: "2025-01-10", EndDate: "2025-01-24",
		TargetType: challenge.TargetMacro, TargetValue: 100, IsActive: true,
	}
	weight := challenge.Challenge{
		ID: "3", StartDate: "2025-01-01", EndDate: "2025-01-30",
		TargetType: challenge.TargetWeight, TargetValue: 5, IsActive: false,
	}

	cards := NewCards([]challenge.Challenge{macro, weight}, now, false)
	require.Len(t, cards, 2)

	assert.Equal(t, "영양소", cards[0].TargetTypeLabel)
	assert.Equal(t, "100g", cards[0].TargetLabel)
	assert.Equal(t, "진행 중", cards[0].StatusLabel)
	assert.Equal(t, "6일", cards[0].DaysLeftLabel)
	assert.Equal(t, "1월 10일 - 1월 24일", cards[0].PeriodLabel)
	assert.Equal(t, "참여하기", cards[0].ActionLabel)

	assert.Equal(t, "체중", cards[1].TargetTypeLabel)
	assert.Equal(t, "5kg", cards[1].TargetLabel)
	assert.Equal(t, "종료", cards[1].StatusLabel)
	assert.Empty(t, cards[1].DaysLeftLabel)

	mine := NewCards([]challenge.Challenge{macro}, now, true)
	assert.Equal(t, "자세히 보기", mine[0].ActionLabel)
}
