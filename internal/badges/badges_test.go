package badges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dietSurvivalWeb/internal/types/badge"
)

func TestPartition(t *testing.T) {
	bs := []badge.Badge{
		{ID: "1", Name: "첫 걸음", IsAcquired: true, AcquiredDate: "2025-01-10"},
		{ID: "2", Name: "칼로리 킹"},
		{ID: "3", Name: "7일 연속", IsAcquired: true},
		{ID: "4", Name: "새 배지"},
	}

	c := Partition(bs)

	require.Len(t, c.Acquired, 2)
	require.Len(t, c.Unacquired, 2)
	assert.Equal(t, "1", c.Acquired[0].Badge.ID)
	assert.Equal(t, "3", c.Acquired[1].Badge.ID)
	assert.Equal(t, "2025년 1월 10일 획득", c.Acquired[0].AcquiredLabel)
	assert.Empty(t, c.Acquired[1].AcquiredLabel)
	assert.Equal(t, 50, c.Rate)

	assert.Equal(t, "star", c.Acquired[0].Icon)
	assert.Equal(t, "crown", c.Unacquired[0].Icon)
	assert.Equal(t, "trophy", c.Unacquired[1].Icon)
}

func TestPartition_Empty(t *testing.T) {
	c := Partition(nil)
	assert.Zero(t, c.Rate)
	assert.Empty(t, c.Acquired)
	assert.Empty(t, c.Unacquired)
}
