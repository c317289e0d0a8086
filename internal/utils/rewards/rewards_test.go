package rewards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewardForViews(t *testing.T) {
	testCases := []struct {
		name       string
		views      int64
		rewardRate int64
		expected   int64
	}{
		{"exact thousand", 1000, 500, 500},
		{"multiple thousands", 5000, 500, 2500},
		{"fraction truncates", 1500, 333, 499},
		{"below one unit", 1, 500, 0},
		{"zero views", 0, 500, 0},
		{"negative views", -100, 500, 0},
		{"zero rate", 1000, 0, 0},
		{"large counts", 10_000_000, 250, 2_500_000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RewardForViews(tc.views, tc.rewardRate))
		})
	}
}
