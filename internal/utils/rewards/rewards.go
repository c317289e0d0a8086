package rewards

import (
	"github.com/shopspring/decimal"
)

// viewsPerRate is the view count a reward rate is quoted against.
const viewsPerRate = 1000

// RewardForViews returns the reward earned for a view increment, in
// minor currency units. rewardRate is minor units per 1,000 views.
// Fractional units are truncated so rewards never overpay.
func RewardForViews(views int64, rewardRate int64) int64 {
	if views <= 0 || rewardRate <= 0 {
		return 0
	}
	reward := decimal.NewFromInt(views).
		Mul(decimal.NewFromInt(rewardRate)).
		Div(decimal.NewFromInt(viewsPerRate))
	return reward.IntPart()
}
