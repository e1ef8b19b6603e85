package domain

import "time"

// Business is one production unit. It accumulates elapsed time against a
// fixed cycle and pays base payout times level when a cycle completes.
type Business struct {
	Name        string
	cycle       time.Duration
	progress    time.Duration
	basePayout  float64
	level       int
	upgradeCost float64
}

// NewBusiness returns a level 1 business with no progress.
func NewBusiness(name string, cycle time.Duration, basePayout, upgradeCost float64) Business {
	return Business{
		Name:        name,
		cycle:       cycle,
		basePayout:  basePayout,
		level:       1,
		upgradeCost: upgradeCost,
	}
}

// Progress advances the current cycle by elapsed. The cycle completes only
// once accumulated progress strictly exceeds the cycle duration; landing
// exactly on the boundary does not pay. On completion progress resets to
// zero and the payout for the current level is returned.
func (b *Business) Progress(elapsed time.Duration) (float64, bool) {
	b.progress += elapsed
	if b.progress > b.cycle {
		b.progress = 0
		return b.Revenue(), true
	}
	return 0, false
}

// Upgrade raises the level by one. Cost is handled by the Upgrade action.
func (b *Business) Upgrade() {
	b.level++
}

// Revenue is the payout of one completed cycle at the current level.
func (b Business) Revenue() float64 {
	return b.basePayout * float64(b.level)
}

func (b Business) Level() int { return b.level }

func (b Business) Cycle() time.Duration { return b.cycle }

func (b Business) Elapsed() time.Duration { return b.progress }

func (b Business) BasePayout() float64 { return b.basePayout }

func (b Business) UpgradeCost() float64 { return b.upgradeCost }

// Remaining returns the time left in the current cycle, never negative.
func (b Business) Remaining() time.Duration {
	if b.progress >= b.cycle {
		return 0
	}
	return b.cycle - b.progress
}
