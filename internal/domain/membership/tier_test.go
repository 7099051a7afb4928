package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTier_Boundaries(t *testing.T) {
	assert.Equal(t, TierBronze, ResolveTier(0))
	assert.Equal(t, TierBronze, ResolveTier(500))
	assert.Equal(t, TierSilver, ResolveTier(501))
	assert.Equal(t, TierSilver, ResolveTier(1500))
	assert.Equal(t, TierGold, ResolveTier(1501))
	assert.Equal(t, TierGold, ResolveTier(3000))
	assert.Equal(t, TierPlatinum, ResolveTier(3001))
	assert.Equal(t, TierPlatinum, ResolveTier(5000))
	assert.Equal(t, TierDiamond, ResolveTier(5001))
}

func TestResolveTier_Monotonic(t *testing.T) {
	// Rank must never decrease as points grow.
	prev := 0
	for points := 0; points <= 6000; points += 50 {
		rank := TierRank(ResolveTier(points))
		assert.GreaterOrEqual(t, rank, prev, "points=%d", points)
		prev = rank
	}
}

func TestNormalizeTier(t *testing.T) {
	assert.Equal(t, TierGold, NormalizeTier("gold"))
	assert.Equal(t, TierGold, NormalizeTier("  GOLD "))
	assert.Equal(t, TierDiamond, NormalizeTier("Diamond"))
	// Unknown values fall back to Bronze.
	assert.Equal(t, TierBronze, NormalizeTier("vip"))
	assert.Equal(t, TierBronze, NormalizeTier(""))
}

func TestPointsUpdates_RecomputesTier(t *testing.T) {
	updates := PointsUpdates(1501)
	assert.Equal(t, 1501, updates["points"])
	assert.Equal(t, TierGold, updates["tier"])

	// Negative balances clamp to zero, which is Bronze.
	updates = PointsUpdates(-10)
	assert.Equal(t, 0, updates["points"])
	assert.Equal(t, TierBronze, updates["tier"])
}
