package membership

// PointsUpdates returns the column updates for a points mutation. Tier is
// rewritten in the same update so it can never go stale relative to points.
// Negative balances are clamped to zero.
func PointsUpdates(points int) map[string]interface{} {
	if points < 0 {
		points = 0
	}
	return map[string]interface{}{
		"points": points,
		"tier":   ResolveTier(points),
	}
}
