package membership

import "strings"

// Tier constants (single source of truth)
const (
	TierBronze   = "Bronze"
	TierSilver   = "Silver"
	TierGold     = "Gold"
	TierPlatinum = "Platinum"
	TierDiamond  = "Diamond"
)

var tierRanks = map[string]int{
	TierBronze:   0,
	TierSilver:   1,
	TierGold:     2,
	TierPlatinum: 3,
	TierDiamond:  4,
}

// ResolveTier maps a points balance to its membership tier.
// Thresholds are inclusive upper bounds, first match wins.
// Negative points are not validated here; callers keep points >= 0.
func ResolveTier(points int) string {
	switch {
	case points <= 500:
		return TierBronze
	case points <= 1500:
		return TierSilver
	case points <= 3000:
		return TierGold
	case points <= 5000:
		return TierPlatinum
	default:
		return TierDiamond
	}
}

// TierRank returns the position of a tier in the Bronze..Diamond ordering.
// Unknown tiers rank as Bronze so stale DB values never outrank real ones.
func TierRank(tier string) int {
	if r, ok := tierRanks[NormalizeTier(tier)]; ok {
		return r
	}
	return 0
}

// NormalizeTier canonicalizes casing coming from external payloads.
// Anything unrecognized falls back to Bronze.
func NormalizeTier(tier string) string {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case "silver":
		return TierSilver
	case "gold":
		return TierGold
	case "platinum":
		return TierPlatinum
	case "diamond":
		return TierDiamond
	default:
		return TierBronze
	}
}
