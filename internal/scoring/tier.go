package scoring

// Tier is a site's compliance classification.
type Tier string

const (
	TierGold   Tier = "Gold"
	TierSilver Tier = "Silver"
	TierBronze Tier = "Bronze"

	// TierNoData marks overview rows for sites that have no records yet. It is
	// never produced by TierFromScore.
	TierNoData Tier = "No data"
)

// TierFromScore classifies a score. Boundaries are inclusive on the lower
// tier's threshold: 76.0 is Gold, 75.9 is Silver. Out-of-range input lands in
// the nearest tier.
func TierFromScore(score float64) Tier {
	switch {
	case score >= 76:
		return TierGold
	case score >= 41:
		return TierSilver
	default:
		return TierBronze
	}
}
