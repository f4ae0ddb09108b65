package scoring

import "testing"

func TestTierFromScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  Tier
	}{
		{"Gold - exact boundary", 76.0, TierGold},
		{"Gold - maximum", 100.0, TierGold},
		{"Silver - just below Gold", 75.9, TierSilver},
		{"Silver - exact boundary", 41.0, TierSilver},
		{"Silver - mid range", 60.0, TierSilver},
		{"Bronze - just below Silver", 40.9, TierBronze},
		{"Bronze - zero", 0.0, TierBronze},
		{"Bronze - below range", -5.0, TierBronze},
		{"Gold - above range", 120.0, TierGold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierFromScore(tt.score); got != tt.want {
				t.Errorf("TierFromScore(%g) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}
