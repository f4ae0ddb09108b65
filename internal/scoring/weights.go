package scoring

import "fmt"

// Weights configures the contribution of each category to the final score.
// The engine multiplies the weighted sub-score sum by 100 without
// renormalizing, so the maximum achievable score is 100×Sum(). The default
// weights sum to 0.95, which caps the default-weight score at 95.0. That
// ceiling is a fixed property of the original scheme and is asserted in tests
// rather than corrected.
type Weights struct {
	Waste   float64 `json:"waste" yaml:"waste" mapstructure:"waste"`
	Energy  float64 `json:"energy" yaml:"energy" mapstructure:"energy"`
	Water   float64 `json:"water" yaml:"water" mapstructure:"water"`
	Recycle float64 `json:"recycle" yaml:"recycle" mapstructure:"recycle"`
	Carbon  float64 `json:"carbon" yaml:"carbon" mapstructure:"carbon"`
	Oil     float64 `json:"oil" yaml:"oil" mapstructure:"oil"`
	Hygiene float64 `json:"hygiene" yaml:"hygiene" mapstructure:"hygiene"`
}

// DefaultWeights are the weights used when no configuration is provided.
var DefaultWeights = Weights{
	Waste:   0.20,
	Energy:  0.15,
	Water:   0.15,
	Recycle: 0.15,
	Carbon:  0.10,
	Oil:     0.10,
	Hygiene: 0.10,
}

// Sum returns the total weight across all seven categories.
func (w Weights) Sum() float64 {
	return w.Waste + w.Energy + w.Water + w.Recycle + w.Carbon + w.Oil + w.Hygiene
}

// Validate rejects weight sets the engine cannot score with.
func (w Weights) Validate() error {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"waste", w.Waste},
		{"energy", w.Energy},
		{"water", w.Water},
		{"recycle", w.Recycle},
		{"carbon", w.Carbon},
		{"oil", w.Oil},
		{"hygiene", w.Hygiene},
	} {
		if c.value < 0 {
			return fmt.Errorf("weight %s must be non-negative, got %g", c.name, c.value)
		}
	}
	if w.Sum() <= 0 {
		return fmt.Errorf("weights must sum to a positive value")
	}
	return nil
}
