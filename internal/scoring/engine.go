// Package scoring maps a metric record to a compliance score in [0,100] and a
// Gold/Silver/Bronze tier. Scoring is pure: it never fails on a constructed
// record, and missing inputs degrade to the neutral 0.6 sub-score.
package scoring

import (
	"fmt"
	"math"

	"github.com/dotcommander/greenseal/internal/metrics"
)

// Sub-score values for a category: good, acceptable and poor.
const (
	subGood = 1.0
	subFair = 0.6
	subPoor = 0.2
)

// CategoryScore is the per-category breakdown of one scored record.
type CategoryScore struct {
	Category string  `json:"category"`
	Weight   float64 `json:"weight"`
	SubScore float64 `json:"sub_score"`
	Points   float64 `json:"points"` // weight × sub-score × 100
	Basis    string  `json:"basis"`  // which reading produced the sub-score
}

// Report bundles the final score, its tier and the category breakdown.
type Report struct {
	Score      float64         `json:"score"`
	Tier       Tier            `json:"tier"`
	Categories []CategoryScore `json:"categories"`
}

// Score computes the weighted score for a record, rounded to one decimal.
// A nil weights pointer selects DefaultWeights.
func Score(rec *metrics.Record, w *Weights) float64 {
	return Evaluate(rec, w).Score
}

// Evaluate scores a record and returns the full per-category breakdown.
func Evaluate(rec *metrics.Record, w *Weights) Report {
	weights := DefaultWeights
	if w != nil {
		weights = *w
	}

	categories := []CategoryScore{
		category("waste", weights.Waste, levelSubScore(rec.Waste)),
		category("energy", weights.Energy, thresholdSubScore(rec.Energy, "kWh", 500, 1200, false)),
		category("water", weights.Water, thresholdSubScore(rec.Water, "L", 2000, 5000, false)),
		category("recycle", weights.Recycle, thresholdSubScore(rec.Recycle, "", 0.6, 0.3, true)),
		category("carbon", weights.Carbon, numericSubScore(rec.CarbonKg, "kg", 500, 1200, false)),
		category("oil", weights.Oil, oilSubScore(rec.OilDelivered)),
		category("hygiene", weights.Hygiene, numericSubScore(rec.HygienePct, "", 0.9, 0.7, true)),
	}

	var total float64
	for _, c := range categories {
		total += c.Points
	}
	score := math.Round(total*10) / 10
	return Report{Score: score, Tier: TierFromScore(score), Categories: categories}
}

type subScore struct {
	value float64
	basis string
}

func category(name string, weight float64, s subScore) CategoryScore {
	return CategoryScore{
		Category: name,
		Weight:   weight,
		SubScore: s.value,
		Points:   weight * s.value * 100,
		Basis:    s.basis,
	}
}

// levelSubScore maps a categorical level; an unspecified level counts as
// medium.
func levelSubScore(l metrics.Level) subScore {
	switch l {
	case metrics.LevelLow:
		return subScore{subGood, "level low"}
	case metrics.LevelHigh:
		return subScore{subPoor, "level high"}
	case metrics.LevelMedium:
		return subScore{subFair, "level medium"}
	default:
		return subScore{subFair, "level unspecified"}
	}
}

// thresholdSubScore scores a numeric-or-level measurement. A numeric reading
// takes precedence over a level even when both are present. For volumes
// (higherIsBetter=false) lower readings are better; for fractions the
// comparison flips.
func thresholdSubScore(m metrics.Measurement, unit string, good, fair float64, higherIsBetter bool) subScore {
	if v, ok := m.Value(); ok {
		return numericThreshold(v, unit, good, fair, higherIsBetter)
	}
	if l, ok := m.Level(); ok {
		return levelSubScore(l)
	}
	return subScore{subFair, "not reported"}
}

// numericSubScore scores a numeric-only optional reading; absent readings
// take the neutral default.
func numericSubScore(v *float64, unit string, good, fair float64, higherIsBetter bool) subScore {
	if v == nil {
		return subScore{subFair, "not reported"}
	}
	return numericThreshold(*v, unit, good, fair, higherIsBetter)
}

func numericThreshold(v float64, unit string, good, fair float64, higherIsBetter bool) subScore {
	basis := fmt.Sprintf("%g", v)
	if unit != "" {
		basis += " " + unit
	}
	if higherIsBetter {
		switch {
		case v >= good:
			return subScore{subGood, basis}
		case v >= fair:
			return subScore{subFair, basis}
		default:
			return subScore{subPoor, basis}
		}
	}
	switch {
	case v <= good:
		return subScore{subGood, basis}
	case v <= fair:
		return subScore{subFair, basis}
	default:
		return subScore{subPoor, basis}
	}
}

// oilSubScore is binary: delivery to an authorized handler is the only thing
// that counts.
func oilSubScore(delivered bool) subScore {
	if delivered {
		return subScore{subGood, "delivered to handler"}
	}
	return subScore{subPoor, "not delivered"}
}
