package alerts

import (
	"strings"
	"testing"

	"github.com/dotcommander/greenseal/internal/metrics"
	"github.com/dotcommander/greenseal/internal/scoring"
)

func f(v float64) *float64 { return &v }

// healthyRecord scores well and has in-range temperatures.
func healthyRecord(t *testing.T) *metrics.Record {
	t.Helper()
	rec, err := metrics.New(metrics.Params{
		Month:       "2025-03",
		Energy:      metrics.Number(400),
		Water:       metrics.Number(1500),
		Waste:       metrics.LevelLow,
		Recycle:     metrics.Number(0.7),
		CarbonKg:    f(300),
		HygienePct:  f(0.95),
		OilLiters:   10,
		TempFreezer: f(-18),
		TempFridge:  f(4),
	})
	if err != nil {
		t.Fatalf("metrics.New() error = %v", err)
	}
	rec.OilDelivered = true
	return rec
}

func findSeverity(alerts []Alert, severity, substr string) bool {
	for _, a := range alerts {
		if a.Severity == severity && strings.Contains(a.Message, substr) {
			return true
		}
	}
	return false
}

func TestEvaluateClean(t *testing.T) {
	if got := Evaluate(healthyRecord(t), nil); len(got) != 0 {
		t.Errorf("Evaluate() = %v, want no alerts", got)
	}
}

func TestEvaluateTemperature(t *testing.T) {
	tests := []struct {
		name    string
		freezer *float64
		fridge  *float64
	}{
		{"freezer too warm", f(-10), f(4)},
		{"fridge too cold", f(-18), f(0.5)},
		{"readings missing", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := healthyRecord(t)
			rec.TempFreezer = tt.freezer
			rec.TempFridge = tt.fridge
			rec.TempOK = false
			alerts := Evaluate(rec, nil)
			if !findSeverity(alerts, SeverityError, "temperatures out of range") {
				t.Errorf("Evaluate() = %v, want a refrigeration error", alerts)
			}
		})
	}
}

func TestEvaluateOilBacklog(t *testing.T) {
	tests := []struct {
		name      string
		liters    float64
		delivered bool
		want      bool
	}{
		{"large batch undelivered", 25, false, true},
		{"large batch delivered", 25, true, false},
		{"exactly at threshold", 20, false, false},
		{"small batch undelivered", 5, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := healthyRecord(t)
			rec.OilLiters = tt.liters
			rec.OilDelivered = tt.delivered
			got := findSeverity(Evaluate(rec, nil), SeverityWarning, "not yet delivered")
			if got != tt.want {
				t.Errorf("oil backlog alert = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateLowScore(t *testing.T) {
	rec, err := metrics.New(metrics.Params{
		Month:       "2025-03",
		Energy:      metrics.Number(2000),
		Water:       metrics.Number(8000),
		Waste:       metrics.LevelHigh,
		Recycle:     metrics.Number(0.1),
		CarbonKg:    f(2000),
		HygienePct:  f(0.5),
		OilLiters:   5,
		TempFreezer: f(-18),
		TempFridge:  f(4),
	})
	if err != nil {
		t.Fatalf("metrics.New() error = %v", err)
	}

	alerts := Evaluate(rec, nil)
	if !findSeverity(alerts, SeverityError, "improvement plan") {
		t.Errorf("Evaluate() = %v, want a low-score error", alerts)
	}
	if findSeverity(alerts, SeverityError, "temperatures out of range") {
		t.Errorf("Evaluate() = %v, unexpected refrigeration error", alerts)
	}
}

// Alerts score with the same weights the caller certifies with.
func TestEvaluateCustomWeights(t *testing.T) {
	rec := healthyRecord(t)
	rec.OilDelivered = false
	w := &scoring.Weights{Oil: 1} // score 20 under these weights
	if !findSeverity(Evaluate(rec, w), SeverityError, "improvement plan") {
		t.Error("Evaluate() ignored the custom weights")
	}
}
