package metrics

import (
	"errors"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func validParams() Params {
	return Params{
		Month:       "2025-03",
		Energy:      Number(800),
		Water:       Number(2500),
		Waste:       LevelMedium,
		Recycle:     Number(0.55),
		OilLiters:   10,
		TempFreezer: floatPtr(-18),
		TempFridge:  floatPtr(4),
	}
}

func TestNewValid(t *testing.T) {
	rec, err := New(validParams())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if rec.ID == "" || len(rec.ID) != 8 {
		t.Errorf("ID = %q, want an 8-char id", rec.ID)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if rec.OilDelivered {
		t.Error("OilDelivered must start false")
	}
	if !rec.TempOK {
		t.Error("TempOK = false for in-range temperatures")
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		field  string
	}{
		{"bad month label", func(p *Params) { p.Month = "March 2025" }, "month"},
		{"month 13", func(p *Params) { p.Month = "2025-13" }, "month"},
		{"negative energy", func(p *Params) { p.Energy = Number(-1) }, "energy_kwh"},
		{"negative water", func(p *Params) { p.Water = Number(-0.5) }, "water_liters"},
		{"recycle above one", func(p *Params) { p.Recycle = Number(1.2) }, "recycle_percent"},
		{"recycle below zero", func(p *Params) { p.Recycle = Number(-0.1) }, "recycle_percent"},
		{"negative carbon", func(p *Params) { p.CarbonKg = floatPtr(-3) }, "carbon_kg"},
		{"hygiene above one", func(p *Params) { p.HygienePct = floatPtr(1.5) }, "hygiene_pct"},
		{"negative oil", func(p *Params) { p.OilLiters = -2 }, "oil_liters"},
		{"negative carton", func(p *Params) { p.CartonKg = -1 }, "carton_kg"},
		{"unknown waste level", func(p *Params) { p.Waste = Level("severe") }, "waste_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			_, err := New(p)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("New() error = %v, want ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("ValidationError.Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestTempWithinRange(t *testing.T) {
	tests := []struct {
		name    string
		freezer *float64
		fridge  *float64
		want    bool
	}{
		{"both in range", floatPtr(-18), floatPtr(4), true},
		{"freezer boundary low", floatPtr(-25), floatPtr(4), true},
		{"freezer boundary high", floatPtr(-15), floatPtr(4), true},
		{"freezer too warm", floatPtr(-10), floatPtr(4), false},
		{"fridge boundary low", floatPtr(-18), floatPtr(1), true},
		{"fridge boundary high", floatPtr(-18), floatPtr(6), true},
		{"fridge too warm", floatPtr(-18), floatPtr(8), false},
		{"missing readings", nil, nil, false},
		{"missing fridge", floatPtr(-18), nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			p.TempFreezer = tt.freezer
			p.TempFridge = tt.fridge
			rec, err := New(p)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if rec.TempOK != tt.want {
				t.Errorf("TempOK = %v, want %v", rec.TempOK, tt.want)
			}
		})
	}
}

func TestRecyclePercentFromMasses(t *testing.T) {
	tests := []struct {
		name                      string
		carton, plastic, organic  float64
		want                      float64
	}{
		{"typical month", 50, 5, 20, 0.65},
		{"nothing recycled", 0, 0, 0, 0},
		{"only organic", 0, 0, 30, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecyclePercentFromMasses(tt.carton, tt.plastic, tt.organic)
			if got != tt.want {
				t.Errorf("RecyclePercentFromMasses(%g, %g, %g) = %g, want %g",
					tt.carton, tt.plastic, tt.organic, got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("estimate %g outside [0,1]", got)
			}
		})
	}
}

func TestEstimateCarbonKg(t *testing.T) {
	if got := EstimateCarbonKg(800); got != 380.0 {
		t.Errorf("EstimateCarbonKg(800) = %g, want 380.0", got)
	}
	if got := EstimateCarbonKg(0); got != 0 {
		t.Errorf("EstimateCarbonKg(0) = %g, want 0", got)
	}
}

func TestHygieneFromChecklist(t *testing.T) {
	tests := []struct {
		checked, total int
		want           float64
	}{
		{5, 5, 1.0},
		{4, 5, 0.8},
		{0, 5, 0},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := HygieneFromChecklist(tt.checked, tt.total); got != tt.want {
			t.Errorf("HygieneFromChecklist(%d, %d) = %g, want %g", tt.checked, tt.total, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"low", "medium", "high", ""} {
		if _, err := ParseLevel(s); err != nil {
			t.Errorf("ParseLevel(%q) error = %v", s, err)
		}
	}
	if _, err := ParseLevel("extreme"); err == nil {
		t.Error("ParseLevel(\"extreme\") expected error")
	}
}

func TestMeasurementUnion(t *testing.T) {
	n := Number(42)
	if v, ok := n.Value(); !ok || v != 42 {
		t.Errorf("Number(42).Value() = %g, %v", v, ok)
	}
	if _, ok := n.Level(); ok {
		t.Error("numeric measurement must not report a level")
	}

	l := AtLevel(LevelHigh)
	if _, ok := l.Value(); ok {
		t.Error("level measurement must not report a value")
	}
	if lv, ok := l.Level(); !ok || lv != LevelHigh {
		t.Errorf("AtLevel(high).Level() = %q, %v", lv, ok)
	}

	if !None().IsNone() {
		t.Error("None().IsNone() = false")
	}
	if !AtLevel("").IsNone() {
		t.Error("AtLevel(\"\") should collapse to absent")
	}
}
