package metrics

import (
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Temperature ranges considered compliant for cold storage (°C).
const (
	FreezerMin = -25.0
	FreezerMax = -15.0
	FridgeMin  = 1.0
	FridgeMax  = 6.0
)

// carbonPerKWh is the emission factor used by EstimateCarbonKg (kg CO₂e/kWh).
const carbonPerKWh = 0.475

var monthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Record is one month's submitted sustainability measurements for one site.
// Records are immutable after construction except for the oil delivered flag,
// which the registry may toggle when the oil is handed to an authorized
// handler.
type Record struct {
	ID        string
	Month     string
	CreatedAt time.Time

	Energy  Measurement // kWh
	Water   Measurement // liters
	Waste   Level       // categorical only, no numeric variant
	Recycle Measurement // fraction in [0,1]

	CarbonKg   *float64
	HygienePct *float64 // fraction in [0,1]

	OilLiters    float64
	OilDelivered bool

	// Recycled mass breakdown feeding the recycle-percent heuristic.
	CartonKg  float64
	PlasticKg float64
	OrganicKg float64

	TempFreezer *float64
	TempFridge  *float64
	TempOK      bool

	Practices map[string]bool

	// Evidence is an opaque path to an externally stored attachment. The core
	// stores and forwards it, never inspects it.
	Evidence string
}

// Params carries the already-typed fields collected by the reporting
// workflow. Zero-value Measurements mean "not provided".
type Params struct {
	Month   string
	Energy  Measurement
	Water   Measurement
	Waste   Level
	Recycle Measurement

	CarbonKg   *float64
	HygienePct *float64

	OilLiters float64

	CartonKg  float64
	PlasticKg float64
	OrganicKg float64

	TempFreezer *float64
	TempFridge  *float64

	Practices map[string]bool
	Evidence  string
}

// New validates params and constructs a Record. Out-of-range values are
// rejected with a ValidationError; nothing is clamped silently.
func New(p Params) (*Record, error) {
	if !monthRe.MatchString(p.Month) {
		return nil, &ValidationError{Field: "month", Message: fmt.Sprintf("%q is not a YYYY-MM label", p.Month)}
	}
	if err := checkVolume("energy_kwh", p.Energy); err != nil {
		return nil, err
	}
	if err := checkVolume("water_liters", p.Water); err != nil {
		return nil, err
	}
	if err := checkFraction("recycle_percent", p.Recycle); err != nil {
		return nil, err
	}
	if p.CarbonKg != nil && *p.CarbonKg < 0 {
		return nil, &ValidationError{Field: "carbon_kg", Message: "must be non-negative"}
	}
	if p.HygienePct != nil && (*p.HygienePct < 0 || *p.HygienePct > 1) {
		return nil, &ValidationError{Field: "hygiene_pct", Message: "must be in [0,1]"}
	}
	if p.OilLiters < 0 {
		return nil, &ValidationError{Field: "oil_liters", Message: "must be non-negative"}
	}
	if p.CartonKg < 0 {
		return nil, &ValidationError{Field: "carton_kg", Message: "must be non-negative"}
	}
	if p.PlasticKg < 0 {
		return nil, &ValidationError{Field: "plastic_kg", Message: "must be non-negative"}
	}
	if p.OrganicKg < 0 {
		return nil, &ValidationError{Field: "organic_kg", Message: "must be non-negative"}
	}
	if _, err := ParseLevel(string(p.Waste)); err != nil {
		return nil, &ValidationError{Field: "waste_level", Message: fmt.Sprintf("unknown level %q", p.Waste)}
	}

	return &Record{
		ID:           uuid.NewString()[:8],
		Month:        p.Month,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
		Energy:       p.Energy,
		Water:        p.Water,
		Waste:        p.Waste,
		Recycle:      p.Recycle,
		CarbonKg:     p.CarbonKg,
		HygienePct:   p.HygienePct,
		OilLiters:    p.OilLiters,
		OilDelivered: false,
		CartonKg:     p.CartonKg,
		PlasticKg:    p.PlasticKg,
		OrganicKg:    p.OrganicKg,
		TempFreezer:  p.TempFreezer,
		TempFridge:   p.TempFridge,
		TempOK:       tempWithinRange(p.TempFreezer, p.TempFridge),
		Practices:    p.Practices,
		Evidence:     p.Evidence,
	}, nil
}

func checkVolume(field string, m Measurement) error {
	if v, ok := m.Value(); ok && v < 0 {
		return &ValidationError{Field: field, Message: "must be non-negative"}
	}
	return nil
}

func checkFraction(field string, m Measurement) error {
	if v, ok := m.Value(); ok && (v < 0 || v > 1) {
		return &ValidationError{Field: field, Message: "must be in [0,1]"}
	}
	return nil
}

func tempWithinRange(freezer, fridge *float64) bool {
	if freezer == nil || fridge == nil {
		return false
	}
	if *freezer < FreezerMin || *freezer > FreezerMax {
		return false
	}
	if *fridge < FridgeMin || *fridge > FridgeMax {
		return false
	}
	return true
}

// RecyclePercentFromMasses estimates the recycled fraction from the monthly
// mass breakdown. A 10 kg baseline of unsorted waste is assumed so that small
// submissions don't report a 100% rate.
func RecyclePercentFromMasses(cartonKg, plasticKg, organicKg float64) float64 {
	total := math.Max(1.0, cartonKg+plasticKg+organicKg+10.0)
	return math.Round((cartonKg+plasticKg)/total*100) / 100
}

// EstimateCarbonKg derives a rough monthly carbon figure from electricity use
// when no measured value is available.
func EstimateCarbonKg(energyKWh float64) float64 {
	return math.Round(carbonPerKWh*energyKWh*10) / 10
}

// HygieneFromChecklist turns a fixed-size checklist into the hygiene fraction.
func HygieneFromChecklist(checked, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(checked)/float64(total)*100) / 100
}
