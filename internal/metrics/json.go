package metrics

import (
	"encoding/json"
	"time"
)

// recordJSON is the persisted shape of a Record. Each numeric-or-level
// category splits into two optional keys; absent union members emit no key at
// all, so the document stays schema-less and older files keep loading.
type recordJSON struct {
	ID        string `json:"id"`
	Month     string `json:"month"`
	CreatedAt string `json:"created_at,omitempty"`

	EnergyKWh   *float64 `json:"energy_kwh,omitempty"`
	EnergyLevel string   `json:"energy_level,omitempty"`

	WaterLiters *float64 `json:"water_liters,omitempty"`
	WaterLevel  string   `json:"water_level,omitempty"`

	WasteLevel string `json:"waste_level,omitempty"`

	RecyclePercent *float64 `json:"recycle_percent,omitempty"`
	RecycleLevel   string   `json:"recycle_level,omitempty"`

	CarbonKg   *float64 `json:"carbon_kg,omitempty"`
	HygienePct *float64 `json:"hygiene_pct,omitempty"`

	OilLiters    float64 `json:"oil_liters"`
	OilDelivered bool    `json:"oil_delivered"`

	CartonKg  float64 `json:"carton_kg,omitempty"`
	PlasticKg float64 `json:"plastic_kg,omitempty"`
	OrganicKg float64 `json:"organic_kg,omitempty"`

	TempFreezer *float64 `json:"temp_freezer,omitempty"`
	TempFridge  *float64 `json:"temp_fridge,omitempty"`
	TempOK      bool     `json:"temp_ok"`

	Practices map[string]bool `json:"practices,omitempty"`
	Evidence  string          `json:"evidence,omitempty"`
}

func measurementToJSON(m Measurement) (*float64, string) {
	if v, ok := m.Value(); ok {
		return &v, ""
	}
	if l, ok := m.Level(); ok {
		return nil, string(l)
	}
	return nil, ""
}

func measurementFromJSON(value *float64, level string) Measurement {
	if value != nil {
		return Number(*value)
	}
	if level != "" {
		return AtLevel(Level(level))
	}
	return None()
}

// MarshalJSON implements json.Marshaler.
func (r *Record) MarshalJSON() ([]byte, error) {
	doc := recordJSON{
		ID:           r.ID,
		Month:        r.Month,
		CarbonKg:     r.CarbonKg,
		HygienePct:   r.HygienePct,
		OilLiters:    r.OilLiters,
		OilDelivered: r.OilDelivered,
		CartonKg:     r.CartonKg,
		PlasticKg:    r.PlasticKg,
		OrganicKg:    r.OrganicKg,
		TempFreezer:  r.TempFreezer,
		TempFridge:   r.TempFridge,
		TempOK:       r.TempOK,
		Practices:    r.Practices,
		Evidence:     r.Evidence,
	}
	if !r.CreatedAt.IsZero() {
		doc.CreatedAt = r.CreatedAt.Format(time.RFC3339)
	}
	doc.EnergyKWh, doc.EnergyLevel = measurementToJSON(r.Energy)
	doc.WaterLiters, doc.WaterLevel = measurementToJSON(r.Water)
	doc.WasteLevel = string(r.Waste)
	doc.RecyclePercent, doc.RecycleLevel = measurementToJSON(r.Recycle)
	return json.Marshal(doc)
}

// UnmarshalJSON implements json.Unmarshaler. Loading is tolerant: absent
// optional keys become absent measurements and fall to the scoring defaults.
func (r *Record) UnmarshalJSON(data []byte) error {
	var doc recordJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	r.ID = doc.ID
	r.Month = doc.Month
	if doc.CreatedAt != "" {
		t, err := time.Parse(time.RFC3339, doc.CreatedAt)
		if err != nil {
			return &ValidationError{Field: "created_at", Message: err.Error()}
		}
		r.CreatedAt = t
	}
	r.Energy = measurementFromJSON(doc.EnergyKWh, doc.EnergyLevel)
	r.Water = measurementFromJSON(doc.WaterLiters, doc.WaterLevel)
	r.Waste = Level(doc.WasteLevel)
	r.Recycle = measurementFromJSON(doc.RecyclePercent, doc.RecycleLevel)
	r.CarbonKg = doc.CarbonKg
	r.HygienePct = doc.HygienePct
	r.OilLiters = doc.OilLiters
	r.OilDelivered = doc.OilDelivered
	r.CartonKg = doc.CartonKg
	r.PlasticKg = doc.PlasticKg
	r.OrganicKg = doc.OrganicKg
	r.TempFreezer = doc.TempFreezer
	r.TempFridge = doc.TempFridge
	r.TempOK = doc.TempOK
	r.Practices = doc.Practices
	r.Evidence = doc.Evidence
	return nil
}
