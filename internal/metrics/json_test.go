package metrics

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestRecordMarshalUnionKeys(t *testing.T) {
	tests := []struct {
		name        string
		rec         *Record
		wantKeys    []string
		missingKeys []string
	}{
		{
			name:        "numeric energy emits only the numeric key",
			rec:         &Record{ID: "a1", Month: "2025-01", Energy: Number(850)},
			wantKeys:    []string{`"energy_kwh": 850`},
			missingKeys: []string{"energy_level"},
		},
		{
			name:        "categorical energy emits only the level key",
			rec:         &Record{ID: "a2", Month: "2025-01", Energy: AtLevel(LevelLow)},
			wantKeys:    []string{`"energy_level": "low"`},
			missingKeys: []string{"energy_kwh"},
		},
		{
			name:        "absent measurements emit no key",
			rec:         &Record{ID: "a3", Month: "2025-01"},
			missingKeys: []string{"energy_kwh", "energy_level", "water_liters", "water_level", "recycle_percent", "recycle_level", "waste_level", "carbon_kg", "hygiene_pct"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.MarshalIndent(tt.rec, "", "  ")
			if err != nil {
				t.Fatalf("MarshalIndent error = %v", err)
			}
			s := string(data)
			for _, key := range tt.wantKeys {
				if !strings.Contains(s, key) {
					t.Errorf("marshaled record missing %q:\n%s", key, s)
				}
			}
			for _, key := range tt.missingKeys {
				if strings.Contains(s, key) {
					t.Errorf("marshaled record should not contain %q:\n%s", key, s)
				}
			}
		})
	}
}

// A legacy document may carry both the numeric and the level key for one
// category; the numeric reading wins.
func TestUnmarshalNumericWinsOverLevel(t *testing.T) {
	doc := `{"id":"x1","month":"2025-02","energy_kwh":500,"energy_level":"high","oil_liters":0,"oil_delivered":false,"temp_ok":false}`
	var rec Record
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	v, ok := rec.Energy.Value()
	if !ok || v != 500 {
		t.Errorf("Energy = %v, want numeric 500", rec.Energy)
	}
}

func TestUnmarshalAbsentFields(t *testing.T) {
	doc := `{"id":"x2","month":"2025-02","oil_liters":3,"oil_delivered":true,"temp_ok":false}`
	var rec Record
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if !rec.Energy.IsNone() || !rec.Water.IsNone() || !rec.Recycle.IsNone() {
		t.Error("absent keys must decode to absent measurements")
	}
	if rec.CarbonKg != nil || rec.HygienePct != nil {
		t.Error("absent optionals must decode to nil")
	}
	if rec.Waste != "" {
		t.Errorf("Waste = %q, want unspecified", rec.Waste)
	}
	if !rec.OilDelivered || rec.OilLiters != 3 {
		t.Error("oil fields not decoded")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	hyg := 0.8
	rec, err := New(Params{
		Month:       "2025-03",
		Energy:      Number(850),
		Water:       AtLevel(LevelMedium),
		Waste:       LevelLow,
		Recycle:     Number(0.62),
		HygienePct:  &hyg,
		OilLiters:   12.5,
		CartonKg:    50,
		PlasticKg:   5,
		OrganicKg:   20,
		TempFreezer: floatPtr(-18),
		TempFridge:  floatPtr(4),
		Practices:   map[string]bool{"biodegradable_boxes": true},
		Evidence:    "evidence/site_oil_20250301.jpg",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	var back Record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if !rec.CreatedAt.Equal(back.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", back.CreatedAt, rec.CreatedAt)
	}
	back.CreatedAt = rec.CreatedAt
	if !reflect.DeepEqual(rec, &back) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", &back, rec)
	}
}
