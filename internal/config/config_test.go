package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dotcommander/greenseal/internal/scoring"
)

func f(v float64) *float64 { return &v }

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Format)
	}
	if cfg.Issuer != "inspector" {
		t.Errorf("Issuer = %q, want inspector", cfg.Issuer)
	}
	w, err := cfg.ScoringWeights()
	if err != nil {
		t.Fatalf("ScoringWeights() error = %v", err)
	}
	if w != nil {
		t.Errorf("ScoringWeights() = %+v, want nil (defaults)", w)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{"console format", Config{DataDir: "/tmp/gs", Format: "console"}, ""},
		{"json format", Config{DataDir: "/tmp/gs", Format: "json"}, ""},
		{"unknown format", Config{DataDir: "/tmp/gs", Format: "xml"}, "invalid format"},
		{"missing data dir", Config{Format: "console"}, "data directory is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&tt.config)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validateConfig() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validateConfig() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestWeightsOverride(t *testing.T) {
	full := Weights{
		Waste: f(0.2), Energy: f(0.15), Water: f(0.15), Recycle: f(0.15),
		Carbon: f(0.1), Oil: f(0.1), Hygiene: f(0.1),
	}

	tests := []struct {
		name    string
		weights Weights
		want    *scoring.Weights
		wantErr bool
	}{
		{"unset selects defaults", Weights{}, nil, false},
		{"all seven set", full, &scoring.DefaultWeights, false},
		{"partial override rejected", Weights{Waste: f(0.5), Oil: f(0.5)}, nil, true},
		{"single category rejected", Weights{Hygiene: f(1)}, nil, true},
		{
			"negative weight rejected",
			Weights{
				Waste: f(-0.2), Energy: f(0.15), Water: f(0.15), Recycle: f(0.15),
				Carbon: f(0.1), Oil: f(0.1), Hygiene: f(0.1),
			},
			nil, true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.weights.toScoring()
			if (err != nil) != tt.wantErr {
				t.Fatalf("toScoring() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.want == nil {
				if got != nil {
					t.Errorf("toScoring() = %+v, want nil", got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Errorf("toScoring() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadWeightsFile(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	yamlPath := write("profile.yaml", `waste: 0.3
energy: 0.1
water: 0.1
recycle: 0.2
carbon: 0.1
oil: 0.1
hygiene: 0.1
`)
	jsonPath := write("profile.json",
		`{"waste":0.3,"energy":0.1,"water":0.1,"recycle":0.2,"carbon":0.1,"oil":0.1,"hygiene":0.1}`)
	partialPath := write("partial.yaml", "waste: 0.5\noil: 0.5\n")
	emptyPath := write("empty.yaml", "{}\n")

	want := scoring.Weights{
		Waste: 0.3, Energy: 0.1, Water: 0.1, Recycle: 0.2,
		Carbon: 0.1, Oil: 0.1, Hygiene: 0.1,
	}

	for _, path := range []string{yamlPath, jsonPath} {
		got, err := LoadWeightsFile(path)
		if err != nil {
			t.Fatalf("LoadWeightsFile(%s) error = %v", filepath.Base(path), err)
		}
		if *got != want {
			t.Errorf("LoadWeightsFile(%s) = %+v, want %+v", filepath.Base(path), got, want)
		}
	}

	if _, err := LoadWeightsFile(partialPath); err == nil {
		t.Error("LoadWeightsFile() accepted a partial profile")
	}
	if _, err := LoadWeightsFile(emptyPath); err == nil {
		t.Error("LoadWeightsFile() accepted an empty profile")
	}
	if _, err := LoadWeightsFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadWeightsFile() accepted a missing file")
	}
}

func TestDataPaths(t *testing.T) {
	cfg := &Config{DataDir: "/var/lib/greenseal"}
	if got := cfg.SitesPath(); got != filepath.Join("/var/lib/greenseal", "sites.json") {
		t.Errorf("SitesPath() = %q", got)
	}
	if got := cfg.LedgerPath(); got != filepath.Join("/var/lib/greenseal", "certifications.json") {
		t.Errorf("LedgerPath() = %q", got)
	}
	if got := cfg.EvidenceDir(); got != filepath.Join("/var/lib/greenseal", "evidence") {
		t.Errorf("EvidenceDir() = %q", got)
	}
}
