package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/greenseal/internal/scoring"
)

// Config represents the greenseal configuration
type Config struct {
	DataDir string  `mapstructure:"dataDir"`
	Format  string  `mapstructure:"format"`
	Output  string  `mapstructure:"output"`
	Issuer  string  `mapstructure:"issuer"`
	Quiet   bool    `mapstructure:"quiet"`
	Verbose bool    `mapstructure:"verbose"`
	Weights Weights `mapstructure:"weights"`
}

// Weights overrides the scoring weights. A zero value means "use the
// defaults"; a partial override is rejected so a typo cannot silently zero a
// category.
type Weights struct {
	Waste   *float64 `mapstructure:"waste" yaml:"waste"`
	Energy  *float64 `mapstructure:"energy" yaml:"energy"`
	Water   *float64 `mapstructure:"water" yaml:"water"`
	Recycle *float64 `mapstructure:"recycle" yaml:"recycle"`
	Carbon  *float64 `mapstructure:"carbon" yaml:"carbon"`
	Oil     *float64 `mapstructure:"oil" yaml:"oil"`
	Hygiene *float64 `mapstructure:"hygiene" yaml:"hygiene"`
}

// LoadConfig loads configuration from config files, environment and flags
func LoadConfig(dataDir string) (*Config, error) {
	homeDir, _ := os.UserHomeDir()
	viper.SetDefault("dataDir", filepath.Join(homeDir, ".greenseal"))
	viper.SetDefault("format", "console")
	viper.SetDefault("issuer", "inspector")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)

	configPaths := []string{".greensealrc.json", ".greensealrc.yaml", ".greensealrc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	viper.SetEnvPrefix("GREENSEAL")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if dataDir != "" {
		config.DataDir = dataDir
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" {
		return fmt.Errorf("invalid format: %s. Must be 'console' or 'json'", config.Format)
	}
	if config.DataDir == "" {
		return fmt.Errorf("data directory is required")
	}
	if _, err := config.ScoringWeights(); err != nil {
		return err
	}
	return nil
}

// SitesPath returns the path of the sites/records document.
func (c *Config) SitesPath() string {
	return filepath.Join(c.DataDir, "sites.json")
}

// LedgerPath returns the path of the certification document.
func (c *Config) LedgerPath() string {
	return filepath.Join(c.DataDir, "certifications.json")
}

// EvidenceDir returns the directory evidence attachments are expected in.
func (c *Config) EvidenceDir() string {
	return filepath.Join(c.DataDir, "evidence")
}

// ScoringWeights converts the configured override into engine weights. It
// returns nil when no override is configured, which selects the defaults.
func (c *Config) ScoringWeights() (*scoring.Weights, error) {
	return c.Weights.toScoring()
}

func (w Weights) toScoring() (*scoring.Weights, error) {
	fields := []*float64{w.Waste, w.Energy, w.Water, w.Recycle, w.Carbon, w.Oil, w.Hygiene}
	set := 0
	for _, f := range fields {
		if f != nil {
			set++
		}
	}
	if set == 0 {
		return nil, nil
	}
	if set != len(fields) {
		return nil, fmt.Errorf("weight override must set all seven categories, got %d", set)
	}
	out := &scoring.Weights{
		Waste:   *w.Waste,
		Energy:  *w.Energy,
		Water:   *w.Water,
		Recycle: *w.Recycle,
		Carbon:  *w.Carbon,
		Oil:     *w.Oil,
		Hygiene: *w.Hygiene,
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadWeightsFile reads a weight profile from a YAML or JSON file. YAML is a
// superset of JSON, so one parser covers both.
func LoadWeightsFile(path string) (*scoring.Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read weights file: %w", err)
	}
	var w Weights
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse weights file: %w", err)
	}
	out, err := w.toScoring()
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("weights file %s sets no categories", filepath.Base(path))
	}
	return out, nil
}
