package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/greenseal/internal/config"
	"github.com/dotcommander/greenseal/internal/ledger"
	"github.com/dotcommander/greenseal/internal/output"
	"github.com/dotcommander/greenseal/internal/registry"
	"github.com/dotcommander/greenseal/internal/scoring"
)

var (
	dataDir      string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	weightsFile  string
)

// exitFunc is replaced in tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "greenseal",
	Short: "Green Seal - track sustainability metrics and certify restaurant sites",
	Long: `Greenseal tracks monthly sustainability metrics (energy, water, waste,
recycling, oil disposal, hygiene) for restaurant sites, scores each submission
on a 0-100 scale, classifies sites into Gold/Silver/Bronze tiers and keeps an
append-only ledger of issued certifications.

Running without a subcommand prints the cross-site overview.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSummary(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "Data directory (defaults to ~/.greenseal)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports")
	rootCmd.PersistentFlags().StringVarP(&weightsFile, "weights", "w", "", "Weight profile file (yaml or json)")

	viper.BindPFlag("dataDir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	configPaths := []string{".greensealrc.json", ".greensealrc.yaml", ".greensealrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(dataDir)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	if !cfg.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// resolveWeights picks the scoring weights: an explicit profile file wins over
// the config override; nil selects the engine defaults.
func resolveWeights(cfg *config.Config) (*scoring.Weights, error) {
	if weightsFile != "" {
		return config.LoadWeightsFile(weightsFile)
	}
	return cfg.ScoringWeights()
}

func openRegistry(cfg *config.Config) (*registry.Registry, error) {
	return registry.Open(cfg.SitesPath(), newLogger(cfg))
}

func openLedger(cfg *config.Config) (*ledger.Ledger, error) {
	w, err := resolveWeights(cfg)
	if err != nil {
		return nil, err
	}
	return ledger.Open(cfg.LedgerPath(), w, newLogger(cfg))
}

func consoleFormatter(cfg *config.Config) *output.ConsoleFormatter {
	return output.NewConsoleFormatter(os.Stdout, cfg.Quiet)
}
