package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/greenseal/internal/aggregate"
	"github.com/dotcommander/greenseal/internal/output"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the cross-site overview",
	Long: `Ranks all sites by the score of their latest submission, highest first.
Sites without records sort last. Also prints the average score across every
record of every site.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSummary(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

// summaryReport is the JSON shape of the overview.
type summaryReport struct {
	Sites        []aggregate.OverviewRow `json:"sites"`
	AverageScore *float64                `json:"average_score,omitempty"`
}

func runSummary() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := openRegistry(cfg)
	if err != nil {
		return err
	}
	weights, err := resolveWeights(cfg)
	if err != nil {
		return err
	}

	rows := aggregate.SiteOverview(reg, weights)
	avg, hasAvg := aggregate.AverageScore(reg, weights)

	if cfg.Format == "json" {
		report := summaryReport{Sites: rows}
		if hasAvg {
			report.AverageScore = &avg
		}
		return output.NewJSONFormatter(os.Stdout, cfg.Output).Format(report)
	}

	consoleFormatter(cfg).Overview(rows, avg, hasAvg)
	return nil
}
