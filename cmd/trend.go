package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/greenseal/internal/chart"
)

var trendOut string

var trendCmd = &cobra.Command{
	Use:   "trend <site-key>",
	Short: "Render a site's score trend as an HTML chart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTrend(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	trendCmd.Flags().StringVar(&trendOut, "out", "", "Output HTML path (defaults to <site-key>_trend.html)")
	rootCmd.AddCommand(trendCmd)
}

func runTrend(siteKey string) error {
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
	site, err := reg.Site(siteKey)
	if err != nil {
		return err
	}

	out := trendOut
	if out == "" {
		out = siteKey + "_trend.html"
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := chart.TrendHTML(f, site, weights); err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Printf("wrote trend chart to %s\n", out)
	}
	return nil
}
