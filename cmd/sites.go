package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/greenseal/internal/output"
)

var (
	siteName     string
	siteLocality string
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List registered sites",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSites(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

var sitesAddCmd = &cobra.Command{
	Use:   "add <site-key>",
	Short: "Provision a new site",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSitesAdd(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	sitesAddCmd.Flags().StringVar(&siteName, "name", "", "Display name (required)")
	sitesAddCmd.Flags().StringVar(&siteLocality, "locality", "", "Locality")
	sitesAddCmd.MarkFlagRequired("name")
	sitesCmd.AddCommand(sitesAddCmd)
	rootCmd.AddCommand(sitesCmd)
}

type siteReport struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Locality string `json:"locality"`
	Records  int    `json:"records"`
}

func runSites() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := openRegistry(cfg)
	if err != nil {
		return err
	}

	sites := reg.Sites()
	if cfg.Format == "json" {
		report := make([]siteReport, 0, len(sites))
		for _, s := range sites {
			report = append(report, siteReport{Key: s.Key, Name: s.Name, Locality: s.Locality, Records: len(s.Records)})
		}
		return output.NewJSONFormatter(os.Stdout, cfg.Output).Format(report)
	}

	for _, s := range sites {
		fmt.Printf("  %-22s %-28s %-14s %d records\n", s.Key, s.Name, s.Locality, len(s.Records))
	}
	return nil
}

func runSitesAdd(key string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := openRegistry(cfg)
	if err != nil {
		return err
	}
	if err := reg.AddSite(key, siteName, siteLocality); err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Printf("added site %s (%s)\n", key, siteName)
	}
	return nil
}
