package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotcommander/greenseal/internal/export"
)

var (
	evidenceOut     string
	evidencePattern string
)

var evidenceCmd = &cobra.Command{
	Use:   "evidence <site-key>",
	Short: "Export a site's evidence attachments as a ZIP archive",
	Long: `Collects the evidence files referenced by a site's records into a single
ZIP archive. Records without evidence, and references to files that no longer
exist, are skipped. A glob pattern can narrow the export to one evidence
category, e.g. --pattern '*oil*'.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runEvidence(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	evidenceCmd.Flags().StringVar(&evidenceOut, "out", "", "Output ZIP path (defaults to <site-key>_evidence_<stamp>.zip)")
	evidenceCmd.Flags().StringVar(&evidencePattern, "pattern", "", "Glob pattern filtering evidence file names")
	rootCmd.AddCommand(evidenceCmd)
}

func runEvidence(siteKey string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := openRegistry(cfg)
	if err != nil {
		return err
	}
	site, err := reg.Site(siteKey)
	if err != nil {
		return err
	}

	out := evidenceOut
	if out == "" {
		out = fmt.Sprintf("%s_evidence_%s.zip", siteKey, time.Now().Format("20060102_150405"))
	}

	added, err := export.ZipEvidence(out, site.Records, evidencePattern)
	if err != nil {
		return err
	}
	if added == 0 {
		os.Remove(out)
		if !cfg.Quiet {
			fmt.Println("no evidence to export")
		}
		return nil
	}
	if !cfg.Quiet {
		fmt.Printf("archived %d evidence files to %s\n", added, out)
	}
	return nil
}
