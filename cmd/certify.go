package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/greenseal/internal/certpdf"
	"github.com/dotcommander/greenseal/internal/output"
)

var certifyPDF string

var certifyCmd = &cobra.Command{
	Use:   "certify <site-key>",
	Short: "Issue a certification from the site's latest record",
	Long: `Scores the site's latest submission, freezes the score and tier into a new
certification entry and appends it to the ledger. The entry never changes
afterwards, even if the source record is mutated or deleted. Any tier may be
certified, including Bronze.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCertify(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	certifyCmd.Flags().StringVar(&certifyPDF, "pdf", "", "Also render the certificate as a PDF at this path")
	rootCmd.AddCommand(certifyCmd)
}

func runCertify(siteKey string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := openRegistry(cfg)
	if err != nil {
		return err
	}
	led, err := openLedger(cfg)
	if err != nil {
		return err
	}

	site, err := reg.Site(siteKey)
	if err != nil {
		return err
	}
	rec, err := reg.Latest(siteKey)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("site %q has no records to certify", siteKey)
	}

	entry, err := led.Issue(site, rec, cfg.Issuer)
	if err != nil {
		return err
	}

	if cfg.Format == "json" {
		if err := output.NewJSONFormatter(os.Stdout, cfg.Output).Format(entry); err != nil {
			return err
		}
	} else if !cfg.Quiet {
		console := consoleFormatter(cfg)
		fmt.Printf("issued %s for %s · %s\n", entry.ID, entry.SiteName, rec.Month)
		console.Bar(entry.Score, entry.Tier)
		fmt.Printf("  tier %s, issued by %s at %s\n",
			entry.Tier, entry.IssuedBy, entry.IssuedAt.Format("2006-01-02 15:04"))
	}

	if certifyPDF != "" {
		if err := certpdf.Render(certifyPDF, entry); err != nil {
			return err
		}
		if !cfg.Quiet {
			fmt.Printf("wrote certificate PDF to %s\n", certifyPDF)
		}
	}

	return nil
}
