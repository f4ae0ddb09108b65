package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/greenseal/internal/output"
)

var certsCSV string

var certsCmd = &cobra.Command{
	Use:   "certs",
	Short: "Show the certification ledger",
	Long: `Prints every certification ever issued, in issuance order. The ledger is an
append-only audit trail; entries are never updated or removed.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCerts(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	certsCmd.Flags().StringVar(&certsCSV, "csv", "", "Export the ledger as CSV to this path")
	rootCmd.AddCommand(certsCmd)
}

func runCerts() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	led, err := openLedger(cfg)
	if err != nil {
		return err
	}

	entries := led.History()

	if certsCSV != "" {
		f, err := os.Create(certsCSV)
		if err != nil {
			return fmt.Errorf("failed to create CSV file: %w", err)
		}
		defer f.Close()
		if err := output.WriteLedgerCSV(f, entries); err != nil {
			return err
		}
		if !cfg.Quiet {
			fmt.Printf("exported %d entries to %s\n", len(entries), certsCSV)
		}
		return nil
	}

	if cfg.Format == "json" {
		return output.NewJSONFormatter(os.Stdout, cfg.Output).Format(entries)
	}
	consoleFormatter(cfg).Ledger(entries)
	return nil
}
