package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/greenseal/internal/output"
	"github.com/dotcommander/greenseal/internal/scoring"
)

var recordsLimit int

var recordsCmd = &cobra.Command{
	Use:   "records <site-key>",
	Short: "Show a site's submission history, most recent first",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRecords(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

var recordsDeleteCmd = &cobra.Command{
	Use:   "delete <site-key> <record-id>",
	Short: "Delete a record by id",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRecordsDelete(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

var recordsOilCmd = &cobra.Command{
	Use:   "oil-delivered <site-key> <record-id>",
	Short: "Mark a record's used oil as delivered to an authorized handler",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRecordsOil(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	recordsCmd.Flags().IntVar(&recordsLimit, "limit", 12, "Maximum records to show (0 = all)")
	recordsCmd.AddCommand(recordsDeleteCmd)
	recordsCmd.AddCommand(recordsOilCmd)
	rootCmd.AddCommand(recordsCmd)
}

type recordRow struct {
	ID       string       `json:"id"`
	Month    string       `json:"month"`
	Score    float64      `json:"score"`
	Tier     scoring.Tier `json:"tier"`
	Energy   string       `json:"energy"`
	Water    string       `json:"water"`
	Recycle  string       `json:"recycle"`
	OilL     float64      `json:"oil_liters"`
	OilDone  bool         `json:"oil_delivered"`
	Evidence bool         `json:"has_evidence"`
}

func runRecords(siteKey string) error {
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

	recs, err := reg.History(siteKey, recordsLimit)
	if err != nil {
		return err
	}

	rows := make([]recordRow, 0, len(recs))
	for _, rec := range recs {
		score := scoring.Score(rec, weights)
		rows = append(rows, recordRow{
			ID:       rec.ID,
			Month:    rec.Month,
			Score:    score,
			Tier:     scoring.TierFromScore(score),
			Energy:   rec.Energy.String(),
			Water:    rec.Water.String(),
			Recycle:  rec.Recycle.String(),
			OilL:     rec.OilLiters,
			OilDone:  rec.OilDelivered,
			Evidence: rec.Evidence != "",
		})
	}

	if cfg.Format == "json" {
		return output.NewJSONFormatter(os.Stdout, cfg.Output).Format(rows)
	}
	if len(rows) == 0 {
		fmt.Println("no records yet for this site")
		return nil
	}
	for _, r := range rows {
		delivered := "pending"
		if r.OilDone {
			delivered = "delivered"
		}
		fmt.Printf("  %s  %s  %6.1f %-7s energy %-8s water %-8s recycle %-6s oil %.1fL %-9s evidence=%v\n",
			r.ID, r.Month, r.Score, r.Tier, r.Energy, r.Water, r.Recycle, r.OilL, delivered, r.Evidence)
	}
	return nil
}

func runRecordsDelete(siteKey, recordID string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := openRegistry(cfg)
	if err != nil {
		return err
	}
	if err := reg.Delete(siteKey, recordID); err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Printf("deleted record %s (no-op if absent)\n", recordID)
	}
	return nil
}

func runRecordsOil(siteKey, recordID string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := openRegistry(cfg)
	if err != nil {
		return err
	}
	if err := reg.UpdateOilDelivered(siteKey, recordID); err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Printf("marked oil delivered on record %s\n", recordID)
	}
	return nil
}
