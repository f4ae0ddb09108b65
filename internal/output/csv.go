package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dotcommander/greenseal/internal/ledger"
)

// WriteLedgerCSV exports the certification history as CSV, one row per
// issuance, insertion order.
func WriteLedgerCSV(w io.Writer, entries []ledger.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "site_key", "site_name", "score", "tier", "issued_at", "issued_by"}); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, e := range entries {
		row := []string{
			e.ID,
			e.SiteKey,
			e.SiteName,
			strconv.FormatFloat(e.Score, 'f', 1, 64),
			string(e.Tier),
			e.IssuedAt.Format("2006-01-02 15:04:05"),
			e.IssuedBy,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("error writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
