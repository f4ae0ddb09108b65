// Package alerts derives the automatic warnings shown after a submission.
package alerts

import (
	"fmt"

	"github.com/dotcommander/greenseal/internal/metrics"
	"github.com/dotcommander/greenseal/internal/scoring"
)

// Severity levels mirror the output formatters.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Oil volume (liters) above which an undelivered batch is flagged.
const oilBacklogLiters = 20.0

// Score below which an improvement plan is recommended.
const lowScoreThreshold = 50.0

// Alert is one actionable finding on a record.
type Alert struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Evaluate inspects a record and its score and returns zero or more alerts.
func Evaluate(rec *metrics.Record, w *scoring.Weights) []Alert {
	var out []Alert
	if !rec.TempOK {
		out = append(out, Alert{
			Severity: SeverityError,
			Message:  "temperatures out of range, check refrigeration",
		})
	}
	if rec.OilLiters > oilBacklogLiters && !rec.OilDelivered {
		out = append(out, Alert{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("%.1f L of used oil not yet delivered to an authorized handler", rec.OilLiters),
		})
	}
	if score := scoring.Score(rec, w); score < lowScoreThreshold {
		out = append(out, Alert{
			Severity: SeverityError,
			Message:  fmt.Sprintf("low score %.1f, an improvement plan is recommended", score),
		})
	}
	return out
}
