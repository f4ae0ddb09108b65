package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/greenseal/internal/aggregate"
	"github.com/dotcommander/greenseal/internal/alerts"
	"github.com/dotcommander/greenseal/internal/ledger"
	"github.com/dotcommander/greenseal/internal/scoring"
)

// ConsoleFormatter renders reports for terminal display
type ConsoleFormatter struct {
	w        io.Writer
	quiet    bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter
func NewConsoleFormatter(w io.Writer, quiet bool) *ConsoleFormatter {
	return &ConsoleFormatter{w: w, quiet: quiet, colorize: true}
}

func (f *ConsoleFormatter) tierStyle(tier scoring.Tier) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	switch tier {
	case scoring.TierGold:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd700"))
	case scoring.TierSilver:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#adb5bd"))
	case scoring.TierBronze:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#c08457"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7")) // gray
	}
}

// Overview prints the cross-site ranking and the global average.
func (f *ConsoleFormatter) Overview(rows []aggregate.OverviewRow, avg float64, hasAvg bool) {
	if f.quiet {
		return
	}
	for _, row := range rows {
		style := f.tierStyle(row.Tier)
		if !row.HasData {
			fmt.Fprintf(f.w, "  %-28s %-12s %8s  %s\n", row.SiteName, row.Locality, "-", style.Render(string(row.Tier)))
			continue
		}
		fmt.Fprintf(f.w, "  %-28s %-12s %8.1f  %s  (%s)\n",
			row.SiteName, row.Locality, row.Score, style.Render(string(row.Tier)), row.LatestMonth)
	}
	if hasAvg {
		fmt.Fprintf(f.w, "\n  average score: %.1f across all records\n", avg)
	} else {
		fmt.Fprintln(f.w, "\n  no records submitted yet")
	}
}

// Breakdown prints a scored record's per-category contribution.
func (f *ConsoleFormatter) Breakdown(siteName, month string, rep scoring.Report) {
	if f.quiet {
		return
	}
	style := f.tierStyle(rep.Tier)
	fmt.Fprintf(f.w, "%s · %s\n", siteName, month)
	fmt.Fprintf(f.w, "score %.1f → %s\n\n", rep.Score, style.Render(string(rep.Tier)))
	for _, c := range rep.Categories {
		fmt.Fprintf(f.w, "  %-8s weight %.2f  sub %.1f  %6.1f pts  %s\n",
			c.Category, c.Weight, c.SubScore, c.Points, c.Basis)
	}
}

// Ledger prints the certification history, insertion order.
func (f *ConsoleFormatter) Ledger(entries []ledger.Entry) {
	if f.quiet {
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(f.w, "no certifications issued yet")
		return
	}
	for _, e := range entries {
		style := f.tierStyle(e.Tier)
		fmt.Fprintf(f.w, "  %s  %-28s %6.1f  %-8s %s  by %s\n",
			e.ID, e.SiteName, e.Score, style.Render(string(e.Tier)),
			e.IssuedAt.Format("2006-01-02 15:04"), e.IssuedBy)
	}
}

// Alerts prints automatic findings for a record.
func (f *ConsoleFormatter) Alerts(findings []alerts.Alert) {
	if f.quiet || len(findings) == 0 {
		return
	}
	for _, a := range findings {
		var style lipgloss.Style
		prefix := "  ⚠ "
		if f.colorize {
			switch a.Severity {
			case alerts.SeverityError:
				style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
				prefix = "  ✘ "
			default:
				style = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
			}
		}
		fmt.Fprintf(f.w, "%s%s\n", prefix, style.Render(a.Message))
	}
}

// Bar renders a simple score bar for the certify view.
func (f *ConsoleFormatter) Bar(score float64, tier scoring.Tier) {
	if f.quiet {
		return
	}
	width := 40
	filled := int(score / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	fmt.Fprintf(f.w, "  %s %.1f\n", f.tierStyle(tier).Render(bar), score)
}
