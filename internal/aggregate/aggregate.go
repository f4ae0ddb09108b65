// Package aggregate derives cross-site summaries by replaying the scoring
// engine over the registry. Nothing here mutates state.
package aggregate

import (
	"math"
	"sort"

	"github.com/dotcommander/greenseal/internal/registry"
	"github.com/dotcommander/greenseal/internal/scoring"
)

// OverviewRow is one line of the cross-site ranking.
type OverviewRow struct {
	SiteKey     string       `json:"site_key"`
	SiteName    string       `json:"site_name"`
	Locality    string       `json:"locality"`
	LatestMonth string       `json:"latest_month,omitempty"`
	Score       float64      `json:"score"`
	Tier        scoring.Tier `json:"tier"`
	HasData     bool         `json:"has_data"`
}

// AverageScore returns the mean score over every record of every site,
// rounded to one decimal. The second return is false when no records exist
// anywhere.
func AverageScore(reg *registry.Registry, w *scoring.Weights) (float64, bool) {
	var sum float64
	var n int
	for _, site := range reg.Sites() {
		for _, rec := range site.Records {
			sum += scoring.Score(rec, w)
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return math.Round(sum/float64(n)*10) / 10, true
}

// SiteOverview ranks all sites by the score of their latest record,
// descending. Sites without records sort last with the no-data tier.
func SiteOverview(reg *registry.Registry, w *scoring.Weights) []OverviewRow {
	sites := reg.Sites()
	rows := make([]OverviewRow, 0, len(sites))
	for _, site := range sites {
		row := OverviewRow{
			SiteKey:  site.Key,
			SiteName: site.Name,
			Locality: site.Locality,
			Tier:     scoring.TierNoData,
		}
		if n := len(site.Records); n > 0 {
			latest := site.Records[n-1]
			row.LatestMonth = latest.Month
			row.Score = scoring.Score(latest, w)
			row.Tier = scoring.TierFromScore(row.Score)
			row.HasData = true
		}
		rows = append(rows, row)
	}

	// Stable keeps the key ordering from Sites() among ties and no-data rows.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].HasData != rows[j].HasData {
			return rows[i].HasData
		}
		return rows[i].Score > rows[j].Score
	})
	return rows
}
