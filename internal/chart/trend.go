// Package chart renders a site's score trend as a standalone HTML page using
// go-echarts.
package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/dotcommander/greenseal/internal/registry"
	"github.com/dotcommander/greenseal/internal/scoring"
)

// TrendHTML plots the score of every record of a site, in submission order.
func TrendHTML(w io.Writer, site *registry.Site, weights *scoring.Weights) error {
	if len(site.Records) == 0 {
		return fmt.Errorf("site %q has no records to plot", site.Key)
	}

	months := make([]string, 0, len(site.Records))
	points := make([]opts.LineData, 0, len(site.Records))
	for _, rec := range site.Records {
		months = append(months, rec.Month)
		points = append(points, opts.LineData{Value: scoring.Score(rec, weights)})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Score trend · " + site.Name, Width: "900px", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: "Score trend", Subtitle: site.Name}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 100, Name: "score"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "month"}),
	)
	line.SetXAxis(months)
	line.AddSeries("score", points,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false), ShowSymbol: opts.Bool(true)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: "#2d6a4f", Width: 2}),
	)
	return line.Render(w)
}
