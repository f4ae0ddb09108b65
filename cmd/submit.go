package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotcommander/greenseal/internal/alerts"
	"github.com/dotcommander/greenseal/internal/metrics"
	"github.com/dotcommander/greenseal/internal/scoring"
)

var submitFlags struct {
	month string

	energyKWh   float64
	energyLevel string

	waterLiters float64
	waterLevel  string

	wasteLevel string

	recyclePercent float64
	recycleLevel   string

	carbonKg float64

	oilLiters float64

	cartonKg  float64
	plasticKg float64
	organicKg float64

	hygieneChecked int
	hygieneTotal   int

	tempFreezer float64
	tempFridge  float64

	evidence string
}

var submitCmd = &cobra.Command{
	Use:   "submit <site-key>",
	Short: "Submit a monthly metric record for a site",
	Long: `Builds a metric record from the given measurements and appends it to the
site's history. Each category accepts either a numeric reading or a coarse
low/medium/high level; when both are given the numeric reading wins at scoring
time. Omitted categories degrade to the neutral default.

When no recycle percentage is given but recycled masses are, the fraction is
estimated from the mass breakdown. When no carbon figure is given but an
energy reading is, carbon is estimated from electricity use.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSubmit(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	f := submitCmd.Flags()
	f.StringVar(&submitFlags.month, "month", time.Now().Format("2006-01"), "Reported month (YYYY-MM)")
	f.Float64Var(&submitFlags.energyKWh, "energy-kwh", 0, "Electricity use (kWh)")
	f.StringVar(&submitFlags.energyLevel, "energy-level", "", "Electricity level (low|medium|high)")
	f.Float64Var(&submitFlags.waterLiters, "water-liters", 0, "Water use (liters)")
	f.StringVar(&submitFlags.waterLevel, "water-level", "", "Water level (low|medium|high)")
	f.StringVar(&submitFlags.wasteLevel, "waste-level", "", "Waste assessment (low|medium|high)")
	f.Float64Var(&submitFlags.recyclePercent, "recycle-percent", 0, "Recycled fraction in [0,1]")
	f.StringVar(&submitFlags.recycleLevel, "recycle-level", "", "Recycling level (low|medium|high)")
	f.Float64Var(&submitFlags.carbonKg, "carbon-kg", 0, "Carbon emissions (kg CO2e)")
	f.Float64Var(&submitFlags.oilLiters, "oil-liters", 0, "Used cooking oil (liters)")
	f.Float64Var(&submitFlags.cartonKg, "carton-kg", 0, "Recycled carton (kg)")
	f.Float64Var(&submitFlags.plasticKg, "plastic-kg", 0, "Recycled plastic (kg)")
	f.Float64Var(&submitFlags.organicKg, "organic-kg", 0, "Organic waste (kg)")
	f.IntVar(&submitFlags.hygieneChecked, "hygiene-checked", -1, "Hygiene checklist items passed")
	f.IntVar(&submitFlags.hygieneTotal, "hygiene-total", 5, "Hygiene checklist size")
	f.Float64Var(&submitFlags.tempFreezer, "temp-freezer", 0, "Freezer temperature (°C)")
	f.Float64Var(&submitFlags.tempFridge, "temp-fridge", 0, "Refrigerator temperature (°C)")
	f.StringVar(&submitFlags.evidence, "evidence", "", "Path to an evidence attachment")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, siteKey string) error {
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

	params, err := buildParams(cmd)
	if err != nil {
		return err
	}
	rec, err := metrics.New(*params)
	if err != nil {
		return err
	}
	if err := reg.Append(siteKey, rec); err != nil {
		return err
	}

	site, err := reg.Site(siteKey)
	if err != nil {
		return err
	}
	rep := scoring.Evaluate(rec, weights)
	console := consoleFormatter(cfg)
	if !cfg.Quiet {
		fmt.Printf("recorded %s for %s\n\n", rec.ID, site.Name)
	}
	console.Breakdown(site.Name, rec.Month, rep)
	console.Alerts(alerts.Evaluate(rec, weights))
	return nil
}

// buildParams maps flags onto record params, distinguishing "not given" from
// zero via cobra's Changed.
func buildParams(cmd *cobra.Command) (*metrics.Params, error) {
	f := cmd.Flags()
	p := metrics.Params{
		Month:     submitFlags.month,
		OilLiters: submitFlags.oilLiters,
		CartonKg:  submitFlags.cartonKg,
		PlasticKg: submitFlags.plasticKg,
		OrganicKg: submitFlags.organicKg,
		Evidence:  submitFlags.evidence,
	}

	var err error
	if p.Energy, err = measurementFromFlags(f, "energy-kwh", submitFlags.energyKWh, submitFlags.energyLevel); err != nil {
		return nil, err
	}
	if p.Water, err = measurementFromFlags(f, "water-liters", submitFlags.waterLiters, submitFlags.waterLevel); err != nil {
		return nil, err
	}
	waste, err := metrics.ParseLevel(submitFlags.wasteLevel)
	if err != nil {
		return nil, err
	}
	p.Waste = waste

	switch {
	case f.Changed("recycle-percent"):
		p.Recycle = metrics.Number(submitFlags.recyclePercent)
	case f.Changed("carton-kg") || f.Changed("plastic-kg") || f.Changed("organic-kg"):
		p.Recycle = metrics.Number(metrics.RecyclePercentFromMasses(submitFlags.cartonKg, submitFlags.plasticKg, submitFlags.organicKg))
	default:
		if p.Recycle, err = measurementFromFlags(f, "", 0, submitFlags.recycleLevel); err != nil {
			return nil, err
		}
	}

	switch {
	case f.Changed("carbon-kg"):
		v := submitFlags.carbonKg
		p.CarbonKg = &v
	case f.Changed("energy-kwh"):
		v := metrics.EstimateCarbonKg(submitFlags.energyKWh)
		p.CarbonKg = &v
	}

	if submitFlags.hygieneChecked >= 0 {
		v := metrics.HygieneFromChecklist(submitFlags.hygieneChecked, submitFlags.hygieneTotal)
		p.HygienePct = &v
	}

	if f.Changed("temp-freezer") {
		v := submitFlags.tempFreezer
		p.TempFreezer = &v
	}
	if f.Changed("temp-fridge") {
		v := submitFlags.tempFridge
		p.TempFridge = &v
	}
	return &p, nil
}

func measurementFromFlags(f interface{ Changed(string) bool }, numericFlag string, value float64, level string) (metrics.Measurement, error) {
	if numericFlag != "" && f.Changed(numericFlag) {
		return metrics.Number(value), nil
	}
	if level != "" {
		l, err := metrics.ParseLevel(level)
		if err != nil {
			return metrics.None(), err
		}
		return metrics.AtLevel(l), nil
	}
	return metrics.None(), nil
}
