// Command tune searches vehicle parameters with CMA-ES so that one wiring
// either approaches or avoids the configured lights.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/vehicles/config"
	"github.com/pthm-cable/vehicles/gene"
)

// EvalRecord is one row of tune_log.csv.
type EvalRecord struct {
	Eval          int     `csv:"eval"`
	Fitness       float64 `csv:"fitness"`
	MeanLightDist float64 `csv:"mean_light_dist"`
	StimulusScale float64 `csv:"stimulus_scale"`
	MinimumSpeed  float64 `csv:"minimum_speed"`
	BodyRadius    float64 `csv:"body_radius"`
}

// formatDuration formats a duration as HH:MM:SS or MM:SS for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	wiring := flag.String("wiring", "crossed", "Wiring of the tuned vehicle ("+strings.Join(gene.WiringNames(), ", ")+")")
	polarity := flag.String("polarity", "excitatory", "Polarity of the tuned vehicle ("+strings.Join(gene.PolarityNames(), ", ")+")")
	goalName := flag.String("goal", "approach", "approach or avoid the lights")
	maxTicks := flag.Int("max-ticks", 6000, "Ticks per simulation run")
	headings := flag.Int("headings", 4, "Starting headings per evaluation")
	maxEvals := flag.Int("max-evals", 200, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := run(*configPath, *wiring, *polarity, *goalName, *maxTicks, *headings, *maxEvals, *population, *outputDir); err != nil {
		slog.Error("tuning failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, wiringName, polarityName, goalName string, maxTicks, headings, maxEvals, population int, outputDir string) error {
	if outputDir == "" {
		return fmt.Errorf("-output is required")
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	base, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if len(base.Lights) == 0 {
		return fmt.Errorf("config has no lights to tune against")
	}

	var vehicle config.RosterConfig
	if err := vehicle.Wiring.UnmarshalText([]byte(wiringName)); err != nil {
		return err
	}
	if err := vehicle.Polarity.UnmarshalText([]byte(polarityName)); err != nil {
		return err
	}
	vehicle.Name = fmt.Sprintf("%s-%s", vehicle.Wiring, vehicle.Polarity)
	goal, err := ParseGoal(goalName)
	if err != nil {
		return err
	}

	params := NewParamVector(base)
	evaluator := NewFitnessEvaluator(params, base, vehicle, goal, int32(maxTicks), EvenHeadings(headings))

	dim := params.Dim()
	popSize := population
	if popSize == 0 {
		popSize = 4 + 3*dim/2
	}

	var records []EvalRecord
	bestFitness := failedFitness
	var bestParams []float64
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			clamped := params.Clamp(params.Denormalize(x))
			fitness := evaluator.Evaluate(clamped)

			if fitness < bestFitness {
				bestFitness = fitness
				bestParams = clamped
			}
			records = append(records, EvalRecord{
				Eval:          len(records) + 1,
				Fitness:       fitness,
				MeanLightDist: evaluator.LastMeanDist(),
				StimulusScale: clamped[0],
				MinimumSpeed:  clamped[1],
				BodyRadius:    clamped[2],
			})

			n := len(records)
			elapsed := time.Since(startTime)
			remaining := time.Duration(maxEvals-n) * (elapsed / time.Duration(n))
			fmt.Printf("Eval %d/%d: light_dist=%.1f (best fitness=%.1f) | elapsed: %s, ETA: %s\n",
				n, maxEvals, evaluator.LastMeanDist(), bestFitness,
				formatDuration(elapsed), formatDuration(remaining))
			return fitness
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: maxEvals,
		Concurrent:      0, // evaluations already run headings in parallel
	}
	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}

	fmt.Printf("Tuning %s to %s lights: %d parameters, population=%d, max_evals=%d, headings=%d, ticks=%d\n",
		vehicle.Name, goalName, dim, popSize, maxEvals, headings, maxTicks)

	result, err := optimize.Minimize(problem, params.Normalize(params.DefaultVector()), settings, method)
	if err != nil {
		slog.Warn("optimization ended", "error", err)
	}
	if bestParams == nil && result != nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}

	if err := writeLog(filepath.Join(outputDir, "tune_log.csv"), records); err != nil {
		return err
	}

	fmt.Printf("\nTuning complete after %d evaluations in %s\n", len(records), formatDuration(time.Since(startTime)))
	if bestParams == nil {
		return fmt.Errorf("no evaluation completed")
	}
	fmt.Printf("Best fitness: %.3f\n\nBest parameters:\n", bestFitness)
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.6f\n", spec.Path, bestParams[i])
	}

	bestCfg := *base
	params.ApplyToConfig(&bestCfg, bestParams)
	configOutPath := filepath.Join(outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		return fmt.Errorf("writing best config: %w", err)
	}
	fmt.Printf("\nBest config saved to: %s\n", configOutPath)
	return nil
}

func writeLog(path string, records []EvalRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating tune log: %w", err)
	}
	defer f.Close()
	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("writing tune log: %w", err)
	}
	return nil
}
