package main

import (
	"fmt"
	"math"
	"sync"

	"github.com/pthm-cable/vehicles/config"
	"github.com/pthm-cable/vehicles/game"
	"github.com/pthm-cable/vehicles/telemetry"
)

// Goal selects what the tuned vehicle should do relative to the lights.
type Goal int

const (
	GoalApproach Goal = iota // stay close to a light
	GoalAvoid                // stay far from every light
)

// ParseGoal parses "approach" or "avoid".
func ParseGoal(s string) (Goal, error) {
	switch s {
	case "approach":
		return GoalApproach, nil
	case "avoid":
		return GoalAvoid, nil
	}
	return 0, fmt.Errorf("unknown goal %q (want approach or avoid)", s)
}

// Windows before this are ignored while the vehicle leaves its start point.
const warmupWindows = 1

// failedFitness is returned for runs that produce no usable windows.
const failedFitness = 1e9

// FitnessEvaluator runs headless simulations of a single vehicle and scores
// how well it meets the goal.
type FitnessEvaluator struct {
	params   *ParamVector
	base     *config.Config
	vehicle  config.RosterConfig
	goal     Goal
	maxTicks int32
	headings []float64

	mu           sync.Mutex
	lastMeanDist float64 // mean light distance from the most recent Evaluate
}

// NewFitnessEvaluator creates an evaluator that starts vehicle once per
// heading and runs each for maxTicks.
func NewFitnessEvaluator(params *ParamVector, base *config.Config, vehicle config.RosterConfig, goal Goal, maxTicks int32, headings []float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:   params,
		base:     base,
		vehicle:  vehicle,
		goal:     goal,
		maxTicks: maxTicks,
		headings: headings,
	}
}

// EvenHeadings returns n headings spread evenly around the circle.
func EvenHeadings(n int) []float64 {
	n = max(n, 1)
	out := make([]float64, n)
	for i := range out {
		out[i] = 360 * float64(i) / float64(n)
	}
	return out
}

// LastMeanDist returns the mean light distance from the most recent
// evaluation.
func (fe *FitnessEvaluator) LastMeanDist() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastMeanDist
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	dists := make([]float64, len(fe.headings))
	var wg sync.WaitGroup
	for i, h := range fe.headings {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dists[i] = meanLightDistance(fe.runSimulation(x, h))
		}()
	}
	wg.Wait()

	var total float64
	for _, d := range dists {
		if math.IsNaN(d) {
			return failedFitness
		}
		total += d
	}
	mean := total / float64(len(dists))

	fe.mu.Lock()
	fe.lastMeanDist = mean
	fe.mu.Unlock()

	if fe.goal == GoalAvoid {
		return -mean
	}
	return mean
}

// configFor builds the config for one run: the base config with the tuned
// parameters and a roster of just the vehicle under test.
func (fe *FitnessEvaluator) configFor(x []float64, heading float64) *config.Config {
	cfg := *fe.base
	v := fe.vehicle
	v.Heading = heading
	cfg.Roster = []config.RosterConfig{v}
	fe.params.ApplyToConfig(&cfg, x)
	return &cfg
}

// runSimulation executes a single headless run and returns its windows.
func (fe *FitnessEvaluator) runSimulation(x []float64, heading float64) []telemetry.WindowStats {
	var windows []telemetry.WindowStats
	g, err := game.NewGameWithOptions(game.Options{
		Config:        fe.configFor(x, heading),
		StatsCallback: func(s []telemetry.WindowStats) { windows = append(windows, s...) },
	})
	if err != nil {
		return nil
	}
	defer g.Unload()

	for g.Tick() < fe.maxTicks {
		g.Step()
	}
	return windows
}

// meanLightDistance averages the per-window mean light distance, weighted by
// samples, after the warmup windows. Returns NaN if nothing is left.
func meanLightDistance(windows []telemetry.WindowStats) float64 {
	if len(windows) <= warmupWindows {
		return math.NaN()
	}
	var sum float64
	var n int
	for _, w := range windows[warmupWindows:] {
		if w.Samples == 0 {
			continue
		}
		sum += w.LightDistMean * float64(w.Samples)
		n += w.Samples
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
