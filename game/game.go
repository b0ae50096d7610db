// Package game owns the running simulation: the ECS world holding vehicles
// and lights, the tick loop, selection and telemetry wiring. It has no
// rendering or input code; those live in the renderer and ui packages.
package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/vehicles/components"
	"github.com/pthm-cable/vehicles/config"
	"github.com/pthm-cable/vehicles/systems"
	"github.com/pthm-cable/vehicles/telemetry"
)

// Options configures a new Game.
type Options struct {
	Config         *config.Config // nil = config.Cfg()
	LogStats       bool
	OutputDir      string
	StepsPerUpdate int // 0 = simulation.steps_per_update from config

	// StatsCallback, if set, receives every flushed telemetry window.
	StatsCallback func([]telemetry.WindowStats)
}

// VehicleInfo is a read-only copy of one vehicle and its identity.
type VehicleInfo struct {
	Entity   ecs.Entity
	Identity components.Identity
	Vehicle  components.Vehicle
}

// Game holds the complete game state.
type Game struct {
	cfg   *config.Config
	world *ecs.World

	vehicleMap    *ecs.Map2[components.Identity, components.Vehicle]
	vehicleFilter *ecs.Filter2[components.Identity, components.Vehicle]
	lightMap      *ecs.Map1[components.Light]
	lightFilter   *ecs.Filter1[components.Light]

	params systems.Params
	bounds systems.Bounds

	// Lights gathered once per tick and shared read-only by every vehicle
	lightScratch []components.Light

	parallel          *parallelState
	parallelThreshold int

	// State
	tick              int32
	paused            bool
	nextID            uint32
	stepsPerUpdate    int
	maxStepsPerUpdate int

	selectedEntity ecs.Entity
	hasSelection   bool

	// Vehicle positions for picking, rebuilt lazily after vehicles move
	grid      *systems.SpatialGrid
	gridDirty bool

	// Telemetry
	collector     *telemetry.Collector
	trajectory    telemetry.TrajectorySampler
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func([]telemetry.WindowStats)
}

// NewGame creates a game from the global configuration with default options.
func NewGame() (*Game, error) {
	return NewGameWithOptions(Options{})
}

// NewGameWithOptions creates a new game instance and spawns the configured
// lights and roster.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	world := ecs.NewWorld()

	g := &Game{
		cfg:   cfg,
		world: world,

		vehicleMap:    ecs.NewMap2[components.Identity, components.Vehicle](world),
		vehicleFilter: ecs.NewFilter2[components.Identity, components.Vehicle](world),
		lightMap:      ecs.NewMap1[components.Light](world),
		lightFilter:   ecs.NewFilter1[components.Light](world),

		params: ParamsFromConfig(cfg),
		bounds: BoundsFromConfig(cfg),
		grid:   systems.NewSpatialGrid(BoundsFromConfig(cfg), gridCellSize(cfg)),

		parallel:          newParallelState(),
		parallelThreshold: cfg.Simulation.ParallelThreshold,

		stepsPerUpdate:    cfg.Simulation.StepsPerUpdate,
		maxStepsPerUpdate: cfg.Simulation.MaxStepsPerUpdate,

		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		trajectory:    telemetry.NewTrajectorySampler(cfg.Telemetry.TrajectoryInterval),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
	}
	if opts.StepsPerUpdate > 0 {
		g.SetStepsPerUpdate(opts.StepsPerUpdate)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, err
	}
	g.outputManager = om

	g.spawnLights()
	g.spawnRoster()

	slog.Info("game created",
		"world_width", g.bounds.Width,
		"world_height", g.bounds.Height,
		"vehicles", g.VehicleCount(),
		"lights", len(g.lightScratch),
		"output_dir", om.Dir(),
	)
	return g, nil
}

// Update runs one or more simulation steps based on the speed setting.
// Nothing happens while paused.
func (g *Game) Update() {
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step()
	}
}

// Step runs exactly one tick, even when paused.
func (g *Game) Step() {
	g.simulationStep()
}

// RecordFrame notes a rendered frame for FPS reporting.
func (g *Game) RecordFrame() {
	g.perfCollector.RecordFrame()
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// TogglePause flips the paused state.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// StepsPerUpdate returns the number of ticks run per Update.
func (g *Game) StepsPerUpdate() int {
	return g.stepsPerUpdate
}

// SetStepsPerUpdate sets the ticks per Update, clamped to
// [1, max_steps_per_update].
func (g *Game) SetStepsPerUpdate(n int) {
	if n > g.maxStepsPerUpdate {
		n = g.maxStepsPerUpdate
	}
	if n < 1 {
		n = 1
	}
	g.stepsPerUpdate = n
}

// Faster runs one more tick per Update.
func (g *Game) Faster() {
	g.SetStepsPerUpdate(g.stepsPerUpdate + 1)
}

// Slower runs one fewer tick per Update.
func (g *Game) Slower() {
	g.SetStepsPerUpdate(g.stepsPerUpdate - 1)
}

// Bounds returns the world bounds.
func (g *Game) Bounds() systems.Bounds {
	return g.bounds
}

// Params returns the vehicle tuning in use.
func (g *Game) Params() systems.Params {
	return g.params
}

// Config returns the configuration the game was built from.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Vehicles returns a copy of every vehicle, ordered by ID.
func (g *Game) Vehicles() []VehicleInfo {
	var out []VehicleInfo
	query := g.vehicleFilter.Query()
	for query.Next() {
		id, v := query.Get()
		out = append(out, VehicleInfo{Entity: query.Entity(), Identity: *id, Vehicle: *v})
	}
	sortVehicleInfo(out)
	return out
}

// VehicleCount returns the number of vehicles.
func (g *Game) VehicleCount() int {
	n := 0
	query := g.vehicleFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Lights returns a copy of every light.
func (g *Game) Lights() []components.Light {
	g.gatherLights()
	out := make([]components.Light, len(g.lightScratch))
	copy(out, g.lightScratch)
	return out
}

// Unload stops workers and closes output files.
func (g *Game) Unload() {
	g.stopParallelWorkers()
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	g.outputManager = nil
}
