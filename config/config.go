// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/vehicles/gene"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Vehicle    VehicleConfig    `yaml:"vehicle"`
	Lights     []LightConfig    `yaml:"lights"`
	Roster     []RosterConfig   `yaml:"roster"`
	Simulation SimulationConfig `yaml:"simulation"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds simulation world dimensions.
// World can be larger than the screen; camera handles the viewport.
type WorldConfig struct {
	Width  int `yaml:"width"`  // World width in world units (0 = use screen width)
	Height int `yaml:"height"` // World height in world units (0 = use screen height)
}

// VehicleConfig holds the tuning shared by every vehicle.
type VehicleConfig struct {
	BodyRadius    float64 `yaml:"body_radius"`
	StimulusScale float64 `yaml:"stimulus_scale"` // intensity -> activation
	MinimumSpeed  float64 `yaml:"minimum_speed"`  // speed with no stimulation
}

// LightConfig places a light relative to the world size.
// X and Y are fractions of width and height, Radius a fraction of height.
type LightConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// RosterConfig describes one starting vehicle. Every listed sensor side gets
// one gene with the given wiring and polarity.
type RosterConfig struct {
	Name     string        `yaml:"name"`
	Wiring   gene.Wiring   `yaml:"wiring"`
	Polarity gene.Polarity `yaml:"polarity"`
	Sides    []gene.Side   `yaml:"sides"` // empty = left and right
	X        *float64      `yaml:"x,omitempty"`       // fraction of width, default centre
	Y        *float64      `yaml:"y,omitempty"`       // fraction of height, default centre
	Heading  float64       `yaml:"heading,omitempty"` // degrees
}

// SimulationConfig holds loop pacing parameters.
type SimulationConfig struct {
	StepsPerUpdate    int `yaml:"steps_per_update"`
	MaxStepsPerUpdate int `yaml:"max_steps_per_update"`
	ParallelThreshold int `yaml:"parallel_threshold"` // min vehicles before ticking in parallel
}

// TelemetryConfig holds telemetry parameters, all in ticks.
type TelemetryConfig struct {
	StatsWindow        int `yaml:"stats_window"`
	TrajectoryInterval int `yaml:"trajectory_interval"`
	PerfWindow         int `yaml:"perf_window"`
}

// LightGeometry is a light in absolute world units.
type LightGeometry struct {
	X, Y, Radius float32
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32         // Screen.Width as float32
	ScreenH32 float32         // Screen.Height as float32
	WorldW32  float32         // Effective world width as float32
	WorldH32  float32         // Effective world height as float32
	Lights    []LightGeometry // Lights scaled to the world
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := Parse(cfg, data); err != nil {
			return nil, err
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

// Parse overlays YAML data onto cfg. Only fields present in data are
// overwritten; lists such as lights and roster are replaced whole.
func Parse(cfg *Config, data []byte) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	}
	if c.World.Width < 0 || c.World.Height < 0 {
		return fmt.Errorf("world size %dx%d must not be negative", c.World.Width, c.World.Height)
	}
	for i, l := range c.Lights {
		if l.Radius < 0 {
			return fmt.Errorf("light %d: negative radius %v", i, l.Radius)
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// World dimensions default to screen size if not specified
	worldW := c.World.Width
	if worldW == 0 {
		worldW = c.Screen.Width
	}
	worldH := c.World.Height
	if worldH == 0 {
		worldH = c.Screen.Height
	}
	c.Derived.WorldW32 = float32(worldW)
	c.Derived.WorldH32 = float32(worldH)

	if c.Simulation.StepsPerUpdate < 1 {
		c.Simulation.StepsPerUpdate = 1
	}
	if c.Simulation.MaxStepsPerUpdate < c.Simulation.StepsPerUpdate {
		c.Simulation.MaxStepsPerUpdate = c.Simulation.StepsPerUpdate
	}

	c.Derived.Lights = make([]LightGeometry, len(c.Lights))
	for i, l := range c.Lights {
		c.Derived.Lights[i] = c.LightToWorld(l)
	}
}

// LightToWorld scales a relative light into world units.
func (c *Config) LightToWorld(l LightConfig) LightGeometry {
	return LightGeometry{
		X:      float32(l.X) * c.Derived.WorldW32,
		Y:      float32(l.Y) * c.Derived.WorldH32,
		Radius: float32(l.Radius) * c.Derived.WorldH32,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
