// Package systems implements the per-tick vehicle update: stimulation from
// lights, kinematic integration and toroidal wrapping.
package systems

// Default tuning constants.
const (
	DefaultBodyRadius    = 20.0
	DefaultStimulusScale = 0.01
	DefaultMinimumSpeed  = 0.5

	// BaselineActivation is the value both activations are reset to after
	// each kinematic step.
	BaselineActivation = 0.0
)

// Params holds the tuning constants shared by every vehicle.
type Params struct {
	BodyRadius    float32 // sensor distance from the body centre
	StimulusScale float32 // intensity to activation factor
	MinimumSpeed  float32 // forward speed with no stimulation
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		BodyRadius:    DefaultBodyRadius,
		StimulusScale: DefaultStimulusScale,
		MinimumSpeed:  DefaultMinimumSpeed,
	}
}
