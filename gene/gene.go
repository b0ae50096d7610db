// Package gene defines how a vehicle's sensors are wired to its actuators.
package gene

import (
	"fmt"
	"strings"
)

// Side identifies the left or right half of a vehicle body.
type Side uint8

const (
	Left Side = iota
	Right
)

// Cross returns the opposite side.
func (s Side) Cross() Side {
	if s == Left {
		return Right
	}
	return Left
}

// String returns the display name for a Side.
func (s Side) String() string {
	return lookupName(SideNames(), int(s))
}

// SideNames returns the display names for all sides.
// The order matches the Side constants.
func SideNames() []string {
	return []string{"left", "right"}
}

// Polarity determines whether a sensor excites or inhibits its actuator.
type Polarity uint8

const (
	Excitatory Polarity = iota // closer to light = stronger
	Inhibitory                 // farther from light = stronger
)

// String returns the display name for a Polarity.
func (p Polarity) String() string {
	return lookupName(PolarityNames(), int(p))
}

// PolarityNames returns the display names for all polarities.
func PolarityNames() []string {
	return []string{"excitatory", "inhibitory"}
}

// Wiring selects whether a sensor drives the actuator on its own side or the opposite one.
type Wiring uint8

const (
	Straight Wiring = iota
	Crossed
)

// String returns the display name for a Wiring.
func (w Wiring) String() string {
	return lookupName(WiringNames(), int(w))
}

// WiringNames returns the display names for all wirings.
func WiringNames() []string {
	return []string{"straight", "crossed"}
}

// Gene is one sensor-to-actuator connection. The zero value is a straight
// excitatory gene on the left side.
type Gene struct {
	sensorSide   Side
	polarity     Polarity
	actuatorSide Side
}

// New creates a gene with the given wiring, sensor side and polarity.
func New(wiring Wiring, sensorSide Side, polarity Polarity) Gene {
	if wiring == Crossed {
		return NewCrossed(sensorSide, polarity)
	}
	return NewStraight(sensorSide, polarity)
}

// NewStraight creates a gene whose sensor drives the actuator on the same side.
func NewStraight(sensorSide Side, polarity Polarity) Gene {
	return Gene{sensorSide: sensorSide, polarity: polarity, actuatorSide: sensorSide}
}

// NewCrossed creates a gene whose sensor drives the actuator on the opposite side.
func NewCrossed(sensorSide Side, polarity Polarity) Gene {
	return Gene{sensorSide: sensorSide, polarity: polarity, actuatorSide: sensorSide.Cross()}
}

// Pair returns one left-sensor and one right-sensor gene sharing a wiring and polarity.
func Pair(wiring Wiring, polarity Polarity) []Gene {
	return []Gene{
		New(wiring, Left, polarity),
		New(wiring, Right, polarity),
	}
}

// SensorSide returns the side the sensor is mounted on.
func (g Gene) SensorSide() Side { return g.sensorSide }

// Polarity returns whether the sensor excites or inhibits.
func (g Gene) Polarity() Polarity { return g.polarity }

// ActuatorSide returns the side of the actuator this gene drives.
func (g Gene) ActuatorSide() Side { return g.actuatorSide }

// Crossed reports whether the sensor drives the opposite actuator.
func (g Gene) Crossed() bool {
	return g.sensorSide != g.actuatorSide
}

// Wiring returns Crossed or Straight depending on the actuator side.
func (g Gene) Wiring() Wiring {
	if g.Crossed() {
		return Crossed
	}
	return Straight
}

// String describes the gene, e.g. "left sensor -> right actuator (excitatory, crossed)".
func (g Gene) String() string {
	return fmt.Sprintf("%s sensor -> %s actuator (%s, %s)",
		g.sensorSide, g.actuatorSide, g.polarity, g.Wiring())
}

func lookupName(names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return "unknown"
}

func parseName(names []string, text []byte, kind string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range names {
		if s == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q (want one of %s)", kind, s, strings.Join(names, ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	i, err := parseName(SideNames(), text, "side")
	if err != nil {
		return err
	}
	*s = Side(i)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Polarity) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Polarity) UnmarshalText(text []byte) error {
	i, err := parseName(PolarityNames(), text, "polarity")
	if err != nil {
		return err
	}
	*p = Polarity(i)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (w Wiring) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Wiring) UnmarshalText(text []byte) error {
	i, err := parseName(WiringNames(), text, "wiring")
	if err != nil {
		return err
	}
	*w = Wiring(i)
	return nil
}
