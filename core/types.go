// Package core: enumerated value types shared across the kinetics engine.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for textual parsing of core enums.
var (
	// ErrUnknownLocation indicates a textual location outside the 8-point grid.
	ErrUnknownLocation = errors.New("core: unknown location")
	// ErrUnknownOrientation indicates a textual orientation outside {in,out,clock,counter}.
	ErrUnknownOrientation = errors.New("core: unknown orientation")
	// ErrUnknownMotionType indicates a textual motion type outside {pro,anti,static,dash,float}.
	ErrUnknownMotionType = errors.New("core: unknown motion type")
	// ErrUnknownRotation indicates a textual rotation direction outside {cw,ccw,no_rot}.
	ErrUnknownRotation = errors.New("core: unknown rotation direction")
	// ErrUnknownGridMode indicates a textual grid mode outside {diamond,box}.
	ErrUnknownGridMode = errors.New("core: unknown grid mode")
)

// Location is one of the eight compass-style grid points, declared in ring
// order so that rotational arithmetic (handpaths, opposites) is index math.
type Location int

const (
	LocN Location = iota
	LocNE
	LocE
	LocSE
	LocS
	LocSW
	LocW
	LocNW

	// NumLocations is the size of the location ring.
	NumLocations = 8
)

var locationNames = [NumLocations]string{"n", "ne", "e", "se", "s", "sw", "w", "nw"}

// String renders the canonical lowercase form used by persisted datasets.
func (l Location) String() string {
	if l < 0 || l >= NumLocations {
		return fmt.Sprintf("location(%d)", int(l))
	}
	return locationNames[l]
}

// Valid reports whether l is one of the eight grid points.
func (l Location) Valid() bool { return l >= 0 && l < NumLocations }

// Opposite returns the antipodal grid point (N↔S, NE↔SW, ...).
func (l Location) Opposite() Location { return (l + NumLocations/2) % NumLocations }

// Cardinal reports whether l lies on the N/E/S/W axis set.
func (l Location) Cardinal() bool { return l%2 == 0 }

// Diagonal reports whether l lies on the NE/SE/SW/NW axis set.
func (l Location) Diagonal() bool { return l%2 == 1 }

// ParseLocation resolves the canonical textual form of a Location.
func ParseLocation(s string) (Location, error) {
	for i, name := range locationNames {
		if s == name {
			return Location(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLocation, s)
}

// Orientation is the 4-state facing of a held prop. IN and OUT are the
// radial states (pointing toward/away from grid center); CLOCK and COUNTER
// are the rotational states (tangent to the ring).
type Orientation int

const (
	OriIn Orientation = iota
	OriOut
	OriClock
	OriCounter
)

var orientationNames = [...]string{"in", "out", "clock", "counter"}

func (o Orientation) String() string {
	if o < OriIn || o > OriCounter {
		return fmt.Sprintf("orientation(%d)", int(o))
	}
	return orientationNames[o]
}

// Valid reports whether o is one of the four facing states.
func (o Orientation) Valid() bool { return o >= OriIn && o <= OriCounter }

// Radial reports whether o is IN or OUT.
func (o Orientation) Radial() bool { return o == OriIn || o == OriOut }

// Rotational reports whether o is CLOCK or COUNTER.
func (o Orientation) Rotational() bool { return o == OriClock || o == OriCounter }

// Switched returns the partner state under the IN↔OUT, CLOCK↔COUNTER
// involution. Applying Switched twice is the identity.
func (o Orientation) Switched() Orientation {
	switch o {
	case OriIn:
		return OriOut
	case OriOut:
		return OriIn
	case OriClock:
		return OriCounter
	case OriCounter:
		return OriClock
	}
	return o
}

// ParseOrientation resolves the canonical textual form of an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	for i, name := range orientationNames {
		if s == name {
			return Orientation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
}

// RotationDirection is the rotation sense of a prop during a motion.
// The zero value NoRotation doubles as "unset" for motions that do not
// rotate (statics, straight dashes).
type RotationDirection int

const (
	NoRotation RotationDirection = iota
	Clockwise
	CounterClockwise
)

var rotationNames = [...]string{"no_rot", "cw", "ccw"}

func (r RotationDirection) String() string {
	if r < NoRotation || r > CounterClockwise {
		return fmt.Sprintf("rotation(%d)", int(r))
	}
	return rotationNames[r]
}

// Reversed maps CW↔CCW and leaves NoRotation in place.
func (r RotationDirection) Reversed() RotationDirection {
	switch r {
	case Clockwise:
		return CounterClockwise
	case CounterClockwise:
		return Clockwise
	}
	return r
}

// ParseRotation resolves the canonical textual form of a RotationDirection.
func ParseRotation(s string) (RotationDirection, error) {
	for i, name := range rotationNames {
		if s == name {
			return RotationDirection(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRotation, s)
}

// HandpathDirection is the rotational sense of the shortest hand path
// between two grid points on the location ring.
type HandpathDirection int

const (
	HandpathCW HandpathDirection = iota
	HandpathCCW
)

func (h HandpathDirection) String() string {
	if h == HandpathCW {
		return "cw_handpath"
	}
	return "ccw_handpath"
}

// MotionType classifies one actor's motion. MotionNone is the unset zero
// value (used for absent prefloat attributes); FLOAT is the transitional
// type that always carries prefloat attributes recording what the motion
// "would have been".
type MotionType int

const (
	MotionNone MotionType = iota
	MotionPro
	MotionAnti
	MotionStatic
	MotionDash
	MotionFloat
)

var motionTypeNames = [...]string{"none", "pro", "anti", "static", "dash", "float"}

func (m MotionType) String() string {
	if m < MotionNone || m > MotionFloat {
		return fmt.Sprintf("motion(%d)", int(m))
	}
	return motionTypeNames[m]
}

// Shift reports whether m is one of the shift types (PRO, ANTI, FLOAT).
func (m MotionType) Shift() bool {
	return m == MotionPro || m == MotionAnti || m == MotionFloat
}

// Concrete reports whether m is a non-transitional type (not FLOAT, not unset).
func (m MotionType) Concrete() bool {
	return m == MotionPro || m == MotionAnti || m == MotionStatic || m == MotionDash
}

// ParseMotionType resolves the canonical textual form of a MotionType.
func ParseMotionType(s string) (MotionType, error) {
	for i, name := range motionTypeNames {
		if i > 0 && s == name {
			return MotionType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMotionType, s)
}

// GridMode selects which four grid points carry hands at rest: DIAMOND
// uses the cardinal points, BOX the diagonal ones.
type GridMode int

const (
	GridDiamond GridMode = iota
	GridBox
)

func (g GridMode) String() string {
	if g == GridDiamond {
		return "diamond"
	}
	return "box"
}

// ParseGridMode resolves the canonical textual form of a GridMode.
func ParseGridMode(s string) (GridMode, error) {
	switch s {
	case "diamond":
		return GridDiamond, nil
	case "box":
		return GridBox, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGridMode, s)
}

// Color identifies one of the two concurrently tracked actors.
type Color int

const (
	ColorBlue Color = iota
	ColorRed
)

func (c Color) String() string {
	if c == ColorBlue {
		return "blue"
	}
	return "red"
}

// Other returns the opposing actor.
func (c Color) Other() Color {
	if c == ColorBlue {
		return ColorRed
	}
	return ColorBlue
}

// Direction is the declared relation between a pictograph's two motions:
// whether they run the SAME rotational way or OPPOSITE ones. It drives the
// CW↔CCW inversion applied when matching float motions against reference
// templates.
type Direction int

const (
	DirectionSame Direction = iota
	DirectionOpposite
)

func (d Direction) String() string {
	if d == DirectionSame {
		return "same"
	}
	return "opposite"
}

// Invert applies d to a rotation sense: SAME is the identity, OPPOSITE
// maps CW↔CCW.
func (d Direction) Invert(r RotationDirection) RotationDirection {
	if d == DirectionOpposite {
		return r.Reversed()
	}
	return r
}

// Offset is a 2D displacement in rendering coordinates (pixels).
type Offset struct {
	X, Y float64
}

// Add returns the componentwise sum of two offsets.
func (o Offset) Add(p Offset) Offset { return Offset{X: o.X + p.X, Y: o.Y + p.Y} }
