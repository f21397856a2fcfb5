package core

import "math"

// Turns is the rotation count of a motion: a non-negative half-integer
// (0, 0.5, 1, ... 3) or the special float marker. The marker is encoded as
// a negative sentinel so that the zero value stays a plain "no turns".
type Turns float64

// TurnsFloat marks a transitional float motion in place of a turn count.
const TurnsFloat Turns = -1

// MaxTurns is the largest turn count the notation uses.
const MaxTurns Turns = 3

// IsFloat reports whether t is the float marker rather than a count.
func (t Turns) IsFloat() bool { return t == TurnsFloat }

// Half reports whether t carries a fractional half turn (0.5, 1.5, ...).
func (t Turns) Half() bool {
	return !t.IsFloat() && math.Mod(float64(t), 1) == 0.5
}

// Whole reports whether t is an integral turn count (0, 1, 2, ...).
func (t Turns) Whole() bool {
	return !t.IsFloat() && math.Mod(float64(t), 1) == 0
}

// Valid reports whether t is the float marker or a half-integer in
// [0, MaxTurns].
func (t Turns) Valid() bool {
	if t.IsFloat() {
		return true
	}
	if t < 0 || t > MaxTurns {
		return false
	}
	return t.Half() || t.Whole()
}

// MotionData describes one actor's movement within a beat. EndOri is
// derived — always a pure function of the remaining fields — and
// recomputing it is idempotent.
//
// The Prefloat* fields are meaningful only when MotionType == MotionFloat:
// they record the concrete motion the float stands in for. For every other
// motion type they stay at their zero values (MotionNone, NoRotation).
type MotionData struct {
	MotionType MotionType

	StartLoc Location
	EndLoc   Location

	StartOri Orientation
	EndOri   Orientation

	Turns      Turns
	PropRotDir RotationDirection

	PrefloatMotionType MotionType
	PrefloatPropRotDir RotationDirection
}

// PictographData is one notated beat: a pair of concurrent motions plus
// the Letter classifying them. Letter is derived, never authoritative —
// identical raw motions always classify identically.
type PictographData struct {
	Letter Letter // empty until classified

	Blue MotionData
	Red  MotionData

	GridMode  GridMode
	Direction Direction
}

// Motion returns the motion tracked under color c.
func (p PictographData) Motion(c Color) MotionData {
	if c == ColorBlue {
		return p.Blue
	}
	return p.Red
}

// WithMotion returns a copy of p carrying m under color c.
func (p PictographData) WithMotion(c Color, m MotionData) PictographData {
	if c == ColorBlue {
		p.Blue = m
	} else {
		p.Red = m
	}
	return p
}

// HasFloat reports whether either motion is transitional.
func (p PictographData) HasFloat() bool {
	return p.Blue.MotionType == MotionFloat || p.Red.MotionType == MotionFloat
}
