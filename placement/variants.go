package placement

import (
	"github.com/austencloud/kinetics/core"
)

// NumQuadrants is the number of directional placement variants.
const NumQuadrants = 4

// variantRule maps a base offset (x, y) to its four quadrant variants.
// Each entry is a pair of signed component selectors: {sx*vx, sy*vy} where
// vx/vy pick X or Y of the base offset. Encoded as small ints so the
// tables below read like the conventions they encode.
type variantRule [NumQuadrants][2][2]int // [quadrant][component]{sign, source(0=X,1=Y)}

var (
	// Shift arrows rotate their offset with the quadrant.
	shiftCW  = variantRule{{{+1, 0}, {+1, 1}}, {{-1, 1}, {+1, 0}}, {{-1, 0}, {-1, 1}}, {{+1, 1}, {-1, 0}}}
	shiftCCW = variantRule{{{-1, 1}, {-1, 0}}, {{+1, 0}, {-1, 1}}, {{+1, 1}, {+1, 0}}, {{-1, 0}, {+1, 1}}}
	// Static arrows mirror instead of rotating on the counter side.
	staticCCW = variantRule{{{-1, 0}, {+1, 1}}, {{+1, 1}, {+1, 0}}, {{+1, 0}, {-1, 1}}, {{-1, 1}, {-1, 0}}}
	// Dash arrows reflect across the quadrant diagonal.
	dashCW  = variantRule{{{+1, 0}, {-1, 1}}, {{+1, 1}, {+1, 0}}, {{-1, 0}, {+1, 1}}, {{-1, 1}, {-1, 0}}}
	dashCCW = variantRule{{{-1, 0}, {-1, 1}}, {{+1, 1}, {-1, 0}}, {{+1, 0}, {+1, 1}}, {{-1, 1}, {+1, 0}}}
)

// ruleFor selects the variant rule of a motion. The bool is false when the
// motion type is outside the closed set — the caller substitutes zero
// variants and records the condition.
func ruleFor(m core.MotionData) (variantRule, bool) {
	ccw := m.PropRotDir == core.CounterClockwise
	switch m.MotionType {
	case core.MotionPro, core.MotionFloat:
		if ccw {
			return shiftCCW, true
		}
		return shiftCW, true
	case core.MotionAnti:
		// Anti arrows use the shift rules with the senses swapped.
		if ccw {
			return shiftCW, true
		}
		return shiftCCW, true
	case core.MotionStatic:
		if ccw {
			return staticCCW, true
		}
		return shiftCW, true
	case core.MotionDash:
		if ccw {
			return dashCCW, true
		}
		return dashCW, true
	}
	return variantRule{}, false
}

func (r variantRule) apply(base core.Offset) [NumQuadrants]core.Offset {
	comp := [2]float64{base.X, base.Y}
	var out [NumQuadrants]core.Offset
	for q := 0; q < NumQuadrants; q++ {
		out[q] = core.Offset{
			X: float64(r[q][0][0]) * comp[r[q][0][1]],
			Y: float64(r[q][1][0]) * comp[r[q][1][1]],
		}
	}
	return out
}

// quadrant orderings: authored variants follow the ring order of the four
// grid points arrows occupy in each mode.
var (
	diamondQuadrants = map[core.Location]int{core.LocNE: 0, core.LocSE: 1, core.LocSW: 2, core.LocNW: 3}
	boxQuadrants     = map[core.Location]int{core.LocN: 0, core.LocE: 1, core.LocS: 2, core.LocW: 3}
)

// QuadrantIndex resolves which directional variant applies to an arrow at
// loc under mode. Locations outside the mode's four arrow points return
// -1; the calculator clamps that to the last variant.
func QuadrantIndex(mode core.GridMode, loc core.Location) int {
	if mode == core.GridBox {
		if q, ok := boxQuadrants[loc]; ok {
			return q
		}
		return -1
	}
	if q, ok := diamondQuadrants[loc]; ok {
		return q
	}
	return -1
}
