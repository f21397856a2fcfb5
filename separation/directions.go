package separation

import "github.com/austencloud/kinetics/core"

// tangentCW is the clockwise tangent of the location ring at each grid
// point: the way a clockwise-rotating prop keeps pushing when it arrives.
var tangentCW = map[core.Location]Direction{
	core.LocN:  DirRight,
	core.LocNE: DirDownRight,
	core.LocE:  DirDown,
	core.LocSE: DirDownLeft,
	core.LocS:  DirLeft,
	core.LocSW: DirUpLeft,
	core.LocW:  DirUp,
	core.LocNW: DirUpRight,
}

// outwardNormal points away from grid center at each grid point.
var outwardNormal = map[core.Location]Direction{
	core.LocN:  DirUp,
	core.LocNE: DirUpRight,
	core.LocE:  DirRight,
	core.LocSE: DirDownRight,
	core.LocS:  DirDown,
	core.LocSW: DirDownLeft,
	core.LocW:  DirLeft,
	core.LocNW: DirUpLeft,
}

// rotationalPush is the shift lookup: the push direction of a motion that
// carries a rotation sense, anchored at its end location. Floats without
// a rotation of their own fall back to their resolved prefloat rotation.
// DirNone when no rotation is available to anchor on.
func rotationalPush(m core.MotionData) Direction {
	rot := m.PropRotDir
	if rot == core.NoRotation && m.MotionType == core.MotionFloat {
		rot = m.PrefloatPropRotDir
	}
	switch rot {
	case core.Clockwise:
		return tangentCW[m.EndLoc]
	case core.CounterClockwise:
		return tangentCW[m.EndLoc].Opposite()
	}
	return DirNone
}

// staticPush is the non-shift lookup: anchored on the end orientation
// layer rather than a rotation sense, so it is total. Radial props push
// along the clockwise tangent, rotational props along the outward normal.
func staticPush(m core.MotionData) Direction {
	if m.EndOri.Radial() {
		return tangentCW[m.EndLoc]
	}
	return outwardNormal[m.EndLoc]
}

// push resolves a motion's direction preferring the rotation anchor and
// falling back to the orientation anchor, so it always resolves.
func push(m core.MotionData) Direction {
	if d := rotationalPush(m); d != DirNone {
		return d
	}
	return staticPush(m)
}
