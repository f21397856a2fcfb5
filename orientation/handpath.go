package orientation

import (
	"fmt"

	"github.com/austencloud/kinetics/core"
)

// HandRotation — rotational handpath between two grid points.
//
// Description:
//
//	The eight locations form a ring (N, NE, E, SE, S, SW, W, NW). The
//	handpath of a shift is the rotational sense of the shortest arc from
//	start to end on that ring. Static motions never take a handpath, and
//	identical or antipodal pairs have no shortest side, so those pairs
//	are rejected with ErrHandpathUndefined.
//
// Complexity: O(1); a single modular subtraction.
func HandRotation(start, end core.Location) (core.HandpathDirection, error) {
	if !start.Valid() || !end.Valid() {
		return 0, fmt.Errorf("HandRotation(%v, %v): %w", start, end, ErrHandpathUndefined)
	}

	steps := (int(end) - int(start) + core.NumLocations) % core.NumLocations
	switch {
	case steps == 0 || steps == core.NumLocations/2:
		// Same point, or antipodal: both arcs tie.
		return 0, fmt.Errorf("HandRotation(%v, %v): %w", start, end, ErrHandpathUndefined)
	case steps < core.NumLocations/2:
		return core.HandpathCW, nil
	default:
		return core.HandpathCCW, nil
	}
}
