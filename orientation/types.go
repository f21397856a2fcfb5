// Package orientation: sentinel errors for the orientation subpackage of
// github.com/austencloud/kinetics.
package orientation

import "errors"

// Sentinel errors for orientation operations.
var (
	// ErrNoOrientation indicates no transition rule produced a result for a
	// motion that must be total. This is a logic-invariant violation: the
	// pictograph carries a malformed motion type, orientation or turn count,
	// and processing must abort rather than default.
	ErrNoOrientation = errors.New("orientation: no transition rule for motion")

	// ErrHandpathUndefined indicates the two grid points admit no rotational
	// handpath: they are identical or antipodal on the location ring.
	ErrHandpathUndefined = errors.New("orientation: handpath undefined for location pair")
)
