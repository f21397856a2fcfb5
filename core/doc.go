// Package core defines the shared value types of the kinetics engine:
// grid locations, prop orientations, rotation and handpath directions,
// motion and pictograph records, and the closed letter taxonomy.
//
// Everything in core is an immutable value: "updating" a motion or a
// pictograph always means constructing a new value for the next stage,
// never mutating in place. All enums are small integer types with
// String() and Parse helpers so that loaders can round-trip the textual
// form used by persisted datasets.
//
// core has no dependencies and performs no I/O; the calculators in
// orientation/, letters/, placement/ and separation/ build on it.
package core
