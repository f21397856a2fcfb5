// Package kinetics is the symbolic computation engine behind a two-actor
// movement/prop notation: each "beat" (pictograph) pairs two independently
// tracked motions — red and blue — moving props between eight compass-style
// locations.
//
// 🚀 What does kinetics compute?
//
//	A deterministic, side-effect-light core that turns raw motion parameters
//	into notation semantics:
//	  • End orientations: finite-state transitions over the 4-state facing
//	    of a held prop (IN, OUT, CLOCK, COUNTER)
//	  • Handpaths: rotational direction of a hand moving between grid points
//	  • Letters: structural pattern matching of a motion pair against a
//	    curated reference corpus, with direction-aware inversion for
//	    transitional "float" motions
//	  • Placements: concrete 2D offsets for rendered arrows, combining
//	    per-letter override tables, default strategies, directional variant
//	    generation and quadrant selection
//	  • Separations: opposite-direction nudges that keep two overlapping
//	    rendered props apart
//
// ✨ Why this shape?
//
//   - Pure functions everywhere — the same inputs always give the same
//     outputs, so every stage is trivially testable
//   - Explicit collaborators — the reference dataset, override stores and
//     prefloat cache are injected, never global
//   - Read-mostly stores — override tables support concurrent reads with
//     reload-on-demand and independent snapshots
//
// Everything is organized under five subpackages:
//
//	core/        — shared value types: locations, orientations, motions,
//	               pictographs, the letter taxonomy
//	orientation/ — end-orientation and handpath calculators
//	letters/     — reference dataset + the letter classifier strategies
//	placement/   — special-placement stores and the arrow placement calculator
//	separation/  — overlap resolution for props sharing a grid point
//
// Data flows one direction: raw motions → orientation → letters →
// placement/separation → rendering (external, out of scope).
//
//	go get github.com/austencloud/kinetics
package kinetics
