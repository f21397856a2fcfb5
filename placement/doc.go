// Package placement computes the concrete 2D offset of a rendered arrow so
// that it follows notation conventions and stays clear of its neighbors.
//
// 🚀 How an adjustment is resolved
//
//	 1. An unlettered pictograph gets no adjustment at all: (0,0).
//	 2. The special-placement store — a flat table keyed by (grid mode,
//	    orientation key, letter, turns tuple, arrow key) — is consulted
//	    for a hand-authored override.
//	 3. Absent an override, an injected per-motion-type default strategy
//	    supplies the base offset.
//	 4. The base offset is expanded into four directional variants, one
//	    per grid quadrant, through a motion-type-specific
//	    reflection/rotation rule.
//	 5. The arrow's quadrant index selects the final variant;
//	    out-of-range indices clamp to the last variant.
//
//	For a fixed pictograph, arrow and store snapshot the result is a pure
//	deterministic function.
//
// ✨ Fallback discipline
//
//	A missing override, an unknown motion type during variant generation,
//	and an out-of-range quadrant index each have a defined default and are
//	surfaced only through the injected slog logger — recoverable by
//	construction, never escalated.
//
// 🗄 Stores
//
//	The override table is read-mostly: concurrent readers share an RWMutex,
//	Reload swaps the whole table, and Snapshot hands a caller an
//	independent copy for batch work. Persisted forms are JSON documents
//	(schema-validated on load) and a SQLite table used by the out-of-scope
//	authoring workflow.
package placement
