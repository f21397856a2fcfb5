// Package orientation resolves the end facing of a prop after a motion,
// and the rotational handpath between two grid points.
//
// 🚀 What is an end orientation?
//
//	A prop always occupies exactly one of four facing states: IN, OUT,
//	CLOCK, COUNTER. Every motion transitions that state deterministically:
//	  • whole turns follow a parity rule (PRO/STATIC keep the facing on
//	    even counts; ANTI/DASH invert that parity)
//	  • half turns resolve through fixed 8-entry tables keyed by
//	    (start orientation, prop rotation direction)
//	  • floats resolve through a fixed table keyed by
//	    (start orientation, handpath direction)
//
// The half-turn tables encode a domain convention, not a formula: the
// {PRO,STATIC} and {ANTI,DASH} families use distinct, asymmetric tables
// that are preserved verbatim here.
//
// ⚙️ Usage:
//
//	m.EndOri must never be set directly; derive it:
//
//	ori, err := orientation.EndOrientation(m)   // one motion
//	m2, err := orientation.Apply(m)             // copy with EndOri filled
//
// EndOrientation is total over valid motions — an error is a logic
// invariant violation (malformed enum or turn count), never an expected
// outcome, and the caller must abort the pictograph rather than default.
package orientation
