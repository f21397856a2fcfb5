// Package separation resolves the overlap of two rendered props that end
// a beat on the same grid point, nudging them apart in opposite
// directions ("beta positioning").
//
// 🚀 How a separation is resolved
//
//	Each letter family has its own rule for which motion anchors the
//	nudge:
//	  • G/H       — red's push direction is the base; blue gets the opposite
//	  • I         — the PRO motion is the base; the ANTI side gets the opposite
//	  • J/K/L     — both motions resolve independently; applied only when
//	                both resolve
//	  • Y/Z       — the shift motion decides; the static side gets the opposite
//	  • Y−/Z−     — the dash motion decides; the static side gets the opposite
//	  • Ψ/Ψ−/β    — red's non-shift lookup decides; blue gets the opposite
//
//	Whenever both directions are defined they are exact opposites — a hard
//	invariant of every family.
//
// The direction computation is pure; the final displacement funnels into
// the one side-effecting primitive, MoveProp, which shifts a prop's
// rendered position by a fixed per-direction offset.
//
// A family rule that cannot resolve its required role (an I pictograph
// without a PRO motion, a Y shape without a static side) reports
// ErrAmbiguousSeparation; the caller skips separation for that pictograph
// rather than guessing.
package separation
