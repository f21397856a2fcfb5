package separation

import (
	"fmt"

	"github.com/austencloud/kinetics/core"
)

// Directions computes the separation directions for the two props of p,
// dispatching on the letter's family. The returned pair is (red, blue).
//
// Hard invariant: whenever both directions are defined, they are exact
// opposites. The J/K/L family may legitimately leave both unresolved
// (DirNone, DirNone) — that is a quiet skip, not an error.
//
// Errors:
//   - ErrNoSeparationRule      — the letter belongs to no family.
//   - ErrAmbiguousSeparation   — a required role is missing.
func Directions(p core.PictographData) (red, blue Direction, err error) {
	switch p.Letter {
	case core.LetterG, core.LetterH:
		return fromRed(p, rotationalPush)
	case core.LetterI:
		return fromPro(p)
	case core.LetterJ, core.LetterK, core.LetterL:
		return independent(p)
	case core.LetterY, core.LetterZ:
		return fromRole(p, isShift)
	case core.LetterYDash, core.LetterZDash:
		return fromRole(p, isDash)
	case core.LetterPsi, core.LetterPsiDash, core.LetterBeta:
		return fromRed(p, staticPush)
	default:
		return DirNone, DirNone, fmt.Errorf("Directions(%q): %w", p.Letter, ErrNoSeparationRule)
	}
}

// fromRed anchors on the red motion's lookup; blue opposes.
func fromRed(p core.PictographData, lookup func(core.MotionData) Direction) (Direction, Direction, error) {
	base := lookup(p.Red)
	if base == DirNone {
		return DirNone, DirNone, fmt.Errorf("Directions(%q): red motion: %w", p.Letter, ErrAmbiguousSeparation)
	}
	return base, base.Opposite(), nil
}

// fromPro locates the PRO-typed side; the ANTI side opposes it.
func fromPro(p core.PictographData) (Direction, Direction, error) {
	var proColor core.Color
	switch {
	case p.Red.MotionType == core.MotionPro:
		proColor = core.ColorRed
	case p.Blue.MotionType == core.MotionPro:
		proColor = core.ColorBlue
	default:
		return DirNone, DirNone, fmt.Errorf("Directions(%q): no PRO motion: %w", p.Letter, ErrAmbiguousSeparation)
	}
	base := rotationalPush(p.Motion(proColor))
	if base == DirNone {
		return DirNone, DirNone, fmt.Errorf("Directions(%q): PRO motion has no rotation: %w", p.Letter, ErrAmbiguousSeparation)
	}
	if proColor == core.ColorRed {
		return base, base.Opposite(), nil
	}
	return base.Opposite(), base, nil
}

// independent resolves each motion on its own; both nudges apply only
// when both resolve.
func independent(p core.PictographData) (Direction, Direction, error) {
	red := rotationalPush(p.Red)
	blue := rotationalPush(p.Blue)
	if red == DirNone || blue == DirNone {
		return DirNone, DirNone, nil
	}
	return red, blue, nil
}

func isShift(m core.MotionData) bool { return m.MotionType.Shift() }
func isDash(m core.MotionData) bool  { return m.MotionType == core.MotionDash }

// fromRole anchors on the motion matching role (the shift for Y/Z, the
// dash for the primed variants); the static side opposes it.
func fromRole(p core.PictographData, role func(core.MotionData) bool) (Direction, Direction, error) {
	var anchor core.Color
	switch {
	case role(p.Red) && p.Blue.MotionType == core.MotionStatic:
		anchor = core.ColorRed
	case role(p.Blue) && p.Red.MotionType == core.MotionStatic:
		anchor = core.ColorBlue
	default:
		return DirNone, DirNone, fmt.Errorf("Directions(%q): no anchor/static pairing: %w", p.Letter, ErrAmbiguousSeparation)
	}
	base := push(p.Motion(anchor))
	if anchor == core.ColorRed {
		return base, base.Opposite(), nil
	}
	return base.Opposite(), base, nil
}

// Separate computes the family directions of p and displaces both props
// accordingly — the one side-effecting entry point. Props whose direction
// stays unresolved are left in place.
func Separate(p core.PictographData, redProp, blueProp *Prop) error {
	red, blue, err := Directions(p)
	if err != nil {
		return err
	}
	if red != DirNone && redProp != nil {
		MoveProp(redProp, red)
	}
	if blue != DirNone && blueProp != nil {
		MoveProp(blueProp, blue)
	}
	return nil
}
