package letters

import (
	"fmt"

	"github.com/austencloud/kinetics/core"
)

// nonHybridShiftStrategy classifies pictographs pairing one transitional
// FLOAT with one concrete shift (PRO or ANTI) of the kind the float stands
// in for — "non-hybrid" because, once the float is resolved, both motions
// carry the same motion type.
//
// The strategy first resolves the float's prefloat attributes:
//
//   - prefloat motion type ← the shift's motion type
//   - prefloat rotation ← the float's own rotation if it has one, else the
//     shift's, then CW↔CCW inverted when the pictograph declares OPPOSITE
//
// and persists them through the classifier's PrefloatStore. This
// write-through is intentional and outlives the call: downstream stages
// read the resolved attributes later.
//
// Matching then identifies, per template, the float-reference side (the
// float motion's color — templates never literally contain FLOAT, so the
// sides are told apart by color) and the shift-reference side, and
// requires:
//
//   - float:  start/end locations, prefloat rotation and prefloat motion
//     type equal to the float-reference
//   - shift:  start/end locations and motion type equal to the
//     shift-reference, and rotation equal to the direction-inverted
//     shift-reference rotation
type nonHybridShiftStrategy struct{}

func (nonHybridShiftStrategy) appliesTo(p core.PictographData) bool {
	fc, ok := floatColor(p)
	if !ok {
		return false
	}
	other := p.Motion(fc.Other()).MotionType
	return other == core.MotionPro || other == core.MotionAnti
}

func (nonHybridShiftStrategy) execute(p core.PictographData, cl *Classifier) (core.Letter, error) {
	fc, _ := floatColor(p)
	float := p.Motion(fc)
	shift := p.Motion(fc.Other())

	// Resolve prefloat attributes from the concrete shift.
	float.PrefloatMotionType = shift.MotionType
	base := float.PropRotDir
	if base == core.NoRotation {
		base = shift.PropRotDir
	}
	float.PrefloatPropRotDir = p.Direction.Invert(base)

	// Intentional write-through: the resolved attributes persist past this
	// classification call.
	if err := cl.store.SetPrefloat(fc, PrefloatAttributes{
		MotionType: float.PrefloatMotionType,
		PropRotDir: float.PrefloatPropRotDir,
	}); err != nil {
		return core.NoLetter, fmt.Errorf("letters: prefloat write-through: %w", err)
	}

	for _, letter := range cl.dataset.order {
		for _, tpl := range cl.dataset.templates[letter] {
			floatRef := tpl.Side(fc)
			shiftRef := tpl.Side(fc.Other())

			if float.StartLoc == floatRef.StartLoc &&
				float.EndLoc == floatRef.EndLoc &&
				float.PrefloatPropRotDir == floatRef.PropRotDir &&
				float.PrefloatMotionType == floatRef.MotionType &&
				shift.StartLoc == shiftRef.StartLoc &&
				shift.EndLoc == shiftRef.EndLoc &&
				shift.MotionType == shiftRef.MotionType &&
				shift.PropRotDir == p.Direction.Invert(shiftRef.PropRotDir) {
				return letter, nil
			}
		}
	}
	return core.NoLetter, ErrNoMatch
}
