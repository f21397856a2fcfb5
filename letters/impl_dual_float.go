package letters

import (
	"fmt"

	"github.com/austencloud/kinetics/core"
)

// dualFloatStrategy classifies pictographs whose motions are both
// transitional FLOATs. Neither side offers a concrete shift to resolve
// from, so both motions must already carry prefloat attributes (recorded
// when the preceding beats classified); a float without them is a
// recoverable miss, not a guess.
//
// Each float is matched against its color's template side through its
// prefloat attributes: locations, prefloat motion type and prefloat
// rotation must all equal the reference.
type dualFloatStrategy struct{}

func (dualFloatStrategy) appliesTo(p core.PictographData) bool {
	return p.Blue.MotionType == core.MotionFloat && p.Red.MotionType == core.MotionFloat
}

func (dualFloatStrategy) execute(p core.PictographData, cl *Classifier) (core.Letter, error) {
	if p.Blue.PrefloatMotionType == core.MotionNone || p.Red.PrefloatMotionType == core.MotionNone {
		return core.NoLetter, fmt.Errorf("%w: %w", ErrNoMatch, ErrPrefloatUnresolved)
	}

	for _, letter := range cl.dataset.order {
		for _, tpl := range cl.dataset.templates[letter] {
			if matchFloat(p.Blue, tpl.Blue) && matchFloat(p.Red, tpl.Red) {
				return letter, nil
			}
		}
	}
	return core.NoLetter, ErrNoMatch
}

func matchFloat(m core.MotionData, ref ReferenceMotion) bool {
	return m.StartLoc == ref.StartLoc &&
		m.EndLoc == ref.EndLoc &&
		m.PrefloatMotionType == ref.MotionType &&
		m.PrefloatPropRotDir == ref.PropRotDir
}
