package letters

import "github.com/austencloud/kinetics/core"

// strategy is one classification rule over a closed motion-type shape.
// appliesTo is a pure predicate over the two motion types; execute runs
// the structural match and may perform the documented prefloat
// write-through.
type strategy interface {
	appliesTo(p core.PictographData) bool
	execute(p core.PictographData, cl *Classifier) (core.Letter, error)
}

// Classifier resolves the Letter of a pictograph against an injected
// reference dataset. The strategy list is fixed at construction and tried
// in priority order; the first applicable strategy decides the outcome.
//
// Classification is deterministic for an unchanged dataset: strategies
// scan letters and templates in corpus order, and the first full match
// wins.
type Classifier struct {
	dataset    *Dataset
	store      PrefloatStore
	strategies []strategy
}

// noopPrefloatStore ignores write-throughs; used when no store is wired.
type noopPrefloatStore struct{}

func (noopPrefloatStore) SetPrefloat(core.Color, PrefloatAttributes) error { return nil }

// NewClassifier builds a Classifier over ds. store receives the prefloat
// attributes resolved by the shift strategies; pass nil to discard them.
func NewClassifier(ds *Dataset, store PrefloatStore) *Classifier {
	if store == nil {
		store = noopPrefloatStore{}
	}
	return &Classifier{
		dataset: ds,
		store:   store,
		// Priority order is part of the contract: transitional shapes are
		// tested before the concrete fallback.
		strategies: []strategy{
			dualFloatStrategy{},
			nonHybridShiftStrategy{},
			concreteStrategy{},
		},
	}
}

// Classify resolves the Letter of p, or ErrNoMatch when no strategy
// applies or no template matches. A miss is recoverable: the pictograph
// simply stays unlettered and the caller decides whether to retry, flag
// or skip.
func (cl *Classifier) Classify(p core.PictographData) (core.Letter, error) {
	for _, s := range cl.strategies {
		if s.appliesTo(p) {
			return s.execute(p, cl)
		}
	}
	return core.NoLetter, ErrNoMatch
}

// floatColor returns the color of the single float motion of p. The
// second return is false when p has no float or two.
func floatColor(p core.PictographData) (core.Color, bool) {
	blueFloat := p.Blue.MotionType == core.MotionFloat
	redFloat := p.Red.MotionType == core.MotionFloat
	switch {
	case blueFloat && !redFloat:
		return core.ColorBlue, true
	case redFloat && !blueFloat:
		return core.ColorRed, true
	default:
		return 0, false
	}
}
