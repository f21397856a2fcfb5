package letters

import "github.com/austencloud/kinetics/core"

// concreteStrategy classifies pictographs whose motions are both concrete
// (no FLOAT on either side). The match is a direct structural comparison:
// each motion must equal its color's template side on motion type,
// locations and rotation direction. Direction inversion only concerns
// transitional shapes; concrete pairs are stored literally in the corpus.
type concreteStrategy struct{}

func (concreteStrategy) appliesTo(p core.PictographData) bool {
	return p.Blue.MotionType.Concrete() && p.Red.MotionType.Concrete()
}

func (concreteStrategy) execute(p core.PictographData, cl *Classifier) (core.Letter, error) {
	for _, letter := range cl.dataset.order {
		for _, tpl := range cl.dataset.templates[letter] {
			if matchConcrete(p.Blue, tpl.Blue) && matchConcrete(p.Red, tpl.Red) {
				return letter, nil
			}
		}
	}
	return core.NoLetter, ErrNoMatch
}

func matchConcrete(m core.MotionData, ref ReferenceMotion) bool {
	return m.MotionType == ref.MotionType &&
		m.StartLoc == ref.StartLoc &&
		m.EndLoc == ref.EndLoc &&
		m.PropRotDir == ref.PropRotDir
}
