package letters_test

import (
	"strings"
	"testing"

	"github.com/austencloud/kinetics/core"
	"github.com/austencloud/kinetics/letters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDataset builds a small corpus by hand:
//
//	G — both PRO, same rotational way (blue s→w cw, red n→e cw)
//	H — both PRO, opposite declared way (both sides recorded ccw)
//	I — hybrid PRO/ANTI pair
func testDataset(t *testing.T) *letters.Dataset {
	t.Helper()
	ds := letters.NewDataset()
	add := func(l core.Letter, blue, red letters.ReferenceMotion) {
		t.Helper()
		require.NoError(t, ds.Add(l, letters.ReferenceTemplate{Blue: blue, Red: red}))
	}
	add(core.LetterG,
		letters.ReferenceMotion{MotionType: core.MotionPro, StartLoc: core.LocS, EndLoc: core.LocW, PropRotDir: core.Clockwise},
		letters.ReferenceMotion{MotionType: core.MotionPro, StartLoc: core.LocN, EndLoc: core.LocE, PropRotDir: core.Clockwise})
	add(core.LetterH,
		letters.ReferenceMotion{MotionType: core.MotionPro, StartLoc: core.LocS, EndLoc: core.LocW, PropRotDir: core.CounterClockwise},
		letters.ReferenceMotion{MotionType: core.MotionPro, StartLoc: core.LocN, EndLoc: core.LocE, PropRotDir: core.CounterClockwise})
	add(core.LetterI,
		letters.ReferenceMotion{MotionType: core.MotionPro, StartLoc: core.LocS, EndLoc: core.LocS, PropRotDir: core.Clockwise},
		letters.ReferenceMotion{MotionType: core.MotionAnti, StartLoc: core.LocN, EndLoc: core.LocN, PropRotDir: core.Clockwise})
	return ds
}

// TestClassify_Concrete matches a concrete PRO/PRO pair directly.
func TestClassify_Concrete(t *testing.T) {
	cl := letters.NewClassifier(testDataset(t), nil)
	p := core.PictographData{
		Blue: core.MotionData{MotionType: core.MotionPro, StartLoc: core.LocS, EndLoc: core.LocW, PropRotDir: core.Clockwise},
		Red:  core.MotionData{MotionType: core.MotionPro, StartLoc: core.LocN, EndLoc: core.LocE, PropRotDir: core.Clockwise},
	}
	letter, err := cl.Classify(p)
	require.NoError(t, err)
	assert.Equal(t, core.LetterG, letter)
}

// TestClassify_NonHybridShift resolves a float against its concrete
// partner: the same raw motions classify as G under SAME and H under
// OPPOSITE, through the CW↔CCW inversion of the resolved prefloat
// attributes.
func TestClassify_NonHybridShift(t *testing.T) {
	base := core.PictographData{
		Blue: core.MotionData{MotionType: core.MotionPro, StartLoc: core.LocS, EndLoc: core.LocW, PropRotDir: core.Clockwise},
		Red: core.MotionData{
			MotionType: core.MotionFloat,
			StartLoc:   core.LocN, EndLoc: core.LocE,
			Turns: core.TurnsFloat,
		},
	}

	t.Run("SameDirection", func(t *testing.T) {
		store := letters.NewMemoryPrefloatStore()
		cl := letters.NewClassifier(testDataset(t), store)

		p := base
		p.Direction = core.DirectionSame
		letter, err := cl.Classify(p)
		require.NoError(t, err)
		assert.Equal(t, core.LetterG, letter)

		// Write-through persisted the resolved attributes.
		attrs, ok := store.Prefloat(core.ColorRed)
		require.True(t, ok)
		assert.Equal(t, core.MotionPro, attrs.MotionType)
		assert.Equal(t, core.Clockwise, attrs.PropRotDir)
	})

	t.Run("OppositeDirection", func(t *testing.T) {
		store := letters.NewMemoryPrefloatStore()
		cl := letters.NewClassifier(testDataset(t), store)

		p := base
		p.Direction = core.DirectionOpposite
		letter, err := cl.Classify(p)
		require.NoError(t, err)
		assert.Equal(t, core.LetterH, letter)

		attrs, ok := store.Prefloat(core.ColorRed)
		require.True(t, ok)
		assert.Equal(t, core.CounterClockwise, attrs.PropRotDir)
	})
}

// TestClassify_NonHybridShift_OwnRotationWins keeps the float's own
// rotation when it has one instead of borrowing the shift's.
func TestClassify_NonHybridShift_OwnRotationWins(t *testing.T) {
	store := letters.NewMemoryPrefloatStore()
	cl := letters.NewClassifier(testDataset(t), store)

	p := core.PictographData{
		Blue: core.MotionData{MotionType: core.MotionPro, StartLoc: core.LocS, EndLoc: core.LocW, PropRotDir: core.Clockwise},
		Red: core.MotionData{
			MotionType: core.MotionFloat,
			StartLoc:   core.LocN, EndLoc: core.LocE,
			Turns:      core.TurnsFloat,
			PropRotDir: core.CounterClockwise,
		},
	}
	// ccw prefloat rotation matches no G template side; the pictograph
	// stays unlettered rather than borrowing cw from the shift.
	_, err := cl.Classify(p)
	assert.ErrorIs(t, err, letters.ErrNoMatch)

	attrs, ok := store.Prefloat(core.ColorRed)
	require.True(t, ok)
	assert.Equal(t, core.CounterClockwise, attrs.PropRotDir)
}

// TestClassify_DualFloat matches two transitional motions through their
// prefloat attributes.
func TestClassify_DualFloat(t *testing.T) {
	cl := letters.NewClassifier(testDataset(t), nil)
	p := core.PictographData{
		Blue: core.MotionData{
			MotionType: core.MotionFloat,
			StartLoc:   core.LocS, EndLoc: core.LocW,
			Turns:              core.TurnsFloat,
			PrefloatMotionType: core.MotionPro,
			PrefloatPropRotDir: core.Clockwise,
		},
		Red: core.MotionData{
			MotionType: core.MotionFloat,
			StartLoc:   core.LocN, EndLoc: core.LocE,
			Turns:              core.TurnsFloat,
			PrefloatMotionType: core.MotionPro,
			PrefloatPropRotDir: core.Clockwise,
		},
	}
	letter, err := cl.Classify(p)
	require.NoError(t, err)
	assert.Equal(t, core.LetterG, letter)

	t.Run("UnresolvedPrefloat", func(t *testing.T) {
		q := p
		q.Blue.PrefloatMotionType = core.MotionNone
		_, err = cl.Classify(q)
		assert.ErrorIs(t, err, letters.ErrNoMatch)
		assert.ErrorIs(t, err, letters.ErrPrefloatUnresolved)
	})
}

// TestClassify_Miss leaves unmatched shapes unlettered.
func TestClassify_Miss(t *testing.T) {
	cl := letters.NewClassifier(testDataset(t), nil)

	// Concrete pair not in the corpus.
	p := core.PictographData{
		Blue: core.MotionData{MotionType: core.MotionDash, StartLoc: core.LocS, EndLoc: core.LocN},
		Red:  core.MotionData{MotionType: core.MotionStatic, StartLoc: core.LocN, EndLoc: core.LocN},
	}
	letter, err := cl.Classify(p)
	assert.ErrorIs(t, err, letters.ErrNoMatch)
	assert.Equal(t, core.NoLetter, letter)

	// Float against a static partner: no strategy in the closed set.
	q := core.PictographData{
		Blue: core.MotionData{MotionType: core.MotionStatic, StartLoc: core.LocS, EndLoc: core.LocS},
		Red:  core.MotionData{MotionType: core.MotionFloat, StartLoc: core.LocN, EndLoc: core.LocE, Turns: core.TurnsFloat},
	}
	_, err = cl.Classify(q)
	assert.ErrorIs(t, err, letters.ErrNoMatch)
}

// TestClassify_Deterministic runs the same input twice against an
// unchanged corpus and expects identical outcomes, including the
// dataset-order tie-break between equal templates.
func TestClassify_Deterministic(t *testing.T) {
	ds := letters.NewDataset()
	tpl := letters.ReferenceTemplate{
		Blue: letters.ReferenceMotion{MotionType: core.MotionPro, StartLoc: core.LocS, EndLoc: core.LocW, PropRotDir: core.Clockwise},
		Red:  letters.ReferenceMotion{MotionType: core.MotionPro, StartLoc: core.LocN, EndLoc: core.LocE, PropRotDir: core.Clockwise},
	}
	// Two letters own the identical template; insertion order must win.
	require.NoError(t, ds.Add(core.LetterB, tpl))
	require.NoError(t, ds.Add(core.LetterA, tpl))
	cl := letters.NewClassifier(ds, nil)

	p := core.PictographData{
		Blue: core.MotionData{MotionType: core.MotionPro, StartLoc: core.LocS, EndLoc: core.LocW, PropRotDir: core.Clockwise},
		Red:  core.MotionData{MotionType: core.MotionPro, StartLoc: core.LocN, EndLoc: core.LocE, PropRotDir: core.Clockwise},
	}
	first, err := cl.Classify(p)
	require.NoError(t, err)
	second, err := cl.Classify(p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, core.LetterB, first, "insertion order is the tie-break")
}

// TestDataset_AddValidation rejects malformed templates.
func TestDataset_AddValidation(t *testing.T) {
	ds := letters.NewDataset()
	good := letters.ReferenceMotion{MotionType: core.MotionPro, StartLoc: core.LocN, EndLoc: core.LocE, PropRotDir: core.Clockwise}

	err := ds.Add(core.Letter("bogus"), letters.ReferenceTemplate{Blue: good, Red: good})
	assert.ErrorIs(t, err, letters.ErrDatasetInvalid)

	err = ds.Add(core.LetterA, letters.ReferenceTemplate{
		Blue: letters.ReferenceMotion{MotionType: core.MotionFloat, StartLoc: core.LocN, EndLoc: core.LocE},
		Red:  good,
	})
	assert.ErrorIs(t, err, letters.ErrDatasetInvalid, "templates never literally contain FLOAT")
}

// TestLoadDataset parses the YAML corpus form and preserves order.
func TestLoadDataset(t *testing.T) {
	const doc = `
letters:
  - letter: "G"
    templates:
      - blue: {motion: pro, start: s, end: w, rotation: cw}
        red:  {motion: pro, start: n, end: e, rotation: cw}
      - blue: {motion: pro, start: w, end: n, rotation: cw}
        red:  {motion: pro, start: e, end: s, rotation: cw}
  - letter: "α"
    templates:
      - blue: {motion: static, start: s, end: s}
        red:  {motion: static, start: n, end: n}
`
	ds, err := letters.LoadDataset(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []core.Letter{core.LetterG, core.LetterAlpha}, ds.Letters())
	assert.Equal(t, 3, ds.Len())
	assert.Len(t, ds.Templates(core.LetterG), 2)
	// Omitted rotation resolves to NoRotation.
	assert.Equal(t, core.NoRotation, ds.Templates(core.LetterAlpha)[0].Blue.PropRotDir)

	_, err = letters.LoadDataset(strings.NewReader("letters: []"))
	assert.ErrorIs(t, err, letters.ErrDatasetInvalid)

	_, err = letters.LoadDataset(strings.NewReader(`
letters:
  - letter: "G"
    templates:
      - blue: {motion: warp, start: s, end: w}
        red:  {motion: pro, start: n, end: e, rotation: cw}
`))
	assert.ErrorIs(t, err, core.ErrUnknownMotionType)
}

// TestLoadDatasetFile reads the corpus fixture from disk.
func TestLoadDatasetFile(t *testing.T) {
	ds, err := letters.LoadDatasetFile("testdata/reference.yaml")
	require.NoError(t, err)
	assert.Greater(t, ds.Len(), 0)
	for _, l := range ds.Letters() {
		assert.True(t, l.Valid(), "letter %q", l)
	}
}
