package core_test

import (
	"testing"

	"github.com/austencloud/kinetics/core"
	"github.com/stretchr/testify/assert"
)

// TestOrientation_SwitchedInvolution verifies that applying Switched twice
// is the identity for every facing state.
func TestOrientation_SwitchedInvolution(t *testing.T) {
	for _, o := range []core.Orientation{core.OriIn, core.OriOut, core.OriClock, core.OriCounter} {
		if got := o.Switched().Switched(); got != o {
			t.Errorf("Switched(Switched(%v)) = %v; want %v", o, got, o)
		}
		if o.Switched() == o {
			t.Errorf("Switched(%v) must differ from %v", o, o)
		}
	}
}

// TestOrientation_RadialRotationalPartition checks that the four states
// split exactly into the radial and rotational pairs.
func TestOrientation_RadialRotationalPartition(t *testing.T) {
	assert.True(t, core.OriIn.Radial())
	assert.True(t, core.OriOut.Radial())
	assert.True(t, core.OriClock.Rotational())
	assert.True(t, core.OriCounter.Rotational())
	assert.False(t, core.OriIn.Rotational())
	assert.False(t, core.OriClock.Radial())
}

// TestLocation_RingGeometry checks opposites and the cardinal/diagonal split.
func TestLocation_RingGeometry(t *testing.T) {
	cases := []struct{ loc, opp core.Location }{
		{core.LocN, core.LocS},
		{core.LocNE, core.LocSW},
		{core.LocE, core.LocW},
		{core.LocSE, core.LocNW},
	}
	for _, tc := range cases {
		if got := tc.loc.Opposite(); got != tc.opp {
			t.Errorf("Opposite(%v) = %v; want %v", tc.loc, got, tc.opp)
		}
		if got := tc.opp.Opposite(); got != tc.loc {
			t.Errorf("Opposite(%v) = %v; want %v", tc.opp, got, tc.loc)
		}
	}
	assert.True(t, core.LocN.Cardinal())
	assert.True(t, core.LocSW.Diagonal())
}

// TestTurns_Validity walks the full turns domain plus out-of-range values.
func TestTurns_Validity(t *testing.T) {
	for _, v := range []core.Turns{0, 0.5, 1, 1.5, 2, 2.5, 3, core.TurnsFloat} {
		assert.True(t, v.Valid(), "turns %v must be valid", v)
	}
	for _, v := range []core.Turns{-0.5, 3.5, 0.25, 1.1} {
		assert.False(t, v.Valid(), "turns %v must be invalid", v)
	}
	assert.True(t, core.Turns(1.5).Half())
	assert.True(t, core.Turns(2).Whole())
	assert.True(t, core.TurnsFloat.IsFloat())
	assert.False(t, core.TurnsFloat.Half())
}

// TestParse_RoundTrip covers the textual forms used by persisted datasets.
func TestParse_RoundTrip(t *testing.T) {
	loc, err := core.ParseLocation("sw")
	assert.NoError(t, err)
	assert.Equal(t, core.LocSW, loc)

	ori, err := core.ParseOrientation("counter")
	assert.NoError(t, err)
	assert.Equal(t, core.OriCounter, ori)

	mt, err := core.ParseMotionType("float")
	assert.NoError(t, err)
	assert.Equal(t, core.MotionFloat, mt)

	rot, err := core.ParseRotation("ccw")
	assert.NoError(t, err)
	assert.Equal(t, core.CounterClockwise, rot)

	_, err = core.ParseLocation("center")
	assert.ErrorIs(t, err, core.ErrUnknownLocation)
	_, err = core.ParseMotionType("none")
	assert.ErrorIs(t, err, core.ErrUnknownMotionType)
}

// TestDirection_Invert checks the OPPOSITE inversion and its SAME identity.
func TestDirection_Invert(t *testing.T) {
	assert.Equal(t, core.Clockwise, core.DirectionSame.Invert(core.Clockwise))
	assert.Equal(t, core.CounterClockwise, core.DirectionOpposite.Invert(core.Clockwise))
	assert.Equal(t, core.Clockwise, core.DirectionOpposite.Invert(core.CounterClockwise))
	assert.Equal(t, core.NoRotation, core.DirectionOpposite.Invert(core.NoRotation))
}

// TestLetters_Taxonomy spot-checks the closed alphabet and its families.
func TestLetters_Taxonomy(t *testing.T) {
	all := core.AllLetters()
	assert.Len(t, all, 47)

	seen := make(map[core.Letter]bool, len(all))
	for _, l := range all {
		assert.True(t, l.Valid(), "letter %q must be valid", l)
		assert.False(t, seen[l], "letter %q listed twice", l)
		seen[l] = true
	}

	assert.Equal(t, core.Type1, core.LetterG.Type())
	assert.Equal(t, core.Type2, core.LetterSigma.Type())
	assert.Equal(t, core.Type3, core.LetterThetaDash.Type())
	assert.Equal(t, core.Type4, core.LetterLambda.Type())
	assert.Equal(t, core.Type5, core.LetterPsiDash.Type())
	assert.Equal(t, core.Type6, core.LetterBeta.Type())
	assert.False(t, core.NoLetter.Valid())
	assert.Equal(t, core.LetterType(0), core.Letter("??").Type())
}

// TestPictograph_ValueSemantics confirms that WithMotion copies rather
// than mutating the receiver.
func TestPictograph_ValueSemantics(t *testing.T) {
	p := core.PictographData{
		Blue: core.MotionData{MotionType: core.MotionStatic, StartLoc: core.LocS, EndLoc: core.LocS},
		Red:  core.MotionData{MotionType: core.MotionPro, StartLoc: core.LocN, EndLoc: core.LocE},
	}
	q := p.WithMotion(core.ColorRed, core.MotionData{MotionType: core.MotionAnti})
	assert.Equal(t, core.MotionPro, p.Red.MotionType, "original must be untouched")
	assert.Equal(t, core.MotionAnti, q.Red.MotionType)
	assert.Equal(t, p.Blue, q.Motion(core.ColorBlue))
}
