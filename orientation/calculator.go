package orientation

import (
	"fmt"
	"math"

	"github.com/austencloud/kinetics/core"
)

// oriRot keys the half-turn tables: start orientation × prop rotation.
type oriRot struct {
	ori core.Orientation
	rot core.RotationDirection
}

// oriHandpath keys the float table: start orientation × handpath direction.
type oriHandpath struct {
	ori core.Orientation
	hp  core.HandpathDirection
}

// floatTransitions maps (start orientation, handpath) to the end facing of
// a transitional float. Pairs not listed leave the orientation unchanged.
var floatTransitions = map[oriHandpath]core.Orientation{
	{core.OriIn, core.HandpathCW}:       core.OriClock,
	{core.OriIn, core.HandpathCCW}:      core.OriCounter,
	{core.OriOut, core.HandpathCW}:      core.OriCounter,
	{core.OriOut, core.HandpathCCW}:     core.OriClock,
	{core.OriClock, core.HandpathCW}:    core.OriOut,
	{core.OriClock, core.HandpathCCW}:   core.OriIn,
	{core.OriCounter, core.HandpathCW}:  core.OriIn,
	{core.OriCounter, core.HandpathCCW}: core.OriOut,
}

// Half-turn tables. Each motion family owns two 8-entry tables, selected
// by whether turns mod 2 equals 0.5 (covers 0.5, 2.5) or 1.5 (covers 1.5,
// 3.5). The values are domain convention: the {ANTI,DASH} tables are not
// derivable from the {PRO,STATIC} ones by any simple formula, so all four
// are written out verbatim rather than computed.
var (
	halfProStaticLow = map[oriRot]core.Orientation{
		{core.OriIn, core.Clockwise}:             core.OriClock,
		{core.OriIn, core.CounterClockwise}:      core.OriCounter,
		{core.OriOut, core.Clockwise}:            core.OriCounter,
		{core.OriOut, core.CounterClockwise}:     core.OriClock,
		{core.OriClock, core.Clockwise}:          core.OriOut,
		{core.OriClock, core.CounterClockwise}:   core.OriIn,
		{core.OriCounter, core.Clockwise}:        core.OriIn,
		{core.OriCounter, core.CounterClockwise}: core.OriOut,
	}
	halfProStaticHigh = map[oriRot]core.Orientation{
		{core.OriIn, core.Clockwise}:             core.OriCounter,
		{core.OriIn, core.CounterClockwise}:      core.OriClock,
		{core.OriOut, core.Clockwise}:            core.OriClock,
		{core.OriOut, core.CounterClockwise}:     core.OriCounter,
		{core.OriClock, core.Clockwise}:          core.OriIn,
		{core.OriClock, core.CounterClockwise}:   core.OriOut,
		{core.OriCounter, core.Clockwise}:        core.OriOut,
		{core.OriCounter, core.CounterClockwise}: core.OriIn,
	}
	halfAntiDashLow = map[oriRot]core.Orientation{
		{core.OriIn, core.Clockwise}:             core.OriCounter,
		{core.OriIn, core.CounterClockwise}:      core.OriClock,
		{core.OriOut, core.Clockwise}:            core.OriClock,
		{core.OriOut, core.CounterClockwise}:     core.OriCounter,
		{core.OriClock, core.Clockwise}:          core.OriIn,
		{core.OriClock, core.CounterClockwise}:   core.OriOut,
		{core.OriCounter, core.Clockwise}:        core.OriOut,
		{core.OriCounter, core.CounterClockwise}: core.OriIn,
	}
	halfAntiDashHigh = map[oriRot]core.Orientation{
		{core.OriIn, core.Clockwise}:             core.OriClock,
		{core.OriIn, core.CounterClockwise}:      core.OriCounter,
		{core.OriOut, core.Clockwise}:            core.OriCounter,
		{core.OriOut, core.CounterClockwise}:     core.OriClock,
		{core.OriClock, core.Clockwise}:          core.OriOut,
		{core.OriClock, core.CounterClockwise}:   core.OriIn,
		{core.OriCounter, core.Clockwise}:        core.OriIn,
		{core.OriCounter, core.CounterClockwise}: core.OriOut,
	}
)

// EndOrientation — end facing of a prop after one motion.
//
// Contract:
//   - FLOAT: table lookup on (StartOri, handpath(StartLoc, EndLoc));
//     pairs outside the table leave the orientation unchanged.
//   - Whole turns: PRO/STATIC keep the facing on even counts and switch
//     it on odd ones; ANTI/DASH apply the inverse parity.
//   - Half turns (0.5, 1.5, ...): fixed table per family, selected by the
//     turns mod 2 remainder.
//
// Errors: ErrNoOrientation — and only that — when no branch fires. The
// function is total over valid motions, so an error always signals a
// malformed motion record (a data/logic bug), never an expected outcome.
//
// Complexity: O(1) per call.
func EndOrientation(m core.MotionData) (core.Orientation, error) {
	if !m.StartOri.Valid() {
		return 0, fmt.Errorf("EndOrientation: start orientation %v: %w", m.StartOri, ErrNoOrientation)
	}

	if m.MotionType == core.MotionFloat {
		return floatEndOrientation(m), nil
	}

	if !m.Turns.Valid() || m.Turns.IsFloat() {
		return 0, fmt.Errorf("EndOrientation: turns %v for %v motion: %w", m.Turns, m.MotionType, ErrNoOrientation)
	}

	switch m.MotionType {
	case core.MotionPro, core.MotionStatic:
		if m.Turns.Whole() {
			return wholeTurnOrientation(m.StartOri, m.Turns, false), nil
		}
		return halfTurnOrientation(m, halfProStaticLow, halfProStaticHigh)
	case core.MotionAnti, core.MotionDash:
		if m.Turns.Whole() {
			return wholeTurnOrientation(m.StartOri, m.Turns, true), nil
		}
		return halfTurnOrientation(m, halfAntiDashLow, halfAntiDashHigh)
	}

	return 0, fmt.Errorf("EndOrientation: motion type %v: %w", m.MotionType, ErrNoOrientation)
}

// Apply returns a copy of m with EndOri derived. Recomputation is
// idempotent: EndOri is a pure function of the other fields.
func Apply(m core.MotionData) (core.MotionData, error) {
	ori, err := EndOrientation(m)
	if err != nil {
		return m, err
	}
	m.EndOri = ori
	return m, nil
}

// floatEndOrientation resolves the float table; unmatched handpath pairs
// (same or antipodal locations) keep the start orientation.
func floatEndOrientation(m core.MotionData) core.Orientation {
	hp, err := HandRotation(m.StartLoc, m.EndLoc)
	if err != nil {
		return m.StartOri
	}
	if ori, ok := floatTransitions[oriHandpath{m.StartOri, hp}]; ok {
		return ori
	}
	return m.StartOri
}

// wholeTurnOrientation applies the parity rule. invert selects the
// ANTI/DASH family, whose parity is the mirror of PRO/STATIC.
func wholeTurnOrientation(start core.Orientation, turns core.Turns, invert bool) core.Orientation {
	odd := int(turns)%2 == 1
	if odd != invert {
		return start.Switched()
	}
	return start
}

// halfTurnOrientation selects between the family's two tables by the
// turns mod 2 remainder and resolves the (start, rotation) entry.
func halfTurnOrientation(m core.MotionData, low, high map[oriRot]core.Orientation) (core.Orientation, error) {
	table := low
	if math.Mod(float64(m.Turns), 2) == 1.5 {
		table = high
	}
	if ori, ok := table[oriRot{m.StartOri, m.PropRotDir}]; ok {
		return ori, nil
	}
	// Reaching here means PropRotDir is NoRotation (or malformed) on a
	// half-turn motion, which the notation never produces.
	return 0, fmt.Errorf("EndOrientation: half turn %v with rotation %v: %w", m.Turns, m.PropRotDir, ErrNoOrientation)
}
