// Package placement: key types, sentinel errors, and the default-strategy
// contract for the placement subpackage of github.com/austencloud/kinetics.
package placement

import (
	"errors"

	"github.com/austencloud/kinetics/core"
)

// Sentinel errors for placement store loading.
var (
	// ErrDocumentInvalid indicates a persisted placement document that does
	// not satisfy the placement schema.
	ErrDocumentInvalid = errors.New("placement: invalid placement document")
)

// OverrideKey addresses one special-placement override. The flat composite
// key replaces the nested grid_mode → orientation_key → letter →
// turns_tuple → arrow_key maps of the persisted form, so "insert empty
// stub on miss" never happens: an absent key simply reads as no override.
type OverrideKey struct {
	GridMode       core.GridMode
	OrientationKey string
	Letter         core.Letter
	TurnsTuple     string
	ArrowKey       string
}

// Arrow identifies one rendered arrow of a pictograph: which actor it
// belongs to and the grid point it renders at (which drives quadrant
// selection).
type Arrow struct {
	Color core.Color
	Loc   core.Location
}

// DefaultStrategy supplies the base offset when no special placement
// override exists. Implementations are external collaborators keyed by
// motion type; MotionTypeDefaults is the built-in table-driven one.
type DefaultStrategy interface {
	BaseOffset(p core.PictographData, a Arrow) core.Offset
}

// MotionTypeDefaults is the table-driven DefaultStrategy: one base offset
// per motion type, scaled down for half turns (half-turn arrows sit closer
// to the grid point).
type MotionTypeDefaults struct{}

var defaultBaseOffsets = map[core.MotionType]core.Offset{
	core.MotionPro:    {X: 75, Y: -30},
	core.MotionAnti:   {X: 60, Y: -25},
	core.MotionStatic: {X: 0, Y: -40},
	core.MotionDash:   {X: 50, Y: 0},
	core.MotionFloat:  {X: 75, Y: -30}, // floats render like the shift they stand in for
}

// BaseOffset implements DefaultStrategy.
func (MotionTypeDefaults) BaseOffset(p core.PictographData, a Arrow) core.Offset {
	m := p.Motion(a.Color)
	off, ok := defaultBaseOffsets[m.MotionType]
	if !ok {
		return core.Offset{}
	}
	if m.Turns.Half() {
		off.X /= 2
		off.Y /= 2
	}
	return off
}
