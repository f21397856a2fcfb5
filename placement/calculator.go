package placement

import (
	"io"
	"log/slog"

	"github.com/austencloud/kinetics/core"
)

// Calculator resolves the final 2D adjustment of an arrow. All
// collaborators are injected: the override store, the default strategy
// consulted on override misses, and the logger that surfaces fallback
// conditions. For a fixed (pictograph, arrow, store snapshot) the result
// is a pure deterministic function.
type Calculator struct {
	store    *Store
	defaults DefaultStrategy
	logger   *slog.Logger
}

// NewCalculator wires a Calculator. defaults may be nil (falls back to
// MotionTypeDefaults); logger may be nil (fallback conditions are
// discarded).
func NewCalculator(store *Store, defaults DefaultStrategy, logger *slog.Logger) *Calculator {
	if defaults == nil {
		defaults = MotionTypeDefaults{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Calculator{store: store, defaults: defaults, logger: logger}
}

// Adjustment resolves the offset of arrow a within pictograph p.
//
// Resolution order:
//  1. unlettered pictograph → (0,0) unconditionally;
//  2. special-placement override under the composite key;
//  3. default-strategy base offset on override miss (logged);
//  4. directional variant per the arrow's quadrant, with unknown motion
//     types yielding zero variants (logged) and out-of-range quadrant
//     indices clamping to the last variant (logged).
//
// Every fallback has a defined result; Adjustment never fails.
func (c *Calculator) Adjustment(p core.PictographData, a Arrow) core.Offset {
	if p.Letter == core.NoLetter {
		return core.Offset{}
	}

	key := OverrideKey{
		GridMode:       p.GridMode,
		OrientationKey: OrientationKey(p),
		Letter:         p.Letter,
		TurnsTuple:     TurnsTuple(p),
		ArrowKey:       ArrowKey(p, a),
	}
	base, ok := c.store.Get(key)
	if !ok {
		base = c.defaults.BaseOffset(p, a)
		c.logger.Debug("placement: no special override, using default",
			"letter", string(p.Letter),
			"turns_tuple", key.TurnsTuple,
			"arrow_key", key.ArrowKey)
	}

	motion := p.Motion(a.Color)
	rule, known := ruleFor(motion)
	var variants [NumQuadrants]core.Offset
	if known {
		variants = rule.apply(base)
	} else {
		c.logger.Warn("placement: unknown motion type, zero variants",
			"motion_type", motion.MotionType.String(),
			"letter", string(p.Letter))
	}

	q := QuadrantIndex(p.GridMode, a.Loc)
	if q < 0 || q >= NumQuadrants {
		c.logger.Warn("placement: quadrant index out of range, clamping",
			"quadrant", q,
			"loc", a.Loc.String(),
			"grid_mode", p.GridMode.String())
		q = NumQuadrants - 1
	}
	return variants[q]
}
