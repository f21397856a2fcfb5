package separation

import "github.com/austencloud/kinetics/core"

// SeparationDistance is how far one prop moves off the shared grid point,
// in rendering units. Both props move by it in opposite directions, so
// the visual gap is twice this.
const SeparationDistance = 25.0

var directionOffsets = map[Direction]core.Offset{
	DirUp:        {X: 0, Y: -SeparationDistance},
	DirUpRight:   {X: SeparationDistance, Y: -SeparationDistance},
	DirRight:     {X: SeparationDistance, Y: 0},
	DirDownRight: {X: SeparationDistance, Y: SeparationDistance},
	DirDown:      {X: 0, Y: SeparationDistance},
	DirDownLeft:  {X: -SeparationDistance, Y: SeparationDistance},
	DirLeft:      {X: -SeparationDistance, Y: 0},
	DirUpLeft:    {X: -SeparationDistance, Y: -SeparationDistance},
}

// MoveProp displaces prop's rendered position one separation step in d.
// This is the single side-effecting primitive of the package; every
// family rule funnels into it. DirNone moves nothing.
func MoveProp(prop *Prop, d Direction) {
	prop.Pos = prop.Pos.Add(directionOffsets[d])
}
