// Package separation: direction and prop types plus sentinel errors for
// the separation subpackage of github.com/austencloud/kinetics.
package separation

import (
	"errors"

	"github.com/austencloud/kinetics/core"
)

// Sentinel errors for separation operations.
var (
	// ErrNoSeparationRule indicates the pictograph's letter belongs to no
	// separation family; its props never overlap and need no nudge.
	ErrNoSeparationRule = errors.New("separation: letter has no separation rule")

	// ErrAmbiguousSeparation indicates a family rule could not resolve a
	// required role (no PRO side for an I, no static side for a Y/Z, no
	// rotation to anchor on). The caller skips separation rather than guess.
	ErrAmbiguousSeparation = errors.New("separation: cannot resolve separation direction")
)

// Direction is one of eight screen directions a prop can be nudged in.
// DirNone is the unresolved zero value.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirUpRight
	DirRight
	DirDownRight
	DirDown
	DirDownLeft
	DirLeft
	DirUpLeft
)

var directionNames = [...]string{
	"none", "up", "upright", "right", "downright",
	"down", "downleft", "left", "upleft",
}

func (d Direction) String() string {
	if d < DirNone || d > DirUpLeft {
		return "direction(?)"
	}
	return directionNames[d]
}

// Opposite returns the antipodal direction; DirNone stays unresolved.
func (d Direction) Opposite() Direction {
	if d == DirNone {
		return DirNone
	}
	// The eight real directions sit on a ring of 8 starting at DirUp.
	return (d-1+4)%8 + 1
}

// Prop is the rendered stand-in for one actor's prop: where it sits on
// the grid and its current drawing position. Position is the only mutable
// aspect, and only MoveProp touches it.
type Prop struct {
	Color core.Color
	Loc   core.Location
	Ori   core.Orientation
	Pos   core.Offset
}
