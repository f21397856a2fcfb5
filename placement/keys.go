package placement

import (
	"fmt"
	"strconv"

	"github.com/austencloud/kinetics/core"
)

// Orientation-layer keys. A pictograph occupies one of four orientation
// layers depending on which side of the radial/rotational split each
// motion starts in; special placements are authored per layer.
const (
	KeyLayer1      = "from_layer1"            // both starts radial (IN/OUT)
	KeyLayer2      = "from_layer2"            // both starts rotational (CLOCK/COUNTER)
	KeyLayer3Blue1 = "from_layer3_blue1_red2" // blue radial, red rotational
	KeyLayer3Blue2 = "from_layer3_blue2_red1" // blue rotational, red radial
)

// OrientationKey encodes the orientation layer of p.
func OrientationKey(p core.PictographData) string {
	blueRadial := p.Blue.StartOri.Radial()
	redRadial := p.Red.StartOri.Radial()
	switch {
	case blueRadial && redRadial:
		return KeyLayer1
	case !blueRadial && !redRadial:
		return KeyLayer2
	case blueRadial:
		return KeyLayer3Blue1
	default:
		return KeyLayer3Blue2
	}
}

// TurnsTuple normalizes both motions' turn counts into the textual key
// special placements are authored under: "(blue, red)" with whole counts
// rendered bare, halves with one decimal, and floats as "fl".
func TurnsTuple(p core.PictographData) string {
	return fmt.Sprintf("(%s, %s)", formatTurns(p.Blue.Turns), formatTurns(p.Red.Turns))
}

func formatTurns(t core.Turns) string {
	if t.IsFloat() {
		return "fl"
	}
	if t.Whole() {
		return strconv.Itoa(int(t))
	}
	return strconv.FormatFloat(float64(t), 'f', 1, 64)
}

// ArrowKey identifies the arrow within its pictograph the way authored
// overrides do: by motion type when the two motions differ in type
// (hybrid pictographs), by color when they share one.
func ArrowKey(p core.PictographData, a Arrow) string {
	if p.Blue.MotionType == p.Red.MotionType {
		return a.Color.String()
	}
	return p.Motion(a.Color).MotionType.String()
}
