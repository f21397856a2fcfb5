package core

// Letter is one discrete notation symbol assigned to a pictograph by
// structural pattern matching. The empty string means "unlettered".
type Letter string

// NoLetter is the unlettered state of a pictograph.
const NoLetter Letter = ""

// The closed letter alphabet. Latin letters A–V cover the dual-shift
// pictographs; W–Z plus the Greek block cover shift/static combinations;
// the dash-suffixed forms are their dash-transformed variants.
const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
	LetterE Letter = "E"
	LetterF Letter = "F"
	LetterG Letter = "G"
	LetterH Letter = "H"
	LetterI Letter = "I"
	LetterJ Letter = "J"
	LetterK Letter = "K"
	LetterL Letter = "L"
	LetterM Letter = "M"
	LetterN Letter = "N"
	LetterO Letter = "O"
	LetterP Letter = "P"
	LetterQ Letter = "Q"
	LetterR Letter = "R"
	LetterS Letter = "S"
	LetterT Letter = "T"
	LetterU Letter = "U"
	LetterV Letter = "V"

	LetterW     Letter = "W"
	LetterX     Letter = "X"
	LetterY     Letter = "Y"
	LetterZ     Letter = "Z"
	LetterSigma Letter = "Σ"
	LetterDelta Letter = "Δ"
	LetterTheta Letter = "θ"
	LetterOmega Letter = "Ω"

	LetterWDash     Letter = "W-"
	LetterXDash     Letter = "X-"
	LetterYDash     Letter = "Y-"
	LetterZDash     Letter = "Z-"
	LetterSigmaDash Letter = "Σ-"
	LetterDeltaDash Letter = "Δ-"
	LetterThetaDash Letter = "θ-"
	LetterOmegaDash Letter = "Ω-"

	LetterPhi    Letter = "Φ"
	LetterPsi    Letter = "Ψ"
	LetterLambda Letter = "Λ"

	LetterPhiDash    Letter = "Φ-"
	LetterPsiDash    Letter = "Ψ-"
	LetterLambdaDash Letter = "Λ-"

	LetterAlpha Letter = "α"
	LetterBeta  Letter = "β"
	LetterGamma Letter = "Γ"
)

// LetterType is the permanent rendering family of a Letter.
type LetterType int

const (
	Type1 LetterType = iota + 1 // dual-shift
	Type2                       // shift
	Type3                       // cross-shift
	Type4                       // dash
	Type5                       // dual-dash
	Type6                       // static
)

var letterTypeNames = [...]string{"", "Type1", "Type2", "Type3", "Type4", "Type5", "Type6"}

func (t LetterType) String() string {
	if t < Type1 || t > Type6 {
		return "TypeUnknown"
	}
	return letterTypeNames[t]
}

// letterGroups lists the alphabet in canonical order, grouped by type.
// Dataset files and deterministic iteration both follow this order.
var letterGroups = []struct {
	typ     LetterType
	letters []Letter
}{
	{Type1, []Letter{
		LetterA, LetterB, LetterC, LetterD, LetterE, LetterF, LetterG, LetterH,
		LetterI, LetterJ, LetterK, LetterL, LetterM, LetterN, LetterO, LetterP,
		LetterQ, LetterR, LetterS, LetterT, LetterU, LetterV,
	}},
	{Type2, []Letter{
		LetterW, LetterX, LetterY, LetterZ,
		LetterSigma, LetterDelta, LetterTheta, LetterOmega,
	}},
	{Type3, []Letter{
		LetterWDash, LetterXDash, LetterYDash, LetterZDash,
		LetterSigmaDash, LetterDeltaDash, LetterThetaDash, LetterOmegaDash,
	}},
	{Type4, []Letter{LetterPhi, LetterPsi, LetterLambda}},
	{Type5, []Letter{LetterPhiDash, LetterPsiDash, LetterLambdaDash}},
	{Type6, []Letter{LetterAlpha, LetterBeta, LetterGamma}},
}

var letterTypes = func() map[Letter]LetterType {
	m := make(map[Letter]LetterType)
	for _, g := range letterGroups {
		for _, l := range g.letters {
			m[l] = g.typ
		}
	}
	return m
}()

// AllLetters returns the alphabet in canonical order. The result is a
// fresh slice; callers may reorder it freely.
func AllLetters() []Letter {
	out := make([]Letter, 0, len(letterTypes))
	for _, g := range letterGroups {
		out = append(out, g.letters...)
	}
	return out
}

// Valid reports whether l belongs to the closed alphabet.
func (l Letter) Valid() bool {
	_, ok := letterTypes[l]
	return ok
}

// Type returns the rendering family of l, or 0 for unknown letters.
func (l Letter) Type() LetterType {
	return letterTypes[l]
}
