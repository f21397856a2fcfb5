// Package letters assigns the discrete notation symbol — the Letter — to
// a pictograph by structural pattern matching against a curated reference
// dataset.
//
// 🚀 How classification works
//
//	The dataset maps each Letter to an ordered list of canonical
//	motion-pair templates (grid symmetries give a letter several).
//	Classification walks a closed, ordered list of strategies, each
//	declaring which motion-type pair it handles:
//
//	  1. dual float     — both motions are transitional FLOATs
//	  2. non-hybrid shift — exactly one FLOAT, the other PRO or ANTI
//	  3. concrete       — neither motion is a FLOAT
//
//	The first applicable strategy decides the outcome. Templates never
//	literally contain FLOAT; float motions are matched through their
//	resolved prefloat attributes (the motion they "would have been"),
//	with CW↔CCW inversion applied when the pictograph declares its two
//	motions OPPOSITE.
//
// ✨ Guarantees
//
//   - Deterministic: dataset order is the tie-break, so the same inputs
//     against an unchanged dataset always produce the same Letter
//   - Recoverable misses: no applicable strategy, or no matching
//     template, yields ErrNoMatch and the pictograph stays unlettered
//   - Explicit write-through: the non-hybrid shift strategy persists the
//     prefloat attributes it resolves into an injected PrefloatStore —
//     an intentional, testable call, never hidden global mutation
//
// ⚙️ Usage:
//
//	ds, err := letters.LoadDatasetFile("reference.yaml")
//	cl := letters.NewClassifier(ds, letters.NewMemoryPrefloatStore())
//	letter, err := cl.Classify(pictograph)
//	if errors.Is(err, letters.ErrNoMatch) { /* leave unlettered */ }
package letters
