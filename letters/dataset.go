package letters

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/austencloud/kinetics/core"
)

// Dataset is the read-only reference corpus: Letter → ordered template
// list. Iteration over letters follows insertion order, which makes the
// dataset order the deterministic tie-break during classification.
type Dataset struct {
	order     []core.Letter
	templates map[core.Letter][]ReferenceTemplate
}

// NewDataset returns an empty corpus.
func NewDataset() *Dataset {
	return &Dataset{templates: make(map[core.Letter][]ReferenceTemplate)}
}

// Add appends one template under letter, validating its shape. Templates
// keep the order they were added in.
func (d *Dataset) Add(letter core.Letter, tpl ReferenceTemplate) error {
	if !letter.Valid() {
		return fmt.Errorf("Dataset.Add: letter %q: %w", letter, ErrDatasetInvalid)
	}
	if err := validateSide(tpl.Blue); err != nil {
		return fmt.Errorf("Dataset.Add(%q): blue side: %w", letter, err)
	}
	if err := validateSide(tpl.Red); err != nil {
		return fmt.Errorf("Dataset.Add(%q): red side: %w", letter, err)
	}
	if _, ok := d.templates[letter]; !ok {
		d.order = append(d.order, letter)
	}
	d.templates[letter] = append(d.templates[letter], tpl)
	return nil
}

// Letters returns the letters of the corpus in insertion order. The slice
// is fresh; callers may not reach the internal ordering through it.
func (d *Dataset) Letters() []core.Letter {
	out := make([]core.Letter, len(d.order))
	copy(out, d.order)
	return out
}

// Templates returns the template list of letter, in corpus order. The
// returned slice must be treated as read-only.
func (d *Dataset) Templates(letter core.Letter) []ReferenceTemplate {
	return d.templates[letter]
}

// Len reports the number of templates across all letters.
func (d *Dataset) Len() int {
	n := 0
	for _, tpls := range d.templates {
		n += len(tpls)
	}
	return n
}

// validateSide rejects template sides the corpus rules forbid: FLOAT (the
// transitional type never appears literally), unset types, bad locations.
func validateSide(side ReferenceMotion) error {
	if !side.MotionType.Concrete() {
		return fmt.Errorf("motion type %v: %w", side.MotionType, ErrDatasetInvalid)
	}
	if !side.StartLoc.Valid() || !side.EndLoc.Valid() {
		return fmt.Errorf("locations %v→%v: %w", side.StartLoc, side.EndLoc, ErrDatasetInvalid)
	}
	return nil
}

// YAML document shape of a persisted reference corpus:
//
//	letters:
//	  - letter: "G"
//	    templates:
//	      - blue: {motion: pro, start: n, end: e, rotation: cw}
//	        red:  {motion: pro, start: s, end: w, rotation: cw}
type datasetDoc struct {
	Letters []letterDoc `yaml:"letters"`
}

type letterDoc struct {
	Letter    string        `yaml:"letter"`
	Templates []templateDoc `yaml:"templates"`
}

type templateDoc struct {
	Blue motionDoc `yaml:"blue"`
	Red  motionDoc `yaml:"red"`
}

type motionDoc struct {
	Motion   string `yaml:"motion"`
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	Rotation string `yaml:"rotation"`
}

// LoadDataset reads a YAML reference corpus from r, validates it, and
// returns the resulting Dataset. Letter and template order in the document
// is preserved.
func LoadDataset(r io.Reader) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("letters: read dataset: %w", err)
	}
	var doc datasetDoc
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("letters: parse dataset: %w", err)
	}
	if len(doc.Letters) == 0 {
		return nil, fmt.Errorf("letters: empty dataset: %w", ErrDatasetInvalid)
	}

	ds := NewDataset()
	for _, ld := range doc.Letters {
		for _, td := range ld.Templates {
			tpl, terr := td.toTemplate()
			if terr != nil {
				return nil, fmt.Errorf("letters: letter %q: %w", ld.Letter, terr)
			}
			if aerr := ds.Add(core.Letter(ld.Letter), tpl); aerr != nil {
				return nil, aerr
			}
		}
	}
	return ds, nil
}

// LoadDatasetFile reads a YAML reference corpus from disk.
func LoadDatasetFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("letters: open dataset: %w", err)
	}
	defer f.Close()
	return LoadDataset(f)
}

func (d templateDoc) toTemplate() (ReferenceTemplate, error) {
	blue, err := d.Blue.toMotion()
	if err != nil {
		return ReferenceTemplate{}, err
	}
	red, err := d.Red.toMotion()
	if err != nil {
		return ReferenceTemplate{}, err
	}
	return ReferenceTemplate{Blue: blue, Red: red}, nil
}

func (d motionDoc) toMotion() (ReferenceMotion, error) {
	mt, err := core.ParseMotionType(d.Motion)
	if err != nil {
		return ReferenceMotion{}, err
	}
	start, err := core.ParseLocation(d.Start)
	if err != nil {
		return ReferenceMotion{}, err
	}
	end, err := core.ParseLocation(d.End)
	if err != nil {
		return ReferenceMotion{}, err
	}
	rot := core.NoRotation
	if d.Rotation != "" {
		if rot, err = core.ParseRotation(d.Rotation); err != nil {
			return ReferenceMotion{}, err
		}
	}
	return ReferenceMotion{MotionType: mt, StartLoc: start, EndLoc: end, PropRotDir: rot}, nil
}
