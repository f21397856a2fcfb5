package placement

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/austencloud/kinetics/core"
)

// placementSchema validates a persisted placement document before any
// value is trusted: one document per (grid mode, orientation key), holding
// letter → turns tuple → arrow key → {x,y}.
const placementSchema = `{
  "type": "object",
  "required": ["grid_mode", "orientation_key", "letters"],
  "additionalProperties": false,
  "properties": {
    "grid_mode": {"enum": ["diamond", "box"]},
    "orientation_key": {"type": "string", "minLength": 1},
    "letters": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": {
          "type": "object",
          "additionalProperties": {
            "type": "object",
            "required": ["x", "y"],
            "additionalProperties": false,
            "properties": {
              "x": {"type": "number"},
              "y": {"type": "number"}
            }
          }
        }
      }
    }
  }
}`

var compiledPlacementSchema = jsonschema.MustCompileString("placement.schema.json", placementSchema)

// placementDoc is the typed shape of a validated placement document.
type placementDoc struct {
	GridMode       string                                     `json:"grid_mode"`
	OrientationKey string                                     `json:"orientation_key"`
	Letters        map[string]map[string]map[string]offsetDoc `json:"letters"`
}

type offsetDoc struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LoadJSON reads one placement document from r, validates it against the
// placement schema, and merges its overrides into s. Documents for
// different (grid mode, orientation key) pairs accumulate in the same
// store; re-loading a document overwrites its previous entries.
func LoadJSON(s *Store, r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("placement: read document: %w", err)
	}

	var generic any
	if err = json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("placement: parse document: %w", err)
	}
	if err = compiledPlacementSchema.Validate(generic); err != nil {
		return fmt.Errorf("%w: %w", ErrDocumentInvalid, err)
	}

	var doc placementDoc
	if err = json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("placement: decode document: %w", err)
	}

	mode, err := core.ParseGridMode(doc.GridMode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDocumentInvalid, err)
	}

	for letterName, byTuple := range doc.Letters {
		letter := core.Letter(letterName)
		if !letter.Valid() {
			return fmt.Errorf("%w: unknown letter %q", ErrDocumentInvalid, letterName)
		}
		for tuple, byArrow := range byTuple {
			for arrowKey, off := range byArrow {
				s.Set(OverrideKey{
					GridMode:       mode,
					OrientationKey: doc.OrientationKey,
					Letter:         letter,
					TurnsTuple:     tuple,
					ArrowKey:       arrowKey,
				}, core.Offset{X: off.X, Y: off.Y})
			}
		}
	}
	return nil
}

// LoadJSONFile reads one placement document from disk into s.
func LoadJSONFile(s *Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("placement: open document: %w", err)
	}
	defer f.Close()
	return LoadJSON(s, f)
}
