// Package scene loads named vectors from HJSON scene files, the input
// format for the demo binary.
package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hjson/hjson-go"

	"github.com/catonis/Vectors/lib/vec"
)

// Entry is one named vector in a scene file. Tail may be omitted for a
// free vector.
type Entry struct {
	Name string    `json:"name"`
	Head []float64 `json:"head"`
	Tail []float64 `json:"tail"`
}

// Scene is the parsed form of a scene file.
type Scene struct {
	Vectors []Entry `json:"vectors"`
}

// Load reads and parses a scene file.
func Load(path string) (Scene, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}
	return Parse(bytes)
}

// Parse decodes HJSON scene data. HJSON has no struct decoder, so the
// data round-trips through JSON the same way the daemon configs this
// format came from do.
func Parse(data []byte) (Scene, error) {
	var mdat map[string]interface{}
	if err := hjson.Unmarshal(data, &mdat); err != nil {
		return Scene{}, fmt.Errorf("scene: %w", err)
	}
	bytes, err := json.Marshal(mdat)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: %w", err)
	}
	var s Scene
	if err := json.Unmarshal(bytes, &s); err != nil {
		return Scene{}, fmt.Errorf("scene: %w", err)
	}
	return s, s.validate()
}

func (s Scene) validate() error {
	seen := make(map[string]bool, len(s.Vectors))
	for i, e := range s.Vectors {
		if e.Name == "" {
			return fmt.Errorf("scene: vector %d has no name", i)
		}
		if seen[e.Name] {
			return fmt.Errorf("scene: duplicate vector name %q", e.Name)
		}
		seen[e.Name] = true
		if len(e.Head) == 0 {
			return fmt.Errorf("scene: vector %q has no head", e.Name)
		}
	}
	return nil
}

// Vector builds the vec.Vector for this entry. JSON numbers always arrive
// as float64; whole values narrow back to integers so the numeric kind of
// a scene vector matches what its literal components suggest.
func (e Entry) Vector() (vec.Vector, error) {
	return vec.NewAnchored(narrow(e.Head), narrow(e.Tail))
}

func narrow(vals []float64) []interface{} {
	if len(vals) == 0 {
		return nil
	}
	out := make([]interface{}, len(vals))
	for i, f := range vals {
		if f == float64(int64(f)) {
			out[i] = int64(f)
		} else {
			out[i] = f
		}
	}
	return out
}
