// Package manifest reads train compositions from YAML documents:
//
//	name: night-express
//	cars: [locomotive, seating, sleeping, dining, freight]
//
// Unknown fields are rejected so typos such as "car:" surface early.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvtrain/car"
	"github.com/katalvlaran/lvtrain/train"
	"gopkg.in/yaml.v3"
)

// ErrEmptyManifest indicates a manifest without any car.
var ErrEmptyManifest = errors.New("manifest: no cars listed")

// Manifest is one train composition.
type Manifest struct {
	Name string      `yaml:"name,omitempty"`
	Cars []car.Class `yaml:"cars"`
}

// Decode parses a manifest from r.
func Decode(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyManifest
		}
		return nil, fmt.Errorf("manifest: parse: %w", err)
	}
	if len(m.Cars) == 0 {
		return nil, ErrEmptyManifest
	}

	return &m, nil
}

// Load reads and parses the manifest file at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	m, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Train builds a train holding the manifest's cars in order.
func (m *Manifest) Train() (*train.Train, error) {
	return train.FromClasses(m.Cars...)
}

// Encode writes m as YAML to w.
func (m *Manifest) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("manifest: encode: %w", err)
	}

	return enc.Close()
}
