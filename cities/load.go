// SPDX-License-Identifier: MIT

package cities

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspanneal/sa"
)

// document is the on-disk shape of a city list:
//
//	cities:
//	  - {x: 0, y: 0, id: A}
//	  - {x: 1, y: 0}        # id defaults to the 1-based position
//
// JSON with the same keys is accepted, being valid YAML.
type document struct {
	Cities []sa.Point `yaml:"cities"`
}

// tourDocument is what WriteTour emits.
type tourDocument struct {
	Cost   float64    `yaml:"cost"`
	Cities int        `yaml:"cities"`
	Order  []string   `yaml:"order"`
	Path   []sa.Point `yaml:"path"`
}

// Load parses a city list from r.
//
// Errors: parse errors wrapped with context; ErrEmptyFile when the list is
// empty.
func Load(r io.Reader) ([]sa.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read cities: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse cities: %w", err)
	}
	if len(doc.Cities) == 0 {
		return nil, ErrEmptyFile
	}
	for i := range doc.Cities {
		if doc.Cities[i].ID == "" {
			doc.Cities[i].ID = DefaultIDFn(i)
		}
	}

	return doc.Cities, nil
}

// LoadFile reads and parses the city list at path.
func LoadFile(path string) ([]sa.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cities: %w", err)
	}
	pts, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pts, nil
}

// WriteTour writes tour as a YAML document holding its cost, visiting order
// and closed path (first city repeated at the end) for an external plotter.
func WriteTour(w io.Writer, tour sa.Tour, cost float64) error {
	doc := tourDocument{
		Cost:   cost,
		Cities: len(tour),
		Order:  tour.IDs(),
		Path:   tour.Closed(),
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode tour: %w", err)
	}

	return enc.Close()
}
