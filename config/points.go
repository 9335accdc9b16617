// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/katalvlaran/tspanneal/cities"
	"github.com/katalvlaran/tspanneal/sa"
)

// Points returns the instance c describes: CitiesFile if set, else Fixture
// if set, else Cities random cities seeded with CitySeed.
func (c *Config) Points() ([]sa.Point, error) {
	switch {
	case c.CitiesFile != "":
		return cities.LoadFile(c.CitiesFile)
	case c.Fixture == FixtureSquare:
		return cities.UnitSquare(), nil
	case c.Fixture == Fixture16:
		return cities.Fixture16(), nil
	case c.Fixture != "":
		return nil, fmt.Errorf("fixture %q: %w", c.Fixture, ErrInvalidConfig)
	}

	if !(c.Extent > 0) {
		return nil, fmt.Errorf("extent %g must be > 0: %w", c.Extent, ErrInvalidConfig)
	}

	return cities.Random(c.Cities, cities.WithSeed(c.CitySeed), cities.WithExtent(c.Extent))
}
