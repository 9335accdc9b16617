// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
)

const envPrefix = "TSPANNEAL_"

// Lookup resolves an environment key. os.LookupEnv is one.
type Lookup func(key string) (string, bool)

// DotEnv reads a .env file into a Lookup without touching the process
// environment. A missing file yields an empty Lookup.
func DotEnv(path string) (Lookup, error) {
	vals, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return func(string) (string, bool) { return "", false }, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return func(key string) (string, bool) {
		v, ok := vals[key]
		return v, ok
	}, nil
}

// Chain consults lookups in order and returns the first hit. Nil entries
// are skipped.
func Chain(lookups ...Lookup) Lookup {
	return func(key string) (string, bool) {
		for _, l := range lookups {
			if l == nil {
				continue
			}
			if v, ok := l(key); ok {
				return v, true
			}
		}
		return "", false
	}
}

// ApplyEnv overrides c with TSPANNEAL_* values found through lookup.
//
// Keys: INITIAL_TEMPERATURE, MIN_TEMPERATURE, COOLING_RATE, SEED, CITIES,
// EXTENT, CITY_SEED, CITIES_FILE, FIXTURE, ALLOW_SINGLE_POINT, LOG_LEVEL,
// LOG_FORMAT, PROGRESS, TOUR_OUT.
func (c *Config) ApplyEnv(lookup Lookup) error {
	if lookup == nil {
		return nil
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"INITIAL_TEMPERATURE", &c.InitialTemperature},
		{"MIN_TEMPERATURE", &c.MinTemperature},
		{"COOLING_RATE", &c.CoolingRate},
		{"EXTENT", &c.Extent},
	}
	for _, f := range floats {
		if v, ok := lookup(envPrefix + f.key); ok {
			x, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, f.key, err)
			}
			*f.dst = x
		}
	}

	ints := []struct {
		key string
		dst *int64
	}{
		{"SEED", &c.Seed},
		{"CITY_SEED", &c.CitySeed},
	}
	for _, i := range ints {
		if v, ok := lookup(envPrefix + i.key); ok {
			x, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, i.key, err)
			}
			*i.dst = x
		}
	}

	if v, ok := lookup(envPrefix + "CITIES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sCITIES: %w", envPrefix, err)
		}
		c.Cities = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"ALLOW_SINGLE_POINT", &c.AllowSinglePoint},
		{"PROGRESS", &c.Progress},
	}
	for _, b := range bools {
		if v, ok := lookup(envPrefix + b.key); ok {
			x, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, b.key, err)
			}
			*b.dst = x
		}
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"CITIES_FILE", &c.CitiesFile},
		{"FIXTURE", &c.Fixture},
		{"LOG_LEVEL", &c.Log.Level},
		{"LOG_FORMAT", &c.Log.Format},
		{"TOUR_OUT", &c.TourOut},
	}
	for _, s := range strs {
		if v, ok := lookup(envPrefix + s.key); ok {
			*s.dst = v
		}
	}

	return nil
}
