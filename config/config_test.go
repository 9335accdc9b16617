// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspanneal/sa"
)

func mapLookup(m map[string]string) Lookup {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	opts := cfg.Annealing()
	assert.Equal(t, sa.DefaultOptions().CoolingRate, opts.CoolingRate)
	assert.Equal(t, 684, sa.Iterations(opts))
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	src := `
initial_temperature: 10000
min_temperature: 0.01
cooling_rate: 0.98
fixture: fixture16
log:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, used, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, path, used)
	assert.Equal(t, 10000.0, cfg.InitialTemperature)
	assert.Equal(t, 0.01, cfg.MinTemperature)
	assert.Equal(t, Fixture16, cfg.Fixture)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level, "unset keys keep defaults")
	assert.Equal(t, 13, cfg.Cities)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromPath_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := LoadFromPath(filepath.Join(dir, "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("cooling_rate: [1,"), 0o644))
	_, _, err = LoadFromPath(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_UsesEnvPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cities: 5\n"), 0o644))

	cfg, used, err := Load(mapLookup(map[string]string{"TSPANNEAL_CONFIG": path}))
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 5, cfg.Cities)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Seed = 77
	cfg.TourOut = "best.yaml"
	require.NoError(t, cfg.Save(path))

	got, _, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestValidate_NamesFields(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		mention string
	}{
		{"cooling rate", func(c *Config) { c.CoolingRate = 1.5 }, "cooling_rate=1.5: lt=1"},
		{"min temp", func(c *Config) { c.MinTemperature = 0 }, "min_temperature=0: gt=0"},
		{"initial below min", func(c *Config) { c.InitialTemperature = 1e-4 }, "initial_temperature=0.0001: gtfield=MinTemperature"},
		{"cities", func(c *Config) { c.Cities = 0 }, "cities=0: gte=1"},
		{"fixture", func(c *Config) { c.Fixture = "hexagon" }, "fixture=hexagon: oneof"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level=loud: oneof"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.mention)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyEnv(mapLookup(map[string]string{
		"TSPANNEAL_INITIAL_TEMPERATURE": "500",
		"TSPANNEAL_COOLING_RATE":        "0.9",
		"TSPANNEAL_SEED":                "-3",
		"TSPANNEAL_CITIES":              "21",
		"TSPANNEAL_PROGRESS":            "true",
		"TSPANNEAL_FIXTURE":             "square",
		"TSPANNEAL_LOG_LEVEL":           "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, 500.0, cfg.InitialTemperature)
	assert.Equal(t, 0.9, cfg.CoolingRate)
	assert.Equal(t, int64(-3), cfg.Seed)
	assert.Equal(t, 21, cfg.Cities)
	assert.True(t, cfg.Progress)
	assert.Equal(t, FixtureSquare, cfg.Fixture)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, sa.DefaultMinTemperature, cfg.MinTemperature, "untouched")
}

func TestApplyEnv_ParseErrors(t *testing.T) {
	for _, key := range []string{"TSPANNEAL_COOLING_RATE", "TSPANNEAL_SEED", "TSPANNEAL_CITIES", "TSPANNEAL_PROGRESS"} {
		cfg := DefaultConfig()
		err := cfg.ApplyEnv(mapLookup(map[string]string{key: "not-a-number"}))
		require.Error(t, err, key)
		assert.Contains(t, err.Error(), key)
	}
	assert.NoError(t, DefaultConfig().ApplyEnv(nil))
}

func TestDotEnvAndChain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TSPANNEAL_SEED=9\nTSPANNEAL_CITIES=4\n"), 0o644))

	dot, err := DotEnv(path)
	require.NoError(t, err)

	env := mapLookup(map[string]string{"TSPANNEAL_SEED": "1"})
	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv(Chain(env, nil, dot)))

	assert.Equal(t, int64(1), cfg.Seed, "process env wins over .env")
	assert.Equal(t, 4, cfg.Cities)

	missing, err := DotEnv(filepath.Join(dir, "absent.env"))
	require.NoError(t, err)
	_, ok := missing("TSPANNEAL_SEED")
	assert.False(t, ok)
}

func TestPoints(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CitySeed = 5
	pts, err := cfg.Points()
	require.NoError(t, err)
	assert.Len(t, pts, 13)

	cfg.Fixture = FixtureSquare
	pts, err = cfg.Points()
	require.NoError(t, err)
	assert.Len(t, pts, 4)

	cfg.Fixture = Fixture16
	pts, err = cfg.Points()
	require.NoError(t, err)
	assert.Len(t, pts, 16)

	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cities:\n  - {x: 1, y: 1}\n  - {x: 2, y: 2}\n  - {x: 3, y: 1}\n"), 0o644))
	cfg.CitiesFile = path
	pts, err = cfg.Points()
	require.NoError(t, err)
	assert.Len(t, pts, 3, "file wins over fixture")

	cfg = DefaultConfig()
	cfg.Extent = 0
	_, err = cfg.Points()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	lg, err := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	require.NoError(t, err)
	lg.Info("hidden")
	lg.Warn("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"), "json handler")
	assert.Contains(t, out, `"msg":"shown"`)

	_, err = LogConfig{Level: "loud", Format: "text"}.NewLogger(&buf)
	assert.Error(t, err)
	_, err = LogConfig{Level: "info", Format: "xml"}.NewLogger(&buf)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
