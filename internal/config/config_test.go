package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prefrank/rank"
)

func floatPtr(v float64) *float64 { return &v }

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefrank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Nil(t, cfg.Ranking.Damping)
	assert.Equal(t, rank.DefaultEpsilon, cfg.Ranking.Epsilon)
	assert.Equal(t, rank.DefaultMaxIterations, cfg.Ranking.MaxIterations)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "ranking:\n  damping: 0.85\n  max_iterations: 50\nlog:\n  format: console\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Ranking.Damping)
	assert.Equal(t, 0.85, *cfg.Ranking.Damping)
	assert.Equal(t, 50, cfg.Ranking.MaxIterations)
	assert.Equal(t, rank.DefaultEpsilon, cfg.Ranking.Epsilon)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "ranking:\n  max_iterations: 50\n")
	t.Setenv("PREFRANK_RANKING_MAX_ITERATIONS", "7")
	t.Setenv("PREFRANK_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Ranking.MaxIterations)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "ranking:\n  epsilon: -1\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "ranking.max_iterations", envKey("PREFRANK_RANKING_MAX_ITERATIONS"))
	assert.Equal(t, "ranking.damping", envKey("PREFRANK_RANKING_DAMPING"))
	assert.Equal(t, "log.level", envKey("PREFRANK_LOG_LEVEL"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"damping below zero", func(c *Config) { c.Ranking.Damping = floatPtr(-0.1) }},
		{"damping above one", func(c *Config) { c.Ranking.Damping = floatPtr(1.5) }},
		{"zero epsilon", func(c *Config) { c.Ranking.Epsilon = 0 }},
		{"zero iterations", func(c *Config) { c.Ranking.MaxIterations = 0 }},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
	require.NoError(t, Default().Validate())
}

func TestRankOptions(t *testing.T) {
	eng, err := rank.New([]string{"A", "B"})
	require.NoError(t, err)
	require.NoError(t, eng.AddPreferences([]rank.Preference{{Target: "A", Source: "B", Value: 1}}))

	cfg := Default()
	assert.Len(t, cfg.RankOptions(), 2)
	res, err := eng.RankDetailed(cfg.RankOptions()...)
	require.NoError(t, err)
	assert.InDelta(t, eng.Damping(), res.Damping, 1e-12)

	cfg.Ranking.Damping = floatPtr(0.5)
	res, err = eng.RankDetailed(cfg.RankOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 0.5, res.Damping)

	cfg.Ranking.Damping = floatPtr(0)
	assert.Len(t, cfg.RankOptions(), 3)
	res, err = eng.RankDetailed(cfg.RankOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Damping)
	assert.InDelta(t, 0.5, res.Scores["A"], 1e-12)
	assert.InDelta(t, 0.5, res.Scores["B"], 1e-12)
}

// TestLoad_ZeroDampingIsAnOverride keeps d=0 distinct from "unset".
func TestLoad_ZeroDampingIsAnOverride(t *testing.T) {
	cfg, err := Load(writeFile(t, "ranking:\n  damping: 0\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Ranking.Damping)
	assert.Equal(t, 0.0, *cfg.Ranking.Damping)

	t.Setenv("PREFRANK_RANKING_DAMPING", "0.25")
	cfg, err = Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg.Ranking.Damping)
	assert.Equal(t, 0.25, *cfg.Ranking.Damping)
}

func TestLogging(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "warn"
	lc := cfg.Logging()
	assert.Equal(t, "warn", lc.Level)
	assert.Equal(t, "json", lc.Format)
	assert.NotNil(t, lc.Output)
}
