package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prefrank/dataset"
	"github.com/katalvlaran/prefrank/internal/config"
	"github.com/katalvlaran/prefrank/rank"
)

const round = `{"items":["A","B"],"preferences":[{"target":"A","source":"B","value":1}]}`

func writeRound(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "round.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func runReport(t *testing.T, args ...string) *dataset.Report {
	t.Helper()
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), args, &stdout, &stderr), stderr.String())

	var rep dataset.Report
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &rep))

	return &rep
}

func TestRun_AdaptiveDamping(t *testing.T) {
	rep := runReport(t, "-in", writeRound(t, round))

	assert.Equal(t, 2, rep.Items)
	assert.InDelta(t, rank.DampingFor(1, 2), rep.Damping, 1e-12)
	assert.True(t, rep.Converged)
	require.Len(t, rep.Scores, 2)
	assert.Equal(t, "A", rep.Scores[0].Item)
	assert.Empty(t, rep.Variances)
}

func TestRun_FlagsOverrideConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "prefrank.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("ranking:\n  damping: 0.3\n"), 0o600))
	in := writeRound(t, round)

	rep := runReport(t, "-in", in, "-config", cfgPath, "-variances")
	assert.Equal(t, 0.3, rep.Damping)
	require.Len(t, rep.Variances, 1)
	assert.InDelta(t, 1.0/18, rep.Variances[0].Variance, 1e-12)

	rep = runReport(t, "-in", in, "-config", cfgPath, "-damping", "0.5", "-max-iterations", "1")
	assert.Equal(t, 0.5, rep.Damping)
	assert.Equal(t, 1, rep.Iterations)
	assert.False(t, rep.Converged)

	rep = runReport(t, "-in", in, "-config", cfgPath, "-damping", "0")
	assert.Equal(t, 0.0, rep.Damping)
	require.Len(t, rep.Scores, 2)
	assert.InDelta(t, 0.5, rep.Scores[0].Score, 1e-12)
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ctx := context.Background()

	require.ErrorIs(t, run(ctx, nil, &stdout, &stderr), errUsage)

	err := run(ctx, []string{"-in", writeRound(t, round), "-epsilon", "-1"}, &stdout, &stderr)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	bad := `{"items":["A","B"],"preferences":[{"target":"A","source":"A","value":1}]}`
	err = run(ctx, []string{"-in", writeRound(t, bad)}, &stdout, &stderr)
	require.ErrorIs(t, err, rank.ErrSelfPreference)

	err = run(ctx, []string{"-in", "round.csv"}, &stdout, &stderr)
	require.ErrorIs(t, err, dataset.ErrUnknownFormat)

	assert.Empty(t, stdout.String())
}
