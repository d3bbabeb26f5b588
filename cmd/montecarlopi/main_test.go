package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukaszgryglicki/montecarlopi/internal/montecarlopi"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { montecarlopi.Debug = false })
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEstimatePrintsSixDecimals(t *testing.T) {
	for _, args := range [][]string{
		{"estimate", "--points", "200000", "--threads", "4"},
		{"estimate", "-n", "200000", "--sequential"},
		{"estimate", "-n", "200000"},
	} {
		out, err := execute(t, args...)
		require.NoError(t, err, args)
		line := strings.TrimSpace(out)
		dot := strings.IndexByte(line, '.')
		require.Positive(t, dot, line)
		assert.Len(t, line[dot+1:], 6, line)
		v, err := strconv.ParseFloat(line, 64)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi, v, 0.05)
	}
}

func TestEstimateSpinnerWithoutTerminal(t *testing.T) {
	out, err := execute(t, "estimate", "-n", "100000", "-t", "2", "--spinner")
	require.NoError(t, err)
	v, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err, out)
	assert.InDelta(t, math.Pi, v, 0.05)
}

func TestIsTerminalRejectsNonFiles(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
	assert.False(t, isTerminal(nil))
}

func TestEstimateRejectsNonPositivePoints(t *testing.T) {
	for _, n := range []string{"0", "-1000"} {
		out, err := execute(t, "estimate", "--points", n)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--points must be positive")
		assert.Empty(t, out)
	}
}

func TestEstimateUsesEnvDefaults(t *testing.T) {
	t.Setenv("MONTECARLOPI_POINTS", "-5")
	_, err := execute(t, "estimate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got -5")
}

func TestEstimateBadEnv(t *testing.T) {
	t.Setenv("MONTECARLOPI_POINTS", "lots")
	_, err := execute(t, "estimate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestEstimateWritesMetricsAndProfile(t *testing.T) {
	dir := t.TempDir()
	metrics := filepath.Join(dir, "pi.prom")
	profile := filepath.Join(dir, "cpu.out")
	_, err := execute(t, "estimate", "-n", "50000", "-t", "2", "--metrics-file", metrics, "--profile", profile)
	require.NoError(t, err)

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `montecarlopi_points_sampled_total{mode="parallel"} 50000`)

	info, err := os.Stat(profile)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestEstimateDebugFlag(t *testing.T) {
	_, err := execute(t, "--debug", "estimate", "-n", "1000")
	require.NoError(t, err)
	assert.True(t, montecarlopi.Debug)
}

func TestPointsCommand(t *testing.T) {
	out, err := execute(t, "points", "-n", "1000")
	require.NoError(t, err)
	fields := strings.Fields(out)
	require.Len(t, fields, 2)
	inside, err := strconv.ParseInt(fields[0], 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, inside, int64(0))
	assert.LessOrEqual(t, inside, int64(1000))
	assert.Equal(t, "1000", fields[1])

	out, err = execute(t, "points", "-n", "0")
	require.NoError(t, err)
	assert.Equal(t, "0 0\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}
