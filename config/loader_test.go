package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
scenario:
  name: sao_paulo
  startRealTime: "2025-01-27T12:30:45.123Z"
  duration: 43200
  timeUnit: seconds
  timeStep: 1
  startTick: 0
limits:
  maxNodesPerFile: 500
  maxLinksPerFile: 400
  maxTripsPerFile: 300
output:
  dir: out
  basePath: /app/hyperbolic-time-chamber/simulations/input/sao_paulo
  gzip: true
  pretty: false
`))
	require.NoError(t, err)

	assert.Equal(t, "sao_paulo", cfg.Scenario.Name)
	assert.Equal(t, 43200, cfg.Scenario.Duration)
	assert.Equal(t, 500, cfg.Limits.MaxNodesPerFile)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.True(t, cfg.Output.Gzip)
	require.NotNil(t, cfg.Output.Pretty)
	assert.False(t, *cfg.Output.Pretty)
}

func TestLoadPartial(t *testing.T) {
	cfg, err := Load(writeConfig(t, "scenario:\n  name: demo\n"))
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Scenario.Name)
	assert.Zero(t, cfg.Limits.MaxNodesPerFile)
	assert.Nil(t, cfg.Output.Pretty, "absent pretty stays unset")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "scenario: [unclosed"))
	assert.Error(t, err)
}

func TestLoadRejectsNegativeValues(t *testing.T) {
	_, err := Load(writeConfig(t, "limits:\n  maxNodesPerFile: -1\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "scenario:\n  duration: -5\n"))
	assert.Error(t, err)
}
