package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwrock/htc-convert-insterscsimulator/formatter"
	"github.com/fwrock/htc-convert-insterscsimulator/htc"
	"github.com/fwrock/htc-convert-insterscsimulator/splitter"
	"github.com/fwrock/htc-convert-insterscsimulator/utils"
)

func testSettings() ScenarioSettings {
	return ScenarioSettings{
		Name:          "demo",
		StartRealTime: "2025-01-27T12:30:45.123+00:00",
		TimeUnit:      "seconds",
		TimeStep:      1,
		Duration:      86400,
		StartTick:     0,
		GeneratedAt:   time.Date(2025, 1, 27, 13, 0, 0, 0, time.UTC),
	}
}

func testShards() (nodes, links, cars []splitter.ShardInfo) {
	nodes = []splitter.ShardInfo{
		{Kind: htc.KindNode, Name: "nodes_0", Filename: "nodes_0.json", ClassType: htc.NodeClassType, Count: 1000},
		{Kind: htc.KindNode, Name: "nodes_1", Filename: "nodes_1.json", ClassType: htc.NodeClassType, Count: 250},
	}
	links = []splitter.ShardInfo{
		{Kind: htc.KindLink, Name: "links_0", Filename: "links_0.json", ClassType: htc.LinkClassType, Count: 900},
	}
	cars = []splitter.ShardInfo{
		{Kind: htc.KindCar, Name: "cars_0", Filename: "cars_0.json.gz", ClassType: htc.CarClassType, Count: 42},
	}
	return nodes, links, cars
}

func TestGenerate(t *testing.T) {
	nodes, links, cars := testShards()

	cfg := Generate(testSettings(), nodes, links, cars)

	assert.Equal(t, "HTC-Simulator: demo", cfg.Name)
	assert.Equal(t, "Simulates a smart mobility scenario with a map and car trips generated from MATSim data", cfg.Description)
	assert.Equal(t, "2025-01-27T12:30:45.123+00:00", cfg.StartRealTime)
	assert.Equal(t, "seconds", cfg.TimeUnit)
	assert.Equal(t, 1, cfg.TimeStep)
	assert.Equal(t, 86400, cfg.Duration)
	assert.Equal(t, 0, cfg.StartTick)
	assert.Equal(t, "2025-01-27T13:00:00.000+00:00", cfg.GeneratedAt)

	assert.Equal(t, htc.EntityTotals{Nodes: 1250, Links: 900, Cars: 42}, cfg.Totals)

	require.Len(t, cfg.ActorsDataSources, 4)
	assert.Equal(t, "nodes_0", cfg.ActorsDataSources[0].ID)
	assert.Equal(t, "nodes_1", cfg.ActorsDataSources[1].ID)
	assert.Equal(t, "links_0", cfg.ActorsDataSources[2].ID)
	assert.Equal(t, "cars_0", cfg.ActorsDataSources[3].ID)

	first := cfg.ActorsDataSources[0]
	assert.Equal(t, htc.NodeClassType, first.ClassType)
	assert.Equal(t, 1000, first.EntityCount)
	assert.Equal(t, "json", first.DataSource.SourceType)
	assert.Equal(t, "nodes_0.json", first.DataSource.Info.Path)

	assert.Equal(t, "cars_0.json.gz", cfg.ActorsDataSources[3].DataSource.Info.Path)
}

func TestGenerateBasePath(t *testing.T) {
	scn := testSettings()
	scn.BasePath = "/app/hyperbolic-time-chamber/simulations/input/demo/"
	nodes, links, cars := testShards()

	cfg := Generate(scn, nodes, links, cars)

	assert.Equal(t,
		"/app/hyperbolic-time-chamber/simulations/input/demo/nodes_0.json",
		cfg.ActorsDataSources[0].DataSource.Info.Path,
		"trailing slash on the base path must not double")
}

func TestGenerateDefaultsGeneratedAt(t *testing.T) {
	scn := testSettings()
	scn.GeneratedAt = time.Time{}

	cfg := Generate(scn, nil, nil, nil)

	_, hasZone, err := utils.ParseIso8601(cfg.GeneratedAt)
	require.NoError(t, err)
	assert.True(t, hasZone)
}

func TestGenerateNoShards(t *testing.T) {
	cfg := Generate(testSettings(), nil, nil, nil)

	assert.Equal(t, htc.EntityTotals{}, cfg.Totals)

	raw, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"actorsDataSources":[]`, "empty list, not null")
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	cfg := Generate(testSettings(), nil, nil, nil)

	// Gzip must not apply to the manifest even when shards use it.
	require.NoError(t, Write(cfg, dir, formatter.Options{Pretty: true, Gzip: true}))

	_, err := os.Stat(filepath.Join(dir, "simulation.json.gz"))
	assert.True(t, os.IsNotExist(err))

	raw, err := os.ReadFile(filepath.Join(dir, Filename))
	require.NoError(t, err)

	var got htc.SimulationConfig
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, cfg, got)
}

func TestWriteFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir")

	err := Write(htc.SimulationConfig{}, missing, formatter.Options{})
	var werr *formatter.WriteError
	require.ErrorAs(t, err, &werr)
}
