package manifest

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fwrock/htc-convert-insterscsimulator/formatter"
	"github.com/fwrock/htc-convert-insterscsimulator/htc"
	"github.com/fwrock/htc-convert-insterscsimulator/splitter"
	"github.com/fwrock/htc-convert-insterscsimulator/utils"
)

// Filename is the manifest's fixed name; loaders locate it by exact name.
const Filename = "simulation.json"

const description = "Simulates a smart mobility scenario with a map and car trips generated from MATSim data"

// ScenarioSettings carries the scenario metadata recorded in the manifest.
type ScenarioSettings struct {
	Name          string
	StartRealTime string // ISO 8601, already validated
	TimeUnit      string
	TimeStep      int
	Duration      int
	StartTick     int

	// BasePath is prefixed to shard filenames in data source paths. Empty
	// means paths relative to the scenario directory.
	BasePath string

	// GeneratedAt pins the generation timestamp; zero means now. Pinning
	// makes repeated runs byte-identical.
	GeneratedAt time.Time
}

// Generate builds the manifest record for the given shards, in node, link,
// car order.
func Generate(scn ScenarioSettings, nodeShards, linkShards, carShards []splitter.ShardInfo) htc.SimulationConfig {
	generatedAt := scn.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	cfg := htc.SimulationConfig{
		Name:          "HTC-Simulator: " + scn.Name,
		Description:   description,
		StartRealTime: scn.StartRealTime,
		TimeUnit:      scn.TimeUnit,
		TimeStep:      scn.TimeStep,
		Duration:      scn.Duration,
		StartTick:     scn.StartTick,
		GeneratedAt:   utils.FormatIso8601(generatedAt),
		Totals: htc.EntityTotals{
			Nodes: countEntities(nodeShards),
			Links: countEntities(linkShards),
			Cars:  countEntities(carShards),
		},
		ActorsDataSources: make([]htc.ActorDataSource, 0, len(nodeShards)+len(linkShards)+len(carShards)),
	}

	for _, shards := range [][]splitter.ShardInfo{nodeShards, linkShards, carShards} {
		for _, s := range shards {
			cfg.ActorsDataSources = append(cfg.ActorsDataSources, htc.ActorDataSource{
				ID:          s.Name,
				ClassType:   s.ClassType,
				EntityCount: s.Count,
				DataSource: htc.DataSource{
					SourceType: "json",
					Info:       htc.DataSourceInfo{Path: sourcePath(scn.BasePath, s.Filename)},
				},
			})
		}
	}

	return cfg
}

// Write persists cfg as simulation.json in dir. Gzip is ignored: the
// manifest is never compressed.
func Write(cfg htc.SimulationConfig, dir string, opts formatter.Options) error {
	opts.Gzip = false
	stem := filepath.Join(dir, strings.TrimSuffix(Filename, ".json"))
	_, err := formatter.WriteJSON(stem, cfg, opts)
	return err
}

func sourcePath(basePath, filename string) string {
	if basePath == "" {
		return filename
	}
	return strings.TrimSuffix(basePath, "/") + "/" + filename
}

func countEntities(shards []splitter.ShardInfo) int {
	total := 0
	for _, s := range shards {
		total += s.Count
	}
	return total
}
