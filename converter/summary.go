package converter

import (
	"time"

	"github.com/fwrock/htc-convert-insterscsimulator/splitter"
)

// Summary reports what a conversion run produced. Run returns it instead of
// accumulating counters in package state, so concurrent runs stay isolated.
type Summary struct {
	Scenario string
	// OutputDir is the scenario directory the files were written into,
	// i.e. Options.OutputDir joined with the scenario name.
	OutputDir string

	// Entity counts after filtering and skipping malformed records.
	Nodes int
	Links int
	Cars  int

	NodeShards []splitter.ShardInfo
	LinkShards []splitter.ShardInfo
	CarShards  []splitter.ShardInfo

	ManifestPath string
	// Warnings maps warning type to occurrence count, nil when the run
	// was clean.
	Warnings map[string]int
	Elapsed  time.Duration
}

// TotalShards returns the number of shard files written.
func (s *Summary) TotalShards() int {
	return len(s.NodeShards) + len(s.LinkShards) + len(s.CarShards)
}

// ShardFiles returns every shard filename in manifest order: nodes first,
// then links, then cars, each in ascending shard index order.
func (s *Summary) ShardFiles() []string {
	files := make([]string, 0, s.TotalShards())
	for _, shards := range [][]splitter.ShardInfo{s.NodeShards, s.LinkShards, s.CarShards} {
		for _, sh := range shards {
			files = append(files, sh.Filename)
		}
	}
	return files
}
