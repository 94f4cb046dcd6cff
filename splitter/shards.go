package splitter

import (
	"fmt"
	"path/filepath"

	"github.com/fwrock/htc-convert-insterscsimulator/formatter"
	"github.com/fwrock/htc-convert-insterscsimulator/htc"
)

// ShardInfo describes one written shard file.
type ShardInfo struct {
	Kind      htc.Kind
	Name      string // file stem, e.g. "nodes_0"; doubles as the manifest id
	Filename  string // final name including extension
	ClassType string
	Count     int // actors in this shard
}

// WriteShards persists one JSON document per group into dir and returns
// the shard descriptors in file-index order. Naming is deterministic:
// <kind>_<index> with a zero-based index.
func WriteShards[T any](groups [][]T, kind htc.Kind, dir string, opts formatter.Options) ([]ShardInfo, error) {
	shards := make([]ShardInfo, 0, len(groups))
	for i, group := range groups {
		stem := fmt.Sprintf("%s_%d", kind.FileBase(), i)
		written, err := formatter.WriteJSON(filepath.Join(dir, stem), group, opts)
		if err != nil {
			return nil, err
		}
		shards = append(shards, ShardInfo{
			Kind:      kind,
			Name:      stem,
			Filename:  filepath.Base(written),
			ClassType: kind.ClassType(),
			Count:     len(group),
		})
	}
	return shards, nil
}
