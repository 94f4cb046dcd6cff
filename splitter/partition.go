package splitter

// Partition splits actors into contiguous groups of at most maxPerFile,
// preserving order: concatenating the groups reproduces the input exactly.
// Empty input yields zero groups, never an empty group; a non-positive
// maxPerFile puts everything in one group.
func Partition[T any](actors []T, maxPerFile int) [][]T {
	if len(actors) == 0 {
		return nil
	}
	if maxPerFile <= 0 {
		return [][]T{actors}
	}
	groups := make([][]T, 0, (len(actors)+maxPerFile-1)/maxPerFile)
	for start := 0; start < len(actors); start += maxPerFile {
		end := start + maxPerFile
		if end > len(actors) {
			end = len(actors)
		}
		groups = append(groups, actors[start:end])
	}
	return groups
}
