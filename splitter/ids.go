package splitter

import (
	"github.com/fwrock/htc-convert-insterscsimulator/htc"
)

// IDMap is the deterministic raw id -> resource id assignment for one
// kind, built once in input order and consulted for every cross-reference
// afterwards.
type IDMap struct {
	kind      htc.Kind
	resources map[string]string // raw id -> resource id
}

// AssignIDs numbers rawIDs sequentially from 1 in input order. A raw id
// repeating within the kind is a *DuplicateIDError.
func AssignIDs(kind htc.Kind, rawIDs []string) (*IDMap, error) {
	m := &IDMap{
		kind:      kind,
		resources: make(map[string]string, len(rawIDs)),
	}
	for i, raw := range rawIDs {
		if _, exists := m.resources[raw]; exists {
			return nil, &DuplicateIDError{Kind: kind, RawID: raw}
		}
		m.resources[raw] = htc.ResourceID(kind, i+1)
	}
	return m, nil
}

// Kind returns the kind this map numbers.
func (m *IDMap) Kind() htc.Kind { return m.kind }

// Len returns the number of assigned ids.
func (m *IDMap) Len() int { return len(m.resources) }

// Resolve returns the resource id assigned to raw.
func (m *IDMap) Resolve(raw string) (string, bool) {
	rid, ok := m.resources[raw]
	return rid, ok
}

// Dependency builds the dependency block referencing raw, pairing its
// actor id with its resource id.
func (m *IDMap) Dependency(raw string) (htc.DependencyInfo, bool) {
	rid, ok := m.resources[raw]
	if !ok {
		return htc.DependencyInfo{}, false
	}
	return htc.DependencyInfo{
		ID:         htc.ActorID(m.kind, raw),
		ResourceID: rid,
		ClassType:  m.kind.ClassType(),
		ActorType:  htc.ActorTypeLoadBalanced,
	}, true
}
