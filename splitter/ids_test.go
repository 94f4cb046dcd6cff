package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwrock/htc-convert-insterscsimulator/htc"
)

func TestAssignIDs(t *testing.T) {
	m, err := AssignIDs(htc.KindNode, []string{"a", "b", "c"})
	require.NoError(t, err)

	assert.Equal(t, htc.KindNode, m.Kind())
	assert.Equal(t, 3, m.Len())

	for i, raw := range []string{"a", "b", "c"} {
		rid, ok := m.Resolve(raw)
		require.True(t, ok, "raw id %q", raw)
		assert.Equal(t, htc.ResourceID(htc.KindNode, i+1), rid)
	}

	_, ok := m.Resolve("d")
	assert.False(t, ok)
}

func TestAssignIDsEmpty(t *testing.T) {
	m, err := AssignIDs(htc.KindCar, nil)
	require.NoError(t, err)
	assert.Zero(t, m.Len())
}

func TestAssignIDsDuplicate(t *testing.T) {
	m, err := AssignIDs(htc.KindLink, []string{"a", "b", "a"})
	assert.Nil(t, m)

	var dup *DuplicateIDError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, htc.KindLink, dup.Kind)
	assert.Equal(t, "a", dup.RawID)
	assert.Contains(t, dup.Error(), `"a"`)
}

// The same raw id may exist in different kinds; numbering never crosses.
func TestAssignIDsIndependentNamespaces(t *testing.T) {
	nodes, err := AssignIDs(htc.KindNode, []string{"1", "2"})
	require.NoError(t, err)
	links, err := AssignIDs(htc.KindLink, []string{"1"})
	require.NoError(t, err)

	nodeRID, _ := nodes.Resolve("1")
	linkRID, _ := links.Resolve("1")
	assert.Equal(t, "htcrid:node;1", nodeRID)
	assert.Equal(t, "htcrid:link;1", linkRID)
}

func TestIDMapDependency(t *testing.T) {
	m, err := AssignIDs(htc.KindNode, []string{"1", "2"})
	require.NoError(t, err)

	dep, ok := m.Dependency("2")
	require.True(t, ok)
	assert.Equal(t, htc.DependencyInfo{
		ID:         "htcaid:node;2",
		ResourceID: "htcrid:node;2",
		ClassType:  htc.NodeClassType,
		ActorType:  htc.ActorTypeLoadBalanced,
	}, dep)

	_, ok = m.Dependency("missing")
	assert.False(t, ok)
}
