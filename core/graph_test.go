package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velikov/routegraph/core"
)

// buildRouting constructs the default routing topology:
// nodes A–F with edges A-B, A-C, B-D, C-E, D-F.
func buildRouting(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, label := range []string{"A", "B", "C", "D", "E", "F"} {
		require.NoError(t, g.AddNode(label))
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "E"}, {"D", "F"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func TestAddNode(t *testing.T) {
	g := core.NewGraph()

	assert.NoError(t, g.AddNode("A"))
	assert.True(t, g.HasNode("A"))
	assert.Equal(t, 1, g.NodeCount())

	// duplicate label is rejected
	assert.ErrorIs(t, g.AddNode("A"), core.ErrDuplicateNode)
	assert.Equal(t, 1, g.NodeCount())

	// empty label is rejected
	assert.ErrorIs(t, g.AddNode(""), core.ErrEmptyLabel)
}

func TestAddEdge_Symmetry(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))

	require.NoError(t, g.AddEdge("A", "B"))

	nbrsA, err := g.Neighbors("A")
	require.NoError(t, err)
	nbrsB, err := g.Neighbors("B")
	require.NoError(t, err)

	assert.Contains(t, nbrsA, "B")
	assert.Contains(t, nbrsB, "A")
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))

	require.NoError(t, g.AddEdge("A", "B"))
	// re-adding the same edge (either direction) is a defined no-op
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "A"))

	nbrsA, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, nbrsA)

	nbrsB, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, nbrsB)

	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_Invalid(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A"))

	assert.ErrorIs(t, g.AddEdge("A", "missing"), core.ErrUnknownNode)
	assert.ErrorIs(t, g.AddEdge("missing", "A"), core.ErrUnknownNode)
	assert.ErrorIs(t, g.AddEdge("A", "A"), core.ErrSelfLoop)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestRemoveNode_Completeness(t *testing.T) {
	g := buildRouting(t)

	require.NoError(t, g.RemoveNode("A"))

	assert.False(t, g.HasNode("A"))
	for _, label := range []string{"B", "C", "D", "E", "F"} {
		nbrs, err := g.Neighbors(label)
		require.NoError(t, err)
		assert.NotContains(t, nbrs, "A", "no dangling reference to a removed node")
	}
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())

	// removal is not idempotent
	assert.ErrorIs(t, g.RemoveNode("A"), core.ErrUnknownNode)
}

func TestRemoveEdge(t *testing.T) {
	g := buildRouting(t)

	require.NoError(t, g.RemoveEdge("A", "B"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.Equal(t, 4, g.EdgeCount())

	// removing an absent edge is a defined no-op
	require.NoError(t, g.RemoveEdge("A", "B"))
	assert.Equal(t, 4, g.EdgeCount())

	// absent endpoints are errors
	assert.ErrorIs(t, g.RemoveEdge("A", "missing"), core.ErrUnknownNode)
	assert.ErrorIs(t, g.RemoveEdge("missing", "A"), core.ErrUnknownNode)
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for _, label := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, g.AddNode(label))
	}

	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("A", "D"))

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, nbrs, "first-added edge first")

	// removing from the middle preserves the order of the rest
	require.NoError(t, g.RemoveEdge("A", "C"))
	// a later edge appends at the end
	require.NoError(t, g.AddEdge("A", "E"))

	nbrs, err = g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "D", "E"}, nbrs)
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := buildRouting(t)

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	nbrs[0] = "Z"

	again, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, again, "caller mutation must not leak into the store")
}

func TestNeighbors_Unknown(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestQueries(t *testing.T) {
	g := buildRouting(t)

	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, g.Nodes())

	degA, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, degA)

	degF, err := g.Degree("F")
	require.NoError(t, err)
	assert.Equal(t, 1, degF)

	_, err = g.Degree("ghost")
	assert.ErrorIs(t, err, core.ErrUnknownNode)

	assert.False(t, g.HasNode(""))
	assert.False(t, g.HasEdge("A", "F"))
}

func TestBeginSearch_BlocksMutation(t *testing.T) {
	g := buildRouting(t)

	end := g.BeginSearch()

	assert.ErrorIs(t, g.AddNode("G"), core.ErrSearchActive)
	assert.ErrorIs(t, g.RemoveNode("A"), core.ErrSearchActive)
	assert.ErrorIs(t, g.AddEdge("A", "F"), core.ErrSearchActive)
	assert.ErrorIs(t, g.RemoveEdge("A", "B"), core.ErrSearchActive)

	// read queries stay available while a search is active
	assert.True(t, g.HasNode("A"))
	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, nbrs)

	end()
	assert.NoError(t, g.AddNode("G"))

	// the release func is idempotent
	end()
	assert.NoError(t, g.AddEdge("A", "F"))
}

func TestBeginSearch_Nested(t *testing.T) {
	g := buildRouting(t)

	end1 := g.BeginSearch()
	end2 := g.BeginSearch()

	end1()
	assert.ErrorIs(t, g.AddNode("G"), core.ErrSearchActive, "second search still holds the guard")

	end2()
	assert.NoError(t, g.AddNode("G"))
}

func TestClone_Independent(t *testing.T) {
	g := buildRouting(t)
	cp := g.Clone()

	// same topology
	assert.Equal(t, g.Nodes(), cp.Nodes())
	assert.Equal(t, g.EdgeCount(), cp.EdgeCount())
	nbrs, err := cp.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, nbrs)

	// mutating the original does not touch the copy
	require.NoError(t, g.RemoveNode("B"))
	assert.True(t, cp.HasNode("B"))
	assert.True(t, cp.HasEdge("A", "B"))

	// and vice versa
	require.NoError(t, cp.AddNode("Z"))
	assert.False(t, g.HasNode("Z"))
}

func TestRemoveNode_HubSeversAllEdges(t *testing.T) {
	// star: HUB connected to ten satellites
	g := core.NewGraph()
	require.NoError(t, g.AddNode("HUB"))
	for i := 0; i < 10; i++ {
		sat := fmt.Sprintf("S%d", i)
		require.NoError(t, g.AddNode(sat))
		require.NoError(t, g.AddEdge("HUB", sat))
	}
	require.Equal(t, 10, g.EdgeCount())

	require.NoError(t, g.RemoveNode("HUB"))

	assert.Equal(t, 0, g.EdgeCount())
	for i := 0; i < 10; i++ {
		deg, err := g.Degree(fmt.Sprintf("S%d", i))
		require.NoError(t, err)
		assert.Equal(t, 0, deg)
	}
}
