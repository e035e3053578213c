// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/propgraph/core"
)

// TestGraph_Clone VERIFIES the copy is deep and keeps minting after the source's counter.
func TestGraph_Clone(t *testing.T) {
	g, _ := newTestGraph(core.WithStrictEdgeIDs())
	a := mustStore(t, g, core.TextNode)
	b := mustStore(t, g, core.PrimaryNode)
	require.NoError(t, g.AddTextData(a, TextHello))
	id, err := g.AddUndirectedEdge(a, b)
	require.NoError(t, err)

	c := g.Clone()
	assert.True(t, c.StrictEdgeIDs())
	assert.Equal(t, g.NodeIDs(), c.NodeIDs())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())
	require.NotNil(t, c.Root())
	assert.NotSame(t, g.Root(), c.Root())

	// Mutations on the clone stay local.
	require.NoError(t, c.SetEdgeLabel(id, LabelRoad))
	require.NoError(t, c.AddTextData(a, TextWorld))
	require.NoError(t, c.DeleteNode(b))

	orig, err := g.Edge(id)
	require.NoError(t, err)
	_, has := orig.Label()
	assert.False(t, has)
	assert.Equal(t, []string{TextHello}, mustNode(t, g, a).Data().Text)
	assert.True(t, g.HasNode(b))

	_, next := c.CreateNode(core.DataNode)
	assert.Equal(t, "3_Data", next)
}

// TestGraph_Clear VERIFIES nodes vanish while counter, root and flags survive.
func TestGraph_Clear(t *testing.T) {
	g, _ := newTestGraph(core.WithCascadeDelete())
	a := mustStore(t, g, core.PrimaryNode)
	b := mustStore(t, g, core.PrimaryNode)
	_, err := g.AddDirectedEdge(a, b)
	require.NoError(t, err)

	g.Clear()
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	assert.NotNil(t, g.Root())
	assert.True(t, g.CascadeDelete())

	_, id := g.CreateNode(core.PrimaryNode)
	assert.Equal(t, "3_Primary", id, "IDs are never reused after Clear")
}

// TestSubgraph VERIFIES the induced view holds no dangling records and leaves the source intact.
func TestSubgraph(t *testing.T) {
	g, _ := newTestGraph()
	a := mustStore(t, g, core.PrimaryNode)
	b := mustStore(t, g, core.PrimaryNode)
	c := mustStore(t, g, core.PrimaryNode)
	ab, err := g.AddUndirectedEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddUndirectedEdge(b, c)
	require.NoError(t, err)
	_, err = g.AddDirectedEdge(c, a)
	require.NoError(t, err)

	sub := core.Subgraph(g, map[string]bool{a: true, b: true})
	if diff := cmp.Diff([]string{a, b}, sub.NodeIDs()); diff != "" {
		t.Fatalf("Subgraph NodeIDs mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, sub.EdgeCount())
	assert.True(t, sub.HasEdge(ab))
	assert.Empty(t, sub.DanglingEdges())

	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, 3, g.NodeCount())
}

// TestGraph_Stats VERIFIES record classification by kind and state.
func TestGraph_Stats(t *testing.T) {
	g, _ := newTestGraph()
	a := mustStore(t, g, core.PrimaryNode)
	b := mustStore(t, g, core.PrimaryNode)
	c := mustStore(t, g, core.PrimaryNode)
	und, err := g.AddUndirectedEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddDirectedEdge(b, c)
	require.NoError(t, err)
	require.NoError(t, g.SetEdgeBlocked(und, true))
	require.NoError(t, g.DeleteNode(c))

	want := &core.GraphStats{
		NodeCount:           2,
		EdgeCount:           3,
		DirectedEdgeCount:   1,
		UndirectedEdgeCount: 2,
		BlockedEdgeCount:    2,
		DanglingEdgeCount:   1,
		NextBaseID:          4,
		HasRoot:             true,
	}
	if diff := cmp.Diff(want, g.Stats()); diff != "" {
		t.Fatalf("Stats() mismatch (-want +got):\n%s", diff)
	}
}
