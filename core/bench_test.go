// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/propgraph/core"
)

// BenchmarkCreateAndAddNode measures minting plus storing a node.
func BenchmarkCreateAndAddNode(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n, _ := g.CreateNode(core.DataNode)
		_ = g.AddNode(n)
	}
}

// BenchmarkAddUndirectedEdge measures storing a mirrored pair between two fixed nodes.
func BenchmarkAddUndirectedEdge(b *testing.B) {
	g := core.NewGraph()
	ids := benchNodes(g, 2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddUndirectedEdge(ids[0], ids[1])
	}
}

// BenchmarkAddTextData measures payload appends on a text node.
func BenchmarkAddTextData(b *testing.B) {
	g := core.NewGraph()
	n, id := g.CreateNode(core.TextNode)
	_ = g.AddNode(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddTextData(id, "x")
	}
}

// BenchmarkEdgeLookup measures ID lookup across a ring of 1000 nodes.
func BenchmarkEdgeLookup(b *testing.B) {
	g := core.NewGraph()
	ids := benchNodes(g, 1000)
	var last string
	for i := range ids {
		last, _ = g.AddUndirectedEdge(ids[i], ids[(i+1)%len(ids)])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Edge(last)
	}
}

// BenchmarkSetEdgeWeightMirrored measures a mirrored setter on a ring of 1000 nodes.
func BenchmarkSetEdgeWeightMirrored(b *testing.B) {
	g := core.NewGraph()
	ids := benchNodes(g, 1000)
	id, _ := g.AddUndirectedEdge(ids[0], ids[1])
	for i := 1; i < len(ids); i++ {
		_, _ = g.AddUndirectedEdge(ids[i], ids[(i+1)%len(ids)])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.SetEdgeWeight(id, float64(i))
	}
}

// benchNodes stores n Primary nodes and returns their IDs.
func benchNodes(g *core.Graph, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		node, id := g.CreateNode(core.PrimaryNode)
		_ = g.AddNode(node)
		ids[i] = id
	}

	return ids
}
