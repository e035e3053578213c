// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/propgraph/core"
)

// ExampleGraph_CreateNode shows the two-step lifecycle: mint, then store.
func ExampleGraph_CreateNode() {
	g := core.NewGraph()

	n, id := g.CreateNode(core.TextNode)
	fmt.Println(id, g.HasNode(id))

	_ = g.AddNode(n)
	_ = g.AddTextData(id, "hello")
	fmt.Println(g.HasNode(id), n.Data().Text)
	// Output:
	// 1_Text false
	// true [hello]
}

// ExampleGraph_AddUndirectedEdge shows the mirrored pair sharing one ID.
func ExampleGraph_AddUndirectedEdge() {
	g := core.NewGraph()
	a, aID := g.CreateNode(core.PrimaryNode)
	b, bID := g.CreateNode(core.DataNode)
	_ = g.AddNode(a)
	_ = g.AddNode(b)

	id, _ := g.AddUndirectedEdge(aID, bID)
	for _, e := range g.Edges() {
		fmt.Println(e.ID(), e.From(), "->", e.To())
	}
	fmt.Println(g.EdgeCount(), id)
	// Output:
	// 1_Primary_2_Data_undirected 1_Primary -> 2_Data
	// 1_Primary_2_Data_undirected 2_Data -> 1_Primary
	// 2 1_Primary_2_Data_undirected
}

// ExampleGraph_DeleteNode shows the dangling mirror a non-cascading delete leaves behind.
func ExampleGraph_DeleteNode() {
	g := core.NewGraph()
	a, aID := g.CreateNode(core.PrimaryNode)
	b, bID := g.CreateNode(core.PrimaryNode)
	_ = g.AddNode(a)
	_ = g.AddNode(b)
	id, _ := g.AddUndirectedEdge(aID, bID)

	_ = g.DeleteNode(aID)
	e, _ := g.Edge(id)
	fmt.Println(e.From(), "->", e.To(), len(g.DanglingEdges()))

	err := g.DeleteNode(aID)
	fmt.Println(errors.Is(err, core.ErrNodeNotFound))
	// Output:
	// 2_Primary -> 1_Primary 1
	// true
}

// ExampleGraph_AddData shows a rejected append on a payload of the wrong variant.
func ExampleGraph_AddData() {
	g := core.NewGraph()
	n, id := g.CreateNode(core.BinaryNode)
	_ = g.AddNode(n)

	err := g.AddData(id, core.Text("not bytes"))
	fmt.Println(errors.Is(err, core.ErrPayloadMismatch), len(n.Data().Text))
	// Output:
	// true 0
}
