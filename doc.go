// Package propgraph is an in-memory property graph: typed nodes carrying
// text and binary payloads, connected by typed edges with optional weight,
// label and a blocked flag.
//
// What is inside:
//
//	core/     Graph, Node, Edge, payload variants, options and sentinels
//	config/   YAML configuration (yaml.v3 + validator) mapped onto core options and a zap logger
//	builder/  deterministic fixture constructors: Path, Star, Cycle, Complete
//	examples/ a runnable document-graph walkthrough
//
// Ownership model:
//
//	The Graph owns nodes; every node owns the edge records that start at it.
//	An undirected connection is stored twice, once on each endpoint, under one
//	shared ID with swapped endpoints. A directed connection is a single record
//	on its source node. The Graph never holds edges directly.
//
// Quick example:
//
//	g := core.NewGraph()
//	a, aID := g.CreateNode(core.PrimaryNode) // "1_Primary", not yet stored
//	b, bID := g.CreateNode(core.TextNode)    // "2_Text"
//	_ = g.AddNode(a)
//	_ = g.AddNode(b)
//	_ = g.AddTextData(bID, "hello")
//	id, _ := g.AddUndirectedEdge(aID, bID)    // "1_Primary_2_Text_undirected"
//
// Non-goals: traversal and search algorithms, concurrent access, persistence,
// schema validation beyond type tags, transactions.
//
//	go get github.com/katalvlaran/propgraph
package propgraph
