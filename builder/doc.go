// Package builder assembles deterministic propgraph fixtures from small,
// composable topology constructors.
//
// The package offers:
//
//   - BuildGraph: create a core.Graph and run constructors in order.
//   - Apply: run constructors against an existing graph.
//   - Topologies: Path, Star, Cycle, Complete.
//   - Options: node type, directed connections, seeded RNG, edge weights, labels.
//   - WeightFn distributions: constant, uniform, normal, exponential.
//
// Every constructor mints fresh nodes through the graph's two-step protocol
// (CreateNode then AddNode), so node IDs follow the graph counter
// ("<n>_<Type>") and never collide across constructors. Connections are
// undirected pairs by default; WithDirected switches to single directed records.
//
// Guarantees:
//
//   - Determinism: the same options, seed and constructor order yield
//     identical graphs.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Runtime failures are returned as sentinel errors wrapped with the
//     constructor name; constructors never panic.
package builder
