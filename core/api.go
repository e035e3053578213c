// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing policy getters and Stats.
// Policy:
//   - No mutation here.
//   - Every exported function documents complexity.
// AI-HINT (file):
//   - Policy flags are immutable after NewGraph.
//   - Stats() is an O(E) snapshot; rely on it for quick diagnostics.

package core

// CascadeDelete reports whether DeleteNode removes peer records pointing at
// the deleted node.
//
// Returns:
//   - bool: true if the graph was built WithCascadeDelete.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - If false, expect DanglingEdges() to grow after DeleteNode.
func (g *Graph) CascadeDelete() bool { return g.cascadeDelete }

// MirrorMutations reports whether edge setters update every record sharing
// the ID (true) or only the first one found (false, legacy).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) MirrorMutations() bool { return g.mirrorMutations }

// StrictEdgeIDs reports whether edge creation rejects IDs already in use.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) StrictEdgeIDs() bool { return g.strictEdgeIDs }

// AutoTouch reports whether graph-level mutations refresh modification times.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) AutoTouch() bool { return g.autoTouch }

// NextBaseID returns the counter value the next CreateNode call will use.
func (g *Graph) NextBaseID() uint64 { return g.baseID }

// GraphStats is a read-only summary of a Graph at one point in time.
type GraphStats struct {
	// NodeCount is the number of stored nodes (root excluded unless added).
	NodeCount int
	// EdgeCount is the number of stored edge records; an undirected pair counts twice.
	EdgeCount int
	// DirectedEdgeCount counts records of kind EdgeDirected.
	DirectedEdgeCount int
	// UndirectedEdgeCount counts records of kind EdgeUndirected.
	UndirectedEdgeCount int
	// UntypedEdgeCount counts records of kind EdgeNoType.
	UntypedEdgeCount int
	// BlockedEdgeCount counts records with Blocked()==true.
	BlockedEdgeCount int
	// DanglingEdgeCount counts records with an endpoint that no longer resolves.
	DanglingEdgeCount int
	// NextBaseID is the counter value of the next CreateNode.
	NextBaseID uint64
	// HasRoot reports whether an anchor node is set.
	HasRoot bool
}

// Stats produces a deterministic snapshot of catalog sizes and a
// classification of edge records by kind and state.
//
// Implementation:
//   - Stage 1: Snapshot node count, counter and root presence.
//   - Stage 2: Single pass over all owned records, classifying each.
//
// Returns:
//   - *GraphStats: a fresh summary; later mutations do not affect it.
//
// Complexity:
//   - Time O(E), Space O(1).
//
// AI-Hints:
//   - UndirectedEdgeCount/2 is the number of complete undirected connections
//     only when no partial or dangling pairs exist.
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		NodeCount:  len(g.nodes),
		NextBaseID: g.baseID,
		HasRoot:    g.root != nil,
	}
	for _, n := range g.nodes {
		for _, e := range n.edges {
			stats.EdgeCount++
			switch e.Type() {
			case EdgeDirected:
				stats.DirectedEdgeCount++
			case EdgeUndirected:
				stats.UndirectedEdgeCount++
			default:
				stats.UntypedEdgeCount++
			}
			if e.Blocked() {
				stats.BlockedEdgeCount++
			}
			if !g.HasNode(e.From()) || !g.HasNode(e.To()) {
				stats.DanglingEdgeCount++
			}
		}
	}

	return &stats
}
