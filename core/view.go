// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves node IDs, edge IDs, kinds and record orientation.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - Subgraph keeps only nodes in 'keep' and records with both endpoints kept,
//     so the result never contains dangling records.

package core

// Subgraph returns a new Graph induced by the set keep of node IDs: the
// result holds deep copies of nodes with keep[id]==true and only those records
// whose From and To are both kept. The counter and policy flags are carried
// over so the view can keep minting without collisions.
//
// Complexity: O(V + E).
func Subgraph(g *Graph, keep map[string]bool) *Graph {
	// AI-HINT: Build problem-specific slices of the graph without side effects on 'g'.
	out := g.cloneEmpty()
	for id, n := range g.nodes {
		if !keep[id] {
			continue
		}
		c := n.Clone()
		for eid, e := range c.edges {
			if !keep[e.From()] || !keep[e.To()] {
				delete(c.edges, eid)
			}
		}
		out.nodes[id] = c
	}

	return out
}
