// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries over the base counter so minted IDs on the clone continue
//     after the source's and never collide with copied nodes.
// AI-HINT (file):
//   - Clone is deep: nodes, records and payload buffers are duplicated.
//   - Clear() drops nodes but keeps the counter, root and policy flags.

package core

// Clone returns a deep copy of the Graph: policy flags, logger, clock,
// counter, root and every stored node with its records and payload.
//
// Complexity: O(V + E + payload size).
func (g *Graph) Clone() *Graph {
	// AI-HINT: Mutating the clone never affects the source and vice versa.
	c := g.cloneEmpty()
	for id, n := range g.nodes {
		c.nodes[id] = n.Clone()
	}

	return c
}

// cloneEmpty copies configuration, counter and root but no nodes.
func (g *Graph) cloneEmpty() *Graph {
	c := &Graph{
		logger:          g.logger,
		clock:           g.clock,
		withRoot:        g.withRoot,
		cascadeDelete:   g.cascadeDelete,
		mirrorMutations: g.mirrorMutations,
		strictEdgeIDs:   g.strictEdgeIDs,
		autoTouch:       g.autoTouch,
		baseID:          g.baseID,
		nodes:           make(map[string]*Node, len(g.nodes)),
	}
	if g.root != nil {
		c.root = g.root.Clone()
	}

	return c
}

// Clear removes every stored node (and so every record) while preserving
// policy flags, the root and the base counter. IDs minted after Clear never
// repeat IDs minted before it.
//
// Complexity: O(1).
func (g *Graph) Clear() {
	g.nodes = make(map[string]*Node)
}
