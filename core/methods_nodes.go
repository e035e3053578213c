// File: methods_nodes.go
// Role: Node lifecycle & queries, root anchor, payload appends.
//
// Determinism:
//   - NodeIDs()/Nodes() return nodes sorted by ID ascending.
//   - Minted IDs are "<counter>_<type>"; the counter never goes back.
//
// Policy:
//   - Missing nodes never mutate state. Graph-level conveniences return a
//     wrapped ErrNodeNotFound which callers may ignore (best-effort).
//
// AI-Hints (file):
//   - CreateNode does NOT store the node; call AddNode to make it visible.
//   - DeleteNode leaves peer edges dangling unless WithCascadeDelete was set.
package core

import (
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CreateNode mints a new node of type t without storing it.
//
// Implementation:
//   - Stage 1: Format the ID as "<counter>_<t>" from the current base counter.
//   - Stage 2: Advance the counter.
//   - Stage 3: Build the node with the graph clock and return it un-stored.
//
// Behavior highlights:
//   - The counter advances even if the node is never added; IDs need not be contiguous.
//   - IDs are never reused within one Graph instance, Clear included.
//
// Returns:
//   - *Node: the minted node, invisible to lookups until AddNode.
//   - string: its ID.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Inspect or pre-populate the node (AddData) before AddNode publishes it.
func (g *Graph) CreateNode(t NodeType) (*Node, string) {
	// AI-HINT: two-step protocol; the returned node is not yet in the graph.
	buf := make([]byte, 0, 24)
	buf = strconv.AppendUint(buf, g.baseID, 10)
	buf = append(buf, '_')
	buf = append(buf, t.String()...)
	id := string(buf)
	g.baseID++

	return newNodeAt(t, id, g.now()), id
}

// AddNode stores n keyed by n.ID(). An existing node with the same ID is
// replaced silently (last write wins).
//
// Errors:
//   - ErrNilNode: n == nil.
//   - ErrEmptyNodeID: n.ID() == "".
//
// Complexity: O(1).
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.ID() == "" {
		return ErrEmptyNodeID
	}
	if _, exists := g.nodes[n.ID()]; exists {
		g.logger.Debug("node replaced", zap.String("node_id", n.ID()))
	}
	g.nodes[n.ID()] = n

	return nil
}

// Node returns the stored node with the given ID, or ErrNodeNotFound.
// The root is not visible here unless it was added explicitly.
// The returned pointer is live; mutating it mutates the stored node.
func (g *Graph) Node(id string) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// HasNode reports whether a node with the given ID is stored.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// NodeIDs returns the IDs of all stored nodes in ascending order.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Nodes returns all stored nodes ordered by ID.
func (g *Graph) Nodes() []*Node {
	ids := g.NodeIDs()
	out := make([]*Node, len(ids))
	for i, id := range ids {
		out[i] = g.nodes[id]
	}

	return out
}

// NodeCount returns the number of stored nodes (root excluded unless added).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// AddData appends v to the payload of the node with the given ID.
//
// Implementation:
//   - Stage 1: Look the node up; a miss is a logged no-op returning ErrNodeNotFound.
//   - Stage 2: Forward to Node.AddData; a mismatch is logged at warn level and returned.
//   - Stage 3: With auto-touch, refresh the node's modification time.
//
// Errors:
//   - ErrNodeNotFound: no such node; nothing changed.
//   - ErrPayloadMismatch: the node's payload variant cannot hold v; nothing changed.
//   - ErrNilValue: v == nil.
//
// Complexity:
//   - Time O(1) amortized, Space O(len(v)).
func (g *Graph) AddData(nodeID string, v Value) error {
	n, ok := g.nodes[nodeID]
	if !ok {
		g.logger.Debug("data append skipped: node not found", zap.String("node_id", nodeID))
		return fmt.Errorf("AddData(%s): %w", nodeID, ErrNodeNotFound)
	}
	if err := n.AddData(v); err != nil {
		kind := "nil"
		if v != nil {
			kind = v.valueKind().String()
		}
		g.logger.Warn("payload rejected",
			zap.String("node_id", nodeID),
			zap.Stringer("payload_kind", n.data.Kind),
			zap.String("value_kind", kind),
		)
		return err
	}
	if g.autoTouch {
		n.SetModifiedAt(g.now())
	}

	return nil
}

// AddTextData appends a text value to the node with the given ID.
func (g *Graph) AddTextData(nodeID, text string) error {
	return g.AddData(nodeID, Text(text))
}

// AddBinaryData appends a copy of data to the node with the given ID.
func (g *Graph) AddBinaryData(nodeID string, data []byte) error {
	return g.AddData(nodeID, Binary(data))
}

// DeleteNode removes the node with the given ID.
//
// Implementation:
//   - Stage 1: Verify presence (ErrNodeNotFound otherwise; nothing changes).
//   - Stage 2: Remove the node together with the records it owns.
//   - Stage 3: Peer records pointing at the node are either left dangling
//     (default) or removed when the graph was built WithCascadeDelete.
//
// Behavior highlights:
//   - Default mode keeps peer records: an undirected mirror on the peer still
//     reports From=peer, To=deleted and stays findable by ID.
//
// Complexity:
//   - Time O(1) default; O(E) with cascade or debug logging (scan of all owned records).
//
// AI-Hints:
//   - Use DanglingEdges() to find what a non-cascading delete left behind.
func (g *Graph) DeleteNode(id string) error {
	// AI-HINT: Non-cascading by default; dangling peer records are documented behavior.
	if _, ok := g.nodes[id]; !ok {
		g.logger.Debug("delete skipped: node not found", zap.String("node_id", id))
		return fmt.Errorf("DeleteNode(%s): %w", id, ErrNodeNotFound)
	}
	delete(g.nodes, id)
	if !g.cascadeDelete && !g.logger.Core().Enabled(zapcore.DebugLevel) {
		return nil
	}

	var removed, dangling int
	for _, peer := range g.nodes {
		for eid, e := range peer.edges {
			if e.To() != id {
				continue
			}
			if !g.cascadeDelete {
				dangling++
				continue
			}
			delete(peer.edges, eid)
			removed++
			if g.autoTouch {
				peer.SetModifiedAt(g.now())
			}
		}
	}
	if dangling > 0 {
		g.logger.Debug("node deleted with dangling peer edges",
			zap.String("node_id", id), zap.Int("dangling", dangling))
	}
	if removed > 0 {
		g.logger.Debug("node deleted with cascade",
			zap.String("node_id", id), zap.Int("removed", removed))
	}

	return nil
}

// Root returns the anchor node, or nil if the graph was built WithoutRoot.
// The anchor lives outside the node map.
func (g *Graph) Root() *Node { return g.root }

// SetRoot replaces the anchor. Passing nil clears it. The node map is not touched.
func (g *Graph) SetRoot(n *Node) { g.root = n }
