// File: methods_edges.go
// Role: Edge lifecycle & queries: AddUndirectedEdge/AddDirectedEdge/Edge/EdgesOf/Edges,
//       setters by edge ID, DeleteEdge, FilterEdges, DanglingEdges.
// Determinism:
//   - Edge IDs are derived: "<from>_<to>_directed" or "<from>_<to>_undirected".
//   - Lookup by ID resolves ties by the smallest owning node ID.
//   - Edges() returns records sorted by (ID, From) asc.
// Storage:
//   - The Graph holds no edges; every record lives in its source Node's map.
// AI-HINT (file):
//   - An undirected connection is TWO records sharing one ID; setters update both
//     unless the graph was built WithSingleSideMutation.
//   - A missing endpoint on AddUndirectedEdge skips only that side (no rollback).

package core

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// edgeID derives the identifier of a connection from its endpoints and kind.
func edgeID(from, to string, t EdgeType) string {
	return from + "_" + to + "_" + t.String()
}

// AddUndirectedEdge connects a and b with a mirrored pair of records.
//
// Implementation:
//   - Stage 1: Derive id "<a>_<b>_undirected"; in strict mode reject an ID already in use.
//   - Stage 2: Build a→b and its Reverse() b→a, same ID.
//   - Stage 3: Store a→b into a and b→a into b; a missing side is skipped.
//
// Behavior highlights:
//   - Partial connections are possible and are not rolled back. The returned
//     error joins one wrapped ErrNodeNotFound per missing side.
//   - Re-adding the same pair overwrites both records (non-strict mode).
//
// Returns:
//   - string: the shared edge ID (also on partial failure).
//   - error: nil, ErrEdgeIDConflict, or joined ErrNodeNotFound values.
//
// Complexity:
//   - Time O(1); O(E) in strict mode for the ID check.
func (g *Graph) AddUndirectedEdge(a, b string) (string, error) {
	// AI-HINT: Two records, one ID. errors.Is(err, ErrNodeNotFound) means a partial connection.
	id := edgeID(a, b, EdgeUndirected)
	if g.strictEdgeIDs && g.HasEdge(id) {
		return "", fmt.Errorf("AddUndirectedEdge(%s): %w", id, ErrEdgeIDConflict)
	}

	now := g.now()
	e := newEdgeAt(id, a, b, EdgeUndirected, now)
	mirror := e.Reverse()

	var errs []error
	if err := g.attach(a, e, now); err != nil {
		errs = append(errs, fmt.Errorf("AddUndirectedEdge(%s): start %s: %w", id, a, err))
	}
	if err := g.attach(b, mirror, now); err != nil {
		errs = append(errs, fmt.Errorf("AddUndirectedEdge(%s): end %s: %w", id, b, err))
	}
	if len(errs) > 0 {
		g.logger.Debug("undirected edge stored partially",
			zap.String("edge_id", id), zap.Int("missing_sides", len(errs)))
	}

	return id, errors.Join(errs...)
}

// AddDirectedEdge stores one record a→b, owned by a only. Node b gets no
// record and has no knowledge of the edge.
//
// Errors:
//   - ErrNodeNotFound: a is not stored; nothing changed.
//   - ErrEdgeIDConflict: strict mode and the derived ID is in use.
//
// Complexity: O(1); O(E) in strict mode.
func (g *Graph) AddDirectedEdge(a, b string) (string, error) {
	id := edgeID(a, b, EdgeDirected)
	if g.strictEdgeIDs && g.HasEdge(id) {
		return "", fmt.Errorf("AddDirectedEdge(%s): %w", id, ErrEdgeIDConflict)
	}

	now := g.now()
	if err := g.attach(a, newEdgeAt(id, a, b, EdgeDirected, now), now); err != nil {
		g.logger.Debug("directed edge skipped: source not found", zap.String("edge_id", id))
		return id, fmt.Errorf("AddDirectedEdge(%s): start %s: %w", id, a, err)
	}

	return id, nil
}

// attach stores e into the node with the given ID.
func (g *Graph) attach(nodeID string, e *Edge, now int64) error {
	n, ok := g.nodes[nodeID]
	if !ok {
		return ErrNodeNotFound
	}
	n.AddEdge(e)
	if g.autoTouch {
		n.SetModifiedAt(now)
	}

	return nil
}

// Edge returns the record with the given ID, or ErrEdgeNotFound.
//
// Contract:
//   - For an undirected pair the record owned by the smaller node ID is returned.
//   - The returned *Edge is live; prefer the Graph setters so mirrors stay in sync.
//
// Complexity: O(V).
func (g *Graph) Edge(id string) (*Edge, error) {
	e, _ := g.firstRecord(id)
	if e == nil {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// HasEdge reports whether any stored node owns a record with the given ID.
// Complexity: O(V).
func (g *Graph) HasEdge(id string) bool {
	for _, n := range g.nodes {
		if _, ok := n.edges[id]; ok {
			return true
		}
	}

	return false
}

// EdgesOf returns the records owned by the given node, sorted by ID.
// An empty slice means the node has no edges.
func (g *Graph) EdgesOf(nodeID string) ([]*Edge, error) {
	n, ok := g.nodes[nodeID]
	if !ok {
		return nil, fmt.Errorf("EdgesOf(%s): %w", nodeID, ErrNodeNotFound)
	}

	return n.Edges(), nil
}

// Edges returns every stored record sorted by (ID, From). An undirected
// connection contributes two records.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0)
	for _, n := range g.nodes {
		for _, e := range n.edges {
			out = append(out, e)
		}
	}
	sortRecords(out)

	return out
}

// EdgeCount returns the number of stored records.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	total := 0
	for _, n := range g.nodes {
		total += len(n.edges)
	}

	return total
}

// SetEdgeType changes the direction kind of the edge with the given ID.
func (g *Graph) SetEdgeType(id string, t EdgeType) error {
	return g.mutate("SetEdgeType", id, func(e *Edge) { e.SetType(t) })
}

// SetEdgeWeight sets the weight of the edge with the given ID.
func (g *Graph) SetEdgeWeight(id string, w float64) error {
	return g.mutate("SetEdgeWeight", id, func(e *Edge) { e.SetWeight(w) })
}

// SetEdgeLabel sets the label of the edge with the given ID.
func (g *Graph) SetEdgeLabel(id, label string) error {
	return g.mutate("SetEdgeLabel", id, func(e *Edge) { e.SetLabel(label) })
}

// SetEdgeBlocked flips the disabled flag of the edge with the given ID.
func (g *Graph) SetEdgeBlocked(id string, blocked bool) error {
	return g.mutate("SetEdgeBlocked", id, func(e *Edge) { e.SetBlocked(blocked) })
}

// TouchEdge refreshes UpdatedAt of the edge with the given ID from the graph clock.
func (g *Graph) TouchEdge(id string) error {
	now := g.now()

	return g.mutate("TouchEdge", id, func(e *Edge) { e.touchAt(now) })
}

// mutate applies fn to the records carrying id.
//
// Mirrored mode (default) changes every record with the ID, so both sides of
// an undirected pair agree. Single-side mode changes only the record Edge(id)
// returns, leaving the mirror stale.
func (g *Graph) mutate(method, id string, fn func(*Edge)) error {
	var recs []*Edge
	if g.mirrorMutations {
		recs = g.records(id)
	} else if e, _ := g.firstRecord(id); e != nil {
		recs = []*Edge{e}
	}
	if len(recs) == 0 {
		g.logger.Debug("edge mutation skipped: edge not found",
			zap.String("method", method), zap.String("edge_id", id))
		return fmt.Errorf("%s(%s): %w", method, id, ErrEdgeNotFound)
	}

	now := g.now()
	for _, e := range recs {
		fn(e)
		if g.autoTouch {
			e.touchAt(now)
		}
	}

	return nil
}

// DeleteEdge removes the edge with the given ID, dispatching on its kind:
//
//   - EdgeUndirected: the ID is removed from both endpoint nodes.
//   - EdgeDirected: the ID is removed from the source node only.
//   - EdgeNoType: nothing happens.
//
// Errors:
//   - ErrEdgeNotFound: no node owns a record with this ID.
//
// Complexity: O(V).
func (g *Graph) DeleteEdge(id string) error {
	// AI-HINT: Endpoints are read from the first record; a missing endpoint node is skipped.
	e, _ := g.firstRecord(id)
	if e == nil {
		g.logger.Debug("edge delete skipped: edge not found", zap.String("edge_id", id))
		return fmt.Errorf("DeleteEdge(%s): %w", id, ErrEdgeNotFound)
	}

	from, to := e.From(), e.To()
	switch e.Type() {
	case EdgeUndirected:
		g.detach(from, id)
		g.detach(to, id)
	case EdgeDirected:
		g.detach(from, id)
	default:
		g.logger.Debug("edge delete skipped: edge has no type", zap.String("edge_id", id))
	}

	return nil
}

// detach removes the record id from the node with the given ID, if stored.
func (g *Graph) detach(nodeID, id string) {
	n, ok := g.nodes[nodeID]
	if !ok {
		return
	}
	if _, had := n.edges[id]; !had {
		return
	}
	n.RemoveEdge(id)
	if g.autoTouch {
		n.SetModifiedAt(g.now())
	}
}

// FilterEdges removes every record for which keep returns false and reports
// how many records were removed. Mirrors are judged independently.
//
// Contract:
//   - keep is pure; it must not mutate the graph.
//
// Complexity: O(E).
func (g *Graph) FilterEdges(keep func(*Edge) bool) int {
	removed := 0
	for _, n := range g.nodes {
		for id, e := range n.edges {
			if !keep(e) {
				delete(n.edges, id)
				removed++
			}
		}
	}

	return removed
}

// DanglingEdges returns the records whose From or To no longer resolves to a
// stored node, sorted by (ID, From). A non-cascading DeleteNode produces them.
// Complexity: O(E log E).
func (g *Graph) DanglingEdges() []*Edge {
	out := make([]*Edge, 0)
	for _, n := range g.nodes {
		for _, e := range n.edges {
			if !g.HasNode(e.From()) || !g.HasNode(e.To()) {
				out = append(out, e)
			}
		}
	}
	sortRecords(out)

	return out
}

// firstRecord returns the record with the given ID owned by the smallest node
// ID, plus that owner.
func (g *Graph) firstRecord(id string) (*Edge, string) {
	var (
		best  *Edge
		owner string
	)
	for nid, n := range g.nodes {
		e, ok := n.edges[id]
		if !ok {
			continue
		}
		if best == nil || nid < owner {
			best, owner = e, nid
		}
	}

	return best, owner
}

// records returns every record with the given ID, ordered by owning node ID.
func (g *Graph) records(id string) []*Edge {
	type owned struct {
		owner string
		e     *Edge
	}
	var found []owned
	for nid, n := range g.nodes {
		if e, ok := n.edges[id]; ok {
			found = append(found, owned{owner: nid, e: e})
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].owner < found[j].owner })

	out := make([]*Edge, len(found))
	for i, f := range found {
		out[i] = f.e
	}

	return out
}

// sortRecords orders records by ID, then by From.
func sortRecords(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].id != es[j].id {
			return es[i].id < es[j].id
		}
		return es[i].from < es[j].from
	})
}
