// File: node.go
// Role: Node: an identified vertex owning its outgoing Edge records and one payload variant.
//
// Determinism:
//   - Edges() returns records sorted by Edge.ID asc.
//
// Ownership:
//   - edges holds every record whose source is this node. No check is made that
//     an added record's From equals the node ID.

package core

import (
	"fmt"
	"sort"
	"time"
)

// Node is a vertex with an ID, a type tag, a payload and owned edges.
type Node struct {
	id         string
	nodeType   NodeType
	edges      map[string]*Edge
	data       NodeData
	createdAt  int64
	modifiedAt int64
}

// NewNode builds a node of type t whose payload is the empty variant for t.
func NewNode(t NodeType, id string) *Node {
	return newNodeAt(t, id, time.Now().Unix())
}

func newNodeAt(t NodeType, id string, now int64) *Node {
	return &Node{
		id:         id,
		nodeType:   t,
		edges:      make(map[string]*Edge),
		data:       NewNodeData(t),
		createdAt:  now,
		modifiedAt: now,
	}
}

// ID returns the node identifier.
func (n *Node) ID() string { return n.id }

// SetID replaces the identifier. A Graph keeps the node under its old key
// until it is added again.
func (n *Node) SetID(id string) { n.id = id }

// Type returns the node type.
func (n *Node) Type() NodeType { return n.nodeType }

// SetType replaces the type tag. The payload variant is left as it is.
func (n *Node) SetType(t NodeType) { n.nodeType = t }

// Data returns the payload. The lists are shared with the node.
func (n *Node) Data() NodeData { return n.data }

// SetData replaces the payload wholesale.
func (n *Node) SetData(d NodeData) { n.data = d }

// CreatedAt returns the construction time in Unix seconds.
func (n *Node) CreatedAt() int64 { return n.createdAt }

// ModifiedAt returns the caller-maintained modification time in Unix seconds.
func (n *Node) ModifiedAt() int64 { return n.modifiedAt }

// SetModifiedAt overwrites the modification time.
func (n *Node) SetModifiedAt(sec int64) { n.modifiedAt = sec }

// Touch sets the modification time to the current wall-clock second.
func (n *Node) Touch() { n.modifiedAt = time.Now().Unix() }

// AddEdge stores e keyed by its own ID, overwriting any record with that ID.
// A nil edge is ignored.
func (n *Node) AddEdge(e *Edge) {
	if e == nil {
		return
	}
	n.edges[e.ID()] = e
}

// RemoveEdge deletes the record with the given ID; absent IDs are a no-op.
func (n *Node) RemoveEdge(id string) { delete(n.edges, id) }

// Edge returns the owned record with the given ID, or ErrEdgeNotFound.
// The returned pointer is live: mutating it mutates the stored record.
func (n *Node) Edge(id string) (*Edge, error) {
	e, ok := n.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// HasEdge reports whether the node owns a record with the given ID.
func (n *Node) HasEdge(id string) bool {
	_, ok := n.edges[id]

	return ok
}

// Edges returns all owned records sorted by ID. An empty slice means the node
// has no edges.
// Complexity: O(d·log d).
func (n *Node) Edges() []*Edge {
	out := make([]*Edge, 0, len(n.edges))
	for _, e := range n.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// EdgeCount returns the number of owned records.
func (n *Node) EdgeCount() int { return len(n.edges) }

// AddData appends v to the list of the payload variant that holds its kind.
// A value the variant cannot hold is rejected with ErrPayloadMismatch and the
// payload is left unchanged.
func (n *Node) AddData(v Value) error {
	if v == nil {
		return fmt.Errorf("AddData(%s): %w", n.id, ErrNilValue)
	}
	if !n.data.Accepts(v) {
		return fmt.Errorf("AddData(%s): %s value into %s payload: %w",
			n.id, v.valueKind(), n.data.Kind, ErrPayloadMismatch)
	}

	switch val := v.(type) {
	case Text:
		n.data.Text = append(n.data.Text, string(val))
	case Binary:
		n.data.Binary = append(n.data.Binary, append([]byte(nil), val...))
	}

	return nil
}

// Clone returns a deep copy: edge records and payload buffers are duplicated.
func (n *Node) Clone() *Node {
	c := &Node{
		id:         n.id,
		nodeType:   n.nodeType,
		edges:      make(map[string]*Edge, len(n.edges)),
		data:       n.data.clone(),
		createdAt:  n.createdAt,
		modifiedAt: n.modifiedAt,
	}
	for id, e := range n.edges {
		c.edges[id] = e.Clone()
	}

	return c
}
