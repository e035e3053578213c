// File: edge.go
// Role: Edge record: a single directed connection owned by its source Node.
//
// Timestamps:
//   - createdAt/updatedAt are Unix seconds captured at construction.
//   - No setter refreshes updatedAt; only Touch does. Callers orchestrate both.

package core

import "time"

// Edge is one connection record from one node ID to another.
//
// An undirected connection is two Edge records sharing one ID, one owned by
// each endpoint and each oriented from its owner to the peer. Endpoint IDs are
// plain strings and are not checked against any Graph.
type Edge struct {
	id        string
	edgeType  EdgeType
	from      string
	to        string
	weight    float64
	hasWeight bool
	label     string
	hasLabel  bool
	blocked   bool
	createdAt int64
	updatedAt int64
}

// NewEdge builds an edge record with no weight, no label and blocked=false.
func NewEdge(id, from, to string, t EdgeType) *Edge {
	return newEdgeAt(id, from, to, t, time.Now().Unix())
}

func newEdgeAt(id, from, to string, t EdgeType, now int64) *Edge {
	return &Edge{
		id:        id,
		edgeType:  t,
		from:      from,
		to:        to,
		createdAt: now,
		updatedAt: now,
	}
}

// ID returns the edge identifier.
func (e *Edge) ID() string { return e.id }

// SetID replaces the identifier. Owning maps are keyed by the old ID until
// the edge is re-added.
func (e *Edge) SetID(id string) { e.id = id }

// Type returns the direction kind.
func (e *Edge) Type() EdgeType { return e.edgeType }

// SetType replaces the direction kind.
func (e *Edge) SetType(t EdgeType) { e.edgeType = t }

// From returns the start node ID.
func (e *Edge) From() string { return e.from }

// SetFrom replaces the start node ID.
func (e *Edge) SetFrom(id string) { e.from = id }

// To returns the end node ID.
func (e *Edge) To() string { return e.to }

// SetTo replaces the end node ID.
func (e *Edge) SetTo(id string) { e.to = id }

// Weight returns the weight and whether one was ever set.
func (e *Edge) Weight() (float64, bool) { return e.weight, e.hasWeight }

// SetWeight sets or overwrites the weight. There is no way back to "unset".
func (e *Edge) SetWeight(w float64) {
	e.weight = w
	e.hasWeight = true
}

// Label returns the label and whether one was ever set.
func (e *Edge) Label() (string, bool) { return e.label, e.hasLabel }

// SetLabel sets or overwrites the label.
func (e *Edge) SetLabel(label string) {
	e.label = label
	e.hasLabel = true
}

// Blocked reports whether the edge is logically disabled.
func (e *Edge) Blocked() bool { return e.blocked }

// SetBlocked flips the disabled flag.
func (e *Edge) SetBlocked(blocked bool) { e.blocked = blocked }

// CreatedAt returns the construction time in Unix seconds.
func (e *Edge) CreatedAt() int64 { return e.createdAt }

// UpdatedAt returns the last explicit refresh time in Unix seconds.
func (e *Edge) UpdatedAt() int64 { return e.updatedAt }

// Touch sets UpdatedAt to the current wall-clock second.
func (e *Edge) Touch() { e.updatedAt = time.Now().Unix() }

func (e *Edge) touchAt(now int64) { e.updatedAt = now }

// Reverse returns the peer-side record: a copy with From and To swapped and
// every other field, the ID included, preserved.
func (e *Edge) Reverse() *Edge {
	r := e.Clone()
	r.from, r.to = e.to, e.from

	return r
}

// Clone returns an independent copy of the record.
func (e *Edge) Clone() *Edge {
	c := *e

	return &c
}
