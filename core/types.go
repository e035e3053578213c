// Package core defines the central Graph, Node, and Edge types of the
// property graph, together with the payload variants a Node may carry.
//
// This file declares NodeType, EdgeType, DataKind, NodeData, the closed
// Value variant, sentinel errors, Graph, GraphOption, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrNilNode          - node pointer is nil.
//	ErrEmptyNodeID      - node ID is the empty string.
//	ErrNodeNotFound     - requested node does not exist.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrPayloadMismatch  - appended value does not fit the node's payload variant.
//	ErrEdgeIDConflict   - edge ID already in use (strict mode only).
//	ErrNilValue         - appended value is nil.
package core

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilNode indicates that a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("core: node is nil")

	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrPayloadMismatch indicates a value whose kind the node's payload variant cannot hold.
	ErrPayloadMismatch = errors.New("core: payload kind mismatch")

	// ErrEdgeIDConflict indicates an edge ID that is already held by some node (strict mode).
	ErrEdgeIDConflict = errors.New("core: edge ID already in use")

	// ErrNilValue indicates a nil Value passed to AddData.
	ErrNilValue = errors.New("core: value is nil")
)

// RootNodeID is the reserved identifier of the anchor node built by NewGraph.
const RootNodeID = "0_root"

// firstBaseID is the first counter value handed out by CreateNode.
const firstBaseID uint64 = 1

// NodeType classifies a node and decides which payload variant it starts with.
type NodeType uint8

const (
	// UntypedNode is the zero value; it carries no payload.
	UntypedNode NodeType = iota
	// PrimaryNode marks a node with a central role; it carries no payload.
	PrimaryNode
	// DataNode holds both text and binary values.
	DataNode
	// TextNode holds text values only.
	TextNode
	// BinaryNode holds binary values only.
	BinaryNode
)

// String returns the display form used inside minted node IDs.
func (t NodeType) String() string {
	switch t {
	case PrimaryNode:
		return "Primary"
	case DataNode:
		return "Data"
	case TextNode:
		return "Text"
	case BinaryNode:
		return "Binary"
	default:
		return "None"
	}
}

// EdgeType is the direction kind of an Edge.
type EdgeType uint8

const (
	// EdgeNoType denotes an unset or invalid kind; normal construction never produces it.
	EdgeNoType EdgeType = iota
	// EdgeDirected is a one-way connection owned only by its source node.
	EdgeDirected
	// EdgeUndirected is one record of a mirrored pair.
	EdgeUndirected
)

// String returns the suffix used in derived edge IDs.
func (t EdgeType) String() string {
	switch t {
	case EdgeDirected:
		return "directed"
	case EdgeUndirected:
		return "undirected"
	default:
		return "none"
	}
}

// DataKind names a payload variant.
type DataKind uint8

const (
	// NoData holds nothing; every append is rejected.
	NoData DataKind = iota
	// TextData holds a list of strings.
	TextData
	// BinaryData holds a list of byte sequences.
	BinaryData
	// CompositeData holds both lists.
	CompositeData
)

// String returns a lower-case name for logs and error messages.
func (k DataKind) String() string {
	switch k {
	case TextData:
		return "text"
	case BinaryData:
		return "binary"
	case CompositeData:
		return "composite"
	default:
		return "none"
	}
}

// NodeData is the payload of a Node. Kind selects which of Text and Binary
// are in use; the other stays nil.
type NodeData struct {
	Kind   DataKind
	Text   []string
	Binary [][]byte
}

// NewNodeData returns the empty payload variant that belongs to t.
func NewNodeData(t NodeType) NodeData {
	switch t {
	case DataNode:
		return NodeData{Kind: CompositeData, Text: []string{}, Binary: [][]byte{}}
	case TextNode:
		return NodeData{Kind: TextData, Text: []string{}}
	case BinaryNode:
		return NodeData{Kind: BinaryData, Binary: [][]byte{}}
	default:
		return NodeData{Kind: NoData}
	}
}

// Accepts reports whether v may be appended to this payload.
func (d NodeData) Accepts(v Value) bool {
	if v == nil {
		return false
	}
	switch d.Kind {
	case CompositeData:
		return true
	case TextData, BinaryData:
		return v.valueKind() == d.Kind
	default:
		return false
	}
}

// clone deep-copies both lists, including each byte slice.
func (d NodeData) clone() NodeData {
	out := NodeData{Kind: d.Kind}
	if d.Text != nil {
		out.Text = append(make([]string, 0, len(d.Text)), d.Text...)
	}
	if d.Binary != nil {
		out.Binary = make([][]byte, len(d.Binary))
		for i, b := range d.Binary {
			out.Binary[i] = append([]byte(nil), b...)
		}
	}

	return out
}

// Value is the closed set of things that can be appended to a node payload.
// Only Text and Binary implement it.
type Value interface {
	valueKind() DataKind
}

// Text is a text value for AddData.
type Text string

// Binary is a binary value for AddData. The slice is copied on append.
type Binary []byte

func (Text) valueKind() DataKind   { return TextData }
func (Binary) valueKind() DataKind { return BinaryData }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLogger sets the diagnostics sink. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithClock replaces time.Now as the timestamp source.
func WithClock(now func() time.Time) GraphOption {
	return func(g *Graph) {
		if now != nil {
			g.clock = now
		}
	}
}

// WithoutRoot builds the Graph with no anchor node.
func WithoutRoot() GraphOption {
	return func(g *Graph) { g.withRoot = false }
}

// WithCascadeDelete makes DeleteNode also remove every peer record pointing
// at the deleted node. Without it those records are left dangling.
func WithCascadeDelete() GraphOption {
	return func(g *Graph) { g.cascadeDelete = true }
}

// WithSingleSideMutation restores the legacy edge setter behavior: only the
// first record found for an ID is changed, so an undirected mirror goes stale.
func WithSingleSideMutation() GraphOption {
	return func(g *Graph) { g.mirrorMutations = false }
}

// WithStrictEdgeIDs rejects edge creation when the derived ID is already held
// by any node.
func WithStrictEdgeIDs() GraphOption {
	return func(g *Graph) { g.strictEdgeIDs = true }
}

// WithAutoTouch makes graph-level mutations refresh the modification time of
// every node and edge record they change.
func WithAutoTouch() GraphOption {
	return func(g *Graph) { g.autoTouch = true }
}

// Graph is the in-memory property graph.
//
// It owns every Node by ID; each Node owns its outgoing Edge records. The
// Graph never stores edges itself, it only indexes into node-owned maps.
// A Graph is not safe for concurrent use; callers serialize access.
type Graph struct {
	logger *zap.Logger
	clock  func() time.Time

	// Policy flags
	withRoot        bool // build the 0_root anchor
	cascadeDelete   bool // DeleteNode cleans peer records
	mirrorMutations bool // edge setters update both undirected records
	strictEdgeIDs   bool // reject duplicate edge IDs
	autoTouch       bool // refresh timestamps on graph-level mutation

	// Storage
	baseID uint64           // next counter value for CreateNode
	nodes  map[string]*Node // node ID → Node
	root   *Node            // anchor, held outside nodes
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph has a Primary root "0_root", mirrors undirected edge
// mutations, keeps dangling edges on node deletion, and logs nothing.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		logger:          zap.NewNop(),
		clock:           time.Now,
		withRoot:        true,
		mirrorMutations: true,
		baseID:          firstBaseID,
		nodes:           make(map[string]*Node),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.withRoot {
		g.root = newNodeAt(PrimaryNode, RootNodeID, g.now())
	}

	return g
}

// now returns the graph clock in Unix seconds.
func (g *Graph) now() int64 { return g.clock().Unix() }
