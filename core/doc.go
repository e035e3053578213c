// Package core provides an in-memory, mutable property graph: nodes joined
// by typed, optionally weighted edges, where nodes also carry text and/or
// binary payloads.
//
// The model G = (V,E) is split by ownership:
//
//   - Graph owns every Node by ID and mints node IDs ("<counter>_<Type>").
//   - Node owns its outgoing Edge records, keyed by edge ID.
//   - The Graph never stores edges itself; every edge lookup indexes into
//     node-owned maps.
//   - An undirected connection is two records sharing one ID
//     ("<a>_<b>_undirected"), one per endpoint, each oriented owner → peer.
//   - A directed connection is one record ("<a>_<b>_directed") owned by its source.
//
// Node lifecycle (two-step):
//
//	n, id := g.CreateNode(core.TextNode) // mint; counter advances; not stored
//	_ = n.AddData(core.Text("draft"))   // optional inspection/pre-population
//	_ = g.AddNode(n)                     // publish; last write wins on ID clash
//
// Payload variants (fixed by node type at creation):
//
//	PrimaryNode, UntypedNode → NoData        (every append rejected)
//	TextNode                 → TextData      (Text only)
//	BinaryNode               → BinaryData    (Binary only)
//	DataNode                 → CompositeData (Text and Binary)
//
// A rejected append returns ErrPayloadMismatch and leaves the payload as it was.
//
// Configuration Options (GraphOption):
//
//	– WithLogger(*zap.Logger)   diagnostics sink (default no-op)
//	– WithClock(func() time.Time) timestamp source (default time.Now)
//	– WithoutRoot()             no "0_root" anchor
//	– WithCascadeDelete()       DeleteNode also removes peer records pointing at the node
//	– WithSingleSideMutation()  legacy: setters change one record of an undirected pair
//	– WithStrictEdgeIDs()       reject edge creation when the derived ID is in use
//	– WithAutoTouch()           graph-level mutations refresh modification times
//
// Best-effort policy:
//
//	Operations on a missing node or edge never change state. They return a
//	wrapped ErrNodeNotFound / ErrEdgeNotFound, which callers may ignore.
//
// Documented legacy behaviors kept by default:
//
//   - DeleteNode leaves dangling peer records (see DanglingEdges).
//   - Edge setters never refresh UpdatedAt; only Touch/TouchEdge do.
//   - Node.ModifiedAt changes only through SetModifiedAt/Touch.
//
// Concurrency:
//
//	A Graph is not safe for concurrent use. A single owner drives all calls;
//	callers that share a Graph must serialize access themselves.
//
// Errors:
//
//	ErrNilNode          – nil node passed to AddNode
//	ErrEmptyNodeID      – zero-length node ID
//	ErrNodeNotFound     – missing node
//	ErrEdgeNotFound     – missing edge
//	ErrPayloadMismatch  – value kind not held by the payload variant
//	ErrEdgeIDConflict   – duplicate edge ID in strict mode
//	ErrNilValue         – nil Value passed to AddData
package core
