// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for propgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures (fixed and stepping clocks, minted node pairs).
//   - Keep fixture constants in one place so test bodies carry no magic values.

package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/propgraph/core"
)

// Fixed instants used across core tests (Unix seconds).
const (
	EpochStart = int64(1_700_000_000)
	EpochLater = int64(1_700_000_600)
)

// Common payload fixtures.
const (
	TextHello = "hello"
	TextWorld = "world"
	LabelRoad = "road"
	Weight2_5 = 2.5
	Weight7   = 7.0
)

// BlobPNG is a tiny binary payload fixture.
var BlobPNG = []byte{0x89, 0x50, 0x4e, 0x47}

// stepClock is a manually advanced clock for timestamp assertions.
type stepClock struct{ sec int64 }

func newStepClock(sec int64) *stepClock { return &stepClock{sec: sec} }

// Now returns the current instant of the clock.
func (c *stepClock) Now() time.Time { return time.Unix(c.sec, 0) }

// Set moves the clock to sec.
func (c *stepClock) Set(sec int64) { c.sec = sec }

// newTestGraph RETURNS a Graph on a fixed clock at EpochStart plus opts.
func newTestGraph(opts ...core.GraphOption) (*core.Graph, *stepClock) {
	clk := newStepClock(EpochStart)
	all := append([]core.GraphOption{core.WithClock(clk.Now)}, opts...)

	return core.NewGraph(all...), clk
}

// mustStore MINTS a node of type t, stores it and returns its ID.
func mustStore(t *testing.T, g *core.Graph, nt core.NodeType) string {
	t.Helper()
	n, id := g.CreateNode(nt)
	require.NoError(t, g.AddNode(n), "AddNode(%s)", id)

	return id
}

// mustNode RETURNS the stored node with the given ID or fails the test.
func mustNode(t *testing.T, g *core.Graph, id string) *core.Node {
	t.Helper()
	n, err := g.Node(id)
	require.NoError(t, err, "Node(%s)", id)

	return n
}

// observedLogger RETURNS a debug-level zap logger and the sink it writes to.
func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	sink, logs := observer.New(zapcore.DebugLevel)

	return zap.New(sink), logs
}
