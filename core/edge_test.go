// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/propgraph/core"
)

// TestEdge_Defaults ASSERTS optional fields report absence before any setter runs.
func TestEdge_Defaults(t *testing.T) {
	e := core.NewEdge("a_b_directed", "a", "b", core.EdgeDirected)

	assert.Equal(t, "a_b_directed", e.ID())
	assert.Equal(t, core.EdgeDirected, e.Type())
	assert.Equal(t, "a", e.From())
	assert.Equal(t, "b", e.To())
	assert.False(t, e.Blocked())

	_, ok := e.Weight()
	assert.False(t, ok, "weight must be absent by default")
	_, ok = e.Label()
	assert.False(t, ok, "label must be absent by default")
	assert.Equal(t, e.CreatedAt(), e.UpdatedAt())
}

// TestEdge_SetterRoundTrip ASSERTS every getter reflects the last-set value.
func TestEdge_SetterRoundTrip(t *testing.T) {
	e := core.NewEdge("x", "a", "b", core.EdgeUndirected)

	e.SetType(core.EdgeDirected)
	e.SetType(core.EdgeNoType)
	e.SetWeight(Weight2_5)
	e.SetWeight(Weight7)
	e.SetLabel("first")
	e.SetLabel(LabelRoad)
	e.SetBlocked(true)
	e.SetBlocked(false)
	e.SetBlocked(true)
	e.SetID("y")
	e.SetFrom("c")
	e.SetTo("d")

	assert.Equal(t, core.EdgeNoType, e.Type())
	w, ok := e.Weight()
	assert.True(t, ok)
	assert.Equal(t, Weight7, w)
	l, ok := e.Label()
	assert.True(t, ok)
	assert.Equal(t, LabelRoad, l)
	assert.True(t, e.Blocked())
	assert.Equal(t, "y", e.ID())
	assert.Equal(t, "c", e.From())
	assert.Equal(t, "d", e.To())
}

// TestEdge_SettersDoNotTouch ASSERTS UpdatedAt moves only through Touch.
func TestEdge_SettersDoNotTouch(t *testing.T) {
	e := core.NewEdge("x", "a", "b", core.EdgeDirected)
	before := e.UpdatedAt()

	e.SetWeight(Weight7)
	e.SetLabel(LabelRoad)
	e.SetBlocked(true)
	e.SetType(core.EdgeUndirected)
	assert.Equal(t, before, e.UpdatedAt())

	e.Touch()
	assert.GreaterOrEqual(t, e.UpdatedAt(), before)
	assert.Equal(t, before, e.CreatedAt(), "CreatedAt is never refreshed")
}

// TestEdge_Reverse ASSERTS the mirror swaps endpoints and keeps everything else.
func TestEdge_Reverse(t *testing.T) {
	e := core.NewEdge("a_b_undirected", "a", "b", core.EdgeUndirected)
	e.SetWeight(Weight2_5)
	e.SetLabel(LabelRoad)
	e.SetBlocked(true)

	r := e.Reverse()
	require.NotSame(t, e, r)
	assert.Equal(t, "b", r.From())
	assert.Equal(t, "a", r.To())
	assert.Equal(t, e.ID(), r.ID())
	assert.Equal(t, e.Type(), r.Type())
	assert.Equal(t, e.Blocked(), r.Blocked())
	assert.Equal(t, e.CreatedAt(), r.CreatedAt())
	assert.Equal(t, e.UpdatedAt(), r.UpdatedAt())
	w, _ := r.Weight()
	assert.Equal(t, Weight2_5, w)
	l, _ := r.Label()
	assert.Equal(t, LabelRoad, l)

	// Independent records.
	r.SetLabel("other")
	l, _ = e.Label()
	assert.Equal(t, LabelRoad, l)
}
