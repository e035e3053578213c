// SPDX-License-Identifier: MIT
// Package: propgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/propgraph/core"
)

// BuilderOption customizes constructor behavior by mutating a builderConfig
// before construction begins.
type BuilderOption func(*builderConfig)

// WithNodeType sets the type of every node minted by the constructors.
// The type also selects the payload variant of those nodes.
func WithNodeType(t core.NodeType) BuilderOption {
	return func(c *builderConfig) {
		c.nodeType = t
	}
}

// WithDirected makes constructors emit single directed records instead of
// undirected mirrored pairs.
func WithDirected() BuilderOption {
	return func(c *builderConfig) {
		c.directed = true
	}
}

// WithRand provides an explicit RNG for weight sampling. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock sampled weights.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the per-connection weight generator. The value is applied
// through Graph.SetEdgeWeight, so the graph's mutation mode decides whether
// both records of an undirected pair receive it. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithLabel sets a label on every emitted connection. An empty label means
// "no label".
func WithLabel(label string) BuilderOption {
	return func(c *builderConfig) {
		c.label = label
	}
}
