// SPDX-License-Identifier: MIT
// Package: propgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • nodeType = core.PrimaryNode
//   • directed = false (undirected mirrored pairs)
//   • rng      = nil   (no randomness unless seeded)
//   • weightFn = nil   (edges carry no weight)
//   • label    = ""    (edges carry no label)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/propgraph/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	nodeType core.NodeType
	directed bool
	rng      *rand.Rand
	weightFn WeightFn
	label    string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nodeType: core.PrimaryNode,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
