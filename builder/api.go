// SPDX-License-Identifier: MIT
// Package: propgraph/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Apply runs the same pipeline against a caller-owned graph.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//
// AI-Hints:
//   - Compose several constructors in one call; each mints its own fresh nodes.
//   - Use WithSeed(...) together with a sampling WeightFn to freeze weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/propgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST validate parameters before touching the
// graph and return sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) plus the sum of constructor costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := run("BuildGraph", g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply resolves bopts and runs cons against an existing graph g.
// On error g keeps whatever the failing constructor had already added.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}

	return run("Apply", g, newBuilderConfig(bopts...), cons)
}

func run(method string, g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("%s: nil constructor at index %d: %w", method, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}
