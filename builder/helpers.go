// SPDX-License-Identifier: MIT
// Package: propgraph/builder
//
// helpers.go - node minting and connection helpers shared by constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/propgraph/core"
)

// mintNodes creates and stores n nodes of cfg.nodeType, returning their IDs
// in minting order.
// Complexity: O(n).
func mintNodes(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		node, id := g.CreateNode(cfg.nodeType)
		if err := g.AddNode(node); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w: %w", method, id, ErrConstructFailed, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// connect adds one connection u→v (a mirrored pair unless cfg.directed) and
// applies the configured weight and label to every record of it.
func connect(g *core.Graph, cfg builderConfig, method, u, v string) error {
	var (
		id  string
		err error
	)
	if cfg.directed {
		id, err = g.AddDirectedEdge(u, v)
	} else {
		id, err = g.AddUndirectedEdge(u, v)
	}
	if err != nil {
		return fmt.Errorf("%s: connect(%s→%s): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	if cfg.weightFn != nil {
		w := cfg.weightFn(cfg.rng)
		if err = g.SetEdgeWeight(id, w); err != nil {
			return fmt.Errorf("%s: SetEdgeWeight(%s, %g): %w: %w", method, id, w, ErrConstructFailed, err)
		}
	}
	if cfg.label != "" {
		if err = g.SetEdgeLabel(id, cfg.label); err != nil {
			return fmt.Errorf("%s: SetEdgeLabel(%s): %w: %w", method, id, ErrConstructFailed, err)
		}
	}

	return nil
}

// tooFew wraps ErrTooFewNodes with the constructor's size context.
func tooFew(method string, n, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewNodes)
}
