// SPDX-License-Identifier: MIT
// Package: propgraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - The first minted node is the hub; the remaining n-1 are leaves.
//   - Emits spokes hub → leaf in minting order. With WithDirected, also emits
//     leaf → hub so every leaf can reach the hub.
//
// Complexity: O(n) nodes + O(n-1) connections (O(2n-2) directed).

package builder

import "github.com/katalvlaran/propgraph/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		ids, err := mintNodes(g, cfg, methodStar, n)
		if err != nil {
			return err
		}
		hub := ids[0]
		for _, leaf := range ids[1:] {
			if err = connect(g, cfg, methodStar, hub, leaf); err != nil {
				return err
			}
			if cfg.directed {
				if err = connect(g, cfg, methodStar, leaf, hub); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
