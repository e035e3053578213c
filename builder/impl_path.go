// SPDX-License-Identifier: MIT
// Package: propgraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Mints n nodes in order, then connects node[i-1] → node[i] for i=1..n-1.
//
// Complexity: O(n) nodes + O(n-1) connections.

package builder

import "github.com/katalvlaran/propgraph/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		ids, err := mintNodes(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(g, cfg, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
