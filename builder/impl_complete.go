// SPDX-License-Identifier: MIT
// Package: propgraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes). K_1 is a single node with no connections.
//   - Emits each unordered pair {i,j}, i<j, in lexicographic index order.
//     With WithDirected, also emits j → i right after i → j.
//
// Complexity: O(n) nodes + O(n²) connections.

package builder

import "github.com/katalvlaran/propgraph/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		ids, err := mintNodes(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connect(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
				if cfg.directed {
					if err = connect(g, cfg, methodComplete, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
