// SPDX-License-Identifier: MIT
// Package: propgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w: "<Method>: n=%d < min=%d: %w".
//   • Constructors never panic; option constructors panic on meaningless input.

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter is below the minimum for the
// requested constructor (Path n<2, Star n<2, Cycle n<3, Complete n<1).
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that the graph rejected a node or connection
// during construction, or that a nil constructor/graph was supplied. The
// underlying core error is joined so errors.Is still matches core sentinels.
var ErrConstructFailed = errors.New("builder: construction failed")
