package lcgraph

import "errors"

var (
	// ErrNilStructural indicates a loader was given a nil structural graph.
	ErrNilStructural = errors.New("lcgraph: nil structural graph")

	// ErrTransposeMismatch indicates the forward and transpose structural
	// graphs disagree on node or edge counts during bidirectional
	// construction. Fatal: the resulting graph would be structurally
	// inconsistent.
	ErrTransposeMismatch = errors.New("lcgraph: graph and transpose disagree on node or edge counts")
)
