package custom

import "github.com/outpostdev/typeforge/pkg/value"

// Proposer receives mutation candidates a Source's Mutate wants to offer
// to the walk. It lives here, not in the mutator package, so this
// package stays the single direction of import: the mutator depends on
// custom, custom never depends back on the mutator.
type Proposer interface {
	Propose(candidate value.Value)
}

// Source is a named plug-in that produces and mutates values a
// declarative distribution cannot express.
type Source interface {
	Name() string
	Minimal(ptr value.DistPtr, z value.Zipper) (value.Value, error)
	Mutate(v value.Value, z value.Zipper, propose Proposer)
}
