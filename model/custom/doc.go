// Package custom implements the Custom Distribution plug-in contract: a
// named Source that knows how to produce a minimal value and how to
// propose mutations for it, for values no declarative distribution can
// describe — a construct-tree root, a freshly-minted identifier, a
// DNS-safe slug. Sources are registered by name in a Registry, the same
// named-strategy-by-string idiom the teacher uses for its merge
// strategies, and referenced from a Source{Kind: SrcCustom} by that name.
package custom
