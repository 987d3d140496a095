// Package registry implements the Distribution Model: a content-addressed
// store of value distributions plus the per-FQN source map that expresses,
// for every type the extractor saw, every way to obtain a value of that
// type.
//
// A Source is a tagged-variant struct (mirroring pkg/value.Value's field
// layout, deliberately, since the generator converts one into the other
// almost field-for-field) representing either an FqnSource — one way to
// produce a value of a specific FQN: ClassInstantiation, StaticMethodCall,
// StaticPropertyAccess, or ValueObject — or a ValueSource — one
// alternative inside a distribution: FqnRef, Primitive, NoValue, Array,
// Map, Constant, or Custom.
//
// Distributions are stored under a DistRef, a content address computed
// from a canonical JSON encoding of the distribution (see Record).
// Resolve inlines FqnRef alternatives by splatting the referenced FQN's
// source list, producing the flat, ordered list of alternatives the
// generator and mutator actually walk.
package registry
