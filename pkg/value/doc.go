// Package value defines the expression intermediate representation shared
// by every other package in typeforge: a tagged-variant tree that can
// describe any constructor expression a generated program is built from.
//
// # Core Types
//
// Value is the IR node. It carries a Kind discriminator and the union of
// fields needed by every variant (ClassInstantiation, StaticMethodCall,
// StaticPropertyAccess, StructLiteral, MapLiteral, Array, Primitive,
// NoValue, Scope, Variable). Every variant except Variable carries a
// DistPtr recording which distribution, and which alternative inside it,
// produced the node.
//
// # Zipper
//
// Zipper is an immutable focus into a Value tree. Descend pushes a frame
// recording the parent node snapshot and a locator within it; Set and
// Delete rebuild the path from the focus to the root, leaving the input
// tree untouched and sharing every subtree that wasn't on the path.
//
// # Equality, hashing and serialization
//
// Equal performs a structural comparison (DistPtr included, per the
// evaluator-equivalence law: equal values must evaluate to identical
// artifacts). Hash returns a stable content digest used for naming
// persisted values; distributions are content-addressed separately by
// model/registry.
// MarshalJSON/UnmarshalJSON round-trip every variant through a "kind"
// discriminator field.
package value
