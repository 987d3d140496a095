// Package mutate implements the Mutator: given a value produced by the
// generator, enumerate every single-point edit reachable from it — swap
// to a sibling alternative, append/delete a collection entry, tweak a
// primitive, recurse into a shuffled argument — and keep up to k of them
// via reservoir sampling over the live enumeration, never materializing
// the full candidate set. A Mutator is one-shot: mutate may be called at
// most once per instance, matching the non-goal of concurrent or
// repeated mutation against the same reservoir counter.
package mutate
