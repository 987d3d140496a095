// Package prng wraps a deterministic pseudo-random source behind the
// narrow surface the generator and mutator actually need:
// bounded integers, shuffles, and coprime-stride iteration order. State
// is owned by one Random value; every draw mutates it in place, and two
// Randoms built from the same seed produce identical draw sequences,
// which is what makes Generator.Minimal and Mutator.Mutate replayable.
package prng
