// Package generate implements the Minimal Generator: given a Distribution
// Model and a starting FQN, it builds the smallest, simplest Value the
// model can produce for that type, picking the first candidate source
// that succeeds at each decision point and breaking infinite recursion
// by tracking which DistPtrs are already under construction on the
// current call stack. It is the Go analogue of the teacher's incremental
// builder: given an external source and a rule set, build a minimal
// valid artifact rather than a parsed tree.
package generate
