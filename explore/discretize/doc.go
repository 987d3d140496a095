// Package discretize flattens a nested Value expression tree into a
// sequence of statements a host evaluator can run left to right: every
// nested ClassInstantiation or StaticMethodCall is extracted to a named
// binding and replaced by a Variable reference, leaving only the
// top-level expression inline. It also exposes a pretty-printer, the Go
// analogue of the teacher's printer package: a pure rendering layer that
// sits beside the engine producing the structure it renders, never
// inside it.
package discretize
