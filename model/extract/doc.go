// Package extract builds a Distribution Model from a normalized type
// registry: the set of classes, structs, and enums a host library
// exposes, each already flattened to fully-qualified names and resolved
// type references. It is the one place that turns "here is a
// constructor signature" into "here is a recorded distribution", the
// same shape as the teacher's incremental AST builder turning an
// external source plus a rule set into a tree, except the tree being
// built here is the distribution model rather than a parsed AST.
package extract
