// Package evalhost defines the contract the Evaluator uses to resolve a
// fully-qualified name to a real, callable host member, and ships a
// reflect-backed default implementation. It plays the same role the
// teacher's bindings package plays for hivex: a small Go-idiomatic
// wrapper isolating an external resolution mechanism — there, a cgo
// bridge to a C library; here, Go's own reflect package walking a tree
// of registered root objects — behind one narrow interface.
package evalhost
