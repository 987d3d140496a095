// Package bias implements the Biaser policy hook: a pure function that
// gets a chance to rewrite an FqnSource's parameter distributions after
// the extractor builds it, given positional context (the owning FQN, and
// each parameter's name/shape). This is how domain-specific defaults —
// "a parameter named scope is the construct root", "anything named *arn*
// wants a constant string" — get layered on top of the generic extraction
// rules without the extractor itself knowing about any particular
// library's conventions.
//
// Policies are registered by name in a Registry, the same named-strategy
// shape the teacher uses for pluggable merge strategies: callers compose
// a Chain of named policies rather than subclassing a single extractor.
package bias
