package bias

import "fmt"

// Registry looks policies up by name, the same named-strategy-by-string
// shape the teacher's merge strategies use.
type Registry struct {
	policies map[string]Policy
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{policies: map[string]Policy{}}
}

// Default returns a Registry pre-populated with the built-in policies.
func Default() *Registry {
	r := NewRegistry()
	r.Register(ScopeID{})
	r.Register(ArnLike{})
	r.Register(TokenLike{})
	return r
}

// Register adds or replaces a policy under its own Name().
func (r *Registry) Register(p Policy) {
	r.policies[p.Name()] = p
}

// Lookup returns the named policy, or an error if it was never registered.
func (r *Registry) Lookup(name string) (Policy, error) {
	p, ok := r.policies[name]
	if !ok {
		return nil, fmt.Errorf("bias: unknown policy %q", name)
	}
	return p, nil
}

// Chain builds a Chain by resolving each name in order; unknown names
// fail the whole build.
func (r *Registry) Chain(names ...string) (Chain, error) {
	chain := make(Chain, 0, len(names))
	for _, name := range names {
		p, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		chain = append(chain, p)
	}
	return chain, nil
}
