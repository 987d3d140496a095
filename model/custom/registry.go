package custom

import "github.com/outpostdev/typeforge/pkg/value"

// Registry looks up a Source by the name a Source{Kind: SrcCustom}
// carries in its CustomName field.
type Registry struct {
	sources map[string]Source
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sources: map[string]Source{}}
}

// Default returns a Registry pre-populated with the built-in Sources.
func Default() *Registry {
	r := NewRegistry()
	r.Register(Scope{})
	r.Register(&ConstructID{})
	r.Register(Slug{})
	return r
}

// Register adds or replaces a Source under its own Name().
func (r *Registry) Register(s Source) {
	r.sources[s.Name()] = s
}

// Lookup returns the named Source, or an ErrKindUnknownCustom error if
// it was never registered.
func (r *Registry) Lookup(name string) (Source, error) {
	s, ok := r.sources[name]
	if !ok {
		return nil, value.Newf(value.ErrKindUnknownCustom, "custom: unknown source %q", name)
	}
	return s, nil
}
