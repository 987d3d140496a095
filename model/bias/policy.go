package bias

import "github.com/outpostdev/typeforge/model/registry"

// ParamContext describes one constructor/method parameter's shape, enough
// for a Policy to recognize a convention ("named scope", "looks like an
// ARN") without needing the extractor's own type-reference types.
type ParamContext struct {
	Name      string
	Index     int
	Optional  bool
	IsFqn     bool
	FQN       string
	IsArray   bool
	IsMap     bool
	Primitive string
}

// Context carries the positional information a Policy needs to decide
// whether and how to rewrite a just-built FqnSource's parameter
// distributions.
type Context struct {
	OwnerFQN string
	Params   []ParamContext
}

// Biaser rewrites an FqnSource's parameter DistRefs after extraction,
// given the context the extractor observed while building it. Bias may
// record new distributions on reg; it must not mutate src's slices and
// should return a fresh Source value when it changes anything.
type Biaser interface {
	Bias(src registry.Source, ctx Context, reg *registry.Registry) (registry.Source, error)
}

// Policy is a named Biaser, registrable in a Registry by name.
type Policy interface {
	Biaser
	Name() string
}

// Chain applies a sequence of policies in order, each seeing the
// previous one's output. Chain itself satisfies Biaser, so a Chain can
// be passed anywhere a single Policy's Bias method is expected.
type Chain []Policy

func (c Chain) Bias(src registry.Source, ctx Context, reg *registry.Registry) (registry.Source, error) {
	cur := src
	for _, p := range c {
		next, err := p.Bias(cur, ctx, reg)
		if err != nil {
			return registry.Source{}, err
		}
		cur = next
	}
	return cur, nil
}

func withParam(src registry.Source, index int, dist registry.DistRef) registry.Source {
	out := src
	out.Params = append([]registry.ParameterSource(nil), src.Params...)
	out.Params[index].Dist = dist
	return out
}
