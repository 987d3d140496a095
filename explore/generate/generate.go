package generate

import (
	"time"

	"github.com/outpostdev/typeforge/internal/prng"
	"github.com/outpostdev/typeforge/model/custom"
	"github.com/outpostdev/typeforge/model/registry"
	"github.com/outpostdev/typeforge/pkg/value"
)

// PrimitiveDefaults configures the minimal value produced for each
// primitive kind. The zero value is not usable; start from Defaults().
type PrimitiveDefaults struct {
	StringCharset         string
	StringMinLen, StringMaxLen int
	NumberMin, NumberMax       int
}

// Defaults returns spec.md's minimal primitive defaults: a 1-10 char
// string from [-A-Za-z0-9 _:$], a 1-10 integer, false, and the Unix
// epoch.
func Defaults() PrimitiveDefaults {
	return PrimitiveDefaults{
		StringCharset: "-ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789 _:$",
		StringMinLen:  1,
		StringMaxLen:  10,
		NumberMin:     1,
		NumberMax:     10,
	}
}

// Options configures a Generator.
type Options struct {
	Custom     *custom.Registry
	Primitives PrimitiveDefaults
}

// DefaultOptions returns an Options with the built-in custom distribution
// registry and the spec's primitive defaults.
func DefaultOptions() Options {
	return Options{Custom: custom.Default(), Primitives: Defaults()}
}

// Generator builds minimal values from a Distribution Model.
type Generator struct {
	reg  *registry.Registry
	rnd  *prng.Random
	opts Options
}

// New returns a Generator over reg, drawing primitive randomness from
// rnd. Two Generators built from the same model and an equally-seeded
// rnd produce identical output for the same sequence of calls.
func New(reg *registry.Registry, rnd *prng.Random, opts Options) *Generator {
	if opts.Custom == nil {
		opts.Custom = custom.Default()
	}
	if opts.Primitives.StringCharset == "" {
		opts.Primitives = Defaults()
	}
	return &Generator{reg: reg, rnd: rnd, opts: opts}
}

// Minimal builds the smallest value the model can produce for fqn.
func (g *Generator) Minimal(fqn string) (value.Value, error) {
	ref, err := g.reg.Record(registry.ValueDistribution{{Kind: registry.SrcFqnRef, FQN: fqn}})
	if err != nil {
		return value.Value{}, err
	}
	breaker := map[value.DistPtr]bool{}
	return g.minimalValue(ref, value.Zipper{}, breaker)
}

// MinimalFromRef builds a minimal value for an already-recorded
// distribution ref at zipper position z, with a fresh recursion-breaker
// set. Exported so the mutator can reuse the exact same construction
// logic the generator uses internally when it needs "a minimally-built
// value" for an append or a sibling switch, rather than duplicating it.
func (g *Generator) MinimalFromRef(ref registry.DistRef, z value.Zipper) (value.Value, error) {
	return g.minimalValue(ref, z, map[value.DistPtr]bool{})
}

// MinimalFromSource builds a minimal value directly from a single
// already-resolved Source at ptr/z, with a fresh recursion-breaker set
// seeded with ptr itself (so a self-referential source immediately
// recognizes it is already under construction). Exported for the same
// reason as MinimalFromRef: the mutator's sibling-switch proposal needs
// to materialize one specific alternative, not resolve a distribution
// from scratch.
func (g *Generator) MinimalFromSource(src registry.Source, ptr value.DistPtr, z value.Zipper) (value.Value, error) {
	breaker := map[value.DistPtr]bool{ptr: true}
	return g.minimalValueFromSource(src, ptr, z, breaker)
}

// minimalValue tries each resolved alternative of ref in order, skipping
// any whose DistPtr is already under construction on the current call
// stack (the recursion-breaker set), and returns the first one that
// succeeds.
func (g *Generator) minimalValue(ref registry.DistRef, z value.Zipper, breaker map[value.DistPtr]bool) (value.Value, error) {
	sources, err := g.reg.Resolve(ref)
	if err != nil {
		return value.Value{}, err
	}

	var lastErr error
	for i, src := range sources {
		ptr := value.DistPtr{DistID: uint64(ref), SourceIndex: i}
		if breaker[ptr] {
			continue
		}
		breaker[ptr] = true
		v, err := g.minimalValueFromSource(src, ptr, z, breaker)
		delete(breaker, ptr)
		if err == nil {
			return v, nil
		}
		lastErr = err
	}

	if lastErr == nil {
		return value.Value{}, value.Newf(value.ErrKindNoSources, "generate: no candidates for dist %x", uint64(ref))
	}
	return value.Value{}, value.Wrap(value.ErrKindNoSources, lastErr, "generate: no options left for dist %x", uint64(ref))
}

func (g *Generator) minimalValueFromSource(src registry.Source, ptr value.DistPtr, z value.Zipper, breaker map[value.DistPtr]bool) (value.Value, error) {
	switch src.Kind {
	case registry.SrcClassInstantiation:
		args, err := g.minimalArguments(ptr, src.FQN, "", "", src.Params, z, breaker)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewClassInstantiation(ptr, src.FQN, paramNames(src.Params), args), nil

	case registry.SrcStaticMethodCall:
		args, err := g.minimalArguments(ptr, src.FQN, src.StaticMethod, src.TargetFQN, src.Params, z, breaker)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewStaticMethodCall(ptr, src.FQN, src.StaticMethod, src.TargetFQN, paramNames(src.Params), args), nil

	case registry.SrcStaticPropertyAccess:
		return value.NewStaticPropertyAccess(ptr, src.FQN, src.StaticProperty, src.TargetFQN), nil

	case registry.SrcConstant:
		return src.Const, nil

	case registry.SrcNoValue:
		return value.NewNoValue(ptr), nil

	case registry.SrcValueObject:
		return g.minimalValueObject(ptr, src, z, breaker)

	case registry.SrcArray:
		shell := value.NewArray(ptr, nil)
		elem, err := g.minimalValue(src.Ref, z.DescendArrayElement(shell, 0), breaker)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewArray(ptr, []value.Value{elem}), nil

	case registry.SrcMap:
		return value.NewMapLiteral(ptr, nil), nil

	case registry.SrcPrimitive:
		return g.minimalPrimitive(ptr, src.PrimitiveName)

	case registry.SrcCustom:
		source, err := g.opts.Custom.Lookup(src.CustomName)
		if err != nil {
			return value.Value{}, err
		}
		return source.Minimal(ptr, z)

	default:
		return value.Value{}, value.Newf(value.ErrKindEvaluation, "generate: unhandled source kind %s", src.Kind)
	}
}

// minimalArguments generates one argument per parameter in order. Once
// any argument resolves to NoValue, every remaining parameter is filled
// with a NoValue placeholder at sourceIndex 0 instead of being resolved:
// extraction always records an optional type's NoValue alternative
// first (see model/extract.buildRef), so sourceIndex 0 is guaranteed to
// be NoValue for any parameter that could legally be omitted, and
// trailing optional parameters must be omitted as a contiguous group
// rather than individually.
func (g *Generator) minimalArguments(ptr value.DistPtr, fqn, method, target string, params []registry.ParameterSource, z value.Zipper, breaker map[value.DistPtr]bool) ([]value.Value, error) {
	shell := value.NewClassInstantiation(ptr, fqn, paramNames(params), nil)
	if method != "" {
		shell = value.NewStaticMethodCall(ptr, fqn, method, target, paramNames(params), nil)
	}

	args := make([]value.Value, len(params))
	seenNoValue := false
	for i, p := range params {
		if seenNoValue {
			args[i] = value.NewNoValue(value.DistPtr{DistID: uint64(p.Dist), SourceIndex: 0})
			continue
		}
		v, err := g.minimalValue(p.Dist, z.DescendArgument(shell, i), breaker)
		if err != nil {
			return nil, err
		}
		args[i] = v
		if v.Kind == value.KindNoValue {
			seenNoValue = true
		}
	}
	return args, nil
}

func (g *Generator) minimalValueObject(ptr value.DistPtr, src registry.Source, z value.Zipper, breaker map[value.DistPtr]bool) (value.Value, error) {
	shell := value.NewStructLiteral(ptr, src.FQN, nil)
	entries := make([]value.Entry, 0, len(src.Fields))
	for _, f := range src.Fields {
		v, err := g.minimalValue(f.Dist, z.DescendField(shell, f.Name), breaker)
		if err != nil {
			return value.Value{}, err
		}
		entries = append(entries, value.Entry{Key: f.Name, Value: v})
	}
	return value.NewStructLiteral(ptr, src.FQN, entries), nil
}

func (g *Generator) minimalPrimitive(ptr value.DistPtr, name string) (value.Value, error) {
	p := g.opts.Primitives
	switch name {
	case "string":
		n := p.StringMinLen
		if p.StringMaxLen > p.StringMinLen {
			n += g.rnd.Intn(p.StringMaxLen - p.StringMinLen + 1)
		}
		b := make([]byte, n)
		for i := range b {
			b[i] = p.StringCharset[g.rnd.Intn(len(p.StringCharset))]
		}
		return value.NewString(ptr, string(b)), nil
	case "number":
		n := p.NumberMin
		if p.NumberMax > p.NumberMin {
			n += g.rnd.Intn(p.NumberMax - p.NumberMin + 1)
		}
		return value.NewNumber(ptr, float64(n)), nil
	case "boolean":
		return value.NewBoolean(ptr, false), nil
	case "date":
		return value.NewDate(ptr, time.Unix(0, 0).UTC()), nil
	case "json", "any":
		return value.NewMapLiteral(ptr, nil), nil
	default:
		return value.Value{}, value.Newf(value.ErrKindEvaluation, "generate: unknown primitive %q", name)
	}
}

func paramNames(params []registry.ParameterSource) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}
