package bias

import (
	"strings"

	"github.com/outpostdev/typeforge/model/registry"
	"github.com/outpostdev/typeforge/pkg/value"
)

// ScopeID recognizes the common "scope, id" constructor prefix: a first
// parameter named scope referencing a type, followed by a plain string
// parameter named id. Both get rewritten to custom distributions so the
// generator and mutator produce values through Custom.Minimal/Mutate
// instead of naively instantiating or splatting literal strings.
type ScopeID struct{}

func (ScopeID) Name() string { return "scopeid" }

func (ScopeID) Bias(src registry.Source, ctx Context, reg *registry.Registry) (registry.Source, error) {
	out := src
	scoped := false
	for i, p := range ctx.Params {
		switch {
		case i == 0 && p.IsFqn && strings.EqualFold(p.Name, "scope"):
			ref, err := reg.Record(registry.ValueDistribution{{Kind: registry.SrcCustom, CustomName: "scope"}})
			if err != nil {
				return registry.Source{}, err
			}
			out = withParam(out, i, ref)
			scoped = true
		case i == 1 && scoped && p.Primitive == "string" && strings.EqualFold(p.Name, "id"):
			ref, err := reg.Record(registry.ValueDistribution{{Kind: registry.SrcCustom, CustomName: "constructId"}})
			if err != nil {
				return registry.Source{}, err
			}
			out = withParam(out, i, ref)
		}
	}
	return out, nil
}

// ArnLike rewrites string parameters whose name contains "arn" to a
// constant colon-delimited identifier, the shape most wire formats use
// for a fully-qualified resource reference. Minimal/mutated values then
// never waste a run on a syntactically invalid reference string.
type ArnLike struct{}

func (ArnLike) Name() string { return "arnlike" }

func (ArnLike) Bias(src registry.Source, ctx Context, reg *registry.Registry) (registry.Source, error) {
	out := src
	for i, p := range ctx.Params {
		if p.Primitive == "string" && strings.Contains(strings.ToLower(p.Name), "arn") {
			ref, err := reg.Record(registry.ValueDistribution{{
				Kind:  registry.SrcConstant,
				Const: value.NewString(value.DistPtr{}, "arn:partition:service:region:account:resource/name"),
			}})
			if err != nil {
				return registry.Source{}, err
			}
			out = withParam(out, i, ref)
		}
	}
	return out, nil
}

// TokenLike rewrites string parameters whose name looks like a
// user-facing identifier (name, bucket, topic, queue, table, key) to the
// slug custom distribution, so generated values read as plausible
// resource names instead of the minimal-string default.
type TokenLike struct{}

func (TokenLike) Name() string { return "namelike" }

var tokenLikeSuffixes = []string{"name", "bucket", "topic", "queue", "table", "key"}

func (TokenLike) Bias(src registry.Source, ctx Context, reg *registry.Registry) (registry.Source, error) {
	out := src
	for i, p := range ctx.Params {
		if p.Primitive != "string" {
			continue
		}
		lower := strings.ToLower(p.Name)
		for _, suffix := range tokenLikeSuffixes {
			if strings.Contains(lower, suffix) {
				ref, err := reg.Record(registry.ValueDistribution{{Kind: registry.SrcCustom, CustomName: "slug"}})
				if err != nil {
					return registry.Source{}, err
				}
				out = withParam(out, i, ref)
				break
			}
		}
	}
	return out, nil
}
