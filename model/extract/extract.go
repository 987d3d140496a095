package extract

import (
	"fmt"

	"github.com/outpostdev/typeforge/model/bias"
	"github.com/outpostdev/typeforge/model/registry"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "info"
}

// Diagnostic records a non-fatal decision made while extracting: a
// dropped optional field, a whole struct or constructor skipped because
// a required member could not be represented.
type Diagnostic struct {
	Severity Severity
	FQN      string
	Member   string
	Message  string
}

func (d Diagnostic) String() string {
	if d.Member == "" {
		return fmt.Sprintf("%s: %s: %s", d.Severity, d.FQN, d.Message)
	}
	return fmt.Sprintf("%s: %s.%s: %s", d.Severity, d.FQN, d.Member, d.Message)
}

// Options configures a Run.
type Options struct {
	// Bias, if non-nil, is applied to every ClassInstantiation and
	// StaticMethodCall FqnSource after its parameters are built. A
	// bias.Chain satisfies this interface, so callers can compose
	// several named policies without extract knowing about Registry.
	Bias bias.Biaser
}

// extractor threads the input registry, the distribution registry being
// built, and accumulated diagnostics through the extraction rules
// without every helper needing its own long parameter list.
type extractor struct {
	in   Registry
	rr   *registry.Registry
	opts Options
	diag []Diagnostic
}

// Run extracts a Distribution Model from reg, applying opts.Bias (if
// set) to every constructed class-instantiation and static-method-call
// source. It returns the partial model and accumulated diagnostics even
// when some members were dropped; it only returns a non-nil error when a
// biasing policy fails on a class constructor. A policy failure on a
// static method is recorded as a Diagnostic and that method is dropped.
func Run(reg Registry, opts Options) (*registry.Model, []Diagnostic, error) {
	ex := &extractor{in: reg, rr: registry.New(), opts: opts}

	for _, enum := range reg.Enums {
		for _, member := range enum.Members {
			ex.rr.Model().AddFqnSource(enum.FQN, registry.Source{
				Kind:           registry.SrcStaticPropertyAccess,
				FQN:            enum.FQN,
				TargetFQN:      enum.FQN,
				StaticProperty: member,
			})
		}
	}

	for _, st := range reg.Structs {
		ex.extractStruct(st)
	}

	for _, cls := range reg.Classes {
		if err := ex.extractClass(cls); err != nil {
			return nil, ex.diag, err
		}
	}

	return ex.rr.Model(), ex.diag, nil
}

func (ex *extractor) extractStruct(st Struct) {
	fields, ok := ex.buildFields(st.FQN, st.Fields)
	if !ok {
		ex.diag = append(ex.diag, Diagnostic{
			Severity: SeverityWarning,
			FQN:      st.FQN,
			Message:  "struct dropped: a required field could not be represented",
		})
		return
	}
	src := registry.Source{Kind: registry.SrcValueObject, FQN: st.FQN, Fields: fields}
	ex.rr.Model().AddFqnSource(st.FQN, src)
	for _, iface := range st.Interfaces {
		ex.rr.Model().AddFqnSource(iface, src)
	}
}

func (ex *extractor) extractClass(cls Class) error {
	var builtCtor *registry.Source

	if cls.Concrete && cls.Constructor != nil {
		params, ctxParams, ok := ex.buildParams(cls.Constructor.Params)
		if !ok {
			ex.diag = append(ex.diag, Diagnostic{
				Severity: SeverityWarning,
				FQN:      cls.FQN,
				Message:  "constructor dropped: a parameter could not be represented",
			})
		} else {
			src := registry.Source{Kind: registry.SrcClassInstantiation, FQN: cls.FQN, Params: params}
			biased, err := ex.applyBias(src, bias.Context{OwnerFQN: cls.FQN, Params: ctxParams})
			if err != nil {
				return fmt.Errorf("biasing %s constructor: %w", cls.FQN, err)
			}
			ex.rr.Model().AddFqnSource(cls.FQN, biased)
			builtCtor = &biased
		}
	}

	if builtCtor != nil {
		for _, anc := range cls.Ancestors {
			ex.rr.Model().AddFqnSource(anc, *builtCtor)
		}
	}

	for _, sm := range cls.StaticMethods {
		ex.extractStaticMethod(cls, sm)
	}

	for _, sp := range cls.StaticProperties {
		ex.rr.Model().AddFqnSource(sp.TypeFQN, registry.Source{
			Kind:           registry.SrcStaticPropertyAccess,
			FQN:            cls.FQN,
			TargetFQN:      sp.TypeFQN,
			StaticProperty: sp.Name,
		})
	}

	return nil
}

func (ex *extractor) extractStaticMethod(cls Class, sm StaticMethod) {
	params, ctxParams, ok := ex.buildParams(sm.Params)
	if !ok {
		ex.diag = append(ex.diag, Diagnostic{
			Severity: SeverityWarning,
			FQN:      cls.FQN,
			Member:   sm.Name,
			Message:  "static method dropped: a parameter could not be represented",
		})
		return
	}

	owner := sm.ReturnFQN
	if owner == "" {
		owner = cls.FQN
	}
	src := registry.Source{
		Kind:         registry.SrcStaticMethodCall,
		FQN:          cls.FQN,
		StaticMethod: sm.Name,
		TargetFQN:    owner,
		Params:       params,
	}
	biased, err := ex.applyBias(src, bias.Context{OwnerFQN: owner, Params: ctxParams})
	if err != nil {
		ex.diag = append(ex.diag, Diagnostic{
			Severity: SeverityWarning,
			FQN:      cls.FQN,
			Member:   sm.Name,
			Message:  "bias policy failed: " + err.Error(),
		})
		return
	}

	ex.rr.Model().AddFqnSource(owner, biased)
	if sm.ReturnIsClass {
		if ret, ok := ex.in.Classes[sm.ReturnFQN]; ok {
			for _, anc := range ret.Ancestors {
				ex.rr.Model().AddFqnSource(anc, biased)
			}
		}
	}
}

func (ex *extractor) applyBias(src registry.Source, ctx bias.Context) (registry.Source, error) {
	if ex.opts.Bias == nil {
		return src, nil
	}
	return ex.opts.Bias.Bias(src, ctx, ex.rr)
}

// buildFields builds FieldSource entries for a struct's fields. A field
// whose type cannot be represented is dropped with a diagnostic if
// optional; if required, the whole struct is reported unrepresentable
// via ok=false.
func (ex *extractor) buildFields(ownerFQN string, fields []Param) (out []registry.FieldSource, ok bool) {
	for _, f := range fields {
		ref, err := ex.buildRef(f.Type, f.Optional)
		if err != nil {
			if f.Optional {
				ex.diag = append(ex.diag, Diagnostic{
					Severity: SeverityInfo,
					FQN:      ownerFQN,
					Member:   f.Name,
					Message:  "optional field dropped: " + err.Error(),
				})
				continue
			}
			return nil, false
		}
		out = append(out, registry.FieldSource{Name: f.Name, Dist: ref})
	}
	return out, true
}

// buildParams builds ParameterSource entries for a constructor or method
// signature, alongside the bias.ParamContext the Biaser needs to
// recognize naming conventions. Unlike struct fields, any parameter that
// cannot be represented drops the whole signature: positional argument
// lists cannot silently skip a slot without shifting every later
// parameter out of place.
func (ex *extractor) buildParams(params []Param) (out []registry.ParameterSource, ctxParams []bias.ParamContext, ok bool) {
	for i, p := range params {
		ref, err := ex.buildRef(p.Type, p.Optional)
		if err != nil {
			return nil, nil, false
		}
		out = append(out, registry.ParameterSource{Name: p.Name, Dist: ref})
		ctxParams = append(ctxParams, paramContext(i, p))
	}
	return out, ctxParams, true
}

func paramContext(index int, p Param) bias.ParamContext {
	pc := bias.ParamContext{Name: p.Name, Index: index, Optional: p.Optional}
	switch p.Type.Kind {
	case RefPrimitive:
		pc.Primitive = p.Type.Primitive
	case RefArray:
		pc.IsArray = true
	case RefMap:
		pc.IsMap = true
	case RefFqn:
		pc.IsFqn = true
		pc.FQN = p.Type.FQN
	}
	return pc
}

// buildRef records the distribution for a single type reference (with
// its optional-ness folded in as a leading NoValue alternative, so a
// minimal/first-match generator picks "absent" before it ever recurses
// into the rest of the type) and returns the DistRef pointing at it.
func (ex *extractor) buildRef(t TypeRef, optional bool) (registry.DistRef, error) {
	alts, err := ex.buildAltSources(t)
	if err != nil {
		return 0, err
	}
	if optional {
		alts = append([]registry.Source{{Kind: registry.SrcNoValue}}, alts...)
	}
	return ex.rr.Record(alts)
}

// buildAltSources returns the alternative Sources a type reference
// expands to. A union splats each member's own alternatives directly
// into the result rather than nesting a further indirection, so Resolve
// never needs more than the one FqnRef-splat pass it already performs.
// Array and map element types are recorded eagerly (never optional at
// the element level, since sparseness is represented at the container
// level) to obtain their own DistRef.
func (ex *extractor) buildAltSources(t TypeRef) ([]registry.Source, error) {
	switch t.Kind {
	case RefPrimitive:
		return []registry.Source{{Kind: registry.SrcPrimitive, PrimitiveName: t.Primitive}}, nil
	case RefArray:
		if t.Elem == nil {
			return nil, fmt.Errorf("array type missing element type")
		}
		elemRef, err := ex.buildRef(*t.Elem, false)
		if err != nil {
			return nil, err
		}
		return []registry.Source{{Kind: registry.SrcArray, Ref: elemRef}}, nil
	case RefMap:
		if t.Elem == nil {
			return nil, fmt.Errorf("map type missing value type")
		}
		elemRef, err := ex.buildRef(*t.Elem, false)
		if err != nil {
			return nil, err
		}
		return []registry.Source{{Kind: registry.SrcMap, Ref: elemRef}}, nil
	case RefUnion:
		var all []registry.Source
		for _, sub := range t.Union {
			subAlts, err := ex.buildAltSources(sub)
			if err != nil {
				return nil, err
			}
			all = append(all, subAlts...)
		}
		if len(all) == 0 {
			return nil, fmt.Errorf("union type has no members")
		}
		return all, nil
	case RefFqn:
		if t.FQN == "" {
			return nil, fmt.Errorf("fqn reference missing FQN")
		}
		return []registry.Source{{Kind: registry.SrcFqnRef, FQN: t.FQN}}, nil
	default:
		return nil, fmt.Errorf("unknown type reference kind %d", t.Kind)
	}
}
