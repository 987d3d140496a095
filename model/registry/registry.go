package registry

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"reflect"

	"github.com/outpostdev/typeforge/pkg/value"
)

// Registry wraps a Model with the content-addressing and resolution
// operations. The zero value is not usable; construct with New or Wrap.
type Registry struct {
	model *Model
}

// New returns a Registry backed by a fresh, empty Model.
func New() *Registry { return &Registry{model: NewModel()} }

// Wrap returns a Registry backed by an existing Model, e.g. one decoded
// from the persisted JSON format.
func Wrap(m *Model) *Registry {
	if m.FqnSources == nil {
		m.FqnSources = make(map[string][]Source)
	}
	if m.Distributions == nil {
		m.Distributions = make(map[DistRef]ValueDistribution)
	}
	return &Registry{model: m}
}

// Model returns the underlying, persistable Model.
func (r *Registry) Model() *Model { return r.model }

// wireSource mirrors Source for canonical-JSON hashing purposes: a plain
// struct with no behavior, so changing Source's methods never perturbs
// content addresses.
type wireSource struct {
	Kind           SourceKind
	FQN            string
	StaticMethod   string
	StaticProperty string
	TargetFQN      string
	Params         []ParameterSource
	Fields         []FieldSource
	Ref            DistRef
	PrimitiveName  string
	Const          value.Value
	CustomName     string
}

func canonicalize(dist ValueDistribution) ([]byte, error) {
	wire := make([]wireSource, len(dist))
	for i, s := range dist {
		wire[i] = wireSource{
			Kind: s.Kind, FQN: s.FQN, StaticMethod: s.StaticMethod, StaticProperty: s.StaticProperty,
			TargetFQN: s.TargetFQN, Params: s.Params, Fields: s.Fields, Ref: s.Ref,
			PrimitiveName: s.PrimitiveName, Const: s.Const, CustomName: s.CustomName,
		}
	}
	return json.Marshal(wire)
}

// DistRefWidthBytes is how much of the SHA-256 digest becomes the DistRef.
// It is named and exported so the fatal HashCollision path documents
// exactly what to widen: the testable property "unequal distributions
// never collide" is a statement about this constant's width, not about
// the hash function.
const DistRefWidthBytes = 8

func contentAddress(canonical []byte) DistRef {
	sum := sha256.Sum256(canonical)
	return DistRef(binary.BigEndian.Uint64(sum[:DistRefWidthBytes]))
}

// Record content-addresses dist and stores it, returning its DistRef.
// Recording is idempotent: recording an equal distribution twice returns
// the same DistRef and does not duplicate storage. If the computed
// address already names a distribution that is not bit-identical to dist,
// Record returns a fatal HashCollision error — per spec this means the
// hash width is too small and must be widened, not that the caller did
// anything wrong.
func (r *Registry) Record(dist ValueDistribution) (DistRef, error) {
	canonical, err := canonicalize(dist)
	if err != nil {
		return 0, value.Wrap(value.ErrKindHashCollision, err, "registry: canonicalize distribution")
	}
	ref := contentAddress(canonical)

	if existing, ok := r.model.Distributions[ref]; ok {
		existingCanonical, err := canonicalize(existing)
		if err != nil {
			return 0, value.Wrap(value.ErrKindHashCollision, err, "registry: canonicalize existing distribution")
		}
		if !bytes.Equal(canonical, existingCanonical) {
			return 0, value.Newf(value.ErrKindHashCollision,
				"registry: distId %x collides between unequal distributions (widen DistRefWidthBytes)", uint64(ref))
		}
		return ref, nil
	}

	r.model.Distributions[ref] = dist
	return ref, nil
}

// LookupDist returns the stored alternatives for ref, unresolved (FqnRef
// entries are not inlined).
func (r *Registry) LookupDist(ref DistRef) ([]Source, error) {
	dist, ok := r.model.Distributions[ref]
	if !ok {
		return nil, value.Newf(value.ErrKindNoSources, "registry: no distribution recorded for ref %x", uint64(ref))
	}
	return dist, nil
}

// LookupFqn returns the FqnSource list for fqn, or a non-fatal
// ModelNotFound error if the FQN was never extracted.
func (r *Registry) LookupFqn(fqn string) ([]Source, error) {
	srcs, ok := r.model.FqnSources[fqn]
	if !ok {
		return nil, value.Newf(value.ErrKindModelNotFound, "registry: no sources for fqn %q", fqn)
	}
	return srcs, nil
}

// Resolve returns the flat, ordered list of alternatives for ref with
// every FqnRef inlined (splatted) by its target's FqnSource list.
// Resolution is a single pass: the entries an FqnRef splats in
// (ClassInstantiation/StaticMethodCall/StaticPropertyAccess/ValueObject)
// are never themselves FqnRefs, so there is no further indirection to
// chase. An empty result is a first-class NoSourcesInDistribution error.
func (r *Registry) Resolve(ref DistRef) ([]Source, error) {
	dist, err := r.LookupDist(ref)
	if err != nil {
		return nil, err
	}

	resolved := make([]Source, 0, len(dist))
	for _, src := range dist {
		if src.Kind != SrcFqnRef {
			resolved = append(resolved, src)
			continue
		}
		inline, err := r.LookupFqn(src.FQN)
		if err != nil {
			return nil, value.Wrap(value.ErrKindNoSources, err, "registry: resolving FqnRef to %q", src.FQN)
		}
		resolved = append(resolved, inline...)
	}

	if len(resolved) == 0 {
		return nil, value.Newf(value.ErrKindNoSources, "registry: distribution %x has no values", uint64(ref))
	}
	return resolved, nil
}

// Equal reports whether two Sources are deeply identical
// (reflect.DeepEqual).
func Equal(a, b Source) bool {
	return reflect.DeepEqual(a, b)
}
