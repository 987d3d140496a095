package mutate

import (
	"math"

	"github.com/outpostdev/typeforge/explore/generate"
	"github.com/outpostdev/typeforge/internal/prng"
	"github.com/outpostdev/typeforge/model/custom"
	"github.com/outpostdev/typeforge/model/registry"
	"github.com/outpostdev/typeforge/pkg/value"
)

// Proposer receives every mutation candidate as it is enumerated,
// whether or not the reservoir ends up keeping it — the hook the CLI's
// verbosity flags use to print "N candidates enumerated" diagnostics
// without the mutator itself depending on logging.
type Proposer interface {
	Propose(candidate value.Value)
}

// Options configures a Mutator.
type Options struct {
	Custom *custom.Registry
	// K is how many variants to keep, reservoir-sampled.
	K int
	// Observer, if set, is notified of every proposal as it is enumerated.
	Observer Proposer
}

// DefaultOptions returns an Options keeping 1 variant with the built-in
// custom distribution registry.
func DefaultOptions() Options {
	return Options{Custom: custom.Default(), K: 1}
}

// Mutator enumerates single-point edits of a value and keeps up to K of
// them via reservoir sampling. A Mutator may be used for exactly one
// Mutate call.
type Mutator struct {
	reg  *registry.Registry
	rnd  *prng.Random
	opts Options
	gen  *generate.Generator

	used  bool
	res   *prng.Reservoir
	slots []value.Value
}

// New returns a Mutator over reg, drawing randomness from rnd.
func New(reg *registry.Registry, rnd *prng.Random, opts Options) *Mutator {
	if opts.Custom == nil {
		opts.Custom = custom.Default()
	}
	if opts.K <= 0 {
		opts.K = 1
	}
	genOpts := generate.DefaultOptions()
	genOpts.Custom = opts.Custom
	return &Mutator{
		reg:  reg,
		rnd:  rnd,
		opts: opts,
		gen:  generate.New(reg, rnd, genOpts),
	}
}

// Mutate enumerates every single-point mutation reachable from root and
// returns up to Options.K of them, reservoir-sampled uniformly over the
// full enumeration without ever materializing it. It may be called at
// most once per Mutator; a second call returns ErrKindMutatorReused,
// since the reservoir's draw counter is instance state and reusing it
// would silently bias the sample.
func (m *Mutator) Mutate(root value.Value) ([]value.Value, error) {
	if m.used {
		return nil, value.Newf(value.ErrKindMutatorReused, "mutate: Mutate called more than once on the same Mutator")
	}
	m.used = true

	m.res = prng.NewReservoir(m.rnd, m.opts.K)
	m.slots = make([]value.Value, m.opts.K)

	m.mutateValue(root, value.Zipper{})

	n := m.res.Seen()
	if n > m.opts.K {
		n = m.opts.K
	}
	return m.slots[:n], nil
}

// propose records one enumerated candidate: it rebuilds the full root by
// folding candidate in at z, offers it to the reservoir, and notifies
// the observer (if any) regardless of whether the reservoir kept it.
func (m *Mutator) propose(z value.Zipper, candidate value.Value) {
	newRoot := value.Set(z, candidate)
	slot, keep := m.res.Offer()
	if keep {
		m.slots[slot] = newRoot
	}
	if m.opts.Observer != nil {
		m.opts.Observer.Propose(candidate)
	}
}

// nodeProposer adapts a fixed zipper position to the custom.Proposer
// contract, so a Custom Source's Mutate can propose replacements for
// itself without knowing about roots or zippers.
type nodeProposer struct {
	m *Mutator
	z value.Zipper
}

func (p nodeProposer) Propose(candidate value.Value) { p.m.propose(p.z, candidate) }

func (m *Mutator) sourceFor(ptr *value.DistPtr) (registry.Source, bool) {
	if ptr == nil {
		return registry.Source{}, false
	}
	srcs, err := m.reg.Resolve(registry.DistRef(ptr.DistID))
	if err != nil || ptr.SourceIndex >= len(srcs) {
		return registry.Source{}, false
	}
	return srcs[ptr.SourceIndex], true
}

// mutateValue is the candidate-enumeration walk: Enter (sibling
// switching) -> RecurseStructural (kind-specific structural edits,
// which themselves enter/exit child nodes) -> Exit.
func (m *Mutator) mutateValue(v value.Value, z value.Zipper) {
	m.proposeSiblings(v, z)
	m.recurseStructural(v, z)
}

// proposeSiblings is the "switch alternative" mutation: for every
// sibling source in the same distribution (every index other than the
// one currently chosen), propose replacing this node with a minimally
// built value from that alternative.
func (m *Mutator) proposeSiblings(v value.Value, z value.Zipper) {
	if v.Ptr == nil {
		return
	}
	srcs, err := m.reg.Resolve(registry.DistRef(v.Ptr.DistID))
	if err != nil {
		return
	}
	for j, src := range srcs {
		if j == v.Ptr.SourceIndex {
			continue
		}
		newPtr := value.DistPtr{DistID: v.Ptr.DistID, SourceIndex: j}
		cand, err := m.gen.MinimalFromSource(src, newPtr, z)
		if err != nil {
			continue
		}
		m.propose(z, cand)
	}
}

func (m *Mutator) recurseStructural(v value.Value, z value.Zipper) {
	switch v.Kind {
	case value.KindArray:
		m.recurseArray(v, z)
	case value.KindMapLiteral:
		m.recurseMap(v, z)
	case value.KindClassInstantiation, value.KindStaticMethodCall:
		m.recurseCall(v, z)
	case value.KindStructLiteral:
		for _, e := range v.Entries {
			m.mutateValue(e.Value, z.DescendField(v, e.Key))
		}
	case value.KindPrimitive:
		if cand, ok := m.primitiveMutation(v); ok {
			m.propose(z, cand)
		}
	}

	if src, ok := m.sourceFor(v.Ptr); ok && src.Kind == registry.SrcCustom {
		if source, err := m.opts.Custom.Lookup(src.CustomName); err == nil {
			source.Mutate(v, z, nodeProposer{m: m, z: z})
		}
	}
}

func (m *Mutator) recurseArray(v value.Value, z value.Zipper) {
	ptr := ptrOf(v)

	if src, ok := m.sourceFor(v.Ptr); ok && src.Kind == registry.SrcArray {
		newIdx := len(v.Elements)
		newElem, err := m.gen.MinimalFromRef(src.Ref, z.DescendArrayElement(v, newIdx))
		if err == nil {
			appended := append(cloneValues(v.Elements), newElem)
			m.propose(z, value.NewArray(ptr, appended))
		}
	}

	if len(v.Elements) == 0 {
		return
	}
	idx := m.rnd.Intn(len(v.Elements))
	deleted := removeValueAt(v.Elements, idx)
	m.propose(z, value.NewArray(ptr, deleted))
	m.mutateValue(v.Elements[idx], z.DescendArrayElement(v, idx))
}

func (m *Mutator) recurseMap(v value.Value, z value.Zipper) {
	ptr := ptrOf(v)

	if src, ok := m.sourceFor(v.Ptr); ok && src.Kind == registry.SrcMap {
		key := randomKey(m.rnd)
		newVal, err := m.gen.MinimalFromRef(src.Ref, z.DescendMapEntry(v, key))
		if err == nil {
			appended := append(cloneEntries(v.Entries), value.Entry{Key: key, Value: newVal})
			m.propose(z, value.NewMapLiteral(ptr, appended))
		}
	}

	if len(v.Entries) == 0 {
		return
	}
	idx := m.rnd.Intn(len(v.Entries))
	key := v.Entries[idx].Key
	elem := v.Entries[idx].Value
	deleted := removeEntryAt(v.Entries, idx)
	m.propose(z, value.NewMapLiteral(ptr, deleted))
	m.mutateValue(elem, z.DescendMapEntry(v, key))
}

func (m *Mutator) recurseCall(v value.Value, z value.Zipper) {
	src, ok := m.sourceFor(v.Ptr)
	if !ok {
		return
	}

	if len(v.Arguments) < len(src.Params) {
		next := src.Params[len(v.Arguments)]
		newArg, err := m.gen.MinimalFromRef(next.Dist, z.DescendArgument(v, len(v.Arguments)))
		if err != nil {
			return
		}
		newArgs := append(cloneValues(v.Arguments), newArg)
		newNames := append(append([]string{}, v.ParameterNames...), next.Name)
		out := v
		out.Arguments = newArgs
		out.ParameterNames = newNames
		m.propose(z, out)
		return
	}

	if len(v.Arguments) == 0 {
		return
	}
	before := m.res.Seen()
	for _, idx := range m.rnd.Perm(len(v.Arguments)) {
		m.mutateValue(v.Arguments[idx], z.DescendArgument(v, idx))
		if m.res.Seen() > before {
			break
		}
	}
}

// primitiveMutation proposes exactly one replacement from the per-type
// mutation family. Date carries no mutation family of its own (only
// sibling-switching ever varies it).
func (m *Mutator) primitiveMutation(v value.Value) (value.Value, bool) {
	ptr := ptrOf(v)
	switch v.Prim {
	case value.PrimBoolean:
		return value.NewBoolean(ptr, !v.Bool), true
	case value.PrimNumber:
		k := float64(m.rnd.IntRange(1, 5))
		switch m.rnd.Intn(4) {
		case 0:
			return value.NewNumber(ptr, v.Num+k), true
		case 1:
			return value.NewNumber(ptr, v.Num-k), true
		case 2:
			return value.NewNumber(ptr, v.Num*k), true
		default:
			return value.NewNumber(ptr, math.Round(v.Num/k)), true
		}
	case value.PrimString:
		return value.NewString(ptr, m.mutateString(v.Str)), true
	default:
		return value.Value{}, false
	}
}

const mutateCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func (m *Mutator) mutateString(s string) string {
	variants := 3
	if len(s) == 0 {
		variants = 2
	}
	switch m.rnd.Intn(variants) {
	case 0:
		return s + randomString(m.rnd, m.rnd.IntRange(1, 4))
	case 1:
		return randomString(m.rnd, m.rnd.IntRange(1, 4)) + s
	default:
		start := m.rnd.Intn(len(s))
		end := start + m.rnd.IntRange(1, len(s)-start)
		return s[:start] + s[end:]
	}
}

func randomString(rnd *prng.Random, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = mutateCharset[rnd.Intn(len(mutateCharset))]
	}
	return string(b)
}

func randomKey(rnd *prng.Random) string {
	return randomString(rnd, rnd.IntRange(1, 10))
}

func ptrOf(v value.Value) value.DistPtr {
	if v.Ptr == nil {
		return value.DistPtr{}
	}
	return *v.Ptr
}

func cloneValues(vs []value.Value) []value.Value {
	out := make([]value.Value, len(vs))
	copy(out, vs)
	return out
}

func cloneEntries(es []value.Entry) []value.Entry {
	out := make([]value.Entry, len(es))
	copy(out, es)
	return out
}

func removeValueAt(vs []value.Value, idx int) []value.Value {
	out := cloneValues(vs)
	return append(out[:idx], out[idx+1:]...)
}

func removeEntryAt(es []value.Entry, idx int) []value.Entry {
	out := cloneEntries(es)
	return append(out[:idx], out[idx+1:]...)
}
