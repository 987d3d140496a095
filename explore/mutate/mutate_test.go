package mutate

import (
	"testing"

	"github.com/outpostdev/typeforge/explore/generate"
	"github.com/outpostdev/typeforge/internal/prng"
	"github.com/outpostdev/typeforge/model/registry"
	"github.com/outpostdev/typeforge/pkg/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildNumberOrBoolModel records a distribution with two primitive
// alternatives and an FQN "M.Thing" that is a class instantiation
// taking a single "count" parameter of that distribution. It is small
// enough to enumerate by hand: sibling-switch to boolean, or mutate the
// number itself.
func buildNumberOrBoolModel(t *testing.T) (*registry.Registry, value.Value) {
	t.Helper()
	rr := registry.New()
	ref, err := rr.Record(registry.ValueDistribution{
		{Kind: registry.SrcPrimitive, PrimitiveName: "number"},
		{Kind: registry.SrcPrimitive, PrimitiveName: "boolean"},
	})
	require.NoError(t, err)
	rr.Model().AddFqnSource("M.Thing", registry.Source{
		Kind: registry.SrcClassInstantiation, FQN: "M.Thing",
		Params: []registry.ParameterSource{{Name: "count", Dist: ref}},
	})

	g := generate.New(rr, prng.New(11), generate.DefaultOptions())
	root, err := g.Minimal("M.Thing")
	require.NoError(t, err)
	require.Equal(t, value.KindClassInstantiation, root.Kind)
	require.Len(t, root.Arguments, 1)
	require.Equal(t, value.PrimNumber, root.Arguments[0].Prim)
	return rr, root
}

func TestMutateSinglePathDiffWithK1(t *testing.T) {
	rr, root := buildNumberOrBoolModel(t)

	m := New(rr, prng.New(42), Options{K: 1})
	out, err := m.Mutate(root)
	require.NoError(t, err)
	require.Len(t, out, 1)

	variant := out[0]
	require.Equal(t, value.KindClassInstantiation, variant.Kind)
	require.Len(t, variant.Arguments, 1)

	// Exactly the "count" argument differs from root; everything else
	// about the enclosing call is untouched.
	assert.Equal(t, root.FQN, variant.FQN)
	assert.Equal(t, root.ParameterNames, variant.ParameterNames)
	assert.NotEqual(t, root.Arguments[0], variant.Arguments[0])
}

func TestMutateIsOneShot(t *testing.T) {
	rr, root := buildNumberOrBoolModel(t)

	m := New(rr, prng.New(1), Options{K: 1})
	_, err := m.Mutate(root)
	require.NoError(t, err)

	_, err = m.Mutate(root)
	require.Error(t, err)
	var verr *value.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, value.ErrKindMutatorReused, verr.Kind)
}

// TestMutateReservoirUniformityOverManySeeds checks that, across many
// independent (seed, mutator) runs each keeping K=1 variant, the variant
// actually kept is not concentrated on a single candidate: with one
// number-mutation family (4 outcomes) plus one boolean sibling-switch
// candidate, over many trials every outcome bucket should receive a
// non-trivial share. This is a coarse chi-squared-style sanity check,
// not an exact uniformity proof.
func TestMutateReservoirUniformityOverManySeeds(t *testing.T) {
	const trials = 2000
	counts := map[string]int{}

	for seed := uint64(0); seed < trials; seed++ {
		rr, root := buildNumberOrBoolModel(t)
		m := New(rr, prng.New(seed+1000), Options{K: 1})
		out, err := m.Mutate(root)
		require.NoError(t, err)
		require.Len(t, out, 1)

		arg := out[0].Arguments[0]
		switch arg.Prim {
		case value.PrimBoolean:
			counts["bool"]++
		case value.PrimNumber:
			counts["number"]++
		default:
			t.Fatalf("unexpected primitive kind %v", arg.Prim)
		}
	}

	require.Len(t, counts, 2)
	for kind, n := range counts {
		assert.Greaterf(t, n, trials/10, "bucket %q under-represented: %d/%d", kind, n, trials)
	}
}

func TestMutateArrayAppendAndDelete(t *testing.T) {
	rr := registry.New()
	elemRef, err := rr.Record(registry.ValueDistribution{{Kind: registry.SrcPrimitive, PrimitiveName: "string"}})
	require.NoError(t, err)
	rr.Model().AddFqnSource("M.List", registry.Source{Kind: registry.SrcArray, Ref: elemRef})

	g := generate.New(rr, prng.New(5), generate.DefaultOptions())
	root, err := g.Minimal("M.List")
	require.NoError(t, err)
	require.Equal(t, value.KindArray, root.Kind)
	require.Len(t, root.Elements, 1)

	m := New(rr, prng.New(99), Options{K: 4})
	out, err := m.Mutate(root)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	var sawAppend, sawDelete bool
	for _, v := range out {
		require.Equal(t, value.KindArray, v.Kind)
		switch len(v.Elements) {
		case 2:
			sawAppend = true
		case 0:
			sawDelete = true
		}
	}
	assert.True(t, sawAppend, "expected at least one kept variant with an appended element")
	assert.True(t, sawDelete, "expected at least one kept variant with the sole element deleted")
}

func TestMutateObserverSeesEveryProposal(t *testing.T) {
	rr, root := buildNumberOrBoolModel(t)

	obs := &countingProposer{}
	m := New(rr, prng.New(7), Options{K: 1, Observer: obs})
	_, err := m.Mutate(root)
	require.NoError(t, err)

	// The boolean sibling-switch and the one number mutation drawn from
	// the number family should both have been proposed, regardless of
	// which one the reservoir kept.
	assert.GreaterOrEqual(t, obs.count, 2)
}

type countingProposer struct{ count int }

func (p *countingProposer) Propose(value.Value) { p.count++ }
