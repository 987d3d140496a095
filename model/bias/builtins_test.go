package bias

import (
	"testing"

	"github.com/outpostdev/typeforge/model/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeIDRewritesScopeAndId(t *testing.T) {
	reg := registry.New()
	src := registry.Source{
		Kind: registry.SrcClassInstantiation,
		FQN:  "M.Bucket",
		Params: []registry.ParameterSource{
			{Name: "scope"},
			{Name: "id"},
			{Name: "props"},
		},
	}
	ctx := Context{
		OwnerFQN: "M.Bucket",
		Params: []ParamContext{
			{Name: "scope", Index: 0, IsFqn: true, FQN: "M.IConstruct"},
			{Name: "id", Index: 1, Primitive: "string"},
			{Name: "props", Index: 2, IsFqn: true, FQN: "M.BucketProps"},
		},
	}

	out, err := ScopeID{}.Bias(src, ctx, reg)
	require.NoError(t, err)

	scopeSources, err := reg.LookupDist(out.Params[0].Dist)
	require.NoError(t, err)
	assert.Equal(t, registry.SrcCustom, scopeSources[0].Kind)
	assert.Equal(t, "scope", scopeSources[0].CustomName)

	idSources, err := reg.LookupDist(out.Params[1].Dist)
	require.NoError(t, err)
	assert.Equal(t, "constructId", idSources[0].CustomName)

	assert.Equal(t, registry.DistRef(0), out.Params[2].Dist, "untouched param keeps its original (zero) dist")
}

func TestArnLikeRewritesArnNamedStringParam(t *testing.T) {
	reg := registry.New()
	src := registry.Source{Params: []registry.ParameterSource{{Name: "roleArn"}}}
	ctx := Context{Params: []ParamContext{{Name: "roleArn", Primitive: "string"}}}

	out, err := ArnLike{}.Bias(src, ctx, reg)
	require.NoError(t, err)

	sources, err := reg.LookupDist(out.Params[0].Dist)
	require.NoError(t, err)
	assert.Equal(t, registry.SrcConstant, sources[0].Kind)
}

func TestTokenLikeIgnoresNonMatchingParam(t *testing.T) {
	reg := registry.New()
	src := registry.Source{Params: []registry.ParameterSource{{Name: "count"}}}
	ctx := Context{Params: []ParamContext{{Name: "count", Primitive: "number"}}}

	out, err := TokenLike{}.Bias(src, ctx, reg)
	require.NoError(t, err)
	assert.Equal(t, registry.DistRef(0), out.Params[0].Dist)
}

func TestChainAppliesPoliciesInOrder(t *testing.T) {
	reg := registry.New()
	defaults := Default()
	chain, err := defaults.Chain("scopeid", "arnlike", "namelike")
	require.NoError(t, err)

	src := registry.Source{
		Params: []registry.ParameterSource{{Name: "scope"}, {Name: "id"}, {Name: "bucketName"}},
	}
	ctx := Context{
		Params: []ParamContext{
			{Name: "scope", Index: 0, IsFqn: true, FQN: "M.IConstruct"},
			{Name: "id", Index: 1, Primitive: "string"},
			{Name: "bucketName", Index: 2, Primitive: "string"},
		},
	}

	out, err := chain.Bias(src, ctx, reg)
	require.NoError(t, err)

	nameSources, err := reg.LookupDist(out.Params[2].Dist)
	require.NoError(t, err)
	assert.Equal(t, "slug", nameSources[0].CustomName)
}
