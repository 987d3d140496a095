package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(id uint64, idx int) DistPtr { return DistPtr{DistID: id, SourceIndex: idx} }

func TestZipperSetReadsBack(t *testing.T) {
	inner := NewString(ptr(1, 0), "inner")
	outer := NewArray(ptr(2, 0), []Value{inner})

	z := Zipper{}.DescendArrayElement(outer, 0)

	replaced := NewString(ptr(1, 1), "replaced")
	root := Set(z, replaced)

	require.Equal(t, KindArray, root.Kind)
	require.Len(t, root.Elements, 1)
	assert.True(t, Equal(root.Elements[0], replaced))
}

func TestZipperSetDoesNotMutateInput(t *testing.T) {
	inner := NewString(ptr(1, 0), "inner")
	outer := NewArray(ptr(2, 0), []Value{inner})

	z := Zipper{}.DescendArrayElement(outer, 0)
	_ = Set(z, NewString(ptr(1, 1), "replaced"))

	// outer, captured in the frame before the edit, must be unchanged.
	require.Len(t, outer.Elements, 1)
	assert.Equal(t, "inner", outer.Elements[0].Str)
}

func TestZipperPreservesSiblings(t *testing.T) {
	a := NewString(ptr(1, 0), "a")
	b := NewString(ptr(1, 0), "b")
	c := NewString(ptr(1, 0), "c")
	outer := NewArray(ptr(2, 0), []Value{a, b, c})

	z := Zipper{}.DescendArrayElement(outer, 1)
	root := Set(z, NewString(ptr(1, 1), "B"))

	require.Len(t, root.Elements, 3)
	assert.Equal(t, "a", root.Elements[0].Str)
	assert.Equal(t, "B", root.Elements[1].Str)
	assert.Equal(t, "c", root.Elements[2].Str)
}

func TestZipperDeleteArrayReindexes(t *testing.T) {
	a := NewString(ptr(1, 0), "a")
	b := NewString(ptr(1, 0), "b")
	c := NewString(ptr(1, 0), "c")
	outer := NewArray(ptr(2, 0), []Value{a, b, c})

	z := Zipper{}.DescendArrayElement(outer, 1)
	root := Delete(z)

	require.Len(t, root.Elements, 2)
	assert.Equal(t, "a", root.Elements[0].Str)
	assert.Equal(t, "c", root.Elements[1].Str)
}

func TestZipperDeleteThenSetRestoresMapEntry(t *testing.T) {
	v1 := NewString(ptr(1, 0), "v1")
	m := NewMapLiteral(ptr(2, 0), []Entry{{Key: "k1", Value: v1}})

	z := Zipper{}.DescendMapEntry(m, "k1")
	deleted := Delete(z)
	require.Empty(t, deleted.Entries)

	restored := Set(Zipper{}.DescendMapEntry(deleted, "k1"), v1)
	assert.True(t, Equal(restored, m))
}

func TestZipperStructFieldRoundtrip(t *testing.T) {
	name := NewString(ptr(1, 0), "MyStack")
	s := NewStructLiteral(ptr(2, 0), "M.Props", []Entry{{Key: "name", Value: name}})

	z := Zipper{}.DescendField(s, "name")
	updated := Set(z, NewString(ptr(1, 1), "Renamed"))

	require.Len(t, updated.Entries, 1)
	assert.Equal(t, "Renamed", updated.Entries[0].Value.Str)
}

func TestZipperNestedDescendRebuildsFullPath(t *testing.T) {
	leaf := NewNumber(ptr(3, 0), 1)
	mid := NewArray(ptr(2, 0), []Value{leaf})
	outer := NewClassInstantiation(ptr(1, 0), "M.Stack", []string{"items"}, []Value{mid})

	z := Zipper{}.DescendArgument(outer, 0).DescendArrayElement(mid, 0)
	root := Set(z, NewNumber(ptr(3, 1), 42))

	require.Equal(t, KindClassInstantiation, root.Kind)
	require.Len(t, root.Arguments, 1)
	require.Len(t, root.Arguments[0].Elements, 1)
	assert.InDelta(t, 42, root.Arguments[0].Elements[0].Num, 0)
}
