package value

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTripEveryVariant(t *testing.T) {
	samples := []Value{
		NewClassInstantiation(ptr(1, 0), "M.Stack", []string{"scope", "id"}, []Value{
			NewScope(ptr(2, 0)),
			NewString(ptr(3, 0), "MyStack"),
		}),
		NewStaticMethodCall(ptr(4, 0), "M.Size", "of", "M.Size", []string{"mebibytes"}, []Value{
			NewNumber(ptr(5, 0), 512),
		}),
		NewStaticPropertyAccess(ptr(6, 0), "M.E", "A", "M.E"),
		NewStructLiteral(ptr(7, 0), "M.Props", []Entry{
			{Key: "name", Value: NewString(ptr(8, 0), "x")},
		}),
		NewMapLiteral(ptr(9, 0), []Entry{
			{Key: "k", Value: NewBoolean(ptr(10, 0), true)},
		}),
		NewArray(ptr(11, 0), []Value{NewNumber(ptr(12, 0), 1)}),
		NewDate(ptr(13, 0), time.Unix(0, 0).UTC()),
		NewNoValue(ptr(14, 0)),
		NewScope(ptr(15, 0)),
		NewVariable("stack1"),
	}

	for _, want := range samples {
		raw, err := json.Marshal(want)
		require.NoError(t, err)

		var got Value
		require.NoError(t, json.Unmarshal(raw, &got))

		assert.Truef(t, Equal(want, got), "round trip mismatch for kind %s: %+v != %+v", want.Kind, want, got)
	}
}

func TestHashIsDeterministicAndOrderSensitive(t *testing.T) {
	a := NewStructLiteral(ptr(1, 0), "M.Props", []Entry{
		{Key: "name", Value: NewString(ptr(2, 0), "x")},
		{Key: "count", Value: NewNumber(ptr(3, 0), 1)},
	})
	b := NewStructLiteral(ptr(1, 0), "M.Props", []Entry{
		{Key: "count", Value: NewNumber(ptr(3, 0), 1)},
		{Key: "name", Value: NewString(ptr(2, 0), "x")},
	})

	assert.Equal(t, a.Hash(), a.Hash())
	assert.NotEqual(t, a.Hash(), b.Hash())
}
