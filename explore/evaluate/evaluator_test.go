package evaluate

import (
	"reflect"
	"testing"

	"github.com/outpostdev/typeforge/explore/discretize"
	"github.com/outpostdev/typeforge/internal/evalhost"
	"github.com/outpostdev/typeforge/pkg/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type thing struct {
	Name  string
	Count int
}

type fixtureModule struct {
	Thing       func(name string, count float64) *thing
	Outer       func(t *thing) string
	Color       struct{ RED string }
	OptionalFn  func(name string, suffix string) string
}

func newFixtureHost() *evalhost.DefaultHost {
	h := evalhost.NewDefaultHost()
	h.Register("M", fixtureModule{
		Thing: func(name string, count float64) *thing { return &thing{Name: name, Count: int(count)} },
		Outer: func(t *thing) string { return t.Name },
		Color: struct{ RED string }{RED: "red"},
		OptionalFn: func(name string, suffix string) string {
			if suffix == "" {
				return name
			}
			return name + "-" + suffix
		},
	})
	return h
}

func ptr(id uint64) value.DistPtr { return value.DistPtr{DistID: id} }

func TestRunNestedConstructorCall(t *testing.T) {
	inner := value.NewClassInstantiation(ptr(1), "M.Thing",
		[]string{"name", "count"},
		[]value.Value{value.NewString(ptr(2), "widget"), value.NewNumber(ptr(3), 2)})
	outer := value.NewStaticMethodCall(ptr(4), "M", "Outer", "M", []string{"t"}, []value.Value{inner})

	stmts := discretize.Discretize(outer)
	e := New(newFixtureHost())
	result, err := e.Run(stmts)
	require.NoError(t, err)
	assert.Equal(t, "widget", result)
}

func TestRunRejectsDoubleBind(t *testing.T) {
	stmts := []discretize.Statement{
		{Kind: discretize.StmtAssignment, Name: "x", Expr: value.NewString(ptr(1), "a")},
		{Kind: discretize.StmtAssignment, Name: "x", Expr: value.NewString(ptr(2), "b")},
		{Kind: discretize.StmtExpression, Expr: value.NewVariable("x")},
	}
	e := New(newFixtureHost())
	_, err := e.Run(stmts)
	require.Error(t, err)
	var verr *value.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, value.ErrKindRebind, verr.Kind)
}

func TestRunStandaloneNoValueIsFatal(t *testing.T) {
	stmts := []discretize.Statement{
		{Kind: discretize.StmtExpression, Expr: value.NewNoValue(ptr(1))},
	}
	e := New(newFixtureHost())
	_, err := e.Run(stmts)
	require.Error(t, err)
	var verr *value.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, value.ErrKindNoValueAtEval, verr.Kind)
}

func TestRunDropsTrailingNoValueArguments(t *testing.T) {
	call := value.NewClassInstantiation(ptr(1), "M.Thing",
		[]string{"name", "count"},
		[]value.Value{value.NewString(ptr(2), "widget"), value.NewNoValue(value.DistPtr{DistID: 9})})

	// count has a default on the host side (zero value applies since the
	// function takes a float64, not a pointer) — use a host function that
	// tolerates a single argument via reflection's Call requiring exact
	// arity, so register a single-arg variant instead.
	h := evalhost.NewDefaultHost()
	h.Register("M", struct {
		Thing func(name string) *thing
	}{Thing: func(name string) *thing { return &thing{Name: name} }})

	stmts := discretize.Discretize(call)
	e := New(h)
	result, err := e.Run(stmts)
	require.NoError(t, err)
	got := result.(*thing)
	assert.Equal(t, "widget", got.Name)
}

func TestRunStructLiteralOmitsNoValueEntries(t *testing.T) {
	props := value.NewStructLiteral(ptr(1), "M.Props", []value.Entry{
		{Key: "name", Value: value.NewString(ptr(2), "widget")},
		{Key: "count", Value: value.NewNoValue(ptr(3))},
	})
	stmts := []discretize.Statement{{Kind: discretize.StmtExpression, Expr: props}}

	e := New(newFixtureHost())
	result, err := e.Run(stmts)
	require.NoError(t, err)
	obj := result.(map[string]any)
	assert.Equal(t, "widget", obj["name"])
	_, hasCount := obj["count"]
	assert.False(t, hasCount, "omitted optional field must not appear in the evaluated struct")
}

func TestRunStaticPropertyAccess(t *testing.T) {
	access := value.NewStaticPropertyAccess(ptr(1), "M.Color", "RED", "M.Color")
	stmts := []discretize.Statement{{Kind: discretize.StmtExpression, Expr: access}}

	e := New(newFixtureHost())
	result, err := e.Run(stmts)
	require.NoError(t, err)
	assert.Equal(t, "red", result)
}

// countingHost wraps a Host and counts calls per fqn, used to check the
// Evaluator only resolves the scope root once per run.
type countingHost struct {
	evalhost.Host
	counts map[string]int
}

func (h *countingHost) Resolve(fqn string) (reflect.Value, error) {
	h.counts[fqn]++
	return h.Host.Resolve(fqn)
}

func TestRunResolvesScopeExactlyOnce(t *testing.T) {
	h := evalhost.NewDefaultHost()
	h.Register(evalhost.ScopeFQN, "root-object")
	ch := &countingHost{Host: h, counts: map[string]int{}}

	stmts := []discretize.Statement{
		{Kind: discretize.StmtAssignment, Name: "s1", Expr: value.NewScope(ptr(1))},
		{Kind: discretize.StmtAssignment, Name: "s2", Expr: value.NewScope(ptr(2))},
		{Kind: discretize.StmtExpression, Expr: value.NewVariable("s2")},
	}

	e := New(ch)
	result, err := e.Run(stmts)
	require.NoError(t, err)
	assert.Equal(t, "root-object", result)
	assert.Equal(t, 1, ch.counts[evalhost.ScopeFQN])
}
