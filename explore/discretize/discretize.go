package discretize

import (
	"strconv"
	"strings"

	"github.com/outpostdev/typeforge/pkg/value"
)

// discretizer accumulates the Assignment statements emitted while
// rebuilding a value tree, plus the per-base-name counters that
// disambiguate repeated extractions (inner1, inner2, ...).
type discretizer struct {
	stmts  []Statement
	counts map[string]int
}

// Discretize flattens v into a sequence of statements: every nested
// ClassInstantiation/StaticMethodCall (one reachable only by descending
// into another compound node) is extracted to a named Assignment and
// replaced in place by a Variable reference; the top-level expression,
// even if itself a call, stays inline as the trailing Expression
// statement. If that trailing expression collapses to a bare Variable,
// its defining Assignment is folded back into the Expression instead of
// being left as a pointless single-use binding.
func Discretize(v value.Value) []Statement {
	d := &discretizer{counts: map[string]int{}}
	top := d.rebuildChildren(v)
	d.stmts = append(d.stmts, Statement{Kind: StmtExpression, Expr: top})
	d.collapseTail()
	return d.stmts
}

// rebuildChildren processes v's immediate children (if any), extracting
// any that are themselves calls, but never extracts v itself — that
// decision belongs to the caller, since only nested occurrences are
// extracted.
func (d *discretizer) rebuildChildren(v value.Value) value.Value {
	switch v.Kind {
	case value.KindClassInstantiation, value.KindStaticMethodCall:
		args := make([]value.Value, len(v.Arguments))
		for i, a := range v.Arguments {
			args[i] = d.extract(a)
		}
		out := v
		out.Arguments = args
		return out

	case value.KindStructLiteral:
		entries := make([]value.Entry, len(v.Entries))
		for i, e := range v.Entries {
			entries[i] = value.Entry{Key: e.Key, Value: d.extract(e.Value)}
		}
		out := v
		out.Entries = entries
		return out

	case value.KindMapLiteral:
		entries := make([]value.Entry, len(v.Entries))
		for i, e := range v.Entries {
			entries[i] = value.Entry{Key: e.Key, Value: d.extract(e.Value)}
		}
		out := v
		out.Entries = entries
		return out

	case value.KindArray:
		elems := make([]value.Value, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = d.extract(e)
		}
		out := v
		out.Elements = elems
		return out

	default:
		return v
	}
}

// extract fully rebuilds v (recursing into its own children first), and
// if the result is itself a call, extracts it to a fresh Assignment and
// returns a Variable reference in its place.
func (d *discretizer) extract(v value.Value) value.Value {
	rebuilt := d.rebuildChildren(v)
	if rebuilt.Kind != value.KindClassInstantiation && rebuilt.Kind != value.KindStaticMethodCall {
		return rebuilt
	}
	name := d.freshName(rebuilt.FQN)
	d.stmts = append(d.stmts, Statement{Kind: StmtAssignment, Name: name, Expr: rebuilt})
	return value.NewVariable(name)
}

func (d *discretizer) freshName(fqn string) string {
	base := lcfirst(simpleName(fqn))
	d.counts[base]++
	return base + strconv.Itoa(d.counts[base])
}

// collapseTail implements the tail-expression rule: if the trailing
// Expression statement is a bare Variable, its defining Assignment
// (found scanning backward by name) is removed and the Expression takes
// its right-hand side directly, rather than leaving a single-use
// binding immediately followed by a reference to it.
func (d *discretizer) collapseTail() {
	last := len(d.stmts) - 1
	if last < 0 || d.stmts[last].Kind != StmtExpression || d.stmts[last].Expr.Kind != value.KindVariable {
		return
	}
	name := d.stmts[last].Expr.Name
	for i := last - 1; i >= 0; i-- {
		if d.stmts[i].Kind == StmtAssignment && d.stmts[i].Name == name {
			expr := d.stmts[i].Expr
			d.stmts = append(d.stmts[:i], d.stmts[i+1:]...)
			d.stmts[len(d.stmts)-1] = Statement{Kind: StmtExpression, Expr: expr}
			return
		}
	}
}

// simpleName returns the last dot-separated segment of an FQN.
func simpleName(fqn string) string {
	if i := strings.LastIndexByte(fqn, '.'); i >= 0 {
		return fqn[i+1:]
	}
	return fqn
}

func lcfirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

