package evaluate

import (
	"reflect"
	"time"

	"github.com/outpostdev/typeforge/explore/discretize"
	"github.com/outpostdev/typeforge/internal/evalhost"
	"github.com/outpostdev/typeforge/pkg/value"
)

// Evaluator runs a discretized statement sequence against a Host. One
// Evaluator resolves the Scope root at most once, the first time a
// Scope value is evaluated, and reuses it for every later evaluation,
// including later Run calls on the same Evaluator.
type Evaluator struct {
	host  evalhost.Host
	scope reflect.Value
	bound bool
}

// New returns an Evaluator reading constructors, static members, and the
// scope root from host.
func New(host evalhost.Host) *Evaluator {
	return &Evaluator{host: host}
}

// Run evaluates stmts left to right, binding each Assignment into an
// internal variables map. Binding the same name twice is a fatal
// ErrKindRebind error, since it would mean discretize emitted malformed
// output. Returns the trailing Expression's evaluated result, boxed via
// reflect.Value.Interface.
func (e *Evaluator) Run(stmts []discretize.Statement) (any, error) {
	vars := make(map[string]reflect.Value, len(stmts))
	var result reflect.Value

	for _, s := range stmts {
		v, err := e.eval(s.Expr, vars)
		if err != nil {
			return nil, err
		}
		switch s.Kind {
		case discretize.StmtAssignment:
			if _, exists := vars[s.Name]; exists {
				return nil, value.Newf(value.ErrKindRebind, "evaluate: %q already bound", s.Name)
			}
			vars[s.Name] = v
		case discretize.StmtExpression:
			result = v
		}
	}

	if !result.IsValid() {
		return nil, value.Newf(value.ErrKindEvaluation, "evaluate: statement list has no trailing expression")
	}
	return result.Interface(), nil
}

func (e *Evaluator) eval(v value.Value, vars map[string]reflect.Value) (reflect.Value, error) {
	switch v.Kind {
	case value.KindVariable:
		rv, ok := vars[v.Name]
		if !ok {
			return reflect.Value{}, value.Newf(value.ErrKindEvaluation, "evaluate: unbound variable %q", v.Name)
		}
		return rv, nil

	case value.KindNoValue:
		return reflect.Value{}, value.Newf(value.ErrKindNoValueAtEval, "evaluate: no-value cannot be evaluated (generator bug)")

	case value.KindScope:
		return e.resolveScope()

	case value.KindPrimitive:
		return evalPrimitive(v), nil

	case value.KindStaticPropertyAccess:
		fqn := v.TargetFQN + "." + v.StaticProperty
		rv, err := e.host.Resolve(fqn)
		if err != nil {
			return reflect.Value{}, value.Wrap(value.ErrKindEvaluation, err, "evaluate: resolving static property %s", fqn)
		}
		return rv, nil

	case value.KindClassInstantiation:
		ctor, err := e.host.Resolve(v.FQN)
		if err != nil {
			return reflect.Value{}, value.Wrap(value.ErrKindEvaluation, err, "evaluate: resolving constructor %s", v.FQN)
		}
		return e.call(ctor, v.Arguments, vars, v.FQN)

	case value.KindStaticMethodCall:
		fqn := v.TargetFQN + "." + v.StaticMethod
		fn, err := e.host.Resolve(fqn)
		if err != nil {
			return reflect.Value{}, value.Wrap(value.ErrKindEvaluation, err, "evaluate: resolving static method %s", fqn)
		}
		return e.call(fn, v.Arguments, vars, fqn)

	case value.KindArray:
		elems := make([]any, 0, len(v.Elements))
		for _, el := range v.Elements {
			rv, err := e.eval(el, vars)
			if err != nil {
				return reflect.Value{}, err
			}
			elems = append(elems, rv.Interface())
		}
		return reflect.ValueOf(elems), nil

	case value.KindMapLiteral, value.KindStructLiteral:
		obj := make(map[string]any, len(v.Entries))
		for _, entry := range v.Entries {
			if entry.Value.Kind == value.KindNoValue {
				continue
			}
			rv, err := e.eval(entry.Value, vars)
			if err != nil {
				return reflect.Value{}, err
			}
			obj[entry.Key] = rv.Interface()
		}
		return reflect.ValueOf(obj), nil

	default:
		return reflect.Value{}, value.Newf(value.ErrKindEvaluation, "evaluate: unhandled value kind %s", v.Kind)
	}
}

func (e *Evaluator) resolveScope() (reflect.Value, error) {
	if e.bound {
		return e.scope, nil
	}
	rv, err := e.host.Resolve(evalhost.ScopeFQN)
	if err != nil {
		return reflect.Value{}, value.Wrap(value.ErrKindEvaluation, err, "evaluate: resolving scope root")
	}
	e.scope = rv
	e.bound = true
	return rv, nil
}

// call evaluates args, dropping any trailing NoValue entries (the
// Generator's and Mutator's encoding of an omitted optional argument,
// never meant to reach the host; struct and map literals drop NoValue
// entries the same way, in eval's KindMapLiteral/KindStructLiteral
// case), converts each to the callee's declared parameter type, and
// invokes it.
func (e *Evaluator) call(fn reflect.Value, args []value.Value, vars map[string]reflect.Value, label string) (reflect.Value, error) {
	n := len(args)
	for n > 0 && args[n-1].Kind == value.KindNoValue {
		n--
	}

	in := make([]reflect.Value, 0, n)
	ft := fn.Type()
	for i := 0; i < n; i++ {
		rv, err := e.eval(args[i], vars)
		if err != nil {
			return reflect.Value{}, err
		}
		in = append(in, convertArg(rv, ft, i))
	}

	out := fn.Call(in)
	if len(out) == 0 {
		return reflect.Value{}, value.Newf(value.ErrKindEvaluation, "evaluate: %s returned no value", label)
	}
	return out[0], nil
}

// convertArg adapts rv to the callee's i-th declared parameter type when
// the two differ but are convertible (e.g. the generator's float64
// Number payload targeting an int parameter).
func convertArg(rv reflect.Value, ft reflect.Type, i int) reflect.Value {
	if ft.NumIn() == 0 {
		return rv
	}
	want := ft.In(i)
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		want = ft.In(ft.NumIn() - 1).Elem()
	}
	if rv.Type() == want || !rv.Type().ConvertibleTo(want) {
		return rv
	}
	return rv.Convert(want)
}

func evalPrimitive(v value.Value) reflect.Value {
	switch v.Prim {
	case value.PrimString:
		return reflect.ValueOf(v.Str)
	case value.PrimNumber:
		return reflect.ValueOf(v.Num)
	case value.PrimBoolean:
		return reflect.ValueOf(v.Bool)
	case value.PrimDate:
		return reflect.ValueOf(v.Date)
	default:
		return reflect.ValueOf(time.Time{})
	}
}
