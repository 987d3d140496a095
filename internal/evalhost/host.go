package evalhost

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Host resolves a fully-qualified name to the reflect.Value of the real
// host member it names: a constructor function, a static method, a
// static property, or the scope root. The Evaluator never talks to a
// host library directly; it only ever goes through this one method.
type Host interface {
	Resolve(fqn string) (reflect.Value, error)
}

// ScopeFQN is the reserved key an Evaluator resolves at most once, the
// first time it evaluates a Scope value, to obtain the host-provided root
// object a Scope value stands in for.
const ScopeFQN = "$scope"

// DefaultHost is the reflect-backed Host: fqn resolution splits on ".",
// the leftmost segment names a registered root object, and every
// subsequent segment indexes a field, method, or map key on whatever
// the previous segment resolved to. Resolved paths are memoized in a
// sync.Map owned by each DefaultHost, since walking a multi-segment path by
// reflection repeatedly for every generated value would otherwise
// re-pay the same FieldByName/MethodByName cost on every call.
type DefaultHost struct {
	mu    sync.RWMutex
	roots map[string]reflect.Value
	cache sync.Map // string fqn -> reflect.Value
}

// NewDefaultHost returns an empty DefaultHost. Register roots before use.
func NewDefaultHost() *DefaultHost {
	return &DefaultHost{roots: make(map[string]reflect.Value)}
}

// Register binds name as a root segment resolving to v. Registering the
// same name twice replaces the previous binding and invalidates nothing
// already cached under paths through the old value — callers register
// roots once at startup, before any Resolve call.
func (h *DefaultHost) Register(name string, v any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.roots[name] = reflect.ValueOf(v)
}

// Resolve implements Host.
func (h *DefaultHost) Resolve(fqn string) (reflect.Value, error) {
	if cached, ok := h.cache.Load(fqn); ok {
		return cached.(reflect.Value), nil
	}

	segments := strings.Split(fqn, ".")
	h.mu.RLock()
	cur, ok := h.roots[segments[0]]
	h.mu.RUnlock()
	if !ok {
		return reflect.Value{}, fmt.Errorf("evalhost: no root registered for %q (resolving %q)", segments[0], fqn)
	}

	for _, seg := range segments[1:] {
		next, err := member(cur, seg)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("evalhost: resolving %q: %w", fqn, err)
		}
		cur = next
	}

	h.cache.Store(fqn, cur)
	return cur, nil
}

// member looks up name as a field, method, or map key on v, dereferencing
// pointers and interfaces first.
func member(v reflect.Value, name string) (reflect.Value, error) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("nil pointer has no member %q", name)
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		if f := v.FieldByName(name); f.IsValid() {
			return f, nil
		}
		if v.CanAddr() {
			if m := v.Addr().MethodByName(name); m.IsValid() {
				return m, nil
			}
		}
	case reflect.Map:
		if mv := v.MapIndex(reflect.ValueOf(name)); mv.IsValid() {
			return mv, nil
		}
	}

	if m := v.MethodByName(name); m.IsValid() {
		return m, nil
	}

	return reflect.Value{}, fmt.Errorf("no member %q on %s", name, v.Type())
}
