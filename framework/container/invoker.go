package container

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/armature-go/armature/framework/reflection"
)

// ── Callable shapes ───────────────────────────────────────────────────────────

// Bound pairs an existing instance with one of its method names — the
// "already constructed object" callable shape.
type Bound struct {
	Instance any
	Method   string
}

// Func wraps a plain function or closure with override names for its
// parameters in declaration order. Build one with Fn.
type Func struct {
	fn    any
	names []string
}

// Fn makes a closure callable with named parameters:
//
//	c.Call(container.Fn(func(db *Database, label string) string {
//	    return label + "@" + db.DSN
//	}, "db", "label"), map[string]any{"label": "primary"})
//
// Parameters beyond the named ones can still be injected by type.
func Fn(fn any, paramNames ...string) Func {
	return Func{fn: fn, names: paramNames}
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// ── Call ──────────────────────────────────────────────────────────────────────

// Call invokes target with container-resolved arguments and returns the
// call's first result. target is one of four shapes:
//
//   - "Class::Method" — resolves "Class" through the singleton path
//     (a registered type, or an instance bound with Set) and calls the
//     method on it; a method registered as Static is called directly,
//     without constructing an instance
//   - Bound{instance, "Method"} — calls the method on the given instance
//   - Fn(fn, names...) — calls the function with named parameters
//   - a bare func value — calls it with type-injected parameters only
//
// Each parameter resolves exactly like a constructor parameter: named
// override first, then registered declared type, then declared default. A
// trailing non-nil error returned by the callable propagates unmodified.
func (c *Container) Call(target any, overrides ...map[string]any) (any, error) {
	c.resolveMu.Lock()
	defer c.resolveMu.Unlock()
	ov := firstOverride(overrides)

	switch t := target.(type) {
	case string:
		return c.callAction(t, ov)
	case Bound:
		return c.callBound(t, ov)
	case Func:
		return c.callFunc(reflect.ValueOf(t.fn), t.names, ov)
	default:
		v := reflect.ValueOf(target)
		if v.Kind() == reflect.Func {
			return c.callFunc(v, nil, ov)
		}
		return nil, &ContainerError{ID: fmt.Sprintf("%T", target), Reason: "not a callable shape"}
	}
}

// callAction handles the "Class::Method" string shape.
func (c *Container) callAction(action string, overrides map[string]any) (any, error) {
	id, method, ok := strings.Cut(action, "::")
	if !ok || id == "" || method == "" {
		return nil, &ContainerError{ID: action, Reason: `callable string must be "Class::Method"`}
	}

	info, known := c.types.Describe(id)
	if !known {
		// The identifier may still be bound as an instance via Set (or by
		// a deferred loader). Resolve it through the singleton path and
		// dispatch on the value's method set; an unknown identifier fails
		// inside resolve with NotFound.
		instance, err := c.resolve(id, nil, false)
		if err != nil {
			return nil, err
		}
		return c.callBound(Bound{Instance: instance, Method: method}, overrides)
	}
	mi, found := info.Method(method)
	if !found {
		return nil, &ContainerError{ID: id, Reason: "no method " + strconv.Quote(method)}
	}

	if mi.Static() {
		return c.invoke(mi.Func(), mi.Params(), overrides)
	}

	instance, err := c.resolve(id, nil, false)
	if err != nil {
		return nil, err
	}
	fn := reflect.ValueOf(instance).MethodByName(method)
	if !fn.IsValid() {
		return nil, &ContainerError{ID: id, Reason: "no method " + strconv.Quote(method)}
	}
	return c.invoke(fn, mi.Params(), overrides)
}

// callBound handles the instance+method shape. Method metadata (override
// names, defaults) applies when the instance's type is registered.
func (c *Container) callBound(b Bound, overrides map[string]any) (any, error) {
	if b.Instance == nil {
		return nil, &ContainerError{ID: b.Method, Reason: "bound callable has nil instance"}
	}
	fn := reflect.ValueOf(b.Instance).MethodByName(b.Method)
	if !fn.IsValid() {
		return nil, &ContainerError{ID: fmt.Sprintf("%T", b.Instance), Reason: "no method " + strconv.Quote(b.Method)}
	}

	var params []reflection.Param
	if id, ok := c.types.Lookup(reflect.TypeOf(b.Instance)); ok {
		if info, known := c.types.Describe(id); known {
			if mi, found := info.Method(b.Method); found && !mi.Static() {
				params = mi.Params()
			}
		}
	}
	if params == nil {
		params = c.types.Signature(fn.Type())
	}
	return c.invoke(fn, params, overrides)
}

// callFunc handles plain functions and closures.
func (c *Container) callFunc(fn reflect.Value, names []string, overrides map[string]any) (any, error) {
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil, &ContainerError{ID: "func", Reason: "not a function"}
	}
	return c.invoke(fn, c.types.Signature(fn.Type(), names...), overrides)
}

// invoke resolves params and performs the call. The callable's own
// failures — a returned error, or reflect's native wrong-arity panic for
// unsuppliable required parameters — propagate unmodified.
func (c *Container) invoke(fn reflect.Value, params []reflection.Param, overrides map[string]any) (any, error) {
	args, err := c.arguments(params, overrides)
	if err != nil {
		return nil, err
	}
	return callResult(fn.Call(args))
}

// callResult unpacks reflect call results: a trailing error return is
// split off, and the first remaining value (if any) becomes the result.
func callResult(outs []reflect.Value) (any, error) {
	if n := len(outs); n > 0 && outs[n-1].Type() == errType {
		if err, _ := outs[n-1].Interface().(error); err != nil {
			return nil, err
		}
		outs = outs[:n-1]
	}
	if len(outs) == 0 {
		return nil, nil
	}
	return outs[0].Interface(), nil
}
