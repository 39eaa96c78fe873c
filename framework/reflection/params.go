package reflection

import (
	"fmt"
	"reflect"
	"strconv"
)

// ── Param ─────────────────────────────────────────────────────────────────────

// Param is one parameter descriptor as the container's resolver consumes
// it: the override name (empty when none was declared), the declared Go
// type, the identifier to construct when the declared type is a
// non-builtin ("" for builtins, which are never auto-resolved), and the
// declared default value, if any.
type Param struct {
	Name       string
	Type       reflect.Type
	ID         string
	HasDefault bool
	Default    any
}

// ── Registration options ──────────────────────────────────────────────────────

// Option customizes a Register call.
type Option func(*TypeInfo) error

// Params declares the constructor's parameter names in declaration order.
// Names are what callers use in override maps; a constructor registered
// without Params can only be filled by type injection.
func Params(names ...string) Option {
	return func(ti *TypeInfo) error {
		ti.names = names
		return nil
	}
}

// Defaults declares default values for named constructor parameters. A
// default is used when a parameter has no override and no constructible
// declared type.
func Defaults(values map[string]any) Option {
	return func(ti *TypeInfo) error {
		if ti.defaults == nil {
			ti.defaults = make(map[string]any, len(values))
		}
		for k, v := range values {
			ti.defaults[k] = v
		}
		return nil
	}
}

// Method declares override names for an instance method's parameters, so
// Call can match overrides for it by name.
//
//	types.MustRegister("UserController", NewUserController,
//	    reflection.Method("Show", "w", "r", "id"),
//	)
func Method(name string, paramNames ...string) Option {
	return func(ti *TypeInfo) error {
		m, ok := ti.typ.MethodByName(name)
		if !ok {
			return fmt.Errorf("type %s has no method %s", ti.typ, strconv.Quote(name))
		}
		mi := &MethodInfo{reg: ti.reg, name: name, mtype: m.Type, names: paramNames}
		if err := mi.validate(); err != nil {
			return err
		}
		ti.methods[name] = mi
		return nil
	}
}

// MethodDefaults declares default values for a method previously declared
// with Method.
func MethodDefaults(method string, values map[string]any) Option {
	return func(ti *TypeInfo) error {
		mi, ok := ti.methods[method]
		if !ok {
			return fmt.Errorf("MethodDefaults before Method for %s", strconv.Quote(method))
		}
		if mi.defaults == nil {
			mi.defaults = make(map[string]any, len(values))
		}
		for k, v := range values {
			mi.defaults[k] = v
		}
		return mi.validate()
	}
}

// Static attaches a plain function to the identifier as a static method:
// Call("Class::Method") invokes it directly, without constructing an
// instance of the class.
func Static(name string, fn any, paramNames ...string) Option {
	return func(ti *TypeInfo) error {
		fv := reflect.ValueOf(fn)
		if !fv.IsValid() || fv.Kind() != reflect.Func {
			return fmt.Errorf("static %s: %w", strconv.Quote(name), ErrNotFunc)
		}
		mi := &MethodInfo{reg: ti.reg, name: name, static: true, fn: fv, mtype: fv.Type(), names: paramNames}
		if err := mi.validate(); err != nil {
			return err
		}
		ti.methods[name] = mi
		return nil
	}
}
