package reflection

import (
	"fmt"
	"reflect"
	"strconv"
)

// ── TypeInfo ──────────────────────────────────────────────────────────────────

// TypeInfo describes one registered identifier: the concrete type it
// constructs, its constructor, and the declared parameter and method
// metadata.
type TypeInfo struct {
	reg      *Registry
	id       string
	typ      reflect.Type
	ctor     reflect.Value
	names    []string
	defaults map[string]any
	methods  map[string]*MethodInfo
	abstract bool
}

// ID returns the identifier the type was registered under.
func (ti *TypeInfo) ID() string { return ti.id }

// Type returns the constructed type (the constructor's first return), or
// the declared type of an abstract identifier.
func (ti *TypeInfo) Type() reflect.Type { return ti.typ }

// Instantiable reports whether the identifier can actually be constructed.
// Abstract declarations are known but not instantiable.
func (ti *TypeInfo) Instantiable() bool { return !ti.abstract }

// Params returns the constructor's parameter descriptors in declaration
// order. Identifiers of dependency parameters are resolved against the
// registry's current contents each call, so late registrations are seen.
func (ti *TypeInfo) Params() []Param {
	if ti.abstract {
		return nil
	}
	return ti.reg.describeParams(ti.ctor.Type(), 0, ti.names, ti.defaults)
}

// Construct invokes the constructor with the assembled arguments. A
// trailing error return from the constructor propagates unmodified.
func (ti *TypeInfo) Construct(args []reflect.Value) (any, error) {
	outs := ti.ctor.Call(args)
	if len(outs) == 2 {
		if err, _ := outs[1].Interface().(error); err != nil {
			return nil, err
		}
	}
	return outs[0].Interface(), nil
}

// Method returns metadata for one of the type's methods. Methods without
// registered metadata are still found through the type's method set; their
// parameters then carry no override names or defaults.
func (ti *TypeInfo) Method(name string) (*MethodInfo, bool) {
	if mi, ok := ti.methods[name]; ok {
		return mi, true
	}
	if ti.typ == nil {
		return nil, false
	}
	m, ok := ti.typ.MethodByName(name)
	if !ok {
		return nil, false
	}
	return &MethodInfo{reg: ti.reg, name: name, mtype: m.Type}, true
}

// ── MethodInfo ────────────────────────────────────────────────────────────────

// MethodInfo describes a callable attached to a registered type: either an
// instance method (called on a resolved or supplied receiver) or a static
// method (a plain function associated with the identifier, called without
// constructing anything).
type MethodInfo struct {
	reg      *Registry
	name     string
	static   bool
	fn       reflect.Value // static target
	mtype    reflect.Type  // method type, receiver included for instance methods
	names    []string
	defaults map[string]any
}

// Name returns the method name.
func (mi *MethodInfo) Name() string { return mi.name }

// Static reports whether the method is called without a receiver instance.
func (mi *MethodInfo) Static() bool { return mi.static }

// Func returns the call target of a static method.
func (mi *MethodInfo) Func() reflect.Value { return mi.fn }

// Params returns the method's parameter descriptors, excluding the
// receiver for instance methods.
func (mi *MethodInfo) Params() []Param {
	skip := 0
	if !mi.static {
		skip = 1
	}
	return mi.reg.describeParams(mi.mtype, skip, mi.names, mi.defaults)
}

// validate checks declared metadata against the method's real signature.
func (mi *MethodInfo) validate() error {
	arity := mi.mtype.NumIn()
	if !mi.static {
		arity-- // receiver
	}
	if len(mi.names) > arity {
		return fmt.Errorf("method %s: %d parameter names for %d parameters", strconv.Quote(mi.name), len(mi.names), arity)
	}
	for name := range mi.defaults {
		if !containsName(mi.names, name) {
			return fmt.Errorf("method %s: default for unknown parameter %s", strconv.Quote(mi.name), strconv.Quote(name))
		}
	}
	return nil
}
