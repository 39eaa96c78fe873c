package reflection

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// ── Registration errors ───────────────────────────────────────────────────────

var (
	// ErrNotFunc is returned when a constructor (or static target) is not
	// a function value.
	ErrNotFunc = errors.New("reflection: constructor must be a function")

	// ErrBadConstructor is returned when a constructor does not return
	// (T) or (T, error) with a concrete T.
	ErrBadConstructor = errors.New("reflection: constructor must return (T) or (T, error)")

	// ErrDuplicate is returned when an identifier is registered twice.
	ErrDuplicate = errors.New("reflection: identifier already registered")

	// ErrEmptyID is returned for a registration under the empty identifier.
	ErrEmptyID = errors.New("reflection: identifier must not be empty")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// ── Registry ──────────────────────────────────────────────────────────────────

// Registry is the type-introspection capability consumed by the container:
// given an identifier it reports whether a type is known, whether it can be
// constructed, and the ordered parameter descriptors of its constructor and
// methods.
//
// Go reflection exposes neither parameter names nor default values, so both
// are declared at registration time:
//
//	types.MustRegister("mailer", NewMailer,
//	    reflection.Params("transport", "retries"),
//	    reflection.Defaults(map[string]any{"retries": 3}),
//	)
type Registry struct {
	mu      sync.RWMutex
	types   map[string]*TypeInfo
	byType  map[reflect.Type]string
	pending map[string]func()
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types:   make(map[string]*TypeInfo),
		byType:  make(map[reflect.Type]string),
		pending: make(map[string]func()),
	}
}

// Register binds a constructor function under id.
//
// ctor must return a concrete value, optionally with a trailing error.
// Its parameters are what the container resolves when the identifier is
// constructed.
//
// The first identifier registered for a concrete type also becomes the
// identifier that type resolves to when it appears as a constructor
// parameter; later registrations constructing the same type keep their
// own identifier but do not take over the reverse mapping.
func (r *Registry) Register(id string, ctor any, opts ...Option) error {
	if id == "" {
		return ErrEmptyID
	}
	cv := reflect.ValueOf(ctor)
	if !cv.IsValid() || cv.Kind() != reflect.Func {
		return fmt.Errorf("%w: %s", ErrNotFunc, strconv.Quote(id))
	}
	ct := cv.Type()
	switch ct.NumOut() {
	case 1:
	case 2:
		if ct.Out(1) != errorType {
			return fmt.Errorf("%w: %s returns (%s, %s)", ErrBadConstructor, strconv.Quote(id), ct.Out(0), ct.Out(1))
		}
	default:
		return fmt.Errorf("%w: %s has %d return values", ErrBadConstructor, strconv.Quote(id), ct.NumOut())
	}
	out := ct.Out(0)
	if out.Kind() == reflect.Interface {
		return fmt.Errorf("%w: %s constructs interface %s, want a concrete type", ErrBadConstructor, strconv.Quote(id), out)
	}

	ti := &TypeInfo{
		reg:     r,
		id:      id,
		typ:     out,
		ctor:    cv,
		methods: make(map[string]*MethodInfo),
	}
	for _, opt := range opts {
		if err := opt(ti); err != nil {
			return fmt.Errorf("reflection: register %s: %w", strconv.Quote(id), err)
		}
	}
	if len(ti.names) > ct.NumIn() {
		return fmt.Errorf("reflection: register %s: %d parameter names for %d parameters", strconv.Quote(id), len(ti.names), ct.NumIn())
	}
	for name := range ti.defaults {
		if !containsName(ti.names, name) {
			return fmt.Errorf("reflection: register %s: default for unknown parameter %s", strconv.Quote(id), strconv.Quote(name))
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.types[id]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicate, strconv.Quote(id))
	}
	r.types[id] = ti
	if _, taken := r.byType[out]; !taken {
		r.byType[out] = id
	}
	return nil
}

// MustRegister is Register panicking on error — for bootstrap wiring where
// a bad registration is a programming mistake.
func (r *Registry) MustRegister(id string, ctor any, opts ...Option) {
	if err := r.Register(id, ctor, opts...); err != nil {
		panic(err)
	}
}

// Abstract declares id as known but not constructible, carrying the
// declared type for diagnostics:
//
//	types.Abstract("Queue", (*Queue)(nil))
//
// The container answers Has(id) == true for an abstract identifier, yet
// fails Get(id) — the declaration exists without being resolvable.
func (r *Registry) Abstract(id string, iface any) error {
	if id == "" {
		return ErrEmptyID
	}
	t := reflect.TypeOf(iface)
	if t != nil && t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Interface {
		t = t.Elem()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.types[id]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicate, strconv.Quote(id))
	}
	r.types[id] = &TypeInfo{reg: r, id: id, typ: t, abstract: true}
	if t != nil {
		if _, taken := r.byType[t]; !taken {
			r.byType[t] = id
		}
	}
	return nil
}

// Defer installs a lazy loader for id: the first Describe of the
// identifier runs load (which is expected to perform the real
// registrations) before the lookup proceeds. Known(id) is true while the
// loader is still pending. Used by deferred service providers.
func (r *Registry) Defer(id string, load func()) {
	if id == "" || load == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[id]; ok {
		return
	}
	r.pending[id] = load
}

// Known reports whether id names a registered, declared, or pending type.
func (r *Registry) Known(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.types[id]; ok {
		return true
	}
	_, ok := r.pending[id]
	return ok
}

// Describe returns the type information for id, running a pending lazy
// loader first if one is installed.
func (r *Registry) Describe(id string) (*TypeInfo, bool) {
	r.mu.RLock()
	ti, ok := r.types[id]
	r.mu.RUnlock()
	if ok {
		return ti, true
	}

	r.mu.Lock()
	load, pending := r.pending[id]
	if pending {
		delete(r.pending, id)
	}
	r.mu.Unlock()
	if pending {
		// Loader registers into this registry; run it unlocked.
		load()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	ti, ok = r.types[id]
	return ti, ok
}

// Lookup returns the identifier a constructible type was registered
// under. When several identifiers construct the same type, the first one
// registered wins.
func (r *Registry) Lookup(t reflect.Type) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byType[t]
	return id, ok
}

// Signature derives parameter descriptors for an arbitrary callable type.
// names assigns override names to the parameters in declaration order;
// unnamed parameters can only be filled by type injection.
func (r *Registry) Signature(fnType reflect.Type, names ...string) []Param {
	return r.describeParams(fnType, 0, names, nil)
}

// describeParams builds descriptors for fnType's parameters, skipping the
// first skip parameters (the receiver of an unbound method).
func (r *Registry) describeParams(fnType reflect.Type, skip int, names []string, defaults map[string]any) []Param {
	n := fnType.NumIn()
	params := make([]Param, 0, n-skip)
	for i := skip; i < n; i++ {
		t := fnType.In(i)
		p := Param{Type: t, ID: r.identifierFor(t)}
		if idx := i - skip; idx < len(names) {
			p.Name = names[idx]
		}
		if p.Name != "" {
			if v, ok := defaults[p.Name]; ok {
				p.HasDefault = true
				p.Default = v
			}
		}
		params = append(params, p)
	}
	return params
}

// identifierFor maps a declared parameter type to the identifier the
// resolver should construct. Builtin kinds are never dependencies and map
// to "". A named non-builtin type that was never registered still gets its
// canonical key, so resolving it surfaces as a not-found failure rather
// than being silently skipped.
func (r *Registry) identifierFor(t reflect.Type) string {
	elem := t
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	switch elem.Kind() {
	case reflect.Struct, reflect.Interface:
	default:
		return ""
	}
	if elem.Name() == "" {
		return ""
	}
	r.mu.RLock()
	id, ok := r.byType[t]
	r.mu.RUnlock()
	if ok {
		return id
	}
	return typeKeyOf(t)
}

// typeKeyOf returns the canonical package-qualified name of t.
func typeKeyOf(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return t.Name()
	}
	return t.PkgPath() + "." + t.Name()
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
