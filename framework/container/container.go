package container

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/armature-go/armature/framework/reflection"
)

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the IoC container: a singleton store plus a recursive
// constructor-injection resolver, in the manner of Laravel's
// Illuminate\Container\Container.
//
// Identifiers are plain strings. An identifier resolves either to an
// instance previously bound with Set, or to a type registered in the
// backing reflection.Registry — in which case the container constructs it,
// recursively resolving every constructor parameter from the caller's
// override map, the registry of constructible types, or a declared
// default.
//
// Get, Make, and Call each hold one non-reentrant lock for the whole
// recursive resolution. Constructors and deferred-provider loaders
// therefore must not call back into Get/Make/Call on the same container —
// doing so deadlocks. Declaring dependencies as constructor parameters
// (or calling Set, which only touches the instance store) is safe.
type Container struct {
	types *reflection.Registry

	// identifier → resolved singleton instance
	mu        sync.RWMutex
	instances map[string]any

	// resolveMu serializes Get/Make/Call end to end, so the resolving
	// set below is only ever touched by the one goroutine that owns the
	// current resolution tree.
	resolveMu sync.Mutex
	resolving map[string]struct{}
}

// New creates a container backed by the given type registry. A nil
// registry gets a fresh empty one.
func New(types *reflection.Registry) *Container {
	if types == nil {
		types = reflection.NewRegistry()
	}
	c := &Container{
		types:     types,
		instances: make(map[string]any),
		resolving: make(map[string]struct{}),
	}
	// Bind the container to itself — like Laravel's $app->instance()
	c.Set("container", c)
	return c
}

// Types returns the registry the resolver introspects. Registrations go
// through it:
//
//	c.Types().MustRegister("mailer", NewMailer)
func (c *Container) Types() *reflection.Registry { return c.types }

// ── Public surface ────────────────────────────────────────────────────────────

// Get returns the singleton for id, constructing and caching it on first
// call. The optional override map feeds the first construction only —
// once an instance is cached, later overrides are ignored. Override keys
// match constructor parameter names exactly, case-sensitively.
func (c *Container) Get(id string, overrides ...map[string]any) (any, error) {
	c.mu.RLock()
	if inst, ok := c.instances[id]; ok {
		c.mu.RUnlock()
		return inst, nil
	}
	c.mu.RUnlock()

	c.resolveMu.Lock()
	defer c.resolveMu.Unlock()
	return c.resolve(id, firstOverride(overrides), false)
}

// Make constructs a fresh instance on every call — transient semantics.
// The singleton store is never consulted or populated for id itself;
// nested dependencies still resolve through it.
func (c *Container) Make(id string, overrides ...map[string]any) (any, error) {
	c.resolveMu.Lock()
	defer c.resolveMu.Unlock()
	return c.resolve(id, firstOverride(overrides), true)
}

// Set binds a prebuilt instance under id, overwriting any prior entry.
// The instance's type is not validated against the identifier.
func (c *Container) Set(id string, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instances[id] = instance
}

// Has reports whether id is bound or names a type known to the registry.
// It is an existence check, not a resolvability check: an abstract
// declaration answers true here and still fails Get.
func (c *Container) Has(id string) bool {
	c.mu.RLock()
	_, bound := c.instances[id]
	c.mu.RUnlock()
	return bound || c.types.Known(id)
}

// Resolved reports whether id has a cached instance.
func (c *Container) Resolved(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[id]
	return ok
}

// Forget drops the cached instance for id; the next Get constructs anew.
func (c *Container) Forget(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.instances, id)
}

// Flush drops every bound instance. Registered types survive.
func (c *Container) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instances = make(map[string]any)
}

// Instances returns a copy of all bound identifier keys (for debugging).
func (c *Container) Instances() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.instances))
	for k := range c.instances {
		out = append(out, k)
	}
	return out
}

// ── Reflect helpers ───────────────────────────────────────────────────────────

// TypeKey returns the package-qualified type name of v, useful as a stable
// identifier when registering types by their own name.
//
//	key := container.TypeKey((*UserRepository)(nil))  // ".../app.UserRepository"
//	c.Types().MustRegister(key, NewUserRepository)
func TypeKey(v any) string {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.PkgPath() + "." + t.Name()
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Resolve resolves id through Get and type-asserts the result.
//
//	// Instead of: db := must(c.Get("db")).(*Database)
//	// Write:      db, err := container.Resolve[*Database](c, "db")
func Resolve[T any](c *Container, id string) (T, error) {
	var zero T
	inst, err := c.Get(id)
	if err != nil {
		return zero, err
	}
	typed, ok := inst.(T)
	if !ok {
		return zero, &ContainerError{ID: id, Reason: fmt.Sprintf("resolved to %T, want %T", inst, zero)}
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on failure — for bootstrap code
// where a missing binding is a programming mistake.
func MustResolve[T any](c *Container, id string) T {
	v, err := Resolve[T](c, id)
	if err != nil {
		panic(err)
	}
	return v
}

// ── helpers ───────────────────────────────────────────────────────────────────

func firstOverride(overrides []map[string]any) map[string]any {
	if len(overrides) > 0 {
		return overrides[0]
	}
	return nil
}
