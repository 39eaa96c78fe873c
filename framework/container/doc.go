// Package container provides a reflection-driven IoC (Inversion of
// Control) container and Service Provider system for Go.
//
// # Overview
//
// The container turns string identifiers into constructed objects. An
// identifier resolves either to an instance previously bound with Set, or
// to a constructor registered in the backing reflection.Registry — in
// which case the container builds it, recursively resolving every
// constructor parameter from the caller's override map, the registry of
// constructible types, or a declared default.
//
// # Container Lifecycle
//
//  1. Create: c := container.New(reflection.NewRegistry())
//  2. Register providers: registry.Register(&MyProvider{})
//  3. Boot: registry.Boot()        — safe to resolve everything after this
//  4. Resolve / call
//
// # Registering types
//
//	// func NewRepo(db *Database) *Repo
//	c.Types().MustRegister("db", NewDatabase)
//	c.Types().MustRegister("repo", NewRepo)
//
//	// Scalar parameters need declared names (and optionally defaults):
//	// func NewMailer(transport *Transport, retries int) *Mailer
//	c.Types().MustRegister("mailer", NewMailer,
//	    reflection.Params("transport", "retries"),
//	    reflection.Defaults(map[string]any{"retries": 3}),
//	)
//
// # Resolving
//
//	// Singleton — constructed once, cached for the container's lifetime
//	m, err := c.Get("mailer")
//
//	// Transient — a fresh instance every call
//	m, err := c.Make("mailer", map[string]any{"retries": 5})
//
//	// Generic (no type assertion required)
//	mailer, err := container.Resolve[*Mailer](c, "mailer")
//
// Overrides are matched to parameter names exactly and used verbatim — no
// validation against the declared parameter type, and no recursive
// resolution of the supplied value.
//
// # Prebuilt instances
//
//	c.Set("config", cfg)      // identity-preserving, bypasses construction
//	c.Has("config")           // true
//
// Has is an existence check, not a resolvability check: an identifier
// declared with Registry.Abstract answers Has == true and still fails Get
// with a ContainerError.
//
// # Calling
//
// Call applies the same parameter resolution to arbitrary callables:
//
//	c.Call("ReportService::Render", map[string]any{"title": "Q3"})
//	c.Call(container.Bound{Instance: svc, Method: "Render"})
//	c.Call(container.Fn(func(db *Database, n int) int { ... }, "db", "n"),
//	    map[string]any{"n": 42})
//
// # Failures
//
// Resolution failures are typed: *NotFoundError (identifier names
// nothing), *CircularDependencyError (an identifier re-entered while its
// own resolution is in progress), *ContainerError (not instantiable, bad
// callable shape). Errors returned by a constructor or callable propagate
// unmodified, as does Go's native wrong-arity panic when a required
// parameter cannot be supplied from any source.
//
// # Service Providers
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(app *container.Container) {
//	    app.Types().MustRegister("mailer", NewMailer)
//	}
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&AppServiceProvider{})
//	registry.Boot()
//
// Deferred providers (IsDeferred() == true) register only when one of
// their Provides() identifiers is first resolved.
package container
