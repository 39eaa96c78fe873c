// Package reflection is the type-introspection capability behind the IoC
// container: a runtime registry mapping string identifiers to constructible
// types.
//
// PHP-style containers discover a class's dependencies by reflecting over
// its constructor. Go reflection can enumerate a constructor's parameter
// types, but neither parameter names nor default values exist at runtime —
// so registration declares them:
//
//	types := reflection.NewRegistry()
//
//	// mailer's constructor: func NewMailer(t *Transport, retries int) *Mailer
//	types.MustRegister("mailer", NewMailer,
//	    reflection.Params("transport", "retries"),
//	    reflection.Defaults(map[string]any{"retries": 3}),
//	)
//
// From there the registry answers the container's three questions:
//
//	types.Known("mailer")          // does the identifier name a type?
//	info, _ := types.Describe("mailer")
//	info.Instantiable()            // can it be constructed?
//	info.Params()                  // ordered parameter descriptors
//
// A parameter whose declared type is a registered struct or pointer type
// carries that type's identifier and is auto-resolved by the container.
// Builtin kinds (strings, numbers, slices, maps, funcs) are never
// auto-resolved: they must come from an override or a declared default.
//
// # Abstract identifiers
//
//	type Queue interface{ Push(job string) }
//	types.Abstract("Queue", (*Queue)(nil))
//
// An abstract identifier is Known but not Instantiable: the container
// answers Has == true for it and still fails Get.
//
// # Methods
//
// Method and Static options attach callable metadata used by the
// container's Call:
//
//	types.MustRegister("UserController", NewUserController,
//	    reflection.Method("Show", "w", "r", "id"),
//	    reflection.Static("Ping", Ping),
//	)
//
// # Deferred registration
//
// Defer installs a loader that runs on the first Describe of an
// identifier. Deferred service providers use it so heavy registrations
// only happen when one of their identifiers is first resolved.
package reflection
