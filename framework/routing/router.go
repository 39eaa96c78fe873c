package routing

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/armature-go/armature/framework/container"
)

// Router wraps chi.Router with Laravel-style helpers and container-dispatched
// controller actions.
type Router struct {
	mux chi.Router
	app *container.Container
}

// New creates a Router with sane defaults (Logger, Recoverer) bound to the
// application container used for action dispatch.
func New(app *container.Container) *Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	return &Router{mux: r, app: app}
}

// ── HTTP verbs ───────────────────────────────────────────────────────────────

func (r *Router) Get(pattern string, h http.HandlerFunc)    { r.mux.Get(pattern, h) }
func (r *Router) Post(pattern string, h http.HandlerFunc)   { r.mux.Post(pattern, h) }
func (r *Router) Put(pattern string, h http.HandlerFunc)    { r.mux.Put(pattern, h) }
func (r *Router) Patch(pattern string, h http.HandlerFunc)  { r.mux.Patch(pattern, h) }
func (r *Router) Delete(pattern string, h http.HandlerFunc) { r.mux.Delete(pattern, h) }

// Any registers a handler for all common HTTP methods.
func (r *Router) Any(pattern string, h http.HandlerFunc) {
	for _, m := range []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"} {
		r.mux.Method(m, pattern, h)
	}
}

// ── Controller actions ───────────────────────────────────────────────────────

// Action routes pattern to a container-dispatched controller action:
//
//	r.Action(http.MethodGet, "/users/{id}", "UserController::Show")
//
// The action resolves through the container's Call: the controller is
// constructed (or fetched from the singleton store) with its dependencies
// injected, and the method's parameters resolve from an override map
// carrying "w", "r" and every URL parameter under its own name. Declare
// those names when registering the controller:
//
//	types.MustRegister("UserController", NewUserController,
//	    reflection.Method("Show", "w", "r", "id"))
func (r *Router) Action(method, pattern, target string) {
	r.mux.Method(method, pattern, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		overrides := map[string]any{"w": w, "r": req}
		if rc := chi.RouteContext(req.Context()); rc != nil {
			for i, key := range rc.URLParams.Keys {
				if key == "*" {
					continue
				}
				overrides[key] = rc.URLParams.Values[i]
			}
		}
		if _, err := r.app.Call(target, overrides); err != nil {
			writeActionError(w, err)
		}
	}))
}

// Resource registers standard RESTful routes for a resource controller,
// each dispatched through the container:
//
//	GET    /photos           → PhotoController::Index
//	POST   /photos           → PhotoController::Store
//	GET    /photos/{id}      → PhotoController::Show
//	PUT    /photos/{id}      → PhotoController::Update
//	PATCH  /photos/{id}      → PhotoController::Update
//	DELETE /photos/{id}      → PhotoController::Destroy
func (r *Router) Resource(pattern, controller string) {
	r.Action(http.MethodGet, pattern, controller+"::Index")
	r.Action(http.MethodPost, pattern, controller+"::Store")
	r.Action(http.MethodGet, pattern+"/{id}", controller+"::Show")
	r.Action(http.MethodPut, pattern+"/{id}", controller+"::Update")
	r.Action(http.MethodPatch, pattern+"/{id}", controller+"::Update")
	r.Action(http.MethodDelete, pattern+"/{id}", controller+"::Destroy")
}

// writeActionError maps container failures onto HTTP statuses: an unknown
// controller identifier is a routing 404, everything else is a 500.
func writeActionError(w http.ResponseWriter, err error) {
	var nf *container.NotFoundError
	if errors.As(err, &nf) {
		http.Error(w, "404 page not found", http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// ── Groups & Prefixes ────────────────────────────────────────────────────────

// Group creates an inline group — Laravel: Route::group([], fn)
func (r *Router) Group(fn func(r *Router)) {
	r.mux.Group(func(mx chi.Router) {
		fn(&Router{mux: mx, app: r.app})
	})
}

// Prefix creates a sub-router with a URL prefix — Laravel: Route::prefix('/api')
func (r *Router) Prefix(pattern string, fn func(r *Router)) {
	r.mux.Route(pattern, func(mx chi.Router) {
		fn(&Router{mux: mx, app: r.app})
	})
}

// ── Middleware ───────────────────────────────────────────────────────────────

// Middleware adds one or more middleware to the router.
func (r *Router) Middleware(mw ...func(http.Handler) http.Handler) {
	r.mux.Use(mw...)
}

// ── Static files ─────────────────────────────────────────────────────────────

// Static serves a filesystem at the given prefix.
// e.g. router.Static("/public", "./public")
func (r *Router) Static(prefix, dir string) {
	fs := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	r.mux.Get(prefix+"/*", func(w http.ResponseWriter, req *http.Request) {
		fs.ServeHTTP(w, req)
	})
}

// ── Params ───────────────────────────────────────────────────────────────────

// Param extracts a URL param — equivalent to $request->route('id')
func Param(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// ── Serve ────────────────────────────────────────────────────────────────────

// ServeHTTP implements http.Handler so Router can be passed to http.ListenAndServe.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Handler returns the underlying http.Handler (for testing etc.).
func (r *Router) Handler() http.Handler {
	return r.mux
}
