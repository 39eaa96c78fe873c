package routing_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/armature-go/armature/framework/container"
	"github.com/armature-go/armature/framework/reflection"
	"github.com/armature-go/armature/framework/routing"
)

// ── Fixtures ─────────────────────────────────────────────────────────────────

type echoController struct {
	greeting string
}

func newEchoController() *echoController {
	return &echoController{greeting: "hello"}
}

func (c *echoController) Index(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "%s:index", c.greeting)
}

func (c *echoController) Show(w http.ResponseWriter, r *http.Request, id string) {
	fmt.Fprintf(w, "%s:%s", c.greeting, id)
}

func (c *echoController) Store(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusCreated)
	fmt.Fprint(w, "stored")
}

func (c *echoController) Update(w http.ResponseWriter, r *http.Request, id string) {
	fmt.Fprintf(w, "updated:%s", id)
}

func (c *echoController) Destroy(w http.ResponseWriter, r *http.Request, id string) {
	w.WriteHeader(http.StatusNoContent)
}

func statusPing(w http.ResponseWriter) {
	fmt.Fprint(w, "pong")
}

func newTestRouter(t *testing.T) *routing.Router {
	t.Helper()
	types := reflection.NewRegistry()
	types.MustRegister("EchoController", newEchoController,
		reflection.Method("Index", "w", "r"),
		reflection.Method("Show", "w", "r", "id"),
		reflection.Method("Store", "w", "r"),
		reflection.Method("Update", "w", "r", "id"),
		reflection.Method("Destroy", "w", "r", "id"),
		reflection.Static("Ping", statusPing, "w"),
	)
	app := container.New(types)
	return routing.New(app)
}

func perform(r *routing.Router, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// ── Verbs ────────────────────────────────────────────────────────────────────

func TestRouterVerbs(t *testing.T) {
	r := newTestRouter(t)
	r.Get("/get", func(w http.ResponseWriter, _ *http.Request) { fmt.Fprint(w, "GET") })
	r.Post("/post", func(w http.ResponseWriter, _ *http.Request) { fmt.Fprint(w, "POST") })
	r.Put("/put", func(w http.ResponseWriter, _ *http.Request) { fmt.Fprint(w, "PUT") })
	r.Delete("/delete", func(w http.ResponseWriter, _ *http.Request) { fmt.Fprint(w, "DELETE") })

	for _, tc := range []struct{ method, path string }{
		{"GET", "/get"}, {"POST", "/post"}, {"PUT", "/put"}, {"DELETE", "/delete"},
	} {
		rec := perform(r, tc.method, tc.path)
		if rec.Code != http.StatusOK || rec.Body.String() != tc.method {
			t.Errorf("%s %s: got %d %q", tc.method, tc.path, rec.Code, rec.Body.String())
		}
	}
}

func TestRouterPrefix(t *testing.T) {
	r := newTestRouter(t)
	r.Prefix("/api", func(api *routing.Router) {
		api.Get("/status", func(w http.ResponseWriter, _ *http.Request) { fmt.Fprint(w, "up") })
	})

	if rec := perform(r, "GET", "/api/status"); rec.Body.String() != "up" {
		t.Errorf("prefixed route: got %d %q", rec.Code, rec.Body.String())
	}
	if rec := perform(r, "GET", "/status"); rec.Code != http.StatusNotFound {
		t.Errorf("unprefixed path should 404, got %d", rec.Code)
	}
}

func TestRouterGroupMiddleware(t *testing.T) {
	r := newTestRouter(t)
	r.Group(func(g *routing.Router) {
		g.Middleware(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				w.Header().Set("X-Group", "yes")
				next.ServeHTTP(w, req)
			})
		})
		g.Get("/inside", func(w http.ResponseWriter, _ *http.Request) { fmt.Fprint(w, "in") })
	})
	r.Get("/outside", func(w http.ResponseWriter, _ *http.Request) { fmt.Fprint(w, "out") })

	if rec := perform(r, "GET", "/inside"); rec.Header().Get("X-Group") != "yes" {
		t.Error("group middleware did not run for grouped route")
	}
	if rec := perform(r, "GET", "/outside"); rec.Header().Get("X-Group") != "" {
		t.Error("group middleware leaked outside the group")
	}
}

// ── Controller actions ───────────────────────────────────────────────────────

func TestActionDispatchesInstanceMethod(t *testing.T) {
	r := newTestRouter(t)
	r.Action(http.MethodGet, "/echo/{id}", "EchoController::Show")

	rec := perform(r, "GET", "/echo/42")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "hello:42" {
		t.Errorf("body = %q, want %q", got, "hello:42")
	}
}

func TestActionDispatchesStatic(t *testing.T) {
	r := newTestRouter(t)
	r.Action(http.MethodGet, "/ping", "EchoController::Ping")

	if rec := perform(r, "GET", "/ping"); rec.Body.String() != "pong" {
		t.Errorf("static action: got %d %q", rec.Code, rec.Body.String())
	}
}

func TestActionUnknownControllerIs404(t *testing.T) {
	r := newTestRouter(t)
	r.Action(http.MethodGet, "/ghost", "GhostController::Index")

	if rec := perform(r, "GET", "/ghost"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown controller: status = %d, want 404", rec.Code)
	}
}

func TestActionUnknownMethodIs500(t *testing.T) {
	r := newTestRouter(t)
	r.Action(http.MethodGet, "/bad", "EchoController::Missing")

	rec := perform(r, "GET", "/bad")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unknown method: status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Missing") {
		t.Errorf("error body should name the method, got %q", rec.Body.String())
	}
}

func TestResourceRoutes(t *testing.T) {
	r := newTestRouter(t)
	r.Resource("/echoes", "EchoController")

	cases := []struct {
		method, path string
		status       int
		body         string
	}{
		{"GET", "/echoes", http.StatusOK, "hello:index"},
		{"POST", "/echoes", http.StatusCreated, "stored"},
		{"GET", "/echoes/7", http.StatusOK, "hello:7"},
		{"PUT", "/echoes/7", http.StatusOK, "updated:7"},
		{"PATCH", "/echoes/7", http.StatusOK, "updated:7"},
		{"DELETE", "/echoes/7", http.StatusNoContent, ""},
	}
	for _, tc := range cases {
		rec := perform(r, tc.method, tc.path)
		if rec.Code != tc.status {
			t.Errorf("%s %s: status = %d, want %d", tc.method, tc.path, rec.Code, tc.status)
			continue
		}
		if rec.Body.String() != tc.body {
			t.Errorf("%s %s: body = %q, want %q", tc.method, tc.path, rec.Body.String(), tc.body)
		}
	}
}

func TestActionControllerIsSingleton(t *testing.T) {
	types := reflection.NewRegistry()
	built := 0
	types.MustRegister("EchoController", func() *echoController {
		built++
		return &echoController{greeting: "hi"}
	}, reflection.Method("Index", "w", "r"))
	app := container.New(types)
	r := routing.New(app)
	r.Action(http.MethodGet, "/once", "EchoController::Index")

	perform(r, "GET", "/once")
	perform(r, "GET", "/once")
	if built != 1 {
		t.Errorf("controller constructed %d times across requests, want 1", built)
	}
}
