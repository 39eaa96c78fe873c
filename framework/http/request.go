package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Request wraps *http.Request with Laravel-style helpers.
type Request struct {
	raw *http.Request
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r}
}

// Raw returns the underlying *http.Request.
func (req *Request) Raw() *http.Request { return req.raw }

// ── Binding ──────────────────────────────────────────────────────────────────

// Bind decodes the JSON request body into v.
// JSON fields map via `json:"name"`.
func (req *Request) Bind(v any) error {
	defer req.raw.Body.Close()
	return json.NewDecoder(req.raw.Body).Decode(v)
}

// ── Input retrieval ──────────────────────────────────────────────────────────

// Query returns a query-string value, falling back to def.
func (req *Request) Query(key, def string) string {
	if v := req.raw.URL.Query().Get(key); v != "" {
		return v
	}
	return def
}

// Has reports whether the query string carries key.
func (req *Request) Has(key string) bool {
	return req.raw.URL.Query().Has(key)
}

// RouteParam extracts a URL parameter (requires the chi router).
func (req *Request) RouteParam(key string) string {
	return chi.URLParam(req.raw, key)
}

// ── Headers & auth ───────────────────────────────────────────────────────────

// Header returns a request header value.
func (req *Request) Header(key string) string {
	return req.raw.Header.Get(key)
}

// BearerToken returns the token from an "Authorization: Bearer ..." header,
// or "" when absent.
func (req *Request) BearerToken() string {
	auth := req.raw.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// ── Type checks ──────────────────────────────────────────────────────────────

// Method returns the HTTP method.
func (req *Request) Method() string { return req.raw.Method }

// Path returns the URL path.
func (req *Request) Path() string { return req.raw.URL.Path }

// IsJSON reports whether the request carries a JSON content type.
func (req *Request) IsJSON() bool {
	return strings.Contains(req.raw.Header.Get("Content-Type"), "application/json")
}
