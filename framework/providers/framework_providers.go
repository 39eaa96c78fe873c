package providers

import (
	"github.com/armature-go/armature/framework/config"
	"github.com/armature-go/armature/framework/container"
	"github.com/armature-go/armature/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container as "config".
//
// Bound identifiers:
//   - "config"  → *config.Config
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	app.Set("config", config.Load(p.EnvFiles...))
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router, bound to the container
// so routes can dispatch controller actions through it.
//
// Bound identifiers:
//   - "router"  → *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Set("router", routing.New(app))
}
