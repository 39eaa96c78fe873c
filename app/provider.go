package app

import (
	"net/http"

	"github.com/armature-go/armature/framework/container"
	"github.com/armature-go/armature/framework/reflection"
	"github.com/armature-go/armature/framework/routing"
)

// AppServiceProvider registers the demo application's services and routes.
//
// Register declares the constructible types plus the controller action
// metadata the router dispatches through; Boot maps the routes once the
// router itself has been bound by the framework providers.
type AppServiceProvider struct {
	container.BaseProvider
}

func (p *AppServiceProvider) Register(app *container.Container) {
	types := app.Types()

	types.MustRegister("Clock", NewClock)
	types.MustRegister("UserRepository", NewUserRepository)
	types.MustRegister("UserController", NewUserController,
		reflection.Method("Index", "w", "r"),
		reflection.Method("Store", "w", "r"),
		reflection.Method("Show", "w", "r", "id"),
		reflection.Method("Update", "w", "r", "id"),
		reflection.Method("Destroy", "w", "r", "id"),
		reflection.Static("Ping", Ping, "w"),
	)
}

func (p *AppServiceProvider) Boot(app *container.Container) {
	r := container.MustResolve[*routing.Router](app, "router")

	r.Action(http.MethodGet, "/ping", "UserController::Ping")
	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Resource("/users", "UserController")
	})
}
