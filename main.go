package main

import (
	"net/http"

	demo "github.com/armature-go/armature/app"
	"github.com/armature-go/armature/framework/app"
	gohttp "github.com/armature-go/armature/framework/http"
)

func main() {
	application := app.New()
	application.Register(&demo.AppServiceProvider{})
	application.Boot()

	router := application.Router()
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		gohttp.NewResponse(w).Success(map[string]any{
			"name":    application.Config().App.Name,
			"env":     application.Environment(),
			"version": application.Version(),
		})
	})

	application.Run()
}
