package router

import (
	"github.com/raymondelooff/weblate/server/middleware"
	"github.com/raymondelooff/weblate/server/routes"
)

// DefineRoutes sets up all the routes for the application using our custom Router.
func (router *Router) DefineRoutes() {
	// Render routes
	router.HandleFunc("POST /api/v1/format", middleware.CatchError(routes.FormatRoute))
	router.HandleFunc("POST /api/v1/format/batch", middleware.CatchError(routes.BatchFormatRoute))

	// Check registry
	router.HandleFunc("GET /api/v1/checks", middleware.CatchError(routes.ChecksRoute))

	// Operational routes
	router.HandleFunc("GET /healthz", middleware.CatchError(routes.HealthRoute))
}
