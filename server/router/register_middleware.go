package router

import (
	"github.com/raymondelooff/weblate/config"
	"github.com/raymondelooff/weblate/server/middleware"
	"github.com/raymondelooff/weblate/server/middleware/limiter"
	"github.com/raymondelooff/weblate/server/middleware/set_request_context"
)

func (router *Router) RegisterMiddleware() {
	// the first middleware is the most outer / first executed one
	router.Use(middleware.WithServerTiming)
	router.Use(middleware.Compress)
	router.Use(set_request_context.WithRequestContext) // needed for everything else

	if config.Global.Limiter.Enabled {
		limiter.Init()

		router.Use(limiter.Evaluate)
	}
}
