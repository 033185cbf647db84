package gateway

import (
	"github.com/gin-gonic/gin"

	"github.com/kiosk404/taskmind/internal/gateway/handler/middleware"
	v1 "github.com/kiosk404/taskmind/internal/gateway/handler/v1"
	"github.com/kiosk404/taskmind/internal/gateway/options"
	"github.com/kiosk404/taskmind/internal/gateway/service/chat/domain/service"
	"github.com/kiosk404/taskmind/internal/gateway/service/toolcall"
)

// routerDeps holds the dependencies needed for route registration.
type routerDeps struct {
	coordinator *service.Coordinator
	registry    *toolcall.Registry
	authOptions *options.AuthOptions
}

func initRouter(g *gin.Engine, deps *routerDeps) {
	installMiddleware(g, deps)
	installController(g, deps)
}

func installMiddleware(g *gin.Engine, deps *routerDeps) {
	g.Use(gin.Recovery())
	g.Use(middleware.CORS())

	g.Use(middleware.Identity(&middleware.IdentityConfig{
		Tokens:  deps.authOptions.Tokens,
		DevUser: deps.authOptions.DevUser,
	}))
}

func installController(g *gin.Engine, deps *routerDeps) {
	chatHandler := v1.NewChatHandler(deps.coordinator)
	toolsHandler := v1.NewToolsHandler(deps.registry)

	apiV1 := g.Group("/api/v1")
	{
		apiV1.POST("/chat", chatHandler.Handle)
		apiV1.GET("/tools", toolsHandler.List)
	}
}
