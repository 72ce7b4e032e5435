// Package https_server builds the gin engine: middleware, CORS and route
// registration in one place.
package https_server

import (
	"kind_contact_server/internal/gateway/websocket"
	"kind_contact_server/internal/infrastructure/logger"
	"kind_contact_server/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init returns a fully configured engine. gin.New instead of gin.Default
// so the zap middleware replaces the framework logger entirely.
func Init(hub *websocket.Hub) *gin.Engine {
	engine := gin.New()

	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// TLS redirect middleware stays off by default; a fronting proxy
	// usually terminates TLS.
	// engine.Use(middleware.TlsHandler(config.GetConfig().MainConfig.Host, config.GetConfig().MainConfig.Port))

	router.RegisterRoutes(engine, hub)

	return engine
}
