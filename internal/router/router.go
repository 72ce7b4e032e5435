// Package router registers the HTTP surface. Contact and sync routes sit
// behind JWT auth; auth and health stay open.
package router

import (
	"kind_contact_server/internal/gateway/websocket"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every route group onto the engine. The hub backs
// the websocket sync progress feed.
func RegisterRoutes(r *gin.Engine, hub *websocket.Hub) {
	RegisterAuthRoutes(r)
	RegisterContactRoutes(r)
	RegisterSyncRoutes(r, hub)
}
