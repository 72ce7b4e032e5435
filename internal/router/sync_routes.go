package router

import (
	"kind_contact_server/internal/gateway/websocket"
	"kind_contact_server/internal/handler"
	"kind_contact_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterSyncRoutes registers the directory sync trigger and its
// websocket progress feed, both behind JWT auth.
func RegisterSyncRoutes(r *gin.Engine, hub *websocket.Hub) {
	r.POST("/sync-contacts", middleware.JWTAuth(), handler.SyncContactsHandler)
	r.GET("/ws/sync", middleware.JWTAuth(), hub.ServeWS)
}
