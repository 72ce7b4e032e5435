package router

import (
	"kind_contact_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers token issuance and liveness. Unguarded.
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/auth/register", handler.RegisterHandler)
	r.POST("/auth/login", handler.LoginHandler)
	r.POST("/auth/refresh", handler.RefreshHandler)
	r.GET("/health", handler.HealthHandler)
}
