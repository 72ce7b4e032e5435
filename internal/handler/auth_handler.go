package handler

import (
	"net/http"

	"kind_contact_server/internal/dto/request"
	"kind_contact_server/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterHandler handles POST /auth/register.
func RegisterHandler(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Auth.Register(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "uuid": data.Uuid})
}

// LoginHandler handles POST /auth/login.
func LoginHandler(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Auth.Login(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// RefreshHandler handles POST /auth/refresh.
func RefreshHandler(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := service.Svc.Auth.Refresh(req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// HealthHandler handles GET /health.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
