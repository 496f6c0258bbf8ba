package routes

import (
	"ocorrencias_api/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

func addAuthRoutes(rg *gin.RouterGroup, deps Dependencies) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", deps.Session.Login)
		auth.GET("/me", middleware.RequireAuth(deps.Auth), deps.Session.Me)
	}
}
